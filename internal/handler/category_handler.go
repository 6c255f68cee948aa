package handler

import (
	"errors"
	"strings"

	"go-product-catalog/internal/model"
	"go-product-catalog/internal/repository"
	"go-product-catalog/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// CategoryHandler manages categories directly over the repository; the
// entity is too thin to warrant a service layer.
type CategoryHandler struct {
	repo repository.CategoryRepository
}

func NewCategoryHandler(repo repository.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{repo: repo}
}

type CategoryInput struct {
	Name string `json:"name"`
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var input CategoryInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	category := model.Category{Name: strings.TrimSpace(input.Name)}
	if errs := validator.ValidateStruct(&category); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Nama kategori harus diisi."})
	}

	if err := h.repo.Create(&category); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.Status(201).JSON(fiber.Map{
		"message": "Kategori \"" + category.Name + "\" berhasil ditambahkan!",
		"data":    category,
	})
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid category ID"})
	}

	var input CategoryInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	category, err := h.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Kategori tidak ditemukan"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	category.Name = strings.TrimSpace(input.Name)
	if errs := validator.ValidateStruct(category); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Nama kategori harus diisi."})
	}

	if err := h.repo.Update(category); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{
		"message": "Kategori \"" + category.Name + "\" berhasil diperbarui!",
		"data":    category,
	})
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid category ID"})
	}

	category, err := h.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Kategori tidak ditemukan"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	// Standard relational delete behavior: the FK constraint rejects removal
	// while products still reference the row.
	if err := h.repo.Delete(category); err != nil {
		return c.Status(409).JSON(fiber.Map{"error": "Kategori masih digunakan oleh produk"})
	}
	return c.JSON(fiber.Map{
		"message": "Kategori \"" + category.Name + "\" berhasil dihapus!",
	})
}
