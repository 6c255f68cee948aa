package handler

import (
	"errors"
	"strings"

	"go-product-catalog/internal/model"
	"go-product-catalog/internal/repository"
	"go-product-catalog/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// StatusHandler manages statuses the same way CategoryHandler manages
// categories.
type StatusHandler struct {
	repo repository.StatusRepository
}

func NewStatusHandler(repo repository.StatusRepository) *StatusHandler {
	return &StatusHandler{repo: repo}
}

type StatusInput struct {
	Name string `json:"name"`
}

func (h *StatusHandler) Create(c *fiber.Ctx) error {
	var input StatusInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	status := model.Status{Name: strings.TrimSpace(input.Name)}
	if errs := validator.ValidateStruct(&status); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Nama status harus diisi."})
	}

	if err := h.repo.Create(&status); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.Status(201).JSON(fiber.Map{
		"message": "Status \"" + status.Name + "\" berhasil ditambahkan!",
		"data":    status,
	})
}

func (h *StatusHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid status ID"})
	}

	var input StatusInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	status, err := h.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrStatusNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Status tidak ditemukan"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	status.Name = strings.TrimSpace(input.Name)
	if errs := validator.ValidateStruct(status); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Nama status harus diisi."})
	}

	if err := h.repo.Update(status); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{
		"message": "Status \"" + status.Name + "\" berhasil diperbarui!",
		"data":    status,
	})
}

func (h *StatusHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid status ID"})
	}

	status, err := h.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrStatusNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Status tidak ditemukan"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	if err := h.repo.Delete(status); err != nil {
		return c.Status(409).JSON(fiber.Map{"error": "Status masih digunakan oleh produk"})
	}
	return c.JSON(fiber.Map{
		"message": "Status \"" + status.Name + "\" berhasil dihapus!",
	})
}
