package handler

import (
	"errors"
	"strconv"

	"go-product-catalog/internal/model"
	"go-product-catalog/internal/repository"
	"go-product-catalog/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler serves the form-backed CRUD surface under /products.
type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

// statusFilter maps the list-view query parameters onto a status name.
// Empty string means no filter ("Semua Produk").
func statusFilter(c *fiber.Ctx) string {
	if status := c.Query("status"); status != "" {
		if status == model.StatusAllProducts {
			return ""
		}
		return status
	}
	if c.Query("show", "bisa_dijual") == "all" {
		return ""
	}
	return model.StatusCanSell
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	filter := statusFilter(c)
	products, err := h.service.List(filter)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	title := "Daftar Produk - Bisa Dijual"
	if filter == "" {
		title = "Daftar Produk - Semua"
	}
	return c.JSON(fiber.Map{
		"title":    title,
		"products": products,
	})
}

// New returns the empty form descriptor: no product plus the selectable
// categories and statuses.
func (h *ProductHandler) New(c *fiber.Ctx) error {
	options, err := h.service.FormOptions()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{
		"title":   "Tambah Produk",
		"options": options,
	})
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var input service.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	product, err := h.service.Create(&input)
	if err != nil {
		return h.renderError(c, err, &input)
	}

	c.Location("/products")
	return c.Status(201).JSON(fiber.Map{
		"message": "Produk \"" + product.Name + "\" berhasil ditambahkan!",
		"data":    product,
	})
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	product, err := h.service.Get(id)
	if err != nil {
		return h.renderError(c, err, nil)
	}
	return c.JSON(product)
}

// Edit returns the populated form descriptor for an existing product.
func (h *ProductHandler) Edit(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	product, err := h.service.Get(id)
	if err != nil {
		return h.renderError(c, err, nil)
	}
	options, err := h.service.FormOptions()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{
		"title":   "Edit Produk - " + product.Name,
		"product": product,
		"options": options,
	})
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var input service.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	product, err := h.service.Update(id, &input)
	if err != nil {
		return h.renderError(c, err, &input)
	}
	return c.JSON(fiber.Map{
		"message": "Produk \"" + product.Name + "\" berhasil diperbarui!",
		"data":    product,
	})
}

// ConfirmDelete returns the confirmation payload. It never removes the row;
// only an explicit DELETE does.
func (h *ProductHandler) ConfirmDelete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	product, err := h.service.Get(id)
	if err != nil {
		return h.renderError(c, err, nil)
	}
	return c.JSON(fiber.Map{
		"title":   "Hapus Produk - " + product.Name,
		"product": product,
		"confirm": "Apakah Anda yakin ingin menghapus produk ini?",
	})
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	product, err := h.service.Get(id)
	if err != nil {
		return h.renderError(c, err, nil)
	}
	if err := h.service.Delete(id); err != nil {
		return h.renderError(c, err, nil)
	}

	return c.JSON(fiber.Map{
		"message": "Produk \"" + product.Name + "\" berhasil dihapus!",
	})
}

// renderError maps service errors onto responses. Validation failures echo
// the submitted values so the form can be re-rendered with prior input.
func (h *ProductHandler) renderError(c *fiber.Ctx, err error, input *service.ProductInput) error {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		body := fiber.Map{"errors": verr.Fields}
		if input != nil {
			body["values"] = input
		}
		return c.Status(400).JSON(body)
	}
	if errors.Is(err, repository.ErrProductNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Produk tidak ditemukan"})
	}
	return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
}
