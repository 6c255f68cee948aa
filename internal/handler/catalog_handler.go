package handler

import (
	"errors"

	"go-product-catalog/internal/model"
	"go-product-catalog/internal/repository"
	"go-product-catalog/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler serves the read-only JSON projection under /api/v1 plus the
// HTTP import trigger.
type CatalogHandler struct {
	products service.ProductService
	importer service.ImportService
}

func NewCatalogHandler(products service.ProductService, importer service.ImportService) *CatalogHandler {
	return &CatalogHandler{products: products, importer: importer}
}

type CategoryDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type StatusDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ProductDTO struct {
	ID         uint        `json:"id"`
	ExternalID string      `json:"external_id"`
	Name       string      `json:"name"`
	Price      string      `json:"price"`
	Category   CategoryDTO `json:"category"`
	Status     StatusDTO   `json:"status"`
}

type ProductListResponse struct {
	Total    int          `json:"total"`
	Products []ProductDTO `json:"products"`
}

func toProductDTO(p model.Product) ProductDTO {
	return ProductDTO{
		ID:         p.ID,
		ExternalID: p.ExternalID,
		Name:       p.Name,
		Price:      p.Price.StringFixed(2),
		Category:   CategoryDTO{ID: p.Category.ID, Name: p.Category.Name},
		Status:     StatusDTO{ID: p.Status.ID, Name: p.Status.Name},
	}
}

// GetProducts lists products with the same status filter vocabulary as the
// CRUD list view.
func (h *CatalogHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.products.List(statusFilter(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	dtos := make([]ProductDTO, len(products))
	for i, p := range products {
		dtos[i] = toProductDTO(p)
	}
	return c.JSON(ProductListResponse{Total: len(dtos), Products: dtos})
}

func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	product, err := h.products.Get(id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Produk tidak ditemukan"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(toProductDTO(*product))
}

func (h *CatalogHandler) GetCategories(c *fiber.Ctx) error {
	options, err := h.products.FormOptions()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(options.Categories)
}

func (h *CatalogHandler) GetStatuses(c *fiber.Ctx) error {
	options, err := h.products.FormOptions()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(options.Statuses)
}

// ImportProducts runs the upstream import synchronously and reports the
// per-record stats. A fetch failure maps to 502.
func (h *CatalogHandler) ImportProducts(c *fiber.Ctx) error {
	result, err := h.importer.Run(c.Context())
	if err != nil {
		return c.Status(502).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
			"stats":   result,
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Import completed",
		"stats":   result,
	})
}
