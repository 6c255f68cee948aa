package service

import (
	"errors"
	"strings"

	"go-product-catalog/internal/model"
	"go-product-catalog/internal/repository"
	"go-product-catalog/pkg/validator"

	"github.com/shopspring/decimal"
)

// ProductInput is the form payload for create/update. Price arrives as a
// string and is validated before anything is persisted.
type ProductInput struct {
	Name       string `json:"name" validate:"required,notblank"`
	Price      string `json:"price" validate:"required,price"`
	CategoryID uint   `json:"category_id" validate:"required"`
	StatusID   uint   `json:"status_id" validate:"required"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries per-field messages back to the form. Nothing is
// persisted when it is returned.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// FormOptions lists the selectable relations for the product form.
type FormOptions struct {
	Categories []model.Category `json:"categories"`
	Statuses   []model.Status   `json:"statuses"`
}

type ProductService interface {
	List(statusName string) ([]model.Product, error)
	Get(id uint) (*model.Product, error)
	Create(input *ProductInput) (*model.Product, error)
	Update(id uint, input *ProductInput) (*model.Product, error)
	Delete(id uint) error
	FormOptions() (*FormOptions, error)
}

type productService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	statuses   repository.StatusRepository
}

func NewProductService(prodRepo repository.ProductRepository, catRepo repository.CategoryRepository, statRepo repository.StatusRepository) ProductService {
	return &productService{
		products:   prodRepo,
		categories: catRepo,
		statuses:   statRepo,
	}
}

func (s *productService) List(statusName string) ([]model.Product, error) {
	return s.products.FindAll(repository.ProductFilter{StatusName: statusName})
}

func (s *productService) Get(id uint) (*model.Product, error) {
	return s.products.FindByID(id)
}

func (s *productService) Create(input *ProductInput) (*model.Product, error) {
	price, verr := s.validate(input)
	if verr != nil {
		return nil, verr
	}

	product := &model.Product{
		Name:       strings.TrimSpace(input.Name),
		Price:      price,
		CategoryID: input.CategoryID,
		StatusID:   input.StatusID,
	}
	if err := s.products.Create(product); err != nil {
		return nil, err
	}
	return s.products.FindByID(product.ID)
}

func (s *productService) Update(id uint, input *ProductInput) (*model.Product, error) {
	existing, err := s.products.FindByID(id)
	if err != nil {
		return nil, err
	}

	price, verr := s.validate(input)
	if verr != nil {
		return nil, verr
	}

	existing.Name = strings.TrimSpace(input.Name)
	existing.Price = price
	existing.CategoryID = input.CategoryID
	existing.StatusID = input.StatusID
	if err := s.products.Update(existing); err != nil {
		return nil, err
	}
	return s.products.FindByID(id)
}

func (s *productService) Delete(id uint) error {
	existing, err := s.products.FindByID(id)
	if err != nil {
		return err
	}
	return s.products.Delete(existing)
}

func (s *productService) FormOptions() (*FormOptions, error) {
	categories, err := s.categories.FindAll()
	if err != nil {
		return nil, err
	}
	statuses, err := s.statuses.FindAll()
	if err != nil {
		return nil, err
	}
	return &FormOptions{Categories: categories, Statuses: statuses}, nil
}

// validate runs struct validation plus the relation-existence checks and
// returns the parsed price on success.
func (s *productService) validate(input *ProductInput) (decimal.Decimal, *ValidationError) {
	var fields []FieldError
	for _, e := range validator.ValidateStruct(input) {
		fields = append(fields, FieldError{
			Field:   fieldName(e.FailedField),
			Message: fieldMessage(e.FailedField),
		})
	}

	if len(fields) == 0 {
		if _, err := s.categories.FindByID(input.CategoryID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				fields = append(fields, FieldError{Field: "category_id", Message: "Kategori tidak ditemukan."})
			} else {
				fields = append(fields, FieldError{Field: "category_id", Message: err.Error()})
			}
		}
		if _, err := s.statuses.FindByID(input.StatusID); err != nil {
			if errors.Is(err, repository.ErrStatusNotFound) {
				fields = append(fields, FieldError{Field: "status_id", Message: "Status tidak ditemukan."})
			} else {
				fields = append(fields, FieldError{Field: "status_id", Message: err.Error()})
			}
		}
	}

	if len(fields) > 0 {
		return decimal.Zero, &ValidationError{Fields: fields}
	}

	price, _ := decimal.NewFromString(strings.TrimSpace(input.Price))
	return price, nil
}

func fieldName(failedField string) string {
	switch {
	case strings.HasSuffix(failedField, ".Name"):
		return "name"
	case strings.HasSuffix(failedField, ".Price"):
		return "price"
	case strings.HasSuffix(failedField, ".CategoryID"):
		return "category_id"
	case strings.HasSuffix(failedField, ".StatusID"):
		return "status_id"
	}
	return failedField
}

func fieldMessage(failedField string) string {
	switch fieldName(failedField) {
	case "name":
		return "Nama produk harus diisi."
	case "price":
		return "Harga harus berupa angka positif."
	case "category_id":
		return "Kategori harus dipilih."
	case "status_id":
		return "Status harus dipilih."
	}
	return "Nilai tidak valid."
}
