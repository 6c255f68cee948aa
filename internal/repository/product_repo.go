package repository

import (
	"errors"

	"go-product-catalog/internal/model"

	"gorm.io/gorm"
)

// ErrProductNotFound is returned when a product lookup misses.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter narrows list queries. An empty StatusName means no filter.
type ProductFilter struct {
	StatusName string
}

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll(filter ProductFilter) ([]model.Product, error)
	FindByID(id uint) (*model.Product, error)
	FindByExternalID(externalID string) (*model.Product, error)
	Update(product *model.Product) error
	Delete(product *model.Product) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll(filter ProductFilter) ([]model.Product, error) {
	var products []model.Product
	query := r.db.Preload("Category").Preload("Status").Order("products.id")
	if filter.StatusName != "" {
		query = query.
			Joins("JOIN statuses ON statuses.id = products.status_id").
			Where("statuses.name = ?", filter.StatusName)
	}
	err := query.Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uint) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Category").Preload("Status").First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindByExternalID(externalID string) (*model.Product, error) {
	var product model.Product
	err := r.db.Where("external_id = ?", externalID).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) Delete(product *model.Product) error {
	return r.db.Delete(product).Error
}
