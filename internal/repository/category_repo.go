package repository

import (
	"errors"

	"go-product-catalog/internal/model"

	"gorm.io/gorm"
)

// ErrCategoryNotFound is returned when a category lookup misses.
var ErrCategoryNotFound = errors.New("category not found")

type CategoryRepository interface {
	FindAll() ([]model.Category, error)
	FindByID(id uint) (*model.Category, error)
	FindOrCreateByName(name string) (*model.Category, error)
	Create(category *model.Category) error
	Update(category *model.Category) error
	Delete(category *model.Category) error
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) FindAll() ([]model.Category, error) {
	var categories []model.Category
	err := r.db.Order("name").Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) FindByID(id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) Create(category *model.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepo) Update(category *model.Category) error {
	return r.db.Save(category).Error
}

func (r *categoryRepo) Delete(category *model.Category) error {
	return r.db.Delete(category).Error
}

// FindOrCreateByName matches case-sensitively on the exact name.
func (r *categoryRepo) FindOrCreateByName(name string) (*model.Category, error) {
	var category model.Category
	err := r.db.Where("name = ?", name).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		category = model.Category{Name: name}
		if err := r.db.Create(&category).Error; err != nil {
			return nil, err
		}
		return &category, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}
