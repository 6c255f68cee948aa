package repository

import (
	"errors"

	"go-product-catalog/internal/model"

	"gorm.io/gorm"
)

// ErrStatusNotFound is returned when a status lookup misses.
var ErrStatusNotFound = errors.New("status not found")

type StatusRepository interface {
	FindAll() ([]model.Status, error)
	FindByID(id uint) (*model.Status, error)
	FindByName(name string) (*model.Status, error)
	FindOrCreateByName(name string) (*model.Status, error)
	Create(status *model.Status) error
	Update(status *model.Status) error
	Delete(status *model.Status) error
	SeedDefaults() error
}

type statusRepo struct {
	db *gorm.DB
}

func NewStatusRepo(db *gorm.DB) StatusRepository {
	return &statusRepo{db: db}
}

func (r *statusRepo) FindAll() ([]model.Status, error) {
	var statuses []model.Status
	err := r.db.Order("name").Find(&statuses).Error
	return statuses, err
}

func (r *statusRepo) FindByID(id uint) (*model.Status, error) {
	var status model.Status
	if err := r.db.First(&status, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStatusNotFound
		}
		return nil, err
	}
	return &status, nil
}

func (r *statusRepo) FindByName(name string) (*model.Status, error) {
	var status model.Status
	if err := r.db.Where("name = ?", name).First(&status).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStatusNotFound
		}
		return nil, err
	}
	return &status, nil
}

func (r *statusRepo) FindOrCreateByName(name string) (*model.Status, error) {
	var status model.Status
	err := r.db.Where("name = ?", name).First(&status).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		status = model.Status{Name: name}
		if err := r.db.Create(&status).Error; err != nil {
			return nil, err
		}
		return &status, nil
	}
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func (r *statusRepo) Create(status *model.Status) error {
	return r.db.Create(status).Error
}

func (r *statusRepo) Update(status *model.Status) error {
	return r.db.Save(status).Error
}

func (r *statusRepo) Delete(status *model.Status) error {
	return r.db.Delete(status).Error
}

// SeedDefaults creates the well-known filter statuses if they don't exist.
func (r *statusRepo) SeedDefaults() error {
	for _, defaultStatus := range model.DefaultStatuses {
		var existing model.Status
		err := r.db.Where("name = ?", defaultStatus.Name).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := r.db.Create(&defaultStatus).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}
	return nil
}
