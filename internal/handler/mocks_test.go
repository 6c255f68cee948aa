package handler

import (
	"context"

	"go-product-catalog/internal/model"
	"go-product-catalog/internal/repository"
	"go-product-catalog/internal/service"
)

// In-memory repositories so the handlers run against the real services.

type memCategoryRepo struct {
	categories []model.Category
	deleteErr  error // simulates the FK constraint rejecting a delete
}

func (r *memCategoryRepo) FindAll() ([]model.Category, error) {
	return r.categories, nil
}

func (r *memCategoryRepo) FindByID(id uint) (*model.Category, error) {
	for i := range r.categories {
		if r.categories[i].ID == id {
			return &r.categories[i], nil
		}
	}
	return nil, repository.ErrCategoryNotFound
}

func (r *memCategoryRepo) FindOrCreateByName(name string) (*model.Category, error) {
	for i := range r.categories {
		if r.categories[i].Name == name {
			return &r.categories[i], nil
		}
	}
	category := model.Category{ID: uint(len(r.categories) + 1), Name: name}
	r.categories = append(r.categories, category)
	return &r.categories[len(r.categories)-1], nil
}

func (r *memCategoryRepo) Create(category *model.Category) error {
	category.ID = uint(len(r.categories) + 1)
	r.categories = append(r.categories, *category)
	return nil
}

func (r *memCategoryRepo) Update(category *model.Category) error {
	for i := range r.categories {
		if r.categories[i].ID == category.ID {
			r.categories[i] = *category
			return nil
		}
	}
	return repository.ErrCategoryNotFound
}

func (r *memCategoryRepo) Delete(category *model.Category) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	for i := range r.categories {
		if r.categories[i].ID == category.ID {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return repository.ErrCategoryNotFound
}

type memStatusRepo struct {
	statuses  []model.Status
	deleteErr error
}

func (r *memStatusRepo) FindAll() ([]model.Status, error) {
	return r.statuses, nil
}

func (r *memStatusRepo) FindByID(id uint) (*model.Status, error) {
	for i := range r.statuses {
		if r.statuses[i].ID == id {
			return &r.statuses[i], nil
		}
	}
	return nil, repository.ErrStatusNotFound
}

func (r *memStatusRepo) FindByName(name string) (*model.Status, error) {
	for i := range r.statuses {
		if r.statuses[i].Name == name {
			return &r.statuses[i], nil
		}
	}
	return nil, repository.ErrStatusNotFound
}

func (r *memStatusRepo) FindOrCreateByName(name string) (*model.Status, error) {
	if status, err := r.FindByName(name); err == nil {
		return status, nil
	}
	status := model.Status{ID: uint(len(r.statuses) + 1), Name: name}
	r.statuses = append(r.statuses, status)
	return &r.statuses[len(r.statuses)-1], nil
}

func (r *memStatusRepo) Create(status *model.Status) error {
	status.ID = uint(len(r.statuses) + 1)
	r.statuses = append(r.statuses, *status)
	return nil
}

func (r *memStatusRepo) Update(status *model.Status) error {
	for i := range r.statuses {
		if r.statuses[i].ID == status.ID {
			r.statuses[i] = *status
			return nil
		}
	}
	return repository.ErrStatusNotFound
}

func (r *memStatusRepo) Delete(status *model.Status) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	for i := range r.statuses {
		if r.statuses[i].ID == status.ID {
			r.statuses = append(r.statuses[:i], r.statuses[i+1:]...)
			return nil
		}
	}
	return repository.ErrStatusNotFound
}

func (r *memStatusRepo) SeedDefaults() error {
	for _, status := range model.DefaultStatuses {
		if _, err := r.FindOrCreateByName(status.Name); err != nil {
			return err
		}
	}
	return nil
}

type memProductRepo struct {
	products   []model.Product
	nextID     uint
	categories *memCategoryRepo
	statuses   *memStatusRepo
}

func (r *memProductRepo) Create(product *model.Product) error {
	r.nextID++
	product.ID = r.nextID
	r.products = append(r.products, *product)
	return nil
}

func (r *memProductRepo) FindAll(filter repository.ProductFilter) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		if filter.StatusName != "" {
			status, err := r.statuses.FindByID(p.StatusID)
			if err != nil || status.Name != filter.StatusName {
				continue
			}
		}
		out = append(out, r.withRelations(p))
	}
	return out, nil
}

func (r *memProductRepo) FindByID(id uint) (*model.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			loaded := r.withRelations(p)
			return &loaded, nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (r *memProductRepo) FindByExternalID(externalID string) (*model.Product, error) {
	for _, p := range r.products {
		if p.ExternalID == externalID {
			loaded := r.withRelations(p)
			return &loaded, nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (r *memProductRepo) Update(product *model.Product) error {
	for i := range r.products {
		if r.products[i].ID == product.ID {
			r.products[i] = *product
			return nil
		}
	}
	return repository.ErrProductNotFound
}

func (r *memProductRepo) Delete(product *model.Product) error {
	for i := range r.products {
		if r.products[i].ID == product.ID {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return repository.ErrProductNotFound
}

func (r *memProductRepo) withRelations(p model.Product) model.Product {
	if category, err := r.categories.FindByID(p.CategoryID); err == nil {
		p.Category = *category
	}
	if status, err := r.statuses.FindByID(p.StatusID); err == nil {
		p.Status = *status
	}
	return p
}

// stubImporter stands in for the import service on the catalog routes.
type stubImporter struct {
	result *service.ImportResult
	err    error
}

func (s *stubImporter) Run(ctx context.Context) (*service.ImportResult, error) {
	if s.err != nil {
		return &service.ImportResult{}, s.err
	}
	return s.result, nil
}
