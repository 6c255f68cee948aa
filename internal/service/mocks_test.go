package service

import (
	"context"
	"strings"

	"go-product-catalog/internal/fastprint"
	"go-product-catalog/internal/model"
	"go-product-catalog/internal/repository"
)

// In-memory repositories shared by the service tests.

type memCategoryRepo struct {
	categories []model.Category
	nextID     uint
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{nextID: 1}
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
	category := model.Category{ID: r.nextID, Name: name}
	r.nextID++
	r.categories = append(r.categories, category)
	return &r.categories[len(r.categories)-1], nil
}

func (r *memCategoryRepo) Create(category *model.Category) error {
	category.ID = r.nextID
	r.nextID++
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
	for i := range r.categories {
		if r.categories[i].ID == category.ID {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return repository.ErrCategoryNotFound
}

type memStatusRepo struct {
	statuses []model.Status
	nextID   uint
}

func newMemStatusRepo() *memStatusRepo {
	return &memStatusRepo{nextID: 1}
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
	status := model.Status{ID: r.nextID, Name: name}
	r.nextID++
	r.statuses = append(r.statuses, status)
	return &r.statuses[len(r.statuses)-1], nil
}

func (r *memStatusRepo) Create(status *model.Status) error {
	status.ID = r.nextID
	r.nextID++
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
	statuses   *memStatusRepo
	categories *memCategoryRepo

	createCalls int
	updateCalls int
	deleteCalls int
}

func newMemProductRepo(categories *memCategoryRepo, statuses *memStatusRepo) *memProductRepo {
	return &memProductRepo{nextID: 1, categories: categories, statuses: statuses}
}

func (r *memProductRepo) Create(product *model.Product) error {
	r.createCalls++
	product.ID = r.nextID
	r.nextID++
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
	r.updateCalls++
	for i := range r.products {
		if r.products[i].ID == product.ID {
			r.products[i] = *product
			return nil
		}
	}
	return repository.ErrProductNotFound
}

func (r *memProductRepo) Delete(product *model.Product) error {
	r.deleteCalls++
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

// mockFetcher returns a canned record set or error.
type mockFetcher struct {
	records []fastprint.Record
	err     error
	calls   int
}

func (f *mockFetcher) Fetch(ctx context.Context) ([]fastprint.Record, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func hasError(result *ImportResult, fragment string) bool {
	for _, msg := range result.Errors {
		if strings.Contains(msg, fragment) {
			return true
		}
	}
	return false
}
