package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"go-product-catalog/internal/fastprint"
	"go-product-catalog/internal/model"
	"go-product-catalog/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Fetcher is the upstream source of product records.
type Fetcher interface {
	Fetch(ctx context.Context) ([]fastprint.Record, error)
}

// ImportResult reports what one run did. Skipped records are counted and
// explained but never abort the run.
type ImportResult struct {
	RunID   uuid.UUID `json:"run_id"`
	Created int       `json:"created"`
	Updated int       `json:"updated"`
	Skipped int       `json:"skipped"`
	Errors  []string  `json:"errors,omitempty"`
}

type ImportService interface {
	Run(ctx context.Context) (*ImportResult, error)
}

type importService struct {
	client     Fetcher
	categories repository.CategoryRepository
	statuses   repository.StatusRepository
	products   repository.ProductRepository
}

func NewImportService(client Fetcher, catRepo repository.CategoryRepository, statRepo repository.StatusRepository, prodRepo repository.ProductRepository) ImportService {
	return &importService{
		client:     client,
		categories: catRepo,
		statuses:   statRepo,
		products:   prodRepo,
	}
}

// Run fetches the upstream record set and reconciles it into the database.
// Each record is committed independently; a failed record is skipped and the
// run converges on re-execution since products are keyed by external id.
func (s *importService) Run(ctx context.Context) (*ImportResult, error) {
	result := &ImportResult{RunID: uuid.New()}

	log.Printf("[import %s] fetching products from upstream", result.RunID)
	records, err := s.client.Fetch(ctx)
	if err != nil {
		return result, err
	}
	log.Printf("[import %s] fetched %d records", result.RunID, len(records))

	for _, record := range records {
		if err := s.reconcile(record, result); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, err.Error())
		}
	}

	log.Printf("[import %s] done: %d created, %d updated, %d skipped",
		result.RunID, result.Created, result.Updated, result.Skipped)
	return result, nil
}

func (s *importService) reconcile(record fastprint.Record, result *ImportResult) error {
	externalID := strings.TrimSpace(record.ExternalID)
	name := strings.TrimSpace(record.Name)
	categoryName := strings.TrimSpace(record.Category)
	statusName := strings.TrimSpace(record.Status)

	if externalID == "" {
		return fmt.Errorf("record %q: missing external id", record.Name)
	}
	if name == "" {
		return fmt.Errorf("record %s: missing product name", externalID)
	}
	if categoryName == "" || statusName == "" {
		return fmt.Errorf("record %s: missing category or status", externalID)
	}
	price, err := decimal.NewFromString(strings.TrimSpace(record.Price))
	if err != nil {
		return fmt.Errorf("record %s: price %q is not a number", externalID, record.Price)
	}
	if price.IsNegative() {
		return fmt.Errorf("record %s: price %s is negative", externalID, price)
	}

	category, err := s.categories.FindOrCreateByName(categoryName)
	if err != nil {
		return fmt.Errorf("record %s: category: %w", externalID, err)
	}
	status, err := s.statuses.FindOrCreateByName(statusName)
	if err != nil {
		return fmt.Errorf("record %s: status: %w", externalID, err)
	}

	existing, err := s.products.FindByExternalID(externalID)
	switch {
	case err == nil:
		existing.Name = name
		existing.Price = price
		existing.CategoryID = category.ID
		existing.StatusID = status.ID
		if err := s.products.Update(existing); err != nil {
			return fmt.Errorf("record %s: update: %w", externalID, err)
		}
		result.Updated++
	case errors.Is(err, repository.ErrProductNotFound):
		product := &model.Product{
			ExternalID: externalID,
			Name:       name,
			Price:      price,
			CategoryID: category.ID,
			StatusID:   status.ID,
		}
		if err := s.products.Create(product); err != nil {
			return fmt.Errorf("record %s: create: %w", externalID, err)
		}
		result.Created++
	default:
		return fmt.Errorf("record %s: lookup: %w", externalID, err)
	}
	return nil
}
