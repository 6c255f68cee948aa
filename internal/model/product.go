package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog row. ExternalID carries the upstream API record id and
// is unique, so re-running the import updates instead of duplicating.
type Product struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	ExternalID string          `gorm:"type:varchar(64);uniqueIndex;not null" json:"external_id"`
	Name       string          `gorm:"type:varchar(200);not null" json:"name" validate:"required,notblank"`
	Price      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	CategoryID uint            `gorm:"not null" json:"category_id"`
	Category   Category        `gorm:"foreignKey:CategoryID" json:"category"`
	StatusID   uint            `gorm:"not null" json:"status_id"`
	Status     Status          `gorm:"foreignKey:StatusID" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}
