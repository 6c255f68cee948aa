package model

// Category is a product category, created on first sighting during import
// or explicitly through the CRUD surface.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name" validate:"required,notblank"`
}

func (Category) TableName() string {
	return "categories"
}
