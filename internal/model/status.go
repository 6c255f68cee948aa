package model

// Status is a product sale status. Two names are well known: they drive the
// list-view filter and are seeded at startup so filtering works before the
// first import.
type Status struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name" validate:"required,notblank"`
}

func (Status) TableName() string {
	return "statuses"
}

const (
	StatusCanSell     = "bisa dijual"
	StatusAllProducts = "Semua Produk"
)

// DefaultStatuses are seeded once at API startup.
var DefaultStatuses = []Status{
	{Name: StatusCanSell},
	{Name: StatusAllProducts},
}
