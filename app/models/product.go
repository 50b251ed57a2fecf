package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is a catalogue item. Category and ImageURL are optional;
// uncategorised products group under the empty label on the storefront.
// Orders never reference Product rows directly — they carry their own
// snapshot — so deleting a Product is always safe.
type Product struct {
	gorm.Model
	Name     string          `gorm:"size:255;not null;index" json:"name"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Category string          `gorm:"size:100" json:"category"`
	ImageURL string          `gorm:"size:500" json:"image_url"`
}
