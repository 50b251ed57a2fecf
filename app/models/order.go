package models

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StatusPending is the initial status of every order. Later statuses are
// free-form labels set by administrators; no transition graph is enforced.
const StatusPending = "Pending"

var itemsCodec = jsoniter.ConfigCompatibleWithStandardLibrary

// OrderItem is one line of the cart snapshot frozen at order time: the
// product's identity, name, and unit price as they were when the customer
// checked out. Later catalogue changes never touch it.
type OrderItem struct {
	ProductID uint            `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Order belongs to exactly one User. The item snapshot is serialised into
// the Items text column; orders are never deleted and only their Status is
// ever mutated after creation.
type Order struct {
	gorm.Model
	UserID     uint            `gorm:"not null;index" json:"user_id"`
	User       User            `gorm:"foreignKey:UserID" json:"-"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_price"`
	Status     string          `gorm:"size:50;not null;default:Pending" json:"status"`
	Items      string          `gorm:"type:text;not null" json:"-"`
}

// SetItems freezes the cart snapshot into the Items column.
func (o *Order) SetItems(items []OrderItem) error {
	raw, err := itemsCodec.MarshalToString(items)
	if err != nil {
		return err
	}
	o.Items = raw
	return nil
}

// OrderItems decodes the frozen snapshot.
func (o *Order) OrderItems() ([]OrderItem, error) {
	var items []OrderItem
	if err := itemsCodec.UnmarshalFromString(o.Items, &items); err != nil {
		return nil, err
	}
	return items, nil
}
