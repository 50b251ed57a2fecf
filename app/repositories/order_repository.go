package repositories

import (
	"github.com/shashiranjanraj/bholemart/app/models"
	"github.com/shashiranjanraj/bholemart/pkg/orm"
)

// OrderRepository handles database operations for Order.
type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Create persists a new order in a single commit.
func (r *OrderRepository) Create(order *models.Order) error {
	return orm.DB().Create(order)
}

// FindByID looks up an order by primary key.
func (r *OrderRepository) FindByID(id uint) (models.Order, error) {
	var order models.Order
	err := orm.DB().Model(&models.Order{}).Where("id = ?", id).First(&order)
	return order, err
}

// AllNewestFirst returns every order, most recently created first, with the
// owning user preloaded for display.
func (r *OrderRepository) AllNewestFirst() ([]models.Order, error) {
	var orders []models.Order
	err := orm.DB().Model(&models.Order{}).Preload("User").Order("id desc").Get(&orders)
	return orders, err
}

// UpdateStatus overwrites the status field of an existing order. The write
// is unconditional; any non-empty label is accepted and last write wins.
func (r *OrderRepository) UpdateStatus(order *models.Order, status string) error {
	order.Status = status
	return orm.DB().Save(order)
}

// Count returns the number of persisted orders.
func (r *OrderRepository) Count() (int64, error) {
	return orm.DB().Model(&models.Order{}).Count()
}
