package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/bholemart/app/models"
	"github.com/shashiranjanraj/bholemart/app/repositories"
	"github.com/shashiranjanraj/bholemart/pkg/collection"
	"github.com/shashiranjanraj/bholemart/pkg/orm"
)

var (
	// ErrOrderNotFound is returned when a status update names an unknown order.
	ErrOrderNotFound = errors.New("order not found")

	// ErrProductNotFound is returned when deleting an unknown product.
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidPrice is returned when a product price does not parse as a
	// non-negative number.
	ErrInvalidPrice = errors.New("price must be a non-negative number")
)

// OrderView is an order prepared for the dashboard: the owning user's
// display name expanded and the item snapshot decoded.
type OrderView struct {
	ID     uint               `json:"id"`
	User   string             `json:"user"`
	Total  decimal.Decimal    `json:"total"`
	Status string             `json:"status"`
	Items  []models.OrderItem `json:"order_items"`
}

// DashboardStats aggregates the back-office counters.
type DashboardStats struct {
	Revenue  decimal.Decimal `json:"revenue"`
	Orders   int64           `json:"orders"`
	Products int64           `json:"products"`
}

// AdminService backs the administrative dashboard and its mutations.
type AdminService struct {
	orders   *repositories.OrderRepository
	products *repositories.ProductRepository
}

func NewAdminService() *AdminService {
	return &AdminService{
		orders:   repositories.NewOrderRepository(),
		products: repositories.NewProductRepository(),
	}
}

// Dashboard returns all orders newest-first as OrderViews, the full
// catalogue, and aggregate statistics. Revenue is the sum of every stored
// order total at query time.
func (s *AdminService) Dashboard() ([]OrderView, []models.Product, DashboardStats, error) {
	orders, err := s.orders.AllNewestFirst()
	if err != nil {
		return nil, nil, DashboardStats{}, fmt.Errorf("admin: list orders: %w", err)
	}

	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		items, err := o.OrderItems()
		if err != nil {
			return nil, nil, DashboardStats{}, fmt.Errorf("admin: decode order %d items: %w", o.ID, err)
		}
		views = append(views, OrderView{
			ID:     o.ID,
			User:   o.User.Name,
			Total:  o.TotalPrice,
			Status: o.Status,
			Items:  items,
		})
	}

	products, err := s.products.All()
	if err != nil {
		return nil, nil, DashboardStats{}, fmt.Errorf("admin: list products: %w", err)
	}

	revenue := collection.Reduce(orders, decimal.Zero, func(sum decimal.Decimal, o models.Order) decimal.Decimal {
		return sum.Add(o.TotalPrice)
	})

	stats := DashboardStats{
		Revenue:  revenue,
		Orders:   int64(len(orders)),
		Products: int64(len(products)),
	}

	return views, products, stats, nil
}

// UpdateOrderStatus overwrites the status of an existing order with the
// given label. Any value is accepted; there is deliberately no transition
// graph, and concurrent updates are last-write-wins.
func (s *AdminService) UpdateOrderStatus(id uint, status string) error {
	order, err := s.orders.FindByID(id)
	if err != nil {
		if errors.Is(err, orm.ErrNotFound) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("admin: find order %d: %w", id, err)
	}

	if err := s.orders.UpdateStatus(&order, status); err != nil {
		return fmt.Errorf("admin: update order %d: %w", id, err)
	}
	return nil
}

// AddProduct parses and validates the price, then creates the product.
// A price that is not a non-negative number fails the whole operation.
func (s *AdminService) AddProduct(name, price, category, imageURL string) (models.Product, error) {
	parsed, err := decimal.NewFromString(price)
	if err != nil || parsed.IsNegative() {
		return models.Product{}, ErrInvalidPrice
	}

	product := models.Product{
		Name:     name,
		Price:    parsed,
		Category: category,
		ImageURL: imageURL,
	}
	if err := s.products.Create(&product); err != nil {
		return models.Product{}, fmt.Errorf("admin: create product: %w", err)
	}
	return product, nil
}

// DeleteProduct hard-deletes a catalogue row. Orders placed before the
// deletion keep their snapshots untouched.
func (s *AdminService) DeleteProduct(id uint) error {
	if err := s.products.Delete(id); err != nil {
		if errors.Is(err, orm.ErrNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("admin: delete product %d: %w", id, err)
	}
	return nil
}
