package services

import (
	"github.com/shashiranjanraj/bholemart/app/models"
	"github.com/shashiranjanraj/bholemart/app/repositories"
	"github.com/shashiranjanraj/bholemart/pkg/collection"
)

// CatalogService lists and groups the storefront catalogue.
type CatalogService struct {
	products *repositories.ProductRepository
}

func NewCatalogService() *CatalogService {
	return &CatalogService{products: repositories.NewProductRepository()}
}

// List returns every product in scan order.
func (s *CatalogService) List() ([]models.Product, error) {
	return s.products.All()
}

// GroupByCategory partitions products by their category label. Products
// without a category form their own group under the empty label, and each
// group keeps the underlying scan order.
func (s *CatalogService) GroupByCategory(products []models.Product) map[string][]models.Product {
	return collection.GroupBy(products, func(p models.Product) string { return p.Category })
}
