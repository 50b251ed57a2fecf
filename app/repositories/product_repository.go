package repositories

import (
	"time"

	"github.com/shashiranjanraj/bholemart/app/models"
	"github.com/shashiranjanraj/bholemart/pkg/cache"
	"github.com/shashiranjanraj/bholemart/pkg/orm"
)

// CatalogCacheKey caches the full product scan; every write path busts it.
const CatalogCacheKey = "bholemart:products"

// ProductRepository handles database operations for Product.
type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// All returns every product in scan order. The full scan is intentional;
// the catalogue is small and unpaginated.
func (r *ProductRepository) All() ([]models.Product, error) {
	var products []models.Product
	err := orm.DB().Model(&models.Product{}).Cache(CatalogCacheKey, 5*time.Minute, &products)
	return products, err
}

// FindByID looks up a product by primary key.
func (r *ProductRepository) FindByID(id uint) (models.Product, error) {
	var product models.Product
	err := orm.DB().Model(&models.Product{}).Where("id = ?", id).First(&product)
	return product, err
}

// Create persists a new product and invalidates the catalogue cache.
func (r *ProductRepository) Create(product *models.Product) error {
	if err := orm.DB().Create(product); err != nil {
		return err
	}
	_ = cache.Del(CatalogCacheKey)
	return nil
}

// Delete hard-deletes a product. Returns orm.ErrNotFound when the id is
// unknown. Existing order snapshots are unaffected.
func (r *ProductRepository) Delete(id uint) error {
	if err := orm.DB().Unscoped().Where("id = ?", id).Delete(&models.Product{}); err != nil {
		return err
	}
	_ = cache.Del(CatalogCacheKey)
	return nil
}

// Count returns the number of products in the catalogue.
func (r *ProductRepository) Count() (int64, error) {
	return orm.DB().Model(&models.Product{}).Count()
}
