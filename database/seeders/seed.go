package seeders

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/bholemart/app/models"
	"github.com/shashiranjanraj/bholemart/pkg/auth"
)

func init() {
	Register("admin_user", SeedAdminUser)
	Register("products", SeedProducts)
}

// SeedAdminUser creates the default back-office account if no user with
// its email exists yet.
func SeedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", "admin@jaibhole.com").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword("admin123")
	if err != nil {
		return err
	}
	return db.Create(&models.User{
		Name:     "Admin",
		Email:    "admin@jaibhole.com",
		Password: hash,
		IsAdmin:  true,
	}).Error
}

// SeedProducts fills the catalogue with starter stock. Skipped when any
// products already exist.
func SeedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []models.Product{
		{Name: "Fresh Apples", Price: decimal.NewFromInt(120), Category: "Fruits", ImageURL: "https://images.unsplash.com/photo-1560806887-1e4cd0b6cbd6?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60"},
		{Name: "Organic Bananas", Price: decimal.NewFromInt(40), Category: "Fruits", ImageURL: "https://images.unsplash.com/photo-1571771896612-618da8fd8b00?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60"},
		{Name: "Whole Wheat Bread", Price: decimal.NewFromInt(35), Category: "Bakery", ImageURL: "https://images.unsplash.com/photo-1509440159596-0249088772ff?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60"},
		{Name: "Farm Fresh Milk", Price: decimal.NewFromInt(55), Category: "Dairy", ImageURL: "https://images.unsplash.com/photo-1563636619-e9143da7973b?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60"},
		{Name: "Basmati Rice (1kg)", Price: decimal.NewFromInt(180), Category: "Grains", ImageURL: "https://images.unsplash.com/photo-1586201375761-83865001e31c?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60"},
		{Name: "Premium Chocolate", Price: decimal.NewFromInt(250), Category: "Snacks", ImageURL: "https://images.unsplash.com/photo-1542843137-8791a69ea4d4?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60"},
	}
	return db.Create(&products).Error
}
