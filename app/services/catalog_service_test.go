package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/bholemart/app/models"
	"github.com/shashiranjanraj/bholemart/app/services"
	"github.com/shashiranjanraj/bholemart/pkg/testkit"
)

func TestGroupByCategory(t *testing.T) {
	testkit.SetupDB(t, &models.Product{})
	adminSvc := services.NewAdminService()
	catalogSvc := services.NewCatalogService()

	for _, p := range []struct{ name, price, category string }{
		{"Fresh Apples", "120", "Fruits"},
		{"Organic Bananas", "40", "Fruits"},
		{"Farm Fresh Milk", "55", "Dairy"},
		{"Mystery Box", "99", ""},
	} {
		_, err := adminSvc.AddProduct(p.name, p.price, p.category, "")
		require.NoError(t, err)
	}

	products, err := catalogSvc.List()
	require.NoError(t, err)
	require.Len(t, products, 4)

	grouped := catalogSvc.GroupByCategory(products)
	require.Len(t, grouped, 3)

	require.Len(t, grouped["Fruits"], 2)
	assert.Equal(t, "Fresh Apples", grouped["Fruits"][0].Name)
	assert.Equal(t, "Organic Bananas", grouped["Fruits"][1].Name)
	assert.Len(t, grouped["Dairy"], 1)

	// Uncategorised products group under the empty label rather than
	// disappearing.
	require.Len(t, grouped[""], 1)
	assert.Equal(t, "Mystery Box", grouped[""][0].Name)
}

func TestListEmptyCatalog(t *testing.T) {
	testkit.SetupDB(t, &models.Product{})
	catalogSvc := services.NewCatalogService()

	products, err := catalogSvc.List()
	require.NoError(t, err)
	assert.Empty(t, products)
	assert.Empty(t, catalogSvc.GroupByCategory(products))
}
