package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/bholemart/app/models"
	"github.com/shashiranjanraj/bholemart/app/services"
	"github.com/shashiranjanraj/bholemart/pkg/session"
	"github.com/shashiranjanraj/bholemart/pkg/testkit"
)

func cartItems() []models.OrderItem {
	return []models.OrderItem{
		{ProductID: 1, Name: "Fresh Apples", Quantity: 2, Price: decimal.NewFromInt(120)},
		{ProductID: 4, Name: "Farm Fresh Milk", Quantity: 1, Price: decimal.NewFromInt(55)},
	}
}

func TestPlaceOrder(t *testing.T) {
	db := testkit.SetupDB(t, &models.User{}, &models.Order{})
	svc := services.NewOrderService()

	buyer := session.Identity{UserID: 7, Name: "Priya"}
	id, err := svc.Place(buyer, cartItems(), decimal.NewFromInt(295))
	require.NoError(t, err)
	require.NotZero(t, id)

	var order models.Order
	require.NoError(t, db.First(&order, id).Error)
	assert.Equal(t, uint(7), order.UserID)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.True(t, order.TotalPrice.Equal(decimal.NewFromInt(295)),
		"total = %s", order.TotalPrice)
}

func TestPlaceOrderSnapshotRoundTrip(t *testing.T) {
	db := testkit.SetupDB(t, &models.User{}, &models.Order{})
	svc := services.NewOrderService()

	items := cartItems()
	id, err := svc.Place(session.Identity{UserID: 7}, items, decimal.NewFromInt(295))
	require.NoError(t, err)

	var order models.Order
	require.NoError(t, db.First(&order, id).Error)

	got, err := order.OrderItems()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, items[0].Name, got[0].Name)
	assert.Equal(t, items[0].Quantity, got[0].Quantity)
	assert.True(t, got[0].Price.Equal(items[0].Price))
	assert.Equal(t, items[1].ProductID, got[1].ProductID)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	db := testkit.SetupDB(t, &models.User{}, &models.Order{})
	svc := services.NewOrderService()

	_, err := svc.Place(session.Identity{UserID: 7}, nil, decimal.Zero)
	assert.ErrorIs(t, err, services.ErrEmptyCart)

	// Rejected carts must leave no trace.
	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPlaceOrderKeepsClientTotal(t *testing.T) {
	db := testkit.SetupDB(t, &models.User{}, &models.Order{})
	svc := services.NewOrderService()

	// The declared total is stored as submitted, even when it disagrees
	// with the item prices.
	id, err := svc.Place(session.Identity{UserID: 7}, cartItems(), decimal.NewFromInt(1))
	require.NoError(t, err)

	var order models.Order
	require.NoError(t, db.First(&order, id).Error)
	assert.True(t, order.TotalPrice.Equal(decimal.NewFromInt(1)))
}
