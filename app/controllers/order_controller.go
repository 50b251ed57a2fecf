package controllers

import (
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/bholemart/app/models"
	"github.com/shashiranjanraj/bholemart/app/services"
	"github.com/shashiranjanraj/bholemart/pkg/bind"
	"github.com/shashiranjanraj/bholemart/pkg/logger"
	"github.com/shashiranjanraj/bholemart/pkg/response"
	"github.com/shashiranjanraj/bholemart/pkg/session"
)

// OrderController turns the client cart into persisted orders.
type OrderController struct {
	service *services.OrderService
}

func NewOrderController() *OrderController {
	return &OrderController{service: services.NewOrderService()}
}

type placeOrderInput struct {
	Items []models.OrderItem `json:"items"`
	Total decimal.Decimal    `json:"total"`
}

// Place accepts the cart payload and records the order. The checkout
// script on the cart page expects a {success, message} body either way,
// so failures from an empty cart still answer 200.
func (c *OrderController) Place(w http.ResponseWriter, r *http.Request) {
	sess := session.FromCtx(r)
	identity, ok := sess.Identity()
	if !ok {
		response.Unauthorized(w)
		return
	}

	var input placeOrderInput
	if _, err := bind.JSON(r, &input); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := c.service.Place(identity, input.Items, input.Total)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			response.JSON(w, http.StatusOK, map[string]interface{}{
				"success": false,
				"message": "Cart is empty",
			})
			return
		}
		logger.WithCtx(r.Context()).Error("order placement failed", "error", err, "user_id", identity.UserID)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	logger.WithCtx(r.Context()).Info("order placed", "order_id", id, "user_id", identity.UserID)
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"message":  "Order placed successfully!",
		"order_id": id,
	})
}
