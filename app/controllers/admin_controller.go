package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/shashiranjanraj/bholemart/app/services"
	"github.com/shashiranjanraj/bholemart/pkg/bind"
	"github.com/shashiranjanraj/bholemart/pkg/logger"
	"github.com/shashiranjanraj/bholemart/pkg/response"
	"github.com/shashiranjanraj/bholemart/pkg/session"
	"github.com/shashiranjanraj/bholemart/pkg/storage"
)

// AdminController covers the back-office: dashboard, order status
// updates and product management.
type AdminController struct {
	service *services.AdminService
}

func NewAdminController() *AdminController {
	return &AdminController{service: services.NewAdminService()}
}

// Dashboard returns orders (newest first), the product list and the
// aggregate stats shown at the top of the admin page.
func (c *AdminController) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess := session.FromCtx(r)

	orders, products, stats, err := c.service.Dashboard()
	if err != nil {
		logger.WithCtx(r.Context()).Error("dashboard load failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	flashes := sess.TakeFlashes()
	_ = sess.Save(w)

	response.Success(w, map[string]interface{}{
		"orders":   orders,
		"products": products,
		"stats":    stats,
		"flashes":  flashes,
	})
}

// UpdateOrderStatus sets a new status string on an order. The status is
// free-form text from the dashboard form, stored as submitted.
func (c *AdminController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	sess := session.FromCtx(r)

	id, err := routeID(r)
	if err != nil {
		response.NotFound(w)
		return
	}

	form, err := bind.Form(r, "status")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid form body")
		return
	}

	status := form["status"]
	if err := c.service.UpdateOrderStatus(id, status); err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			response.NotFound(w)
			return
		}
		logger.WithCtx(r.Context()).Error("order status update failed", "error", err, "order_id", id)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	sess.Flash(session.FlashSuccess, fmt.Sprintf("Order #%d status updated to %s", id, status))
	_ = sess.Save(w)
	response.Redirect(w, r, "/admin")
}

// AddProduct creates a product from the dashboard form. An uploaded
// image file wins over the image_url field when both are present.
func (c *AdminController) AddProduct(w http.ResponseWriter, r *http.Request) {
	sess := session.FromCtx(r)

	form, err := bind.Form(r, "name", "price", "category", "image_url")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid form body")
		return
	}

	imageURL := form["image_url"]
	if file, header, ferr := r.FormFile("image"); ferr == nil {
		defer file.Close()
		name := "products/" + uuid.NewString() + strings.ToLower(filepath.Ext(header.Filename))
		url, perr := storage.PutStream(name, file)
		if perr != nil {
			logger.WithCtx(r.Context()).Error("product image upload failed", "error", perr)
			response.Error(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		imageURL = url
	}

	if _, err := c.service.AddProduct(form["name"], form["price"], form["category"], imageURL); err != nil {
		if errors.Is(err, services.ErrInvalidPrice) {
			response.Error(w, http.StatusBadRequest, "invalid price")
			return
		}
		logger.WithCtx(r.Context()).Error("product creation failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	sess.Flash(session.FlashSuccess, "Product added successfully!")
	_ = sess.Save(w)
	response.Redirect(w, r, "/admin")
}

// DeleteProduct removes a product for good. Item snapshots inside past
// orders are unaffected.
func (c *AdminController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	sess := session.FromCtx(r)

	id, err := routeID(r)
	if err != nil {
		response.NotFound(w)
		return
	}

	if err := c.service.DeleteProduct(id); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			response.NotFound(w)
			return
		}
		logger.WithCtx(r.Context()).Error("product deletion failed", "error", err, "product_id", id)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	sess.Flash(session.FlashSuccess, "Product deleted successfully!")
	_ = sess.Save(w)
	response.Redirect(w, r, "/admin")
}

func routeID(r *http.Request) (uint, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("bad id %q", raw)
	}
	return uint(id), nil
}
