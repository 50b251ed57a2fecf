package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/bholemart/app/services"
	"github.com/shashiranjanraj/bholemart/pkg/logger"
	"github.com/shashiranjanraj/bholemart/pkg/response"
	"github.com/shashiranjanraj/bholemart/pkg/session"
)

// CatalogController serves the public storefront pages.
type CatalogController struct {
	service *services.CatalogService
}

func NewCatalogController() *CatalogController {
	return &CatalogController{service: services.NewCatalogService()}
}

// Index lists the catalogue grouped by category.
func (c *CatalogController) Index(w http.ResponseWriter, r *http.Request) {
	sess := session.FromCtx(r)

	products, err := c.service.List()
	if err != nil {
		logger.WithCtx(r.Context()).Error("catalog listing failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	flashes := sess.TakeFlashes()
	_ = sess.Save(w)

	response.Success(w, map[string]interface{}{
		"products_by_category": c.service.GroupByCategory(products),
		"flashes":              flashes,
	})
}

// About is a static informational page.
func (c *CatalogController) About(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]interface{}{"page": "about"})
}

// Contact is a static informational page.
func (c *CatalogController) Contact(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]interface{}{"page": "contact"})
}

// Cart returns the cart page payload. The cart itself lives client-side;
// the server only contributes session state.
func (c *CatalogController) Cart(w http.ResponseWriter, r *http.Request) {
	sess := session.FromCtx(r)
	flashes := sess.TakeFlashes()
	_ = sess.Save(w)

	_, authenticated := sess.Identity()
	response.Success(w, map[string]interface{}{
		"page":          "cart",
		"authenticated": authenticated,
		"flashes":       flashes,
	})
}
