// Package routes wires every HTTP route of the storefront to its
// controller, grouped by the guard protecting it.
package routes

import (
	"github.com/shashiranjanraj/bholemart/app/controllers"
	"github.com/shashiranjanraj/bholemart/pkg/middleware"
	"github.com/shashiranjanraj/bholemart/pkg/router"
)

// RegisterWeb mounts the storefront, auth, checkout and admin routes.
func RegisterWeb(r *router.Router) {
	catalog := controllers.NewCatalogController()
	auth := controllers.NewAuthController()
	order := controllers.NewOrderController()
	admin := controllers.NewAdminController()
	bootstrap := controllers.NewBootstrapController()

	// Public storefront.
	r.Get("/", "catalog.index", catalog.Index)
	r.Get("/about", "catalog.about", catalog.About)
	r.Get("/contact", "catalog.contact", catalog.Contact)
	r.Get("/cart", "catalog.cart", catalog.Cart)

	// Authentication.
	r.Get("/login", "auth.login.show", auth.ShowLogin)
	r.Post("/login", "auth.login", auth.Login)
	r.Get("/signup", "auth.signup.show", auth.ShowSignup)
	r.Post("/signup", "auth.signup", auth.Signup)
	r.Get("/logout", "auth.logout", auth.Logout)

	// Checkout requires a logged-in user.
	r.Post("/place_order", "order.place", order.Place, middleware.RequireAuth)

	// Back-office, admin only.
	adm := r.Group("", middleware.RequireAuth, middleware.RequireAdmin)
	adm.Get("/admin", "admin.dashboard", admin.Dashboard)
	adm.Post("/admin/order/{id}/update", "admin.order.update", admin.UpdateOrderStatus)
	adm.Post("/admin/product/add", "admin.product.add", admin.AddProduct)
	adm.Get("/admin/product/delete/{id}", "admin.product.delete", admin.DeleteProduct)

	// Operational bootstrap.
	r.Get("/init_db", "bootstrap.init_db", bootstrap.InitDB)
}
