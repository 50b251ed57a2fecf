// Package kernel builds the storefront's HTTP handler: global
// middleware stack, operational endpoints and the application routes.
package kernel

import (
	"net/http"
	"time"

	"github.com/shashiranjanraj/bholemart/app/models"
	"github.com/shashiranjanraj/bholemart/app/routes"
	"github.com/shashiranjanraj/bholemart/pkg/database"
	"github.com/shashiranjanraj/bholemart/pkg/metrics"
	"github.com/shashiranjanraj/bholemart/pkg/middleware"
	"github.com/shashiranjanraj/bholemart/pkg/reqid"
	"github.com/shashiranjanraj/bholemart/pkg/router"
	"github.com/shashiranjanraj/bholemart/pkg/session"
	"github.com/shashiranjanraj/bholemart/pkg/storage"
)

// NewHandler wires the complete HTTP surface.
func NewHandler() http.Handler {
	// Keep the schema current even when nobody ran `bholemart migrate`;
	// /init_db remains the path that also seeds.
	if database.DB != nil {
		_ = database.DB.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{})
	}

	r := router.New()

	// Global middleware stack (outermost → innermost):
	//  1. Prometheus metrics — outermost for accurate total latency
	//  2. Recovery          — catches panics before they kill the request
	//  3. Request ID        — inject unique ID before anything logs
	//  4. Logger            — logs request_id from context
	//  5. Session           — load/create the signed session cookie
	//  6. CORS              — set CORS headers
	//  7. Rate limiter      — reject abusers early
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(session.Middleware(session.DefaultOptions(), session.DefaultStore()))
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(200, time.Minute))

	// Operational endpoints outside the route table.
	r.Mount("/metrics", metrics.Handler())
	r.Mount("/static", http.StripPrefix("/static", storage.FileServer()))

	routes.RegisterWeb(r)

	return r.Handler()
}
