package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/bholemart/pkg/router"
)

func ok(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

func tag(header, value string) router.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add(header, value)
			next.ServeHTTP(w, r)
		})
	}
}

func TestNamedRoutes(t *testing.T) {
	r := router.New()
	r.Get("/products", "products.index", ok)
	r.Post("/admin/order/{id}/update", "admin.order.update", ok)

	path, found := r.Path("products.index")
	assert.True(t, found)
	assert.Equal(t, "/products", path)

	_, found = r.Path("missing")
	assert.False(t, found)

	url, err := r.URL("admin.order.update", map[string]string{"id": "42"})
	require.NoError(t, err)
	assert.Equal(t, "/admin/order/42/update", url)

	_, err = r.URL("admin.order.update", nil)
	assert.Error(t, err, "unsubstituted params must fail")
}

func TestMethodRouting(t *testing.T) {
	r := router.New()
	r.Get("/ping", "ping", ok)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ping", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestGroupMiddlewareApplies(t *testing.T) {
	r := router.New()
	admin := r.Group("/admin", tag("X-Guard", "admin"))
	admin.Get("/dashboard", "admin.dashboard", ok, tag("X-Guard", "route"))
	r.Get("/public", "public", ok)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	// Group middleware runs before per-route middleware.
	assert.Equal(t, []string{"admin", "route"}, rec.Header().Values("X-Guard"))

	rec = httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/public", nil))
	assert.Empty(t, rec.Header().Values("X-Guard"))
}

func TestNestedGroupPrefixes(t *testing.T) {
	r := router.New()
	api := r.Group("/api")
	v1 := api.Group("/v1")
	v1.Get("/products", "api.v1.products", ok)

	path, found := r.Path("api.v1.products")
	assert.True(t, found)
	assert.Equal(t, "/api/v1/products", path)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNames(t *testing.T) {
	r := router.New()
	r.Get("/", "home", ok)
	r.Get("/cart", "cart", ok)

	names := r.Names()
	assert.Len(t, names, 2)
	assert.Equal(t, "/cart", names["cart"])
}
