package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/bholemart/pkg/middleware"
	"github.com/shashiranjanraj/bholemart/pkg/session"
)

// loginCookie runs a login through the session middleware and returns the
// resulting cookies.
func loginCookie(t *testing.T, store session.Store, identity session.Identity) []*http.Cookie {
	t.Helper()

	handler := session.Middleware(session.DefaultOptions(), store)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := session.FromCtx(r)
			sess.Login(identity)
			require.NoError(t, sess.Save(w))
		}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

// serveGuarded sends a request through session middleware + guard into a
// probe handler that records whether it was reached.
func serveGuarded(store session.Store, guard func(http.Handler) http.Handler, cookies []*http.Cookie) (*httptest.ResponseRecorder, *bool) {
	reached := false
	probe := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})
	handler := session.Middleware(session.DefaultOptions(), store)(guard(probe))

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, &reached
}

func TestRequireAuthRedirectsAnonymous(t *testing.T) {
	store := session.NewMemoryStore()

	rec, reached := serveGuarded(store, middleware.RequireAuth, nil)

	assert.False(t, *reached)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestRequireAuthQueuesFlash(t *testing.T) {
	store := session.NewMemoryStore()

	rec, _ := serveGuarded(store, middleware.RequireAuth, nil)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	// The warning must be waiting on the login page.
	handler := session.Middleware(session.DefaultOptions(), store)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			flashes := session.FromCtx(r).TakeFlashes()
			require.Len(t, flashes, 1)
			assert.Equal(t, session.FlashWarning, flashes[0].Level)
			assert.Equal(t, "Please login to continue", flashes[0].Message)
		}))
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req)
}

func TestRequireAuthPassesAuthenticated(t *testing.T) {
	store := session.NewMemoryStore()
	cookies := loginCookie(t, store, session.Identity{UserID: 7, Name: "Priya"})

	rec, reached := serveGuarded(store, middleware.RequireAuth, cookies)

	assert.True(t, *reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdminRejectsRegularUser(t *testing.T) {
	store := session.NewMemoryStore()
	cookies := loginCookie(t, store, session.Identity{UserID: 7, Name: "Priya"})

	rec, reached := serveGuarded(store, middleware.RequireAdmin, cookies)

	assert.False(t, *reached)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestRequireAdminRejectsAnonymous(t *testing.T) {
	store := session.NewMemoryStore()

	rec, reached := serveGuarded(store, middleware.RequireAdmin, nil)

	assert.False(t, *reached)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestRequireAdminPassesAdmin(t *testing.T) {
	store := session.NewMemoryStore()
	cookies := loginCookie(t, store, session.Identity{UserID: 1, Name: "Admin", IsAdmin: true})

	rec, reached := serveGuarded(store, middleware.RequireAdmin, cookies)

	assert.True(t, *reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}
