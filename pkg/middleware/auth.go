package middleware

import (
	"net/http"

	"github.com/shashiranjanraj/bholemart/pkg/session"
)

// RequireAuth rejects requests that carry no authenticated session: the
// visitor is flashed a warning and redirected to the login page. The check
// is stateless per request; nothing is cached across requests.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.FromCtx(r)
		if _, ok := sess.Identity(); !ok {
			sess.Flash(session.FlashWarning, "Please login to continue")
			_ = sess.Save(w)
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin additionally demands the administrator capability. The flag
// is read from the session as captured at login; it is deliberately not
// re-checked against the user table (a demoted admin keeps access until
// re-login).
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.FromCtx(r)
		id, ok := sess.Identity()
		if !ok || !id.IsAdmin {
			sess.Flash(session.FlashDanger, "Admin access required")
			_ = sess.Save(w)
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
