// Package session provides cookie-based HTTP sessions for bholemart.
//
// A session is an explicit server-side record (user id, display name,
// administrator flag, pending flash notifications) keyed by an opaque id.
// The browser holds only a signed token (JWT, HS256) carrying that id; the
// record itself lives in Redis when available, or in-process memory
// otherwise. Tampered or expired tokens silently start a fresh session.
//
// Usage:
//
//	r.Use(session.Middleware(session.DefaultOptions()))
//
//	sess := session.FromCtx(r)
//	sess.Login(session.Identity{UserID: u.ID, Name: u.Name, IsAdmin: u.IsAdmin})
//	sess.Flash(session.FlashSuccess, "Logged in successfully!")
//	sess.Save(w)
package session

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shashiranjanraj/bholemart/pkg/cache"
)

// Flash levels, matching the notification categories used across the UI.
const (
	FlashSuccess = "success"
	FlashInfo    = "info"
	FlashWarning = "warning"
	FlashDanger  = "danger"
)

// Identity is the authenticated principal carried by a session. The admin
// flag is captured at login time and not re-checked against the store, so a
// demoted administrator keeps the capability until re-login.
type Identity struct {
	UserID  uint   `json:"user_id"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
}

// Flash is a one-shot notification consumed on the next read.
type Flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// record is what actually gets persisted in the store.
type record struct {
	Identity *Identity `json:"identity,omitempty"`
	Flashes  []Flash   `json:"flashes,omitempty"`
}

// Options configures session behaviour.
type Options struct {
	CookieName string
	TTL        time.Duration
	HTTPOnly   bool
	Secure     bool
	SameSite   http.SameSite
	Path       string
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		CookieName: "bholemart_session",
		TTL:        2 * time.Hour,
		HTTPOnly:   true,
		Secure:     false, // set true behind TLS
		SameSite:   http.SameSiteLaxMode,
		Path:       "/",
	}
}

type ctxKey struct{}

// Session is the in-request session handle.
type Session struct {
	id      string
	rec     record
	opts    Options
	store   Store
	changed bool
}

func newID() string { return uuid.NewString() }

// Identity returns the authenticated identity, if any.
func (s *Session) Identity() (Identity, bool) {
	if s.rec.Identity == nil {
		return Identity{}, false
	}
	return *s.rec.Identity, true
}

// Login binds an identity to the session. The session id is rotated so a
// pre-login cookie can never be replayed as an authenticated one.
func (s *Session) Login(id Identity) {
	_ = s.store.delete(s.id)
	s.id = newID()
	s.rec.Identity = &id
	s.changed = true
}

// Logout destroys the server-side record and rotates to a fresh anonymous
// session, so a flash queued after logout still reaches the next page.
func (s *Session) Logout() {
	_ = s.store.delete(s.id)
	s.id = newID()
	s.rec = record{}
	s.changed = true
}

// Flash queues a one-shot notification.
func (s *Session) Flash(level, message string) {
	s.rec.Flashes = append(s.rec.Flashes, Flash{Level: level, Message: message})
	s.changed = true
}

// TakeFlashes returns all pending notifications and clears them.
func (s *Session) TakeFlashes() []Flash {
	out := s.rec.Flashes
	if len(out) > 0 {
		s.rec.Flashes = nil
		s.changed = true
	}
	return out
}

// ID returns the session id. Exposed for logging and tests only; the id is
// never sent to the client unsigned.
func (s *Session) ID() string { return s.id }

// Save persists the record and writes the signed cookie. No-op when
// nothing changed.
func (s *Session) Save(w http.ResponseWriter) error {
	if !s.changed {
		return nil
	}

	if err := s.store.save(s.id, s.rec, s.opts.TTL); err != nil {
		return err
	}

	token, err := signToken(s.id, s.opts.TTL)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.opts.CookieName,
		Value:    token,
		Path:     s.opts.Path,
		MaxAge:   int(s.opts.TTL.Seconds()),
		HttpOnly: s.opts.HTTPOnly,
		Secure:   s.opts.Secure,
		SameSite: s.opts.SameSite,
	})

	s.changed = false
	return nil
}

// ─── Store ────────────────────────────────────────────────────────────────────

// Store persists session records by id.
type Store interface {
	load(id string) (record, bool)
	save(id string, rec record, ttl time.Duration) error
	delete(id string) error
}

func storeKey(id string) string { return "bholemart:session:" + id }

// redisStore keeps records in Redis via pkg/cache.
type redisStore struct{}

func (redisStore) load(id string) (record, bool) {
	var rec record
	if cache.Get(storeKey(id), &rec) {
		return rec, true
	}
	return record{}, false
}

func (redisStore) save(id string, rec record, ttl time.Duration) error {
	return cache.Set(storeKey(id), rec, ttl)
}

func (redisStore) delete(id string) error { return cache.Del(storeKey(id)) }

// memoryStore keeps records in-process. Used when Redis is not configured
// and in tests.
type memoryStore struct {
	mu   sync.Mutex
	recs map[string]memoryEntry
}

type memoryEntry struct {
	rec     record
	expires time.Time
}

// NewMemoryStore returns an in-process store.
func NewMemoryStore() Store {
	return &memoryStore{recs: make(map[string]memoryEntry)}
}

func (m *memoryStore) load(id string) (record, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.recs[id]
	if !ok {
		return record{}, false
	}
	if time.Now().After(e.expires) {
		delete(m.recs, id)
		return record{}, false
	}
	return e.rec, true
}

func (m *memoryStore) save(id string, rec record, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Evict expired records while holding the lock, so abandoned sessions
	// don't accumulate one entry each for the life of the process.
	now := time.Now()
	for k, e := range m.recs {
		if now.After(e.expires) {
			delete(m.recs, k)
		}
	}

	m.recs[id] = memoryEntry{rec: rec, expires: now.Add(ttl)}
	return nil
}

func (m *memoryStore) delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.recs, id)
	return nil
}

// DefaultStore picks Redis when connected, in-process memory otherwise.
func DefaultStore() Store {
	if cache.Available() {
		return redisStore{}
	}
	return NewMemoryStore()
}

// ─── Middleware ───────────────────────────────────────────────────────────────

// Middleware loads (or creates) the session for every request and injects it
// into the request context. Handlers call session.FromCtx(r) to access it.
func Middleware(opts Options, store Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := &Session{opts: opts, store: store}

			if cookie, err := r.Cookie(opts.CookieName); err == nil {
				if id, err := parseToken(cookie.Value); err == nil {
					if rec, ok := store.load(id); ok {
						sess.id = id
						sess.rec = rec
					}
				}
			}
			if sess.id == "" {
				sess.id = newID()
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromCtx retrieves the session from the request context. Returns an empty
// memory-backed session if none is present (keeps handlers testable in
// isolation).
func FromCtx(r *http.Request) *Session {
	if s, ok := r.Context().Value(ctxKey{}).(*Session); ok {
		return s
	}
	return &Session{id: newID(), opts: DefaultOptions(), store: NewMemoryStore()}
}
