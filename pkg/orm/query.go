// Package orm is a thin, chainable query layer over the global GORM handle.
// Repositories go through it so caching and error translation stay in one
// place.
package orm

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/bholemart/pkg/cache"
	"github.com/shashiranjanraj/bholemart/pkg/database"
)

// ErrNotFound is the storage-agnostic "no such row" error.
var ErrNotFound = errors.New("orm: record not found")

type Query struct {
	db *gorm.DB
}

func DB() *Query {
	return &Query{db: database.DB}
}

func (q *Query) Model(v interface{}) *Query {
	return &Query{db: q.db.Model(v)}
}

func (q *Query) Where(query string, args ...interface{}) *Query {
	return &Query{db: q.db.Where(query, args...)}
}

func (q *Query) Order(value string) *Query {
	return &Query{db: q.db.Order(value)}
}

// Preload eager-loads the named association on the result set.
func (q *Query) Preload(query string, args ...interface{}) *Query {
	return &Query{db: q.db.Preload(query, args...)}
}

// Unscoped bypasses GORM's soft-delete handling so Delete removes the row
// for real.
func (q *Query) Unscoped() *Query {
	return &Query{db: q.db.Unscoped()}
}

func (q *Query) Get(dest interface{}) error {
	return q.db.Find(dest).Error
}

func (q *Query) First(dest interface{}) error {
	err := q.db.First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (q *Query) Count() (int64, error) {
	var n int64
	err := q.db.Count(&n).Error
	return n, err
}

func (q *Query) Create(v interface{}) error {
	return q.db.Create(v).Error
}

func (q *Query) Save(v interface{}) error {
	return q.db.Save(v).Error
}

// Delete removes rows matched by the chained conditions. Returns ErrNotFound
// when nothing matched.
func (q *Query) Delete(v interface{}) error {
	res := q.db.Delete(v)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Cache runs the query through the Redis cache: a hit fills dest without
// touching the database, a miss queries and stores the result for ttl.
// Writers are expected to bust the key with cache.Del.
func (q *Query) Cache(key string, ttl time.Duration, dest interface{}) error {
	if cache.Get(key, dest) {
		return nil
	}

	if err := q.db.Find(dest).Error; err != nil {
		return err
	}

	_ = cache.Set(key, dest, ttl)
	return nil
}
