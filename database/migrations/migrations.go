// Package migrations contains all database migration files.
// Each migration file uses init() to call migration.Register().
// This package is imported by cmd/bholemart/main.go and the HTTP
// kernel so migrations are registered at startup.
package migrations
