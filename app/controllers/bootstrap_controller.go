package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/bholemart/app/repositories"
	"github.com/shashiranjanraj/bholemart/database/seeders"
	"github.com/shashiranjanraj/bholemart/pkg/cache"
	"github.com/shashiranjanraj/bholemart/pkg/database"
	"github.com/shashiranjanraj/bholemart/pkg/logger"
	"github.com/shashiranjanraj/bholemart/pkg/migration"
	"github.com/shashiranjanraj/bholemart/pkg/response"
)

// BootstrapController exposes the one-shot operational bootstrap route.
// It is safe to hit repeatedly: migrations track what already ran and
// the seeders skip existing rows.
type BootstrapController struct{}

func NewBootstrapController() *BootstrapController {
	return &BootstrapController{}
}

// InitDB creates the schema and loads seed data.
func (c *BootstrapController) InitDB(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	if err := migration.New(database.DB).Run(); err != nil {
		log.Error("bootstrap migration failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if err := seeders.RunAll(database.DB); err != nil {
		log.Error("bootstrap seeding failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	// Seeding writes around the repositories, so drop the cached catalogue.
	_ = cache.Del(repositories.CatalogCacheKey)

	response.Success(w, map[string]interface{}{
		"message": "Database initialized and seeded!",
	})
}
