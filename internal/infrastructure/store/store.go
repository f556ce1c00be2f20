package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/memory"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/Catalogo-api/pkg/config"
)

// OpenCategoryStore abre el almacén de categorías indicado por STORE_DRIVER.
// El cierre devuelto libera la conexión; siempre es seguro llamarlo.
func OpenCategoryStore(ctx context.Context, cfg *config.Config) (repository.CategoryRepository, func(), error) {
	switch cfg.Store.Driver {
	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, func() {}, err
		}
		if cfg.Store.AutoMigrate {
			if err := postgres.EnsureSchema(ctx, pool); err != nil {
				pool.Close()
				return nil, func() {}, err
			}
		}
		return postgres.NewCategoryRepository(pool), pool.Close, nil

	case config.StoreSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, func() {}, err
		}
		// SQLite siempre crea el esquema: un archivo nuevo o ":memory:" llegan vacíos.
		if err := sqlite.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, func() {}, err
		}
		return sqlite.NewCategoryRepository(db), func() { _ = db.Close() }, nil

	case config.StoreMemory:
		return memory.NewCategoryRepository(), func() {}, nil
	}
	return nil, func() {}, fmt.Errorf("store driver desconocido: %q", cfg.Store.Driver)
}
