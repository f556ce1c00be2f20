package postgres

import (
	"context"
	"fmt"
)

const categorySchema = `
CREATE TABLE IF NOT EXISTS categories (
	id          UUID PRIMARY KEY,
	name        VARCHAR(100) NOT NULL,
	description VARCHAR(500) NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_categories_name ON categories (name COLLATE "C", id);
CREATE INDEX IF NOT EXISTS idx_categories_created_at ON categories (created_at, id);`

// EnsureSchema crea la tabla de categorías y sus índices si no existen (DB_AUTO_MIGRATE).
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, categorySchema); err != nil {
		return fmt.Errorf("crear esquema categories: %w", err)
	}
	return nil
}
