// Package sqlite implementa el almacén de categorías sobre SQLite embebido (modernc.org/sqlite, sin cgo).
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const categorySchema = `
CREATE TABLE IF NOT EXISTS categories (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	created_at  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_categories_name ON categories (name, id);
CREATE INDEX IF NOT EXISTS idx_categories_created_at ON categories (created_at, id);`

// Open abre la base en path (":memory:" para una base efímera) y verifica la conexión.
// Se limita a una conexión: SQLite serializa escrituras y ":memory:" es por conexión.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}

// EnsureSchema crea la tabla de categorías y sus índices si no existen.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, categorySchema); err != nil {
		return fmt.Errorf("crear esquema categories: %w", err)
	}
	return nil
}

// isConstraintViolation verifica si el error es una violación de clave primaria o única.
func isConstraintViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		return se.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY || se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
