package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/sqlbuilder"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación de CategoryRepository sobre SQLite. created_at se guarda en nanosegundos Unix.
type CategoryRepo struct {
	db *sql.DB
}

// NewCategoryRepository construye el adaptador.
func NewCategoryRepository(db *sql.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (id, name, description, created_at) VALUES (?, ?, ?, ?)`,
		category.ID, category.Name, category.Description, category.CreatedAt.UnixNano(),
	)
	if err != nil {
		if isConstraintViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+sqlbuilder.CategoryColumns+` FROM categories WHERE id = ?`, id)
	c, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// Update actualiza nombre y descripción.
func (r *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE categories SET name = ?, description = ? WHERE id = ?`,
		category.Name, category.Description, category.ID,
	)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete elimina una categoría por ID.
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// List lista categorías con filtro, orden y paginación.
func (r *CategoryRepo) List(ctx context.Context, q repository.CategoryQuery) ([]*entity.Category, error) {
	query, args := sqlbuilder.CategoryListQuery(sqlbuilder.SQLite, q)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Category, 0, sqlbuilder.ListCapacity(q.Limit))
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Count cuenta las categorías que cumplen el filtro.
func (r *CategoryRepo) Count(ctx context.Context, f repository.CategoryFilter) (int, error) {
	query, args := sqlbuilder.CategoryCountQuery(sqlbuilder.SQLite, f)
	var total int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return total, nil
}

// Ping verifica que la base responda.
func (r *CategoryRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCategory(s scanner) (*entity.Category, error) {
	var (
		c       entity.Category
		created int64
	)
	if err := s.Scan(&c.ID, &c.Name, &c.Description, &created); err != nil {
		return nil, err
	}
	c.CreatedAt = time.Unix(0, created).UTC()
	return &c, nil
}
