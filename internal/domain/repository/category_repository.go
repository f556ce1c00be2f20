package repository

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// CategoryFilter criterio de filtrado del listado. Search ya viene recortado; vacío = sin filtro.
type CategoryFilter struct {
	Search string
}

// HasSearch informa si el filtro restringe el conjunto.
func (f CategoryFilter) HasSearch() bool {
	return f.Search != ""
}

// CategoryQuery consulta ya resuelta: filtro, orden y ventana de página.
type CategoryQuery struct {
	Filter CategoryFilter
	Sort   entity.SortOrder
	Offset int
	Limit  int
}

// CategoryRepository define el puerto de persistencia para Category (DIP).
// GetByID devuelve (nil, nil) cuando la categoría no existe.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, q CategoryQuery) ([]*entity.Category, error)
	Count(ctx context.Context, f CategoryFilter) (int, error)
	Ping(ctx context.Context) error
}
