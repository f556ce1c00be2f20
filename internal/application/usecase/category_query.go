package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// BuildCategoryQuery traduce los parámetros del listado a una consulta resuelta:
// búsqueda recortada, orden con fallback a nameAsc y ventana offset/limit.
// Página o tamaño menores que 1 se rechazan con domain.ErrInvalidInput.
func BuildCategoryQuery(params dto.CategoryQueryParams) (repository.CategoryQuery, error) {
	if params.PageNumber < 1 || params.PageSize < 1 {
		return repository.CategoryQuery{}, fmt.Errorf("%w: page_number y page_size deben ser >= 1", domain.ErrInvalidInput)
	}
	return repository.CategoryQuery{
		Filter: repository.CategoryFilter{Search: strings.TrimSpace(params.Search)},
		Sort:   entity.ParseSortOrder(params.SortOrder),
		Offset: pageOffset(params.PageNumber, params.PageSize),
		Limit:  params.PageSize,
	}, nil
}

// pageOffset calcula (page-1)*size. Si el producto no cabe en int devuelve math.MaxInt:
// esa página queda siempre fuera de rango y el listado sale vacío.
func pageOffset(page, size int) int {
	if page-1 > math.MaxInt/size {
		return math.MaxInt
	}
	return (page - 1) * size
}

// CategoryQueryBuilder ejecuta la consulta resuelta contra el repositorio: conteo sobre el
// conjunto filtrado (antes de paginar) y luego la página ordenada.
type CategoryQueryBuilder struct {
	repo repository.CategoryRepository
}

// NewCategoryQueryBuilder construye el builder sobre el repositorio.
func NewCategoryQueryBuilder(repo repository.CategoryRepository) *CategoryQueryBuilder {
	return &CategoryQueryBuilder{repo: repo}
}

// Execute devuelve la página de entidades y el total de coincidencias.
func (b *CategoryQueryBuilder) Execute(ctx context.Context, params dto.CategoryQueryParams) ([]*entity.Category, int, error) {
	q, err := BuildCategoryQuery(params)
	if err != nil {
		return nil, 0, err
	}
	total, err := b.repo.Count(ctx, q.Filter)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 || q.Offset >= total {
		return []*entity.Category{}, total, nil
	}
	items, err := b.repo.List(ctx, q)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
