// Package memory implementa los puertos de persistencia en memoria del proceso.
// Útil para desarrollo local (STORE_DRIVER=memory) y para tests de casos de uso.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación de CategoryRepository sobre un mapa protegido por RWMutex.
// Guarda y devuelve copias: nadie fuera del repo comparte punteros con el estado interno.
type CategoryRepo struct {
	mu    sync.RWMutex
	items map[string]entity.Category
}

// NewCategoryRepository construye el repositorio vacío.
func NewCategoryRepository() *CategoryRepo {
	return &CategoryRepo{items: make(map[string]entity.Category)}
}

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[category.ID]; ok {
		return domain.ErrDuplicate
	}
	r.items[category.ID] = *category
	return nil
}

// GetByID obtiene una categoría por ID; (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// Update reemplaza nombre y descripción; ID y CreatedAt almacenados se conservan.
func (r *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.items[category.ID]
	if !ok {
		return nil
	}
	stored.Name = category.Name
	stored.Description = category.Description
	r.items[category.ID] = stored
	return nil
}

// Delete elimina una categoría por ID.
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

// List filtra, ordena y recorta la ventana pedida.
func (r *CategoryRepo) List(ctx context.Context, q repository.CategoryQuery) ([]*entity.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	matched := r.filter(q.Filter)
	sort.Slice(matched, func(i, j int) bool { return q.Sort.Less(matched[i], matched[j]) })

	offset := max(q.Offset, 0)
	if offset >= len(matched) {
		return []*entity.Category{}, nil
	}
	end := len(matched)
	if q.Limit >= 0 && q.Limit < end-offset {
		end = offset + q.Limit
	}
	return matched[offset:end], nil
}

// Count cuenta las categorías que cumplen el filtro.
func (r *CategoryRepo) Count(ctx context.Context, f repository.CategoryFilter) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return len(r.filter(f)), nil
}

// Ping siempre disponible mientras el contexto siga vivo.
func (r *CategoryRepo) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (r *CategoryRepo) filter(f repository.CategoryFilter) []*entity.Category {
	r.mu.RLock()
	defer r.mu.RUnlock()
	match := newMatcher(f)
	out := make([]*entity.Category, 0, len(r.items))
	for _, c := range r.items {
		if match(c) {
			c := c
			out = append(out, &c)
		}
	}
	return out
}

// newMatcher devuelve el predicado de búsqueda: subcadena sin distinguir mayúsculas en nombre o descripción.
func newMatcher(f repository.CategoryFilter) func(entity.Category) bool {
	if !f.HasSearch() {
		return func(entity.Category) bool { return true }
	}
	fold := cases.Fold()
	needle := fold.String(f.Search)
	return func(c entity.Category) bool {
		return strings.Contains(fold.String(c.Name), needle) ||
			strings.Contains(fold.String(c.Description), needle)
	}
}
