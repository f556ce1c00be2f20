package ports

import (
	"context"
	"time"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
)

// Tipos de evento emitidos tras una escritura exitosa sobre categorías.
const (
	CategoryCreated = "category.created"
	CategoryUpdated = "category.updated"
	CategoryDeleted = "category.deleted"
)

// CategoryEvent notificación de cambio sobre una categoría.
type CategoryEvent struct {
	Type       string    `json:"type"`
	CategoryID string    `json:"category_id"`
	Name       string    `json:"name,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// CategoryEventPublisher define el puerto de salida para publicar eventos de categorías.
// Cualquier adaptador (NATS, no-op, mock de test) debe implementar esta interfaz.
type CategoryEventPublisher interface {
	Publish(ctx context.Context, evt CategoryEvent) error
}

// CategoryCatalogRenderer genera la representación imprimible (PDF) de una página del catálogo.
type CategoryCatalogRenderer interface {
	RenderCategoryCatalog(ctx context.Context, title string, page *dto.CategoryListResponse) ([]byte, error)
}
