package dto

import "time"

// Valores por defecto del listado cuando el cliente no envía paginación.
const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
	MaxPageSize       = 100
)

// CategoryQueryParams entrada del listado de categorías.
type CategoryQueryParams struct {
	PageNumber int    `query:"page_number"`
	PageSize   int    `query:"page_size"`
	Search     string `query:"search"`
	SortOrder  string `query:"sort_order"` // nameAsc | nameDesc | createdAtAsc | createdAtDesc
}

// CreateCategoryRequest entrada para crear una categoría. ID y fecha de creación no se aceptan del cliente.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// UpdateCategoryRequest entrada para actualizar una categoría (nil = sin cambio).
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// CategoryListResponse lista paginada de categorías.
type CategoryListResponse = PaginatedResult[CategoryResponse]
