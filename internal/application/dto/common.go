package dto

// PaginatedResult envoltorio de una página de resultados con metadatos de conteo.
// TotalCount cuenta todos los registros que cumplen el filtro, independiente de la página.
type PaginatedResult[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"total_count"`
	PageNumber int `json:"page_number"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// NewPaginatedResult construye el envoltorio y calcula TotalPages. Items nunca queda nil.
func NewPaginatedResult[T any](items []T, total, pageNumber, pageSize int) *PaginatedResult[T] {
	if items == nil {
		items = []T{}
	}
	pages := 0
	if pageSize > 0 {
		pages = total / pageSize
		if total%pageSize != 0 {
			pages++
		}
	}
	return &PaginatedResult[T]{
		Items:      items,
		TotalCount: total,
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalPages: pages,
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
