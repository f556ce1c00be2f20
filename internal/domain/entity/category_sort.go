package entity

import "strings"

// SortOrder orden soportado para el listado de categorías.
type SortOrder int

const (
	SortNameAsc SortOrder = iota
	SortNameDesc
	SortCreatedAtAsc
	SortCreatedAtDesc
)

var sortOrderTokens = map[string]SortOrder{
	"nameasc":       SortNameAsc,
	"namedesc":      SortNameDesc,
	"createdatasc":  SortCreatedAtAsc,
	"createdatdesc": SortCreatedAtDesc,
}

// ParseSortOrder resuelve el token (sin distinguir mayúsculas). Cualquier valor desconocido o vacío
// devuelve SortNameAsc; nunca falla.
func ParseSortOrder(s string) SortOrder {
	if o, ok := sortOrderTokens[strings.ToLower(strings.TrimSpace(s))]; ok {
		return o
	}
	return SortNameAsc
}

// String devuelve el token canónico.
func (o SortOrder) String() string {
	switch o {
	case SortNameDesc:
		return "nameDesc"
	case SortCreatedAtAsc:
		return "createdAtAsc"
	case SortCreatedAtDesc:
		return "createdAtDesc"
	default:
		return "nameAsc"
	}
}

// Descending informa si la clave principal se ordena de mayor a menor.
func (o SortOrder) Descending() bool {
	return o == SortNameDesc || o == SortCreatedAtDesc
}

// ByCreatedAt informa si la clave principal es la fecha de creación (si no, el nombre).
func (o SortOrder) ByCreatedAt() bool {
	return o == SortCreatedAtAsc || o == SortCreatedAtDesc
}

// Less compara dos categorías según el orden. Los empates en la clave principal se resuelven
// por ID ascendente para que la paginación sea estable entre llamadas.
func (o SortOrder) Less(a, b *Category) bool {
	var cmp int
	if o.ByCreatedAt() {
		cmp = a.CreatedAt.Compare(b.CreatedAt)
	} else {
		cmp = strings.Compare(a.Name, b.Name)
	}
	if o.Descending() {
		cmp = -cmp
	}
	if cmp != 0 {
		return cmp < 0
	}
	return a.ID < b.ID
}
