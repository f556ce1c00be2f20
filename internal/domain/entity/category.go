package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category representa una categoría del catálogo.
// ID y CreatedAt se asignan una sola vez en NewCategory y ningún camino de actualización los modifica.
type Category struct {
	ID          string
	Name        string
	Description string // vacío si no se informó
	CreatedAt   time.Time
}

// NewCategory construye una categoría con identidad nueva y fecha de creación en UTC.
func NewCategory(name, description string, now time.Time) *Category {
	return &Category{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		CreatedAt:   now.UTC(),
	}
}

// Apply sobrescribe solo los campos informados (nil = sin cambio).
func (c *Category) Apply(name, description *string) {
	if name != nil {
		c.Name = *name
	}
	if description != nil {
		c.Description = *description
	}
}
