package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Pinger comprueba que el almacenamiento responde.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler expone el estado del servicio y de su almacenamiento.
type HealthHandler struct {
	store   Pinger
	service string
}

// NewHealthHandler construye el handler.
func NewHealthHandler(store Pinger, service string) *HealthHandler {
	return &HealthHandler{store: store, service: service}
}

// Check godoc
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	if h.store != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := h.store.Ping(ctx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status":  "unavailable",
				"service": h.service,
				"error":   err.Error(),
			})
		}
	}
	return c.JSON(fiber.Map{"status": "ok", "service": h.service})
}
