package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC  *usecase.CategoryUseCase
	ExportUC    *usecase.CategoryExportUseCase
	Store       Pinger
	ServiceName string
	Logger      *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", NewHealthHandler(deps.Store, deps.ServiceName).Check)

	api := app.Group("/api")

	// Categories (público; la autorización queda fuera de este servicio)
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.ExportUC, deps.Logger)
	categories.Get("/", categoryHandler.List)
	categories.Get("/export", categoryHandler.Export)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)
}
