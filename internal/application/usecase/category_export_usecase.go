package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/ports"
)

// CategoryExportUseCase genera el catálogo imprimible de una página del listado.
type CategoryExportUseCase struct {
	categories *CategoryUseCase
	renderer   ports.CategoryCatalogRenderer
	title      string
}

// NewCategoryExportUseCase construye el caso de uso de exportación.
func NewCategoryExportUseCase(categories *CategoryUseCase, renderer ports.CategoryCatalogRenderer, title string) *CategoryExportUseCase {
	return &CategoryExportUseCase{categories: categories, renderer: renderer, title: title}
}

// ExportPDF aplica la misma consulta que List y devuelve los bytes del PDF.
func (uc *CategoryExportUseCase) ExportPDF(ctx context.Context, params dto.CategoryQueryParams) ([]byte, error) {
	page, err := uc.categories.List(ctx, params)
	if err != nil {
		return nil, err
	}
	doc, err := uc.renderer.RenderCategoryCatalog(ctx, uc.title, page)
	if err != nil {
		return nil, fmt.Errorf("exportar catálogo: %w", err)
	}
	return doc, nil
}
