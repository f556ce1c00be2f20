// Package pdf genera el catálogo imprimible de categorías.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del catálogo     │  Página N de M / Total    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Nombre | Descripción | Creada                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: fecha de generación                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/ports"
)

var _ ports.CategoryCatalogRenderer = (*MarotoCatalogRenderer)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// MarotoCatalogRenderer implementa ports.CategoryCatalogRenderer usando Maroto v2.
type MarotoCatalogRenderer struct {
	now func() time.Time
}

// NewMarotoCatalogRenderer construye el generador.
func NewMarotoCatalogRenderer() *MarotoCatalogRenderer {
	return &MarotoCatalogRenderer{now: time.Now}
}

// RenderCategoryCatalog genera el PDF de la página y devuelve sus bytes.
func (g *MarotoCatalogRenderer) RenderCategoryCatalog(ctx context.Context, title string, page *dto.CategoryListResponse) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(headerRow(title, page))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(page.Items)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow(g.now()))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar catálogo: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y posición de la página dentro del listado (der).
func headerRow(title string, page *dto.CategoryListResponse) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("Página %d de %d", page.PageNumber, page.TotalPages), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
			}),
			text.New(fmt.Sprintf("%d categorías en total", page.TotalCount), props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorWhite, Top: 1.5,
		})).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
	}
	return row.New(7).Add(
		h("Nombre", 3, align.Left),
		h("Descripción", 7, align.Left),
		h("Creada", 2, align.Right),
	)
}

// tableRows: una fila por categoría; una fila informativa si la página está vacía.
func tableRows(items []dto.CategoryResponse) []core.Row {
	if len(items) == 0 {
		return []core.Row{row.New(8).Add(col.New(12).Add(
			text.New("Sin categorías para los criterios indicados.", props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 2,
			}),
		))}
	}
	result := make([]core.Row, 0, len(items))
	for _, c := range items {
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(c.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(7).Add(text.New(nonEmpty(c.Description, "-"), props.Text{Size: 8, Top: 1, Color: colorGray})),
			col.New(2).Add(text.New(c.CreatedAt.Format("02/01/2006"), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func footerRow(generatedAt time.Time) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New("Generado el "+generatedAt.UTC().Format("02/01/2006 15:04")+" UTC", props.Text{
			Size: 6.5, Color: colorGray, Top: 1, Align: align.Right,
		}),
	))
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
