// seed carga categorías iniciales en el almacén configurado (STORE_DRIVER, DB_*, SQLITE_PATH).
//
// Uso: go run ./cmd/seed [ruta/categorias.csv] [latin1]
// El CSV lleva las columnas name,description (la primera fila es encabezado).
// Sin archivo se cargan las categorías de ejemplo incluidas.
// Con "latin1" el archivo se decodifica desde ISO-8859-1 (exportaciones de Excel en español).
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/store"
	"github.com/jhoicas/Catalogo-api/pkg/config"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
	"github.com/jhoicas/Catalogo-api/pkg/validation"
)

var defaultCategories = []dto.CreateCategoryRequest{
	{Name: "Electrónica", Description: "Dispositivos y accesorios electrónicos"},
	{Name: "Smartphones", Description: "Teléfonos inteligentes"},
	{Name: "Headphones", Description: "Audífonos y auriculares"},
	{Name: "Hogar", Description: "Artículos para el hogar"},
	{Name: "Jardín", Description: "Herramientas y muebles de exterior"},
	{Name: "Libros", Description: ""},
	{Name: "Juguetes", Description: "Juguetes y juegos de mesa"},
	{Name: "Deportes", Description: "Ropa y equipo deportivo"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	items := defaultCategories
	if len(os.Args) > 1 {
		latin1 := len(os.Args) > 2 && strings.EqualFold(os.Args[2], "latin1")
		items, err = readCSV(os.Args[1], latin1)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
			os.Exit(1)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	repo, closeStore, err := store.OpenCategoryStore(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir almacén: %v\n", err)
		os.Exit(1)
	}
	defer closeStore()

	valid := validRequests(items, log)

	uc := usecase.NewCategoryUseCase(repo, nil, log)
	created := 0
	for _, in := range valid {
		out, err := uc.Create(ctx, in)
		if err != nil {
			log.Error().Err(err).Str("name", in.Name).Msg("crear categoría")
			continue
		}
		created++
		log.Debug().Str("id", out.ID).Str("name", out.Name).Msg("categoría creada")
	}
	log.Info().Int("created", created).Int("total", len(items)).Str("store", cfg.Store.Driver).Msg("seed finalizado")
}

func readCSV(path string, latin1 bool) ([]dto.CreateCategoryRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var src io.Reader = f
	if latin1 {
		src = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}
	r := csv.NewReader(src)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	var out []dto.CreateCategoryRequest
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue // encabezado
		}
		in := dto.CreateCategoryRequest{Name: strings.TrimSpace(row[0])}
		if len(row) > 1 {
			in.Description = strings.TrimSpace(row[1])
		}
		out = append(out, in)
	}
	return out, nil
}

// validRequests descarta las filas que no pasarían la validación del endpoint de creación.
func validRequests(items []dto.CreateCategoryRequest, log *logger.Logger) []dto.CreateCategoryRequest {
	out := make([]dto.CreateCategoryRequest, 0, len(items))
	for _, in := range items {
		if err := validation.Struct(in); err != nil {
			log.Warn().Err(err).Str("name", in.Name).Msg("fila descartada")
			continue
		}
		out = append(out, in)
	}
	return out
}
