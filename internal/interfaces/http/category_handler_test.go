package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/memory"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/Catalogo-api/internal/interfaces/http"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

// buildTestApp construye la aplicación Fiber con el repositorio en memoria.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	repo := memory.NewCategoryRepository()
	return buildTestAppWith(t, repo, repo)
}

func buildTestAppWith(t *testing.T, repo *memory.CategoryRepo, store apphttp.Pinger) *fiber.App {
	t.Helper()
	log := logger.Nop()
	categoryUC := usecase.NewCategoryUseCase(repo, nil, log)
	exportUC := usecase.NewCategoryExportUseCase(categoryUC, pdf.NewMarotoCatalogRenderer(), "Catálogo")

	app := fiber.New()
	app.Use(apphttp.RequestLogger(log))
	apphttp.Router(app, apphttp.RouterDeps{
		CategoryUC:  categoryUC,
		ExportUC:    exportUC,
		Store:       store,
		ServiceName: "catalogo-test",
		Logger:      log,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func createCategory(t *testing.T, app *fiber.App, name, description string) dto.CategoryResponse {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/categories", map[string]string{"name": name, "description": description})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return decode[dto.CategoryResponse](t, resp)
}

func names(page dto.CategoryListResponse) []string {
	out := make([]string, 0, len(page.Items))
	for _, c := range page.Items {
		out = append(out, c.Name)
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado
// ──────────────────────────────────────────────────────────────────────────────

func TestList_ValoresPorDefecto(t *testing.T) {
	app := buildTestApp(t)
	for i := 1; i <= 12; i++ {
		createCategory(t, app, fmt.Sprintf("Category %02d", i), "")
	}

	resp := doJSON(t, app, http.MethodGet, "/api/categories", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	page := decode[dto.CategoryListResponse](t, resp)

	assert.Equal(t, 1, page.PageNumber)
	assert.Equal(t, dto.DefaultPageSize, page.PageSize)
	assert.Equal(t, 12, page.TotalCount)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Items, 10)
	assert.Equal(t, "Category 01", page.Items[0].Name)
}

func TestList_BusquedaOrdenYPagina(t *testing.T) {
	app := buildTestApp(t)
	for _, n := range []string{"Smartphone", "Headphones", "Laptop"} {
		createCategory(t, app, n, "")
	}

	q := url.Values{"search": {"PHONE"}, "sort_order": {"nameDesc"}, "page_number": {"1"}, "page_size": {"5"}}
	resp := doJSON(t, app, http.MethodGet, "/api/categories?"+q.Encode(), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	page := decode[dto.CategoryListResponse](t, resp)

	assert.Equal(t, 2, page.TotalCount)
	assert.Equal(t, []string{"Smartphone", "Headphones"}, names(page))
}

func TestList_VacioDevuelveArreglo(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/categories?page_number=3", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"items":[]`)
	assert.Contains(t, string(raw), `"total_count":0`)
}

func TestList_PaginacionInvalida(t *testing.T) {
	app := buildTestApp(t)
	for _, q := range []string{"page_number=0", "page_size=0", "page_number=-1&page_size=5"} {
		resp := doJSON(t, app, http.MethodGet, "/api/categories?"+q, nil)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode, q)
		body := decode[dto.ErrorResponse](t, resp)
		assert.Equal(t, "INVALID_PAGINATION", body.Code)
	}
}

func TestList_PageNumberEnorme(t *testing.T) {
	app := buildTestApp(t)
	createCategory(t, app, "Audio", "")
	createCategory(t, app, "Books", "")

	resp := doJSON(t, app, http.MethodGet, "/api/categories?page_number=100000000000000001&page_size=100", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	page := decode[dto.CategoryListResponse](t, resp)
	assert.Empty(t, page.Items)
	assert.Equal(t, 2, page.TotalCount)

	resp = doJSON(t, app, http.MethodGet, "/api/categories/export?page_number=100000000000000001&page_size=100", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestList_PageSizeSeLimitaACien(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/categories?page_size=500", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	page := decode[dto.CategoryListResponse](t, resp)
	assert.Equal(t, dto.MaxPageSize, page.PageSize)
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_Valida(t *testing.T) {
	app := buildTestApp(t)

	cases := []struct {
		name string
		body any
		code string
	}{
		{"sin nombre", map[string]string{"description": "x"}, "VALIDATION"},
		{"nombre en blanco", map[string]string{"name": "   "}, "VALIDATION"},
		{"nombre corto", map[string]string{"name": "A"}, "VALIDATION"},
		{"nombre largo", map[string]string{"name": strings.Repeat("a", 101)}, "VALIDATION"},
		{"descripción larga", map[string]string{"name": "Audio", "description": strings.Repeat("d", 501)}, "VALIDATION"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodPost, "/api/categories", tc.body)
			require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, tc.code, decode[dto.ErrorResponse](t, resp).Code)
		})
	}
}

func TestCreate_CuerpoInvalido(t *testing.T) {
	app := buildTestApp(t)
	req := httptest.NewRequest(http.MethodPost, "/api/categories", strings.NewReader("{no-json"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decode[dto.ErrorResponse](t, resp).Code)
}

func TestCreate_IgnoraIDDelCliente(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/categories", map[string]string{
		"id":   "00000000-0000-0000-0000-000000000001",
		"name": "Audio",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	out := decode[dto.CategoryResponse](t, resp)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000001", out.ID)
	assert.False(t, out.CreatedAt.IsZero())
}

func TestGetByID(t *testing.T) {
	app := buildTestApp(t)
	created := createCategory(t, app, "Garden", "Jardín")

	resp := doJSON(t, app, http.MethodGet, "/api/categories/"+created.ID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	got := decode[dto.CategoryResponse](t, resp)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Jardín", got.Description)

	for _, id := range []string{"00000000-0000-0000-0000-000000000009", "no-es-uuid"} {
		resp = doJSON(t, app, http.MethodGet, "/api/categories/"+id, nil)
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode, id)
		assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)
	}
}

func TestUpdate(t *testing.T) {
	app := buildTestApp(t)
	created := createCategory(t, app, "Audio", "Parlantes")

	resp := doJSON(t, app, http.MethodPut, "/api/categories/"+created.ID, map[string]string{"description": "Audífonos"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	got := decode[dto.CategoryResponse](t, resp)
	assert.Equal(t, "Audio", got.Name)
	assert.Equal(t, "Audífonos", got.Description)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))

	resp = doJSON(t, app, http.MethodPut, "/api/categories/"+created.ID, map[string]string{"name": " "})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, resp).Code)

	resp = doJSON(t, app, http.MethodPut, "/api/categories/00000000-0000-0000-0000-000000000009", map[string]string{"name": "Otro"})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDelete(t *testing.T) {
	app := buildTestApp(t)
	created := createCategory(t, app, "Audio", "")

	resp := doJSON(t, app, http.MethodDelete, "/api/categories/"+created.ID, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/categories/"+created.ID, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/categories/"+created.ID, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Exportación y health
// ──────────────────────────────────────────────────────────────────────────────

func TestExport_DevuelvePDF(t *testing.T) {
	app := buildTestApp(t)
	createCategory(t, app, "Audio", "Parlantes")

	resp := doJSON(t, app, http.MethodGet, "/api/categories/export?sort_order=createdAtDesc", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestExport_PaginacionInvalida(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/categories/export?page_size=0", nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_PAGINATION", decode[dto.ErrorResponse](t, resp).Code)
}

func TestHealth(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/health", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", decode[map[string]string](t, resp)["status"])

	down := buildTestAppWith(t, memory.NewCategoryRepository(), pingerFunc(func(context.Context) error {
		return errors.New("sin conexión")
	}))
	resp = doJSON(t, down, http.MethodGet, "/health", nil)
	require.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "unavailable", decode[map[string]string](t, resp)["status"])
}
