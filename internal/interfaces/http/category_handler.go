package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
	"github.com/jhoicas/Catalogo-api/pkg/validation"
)

// CategoryHandler maneja las peticiones HTTP para Category.
type CategoryHandler struct {
	uc     *usecase.CategoryUseCase
	export *usecase.CategoryExportUseCase
	log    *logger.Logger
}

// NewCategoryHandler construye el handler. export puede ser nil (sin exportación PDF).
func NewCategoryHandler(uc *usecase.CategoryUseCase, export *usecase.CategoryExportUseCase, log *logger.Logger) *CategoryHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &CategoryHandler{uc: uc, export: export, log: log.Component("category_handler")}
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Produce      json
// @Param        page_number  query  int     false  "Página (1-based)"    default(1)
// @Param        page_size    query  int     false  "Tamaño de página"    default(10)
// @Param        search       query  string  false  "Texto a buscar en nombre o descripción"
// @Param        sort_order   query  string  false  "nameAsc | nameDesc | createdAtAsc | createdAtDesc"
// @Success      200  {object}  dto.CategoryListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), listParams(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar página del listado a PDF
// @Tags         categories
// @Produce      application/pdf
// @Param        page_number  query  int     false  "Página (1-based)"    default(1)
// @Param        page_size    query  int     false  "Tamaño de página"    default(10)
// @Param        search       query  string  false  "Texto a buscar"
// @Param        sort_order   query  string  false  "Orden"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/categories/export [get]
func (h *CategoryHandler) Export(c *fiber.Ctx) error {
	if h.export == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "exportación no disponible"})
	}
	doc, err := h.export.ExportPDF(c.UserContext(), listParams(c))
	if err != nil {
		return h.fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="categorias.pdf"`)
	return c.Send(doc)
}

// GetByID godoc
// @Summary      Obtener categoría por ID
// @Tags         categories
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Datos de la categoría"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if err := validation.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar categoría
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la categoría"
// @Param        body  body  dto.UpdateCategoryRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.Name = trimPtr(in.Name)
	in.Description = trimPtr(in.Description)
	if err := validation.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return h.fail(c, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar categoría
// @Tags         categories
// @Param        id   path  string  true  "ID de la categoría"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	ok, err := h.uc.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	if !ok {
		return notFound(c)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// listParams lee la query del listado con los valores por defecto y el tope de page_size.
// Valores explícitos menores que 1 se dejan pasar para que el caso de uso los rechace.
func listParams(c *fiber.Ctx) dto.CategoryQueryParams {
	size := c.QueryInt("page_size", dto.DefaultPageSize)
	if size > dto.MaxPageSize {
		size = dto.MaxPageSize
	}
	return dto.CategoryQueryParams{
		PageNumber: c.QueryInt("page_number", dto.DefaultPageNumber),
		PageSize:   size,
		Search:     c.Query("search"),
		SortOrder:  c.Query("sort_order"),
	}
}

func (h *CategoryHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PAGINATION", Message: "page_number y page_size deben ser mayores o iguales a 1"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "la categoría ya existe"})
	}
	h.log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error en operación de categoría")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "categoría no encontrada"})
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
