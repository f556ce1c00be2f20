package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/ports"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// CategoryUseCase casos de uso CRUD y listado para categorías.
// No guarda estado mutable propio: la consistencia concurrente la da el repositorio.
type CategoryUseCase struct {
	repo      repository.CategoryRepository
	query     *CategoryQueryBuilder
	publisher ports.CategoryEventPublisher
	log       *logger.Logger
}

// NewCategoryUseCase construye el caso de uso. publisher puede ser nil (sin eventos).
func NewCategoryUseCase(repo repository.CategoryRepository, publisher ports.CategoryEventPublisher, log *logger.Logger) *CategoryUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CategoryUseCase{
		repo:      repo,
		query:     NewCategoryQueryBuilder(repo),
		publisher: publisher,
		log:       log,
	}
}

// List lista categorías con búsqueda, orden y paginación. Un resultado vacío no es error.
func (uc *CategoryUseCase) List(ctx context.Context, params dto.CategoryQueryParams) (*dto.CategoryListResponse, error) {
	list, total, err := uc.query.Execute(ctx, params)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return dto.NewPaginatedResult(items, total, params.PageNumber, params.PageSize), nil
}

// GetByID obtiene una categoría por ID. Devuelve (nil, nil) si no existe.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	category, err := uc.find(ctx, id)
	if err != nil || category == nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Create crea una categoría. ID y CreatedAt se asignan aquí, nunca desde el payload.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	category := entity.NewCategory(in.Name, in.Description, time.Now())
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	uc.publish(ctx, ports.CategoryCreated, category)
	return toCategoryResponse(category), nil
}

// Update aplica los campos informados. Devuelve (nil, nil) sin tocar el repositorio si no existe.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.find(ctx, id)
	if err != nil || category == nil {
		return nil, err
	}
	category.Apply(in.Name, in.Description)
	if err := uc.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	uc.publish(ctx, ports.CategoryUpdated, category)
	return toCategoryResponse(category), nil
}

// Delete elimina una categoría. Devuelve false (sin error) si no existe.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) (bool, error) {
	category, err := uc.find(ctx, id)
	if err != nil || category == nil {
		return false, err
	}
	if err := uc.repo.Delete(ctx, category.ID); err != nil {
		return false, err
	}
	uc.publish(ctx, ports.CategoryDeleted, category)
	return true, nil
}

// find resuelve la identidad; un ID que no es UUID equivale a inexistente.
func (uc *CategoryUseCase) find(ctx context.Context, id string) (*entity.Category, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	return uc.repo.GetByID(ctx, parsed.String())
}

// publish notifica el cambio. Un fallo del publicador no revierte ni falla la escritura.
func (uc *CategoryUseCase) publish(ctx context.Context, eventType string, c *entity.Category) {
	if uc.publisher == nil {
		return
	}
	evt := ports.CategoryEvent{
		Type:       eventType,
		CategoryID: c.ID,
		Name:       c.Name,
		OccurredAt: time.Now().UTC(),
	}
	if err := uc.publisher.Publish(ctx, evt); err != nil {
		uc.log.Warn().Err(err).
			Str("event", eventType).
			Str("category_id", c.ID).
			Msg("publicar evento de categoría")
	}
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}
