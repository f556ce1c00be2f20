package sqlite_test

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/sqlite"
)

func newRepo(t *testing.T) *sqlite.CategoryRepo {
	t.Helper()
	ctx := context.Background()
	db, err := sqlite.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, sqlite.EnsureSchema(ctx, db))
	return sqlite.NewCategoryRepository(db)
}

func seed(t *testing.T, repo *sqlite.CategoryRepo, names ...string) []*entity.Category {
	t.Helper()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]*entity.Category, 0, len(names))
	for i, n := range names {
		c := entity.NewCategory(n, "", base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, repo.Create(context.Background(), c))
		out = append(out, c)
	}
	return out
}

func names(list []*entity.Category) []string {
	out := make([]string, 0, len(list))
	for _, c := range list {
		out = append(out, c.Name)
	}
	return out
}

func TestCategoryRepo_CRUD(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	c := entity.NewCategory("Phones", "Smartphones", time.Now())
	require.NoError(t, repo.Create(ctx, c))
	assert.ErrorIs(t, repo.Create(ctx, c), domain.ErrDuplicate)

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, c.Name, got.Name)
	assert.Equal(t, c.Description, got.Description)
	assert.True(t, c.CreatedAt.Equal(got.CreatedAt))

	c.Description = "Teléfonos"
	require.NoError(t, repo.Update(ctx, c))
	got, err = repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Teléfonos", got.Description)

	require.NoError(t, repo.Delete(ctx, c.ID))
	got, err = repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCategoryRepo_PaginaTresDeCinco(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	all := make([]string, 0, 23)
	for i := 23; i >= 1; i-- {
		all = append(all, fmt.Sprintf("Category %02d", i))
	}
	seed(t, repo, all...)

	total, err := repo.Count(ctx, repository.CategoryFilter{})
	require.NoError(t, err)
	assert.Equal(t, 23, total)

	page, err := repo.List(ctx, repository.CategoryQuery{Sort: entity.SortNameAsc, Offset: 10, Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, []string{"Category 11", "Category 12", "Category 13", "Category 14", "Category 15"}, names(page))

	last, err := repo.List(ctx, repository.CategoryQuery{Sort: entity.SortNameAsc, Offset: 20, Limit: 5})
	require.NoError(t, err)
	assert.Len(t, last, 3)
}

func TestCategoryRepo_BusquedaSinDistinguirMayusculas(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	seed(t, repo, "Smartphone", "Headphones", "Laptop")

	f := repository.CategoryFilter{Search: "PHONE"}
	total, err := repo.Count(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	page, err := repo.List(ctx, repository.CategoryQuery{Filter: f, Sort: entity.SortNameAsc, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"Headphones", "Smartphone"}, names(page))
}

func TestCategoryRepo_BusquedaEnDescripcionYComodines(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, entity.NewCategory("Outlet", "descuentos del 50% en audio", time.Now())))
	require.NoError(t, repo.Create(ctx, entity.NewCategory("Audio", "parlantes", time.Now())))

	total, err := repo.Count(ctx, repository.CategoryFilter{Search: "50%"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	total, err = repo.Count(ctx, repository.CategoryFilter{Search: "audio"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	total, err = repo.Count(ctx, repository.CategoryFilter{Search: "%"})
	require.NoError(t, err)
	assert.Equal(t, 1, total, "% debe buscarse como literal")
}

func TestCategoryRepo_OrdenPorFecha(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	seed(t, repo, "B", "C", "A")

	asc, err := repo.List(ctx, repository.CategoryQuery{Sort: entity.SortCreatedAtAsc, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "A"}, names(asc))

	desc, err := repo.List(ctx, repository.CategoryQuery{Sort: entity.SortCreatedAtDesc, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B"}, names(desc))

	byName, err := repo.List(ctx, repository.CategoryQuery{Sort: entity.SortNameDesc, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, names(byName))
}

func TestCategoryRepo_EmpatesPorID(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	created := seed(t, repo, "Same", "Same", "Same")

	list, err := repo.List(ctx, repository.CategoryQuery{Sort: entity.SortNameAsc, Limit: 10})
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].ID, list[i].ID)
	}
	assert.Len(t, created, 3)
}

func TestCategoryRepo_LimiteMaximo(t *testing.T) {
	repo := newRepo(t)
	seed(t, repo, "Audio", "Books", "Garden")

	list, err := repo.List(context.Background(), repository.CategoryQuery{Sort: entity.SortNameAsc, Offset: 0, Limit: math.MaxInt})
	require.NoError(t, err)
	assert.Equal(t, []string{"Audio", "Books", "Garden"}, names(list))
}
