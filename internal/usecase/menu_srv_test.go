package usecase

import (
	"context"
	"testing"

	"restaurant-booking/internal/data/fixture"
	"restaurant-booking/internal/data/repository"
	"restaurant-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newFixtureMenuService() MenuService {
	return NewMenuService(repository.NewFixtureMenuRepository(fixture.Menu(), zap.NewNop()), zap.NewNop())
}

func menuRequest(page, perPage int, category string) *request.MenuRequest {
	return &request.MenuRequest{
		PaginatedRequest: request.PaginatedRequest{Page: page, PerPage: perPage},
		Category:         category,
	}
}

func TestGetMenu_Paginates(t *testing.T) {
	svc := newFixtureMenuService()

	page, err := svc.GetMenu(context.Background(), menuRequest(2, 5, ""))

	require.NoError(t, err)
	assert.Len(t, page.Data, 5)
	assert.Equal(t, "m-006", page.Data[0].ID)
	assert.Equal(t, int64(12), page.Pagination.Total)
	assert.Equal(t, 3, page.Pagination.TotalPages)
}

func TestGetMenu_FiltersByCategory(t *testing.T) {
	svc := newFixtureMenuService()

	page, err := svc.GetMenu(context.Background(), menuRequest(1, 10, "dessert"))

	require.NoError(t, err)
	require.Len(t, page.Data, 2)
	for _, item := range page.Data {
		assert.Equal(t, "dessert", item.Category)
	}
	assert.Equal(t, int64(2), page.Pagination.Total)
}

func TestGetMenu_PastLastPageIsEmptyArray(t *testing.T) {
	page, err := newFixtureMenuService().GetMenu(context.Background(), menuRequest(9, 10, ""))

	require.NoError(t, err)
	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
}

func TestGetMenu_UnknownCategory(t *testing.T) {
	_, err := newFixtureMenuService().GetMenu(context.Background(), menuRequest(1, 10, "brunch"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestGetMenu_PageBeyondLimit(t *testing.T) {
	svc := newFixtureMenuService()

	_, err := svc.GetMenu(context.Background(), menuRequest(4611686018427387905, 2, ""))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	page, err := svc.GetMenu(context.Background(), menuRequest(request.MaxPage, 100, ""))
	require.NoError(t, err)
	assert.Empty(t, page.Data)
}

func TestGetCategories(t *testing.T) {
	categories, err := newFixtureMenuService().GetCategories(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"starter", "main", "dessert", "drink"}, categories)
}
