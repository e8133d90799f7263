package repository

import (
	"context"
	"math"
	"testing"

	"restaurant-booking/internal/data/entity"
	"restaurant-booking/internal/data/fixture"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMenuRepository_FindAllWithCategory(t *testing.T) {
	db := &fakeDB{results: map[string][][]any{
		"FROM menu_items": {
			{"m-008", "Tiramisu", "Mascarpone", "dessert", 8.0, "/t.jpg"},
		},
	}}
	repo := NewMenuRepository(db, zap.NewNop())
	category := "dessert"

	items, err := repo.FindAll(context.Background(), 10, 0, &category)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, entity.MenuCategoryDessert, items[0].Category)
	assert.Equal(t, []any{"dessert", 10, 0}, db.calls[0].args)
	assert.Contains(t, db.calls[0].sql, "category = $1")
	assert.Contains(t, db.calls[0].sql, "LIMIT $2 OFFSET $3")
}

func TestMenuRepository_FindAllWithoutCategory(t *testing.T) {
	db := &fakeDB{}
	repo := NewMenuRepository(db, zap.NewNop())

	_, err := repo.FindAll(context.Background(), 5, 10, nil)

	require.NoError(t, err)
	assert.Equal(t, []any{5, 10}, db.calls[0].args)
	assert.Contains(t, db.calls[0].sql, "LIMIT $1 OFFSET $2")
}

func TestMenuRepository_CountAll(t *testing.T) {
	db := &fakeDB{results: map[string][][]any{"COUNT(*)": {{int64(12)}}}}
	repo := NewMenuRepository(db, zap.NewNop())

	total, err := repo.CountAll(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.Nil(t, db.calls[0].args[0])
}

func TestFixtureMenuRepository(t *testing.T) {
	repo := NewFixtureMenuRepository(fixture.Menu(), zap.NewNop())
	drink := "drink"

	items, err := repo.FindAll(context.Background(), 2, 0, &drink)
	require.NoError(t, err)
	assert.Equal(t, []string{"m-010", "m-011"}, []string{items[0].ID, items[1].ID})

	total, err := repo.CountAll(context.Background(), &drink)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	categories, err := repo.FindCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"starter", "main", "dessert", "drink"}, categories)
}

func TestFixtureMenuRepository_OutOfRangeOffset(t *testing.T) {
	repo := NewFixtureMenuRepository(fixture.Menu(), zap.NewNop())

	for _, offset := range []int{-10, 12, math.MaxInt} {
		items, err := repo.FindAll(context.Background(), 10, offset, nil)
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items, "offset %d", offset)
	}
}
