package repository

import (
	"context"
	"fmt"
	"strings"

	"restaurant-booking/internal/data/entity"
	"restaurant-booking/pkg/database"

	"go.uber.org/zap"
)

type MenuRepository interface {
	FindAll(ctx context.Context, limit, offset int, category *string) ([]*entity.MenuItem, error)
	CountAll(ctx context.Context, category *string) (int64, error)
	FindCategories(ctx context.Context) ([]string, error)
}

type menuRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMenuRepository(db database.PgxIface, log *zap.Logger) MenuRepository {
	return &menuRepository{
		db:  db,
		log: log.With(zap.String("repository", "menu")),
	}
}

func (r *menuRepository) FindAll(ctx context.Context, limit, offset int, category *string) ([]*entity.MenuItem, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, name, description, category, price, image_url
		FROM menu_items
		WHERE 1 = 1
	`)

	args := []any{}
	argCount := 1

	if category != nil && *category != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND category = $%d", argCount))
		args = append(args, *category)
		argCount++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY sort_order, id LIMIT $%d OFFSET $%d", argCount, argCount+1))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find menu items",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
			zap.Stringp("category", category),
		)
		return nil, fmt.Errorf("find menu items limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var items []*entity.MenuItem
	for rows.Next() {
		var (
			item entity.MenuItem
			cat  string
		)
		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Description,
			&cat,
			&item.Price,
			&item.ImageURL,
		)
		if err != nil {
			r.log.Error("Failed to scan menu item row", zap.Error(err))
			return nil, fmt.Errorf("scan menu item row: %w", err)
		}
		item.Category = entity.MenuCategory(cat)
		items = append(items, &item)
	}

	return items, rows.Err()
}

func (r *menuRepository) CountAll(ctx context.Context, category *string) (int64, error) {
	query := `SELECT COUNT(*) FROM menu_items WHERE ($1::text IS NULL OR category = $1)`

	var filter any
	if category != nil && *category != "" {
		filter = *category
	}

	var total int64
	if err := r.db.QueryRow(ctx, query, filter).Scan(&total); err != nil {
		r.log.Error("Failed to count menu items",
			zap.Error(err),
			zap.Stringp("category", category),
		)
		return 0, fmt.Errorf("count menu items: %w", err)
	}

	return total, nil
}

func (r *menuRepository) FindCategories(ctx context.Context) ([]string, error) {
	query := `
		SELECT category
		FROM menu_items
		GROUP BY category
		ORDER BY MIN(sort_order), category
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find menu categories", zap.Error(err))
		return nil, fmt.Errorf("find menu categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan menu category row: %w", err)
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

type fixtureMenuRepository struct {
	items []*entity.MenuItem
	log   *zap.Logger
}

func NewFixtureMenuRepository(items []*entity.MenuItem, log *zap.Logger) MenuRepository {
	return &fixtureMenuRepository{
		items: items,
		log:   log.With(zap.String("repository", "fixture_menu")),
	}
}

func (r *fixtureMenuRepository) filter(category *string) []*entity.MenuItem {
	if category == nil || *category == "" {
		return r.items
	}

	var matched []*entity.MenuItem
	for _, item := range r.items {
		if string(item.Category) == *category {
			matched = append(matched, item)
		}
	}
	return matched
}

func (r *fixtureMenuRepository) FindAll(ctx context.Context, limit, offset int, category *string) ([]*entity.MenuItem, error) {
	items := r.filter(category)
	if offset < 0 || offset >= len(items) {
		return []*entity.MenuItem{}, nil
	}

	end := offset + limit
	if limit < 0 || end > len(items) {
		end = len(items)
	}
	return items[offset:end], nil
}

func (r *fixtureMenuRepository) CountAll(ctx context.Context, category *string) (int64, error) {
	return int64(len(r.filter(category))), nil
}

func (r *fixtureMenuRepository) FindCategories(ctx context.Context) ([]string, error) {
	seen := make(map[entity.MenuCategory]bool)
	var categories []string
	for _, item := range r.items {
		if !seen[item.Category] {
			seen[item.Category] = true
			categories = append(categories, string(item.Category))
		}
	}
	return categories, nil
}
