package usecase

import (
	"context"
	"fmt"

	"restaurant-booking/internal/data/repository"
	"restaurant-booking/internal/dto/request"
	"restaurant-booking/internal/dto/response"
	"restaurant-booking/pkg/utils"

	"go.uber.org/zap"
)

type MenuService interface {
	GetMenu(ctx context.Context, req *request.MenuRequest) (*response.PaginatedResponse[response.MenuItemResponse], error)
	GetCategories(ctx context.Context) ([]string, error)
}

type menuService struct {
	repo repository.MenuRepository
	log  *zap.Logger
}

func NewMenuService(repo repository.MenuRepository, log *zap.Logger) MenuService {
	return &menuService{
		repo: repo,
		log:  log.With(zap.String("service", "menu")),
	}
}

func (s *menuService) GetMenu(ctx context.Context, req *request.MenuRequest) (*response.PaginatedResponse[response.MenuItemResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Menu query validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	var category *string
	if req.Category != "" {
		category = &req.Category
	}

	limit := req.Limit()
	offset := req.Offset()

	items, err := s.repo.FindAll(ctx, limit, offset, category)
	if err != nil {
		return nil, fmt.Errorf("get menu items: %w", err)
	}

	total, err := s.repo.CountAll(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("count menu items: %w", err)
	}

	itemResponses := make([]response.MenuItemResponse, len(items))
	for i, item := range items {
		itemResponses[i] = response.MenuItemToResponse(item)
	}

	s.log.Debug("Menu retrieved",
		zap.Int("count", len(items)),
		zap.Int64("total", total),
		zap.Int("page", req.Page),
		zap.Stringp("category", category),
	)

	return response.NewPaginatedResponse(itemResponses, req.Page, limit, total), nil
}

func (s *menuService) GetCategories(ctx context.Context) ([]string, error) {
	categories, err := s.repo.FindCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("get menu categories: %w", err)
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}
