package usecase

import (
	"context"
	"fmt"
	"strconv"

	"restaurant-booking/internal/data/repository"
	"restaurant-booking/internal/dto/response"

	"go.uber.org/zap"
)

type FloorService interface {
	GetFloors(ctx context.Context) ([]response.FloorResponse, error)
	GetFloor(ctx context.Context, floor string) (*response.FloorResponse, error)
}

type floorService struct {
	repo repository.FloorRepository
	log  *zap.Logger
}

func NewFloorService(repo repository.FloorRepository, log *zap.Logger) FloorService {
	return &floorService{
		repo: repo,
		log:  log.With(zap.String("service", "floor")),
	}
}

func (s *floorService) GetFloors(ctx context.Context) ([]response.FloorResponse, error) {
	layouts, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get floor layouts", zap.Error(err))
		return nil, fmt.Errorf("get floors: %w", err)
	}

	floors := make([]response.FloorResponse, len(layouts))
	for i, layout := range layouts {
		floors[i] = response.FloorToResponse(layout)
	}

	return floors, nil
}

func (s *floorService) GetFloor(ctx context.Context, floor string) (*response.FloorResponse, error) {
	number, err := strconv.Atoi(floor)
	if err != nil || number < 1 {
		return nil, fmt.Errorf("floor number %q: %w", floor, ErrInvalidInput)
	}

	layout, err := s.repo.FindByFloor(ctx, number)
	if err != nil {
		s.log.Error("Failed to get floor layout",
			zap.Error(err),
			zap.Int("floor", number),
		)
		return nil, fmt.Errorf("get floor %d: %w", number, err)
	}

	if layout == nil {
		return nil, fmt.Errorf("floor %d: %w", number, ErrNotFound)
	}

	resp := response.FloorToResponse(layout)
	return &resp, nil
}
