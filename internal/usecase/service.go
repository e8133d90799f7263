package usecase

import (
	"restaurant-booking/internal/data/repository"
	"restaurant-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Availability AvailabilityService
	Floor        FloorService
	Menu         MenuService
	Catalog      CatalogService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Availability: NewAvailabilityService(repo, config.Availability.Delay, log),
		Floor:        NewFloorService(repo.Floor, log),
		Menu:         NewMenuService(repo.Menu, log),
		Catalog:      NewCatalogService(repo, log),
	}
}
