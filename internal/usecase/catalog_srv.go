package usecase

import (
	"context"
	"fmt"

	"restaurant-booking/internal/data/entity"
	"restaurant-booking/internal/data/repository"
	"restaurant-booking/pkg/utils"

	"go.uber.org/zap"
)

// CatalogService guards the floor plan the availability checker trusts.
type CatalogService interface {
	// Verify fails when a layout is malformed or a table id repeats. It
	// returns reservations that point at unknown tables without failing:
	// those are reported, not repaired.
	Verify(ctx context.Context) ([]*entity.Reservation, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) Verify(ctx context.Context) ([]*entity.Reservation, error) {
	floors, err := s.repo.Floor.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load floor layouts: %w", err)
	}

	tableIDs, err := indexTables(floors)
	if err != nil {
		s.log.Error("Floor catalog is corrupt", zap.Error(err))
		return nil, err
	}

	reservations, err := s.repo.Reservation.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load reservations: %w", err)
	}

	var dangling []*entity.Reservation
	for _, res := range reservations {
		if _, ok := tableIDs[res.TableID]; !ok {
			dangling = append(dangling, res)
			s.log.Warn("Reservation references unknown table",
				zap.String("table_id", res.TableID),
				zap.String("date", res.Date),
				zap.String("time", res.Time),
			)
		}
	}

	s.log.Info("Floor catalog verified",
		zap.Int("floors", len(floors)),
		zap.Int("tables", len(tableIDs)),
		zap.Int("reservations", len(reservations)),
		zap.Int("dangling_reservations", len(dangling)),
	)

	return dangling, nil
}

// indexTables validates every layout and maps table id to floor.
func indexTables(floors []*entity.FloorLayout) (map[string]int, error) {
	tableIDs := make(map[string]int)
	seenFloors := make(map[int]bool)

	for _, floor := range floors {
		if floor == nil {
			return nil, fmt.Errorf("invalid floor catalog: nil layout")
		}

		if errs := utils.ValidateStruct(floor); len(errs) > 0 {
			return nil, fmt.Errorf("invalid floor catalog: floor %d: %s", floor.Floor, utils.FormatValidationErrors(errs))
		}

		if seenFloors[floor.Floor] {
			return nil, fmt.Errorf("invalid floor catalog: floor %d listed twice", floor.Floor)
		}
		seenFloors[floor.Floor] = true

		for _, table := range floor.Tables {
			if table.Floor != floor.Floor {
				return nil, fmt.Errorf("invalid floor catalog: table %s claims floor %d but sits on floor %d", table.ID, table.Floor, floor.Floor)
			}
			if prev, dup := tableIDs[table.ID]; dup {
				return nil, fmt.Errorf("invalid floor catalog: table id %s on floor %d already used on floor %d", table.ID, floor.Floor, prev)
			}
			tableIDs[table.ID] = floor.Floor
		}
	}

	return tableIDs, nil
}
