package repository

import (
	"restaurant-booking/internal/data/fixture"
	"restaurant-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Floor       FloorRepository
	Reservation ReservationRepository
	Menu        MenuRepository
}

// NewRepository builds repositories backed by Postgres.
func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Floor:       NewFloorRepository(db, log),
		Reservation: NewReservationRepository(db, log),
		Menu:        NewMenuRepository(db, log),
	}
}

// NewFixtureRepository builds repositories over the compiled-in catalog.
func NewFixtureRepository(log *zap.Logger) *Repository {
	return &Repository{
		Floor:       NewFixtureFloorRepository(fixture.Floors(), log),
		Reservation: NewFixtureReservationRepository(fixture.Reservations(), log),
		Menu:        NewFixtureMenuRepository(fixture.Menu(), log),
	}
}
