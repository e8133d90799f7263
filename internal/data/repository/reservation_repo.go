package repository

import (
	"context"
	"fmt"

	"restaurant-booking/internal/data/entity"
	"restaurant-booking/pkg/database"

	"go.uber.org/zap"
)

type ReservationRepository interface {
	FindAll(ctx context.Context) ([]*entity.Reservation, error)
	// FindBySlot returns reservations whose date and time equal the given
	// strings exactly, in stored order. Duplicates are kept.
	FindBySlot(ctx context.Context, date, time string) ([]*entity.Reservation, error)
}

type reservationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReservationRepository(db database.PgxIface, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation")),
	}
}

const reservationColumns = `
	to_char(reservation_date, 'YYYY-MM-DD'),
	to_char(reservation_time, 'HH24:MI'),
	table_id
`

func (r *reservationRepository) FindAll(ctx context.Context) ([]*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations ORDER BY id`

	reservations, err := r.query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all reservations", zap.Error(err))
		return nil, fmt.Errorf("find all reservations: %w", err)
	}

	return reservations, nil
}

func (r *reservationRepository) FindBySlot(ctx context.Context, date, time string) ([]*entity.Reservation, error) {
	// Compare on the formatted text so "12:00" never matches "12:00:00" and
	// malformed input simply finds nothing instead of failing a cast.
	query := `SELECT ` + reservationColumns + `
		FROM reservations
		WHERE to_char(reservation_date, 'YYYY-MM-DD') = $1
		  AND to_char(reservation_time, 'HH24:MI') = $2
		ORDER BY id
	`

	reservations, err := r.query(ctx, query, date, time)
	if err != nil {
		r.log.Error("Failed to find reservations by slot",
			zap.Error(err),
			zap.String("date", date),
			zap.String("time", time),
		)
		return nil, fmt.Errorf("find reservations for %s %s: %w", date, time, err)
	}

	return reservations, nil
}

func (r *reservationRepository) query(ctx context.Context, query string, args ...any) ([]*entity.Reservation, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []*entity.Reservation
	for rows.Next() {
		var res entity.Reservation
		if err := rows.Scan(&res.Date, &res.Time, &res.TableID); err != nil {
			return nil, fmt.Errorf("scan reservation row: %w", err)
		}
		reservations = append(reservations, &res)
	}

	return reservations, rows.Err()
}

type fixtureReservationRepository struct {
	reservations []*entity.Reservation
	log          *zap.Logger
}

func NewFixtureReservationRepository(reservations []*entity.Reservation, log *zap.Logger) ReservationRepository {
	return &fixtureReservationRepository{
		reservations: reservations,
		log:          log.With(zap.String("repository", "fixture_reservation")),
	}
}

func (r *fixtureReservationRepository) FindAll(ctx context.Context) ([]*entity.Reservation, error) {
	return r.reservations, nil
}

func (r *fixtureReservationRepository) FindBySlot(ctx context.Context, date, time string) ([]*entity.Reservation, error) {
	var matched []*entity.Reservation
	for _, res := range r.reservations {
		if res.Date == date && res.Time == time {
			matched = append(matched, res)
		}
	}
	return matched, nil
}
