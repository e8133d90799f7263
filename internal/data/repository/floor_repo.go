package repository

import (
	"context"
	"fmt"
	"sort"

	"restaurant-booking/internal/data/entity"
	"restaurant-booking/pkg/database"

	"go.uber.org/zap"
)

// FloorRepository reads the floor plan. Layouts come back ordered by floor
// number with tables and rooms in catalog order.
type FloorRepository interface {
	FindAll(ctx context.Context) ([]*entity.FloorLayout, error)
	FindByFloor(ctx context.Context, floor int) (*entity.FloorLayout, error)
}

type floorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFloorRepository(db database.PgxIface, log *zap.Logger) FloorRepository {
	return &floorRepository{
		db:  db,
		log: log.With(zap.String("repository", "floor")),
	}
}

func (r *floorRepository) FindAll(ctx context.Context) ([]*entity.FloorLayout, error) {
	tables, err := r.findTables(ctx, nil)
	if err != nil {
		return nil, err
	}

	rooms, err := r.findVIPRooms(ctx, nil)
	if err != nil {
		return nil, err
	}

	return groupByFloor(tables, rooms), nil
}

func (r *floorRepository) FindByFloor(ctx context.Context, floor int) (*entity.FloorLayout, error) {
	tables, err := r.findTables(ctx, &floor)
	if err != nil {
		return nil, err
	}

	rooms, err := r.findVIPRooms(ctx, &floor)
	if err != nil {
		return nil, err
	}

	if len(tables) == 0 && len(rooms) == 0 {
		return nil, nil
	}

	return &entity.FloorLayout{Floor: floor, Tables: tables, VIPRooms: rooms}, nil
}

func (r *floorRepository) findTables(ctx context.Context, floor *int) ([]*entity.Table, error) {
	query := `
		SELECT id, floor, pos_x, pos_y, seats, label, rotation
		FROM restaurant_tables
		WHERE ($1::int IS NULL OR floor = $1)
		ORDER BY floor, sort_order, id
	`

	rows, err := r.db.Query(ctx, query, floor)
	if err != nil {
		r.log.Error("Failed to find tables",
			zap.Error(err),
			zap.Intp("floor", floor),
		)
		return nil, fmt.Errorf("find tables: %w", err)
	}
	defer rows.Close()

	var tables []*entity.Table
	for rows.Next() {
		var (
			table entity.Table
			seats int
		)
		err := rows.Scan(
			&table.ID,
			&table.Floor,
			&table.Position.X,
			&table.Position.Y,
			&seats,
			&table.Label,
			&table.Rotation,
		)
		if err != nil {
			r.log.Error("Failed to scan table row", zap.Error(err))
			return nil, fmt.Errorf("scan table row: %w", err)
		}
		table.Seats = entity.SeatCount(seats)
		tables = append(tables, &table)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate table rows: %w", err)
	}

	return tables, nil
}

func (r *floorRepository) findVIPRooms(ctx context.Context, floor *int) ([]*entity.VIPRoom, error) {
	query := `
		SELECT id, floor, pos_x, pos_y, width, height, capacity, name
		FROM vip_rooms
		WHERE ($1::int IS NULL OR floor = $1)
		ORDER BY floor, sort_order, id
	`

	rows, err := r.db.Query(ctx, query, floor)
	if err != nil {
		r.log.Error("Failed to find VIP rooms",
			zap.Error(err),
			zap.Intp("floor", floor),
		)
		return nil, fmt.Errorf("find vip rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*entity.VIPRoom
	for rows.Next() {
		var (
			room     entity.VIPRoom
			capacity int
		)
		err := rows.Scan(
			&room.ID,
			&room.Floor,
			&room.Position.X,
			&room.Position.Y,
			&room.Width,
			&room.Height,
			&capacity,
			&room.Name,
		)
		if err != nil {
			r.log.Error("Failed to scan VIP room row", zap.Error(err))
			return nil, fmt.Errorf("scan vip room row: %w", err)
		}
		room.Capacity = entity.RoomCapacity(capacity)
		rooms = append(rooms, &room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vip room rows: %w", err)
	}

	return rooms, nil
}

func groupByFloor(tables []*entity.Table, rooms []*entity.VIPRoom) []*entity.FloorLayout {
	byFloor := make(map[int]*entity.FloorLayout)
	layout := func(floor int) *entity.FloorLayout {
		l, ok := byFloor[floor]
		if !ok {
			l = &entity.FloorLayout{Floor: floor}
			byFloor[floor] = l
		}
		return l
	}

	for _, t := range tables {
		l := layout(t.Floor)
		l.Tables = append(l.Tables, t)
	}
	for _, v := range rooms {
		l := layout(v.Floor)
		l.VIPRooms = append(l.VIPRooms, v)
	}

	layouts := make([]*entity.FloorLayout, 0, len(byFloor))
	for _, l := range byFloor {
		layouts = append(layouts, l)
	}
	sort.Slice(layouts, func(i, j int) bool { return layouts[i].Floor < layouts[j].Floor })

	return layouts
}

type fixtureFloorRepository struct {
	floors []*entity.FloorLayout
	log    *zap.Logger
}

// NewFixtureFloorRepository serves a fixed floor plan. The slice is sorted by
// floor number once and never modified afterwards.
func NewFixtureFloorRepository(floors []*entity.FloorLayout, log *zap.Logger) FloorRepository {
	sorted := make([]*entity.FloorLayout, len(floors))
	copy(sorted, floors)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Floor < sorted[j].Floor })

	return &fixtureFloorRepository{
		floors: sorted,
		log:    log.With(zap.String("repository", "fixture_floor")),
	}
}

func (r *fixtureFloorRepository) FindAll(ctx context.Context) ([]*entity.FloorLayout, error) {
	return r.floors, nil
}

func (r *fixtureFloorRepository) FindByFloor(ctx context.Context, floor int) (*entity.FloorLayout, error) {
	for _, l := range r.floors {
		if l.Floor == floor {
			return l, nil
		}
	}
	return nil, nil
}
