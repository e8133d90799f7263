package entity

// SeatCount is the number of chairs at a table. Only 2, 4, 6 and 8 exist on the floor plan.
type SeatCount int

const (
	SeatsTwo   SeatCount = 2
	SeatsFour  SeatCount = 4
	SeatsSix   SeatCount = 6
	SeatsEight SeatCount = 8
)

// RoomCapacity is the number of guests a VIP room holds.
type RoomCapacity int

const (
	RoomCapacitySmall  RoomCapacity = 10
	RoomCapacityMedium RoomCapacity = 12
	RoomCapacityLarge  RoomCapacity = 16
)

type Position struct {
	X int `json:"x" db:"pos_x"`
	Y int `json:"y" db:"pos_y"`
}

type Table struct {
	ID       string    `db:"id" validate:"required,max=32"`
	Floor    int       `db:"floor" validate:"required,min=1"`
	Position Position  `db:"-"`
	Seats    SeatCount `db:"seats" validate:"oneof=2 4 6 8"`
	Label    string    `db:"label" validate:"required,max=50"`
	Rotation *int      `db:"rotation" validate:"omitempty,min=0,max=359"` // degrees, nil when upright
}

// Fits reports whether a party of the given size can sit at the table.
func (t *Table) Fits(guests int) bool {
	return int(t.Seats) >= guests
}

type VIPRoom struct {
	ID       string       `db:"id" validate:"required,max=32"`
	Floor    int          `db:"floor" validate:"required,min=1"`
	Position Position     `db:"-"`
	Width    int          `db:"width" validate:"required,min=1"`
	Height   int          `db:"height" validate:"required,min=1"`
	Capacity RoomCapacity `db:"capacity" validate:"oneof=10 12 16"`
	Name     string       `db:"name" validate:"required,max=100"`
}
