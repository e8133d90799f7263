package entity

// FloorLayout is the static arrangement of tables and VIP rooms on one floor.
type FloorLayout struct {
	Floor    int        `validate:"required,min=1"`
	Tables   []*Table   `validate:"dive"`
	VIPRooms []*VIPRoom `validate:"dive"`
}
