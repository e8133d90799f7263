// Package fixture holds the compiled-in floor plan, reservation list and menu
// the site ships with when no database is configured.
package fixture

import "restaurant-booking/internal/data/entity"

func rotated(deg int) *int { return &deg }

// Floors returns a fresh copy of the floor plan, ordered by floor number.
func Floors() []*entity.FloorLayout {
	return []*entity.FloorLayout{
		{
			Floor: 1,
			Tables: []*entity.Table{
				{ID: "f1-t1", Floor: 1, Position: entity.Position{X: 80, Y: 60}, Seats: entity.SeatsTwo, Label: "T1"},
				{ID: "f1-t2", Floor: 1, Position: entity.Position{X: 200, Y: 60}, Seats: entity.SeatsTwo, Label: "T2"},
				{ID: "f1-t3", Floor: 1, Position: entity.Position{X: 320, Y: 60}, Seats: entity.SeatsFour, Label: "T3"},
				{ID: "f1-t4", Floor: 1, Position: entity.Position{X: 80, Y: 200}, Seats: entity.SeatsFour, Label: "T4", Rotation: rotated(45)},
				{ID: "f1-t5", Floor: 1, Position: entity.Position{X: 200, Y: 200}, Seats: entity.SeatsSix, Label: "T5"},
				{ID: "f1-t6", Floor: 1, Position: entity.Position{X: 340, Y: 220}, Seats: entity.SeatsEight, Label: "T6", Rotation: rotated(90)},
			},
			VIPRooms: []*entity.VIPRoom{
				{ID: "f1-v1", Floor: 1, Position: entity.Position{X: 480, Y: 40}, Width: 160, Height: 220, Capacity: entity.RoomCapacitySmall, Name: "Garden Room"},
			},
		},
		{
			Floor: 2,
			Tables: []*entity.Table{
				{ID: "f2-t1", Floor: 2, Position: entity.Position{X: 60, Y: 80}, Seats: entity.SeatsTwo, Label: "T1"},
				{ID: "f2-t2", Floor: 2, Position: entity.Position{X: 180, Y: 80}, Seats: entity.SeatsFour, Label: "T2"},
				{ID: "f2-t3", Floor: 2, Position: entity.Position{X: 300, Y: 80}, Seats: entity.SeatsFour, Label: "T3"},
				{ID: "f2-t4", Floor: 2, Position: entity.Position{X: 120, Y: 230}, Seats: entity.SeatsSix, Label: "T4"},
				{ID: "f2-t5", Floor: 2, Position: entity.Position{X: 280, Y: 230}, Seats: entity.SeatsEight, Label: "T5", Rotation: rotated(30)},
				{ID: "f2-t6", Floor: 2, Position: entity.Position{X: 400, Y: 230}, Seats: entity.SeatsTwo, Label: "T6"},
			},
			VIPRooms: []*entity.VIPRoom{
				{ID: "f2-v1", Floor: 2, Position: entity.Position{X: 500, Y: 40}, Width: 180, Height: 140, Capacity: entity.RoomCapacityMedium, Name: "Wine Cellar"},
				{ID: "f2-v2", Floor: 2, Position: entity.Position{X: 500, Y: 200}, Width: 220, Height: 180, Capacity: entity.RoomCapacityLarge, Name: "Grand Hall"},
			},
		},
	}
}
