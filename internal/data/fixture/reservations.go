package fixture

import "restaurant-booking/internal/data/entity"

// Reservations returns the mock booking list that stands in for a reservation store.
func Reservations() []*entity.Reservation {
	return []*entity.Reservation{
		{Date: "2025-10-29", Time: "12:00", TableID: "f1-t4"},
		{Date: "2025-10-29", Time: "19:00", TableID: "f1-t1"},
		{Date: "2025-10-29", Time: "19:00", TableID: "f2-t5"},
		{Date: "2025-10-30", Time: "18:00", TableID: "f1-t6"},
		{Date: "2025-10-30", Time: "20:00", TableID: "f2-t2"},
		{Date: "2025-10-31", Time: "20:00", TableID: "f2-t3"},
	}
}
