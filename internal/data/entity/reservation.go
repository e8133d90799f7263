package entity

// Reservation books one table for one hourly slot. Date and Time are kept as
// the strings the booking UI sends ("2006-01-02", "15:00") and compared verbatim.
type Reservation struct {
	Date    string `db:"reservation_date"`
	Time    string `db:"reservation_time"`
	TableID string `db:"table_id"`
}
