package response

// AvailabilityResponse lists tables already booked for the slot and tables too
// small for the party. A table can appear in both. Neither slice is ever nil,
// so both always encode as JSON arrays.
type AvailabilityResponse struct {
	BookedTables         []string `json:"bookedTables"`
	NotEnoughSpaceTables []string `json:"notEnoughSpaceTables"`
}
