package request

// AvailabilityRequest is a table availability query. Date ("2006-01-02") and
// Time ("15:00") are matched verbatim against stored reservations, so they are
// deliberately not validated: a malformed value just matches nothing.
type AvailabilityRequest struct {
	Date   string `json:"date"`
	Time   string `json:"time"`
	Guests int    `json:"guests"`
}
