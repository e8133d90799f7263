package wire

import (
	"restaurant-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAvailability(r chi.Router, availabilityHandler *adaptor.AvailabilityHandler) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/availability?date=2025-10-29&time=19:00&guests=4
	r.Get("/api/availability", availabilityHandler.CheckAvailability)

	// POST /api/availability {"date":"2025-10-29","time":"19:00","guests":4}
	r.Post("/api/availability", availabilityHandler.CheckAvailabilityBody)
}
