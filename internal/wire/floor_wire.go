package wire

import (
	"restaurant-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireFloor(r chi.Router, floorHandler *adaptor.FloorHandler) {
	r.Route("/api/floors", func(r chi.Router) {
		r.Get("/", floorHandler.GetFloors)
		r.Get("/{floor}", floorHandler.GetFloor)
	})
}
