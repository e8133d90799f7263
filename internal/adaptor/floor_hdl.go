package adaptor

import (
	"net/http"

	"restaurant-booking/internal/usecase"
	"restaurant-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FloorHandler struct {
	service usecase.FloorService
	log     *zap.Logger
}

func NewFloorHandler(service usecase.FloorService, log *zap.Logger) *FloorHandler {
	return &FloorHandler{
		service: service,
		log:     log.With(zap.String("handler", "floor")),
	}
}

// GetFloors handles GET /api/floors (public)
func (h *FloorHandler) GetFloors(w http.ResponseWriter, r *http.Request) {
	floors, err := h.service.GetFloors(r.Context())
	if err != nil {
		handleServiceError(h.log, w, r, err, "get floors")
		return
	}

	utils.ResponseSuccess(w, "success", floors)
}

// GetFloor handles GET /api/floors/{floor} (public)
func (h *FloorHandler) GetFloor(w http.ResponseWriter, r *http.Request) {
	floor, err := h.service.GetFloor(r.Context(), chi.URLParam(r, "floor"))
	if err != nil {
		handleServiceError(h.log, w, r, err, "get floor")
		return
	}

	utils.ResponseSuccess(w, "success", floor)
}
