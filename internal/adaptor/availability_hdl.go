package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"restaurant-booking/internal/dto/request"
	"restaurant-booking/internal/usecase"
	"restaurant-booking/pkg/utils"

	"go.uber.org/zap"
)

type AvailabilityHandler struct {
	service usecase.AvailabilityService
	log     *zap.Logger
}

func NewAvailabilityHandler(service usecase.AvailabilityService, log *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{
		service: service,
		log:     log.With(zap.String("handler", "availability")),
	}
}

// CheckAvailability handles GET /api/availability?date=2025-10-29&time=19:00&guests=4 (public)
func (h *AvailabilityHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := request.AvailabilityRequest{
		Date: query.Get("date"),
		Time: query.Get("time"),
	}

	if raw := strings.TrimSpace(query.Get("guests")); raw != "" {
		guests, err := strconv.Atoi(raw)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid guests value", map[string]string{"guests": "Must be an integer"})
			return
		}
		req.Guests = guests
	}

	h.check(w, r, &req)
}

// CheckAvailabilityBody handles POST /api/availability (public)
func (h *AvailabilityHandler) CheckAvailabilityBody(w http.ResponseWriter, r *http.Request) {
	var req request.AvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	h.check(w, r, &req)
}

func (h *AvailabilityHandler) check(w http.ResponseWriter, r *http.Request, req *request.AvailabilityRequest) {
	result, err := h.service.CheckAvailability(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, r, err, "check availability")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}
