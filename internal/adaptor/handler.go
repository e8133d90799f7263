package adaptor

import (
	"context"
	"errors"
	"net/http"

	"restaurant-booking/internal/usecase"
	"restaurant-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Availability *AvailabilityHandler
	Floor        *FloorHandler
	Menu         *MenuHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Availability: NewAvailabilityHandler(service.Availability, log),
		Floor:        NewFloorHandler(service.Floor, log),
		Menu:         NewMenuHandler(service.Menu, log),
	}
}

// handleServiceError maps a service error to a status code and logs it at a
// level that matches who is at fault. Only the usecase sentinels reach the
// client as text; anything else is a generic 500.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, r *http.Request, err error, operation string) {
	fields := []zap.Field{
		zap.Error(err),
		zap.String("operation", operation),
		zap.String("request_id", utils.GetRequestID(r.Context())),
	}

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		log.Warn(operation+" aborted", fields...)
		utils.ResponseServiceUnavailable(w, "Request cancelled or timed out")

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", fields...)
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" validation failed", fields...)
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrInvalidInput):
		log.Warn("Invalid input for "+operation, fields...)
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation, fields...)
		utils.ResponseInternalError(w, "Internal server error")
	}
}
