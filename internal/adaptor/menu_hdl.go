package adaptor

import (
	"net/http"

	"restaurant-booking/internal/dto/request"
	"restaurant-booking/internal/usecase"
	"restaurant-booking/pkg/utils"

	"go.uber.org/zap"
)

type MenuHandler struct {
	service usecase.MenuService
	log     *zap.Logger
}

func NewMenuHandler(service usecase.MenuService, log *zap.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		log:     log.With(zap.String("handler", "menu")),
	}
}

// GetMenu handles GET /api/menu?category=main&page=1&per_page=10 (public)
func (h *MenuHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &request.MenuRequest{
		PaginatedRequest: request.PaginatedRequest{
			Page:    utils.ParseInt(query.Get("page"), 1),
			PerPage: utils.ParseInt(query.Get("per_page"), 10),
		},
		Category: query.Get("category"),
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	menu, err := h.service.GetMenu(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get menu")
		return
	}

	utils.ResponseSuccess(w, "success", menu)
}

// GetCategories handles GET /api/menu/categories (public)
func (h *MenuHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetCategories(r.Context())
	if err != nil {
		handleServiceError(h.log, w, r, err, "get menu categories")
		return
	}

	utils.ResponseSuccess(w, "success", categories)
}
