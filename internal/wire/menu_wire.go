package wire

import (
	"restaurant-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMenu(r chi.Router, menuHandler *adaptor.MenuHandler) {
	// GET /api/menu?category=main&page=1&per_page=10
	r.Get("/api/menu", menuHandler.GetMenu)

	// GET /api/menu/categories
	r.Get("/api/menu/categories", menuHandler.GetCategories)
}
