package wire

import (
	"net/http"

	"restaurant-booking/internal/adaptor"
	"restaurant-booking/internal/data/repository"
	"restaurant-booking/internal/usecase"
	"restaurant-booking/pkg/cache"
	"restaurant-booking/pkg/middleware"
	"restaurant-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired HTTP router and the services behind it
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring builds services, handlers and the router. A nil store disables the
// availability cache.
func Wiring(repo *repository.Repository, store cache.Store, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	if store != nil {
		service.Availability = usecase.NewCachedAvailabilityService(service.Availability, store, config.Redis.TTL, logger)
	}

	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router:  setupRouter(handler, config, logger),
		Service: service,
	}
}

// setupRouter registers global middleware and every route group
func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// RequestID first so the logger and recoverer see it
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS))

	wireAvailability(r, handler.Availability)
	wireFloor(r, handler.Floor)
	wireMenu(r, handler.Menu)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
