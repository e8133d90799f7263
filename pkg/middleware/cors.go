package middleware

import (
	"net/http"

	"restaurant-booking/pkg/utils"

	"github.com/rs/cors"
)

// CORS lets the browser front end call the API from its own origin.
func CORS(config utils.CORSConfig) func(http.Handler) http.Handler {
	origins := config.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	})

	return c.Handler
}
