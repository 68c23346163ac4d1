package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS allows the storefront UI to call the API from origins. Credentials
// are allowed so the session cookie travels.
func CORS(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Request-ID", "X-Device-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
	})
	return c.Handler
}
