package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/tdnguyen/finsight/internal/http/auth"
	"github.com/tdnguyen/finsight/internal/http/transaction"
)

// AppInfo is what the health probe reports.
type AppInfo struct {
	Name        string `json:"app_name"`
	Environment string `json:"env"`
}

func New(info AppInfo, transactionsV1 *transaction.Handler, authSecret string) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// The dashboard is served from a different origin.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(info)
		})

		r.Route("/transactions", func(r chi.Router) {
			if authSecret != "" {
				r.Use(auth.Middleware(authSecret))
			}

			transactionsV1.Routes(r)
		})
	})

	return router
}
