package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/ledgerlens/internal/http/auth"
	"github.com/MrJamesThe3rd/ledgerlens/internal/http/categorize"
	"github.com/MrJamesThe3rd/ledgerlens/internal/http/export"
	"github.com/MrJamesThe3rd/ledgerlens/internal/http/ingest"
	"github.com/MrJamesThe3rd/ledgerlens/internal/http/report"
)

func New(
	reportsV1 *report.Handler,
	ingestV1 *ingest.Handler,
	categorizeV1 *categorize.Handler,
	exportV1 *export.Handler,
	authSecret string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware(authSecret))

		r.Route("/reports", reportsV1.Routes)

		r.Route("/ingest", ingestV1.Routes)

		r.Route("/categorize", func(r chi.Router) {
			categorizeV1.Routes(r)
		})

		r.Route("/export", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			exportV1.Routes(r)
		})
	})

	return router
}
