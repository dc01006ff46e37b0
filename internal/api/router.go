package api

import (
	"net/http"

	"github.com/audwofla/Aramalyze/internal/api/handlers"
	"github.com/audwofla/Aramalyze/internal/api/middleware"
	"github.com/audwofla/Aramalyze/internal/logger"
	"github.com/audwofla/Aramalyze/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services, log *logger.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.RequestLogger(log))
	r.Use(chiMiddleware.Recoverer)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	championHandler := handlers.NewChampionHandler(services.Champion, log)
	patchHandler := handlers.NewPatchHandler(services.Patch, log)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/champions", func(r chi.Router) {
			r.Get("/", championHandler.GetAll)
			r.Get("/{id}", championHandler.Get)
		})

		r.Route("/patches", func(r chi.Router) {
			r.Get("/", patchHandler.List)
			r.Get("/{patch}/champions/{id}", championHandler.GetForPatch)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminAuth(services.Auth, log))
				r.Post("/load", patchHandler.Load)
			})
		})
	})

	return r
}
