package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/v1", func(r chi.Router) {
		r.Post("/vaults", h.createVault)
		r.Post("/devices", h.registerDevice)
		r.Post("/ops/push", h.pushOps)
		r.Get("/ops/pull", h.pullOps)
	})

	router.Get("/health", h.health)

	return router
}
