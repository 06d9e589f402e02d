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

	router.Route("/employees", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)

		r.Get("/{id}", h.get)
		r.Put("/{id}", h.replace)
		r.Delete("/{id}", h.delete)
	})

	return router
}
