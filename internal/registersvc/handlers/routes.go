package handlers

import (
	"github.com/go-chi/chi"
)

func (h *Handler) SetRoutes(r chi.Router) {
	r.Get("/health", h.HealthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/visitor", func(r chi.Router) {
			r.Get("/", h.ListVisitors)
			r.Post("/", h.CreateVisitor)
		})

		r.Route("/contractor", func(r chi.Router) {
			r.Get("/", h.ListContractors)
			r.Post("/", h.CreateContractor)
			r.Put("/{id}", h.UpdateContractor)
		})
	})
}
