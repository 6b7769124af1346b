package handlers

import (
	"net/http"

	"github.com/avvvet/signin-register/internal/registersvc/models"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) CreateVisitor(w http.ResponseWriter, r *http.Request) {
	var payload models.VisitorPayload
	if err := decodeBody(r, &payload); err != nil {
		h.badRequest(w, "invalid visitor payload", err)
		return
	}

	visitor, err := h.visitors.CreateVisitor(r.Context(), payload.Visitor())
	if err != nil {
		log.Errorf("Error [VisitorService.CreateVisitor] %v", err)
		h.badRequest(w, "unable to save visitor", err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, visitor)
}

func (h *Handler) ListVisitors(w http.ResponseWriter, r *http.Request) {
	visitors, err := h.visitors.ListVisitors(r.Context())
	if err != nil {
		log.Errorf("Error [VisitorService.ListVisitors] %v", err)
		h.badRequest(w, "unable to fetch visitors", err)
		return
	}

	h.WriteJSON(w, http.StatusOK, visitors)
}
