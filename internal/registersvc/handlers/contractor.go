package handlers

import (
	"errors"
	"net/http"

	"github.com/avvvet/signin-register/internal/registersvc/models"
	"github.com/avvvet/signin-register/internal/registersvc/store"
	"github.com/go-chi/chi"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) CreateContractor(w http.ResponseWriter, r *http.Request) {
	var payload models.ContractorPayload
	if err := decodeBody(r, &payload); err != nil {
		h.badRequest(w, "invalid contractor payload", err)
		return
	}

	contractor, err := h.contractors.CreateContractor(r.Context(), payload.Contractor())
	if err != nil {
		log.Errorf("Error [ContractorService.CreateContractor] %v", err)
		h.badRequest(w, "unable to save contractor", err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, contractor)
}

func (h *Handler) ListContractors(w http.ResponseWriter, r *http.Request) {
	contractors, err := h.contractors.ListContractors(r.Context())
	if err != nil {
		log.Errorf("Error [ContractorService.ListContractors] %v", err)
		h.badRequest(w, "unable to fetch contractors", err)
		return
	}

	h.WriteJSON(w, http.StatusOK, contractors)
}

func (h *Handler) UpdateContractor(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var payload models.ContractorPayload
	if err := decodeBody(r, &payload); err != nil {
		h.badRequest(w, "invalid contractor payload", err)
		return
	}

	contractor, err := h.contractors.UpdateContractor(r.Context(), id, payload)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.CreateResponse(w, Response{
				Message: "contractor not found",
				Code:    http.StatusNotFound,
				Error:   err.Error(),
			})
			return
		}
		log.Errorf("Error [ContractorService.UpdateContractor] %s: %v", id, err)
		h.badRequest(w, "unable to update contractor", err)
		return
	}

	h.WriteJSON(w, http.StatusOK, contractor)
}
