package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/avvvet/signin-register/internal/registersvc/service"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	visitors    *service.VisitorService
	contractors *service.ContractorService
	port        string
}

func NewHandler(visitors *service.VisitorService, contractors *service.ContractorService, port string) *Handler {
	return &Handler{
		visitors:    visitors,
		contractors: contractors,
		port:        port,
	}
}

type Response struct {
	Message string      `json:"message"`
	Code    int         `json:"code"`
	Data    interface{} `json:"data"`
	Error   string      `json:"error"`
}

func (h *Handler) CreateResponse(w http.ResponseWriter, rsp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rsp.Code)
	if err := json.NewEncoder(w).Encode(rsp); err != nil {
		log.Errorf("Failed to encode response: %v", err)
	}
}

// WriteJSON writes v as the whole response body.
func (h *Handler) WriteJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("Failed to encode response: %v", err)
	}
}

func (h *Handler) badRequest(w http.ResponseWriter, message string, err error) {
	h.CreateResponse(w, Response{
		Message: message,
		Code:    http.StatusBadRequest,
		Error:   err.Error(),
	})
}

// decodeBody reads a JSON body into dst. An empty body leaves dst as is.
func decodeBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	h.CreateResponse(w, Response{
		Message: "register service is running at port " + h.port,
		Code:    http.StatusOK,
		Data:    nil,
	})
}
