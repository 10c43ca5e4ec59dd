package handler

import (
	"net/http"

	"github.com/DaewoongByun/sw-quality-dashboard/internal/domain"
	"github.com/DaewoongByun/sw-quality-dashboard/internal/transport/http/response"
	"github.com/go-chi/chi/v5"
)

// HealthHandler handles health-check endpoints.
type HealthHandler struct {
	errs *response.Normalizer
}

func NewHealthHandler(errs *response.Normalizer) *HealthHandler { return &HealthHandler{errs: errs} }

func (h *HealthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "action") == "ping" {
		response.OK(w, http.StatusOK, "pong", nil)
		return
	}
	h.errs.Write(w, domain.Invalid("action", "unknown action"))
}
