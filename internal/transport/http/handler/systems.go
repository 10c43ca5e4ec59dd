package handler

import (
	"net/http"

	"github.com/DaewoongByun/sw-quality-dashboard/internal/application/system"
	"github.com/DaewoongByun/sw-quality-dashboard/internal/transport/http/response"
	"github.com/go-chi/chi/v5"
)

type SystemHandler struct {
	svc  system.Service
	errs *response.Normalizer
}

func NewSystemHandler(svc system.Service, errs *response.Normalizer) *SystemHandler {
	return &SystemHandler{svc: svc, errs: errs}
}

func (h *SystemHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.errs.Write(w, err)
		return
	}
	response.OK(w, http.StatusOK, "system found", s)
}

func (h *SystemHandler) Qualities(w http.ResponseWriter, r *http.Request) {
	qs, err := h.svc.Qualities(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.errs.Write(w, err)
		return
	}
	response.OK(w, http.StatusOK, "qualities found", qs)
}
