package handler

import (
	"net/http"

	"github.com/DaewoongByun/sw-quality-dashboard/internal/application/team"
	"github.com/DaewoongByun/sw-quality-dashboard/internal/transport/http/response"
	"github.com/go-chi/chi/v5"
)

type TeamHandler struct {
	svc  team.Service
	errs *response.Normalizer
}

func NewTeamHandler(svc team.Service, errs *response.Normalizer) *TeamHandler {
	return &TeamHandler{svc: svc, errs: errs}
}

func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	teams, err := h.svc.List(r.Context())
	if err != nil {
		h.errs.Write(w, err)
		return
	}
	response.OK(w, http.StatusOK, "teams found", teams)
}

func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.errs.Write(w, err)
		return
	}
	response.OK(w, http.StatusOK, "team found", t)
}
