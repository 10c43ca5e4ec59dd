package handler

import (
	"net/http"

	"github.com/DaewoongByun/sw-quality-dashboard/internal/application/memo"
	"github.com/DaewoongByun/sw-quality-dashboard/internal/domain"
	"github.com/DaewoongByun/sw-quality-dashboard/internal/transport/http/response"
	"github.com/go-chi/chi/v5"
)

// MemoHandler handles memo endpoints. Writes are admin-only at the router.
type MemoHandler struct {
	svc  memo.Service
	errs *response.Normalizer
}

func NewMemoHandler(svc memo.Service, errs *response.Normalizer) *MemoHandler {
	return &MemoHandler{svc: svc, errs: errs}
}

func (h *MemoHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, err := callerID(r)
	if err != nil {
		h.errs.Write(w, err)
		return
	}
	var in domain.CreateMemoInput
	if err := decode(r, &in); err != nil {
		h.errs.Write(w, err)
		return
	}
	m, err := h.svc.Create(r.Context(), uid, in)
	if err != nil {
		h.errs.Write(w, err)
		return
	}
	response.OK(w, http.StatusCreated, "memo created", m)
}

func (h *MemoHandler) Get(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.errs.Write(w, err)
		return
	}
	response.OK(w, http.StatusOK, "memo found", m)
}

func (h *MemoHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in domain.UpdateMemoInput
	if err := decode(r, &in); err != nil {
		h.errs.Write(w, err)
		return
	}
	m, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		h.errs.Write(w, err)
		return
	}
	response.OK(w, http.StatusOK, "memo updated", m)
}

func (h *MemoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.errs.Write(w, err)
		return
	}
	response.OK(w, http.StatusOK, "memo deleted", nil)
}
