package handler

import (
	"net/http"

	"github.com/DaewoongByun/sw-quality-dashboard/internal/application/user"
	"github.com/DaewoongByun/sw-quality-dashboard/internal/transport/http/response"
)

// UserHandler serves the caller's own account.
type UserHandler struct {
	svc  user.Service
	errs *response.Normalizer
}

func NewUserHandler(svc user.Service, errs *response.Normalizer) *UserHandler {
	return &UserHandler{svc: svc, errs: errs}
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	uid, err := callerID(r)
	if err != nil {
		h.errs.Write(w, err)
		return
	}
	u, err := h.svc.Me(r.Context(), uid)
	if err != nil {
		h.errs.Write(w, err)
		return
	}
	response.OK(w, http.StatusOK, "user found", u)
}

func (h *UserHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	uid, err := callerID(r)
	if err != nil {
		h.errs.Write(w, err)
		return
	}
	if err := h.svc.Withdraw(r.Context(), uid); err != nil {
		h.errs.Write(w, err)
		return
	}
	response.OK(w, http.StatusOK, "user withdrawn", nil)
}
