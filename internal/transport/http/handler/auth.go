package handler

import (
	"net/http"

	"github.com/DaewoongByun/sw-quality-dashboard/internal/application/auth"
	"github.com/DaewoongByun/sw-quality-dashboard/internal/domain"
	"github.com/DaewoongByun/sw-quality-dashboard/internal/transport/http/response"
)

// AuthHandler handles signup and login.
type AuthHandler struct {
	svc  auth.Service
	errs *response.Normalizer
}

func NewAuthHandler(svc auth.Service, errs *response.Normalizer) *AuthHandler {
	return &AuthHandler{svc: svc, errs: errs}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var in domain.SignupInput
	if err := decode(r, &in); err != nil {
		h.errs.Write(w, err)
		return
	}
	u, err := h.svc.Signup(r.Context(), in)
	if err != nil {
		h.errs.Write(w, err)
		return
	}
	response.OK(w, http.StatusCreated, "signup succeeded", u)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in domain.LoginInput
	if err := decode(r, &in); err != nil {
		h.errs.Write(w, err)
		return
	}
	res, err := h.svc.Login(r.Context(), in)
	if err != nil {
		h.errs.Write(w, err)
		return
	}
	response.OK(w, http.StatusOK, "login succeeded", res)
}
