package handler

import (
	"encoding/json"
	"net/http"

	"github.com/DaewoongByun/sw-quality-dashboard/internal/domain"
	"github.com/DaewoongByun/sw-quality-dashboard/internal/pkg/validate"
	"github.com/DaewoongByun/sw-quality-dashboard/internal/transport/http/middleware"
)

// decode reads a JSON body into v and validates it. A body that is not valid
// JSON is reported as a single-field validation failure.
func decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.Invalid("body", "invalid request body")
	}
	return validate.Struct(v)
}

// callerID returns the authenticated user's id.
func callerID(r *http.Request) (string, error) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		return "", domain.Unauthorized("no claims in context")
	}
	return claims.UserID, nil
}
