package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	jwtinfra "github.com/DaewoongByun/sw-quality-dashboard/internal/infrastructure/jwt"
	"github.com/stretchr/testify/assert"
)

func TestRequireRole_NoClaimsInContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	RequireRole(testNormalizer, "ROLE_ADMIN")(http.HandlerFunc(okHandler)).ServeHTTP(rr, req)
	assertUnauthorizedEnvelope(t, rr)
}

func TestRequireRole_MissingAuthority(t *testing.T) {
	ctx := WithClaims(context.Background(), &jwtinfra.Claims{Authorities: []string{"ROLE_USER"}})
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
	rr := httptest.NewRecorder()
	RequireRole(testNormalizer, "ROLE_ADMIN")(http.HandlerFunc(okHandler)).ServeHTTP(rr, req)
	assertUnauthorizedEnvelope(t, rr)
}

func TestRequireRole_HasAuthority(t *testing.T) {
	ctx := WithClaims(context.Background(), &jwtinfra.Claims{Authorities: []string{"ROLE_USER", "ROLE_ADMIN"}})
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
	rr := httptest.NewRecorder()
	RequireRole(testNormalizer, "ROLE_ADMIN")(http.HandlerFunc(okHandler)).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRequireRole_MultipleAllowed(t *testing.T) {
	ctx := WithClaims(context.Background(), &jwtinfra.Claims{Authorities: []string{"ROLE_USER"}})
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
	rr := httptest.NewRecorder()
	RequireRole(testNormalizer, "ROLE_ADMIN", "ROLE_USER")(http.HandlerFunc(okHandler)).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}
