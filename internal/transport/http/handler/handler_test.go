package handler

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DaewoongByun/sw-quality-dashboard/internal/domain"
	jwtinfra "github.com/DaewoongByun/sw-quality-dashboard/internal/infrastructure/jwt"
	"github.com/DaewoongByun/sw-quality-dashboard/internal/transport/http/response"
	"github.com/stretchr/testify/require"
)

// envelope is the union of the success and error bodies.
type envelope struct {
	IsSuccess  bool            `json:"isSuccess"`
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}

var testErrs = response.NewNormalizer(nil)

// newTestJWTProvider generates a fresh RSA key pair and returns a *jwtinfra.Provider.
func newTestJWTProvider(t *testing.T) *jwtinfra.Provider {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return jwtinfra.NewProviderFromKeys(key, &key.PublicKey, time.Hour)
}

// bearerReq builds a request with a signed Bearer token for userID holding authorities.
func bearerReq(t *testing.T, p *jwtinfra.Provider, method, target, userID string, authorities []string, body []byte) *http.Request {
	t.Helper()
	token, err := p.Sign(userID, userID+"@example.com", authorities)
	require.NoError(t, err)
	r := newReq(method, target, body)
	r.Header.Set("Authorization", "Bearer "+token)
	return r
}

func newReq(method, target string, body []byte) *http.Request {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	r := httptest.NewRequest(method, target, rd)
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	return r
}

func mustJSON(t *testing.T, v interface{}) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &e))
	return e
}

var (
	adminAuthorities = []string{domain.RoleUser, domain.RoleAdmin}
	userAuthorities  = []string{domain.RoleUser}
)
