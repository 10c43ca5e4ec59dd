package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DaewoongByun/sw-quality-dashboard/internal/application/auth"
	"github.com/DaewoongByun/sw-quality-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAuthSvc struct{ mock.Mock }

func (m *mockAuthSvc) Signup(ctx context.Context, in domain.SignupInput) (*domain.User, error) {
	args := m.Called(ctx, in)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockAuthSvc) Login(ctx context.Context, in domain.LoginInput) (*auth.LoginResult, error) {
	args := m.Called(ctx, in)
	if r, _ := args.Get(0).(*auth.LoginResult); r != nil {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestSignup_ValidationMessages(t *testing.T) {
	svc := &mockAuthSvc{}
	body := mustJSON(t, domain.SignupInput{Email: "not-an-email", Password: "short", Nickname: "alice"})

	rr := httptest.NewRecorder()
	NewAuthHandler(svc, testErrs).Signup(rr, newReq(http.MethodPost, "/api/signup", body))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "please enter a valid email address, password must be 8 to 72 characters", decodeEnvelope(t, rr).Message)
	svc.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything)
}

func TestSignup_DuplicateNickname(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("Signup", mock.Anything, mock.Anything).Return(nil, domain.Duplicated(domain.DuplicateNickname))
	body := mustJSON(t, domain.SignupInput{Email: "a@b.com", Password: "password123", Nickname: "alice"})

	rr := httptest.NewRecorder()
	NewAuthHandler(svc, testErrs).Signup(rr, newReq(http.MethodPost, "/api/signup", body))

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "nickname already exists", decodeEnvelope(t, rr).Message)
}

func TestSignup_Created(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("Signup", mock.Anything, mock.Anything).Return(&domain.User{UserID: "u1", Email: "a@b.com", PasswordHash: "hash"}, nil)
	body := mustJSON(t, domain.SignupInput{Email: "a@b.com", Password: "password123", Nickname: "alice"})

	rr := httptest.NewRecorder()
	NewAuthHandler(svc, testErrs).Signup(rr, newReq(http.MethodPost, "/api/signup", body))

	assert.Equal(t, http.StatusCreated, rr.Code)
	e := decodeEnvelope(t, rr)
	assert.NotContains(t, string(e.Data), "hash")
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("Login", mock.Anything, domain.LoginInput{Email: "a@b.com", Password: "nope"}).Return(nil, &domain.CredentialMismatch{})

	rr := httptest.NewRecorder()
	body := mustJSON(t, domain.LoginInput{Email: "a@b.com", Password: "nope"})
	NewAuthHandler(svc, testErrs).Login(rr, newReq(http.MethodPost, "/api/login", body))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "password does not match", decodeEnvelope(t, rr).Message)
}

func TestLogin_ReturnsAccessToken(t *testing.T) {
	svc := &mockAuthSvc{}
	svc.On("Login", mock.Anything, mock.Anything).Return(&auth.LoginResult{AccessToken: "signed.jwt", User: &domain.User{UserID: "u1"}}, nil)

	rr := httptest.NewRecorder()
	body := mustJSON(t, domain.LoginInput{Email: "a@b.com", Password: "password123"})
	NewAuthHandler(svc, testErrs).Login(rr, newReq(http.MethodPost, "/api/login", body))

	assert.Equal(t, http.StatusOK, rr.Code)
	var data struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rr).Data, &data))
	assert.Equal(t, "signed.jwt", data.AccessToken)
}
