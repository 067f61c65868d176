package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vanozi/superleuk-backend/internal/apierror"
	"github.com/vanozi/superleuk-backend/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuthService returns canned responses so the handler layer can be tested
// in isolation.
type fakeAuthService struct {
	loginErr error
}

func (s *fakeAuthService) Register(_ context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	return &dto.UserResponse{Email: req.Email}, nil
}

func (s *fakeAuthService) ActivateAccount(context.Context, string) error { return nil }

func (s *fakeAuthService) Login(context.Context, dto.LoginRequest) (*dto.TokenResponse, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &dto.TokenResponse{AccessToken: "access", RefreshToken: "refresh", TokenType: "bearer"}, nil
}

func (s *fakeAuthService) Refresh(context.Context, string) (*dto.TokenResponse, error) {
	return &dto.TokenResponse{AccessToken: "access", RefreshToken: "refresh", TokenType: "bearer"}, nil
}

func (s *fakeAuthService) DeviceLogin(context.Context, dto.DeviceLoginRequest) (*dto.TokenResponse, error) {
	return &dto.TokenResponse{AccessToken: "access", TokenType: "bearer"}, nil
}

func (s *fakeAuthService) DeviceStatus(context.Context, string) (*dto.TokenResponse, error) {
	return nil, apierror.NotFound("Dit device is nog niet ingelogd geweest")
}

func (s *fakeAuthService) DeviceLogout(context.Context, string) error { return nil }

func newAuthRouter(svc *fakeAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(svc)
	r := gin.New()
	r.POST("/v1/auth/register", h.Register)
	r.POST("/v1/auth/login", h.Login)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterValidatesBody(t *testing.T) {
	r := newAuthRouter(&fakeAuthService{})

	w := postJSON(t, r, "/v1/auth/register", dto.RegisterRequest{
		FirstName: "Jan",
		Email:     "geen-email",
		Password:  "kort",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp apierror.ValidationError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Validatiefout", resp.Detail)
	assert.Contains(t, resp.Fields, "email")
	assert.Contains(t, resp.Fields, "password")
	assert.Contains(t, resp.Fields, "last_name")
}

func TestRegisterCreated(t *testing.T) {
	r := newAuthRouter(&fakeAuthService{})

	w := postJSON(t, r, "/v1/auth/register", dto.RegisterRequest{
		FirstName: "Jan", LastName: "Jansen",
		Email: "jan@example.com", Password: "wachtwoord123",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestLoginTranslatesServiceError(t *testing.T) {
	r := newAuthRouter(&fakeAuthService{
		loginErr: apierror.Unauthorized("Ongeldige combinatie gebruikersnaam en wachtwoord"),
	})

	w := postJSON(t, r, "/v1/auth/login", dto.LoginRequest{
		Username: "jan@example.com", Password: "fout",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"detail":"Ongeldige combinatie gebruikersnaam en wachtwoord"}`, w.Body.String())
}

func TestLoginReturnsTokenPair(t *testing.T) {
	r := newAuthRouter(&fakeAuthService{})

	w := postJSON(t, r, "/v1/auth/login", dto.LoginRequest{
		Username: "jan@example.com", Password: "wachtwoord123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "bearer", resp.TokenType)
	assert.NotEmpty(t, resp.AccessToken)
}
