package handler

import (
	"net/http"

	"github.com/vanozi/superleuk-backend/internal/dto"
	"github.com/vanozi/superleuk-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Register godoc
// @Summary Registreer een nieuw account (alleen op uitnodiging)
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RegisterRequest true "Registratie"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) ActivateAccount(c *gin.Context) {
	var req dto.ActivateAccountRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.ActivateAccount(c.Request.Context(), req.Token); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Account succesvol geactiveerd"})
}

// Login godoc
// @Summary Login met email en wachtwoord
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Inloggegevens"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} apierror.APIError
// @Router /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
