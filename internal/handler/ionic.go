package handler

import (
	"fmt"
	"net/http"

	"github.com/vanozi/superleuk-backend/internal/apierror"
	"github.com/vanozi/superleuk-backend/internal/dto"
	"github.com/vanozi/superleuk-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// IonicHandler serves the mobile app's device-bound login flow.
type IonicHandler struct{ svc service.AuthService }

func NewIonicHandler(svc service.AuthService) *IonicHandler { return &IonicHandler{svc: svc} }

// Login accepts form-encoded credentials, the shape the Ionic app posts.
func (h *IonicHandler) Login(c *gin.Context) {
	var req dto.DeviceLoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Ongeldig verzoek"))
		return
	}
	resp, err := h.svc.DeviceLogin(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeviceStatus reauthenticates a device by its stored token and rotates it.
func (h *IonicHandler) DeviceStatus(c *gin.Context) {
	deviceID := c.Query("device_id")
	if deviceID == "" {
		c.JSON(http.StatusBadRequest, apierror.New("Parameter device_id ontbreekt"))
		return
	}
	resp, err := h.svc.DeviceStatus(c.Request.Context(), deviceID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *IonicHandler) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.DeviceLogout(c.Request.Context(), req.DeviceID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Device ID %s is succesvol uitgelogd", req.DeviceID)})
}
