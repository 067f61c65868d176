package handler

import (
	"net/http"

	"github.com/vanozi/superleuk-backend/internal/dto"
	"github.com/vanozi/superleuk-backend/internal/middleware"
	"github.com/vanozi/superleuk-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type UsersHandler struct{ svc service.UsersService }

func NewUsersHandler(svc service.UsersService) *UsersHandler { return &UsersHandler{svc: svc} }

// Me returns the logged-in user's profile with roles and address.
func (h *UsersHandler) Me(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	resp, err := h.svc.Get(c.Request.Context(), user.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateMe applies a partial update to the logged-in user's profile.
func (h *UsersHandler) UpdateMe(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	var req dto.UpdateUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), user.ID, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ── Admin routes ─────────────────────────────────────────────────────────────

func (h *UsersHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UsersHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UsersHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UsersHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Gebruiker succesvol verwijderd"})
}

func (h *UsersHandler) AddRole(c *gin.Context) {
	var req dto.AddRoleToUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AddRole(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UsersHandler) RemoveRole(c *gin.Context) {
	var req dto.RemoveRoleFromUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RemoveRole(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpsertAddress creates or partially updates the address of a user.
func (h *UsersHandler) UpsertAddress(c *gin.Context) {
	id, ok := idParam(c, "user_id")
	if !ok {
		return
	}
	var req dto.UpdateAddressRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpsertAddress(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
