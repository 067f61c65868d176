package handler

import (
	"net/http"

	"github.com/vanozi/superleuk-backend/internal/dto"
	"github.com/vanozi/superleuk-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AllowedUsersHandler manages registration invitations.
type AllowedUsersHandler struct{ svc service.AllowedUsersService }

func NewAllowedUsersHandler(svc service.AllowedUsersService) *AllowedUsersHandler {
	return &AllowedUsersHandler{svc: svc}
}

// Create sends the invitation mail synchronously and rolls the invitation
// back when sending fails.
func (h *AllowedUsersHandler) Create(c *gin.Context) {
	var req dto.AllowedUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// CreateAsync stores the invitation and leaves mail delivery to the job queue.
func (h *AllowedUsersHandler) CreateAsync(c *gin.Context) {
	var req dto.AllowedUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateAsync(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AllowedUsersHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AllowedUsersHandler) Get(c *gin.Context) {
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

func (h *AllowedUsersHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.AllowedUserRequest
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

func (h *AllowedUsersHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Uitnodiging succesvol verwijderd"})
}
