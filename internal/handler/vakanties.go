package handler

import (
	"fmt"
	"net/http"

	"github.com/vanozi/superleuk-backend/internal/dto"
	"github.com/vanozi/superleuk-backend/internal/middleware"
	"github.com/vanozi/superleuk-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type VakantiesHandler struct{ svc service.VakantiesService }

func NewVakantiesHandler(svc service.VakantiesService) *VakantiesHandler {
	return &VakantiesHandler{svc: svc}
}

// Create books a vacation for the logged-in user.
func (h *VakantiesHandler) Create(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	var req dto.VakantieRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), user, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// CreateForUser books a vacation on behalf of another user (admin only).
func (h *VakantiesHandler) CreateForUser(c *gin.Context) {
	admin := middleware.GetCurrentUser(c)
	var req dto.VakantieAdminRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateForUser(c.Request.Context(), admin, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *VakantiesHandler) ListMine(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	resp, err := h.svc.ListMine(c.Request.Context(), user.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VakantiesHandler) ListAll(c *gin.Context) {
	resp, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VakantiesHandler) ListBetween(c *gin.Context) {
	start, ok := dateQuery(c, "start_date")
	if !ok {
		return
	}
	end, ok := dateQuery(c, "end_date")
	if !ok {
		return
	}
	resp, err := h.svc.ListBetween(c.Request.Context(), start, end)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VakantiesHandler) Delete(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), user, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("De vakantie met id %d is verwijderd", id)})
}

// Resources lists the planner resource lanes, one per werknemer.
func (h *VakantiesHandler) Resources(c *gin.Context) {
	resp, err := h.svc.Resources(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CalendarEvents projects all vacations onto the planner calendar.
func (h *VakantiesHandler) CalendarEvents(c *gin.Context) {
	resp, err := h.svc.CalendarEvents(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
