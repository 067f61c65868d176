package handler

import (
	"net/http"

	"github.com/vanozi/superleuk-backend/internal/dto"
	"github.com/vanozi/superleuk-backend/internal/middleware"
	"github.com/vanozi/superleuk-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type MachinesHandler struct{ svc service.MachinesService }

func NewMachinesHandler(svc service.MachinesService) *MachinesHandler {
	return &MachinesHandler{svc: svc}
}

func (h *MachinesHandler) Create(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	var req dto.MachineRequest
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

// Update addresses the machine by its work number.
func (h *MachinesHandler) Update(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	var req dto.MachineRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateByWorkNumber(c.Request.Context(), user, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MachinesHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get returns the machine with its tickets and fuel transactions.
func (h *MachinesHandler) Get(c *gin.Context) {
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

func (h *MachinesHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Machine succesvol verwijderd"})
}
