package handler

import (
	"net/http"
	"strconv"

	"github.com/vanozi/superleuk-backend/internal/apierror"
	"github.com/vanozi/superleuk-backend/internal/dto"
	"github.com/vanozi/superleuk-backend/internal/middleware"
	"github.com/vanozi/superleuk-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BouwPlanHandler serves the yearly cropping plan.
type BouwPlanHandler struct{ svc service.BouwPlanService }

func NewBouwPlanHandler(svc service.BouwPlanService) *BouwPlanHandler {
	return &BouwPlanHandler{svc: svc}
}

func (h *BouwPlanHandler) Create(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	var req dto.BouwPlanRequest
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

// List returns the full plan history, or one year when ?year= is given.
func (h *BouwPlanHandler) List(c *gin.Context) {
	var year *int
	if raw := c.Query("year"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("Ongeldig jaar"))
			return
		}
		year = &value
	}
	resp, err := h.svc.List(c.Request.Context(), year)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BouwPlanHandler) Get(c *gin.Context) {
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

func (h *BouwPlanHandler) Update(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req dto.BouwPlanRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), user, id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BouwPlanHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Bouwplan succesvol verwijderd"})
}
