package handler

import (
	"net/http"

	"github.com/vanozi/superleuk-backend/internal/dto"
	"github.com/vanozi/superleuk-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type TankTransactionsHandler struct{ svc service.TankService }

func NewTankTransactionsHandler(svc service.TankService) *TankTransactionsHandler {
	return &TankTransactionsHandler{svc: svc}
}

func (h *TankTransactionsHandler) Create(c *gin.Context) {
	var req dto.TankTransactionRequest
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

func (h *TankTransactionsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TankTransactionsHandler) Get(c *gin.Context) {
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

// ListByVehicle returns all transactions booked on a machine's work name.
func (h *TankTransactionsHandler) ListByVehicle(c *gin.Context) {
	vehicle := c.Param("vehicle")
	resp, err := h.svc.ListByVehicle(c.Request.Context(), vehicle)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TankTransactionsHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Tank transactie succesvol verwijderd"})
}

// SummedQuantity feeds the consumption chart with per-day totals.
func (h *TankTransactionsHandler) SummedQuantity(c *gin.Context) {
	from, ok := dateQuery(c, "from_date")
	if !ok {
		return
	}
	to, ok := dateQuery(c, "to_date")
	if !ok {
		return
	}
	resp, err := h.svc.SummedQuantityBetween(c.Request.Context(), from, to)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
