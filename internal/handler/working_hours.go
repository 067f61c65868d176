package handler

import (
	"fmt"
	"net/http"

	"github.com/vanozi/superleuk-backend/internal/dto"
	"github.com/vanozi/superleuk-backend/internal/middleware"
	"github.com/vanozi/superleuk-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type WorkingHoursHandler struct{ svc service.WorkingHoursService }

func NewWorkingHoursHandler(svc service.WorkingHoursService) *WorkingHoursHandler {
	return &WorkingHoursHandler{svc: svc}
}

// Upsert creates or partially updates the entry for (current user, date).
func (h *WorkingHoursHandler) Upsert(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	var req dto.UpsertWorkingHoursRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Upsert(c.Request.Context(), user, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WorkingHoursHandler) ListMine(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	resp, err := h.svc.ListForUser(c.Request.Context(), user.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WorkingHoursHandler) ListForUser(c *gin.Context) {
	id, ok := idParam(c, "user_id")
	if !ok {
		return
	}
	resp, err := h.svc.ListForUser(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WorkingHoursHandler) ListBetween(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	from, ok := dateQuery(c, "from_date")
	if !ok {
		return
	}
	to, ok := dateQuery(c, "to_date")
	if !ok {
		return
	}
	resp, err := h.svc.ListBetween(c.Request.Context(), user.ID, from, to)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
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

func (h *WorkingHoursHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Uren succesvol verwijderd"})
}

// MyWeekOverview buckets the logged-in user's entries per ISO week.
func (h *WorkingHoursHandler) MyWeekOverview(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	from, ok := dateQuery(c, "from_date")
	if !ok {
		return
	}
	to, ok := dateQuery(c, "to_date")
	if !ok {
		return
	}
	resp, err := h.svc.MyWeekOverview(c.Request.Context(), user, from, to)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// WeekOverviewForUser is the admin view on one employee's weeks.
func (h *WorkingHoursHandler) WeekOverviewForUser(c *gin.Context) {
	from, ok := dateQuery(c, "from_date")
	if !ok {
		return
	}
	to, ok := dateQuery(c, "to_date")
	if !ok {
		return
	}
	userID, ok := uintQuery(c, "user_id")
	if !ok {
		return
	}
	resp, err := h.svc.WeekOverviewForUser(c.Request.Context(), userID, from, to)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AdminWeekOverview reports all active werknemers per ISO week.
func (h *WorkingHoursHandler) AdminWeekOverview(c *gin.Context) {
	from, ok := dateQuery(c, "from_date")
	if !ok {
		return
	}
	to, ok := dateQuery(c, "to_date")
	if !ok {
		return
	}
	resp, err := h.svc.AdminWeekOverview(c.Request.Context(), from, to)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WorkingHoursHandler) MyYearOverview(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	year, ok := yearQuery(c)
	if !ok {
		return
	}
	resp, err := h.svc.YearOverview(c.Request.Context(), user.ID, year)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// YearOverviewForUser is the admin variant addressed by user_id.
func (h *WorkingHoursHandler) YearOverviewForUser(c *gin.Context) {
	year, ok := yearQuery(c)
	if !ok {
		return
	}
	userID, ok := uintQuery(c, "user_id")
	if !ok {
		return
	}
	resp, err := h.svc.YearOverview(c.Request.Context(), userID, year)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WorkingHoursHandler) MonthOverviewForYear(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	year, ok := yearQuery(c)
	if !ok {
		return
	}
	resp, err := h.svc.MonthOverviewForYear(c.Request.Context(), user.ID, year)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// YearOverviewPDF streams the year overview as a PDF download.
func (h *WorkingHoursHandler) YearOverviewPDF(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	year, ok := yearQuery(c)
	if !ok {
		return
	}
	pdf, err := h.svc.YearOverviewPDF(c.Request.Context(), user.ID, year)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="urenoverzicht_%d.pdf"`, year))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// Release unlocks every entry in the date range for editing.
func (h *WorkingHoursHandler) Release(c *gin.Context) {
	var req dto.ReleaseRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Release(c.Request.Context(), req); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Werkuren zijn succesvol vrijgegeven"})
}
