package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet-service/internal/service"
)

func (h *Handler) monthlyTotals(kind service.TotalsKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		totals, err := h.dashboardService.MonthlyTotals(c.Request.Context(), kind)
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, successResponse(totals))
	}
}

func (h *Handler) monthlySeries(kind service.TotalsKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		series, err := h.dashboardService.MonthlySeries(c.Request.Context(), kind)
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, successResponse(series))
	}
}

func (h *Handler) vehicleTotals(c *gin.Context) {
	totals, err := h.dashboardService.VehicleTotals(c.Request.Context(), c.Param("plate"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(totals))
}
