package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fleet-service/internal/repository"
	"fleet-service/internal/service"
)

func (h *Handler) listAlerts(c *gin.Context) {
	var filter repository.AlertListFilter

	if raw := strings.TrimSpace(c.Query("vehicleId")); raw != "" {
		vehicleID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("invalid vehicleId"))
			return
		}
		filter.VehicleID = &vehicleID
	}
	if raw := strings.TrimSpace(c.Query("completed")); raw != "" {
		completed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("invalid completed flag"))
			return
		}
		filter.IsCompleted = &completed
	}

	alerts, err := h.alertService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(alerts))
}

func (h *Handler) createAlert(c *gin.Context) {
	var req service.AlertInput
	if !h.bindJSON(c, &req) {
		return
	}

	alert, err := h.alertService.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, successResponse(alert))
}

func (h *Handler) getAlert(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	alert, err := h.alertService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(alert))
}

func (h *Handler) updateAlert(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req service.UpdateAlertInput
	if !h.bindJSON(c, &req) {
		return
	}

	alert, err := h.alertService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(alert))
}

func (h *Handler) deleteAlert(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.alertService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"message": "alert deleted"}))
}

func (h *Handler) completeAlert(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.CompleteAlertInput
	if c.Request.ContentLength != 0 {
		if !h.bindJSON(c, &req) {
			return
		}
	}

	alert, err := h.alertService.Complete(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(alert))
}

// dueAlerts lists pending alerts that are due soon or overdue. The
// optional "window" query parameter overrides the configured lookahead.
func (h *Handler) dueAlerts(c *gin.Context) {
	var window *float64
	if raw := strings.TrimSpace(c.Query("window")); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("invalid window"))
			return
		}
		window = &value
	}

	due, err := h.alertService.DueCheck(c.Request.Context(), window)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(due))
}
