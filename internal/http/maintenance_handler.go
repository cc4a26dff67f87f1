package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet-service/internal/service"
)

func (h *Handler) listMaintenances(c *gin.Context) {
	maintenances, err := h.maintenanceService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(maintenances))
}

// createMaintenance accepts an optional "review" object; when present the
// review is stored with the new line.
func (h *Handler) createMaintenance(c *gin.Context) {
	var req service.MaintenanceInput
	if !h.bindJSON(c, &req) {
		return
	}

	maintenance, err := h.maintenanceService.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, successResponse(maintenance))
}

func (h *Handler) getMaintenance(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	maintenance, err := h.maintenanceService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(maintenance))
}

func (h *Handler) getMaintenanceWithReviews(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	maintenance, err := h.maintenanceService.GetWithReviews(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(maintenance))
}

func (h *Handler) updateMaintenance(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req service.UpdateMaintenanceInput
	if !h.bindJSON(c, &req) {
		return
	}

	maintenance, err := h.maintenanceService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(maintenance))
}

func (h *Handler) deleteMaintenance(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.maintenanceService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"message": "maintenance deleted"}))
}

func (h *Handler) listMaintenancesByPlate(c *gin.Context) {
	maintenances, err := h.maintenanceService.ListByPlate(c.Request.Context(), c.Param("plate"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(maintenances))
}

func (h *Handler) listMaintenancesByInvoice(c *gin.Context) {
	maintenances, err := h.maintenanceService.ListByInvoice(c.Request.Context(), c.Param("invoiceId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(maintenances))
}

func (h *Handler) listOrphanedMaintenances(c *gin.Context) {
	maintenances, err := h.maintenanceService.ListOrphaned(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(maintenances))
}

func (h *Handler) listIssuers(c *gin.Context) {
	issuers, err := h.maintenanceService.ListIssuers(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(issuers))
}

func (h *Handler) listReviews(c *gin.Context) {
	reviews, err := h.reviewService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(reviews))
}

func (h *Handler) createReview(c *gin.Context) {
	var req service.ReviewInput
	if !h.bindJSON(c, &req) {
		return
	}

	review, err := h.reviewService.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, successResponse(review))
}

func (h *Handler) getReview(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	review, err := h.reviewService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(review))
}

func (h *Handler) updateReview(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req service.UpdateReviewInput
	if !h.bindJSON(c, &req) {
		return
	}

	review, err := h.reviewService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(review))
}

func (h *Handler) deleteReview(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.reviewService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"message": "review deleted"}))
}

func (h *Handler) listReviewsByMaintenance(c *gin.Context) {
	maintenanceID, ok := parseIDParam(c, "maintenanceId")
	if !ok {
		return
	}

	reviews, err := h.reviewService.ListByMaintenance(c.Request.Context(), maintenanceID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(reviews))
}
