package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet-service/internal/service"
)

func (h *Handler) listFuels(c *gin.Context) {
	fuels, err := h.fuelService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(fuels))
}

func (h *Handler) createFuel(c *gin.Context) {
	var req service.FuelInput
	if !h.bindJSON(c, &req) {
		return
	}

	fuel, err := h.fuelService.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, successResponse(fuel))
}

func (h *Handler) getFuel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	fuel, err := h.fuelService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(fuel))
}

func (h *Handler) updateFuel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req service.UpdateFuelInput
	if !h.bindJSON(c, &req) {
		return
	}

	fuel, err := h.fuelService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(fuel))
}

func (h *Handler) deleteFuel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.fuelService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"message": "fuel deleted"}))
}

func (h *Handler) listFuelsByPlate(c *gin.Context) {
	fuels, err := h.fuelService.ListByPlate(c.Request.Context(), c.Param("plate"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(fuels))
}

func (h *Handler) listOrphanedFuels(c *gin.Context) {
	fuels, err := h.fuelService.ListOrphaned(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(fuels))
}
