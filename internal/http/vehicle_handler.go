package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet-service/internal/service"
)

func (h *Handler) listVehicles(c *gin.Context) {
	vehicles, err := h.vehicleService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(vehicles))
}

func (h *Handler) createVehicle(c *gin.Context) {
	var req service.VehicleInput
	if !h.bindJSON(c, &req) {
		return
	}

	vehicle, err := h.vehicleService.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, successResponse(vehicle))
}

func (h *Handler) getVehicle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	vehicle, err := h.vehicleService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(vehicle))
}

func (h *Handler) updateVehicle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req service.UpdateVehicleInput
	if !h.bindJSON(c, &req) {
		return
	}

	vehicle, err := h.vehicleService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(vehicle))
}

func (h *Handler) deleteVehicle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.vehicleService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"message": "vehicle deleted"}))
}

func (h *Handler) listPlates(c *gin.Context) {
	plates, err := h.vehicleService.ListPlates(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(plates))
}

func (h *Handler) updateMileage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Mileage *float64 `json:"mileage" binding:"required"`
	}
	if !h.bindJSON(c, &req) {
		return
	}

	vehicle, err := h.vehicleService.UpdateMileage(c.Request.Context(), id, *req.Mileage)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(vehicle))
}

func (h *Handler) updateMileageByPlate(c *gin.Context) {
	var req struct {
		Plate   string   `json:"plate" binding:"required"`
		Mileage *float64 `json:"mileage" binding:"required"`
	}
	if !h.bindJSON(c, &req) {
		return
	}

	vehicle, err := h.vehicleService.UpdateMileageByPlate(c.Request.Context(), req.Plate, *req.Mileage)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(vehicle))
}

func (h *Handler) updateMileageBatch(c *gin.Context) {
	var req struct {
		Updates []service.MileageUpdate `json:"updates" binding:"required"`
	}
	if !h.bindJSON(c, &req) {
		return
	}

	results := h.vehicleService.UpdateMileageBatch(c.Request.Context(), req.Updates)
	c.JSON(http.StatusOK, successResponse(results))
}
