package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fleet-service/internal/service"
)

func (h *Handler) listDrivers(c *gin.Context) {
	drivers, err := h.driverService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(drivers))
}

func (h *Handler) createDriver(c *gin.Context) {
	var req service.DriverInput
	if !h.bindJSON(c, &req) {
		return
	}

	driver, err := h.driverService.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, successResponse(driver))
}

func (h *Handler) getDriver(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	driver, err := h.driverService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(driver))
}

func (h *Handler) updateDriver(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req service.DriverInput
	if !h.bindJSON(c, &req) {
		return
	}

	driver, err := h.driverService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(driver))
}

func (h *Handler) deleteDriver(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.driverService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"message": "driver deleted"}))
}

func (h *Handler) listTires(c *gin.Context) {
	tires, err := h.tireService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(tires))
}

func (h *Handler) createTire(c *gin.Context) {
	var req service.TireInput
	if !h.bindJSON(c, &req) {
		return
	}

	tire, err := h.tireService.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, successResponse(tire))
}

func (h *Handler) getTire(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	tire, err := h.tireService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(tire))
}

func (h *Handler) updateTire(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req service.TireInput
	if !h.bindJSON(c, &req) {
		return
	}

	tire, err := h.tireService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(tire))
}

func (h *Handler) deleteTire(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.tireService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"message": "tire deleted"}))
}

func (h *Handler) listVehicleTires(c *gin.Context) {
	var vehicleID *uuid.UUID
	if raw := strings.TrimSpace(c.Query("vehicleId")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("invalid vehicleId"))
			return
		}
		vehicleID = &id
	}

	vts, err := h.vehicleTireService.List(c.Request.Context(), vehicleID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(vts))
}

func (h *Handler) createVehicleTire(c *gin.Context) {
	var req service.VehicleTireInput
	if !h.bindJSON(c, &req) {
		return
	}

	vt, err := h.vehicleTireService.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, successResponse(vt))
}

func (h *Handler) getVehicleTire(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	vt, err := h.vehicleTireService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(vt))
}

func (h *Handler) updateVehicleTire(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req service.VehicleTireInput
	if !h.bindJSON(c, &req) {
		return
	}

	vt, err := h.vehicleTireService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(vt))
}

func (h *Handler) deleteVehicleTire(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.vehicleTireService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"message": "vehicle tire deleted"}))
}
