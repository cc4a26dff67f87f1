package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"fleet-service/internal/http/middleware"
	"fleet-service/internal/service"
)

type Services struct {
	Vehicles     *service.VehicleService
	Maintenances *service.MaintenanceService
	Reviews      *service.ReviewService
	Fuels        *service.FuelService
	Alerts       *service.AlertService
	Dashboard    *service.DashboardService
	Drivers      *service.DriverService
	Tires        *service.TireService
	VehicleTires *service.VehicleTireService
}

type Handler struct {
	vehicleService     *service.VehicleService
	maintenanceService *service.MaintenanceService
	reviewService      *service.ReviewService
	fuelService        *service.FuelService
	alertService       *service.AlertService
	dashboardService   *service.DashboardService
	driverService      *service.DriverService
	tireService        *service.TireService
	vehicleTireService *service.VehicleTireService
	log                zerolog.Logger
}

func NewHandler(services Services, log zerolog.Logger) *Handler {
	return &Handler{
		vehicleService:     services.Vehicles,
		maintenanceService: services.Maintenances,
		reviewService:      services.Reviews,
		fuelService:        services.Fuels,
		alertService:       services.Alerts,
		dashboardService:   services.Dashboard,
		driverService:      services.Drivers,
		tireService:        services.Tires,
		vehicleTireService: services.VehicleTires,
		log:                log,
	}
}

func (h *Handler) Register(r *gin.Engine) {
	r.GET("/vehicle", h.listVehicles)
	r.POST("/vehicle", h.createVehicle)
	r.GET("/vehicle/:id", h.getVehicle)
	r.PUT("/vehicle/:id", h.updateVehicle)
	r.DELETE("/vehicle/:id", h.deleteVehicle)
	r.GET("/plates", h.listPlates)

	// Mileage
	r.PUT("/mileage/:id", h.updateMileage)
	r.PUT("/mileage-by-plate", h.updateMileageByPlate)
	r.PUT("/mileage-batch", h.updateMileageBatch)

	r.GET("/maintenance", h.listMaintenances)
	r.POST("/maintenance", h.createMaintenance)
	r.GET("/maintenance/:id", h.getMaintenance)
	r.PUT("/maintenance/:id", h.updateMaintenance)
	r.DELETE("/maintenance/:id", h.deleteMaintenance)
	r.GET("/maintenance/plate/:plate", h.listMaintenancesByPlate)
	r.GET("/maintenance/invoice/:invoiceId", h.listMaintenancesByInvoice)
	r.GET("/maintenancewithreview/:id", h.getMaintenanceWithReviews)
	r.GET("/issuers", h.listIssuers)

	r.GET("/review", h.listReviews)
	r.POST("/review", h.createReview)
	r.GET("/review/:id", h.getReview)
	r.PUT("/review/:id", h.updateReview)
	r.DELETE("/review/:id", h.deleteReview)
	r.GET("/reviewwithmaintenance/:maintenanceId", h.listReviewsByMaintenance)

	r.GET("/fuel", h.listFuels)
	r.POST("/fuel", h.createFuel)
	r.GET("/fuel/:id", h.getFuel)
	r.PUT("/fuel/:id", h.updateFuel)
	r.DELETE("/fuel/:id", h.deleteFuel)
	r.GET("/fuel/plate/:plate", h.listFuelsByPlate)

	orphaned := r.Group("/orphaned")
	{
		orphaned.GET("/maintenance", h.listOrphanedMaintenances)
		orphaned.GET("/fuel", h.listOrphanedFuels)
	}

	alerts := r.Group("/alerts")
	{
		alerts.GET("", h.listAlerts)
		alerts.POST("", h.createAlert)
		alerts.GET("/due", h.dueAlerts)
		alerts.GET("/:id", h.getAlert)
		alerts.PUT("/:id", h.updateAlert)
		alerts.DELETE("/:id", h.deleteAlert)
		alerts.PATCH("/:id/complete", h.completeAlert)
	}

	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("/maintenance", h.monthlyTotals(service.TotalsKindMaintenance))
		dashboard.GET("/fuel", h.monthlyTotals(service.TotalsKindFuel))
		dashboard.GET("/maintenance/series", h.monthlySeries(service.TotalsKindMaintenance))
		dashboard.GET("/fuel/series", h.monthlySeries(service.TotalsKindFuel))
		dashboard.GET("/vehicle/:plate", h.vehicleTotals)
	}

	r.GET("/driver", h.listDrivers)
	r.POST("/driver", h.createDriver)
	r.GET("/driver/:id", h.getDriver)
	r.PUT("/driver/:id", h.updateDriver)
	r.DELETE("/driver/:id", h.deleteDriver)

	r.GET("/tire", h.listTires)
	r.POST("/tire", h.createTire)
	r.GET("/tire/:id", h.getTire)
	r.PUT("/tire/:id", h.updateTire)
	r.DELETE("/tire/:id", h.deleteTire)

	r.GET("/vehicletire", h.listVehicleTires)
	r.POST("/vehicletire", h.createVehicleTire)
	r.GET("/vehicletire/:id", h.getVehicleTire)
	r.PUT("/vehicletire/:id", h.updateVehicleTire)
	r.DELETE("/vehicletire/:id", h.deleteVehicleTire)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse(err.Error()))
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, errorResponse(err.Error()))
	default:
		h.log.Error().Err(err).Str("request_id", middleware.RequestID(c)).Str("path", c.FullPath()).Msg("handler error")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
	}
}

// bindJSON decodes the request body into dst and writes a 400 response
// when that fails. Decoder and validator details are reduced to a short
// message.
func (h *Handler) bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(bindErrorMessage(err)))
		return false
	}
	return true
}

func bindErrorMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, fe := range validationErrors {
			messages = append(messages, fmt.Sprintf("%s is %s", lowerFirst(fe.Field()), fe.Tag()))
		}
		return strings.Join(messages, "; ")
	}
	return "invalid request body"
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param(name)))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(fmt.Sprintf("invalid %s", name)))
		return uuid.Nil, false
	}
	return id, true
}

func successResponse(data interface{}) gin.H {
	return gin.H{
		"data": data,
	}
}

func errorResponse(message string) gin.H {
	return gin.H{
		"error": message,
	}
}
