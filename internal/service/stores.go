package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fleet-service/internal/model"
	"fleet-service/internal/repository"
)

type VehicleStore interface {
	Create(ctx context.Context, vehicle *model.Vehicle) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Vehicle, error)
	GetByPlate(ctx context.Context, plate string) (*model.Vehicle, error)
	List(ctx context.Context) ([]model.Vehicle, error)
	ListPlates(ctx context.Context) ([]string, error)
	Update(ctx context.Context, vehicle *model.Vehicle) error
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateMileage(ctx context.Context, id uuid.UUID, mileage float64) (*model.Vehicle, error)
	UpdateMileageByPlate(ctx context.Context, plate string, mileage float64) (*model.Vehicle, error)
}

type MaintenanceStore interface {
	Create(ctx context.Context, maintenance *model.Maintenance) error
	CreateWithReview(ctx context.Context, maintenance *model.Maintenance, review *model.Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Maintenance, error)
	GetWithReviews(ctx context.Context, id uuid.UUID) (*model.Maintenance, error)
	List(ctx context.Context, filter repository.MaintenanceListFilter) ([]model.Maintenance, error)
	ListOrphaned(ctx context.Context) ([]model.Maintenance, error)
	ListIssuers(ctx context.Context) ([]string, error)
	ListCostPoints(ctx context.Context, plate *string) ([]repository.CostPoint, error)
	Update(ctx context.Context, maintenance *model.Maintenance) error
	DeleteWithReviews(ctx context.Context, id uuid.UUID) error
}

type ReviewStore interface {
	Create(ctx context.Context, review *model.Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Review, error)
	List(ctx context.Context) ([]model.Review, error)
	ListByMaintenanceID(ctx context.Context, maintenanceID uuid.UUID) ([]model.Review, error)
	Update(ctx context.Context, review *model.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type FuelStore interface {
	Create(ctx context.Context, fuel *model.Fuel) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Fuel, error)
	List(ctx context.Context, plate *string) ([]model.Fuel, error)
	ListOrphaned(ctx context.Context) ([]model.Fuel, error)
	ListCostPoints(ctx context.Context, plate *string) ([]repository.CostPoint, error)
	Update(ctx context.Context, fuel *model.Fuel) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type AlertStore interface {
	Create(ctx context.Context, alert *model.Alert) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Alert, error)
	List(ctx context.Context, filter repository.AlertListFilter) ([]model.Alert, error)
	Update(ctx context.Context, alert *model.Alert) error
	Delete(ctx context.Context, id uuid.UUID) error
	Complete(ctx context.Context, id uuid.UUID, params repository.CompleteAlertParams) (*model.Alert, *model.Alert, error)
	ListPendingWithVehicle(ctx context.Context) ([]model.Alert, error)
}

type DriverStore interface {
	Create(ctx context.Context, driver *model.Driver) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Driver, error)
	List(ctx context.Context) ([]model.Driver, error)
	Update(ctx context.Context, driver *model.Driver) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TireStore interface {
	Create(ctx context.Context, tire *model.Tire) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Tire, error)
	List(ctx context.Context) ([]model.Tire, error)
	Update(ctx context.Context, tire *model.Tire) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type VehicleTireStore interface {
	Create(ctx context.Context, vt *model.VehicleTire) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.VehicleTire, error)
	List(ctx context.Context, vehicleID *uuid.UUID) ([]model.VehicleTire, error)
	Update(ctx context.Context, vt *model.VehicleTire) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ObjectCache is the subset of the redis cache used for dashboard totals.
type ObjectCache interface {
	GetObject(ctx context.Context, key string, dest interface{}) (bool, error)
	SetObject(ctx context.Context, key string, obj interface{}, exp time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

var (
	_ VehicleStore     = (*repository.VehicleRepository)(nil)
	_ MaintenanceStore = (*repository.MaintenanceRepository)(nil)
	_ ReviewStore      = (*repository.ReviewRepository)(nil)
	_ FuelStore        = (*repository.FuelRepository)(nil)
	_ AlertStore       = (*repository.AlertRepository)(nil)
	_ DriverStore      = (*repository.DriverRepository)(nil)
	_ TireStore        = (*repository.TireRepository)(nil)
	_ VehicleTireStore = (*repository.VehicleTireRepository)(nil)
)
