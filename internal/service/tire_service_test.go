package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleet-service/internal/repository"
)

func TestVehicleTireService_RequiresExistingVehicleAndTire(t *testing.T) {
	ctx := context.Background()
	database := newTestDB(t)
	vehicleRepo := repository.NewVehicleRepository(database)
	tireRepo := repository.NewTireRepository(database)

	vehicles := NewVehicleService(vehicleRepo, zerolog.Nop())
	tires := NewTireService(tireRepo)
	allocations := NewVehicleTireService(repository.NewVehicleTireRepository(database), vehicleRepo, tireRepo)

	vehicle, err := vehicles.Create(ctx, VehicleInput{Plate: "TRK1", Mileage: 50000})
	require.NoError(t, err)
	tire, err := tires.Create(ctx, TireInput{FireID: 42, Brand: "Pirelli", Value: decimal.NewFromInt(1800)})
	require.NoError(t, err)

	_, err = allocations.Create(ctx, VehicleTireInput{VehicleID: uuid.New(), TireID: tire.ID, AxlePosition: "1E"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = allocations.Create(ctx, VehicleTireInput{VehicleID: vehicle.ID, TireID: uuid.New(), AxlePosition: "1E"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	mountKm := float64(50000)
	created, err := allocations.Create(ctx, VehicleTireInput{VehicleID: vehicle.ID, TireID: tire.ID, AxlePosition: "1e", MountKm: &mountKm})
	require.NoError(t, err)
	assert.Equal(t, "1E", created.AxlePosition)

	got, err := allocations.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Vehicle)
	require.NotNil(t, got.Tire)
	assert.Equal(t, "TRK1", got.Vehicle.Plate)
	assert.Equal(t, 42, got.Tire.FireID)

	unmountKm := float64(40000)
	_, err = allocations.Update(ctx, created.ID, VehicleTireInput{
		VehicleID: vehicle.ID, TireID: tire.ID, AxlePosition: "1E", MountKm: &mountKm, UnmountKm: &unmountKm,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	list, err := allocations.List(ctx, &vehicle.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, allocations.Delete(ctx, created.ID))
	_, err = allocations.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTireAndDriverValidation(t *testing.T) {
	ctx := context.Background()
	database := newTestDB(t)
	tires := NewTireService(repository.NewTireRepository(database))
	drivers := NewDriverService(repository.NewDriverRepository(database))

	_, err := tires.Create(ctx, TireInput{FireID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = drivers.Create(ctx, DriverInput{Name: "João"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	driver, err := drivers.Create(ctx, DriverInput{Name: "João", CPF: "123.456.789-00"})
	require.NoError(t, err)

	updated, err := drivers.Update(ctx, driver.ID, DriverInput{Name: "João Silva", CPF: "123.456.789-00"})
	require.NoError(t, err)
	assert.Equal(t, "João Silva", updated.Name)
}
