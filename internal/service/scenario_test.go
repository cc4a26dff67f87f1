package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleet-service/internal/model"
	"fleet-service/internal/repository"
)

func TestAlertLifecycleAgainstStore(t *testing.T) {
	ctx := context.Background()
	database := newTestDB(t)
	vehicleRepo := repository.NewVehicleRepository(database)
	alertRepo := repository.NewAlertRepository(database)

	vehicles := NewVehicleService(vehicleRepo, zerolog.Nop())
	alerts := NewAlertService(alertRepo, vehicleRepo, 1000, zerolog.Nop())

	vehicle, err := vehicles.Create(ctx, VehicleInput{Plate: "XYZ9", Mileage: 9000})
	require.NoError(t, err)

	alert, err := alerts.Create(ctx, AlertInput{VehicleID: vehicle.ID, KmAlert: 10000, Type: "revisão"})
	require.NoError(t, err)
	assert.False(t, alert.IsCompleted)

	due, err := alerts.DueCheck(ctx, nil)
	require.NoError(t, err)
	require.Len(t, due, 1)

	_, err = vehicles.UpdateMileage(ctx, vehicle.ID, 9600)
	require.NoError(t, err)

	due, err = alerts.DueCheck(ctx, floatPtr(1000))
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, alert.ID, due[0].Alert.ID)
	assert.Equal(t, model.AlertDueStatusDueSoon, due[0].Status)
	assert.Equal(t, float64(400), due[0].RemainingKm)

	completed, err := alerts.Complete(ctx, alert.ID, CompleteAlertInput{Repeat: true, NextKmAlert: floatPtr(20000)})
	require.NoError(t, err)
	assert.Equal(t, alert.ID, completed.ID)
	assert.True(t, completed.IsCompleted)
	assert.NotNil(t, completed.DoneDate)

	all, err := alerts.List(ctx, repository.AlertListFilter{VehicleID: &vehicle.ID})
	require.NoError(t, err)
	require.Len(t, all, 2)

	var successor *model.Alert
	for i := range all {
		if all[i].ID != alert.ID {
			successor = &all[i]
		}
	}
	require.NotNil(t, successor)
	assert.Equal(t, float64(20000), successor.KmAlert)
	assert.False(t, successor.IsCompleted)
	assert.Nil(t, successor.DoneDate)
	assert.Equal(t, "revisão", successor.Type)
	assert.Equal(t, vehicle.ID, successor.VehicleID)

	_, err = alerts.Complete(ctx, alert.ID, CompleteAlertInput{Repeat: true, NextKmAlert: floatPtr(30000)})
	assert.ErrorIs(t, err, ErrConflict)

	all, err = alerts.List(ctx, repository.AlertListFilter{VehicleID: &vehicle.ID})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	due, err = alerts.DueCheck(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, due)
}

func TestOrphanedFuelDisappearsWhenVehicleRegistered(t *testing.T) {
	ctx := context.Background()
	database := newTestDB(t)
	fuels := NewFuelService(repository.NewFuelRepository(database), nil, zerolog.Nop())
	vehicles := NewVehicleService(repository.NewVehicleRepository(database), zerolog.Nop())

	_, err := fuels.Create(ctx, FuelInput{
		InvoiceID:   "C-9",
		Issuer:      "Posto",
		InvoiceDate: date(2024, 1, 2),
		Date:        date(2024, 1, 2),
		Plate:       "new-0001",
	})
	require.NoError(t, err)

	orphans, err := fuels.ListOrphaned(ctx)
	require.NoError(t, err)
	require.Len(t, orphans, 1)
	assert.Equal(t, "NEW0001", orphans[0].Plate)

	_, err = vehicles.Create(ctx, VehicleInput{Plate: "NEW-0001"})
	require.NoError(t, err)

	orphans, err = fuels.ListOrphaned(ctx)
	require.NoError(t, err)
	assert.Empty(t, orphans)
}
