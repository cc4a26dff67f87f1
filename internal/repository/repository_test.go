package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fleet-service/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(model.All()...))
	return database
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 12, 0, 0, 0, time.UTC)
}

func TestVehicleRepositoryMileage(t *testing.T) {
	ctx := context.Background()
	repo := NewVehicleRepository(newTestDB(t))

	vehicle := &model.Vehicle{Plate: "ABC1", Mileage: 10}
	require.NoError(t, repo.Create(ctx, vehicle))
	require.NotEqual(t, uuid.Nil, vehicle.ID)

	updated, err := repo.UpdateMileage(ctx, vehicle.ID, 250)
	require.NoError(t, err)
	assert.Equal(t, float64(250), updated.Mileage)

	updated, err = repo.UpdateMileageByPlate(ctx, "ABC1", 300)
	require.NoError(t, err)
	assert.Equal(t, float64(300), updated.Mileage)

	_, err = repo.UpdateMileageByPlate(ctx, "NOPE", 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repo.UpdateMileage(ctx, uuid.New(), 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	plates, err := repo.ListPlates(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"ABC1"}, plates)
}

func TestMaintenanceDeleteRemovesReviewsFirst(t *testing.T) {
	ctx := context.Background()
	database := newTestDB(t)
	maintenances := NewMaintenanceRepository(database)
	reviews := NewReviewRepository(database)

	m := &model.Maintenance{
		InvoiceID:   "NF-1",
		InvoiceDate: day(2024, 3, 5),
		Issuer:      "Oficina",
		Date:        day(2024, 3, 5),
		Plate:       "ABC1",
		TotalCost:   decimal.NewFromInt(100),
	}
	review := &model.Review{Type: "revisão", CurrentKm: 1000, NextReviewKm: 11000}
	require.NoError(t, maintenances.CreateWithReview(ctx, m, review))
	assert.Equal(t, m.ID, review.MaintenanceID)

	withReviews, err := maintenances.GetWithReviews(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, withReviews.Reviews, 1)

	require.NoError(t, maintenances.DeleteWithReviews(ctx, m.ID))

	left, err := reviews.ListByMaintenanceID(ctx, m.ID)
	require.NoError(t, err)
	assert.Empty(t, left)

	_, err = maintenances.GetByID(ctx, m.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, maintenances.DeleteWithReviews(ctx, m.ID), gorm.ErrRecordNotFound)
}

func TestMaintenanceOrphansAndIssuers(t *testing.T) {
	ctx := context.Background()
	database := newTestDB(t)
	vehicles := NewVehicleRepository(database)
	maintenances := NewMaintenanceRepository(database)

	require.NoError(t, vehicles.Create(ctx, &model.Vehicle{Plate: "KNOWN1"}))
	for _, row := range []struct{ plate, issuer string }{
		{"KNOWN1", "Zeta Peças"},
		{"GHOST1", "Auto Center"},
		{"GHOST1", "Zeta Peças"},
	} {
		require.NoError(t, maintenances.Create(ctx, &model.Maintenance{
			InvoiceID:   "NF-9",
			InvoiceDate: day(2024, 1, 1),
			Issuer:      row.issuer,
			Date:        day(2024, 1, 1),
			Plate:       row.plate,
		}))
	}

	orphans, err := maintenances.ListOrphaned(ctx)
	require.NoError(t, err)
	require.Len(t, orphans, 2)
	for _, o := range orphans {
		assert.Equal(t, "GHOST1", o.Plate)
	}

	require.NoError(t, vehicles.Create(ctx, &model.Vehicle{Plate: "GHOST1"}))
	orphans, err = maintenances.ListOrphaned(ctx)
	require.NoError(t, err)
	assert.Empty(t, orphans)

	issuers, err := maintenances.ListIssuers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Auto Center", "Zeta Peças"}, issuers)

	invoice := "NF-9"
	lines, err := maintenances.List(ctx, MaintenanceListFilter{InvoiceID: &invoice})
	require.NoError(t, err)
	assert.Len(t, lines, 3)
}

func TestMaintenanceListOrderedByDateDesc(t *testing.T) {
	ctx := context.Background()
	repo := NewMaintenanceRepository(newTestDB(t))

	for _, d := range []time.Time{day(2024, 1, 10), day(2024, 3, 1), day(2023, 12, 31)} {
		require.NoError(t, repo.Create(ctx, &model.Maintenance{
			InvoiceID: "NF", InvoiceDate: d, Issuer: "X", Date: d, Plate: "P1",
		}))
	}

	rows, err := repo.List(ctx, MaintenanceListFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.True(t, rows[0].Date.Equal(day(2024, 3, 1)))
	assert.True(t, rows[2].Date.Equal(day(2023, 12, 31)))
}

func TestCostPoints(t *testing.T) {
	ctx := context.Background()
	database := newTestDB(t)
	fuels := NewFuelRepository(database)

	require.NoError(t, fuels.Create(ctx, &model.Fuel{
		InvoiceID: "1", Issuer: "Posto", InvoiceDate: day(2024, 3, 5), Date: day(2024, 3, 5),
		Plate: "ABC1", TotalCost: decimal.RequireFromString("120.50"),
	}))
	require.NoError(t, fuels.Create(ctx, &model.Fuel{
		InvoiceID: "2", Issuer: "Posto", InvoiceDate: day(2024, 4, 5), Date: day(2024, 4, 5),
		Plate: "OTHER", TotalCost: decimal.NewFromInt(80),
	}))

	all, err := fuels.ListCostPoints(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	plate := "ABC1"
	filtered, err := fuels.ListCostPoints(ctx, &plate)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.True(t, filtered[0].TotalCost.Equal(decimal.RequireFromString("120.5")))
	assert.Equal(t, time.March, filtered[0].Date.Month())
}

func TestAlertCompleteWithSuccessor(t *testing.T) {
	ctx := context.Background()
	database := newTestDB(t)
	vehicles := NewVehicleRepository(database)
	alerts := NewAlertRepository(database)

	vehicle := &model.Vehicle{Plate: "XYZ9", Mileage: 9000}
	require.NoError(t, vehicles.Create(ctx, vehicle))

	description := "troca de óleo"
	alert := &model.Alert{VehicleID: vehicle.ID, Type: "revisão", Description: &description, KmAlert: 10000}
	require.NoError(t, alerts.Create(ctx, alert))

	next := float64(20000)
	doneDate := day(2024, 5, 1)
	value := decimal.NewFromInt(350)
	completed, successor, err := alerts.Complete(ctx, alert.ID, CompleteAlertParams{
		DoneDate:    doneDate,
		Value:       &value,
		NextKmAlert: &next,
	})
	require.NoError(t, err)

	assert.True(t, completed.IsCompleted)
	require.NotNil(t, completed.DoneDate)
	assert.True(t, completed.DoneDate.Equal(doneDate))
	require.NotNil(t, completed.Value)
	assert.True(t, completed.Value.Equal(value))

	require.NotNil(t, successor)
	assert.NotEqual(t, alert.ID, successor.ID)
	assert.Equal(t, vehicle.ID, successor.VehicleID)
	assert.Equal(t, "revisão", successor.Type)
	assert.Equal(t, &description, successor.Description)
	assert.Equal(t, next, successor.KmAlert)
	assert.False(t, successor.IsCompleted)

	_, _, err = alerts.Complete(ctx, alert.ID, CompleteAlertParams{DoneDate: doneDate})
	assert.ErrorIs(t, err, ErrAlertAlreadyCompleted)

	_, _, err = alerts.Complete(ctx, uuid.New(), CompleteAlertParams{DoneDate: doneDate})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	pending, err := alerts.ListPendingWithVehicle(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, successor.ID, pending[0].ID)
	require.NotNil(t, pending[0].Vehicle)
	assert.Equal(t, "XYZ9", pending[0].Vehicle.Plate)
}

func TestAlertCompleteWithoutRepeat(t *testing.T) {
	ctx := context.Background()
	database := newTestDB(t)
	vehicles := NewVehicleRepository(database)
	alerts := NewAlertRepository(database)

	vehicle := &model.Vehicle{Plate: "AAA1"}
	require.NoError(t, vehicles.Create(ctx, vehicle))
	alert := &model.Alert{VehicleID: vehicle.ID, Type: "pneu", KmAlert: 500}
	require.NoError(t, alerts.Create(ctx, alert))

	_, successor, err := alerts.Complete(ctx, alert.ID, CompleteAlertParams{DoneDate: time.Now()})
	require.NoError(t, err)
	assert.Nil(t, successor)

	all, err := alerts.List(ctx, AlertListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestVehicleDeleteWithAlertsIsRefused(t *testing.T) {
	ctx := context.Background()
	database := newTestDB(t)
	vehicles := NewVehicleRepository(database)
	alerts := NewAlertRepository(database)

	vehicle := &model.Vehicle{Plate: "ABC1"}
	require.NoError(t, vehicles.Create(ctx, vehicle))
	alert := &model.Alert{VehicleID: vehicle.ID, Type: "revisão", KmAlert: 1000}
	require.NoError(t, alerts.Create(ctx, alert))

	assert.ErrorIs(t, vehicles.Delete(ctx, vehicle.ID), ErrVehicleHasAlerts)

	_, err := vehicles.GetByID(ctx, vehicle.ID)
	require.NoError(t, err)
	stored, err := alerts.GetByID(ctx, alert.ID)
	require.NoError(t, err)
	assert.Equal(t, vehicle.ID, stored.VehicleID)

	// the schema refuses the delete on its own as well
	err = database.Where("id = ?", vehicle.ID).Delete(&model.Vehicle{}).Error
	assert.Error(t, err)

	require.NoError(t, alerts.Delete(ctx, alert.ID))
	require.NoError(t, vehicles.Delete(ctx, vehicle.ID))
}

func TestVehicleDeleteCascadesTireAllocations(t *testing.T) {
	ctx := context.Background()
	database := newTestDB(t)
	vehicles := NewVehicleRepository(database)
	tires := NewTireRepository(database)
	allocations := NewVehicleTireRepository(database)

	vehicle := &model.Vehicle{Plate: "ABC1"}
	require.NoError(t, vehicles.Create(ctx, vehicle))
	tire := &model.Tire{FireID: 42}
	require.NoError(t, tires.Create(ctx, tire))
	allocation := &model.VehicleTire{VehicleID: vehicle.ID, TireID: tire.ID, AxlePosition: "1E"}
	require.NoError(t, allocations.Create(ctx, allocation))

	require.NoError(t, vehicles.Delete(ctx, vehicle.ID))

	_, err := allocations.GetByID(ctx, allocation.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = tires.GetByID(ctx, tire.ID)
	require.NoError(t, err)
}

func TestMaintenanceWithReviewsCannotBeDeletedDirectly(t *testing.T) {
	ctx := context.Background()
	database := newTestDB(t)
	maintenances := NewMaintenanceRepository(database)

	m := &model.Maintenance{
		InvoiceID:   "NF-1",
		InvoiceDate: day(2024, 3, 5),
		Issuer:      "Oficina",
		Date:        day(2024, 3, 5),
		Plate:       "ABC1",
	}
	review := &model.Review{Type: "revisão", CurrentKm: 1000, NextReviewKm: 11000}
	require.NoError(t, maintenances.CreateWithReview(ctx, m, review))

	err := database.Where("id = ?", m.ID).Delete(&model.Maintenance{}).Error
	assert.Error(t, err)
	_, err = maintenances.GetByID(ctx, m.ID)
	require.NoError(t, err)

	orphan := &model.Review{MaintenanceID: uuid.New(), Type: "pneus", CurrentKm: 1, NextReviewKm: 2}
	assert.Error(t, database.Create(orphan).Error)

	require.NoError(t, maintenances.DeleteWithReviews(ctx, m.ID))
}
