package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleet-service/internal/repository"
)

func maintenanceLine(plate, invoice string, total int64) MaintenanceInput {
	return MaintenanceInput{
		InvoiceID:   invoice,
		InvoiceDate: date(2024, 3, 5),
		Issuer:      "Oficina Central",
		Date:        date(2024, 3, 5),
		Plate:       plate,
		Description: "troca de óleo",
		Quantity:    decimal.NewFromInt(1),
		Value:       decimal.NewFromInt(total),
		TotalCost:   decimal.NewFromInt(total),
	}
}

func TestMaintenanceService_CreateWithReviewAndDelete(t *testing.T) {
	ctx := context.Background()
	database := newTestDB(t)
	maintenanceRepo := repository.NewMaintenanceRepository(database)
	reviewRepo := repository.NewReviewRepository(database)
	cache := newMemoryCache()
	svc := NewMaintenanceService(maintenanceRepo, cache, zerolog.Nop())
	reviews := NewReviewService(reviewRepo, maintenanceRepo)

	input := maintenanceLine("abc-1234", "NF-100", 300)
	input.Review = &ReviewFields{Type: "revisão", CurrentKm: 10000, NextReviewKm: 20000}

	created, err := svc.Create(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "ABC1234", created.Plate)
	require.Len(t, created.Reviews, 1)
	assert.Equal(t, created.ID, created.Reviews[0].MaintenanceID)
	assert.Contains(t, cache.deletes, totalsCacheKey(TotalsKindMaintenance))

	withReviews, err := svc.GetWithReviews(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, withReviews.Reviews, 1)
	assert.Equal(t, 20000, withReviews.Reviews[0].NextReviewKm)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	left, err := reviews.ListByMaintenance(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestMaintenanceService_InvalidReviewStoresNothing(t *testing.T) {
	ctx := context.Background()
	svc := NewMaintenanceService(repository.NewMaintenanceRepository(newTestDB(t)), nil, zerolog.Nop())

	input := maintenanceLine("ABC1234", "NF-1", 10)
	input.Review = &ReviewFields{Type: ""}

	_, err := svc.Create(ctx, input)
	assert.ErrorIs(t, err, ErrInvalidInput)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestMaintenanceService_Validation(t *testing.T) {
	ctx := context.Background()
	svc := NewMaintenanceService(repository.NewMaintenanceRepository(newTestDB(t)), nil, zerolog.Nop())

	missingInvoice := maintenanceLine("ABC1", "", 10)
	_, err := svc.Create(ctx, missingInvoice)
	assert.ErrorIs(t, err, ErrInvalidInput)

	negative := maintenanceLine("ABC1", "NF", 10)
	negative.TotalCost = decimal.NewFromInt(-1)
	_, err = svc.Create(ctx, negative)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMaintenanceService_PartialUpdate(t *testing.T) {
	ctx := context.Background()
	svc := NewMaintenanceService(repository.NewMaintenanceRepository(newTestDB(t)), nil, zerolog.Nop())

	created, err := svc.Create(ctx, maintenanceLine("ABC1", "NF-3", 100))
	require.NoError(t, err)

	total := decimal.NewFromInt(250)
	updated, err := svc.Update(ctx, created.ID, UpdateMaintenanceInput{TotalCost: &total})
	require.NoError(t, err)
	assert.True(t, updated.TotalCost.Equal(total))
	assert.Equal(t, "NF-3", updated.InvoiceID)
	assert.Equal(t, "Oficina Central", updated.Issuer)
	assert.Equal(t, "ABC1", updated.Plate)
	assert.Equal(t, "troca de óleo", updated.Description)

	blank := " "
	_, err = svc.Update(ctx, created.ID, UpdateMaintenanceInput{Issuer: &blank})
	assert.ErrorIs(t, err, ErrInvalidInput)

	stored, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Oficina Central", stored.Issuer)
}

func TestMaintenanceService_ListByInvoice(t *testing.T) {
	ctx := context.Background()
	svc := NewMaintenanceService(repository.NewMaintenanceRepository(newTestDB(t)), nil, zerolog.Nop())

	for _, total := range []int64{10, 20} {
		_, err := svc.Create(ctx, maintenanceLine("ABC1", "NF-7", total))
		require.NoError(t, err)
	}

	lines, err := svc.ListByInvoice(ctx, "NF-7")
	require.NoError(t, err)
	assert.Len(t, lines, 2)

	_, err = svc.ListByInvoice(ctx, "NF-404")
	assert.ErrorIs(t, err, ErrNotFound)

	byPlate, err := svc.ListByPlate(ctx, "abc1")
	require.NoError(t, err)
	assert.Len(t, byPlate, 2)
}

func TestReviewService_RequiresMaintenance(t *testing.T) {
	ctx := context.Background()
	database := newTestDB(t)
	maintenanceRepo := repository.NewMaintenanceRepository(database)
	svc := NewReviewService(repository.NewReviewRepository(database), maintenanceRepo)

	_, err := svc.Create(ctx, ReviewInput{ReviewFields: ReviewFields{Type: "revisão"}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	maintenance, err := NewMaintenanceService(maintenanceRepo, nil, zerolog.Nop()).Create(ctx, maintenanceLine("ABC1", "NF", 10))
	require.NoError(t, err)

	review, err := svc.Create(ctx, ReviewInput{
		MaintenanceID: maintenance.ID,
		ReviewFields:  ReviewFields{Type: "revisão", CurrentKm: 100, NextReviewKm: 10100},
	})
	require.NoError(t, err)

	reviewType := "pneus"
	updated, err := svc.Update(ctx, review.ID, UpdateReviewInput{Type: &reviewType})
	require.NoError(t, err)
	assert.Equal(t, "pneus", updated.Type)
	assert.Equal(t, 100, updated.CurrentKm)
	assert.Equal(t, 10100, updated.NextReviewKm)
	assert.Equal(t, maintenance.ID, updated.MaintenanceID)

	negative := -1
	_, err = svc.Update(ctx, review.ID, UpdateReviewInput{CurrentKm: &negative})
	assert.ErrorIs(t, err, ErrInvalidInput)

	require.NoError(t, svc.Delete(ctx, review.ID))
	assert.ErrorIs(t, svc.Delete(ctx, review.ID), ErrNotFound)
}
