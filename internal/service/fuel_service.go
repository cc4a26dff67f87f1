package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"fleet-service/internal/model"
	"fleet-service/internal/utils"
)

type FuelService struct {
	fuelRepo FuelStore
	cache    ObjectCache
	log      zerolog.Logger
}

func NewFuelService(fuelRepo FuelStore, cache ObjectCache, log zerolog.Logger) *FuelService {
	return &FuelService{
		fuelRepo: fuelRepo,
		cache:    cache,
		log:      log,
	}
}

type FuelInput struct {
	InvoiceID   string          `json:"invoiceId"`
	Issuer      string          `json:"issuer"`
	InvoiceDate time.Time       `json:"invoiceDate"`
	Date        time.Time       `json:"date"`
	Plate       string          `json:"plate"`
	Kilometers  float64         `json:"kilometers"`
	FuelType    string          `json:"fuelType"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unitCost"`
	TotalCost   decimal.Decimal `json:"totalCost"`
}

func (in FuelInput) apply(f *model.Fuel) error {
	invoiceID := strings.TrimSpace(in.InvoiceID)
	issuer := strings.TrimSpace(in.Issuer)
	plate := utils.NormalizePlate(in.Plate)

	switch {
	case invoiceID == "":
		return invalidf("invoiceId is required")
	case issuer == "":
		return invalidf("issuer is required")
	case plate == "":
		return invalidf("plate is required")
	case in.InvoiceDate.IsZero():
		return invalidf("invoiceDate is required")
	case in.Date.IsZero():
		return invalidf("date is required")
	case !validMileage(in.Kilometers):
		return invalidf("kilometers must be a non-negative number")
	case in.Quantity.IsNegative(), in.UnitCost.IsNegative(), in.TotalCost.IsNegative():
		return invalidf("quantity, unitCost and totalCost must not be negative")
	}

	f.InvoiceID = invoiceID
	f.Issuer = issuer
	f.InvoiceDate = in.InvoiceDate
	f.Date = in.Date
	f.Plate = plate
	f.Kilometers = in.Kilometers
	f.FuelType = in.FuelType
	f.Quantity = in.Quantity
	f.UnitCost = in.UnitCost
	f.TotalCost = in.TotalCost
	return nil
}

// UpdateFuelInput carries the fields of a partial fuel update. Omitted
// fields keep their stored value.
type UpdateFuelInput struct {
	InvoiceID   *string          `json:"invoiceId"`
	Issuer      *string          `json:"issuer"`
	InvoiceDate *time.Time       `json:"invoiceDate"`
	Date        *time.Time       `json:"date"`
	Plate       *string          `json:"plate"`
	Kilometers  *float64         `json:"kilometers"`
	FuelType    *string          `json:"fuelType"`
	Quantity    *decimal.Decimal `json:"quantity"`
	UnitCost    *decimal.Decimal `json:"unitCost"`
	TotalCost   *decimal.Decimal `json:"totalCost"`
}

func (in UpdateFuelInput) merge(f *model.Fuel) FuelInput {
	merged := FuelInput{
		InvoiceID:   f.InvoiceID,
		Issuer:      f.Issuer,
		InvoiceDate: f.InvoiceDate,
		Date:        f.Date,
		Plate:       f.Plate,
		Kilometers:  f.Kilometers,
		FuelType:    f.FuelType,
		Quantity:    f.Quantity,
		UnitCost:    f.UnitCost,
		TotalCost:   f.TotalCost,
	}
	if in.InvoiceID != nil {
		merged.InvoiceID = *in.InvoiceID
	}
	if in.Issuer != nil {
		merged.Issuer = *in.Issuer
	}
	if in.InvoiceDate != nil {
		merged.InvoiceDate = *in.InvoiceDate
	}
	if in.Date != nil {
		merged.Date = *in.Date
	}
	if in.Plate != nil {
		merged.Plate = *in.Plate
	}
	if in.Kilometers != nil {
		merged.Kilometers = *in.Kilometers
	}
	if in.FuelType != nil {
		merged.FuelType = *in.FuelType
	}
	if in.Quantity != nil {
		merged.Quantity = *in.Quantity
	}
	if in.UnitCost != nil {
		merged.UnitCost = *in.UnitCost
	}
	if in.TotalCost != nil {
		merged.TotalCost = *in.TotalCost
	}
	return merged
}

func (s *FuelService) Create(ctx context.Context, input FuelInput) (*model.Fuel, error) {
	fuel := &model.Fuel{}
	if err := input.apply(fuel); err != nil {
		return nil, err
	}
	if err := s.fuelRepo.Create(ctx, fuel); err != nil {
		return nil, storeError(err, "fuel")
	}

	invalidateTotals(ctx, s.cache, s.log, TotalsKindFuel)
	return fuel, nil
}

func (s *FuelService) List(ctx context.Context) ([]model.Fuel, error) {
	return s.fuelRepo.List(ctx, nil)
}

func (s *FuelService) ListByPlate(ctx context.Context, plate string) ([]model.Fuel, error) {
	plate = utils.NormalizePlate(plate)
	if plate == "" {
		return nil, invalidf("plate is required")
	}
	return s.fuelRepo.List(ctx, &plate)
}

func (s *FuelService) ListOrphaned(ctx context.Context) ([]model.Fuel, error) {
	return s.fuelRepo.ListOrphaned(ctx)
}

func (s *FuelService) Get(ctx context.Context, id uuid.UUID) (*model.Fuel, error) {
	fuel, err := s.fuelRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "fuel")
	}
	return fuel, nil
}

func (s *FuelService) Update(ctx context.Context, id uuid.UUID, input UpdateFuelInput) (*model.Fuel, error) {
	fuel, err := s.fuelRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "fuel")
	}
	if err := input.merge(fuel).apply(fuel); err != nil {
		return nil, err
	}
	if err := s.fuelRepo.Update(ctx, fuel); err != nil {
		return nil, storeError(err, "fuel")
	}

	invalidateTotals(ctx, s.cache, s.log, TotalsKindFuel)
	return fuel, nil
}

func (s *FuelService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.fuelRepo.Delete(ctx, id); err != nil {
		return storeError(err, "fuel")
	}
	invalidateTotals(ctx, s.cache, s.log, TotalsKindFuel)
	return nil
}
