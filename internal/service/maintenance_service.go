package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"fleet-service/internal/model"
	"fleet-service/internal/repository"
	"fleet-service/internal/utils"
)

type MaintenanceService struct {
	maintenanceRepo MaintenanceStore
	cache           ObjectCache
	log             zerolog.Logger
}

func NewMaintenanceService(maintenanceRepo MaintenanceStore, cache ObjectCache, log zerolog.Logger) *MaintenanceService {
	return &MaintenanceService{
		maintenanceRepo: maintenanceRepo,
		cache:           cache,
		log:             log,
	}
}

type MaintenanceInput struct {
	InvoiceID   string          `json:"invoiceId"`
	InvoiceDate time.Time       `json:"invoiceDate"`
	Issuer      string          `json:"issuer"`
	Date        time.Time       `json:"date"`
	Plate       string          `json:"plate"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Value       decimal.Decimal `json:"value"`
	TotalCost   decimal.Decimal `json:"totalCost"`
	// Review, when present, is stored together with the new line.
	Review *ReviewFields `json:"review,omitempty"`
}

func (in MaintenanceInput) apply(m *model.Maintenance) error {
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
	case in.Quantity.IsNegative(), in.Value.IsNegative(), in.TotalCost.IsNegative():
		return invalidf("quantity, value and totalCost must not be negative")
	}

	m.InvoiceID = invoiceID
	m.InvoiceDate = in.InvoiceDate
	m.Issuer = issuer
	m.Date = in.Date
	m.Plate = plate
	m.Description = in.Description
	m.Quantity = in.Quantity
	m.Value = in.Value
	m.TotalCost = in.TotalCost
	return nil
}

// UpdateMaintenanceInput carries the fields of a partial maintenance
// update. Omitted fields keep their stored value.
type UpdateMaintenanceInput struct {
	InvoiceID   *string          `json:"invoiceId"`
	InvoiceDate *time.Time       `json:"invoiceDate"`
	Issuer      *string          `json:"issuer"`
	Date        *time.Time       `json:"date"`
	Plate       *string          `json:"plate"`
	Description *string          `json:"description"`
	Quantity    *decimal.Decimal `json:"quantity"`
	Value       *decimal.Decimal `json:"value"`
	TotalCost   *decimal.Decimal `json:"totalCost"`
}

func (in UpdateMaintenanceInput) merge(m *model.Maintenance) MaintenanceInput {
	merged := MaintenanceInput{
		InvoiceID:   m.InvoiceID,
		InvoiceDate: m.InvoiceDate,
		Issuer:      m.Issuer,
		Date:        m.Date,
		Plate:       m.Plate,
		Description: m.Description,
		Quantity:    m.Quantity,
		Value:       m.Value,
		TotalCost:   m.TotalCost,
	}
	if in.InvoiceID != nil {
		merged.InvoiceID = *in.InvoiceID
	}
	if in.InvoiceDate != nil {
		merged.InvoiceDate = *in.InvoiceDate
	}
	if in.Issuer != nil {
		merged.Issuer = *in.Issuer
	}
	if in.Date != nil {
		merged.Date = *in.Date
	}
	if in.Plate != nil {
		merged.Plate = *in.Plate
	}
	if in.Description != nil {
		merged.Description = *in.Description
	}
	if in.Quantity != nil {
		merged.Quantity = *in.Quantity
	}
	if in.Value != nil {
		merged.Value = *in.Value
	}
	if in.TotalCost != nil {
		merged.TotalCost = *in.TotalCost
	}
	return merged
}

// Create stores a maintenance line. When the input carries review data the
// line and the review are written in one transaction and the returned
// maintenance includes the review.
func (s *MaintenanceService) Create(ctx context.Context, input MaintenanceInput) (*model.Maintenance, error) {
	maintenance := &model.Maintenance{}
	if err := input.apply(maintenance); err != nil {
		return nil, err
	}

	if input.Review == nil {
		if err := s.maintenanceRepo.Create(ctx, maintenance); err != nil {
			return nil, storeError(err, "maintenance")
		}
	} else {
		review := &model.Review{}
		if err := input.Review.apply(review); err != nil {
			return nil, err
		}
		if err := s.maintenanceRepo.CreateWithReview(ctx, maintenance, review); err != nil {
			return nil, storeError(err, "maintenance")
		}
		maintenance.Reviews = []model.Review{*review}
	}

	invalidateTotals(ctx, s.cache, s.log, TotalsKindMaintenance)
	return maintenance, nil
}

func (s *MaintenanceService) List(ctx context.Context) ([]model.Maintenance, error) {
	return s.maintenanceRepo.List(ctx, repository.MaintenanceListFilter{})
}

func (s *MaintenanceService) ListByPlate(ctx context.Context, plate string) ([]model.Maintenance, error) {
	plate = utils.NormalizePlate(plate)
	if plate == "" {
		return nil, invalidf("plate is required")
	}
	return s.maintenanceRepo.List(ctx, repository.MaintenanceListFilter{Plate: &plate})
}

// ListByInvoice returns every line of one invoice. An invoice without lines
// does not exist.
func (s *MaintenanceService) ListByInvoice(ctx context.Context, invoiceID string) ([]model.Maintenance, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return nil, invalidf("invoiceId is required")
	}
	lines, err := s.maintenanceRepo.List(ctx, repository.MaintenanceListFilter{InvoiceID: &invoiceID})
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, notFound("invoice")
	}
	return lines, nil
}

func (s *MaintenanceService) ListOrphaned(ctx context.Context) ([]model.Maintenance, error) {
	return s.maintenanceRepo.ListOrphaned(ctx)
}

func (s *MaintenanceService) ListIssuers(ctx context.Context) ([]string, error) {
	return s.maintenanceRepo.ListIssuers(ctx)
}

func (s *MaintenanceService) Get(ctx context.Context, id uuid.UUID) (*model.Maintenance, error) {
	maintenance, err := s.maintenanceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "maintenance")
	}
	return maintenance, nil
}

func (s *MaintenanceService) GetWithReviews(ctx context.Context, id uuid.UUID) (*model.Maintenance, error) {
	maintenance, err := s.maintenanceRepo.GetWithReviews(ctx, id)
	if err != nil {
		return nil, storeError(err, "maintenance")
	}
	return maintenance, nil
}

// Update edits the line fields present in the input. Reviews are edited
// through their own operations.
func (s *MaintenanceService) Update(ctx context.Context, id uuid.UUID, input UpdateMaintenanceInput) (*model.Maintenance, error) {
	maintenance, err := s.maintenanceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "maintenance")
	}
	if err := input.merge(maintenance).apply(maintenance); err != nil {
		return nil, err
	}
	if err := s.maintenanceRepo.Update(ctx, maintenance); err != nil {
		return nil, storeError(err, "maintenance")
	}

	invalidateTotals(ctx, s.cache, s.log, TotalsKindMaintenance)
	return maintenance, nil
}

// Delete removes the line together with its reviews.
func (s *MaintenanceService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.maintenanceRepo.DeleteWithReviews(ctx, id); err != nil {
		return storeError(err, "maintenance")
	}
	invalidateTotals(ctx, s.cache, s.log, TotalsKindMaintenance)
	return nil
}
