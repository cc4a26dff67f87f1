package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"fleet-service/internal/model"
	"fleet-service/internal/repository"
)

type AlertService struct {
	alertRepo   AlertStore
	vehicleRepo VehicleStore
	lookaheadKm float64
	now         func() time.Time
	log         zerolog.Logger
}

func NewAlertService(alertRepo AlertStore, vehicleRepo VehicleStore, lookaheadKm float64, log zerolog.Logger) *AlertService {
	return &AlertService{
		alertRepo:   alertRepo,
		vehicleRepo: vehicleRepo,
		lookaheadKm: lookaheadKm,
		now:         time.Now,
		log:         log,
	}
}

type AlertInput struct {
	VehicleID   uuid.UUID        `json:"vehicleId"`
	Type        string           `json:"type"`
	Description *string          `json:"description"`
	Value       *decimal.Decimal `json:"value"`
	KmAlert     float64          `json:"kmAlert"`
}

func (in AlertInput) apply(alert *model.Alert) error {
	alertType := strings.TrimSpace(in.Type)
	if alertType == "" {
		return invalidf("type is required")
	}
	if !(in.KmAlert > 0) || math.IsInf(in.KmAlert, 0) {
		return invalidf("kmAlert must be a positive number")
	}
	if in.Value != nil && in.Value.IsNegative() {
		return invalidf("value must not be negative")
	}

	alert.Type = alertType
	alert.Description = in.Description
	alert.Value = in.Value
	alert.KmAlert = in.KmAlert
	return nil
}

// Create stores a new pending alert for an existing vehicle.
func (s *AlertService) Create(ctx context.Context, input AlertInput) (*model.Alert, error) {
	alert := &model.Alert{}
	if err := input.apply(alert); err != nil {
		return nil, err
	}
	if input.VehicleID == uuid.Nil {
		return nil, invalidf("vehicleId is required")
	}
	if _, err := requireVehicle(ctx, s.vehicleRepo, input.VehicleID); err != nil {
		return nil, err
	}

	alert.VehicleID = input.VehicleID
	alert.IsCompleted = false
	alert.DoneDate = nil

	if err := s.alertRepo.Create(ctx, alert); err != nil {
		return nil, storeError(err, "alert")
	}
	return alert, nil
}

func (s *AlertService) List(ctx context.Context, filter repository.AlertListFilter) ([]model.Alert, error) {
	return s.alertRepo.List(ctx, filter)
}

func (s *AlertService) Get(ctx context.Context, id uuid.UUID) (*model.Alert, error) {
	alert, err := s.alertRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "alert")
	}
	return alert, nil
}

// UpdateAlertInput carries the fields of a partial alert update. Omitted
// fields keep their stored value; an empty description clears it.
type UpdateAlertInput struct {
	VehicleID   *uuid.UUID       `json:"vehicleId"`
	Type        *string          `json:"type"`
	Description *string          `json:"description"`
	Value       *decimal.Decimal `json:"value"`
	KmAlert     *float64         `json:"kmAlert"`
}

func (in UpdateAlertInput) merge(alert *model.Alert) AlertInput {
	merged := AlertInput{
		VehicleID:   alert.VehicleID,
		Type:        alert.Type,
		Description: alert.Description,
		Value:       alert.Value,
		KmAlert:     alert.KmAlert,
	}
	if in.VehicleID != nil {
		merged.VehicleID = *in.VehicleID
	}
	if in.Type != nil {
		merged.Type = *in.Type
	}
	if in.Description != nil {
		merged.Description = in.Description
		if strings.TrimSpace(*in.Description) == "" {
			merged.Description = nil
		}
	}
	if in.Value != nil {
		merged.Value = in.Value
	}
	if in.KmAlert != nil {
		merged.KmAlert = *in.KmAlert
	}
	return merged
}

// Update edits the descriptive fields of an alert. Completion state is
// only changed through Complete.
func (s *AlertService) Update(ctx context.Context, id uuid.UUID, input UpdateAlertInput) (*model.Alert, error) {
	alert, err := s.alertRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "alert")
	}
	merged := input.merge(alert)
	if err := merged.apply(alert); err != nil {
		return nil, err
	}
	if merged.VehicleID == uuid.Nil {
		return nil, invalidf("vehicleId is required")
	}
	if merged.VehicleID != alert.VehicleID {
		if _, err := requireVehicle(ctx, s.vehicleRepo, merged.VehicleID); err != nil {
			return nil, err
		}
		alert.VehicleID = merged.VehicleID
	}
	alert.Vehicle = nil

	if err := s.alertRepo.Update(ctx, alert); err != nil {
		return nil, storeError(err, "alert")
	}
	return alert, nil
}

func (s *AlertService) Delete(ctx context.Context, id uuid.UUID) error {
	return storeError(s.alertRepo.Delete(ctx, id), "alert")
}

type CompleteAlertInput struct {
	Value       *decimal.Decimal `json:"value"`
	DoneDate    *time.Time       `json:"doneDate"`
	Repeat      bool             `json:"repeat"`
	NextKmAlert *float64         `json:"nextKmAlert"`
}

// Complete closes a pending alert. With Repeat set a successor alert for
// the same vehicle, type and description is created at NextKmAlert. The
// completed alert is returned; completing it a second time is a conflict.
func (s *AlertService) Complete(ctx context.Context, id uuid.UUID, input CompleteAlertInput) (*model.Alert, error) {
	params := repository.CompleteAlertParams{
		DoneDate: s.now().UTC(),
		Value:    input.Value,
	}
	if input.DoneDate != nil && !input.DoneDate.IsZero() {
		params.DoneDate = *input.DoneDate
	}
	if input.Value != nil && input.Value.IsNegative() {
		return nil, invalidf("value must not be negative")
	}
	if input.Repeat {
		if input.NextKmAlert == nil || !(*input.NextKmAlert > 0) || math.IsInf(*input.NextKmAlert, 0) {
			return nil, invalidf("nextKmAlert must be a positive number when repeat is set")
		}
		params.NextKmAlert = input.NextKmAlert
	}

	completed, successor, err := s.alertRepo.Complete(ctx, id, params)
	if err != nil {
		if errors.Is(err, repository.ErrAlertAlreadyCompleted) {
			return nil, fmt.Errorf("%w: alert already completed", ErrConflict)
		}
		return nil, storeError(err, "alert")
	}

	event := s.log.Info().Str("alert_id", completed.ID.String())
	if successor != nil {
		event = event.Str("successor_id", successor.ID.String()).Float64("next_km_alert", successor.KmAlert)
	}
	event.Msg("alert completed")

	return completed, nil
}

// DueCheck reports every pending alert whose vehicle mileage is within
// window km below its threshold (due soon) or at or above it (overdue).
// A nil window uses the configured lookahead. The result is ordered by
// remaining distance, most urgent first.
func (s *AlertService) DueCheck(ctx context.Context, window *float64) ([]model.DueAlert, error) {
	lookahead := s.lookaheadKm
	if window != nil {
		lookahead = *window
	}
	if lookahead < 0 || math.IsNaN(lookahead) {
		return nil, invalidf("window must not be negative")
	}

	pending, err := s.alertRepo.ListPendingWithVehicle(ctx)
	if err != nil {
		return nil, err
	}

	due := make([]model.DueAlert, 0)
	for _, alert := range pending {
		if alert.Vehicle == nil {
			continue
		}
		status, ok := DueStatus(alert.Vehicle.Mileage, alert.KmAlert, lookahead)
		if !ok {
			continue
		}
		due = append(due, model.DueAlert{
			Alert:       alert,
			Status:      status,
			Mileage:     alert.Vehicle.Mileage,
			RemainingKm: alert.KmAlert - alert.Vehicle.Mileage,
		})
	}

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].RemainingKm < due[j].RemainingKm
	})
	return due, nil
}

// DueStatus classifies a mileage against a threshold. The boolean is false
// when the mileage is still further than window below the threshold.
func DueStatus(mileage, kmAlert, window float64) (model.AlertDueStatus, bool) {
	switch {
	case mileage >= kmAlert:
		return model.AlertDueStatusOverdue, true
	case mileage >= kmAlert-window:
		return model.AlertDueStatusDueSoon, true
	default:
		return "", false
	}
}
