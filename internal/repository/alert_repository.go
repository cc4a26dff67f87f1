package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fleet-service/internal/model"
)

type AlertRepository struct {
	db *gorm.DB
}

func NewAlertRepository(db *gorm.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

func (r *AlertRepository) Create(ctx context.Context, alert *model.Alert) error {
	return r.db.WithContext(ctx).Omit("Vehicle").Create(alert).Error
}

func (r *AlertRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Alert, error) {
	var alert model.Alert
	err := r.db.WithContext(ctx).Preload("Vehicle").Where("id = ?", id).First(&alert).Error
	if err != nil {
		return nil, err
	}
	return &alert, nil
}

type AlertListFilter struct {
	VehicleID   *uuid.UUID
	IsCompleted *bool
}

func (r *AlertRepository) List(ctx context.Context, filter AlertListFilter) ([]model.Alert, error) {
	var alerts []model.Alert
	query := r.db.WithContext(ctx).Preload("Vehicle")

	if filter.VehicleID != nil {
		query = query.Where("vehicle_id = ?", *filter.VehicleID)
	}
	if filter.IsCompleted != nil {
		query = query.Where("is_completed = ?", *filter.IsCompleted)
	}

	err := query.Order("created_at DESC").Find(&alerts).Error
	return alerts, err
}

func (r *AlertRepository) Update(ctx context.Context, alert *model.Alert) error {
	return r.db.WithContext(ctx).Omit("Vehicle").Save(alert).Error
}

func (r *AlertRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Alert{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type CompleteAlertParams struct {
	DoneDate time.Time
	Value    *decimal.Decimal
	// NextKmAlert, when set, creates a pending successor alert for the
	// same vehicle, type and description.
	NextKmAlert *float64
}

// Complete marks a pending alert as done and optionally creates its
// successor, both in one transaction. The update is conditional on the
// alert still being pending, so concurrent completions cannot both succeed.
func (r *AlertRepository) Complete(ctx context.Context, id uuid.UUID, params CompleteAlertParams) (*model.Alert, *model.Alert, error) {
	var completed model.Alert
	var successor *model.Alert

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"is_completed": true,
			"done_date":    params.DoneDate,
		}
		if params.Value != nil {
			updates["value"] = *params.Value
		}

		res := tx.Model(&model.Alert{}).
			Where("id = ? AND is_completed = ?", id, false).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&model.Alert{}).Where("id = ?", id).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return gorm.ErrRecordNotFound
			}
			return ErrAlertAlreadyCompleted
		}

		if err := tx.Where("id = ?", id).First(&completed).Error; err != nil {
			return err
		}

		if params.NextKmAlert != nil {
			successor = &model.Alert{
				VehicleID:   completed.VehicleID,
				Type:        completed.Type,
				Description: completed.Description,
				KmAlert:     *params.NextKmAlert,
				IsCompleted: false,
			}
			if err := tx.Omit("Vehicle").Create(successor).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, gorm.ErrRecordNotFound
		}
		return nil, nil, err
	}

	return &completed, successor, nil
}

// ListPendingWithVehicle returns every incomplete alert with its vehicle
// loaded, the input of the due check.
func (r *AlertRepository) ListPendingWithVehicle(ctx context.Context) ([]model.Alert, error) {
	pending := false
	return r.List(ctx, AlertListFilter{IsCompleted: &pending})
}
