package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) Create(ctx context.Context, vehicle *model.Vehicle) error {
	return r.db.WithContext(ctx).Create(vehicle).Error
}

func (r *VehicleRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&vehicle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

func (r *VehicleRepository) GetByPlate(ctx context.Context, plate string) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	err := r.db.WithContext(ctx).Where("plate = ?", plate).First(&vehicle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

func (r *VehicleRepository) List(ctx context.Context) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	err := r.db.WithContext(ctx).Order("plate ASC").Find(&vehicles).Error
	return vehicles, err
}

func (r *VehicleRepository) ListPlates(ctx context.Context) ([]string, error) {
	var plates []string
	err := r.db.WithContext(ctx).Model(&model.Vehicle{}).Order("plate ASC").Pluck("plate", &plates).Error
	return plates, err
}

func (r *VehicleRepository) Update(ctx context.Context, vehicle *model.Vehicle) error {
	return r.db.WithContext(ctx).Save(vehicle).Error
}

// Delete removes a vehicle and its tire assignments. Vehicles that still
// own alerts are kept.
func (r *VehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var alerts int64
		if err := tx.Model(&model.Alert{}).Where("vehicle_id = ?", id).Count(&alerts).Error; err != nil {
			return err
		}
		if alerts > 0 {
			return ErrVehicleHasAlerts
		}
		res := tx.Where("id = ?", id).Delete(&model.Vehicle{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *VehicleRepository) UpdateMileage(ctx context.Context, id uuid.UUID, mileage float64) (*model.Vehicle, error) {
	res := r.db.WithContext(ctx).Model(&model.Vehicle{}).
		Where("id = ?", id).
		Update("mileage", mileage)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *VehicleRepository) UpdateMileageByPlate(ctx context.Context, plate string, mileage float64) (*model.Vehicle, error) {
	res := r.db.WithContext(ctx).Model(&model.Vehicle{}).
		Where("plate = ?", plate).
		Update("mileage", mileage)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByPlate(ctx, plate)
}
