package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
)

type TireRepository struct {
	db *gorm.DB
}

func NewTireRepository(db *gorm.DB) *TireRepository {
	return &TireRepository{db: db}
}

func (r *TireRepository) Create(ctx context.Context, tire *model.Tire) error {
	return r.db.WithContext(ctx).Create(tire).Error
}

func (r *TireRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Tire, error) {
	var tire model.Tire
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&tire).Error; err != nil {
		return nil, err
	}
	return &tire, nil
}

func (r *TireRepository) List(ctx context.Context) ([]model.Tire, error) {
	var tires []model.Tire
	err := r.db.WithContext(ctx).Order("fire_id ASC").Find(&tires).Error
	return tires, err
}

func (r *TireRepository) Update(ctx context.Context, tire *model.Tire) error {
	return r.db.WithContext(ctx).Save(tire).Error
}

func (r *TireRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Tire{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type VehicleTireRepository struct {
	db *gorm.DB
}

func NewVehicleTireRepository(db *gorm.DB) *VehicleTireRepository {
	return &VehicleTireRepository{db: db}
}

func (r *VehicleTireRepository) Create(ctx context.Context, vt *model.VehicleTire) error {
	return r.db.WithContext(ctx).Omit("Vehicle", "Tire").Create(vt).Error
}

func (r *VehicleTireRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.VehicleTire, error) {
	var vt model.VehicleTire
	err := r.db.WithContext(ctx).
		Preload("Vehicle").
		Preload("Tire").
		Where("id = ?", id).
		First(&vt).Error
	if err != nil {
		return nil, err
	}
	return &vt, nil
}

func (r *VehicleTireRepository) List(ctx context.Context, vehicleID *uuid.UUID) ([]model.VehicleTire, error) {
	var vts []model.VehicleTire
	query := r.db.WithContext(ctx).Preload("Vehicle").Preload("Tire")
	if vehicleID != nil {
		query = query.Where("vehicle_id = ?", *vehicleID)
	}
	err := query.Order("created_at DESC").Find(&vts).Error
	return vts, err
}

func (r *VehicleTireRepository) Update(ctx context.Context, vt *model.VehicleTire) error {
	return r.db.WithContext(ctx).Omit("Vehicle", "Tire").Save(vt).Error
}

func (r *VehicleTireRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.VehicleTire{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
