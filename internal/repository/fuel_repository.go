package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
)

type FuelRepository struct {
	db *gorm.DB
}

func NewFuelRepository(db *gorm.DB) *FuelRepository {
	return &FuelRepository{db: db}
}

func (r *FuelRepository) Create(ctx context.Context, fuel *model.Fuel) error {
	return r.db.WithContext(ctx).Create(fuel).Error
}

func (r *FuelRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Fuel, error) {
	var fuel model.Fuel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&fuel).Error; err != nil {
		return nil, err
	}
	return &fuel, nil
}

func (r *FuelRepository) List(ctx context.Context, plate *string) ([]model.Fuel, error) {
	var fuels []model.Fuel
	query := r.db.WithContext(ctx).Model(&model.Fuel{})
	if plate != nil {
		query = query.Where("plate = ?", *plate)
	}
	err := query.Order("fuels.date DESC").Order("fuels.created_at DESC").Find(&fuels).Error
	return fuels, err
}

func (r *FuelRepository) ListOrphaned(ctx context.Context) ([]model.Fuel, error) {
	var fuels []model.Fuel
	plates := r.db.Model(&model.Vehicle{}).Select("plate")
	err := r.db.WithContext(ctx).
		Where("plate NOT IN (?)", plates).
		Order("fuels.date DESC").
		Find(&fuels).Error
	return fuels, err
}

func (r *FuelRepository) ListCostPoints(ctx context.Context, plate *string) ([]CostPoint, error) {
	var rows []model.Fuel
	query := r.db.WithContext(ctx).Select("date", "total_cost")
	if plate != nil {
		query = query.Where("plate = ?", *plate)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	points := make([]CostPoint, len(rows))
	for i, row := range rows {
		points[i] = CostPoint{Date: row.Date, TotalCost: row.TotalCost}
	}
	return points, nil
}

func (r *FuelRepository) Update(ctx context.Context, fuel *model.Fuel) error {
	return r.db.WithContext(ctx).Save(fuel).Error
}

func (r *FuelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Fuel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
