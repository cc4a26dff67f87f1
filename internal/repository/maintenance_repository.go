package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fleet-service/internal/model"
)

// CostPoint is the (date, total) projection used for monthly aggregation.
type CostPoint struct {
	Date      time.Time
	TotalCost decimal.Decimal
}

type MaintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

func (r *MaintenanceRepository) Create(ctx context.Context, maintenance *model.Maintenance) error {
	return r.db.WithContext(ctx).Omit("Reviews").Create(maintenance).Error
}

// CreateWithReview stores the maintenance line and its review in one
// transaction. review.MaintenanceID is set from the new row.
func (r *MaintenanceRepository) CreateWithReview(ctx context.Context, maintenance *model.Maintenance, review *model.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Reviews").Create(maintenance).Error; err != nil {
			return err
		}
		review.MaintenanceID = maintenance.ID
		return tx.Omit("Maintenance").Create(review).Error
	})
}

func (r *MaintenanceRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Maintenance, error) {
	var maintenance model.Maintenance
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&maintenance).Error; err != nil {
		return nil, err
	}
	return &maintenance, nil
}

func (r *MaintenanceRepository) GetWithReviews(ctx context.Context, id uuid.UUID) (*model.Maintenance, error) {
	var maintenance model.Maintenance
	err := r.db.WithContext(ctx).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("reviews.created_at DESC")
		}).
		Where("id = ?", id).
		First(&maintenance).Error
	if err != nil {
		return nil, err
	}
	return &maintenance, nil
}

type MaintenanceListFilter struct {
	Plate     *string
	InvoiceID *string
}

func (r *MaintenanceRepository) List(ctx context.Context, filter MaintenanceListFilter) ([]model.Maintenance, error) {
	var maintenances []model.Maintenance
	query := r.db.WithContext(ctx).Model(&model.Maintenance{})

	if filter.Plate != nil {
		query = query.Where("plate = ?", *filter.Plate)
	}
	if filter.InvoiceID != nil {
		query = query.Where("invoice_id = ?", *filter.InvoiceID)
	}

	err := query.Order("maintenances.date DESC").Order("maintenances.created_at DESC").Find(&maintenances).Error
	return maintenances, err
}

// ListOrphaned returns lines whose plate matches no registered vehicle.
func (r *MaintenanceRepository) ListOrphaned(ctx context.Context) ([]model.Maintenance, error) {
	var maintenances []model.Maintenance
	plates := r.db.Model(&model.Vehicle{}).Select("plate")
	err := r.db.WithContext(ctx).
		Where("plate NOT IN (?)", plates).
		Order("maintenances.date DESC").
		Find(&maintenances).Error
	return maintenances, err
}

func (r *MaintenanceRepository) ListIssuers(ctx context.Context) ([]string, error) {
	var issuers []string
	err := r.db.WithContext(ctx).Model(&model.Maintenance{}).
		Where("issuer <> ?", "").
		Distinct("issuer").
		Order("issuer ASC").
		Pluck("issuer", &issuers).Error
	return issuers, err
}

func (r *MaintenanceRepository) ListCostPoints(ctx context.Context, plate *string) ([]CostPoint, error) {
	var rows []model.Maintenance
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

func (r *MaintenanceRepository) Update(ctx context.Context, maintenance *model.Maintenance) error {
	return r.db.WithContext(ctx).Omit("Reviews").Save(maintenance).Error
}

// DeleteWithReviews removes the reviews of the maintenance line before the
// line itself so no review is left pointing at a missing row.
func (r *MaintenanceRepository) DeleteWithReviews(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("maintenance_id = ?", id).Delete(&model.Review{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&model.Maintenance{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
