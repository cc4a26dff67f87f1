package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Maintenance is one line of a service invoice. Several rows may share an
// InvoiceID. Plate is a plain string reference to Vehicle.Plate so lines
// can be entered before the vehicle is registered.
type Maintenance struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	InvoiceID   string          `gorm:"column:invoice_id;type:varchar(60);not null;index" json:"invoiceId"`
	InvoiceDate time.Time       `gorm:"not null" json:"invoiceDate"`
	Issuer      string          `gorm:"type:varchar(255);not null" json:"issuer"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Plate       string          `gorm:"type:varchar(16);not null;index" json:"plate"`
	Description string          `gorm:"type:text" json:"description"`
	Quantity    decimal.Decimal `gorm:"type:numeric(14,3);not null;default:0" json:"quantity"`
	Value       decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"value"`
	TotalCost   decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"totalCost"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	Reviews     []Review        `gorm:"foreignKey:MaintenanceID;constraint:OnDelete:RESTRICT" json:"reviews,omitempty"`
}

func (Maintenance) TableName() string {
	return "maintenances"
}

func (m *Maintenance) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// Review describes a recurring service threshold recorded together with a
// maintenance line, e.g. the next oil change km.
type Review struct {
	ID            uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	MaintenanceID uuid.UUID    `gorm:"type:uuid;not null;index" json:"maintenanceId"`
	Type          string       `gorm:"type:varchar(120);not null" json:"type"`
	CurrentKm     int          `gorm:"not null" json:"currentKm"`
	NextReviewKm  int          `gorm:"not null" json:"nextReviewKm"`
	CreatedAt     time.Time    `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time    `gorm:"autoUpdateTime" json:"updatedAt"`
	Maintenance   *Maintenance `gorm:"foreignKey:MaintenanceID;constraint:OnDelete:RESTRICT" json:"maintenance,omitempty"`
}

func (Review) TableName() string {
	return "reviews"
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
