package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Fuel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	InvoiceID   string          `gorm:"column:invoice_id;type:varchar(60);not null;index" json:"invoiceId"`
	Issuer      string          `gorm:"type:varchar(255);not null" json:"issuer"`
	InvoiceDate time.Time       `gorm:"not null" json:"invoiceDate"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Plate       string          `gorm:"type:varchar(16);not null;index" json:"plate"`
	Kilometers  float64         `gorm:"not null;default:0" json:"kilometers"`
	FuelType    string          `gorm:"type:varchar(40)" json:"fuelType"`
	Quantity    decimal.Decimal `gorm:"type:numeric(14,3);not null;default:0" json:"quantity"`
	UnitCost    decimal.Decimal `gorm:"type:numeric(14,4);not null;default:0" json:"unitCost"`
	TotalCost   decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"totalCost"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Fuel) TableName() string {
	return "fuels"
}

func (f *Fuel) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
