package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Alert binds a vehicle to a mileage threshold. It is either pending or
// completed; a repeating alert is continued by a new row, never reopened.
type Alert struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	VehicleID   uuid.UUID        `gorm:"type:uuid;not null;index" json:"vehicleId"`
	Type        string           `gorm:"type:varchar(120);not null" json:"type"`
	Description *string          `gorm:"type:text" json:"description"`
	Value       *decimal.Decimal `gorm:"type:numeric(14,2)" json:"value"`
	KmAlert     float64          `gorm:"column:km_alert;not null" json:"kmAlert"`
	IsCompleted bool             `gorm:"not null;default:false;index" json:"isCompleted"`
	DoneDate    *time.Time       `json:"doneDate"`
	CreatedAt   time.Time        `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time        `gorm:"autoUpdateTime" json:"updatedAt"`
	Vehicle     *Vehicle         `gorm:"foreignKey:VehicleID;constraint:OnDelete:RESTRICT" json:"vehicle,omitempty"`
}

func (Alert) TableName() string {
	return "alerts"
}

func (a *Alert) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

type AlertDueStatus string

const (
	AlertDueStatusDueSoon AlertDueStatus = "due-soon"
	AlertDueStatusOverdue AlertDueStatus = "overdue"
)

// DueAlert is a pending alert annotated with its derived due state. It is
// never persisted.
type DueAlert struct {
	Alert       Alert          `json:"alert"`
	Status      AlertDueStatus `json:"status"`
	Mileage     float64        `json:"mileage"`
	RemainingKm float64        `json:"remainingKm"`
}
