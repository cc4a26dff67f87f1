package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Tire struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	FireID        int             `gorm:"column:fire_id;not null;index" json:"fireId"`
	RetreadNumber int             `gorm:"not null;default:0" json:"retreadNumber"`
	GrooveDepth   float64         `json:"grooveDepth"`
	PurchaseDate  *time.Time      `json:"purchaseDate"`
	Brand         string          `gorm:"type:varchar(80)" json:"brand"`
	Model         string          `gorm:"type:varchar(80)" json:"model"`
	Measure       string          `gorm:"type:varchar(40)" json:"measure"`
	Value         decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"value"`
	CurrentKm     float64         `gorm:"not null;default:0" json:"currentKm"`
	Status        *string         `gorm:"type:varchar(40)" json:"status"`
	Pressure      *float64        `json:"pressure"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Tire) TableName() string {
	return "tires"
}

func (t *Tire) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// VehicleTire records which tire occupied which axle position of a vehicle
// between mount and unmount.
type VehicleTire struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	VehicleID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"vehicleId"`
	TireID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"tireId"`
	AxlePosition string     `gorm:"type:varchar(10);not null" json:"axlePosition"`
	MountKm      *float64   `json:"mountKm"`
	MountDate    *time.Time `json:"mountDate"`
	UnmountDate  *time.Time `json:"unmountDate"`
	UnmountKm    *float64   `json:"unmountKm"`
	Observation  *string    `gorm:"type:text" json:"observation"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	Vehicle      *Vehicle   `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE" json:"vehicle,omitempty"`
	Tire         *Tire      `gorm:"foreignKey:TireID;constraint:OnDelete:CASCADE" json:"tire,omitempty"`
}

func (VehicleTire) TableName() string {
	return "vehicle_tires"
}

func (vt *VehicleTire) BeforeCreate(tx *gorm.DB) error {
	if vt.ID == uuid.Nil {
		vt.ID = uuid.New()
	}
	return nil
}
