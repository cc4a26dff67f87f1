package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Vehicle struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Plate             string    `gorm:"type:varchar(16);uniqueIndex;not null" json:"plate"`
	Model             string    `gorm:"type:varchar(120)" json:"model"`
	Type              string    `gorm:"type:varchar(60)" json:"type"`
	ManufacturingYear *int      `json:"manufacturingYear"`
	ModelYear         *int      `json:"modelYear"`
	Observation       *string   `gorm:"type:text" json:"observation"`
	Color             *string   `gorm:"type:varchar(40)" json:"color"`
	FuelType          *string   `gorm:"type:varchar(40)" json:"fuelType"`
	Mileage           float64   `gorm:"not null;default:0" json:"mileage"`
	Utility           *string   `gorm:"type:varchar(120)" json:"utility"`
	Classification    *int      `json:"classification"`
	Registration      string    `gorm:"type:varchar(60)" json:"registration"`
	Chassis           *string   `gorm:"column:chassis;type:varchar(60)" json:"chassi"`
	Fleet             *int      `json:"fleet"`
	Renavam           *string   `gorm:"type:varchar(30)" json:"renavam"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
