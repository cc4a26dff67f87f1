package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Driver struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name              string     `gorm:"type:varchar(255);not null" json:"name"`
	CPF               string     `gorm:"column:cpf;type:varchar(14);uniqueIndex;not null" json:"cpf"`
	CNH               *string    `gorm:"column:cnh;type:varchar(20)" json:"cnh"`
	CNHCategory       *string    `gorm:"column:cnh_category;type:varchar(5)" json:"cnhCategory"`
	CNHExpiration     *time.Time `gorm:"column:cnh_expiration" json:"cnhExpiration"`
	Phone             *string    `gorm:"type:varchar(30)" json:"phone"`
	Address           *string    `gorm:"type:text" json:"address"`
	Position          *string    `gorm:"type:varchar(60)" json:"position"`
	ToxicologicalDate *time.Time `json:"toxicologicalDate"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Driver) TableName() string {
	return "drivers"
}

func (d *Driver) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
