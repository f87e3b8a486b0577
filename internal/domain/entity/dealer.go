package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Dealer represents a dealership location
type Dealer struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Code       string         `gorm:"size:20;unique;not null" json:"code"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	Address    *string        `gorm:"type:text" json:"address,omitempty"`
	City       *string        `gorm:"size:100" json:"city,omitempty"`
	Province   *string        `gorm:"size:10" json:"province,omitempty"`
	PostalCode *string        `gorm:"size:20" json:"postal_code,omitempty"`
	Phone      *string        `gorm:"size:50" json:"phone,omitempty"`
	Email      *string        `gorm:"size:255" json:"email,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Vehicles []Vehicle `gorm:"foreignKey:DealerID" json:"-"`
	Orders   []Order   `gorm:"foreignKey:DealerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new dealer
func (d *Dealer) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Dealer model
func (Dealer) TableName() string {
	return "dealers"
}
