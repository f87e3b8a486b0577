package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/autoforge/dealership-api/internal/domain/enum"
)

// Vehicle represents a vehicle in the dealership inventory. The base price
// is immutable for pricing purposes: quotes snapshot it at creation time.
type Vehicle struct {
	ID          uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	DealerID    *uuid.UUID         `gorm:"type:uuid;index" json:"dealer_id,omitempty"`
	VIN         string             `gorm:"size:17;unique;not null" json:"vin"`
	Make        string             `gorm:"size:100;not null" json:"make"`
	Model       string             `gorm:"size:100;not null" json:"model"`
	Trim        string             `gorm:"size:100" json:"trim"`
	Color       string             `gorm:"size:50" json:"color"`
	Year        int                `gorm:"not null" json:"year"`
	Mileage     int                `gorm:"default:0" json:"mileage"`
	BasePrice   decimal.Decimal    `gorm:"type:decimal(12,2);not null" json:"base_price"`
	Accessories []string           `gorm:"serializer:json" json:"accessories"`
	Status      enum.VehicleStatus `gorm:"default:0" json:"status"`
	Photo       *string            `gorm:"size:255" json:"photo,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	DeletedAt   gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Dealer *Dealer `gorm:"foreignKey:DealerID" json:"dealer,omitempty"`
	Quotes []Quote `gorm:"foreignKey:VehicleID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new vehicle
func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Vehicle model
func (Vehicle) TableName() string {
	return "vehicles"
}
