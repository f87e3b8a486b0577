package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/autoforge/dealership-api/internal/domain/enum"
)

// Quote represents a price quote for a vehicle. Price is the vehicle base
// price frozen at quote time; FinalPrice is the derived contract price,
// persisted together with the raw adjustment set for audit.
type Quote struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	VehicleID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"vehicle_id"`
	DealerID      *uuid.UUID `gorm:"type:uuid;index" json:"dealer_id,omitempty"`
	Reference     string     `gorm:"size:100;unique;not null" json:"reference"`
	CustomerName  string     `gorm:"size:255;not null" json:"customer_name"`
	CustomerPhone *string    `gorm:"size:50" json:"customer_phone,omitempty"`
	CustomerEmail *string    `gorm:"size:255" json:"customer_email,omitempty"`

	Price         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	AdjustmentSet `gorm:"embedded" json:"adjustments"`
	TradeIn       TradeInRecord   `gorm:"embedded;embeddedPrefix:trade_in_" json:"trade_in"`
	FinalPrice    decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"final_price"`

	Status          enum.QuoteStatus `gorm:"default:0" json:"status"`
	RejectionReason *string          `gorm:"type:text" json:"rejection_reason,omitempty"`
	Note            *string          `gorm:"type:text" json:"note,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	DeletedAt       gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	User     User      `gorm:"foreignKey:UserID" json:"-"`
	Vehicle  *Vehicle  `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
	Dealer   *Dealer   `gorm:"foreignKey:DealerID" json:"dealer,omitempty"`
	Contract *Contract `gorm:"foreignKey:QuoteID" json:"contract,omitempty"`
}

// BeforeCreate generates a UUID before creating a new quote
func (q *Quote) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Quote model
func (Quote) TableName() string {
	return "quotes"
}
