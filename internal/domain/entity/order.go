package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/autoforge/dealership-api/internal/domain/enum"
)

// Order represents a factory order for a vehicle configuration not in stock
type Order struct {
	ID               uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	UserID           uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	DealerID         uuid.UUID        `gorm:"type:uuid;not null;index" json:"dealer_id"`
	Reference        string           `gorm:"size:100;unique;not null" json:"reference"`
	Model            string           `gorm:"size:100;not null" json:"model"`
	Trim             string           `gorm:"size:100" json:"trim"`
	Color            string           `gorm:"size:50" json:"color"`
	Quantity         int              `gorm:"default:1" json:"quantity"`
	ExpectedDelivery *time.Time       `gorm:"type:date" json:"expected_delivery,omitempty"`
	Status           enum.OrderStatus `gorm:"default:0" json:"status"`
	Note             *string          `gorm:"type:text" json:"note,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
	DeletedAt        gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	User   User   `gorm:"foreignKey:UserID" json:"-"`
	Dealer Dealer `gorm:"foreignKey:DealerID" json:"dealer,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}
