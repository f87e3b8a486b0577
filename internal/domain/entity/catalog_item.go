package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/autoforge/dealership-api/internal/domain/enum"
)

// CatalogItem is an entry in one of the settings catalogs (accessories,
// models, trims, colors) presented as pick lists by the UI.
type CatalogItem struct {
	ID        uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	Kind      enum.CatalogKind `gorm:"size:20;not null;index:idx_catalog_kind_label,unique" json:"kind"`
	Label     string           `gorm:"size:255;not null;index:idx_catalog_kind_label,unique" json:"label"`
	Position  int              `gorm:"default:0" json:"position"`
	Active    bool             `gorm:"default:true" json:"active"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	DeletedAt gorm.DeletedAt   `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new catalog item
func (c *CatalogItem) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CatalogItem model
func (CatalogItem) TableName() string {
	return "settings_catalogs"
}
