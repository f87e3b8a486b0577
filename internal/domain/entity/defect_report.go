package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/autoforge/dealership-api/internal/domain/enum"
)

// DefectReport tracks a defect or warranty claim on a vehicle, with photo
// evidence and documents uploaded through the storage service.
type DefectReport struct {
	ID          uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	VehicleID   uuid.UUID         `gorm:"type:uuid;not null;index" json:"vehicle_id"`
	Title       string            `gorm:"size:255;not null" json:"title"`
	Description string            `gorm:"type:text" json:"description"`
	Severity    string            `gorm:"size:20;default:'medium'" json:"severity"`
	Status      enum.DefectStatus `gorm:"default:0" json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	DeletedAt   gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relationships
	User        User               `gorm:"foreignKey:UserID" json:"-"`
	Vehicle     *Vehicle           `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
	Attachments []DefectAttachment `gorm:"foreignKey:ReportID" json:"attachments,omitempty"`
}

// BeforeCreate generates a UUID before creating a new defect report
func (r *DefectReport) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DefectReport model
func (DefectReport) TableName() string {
	return "defect_reports"
}

// DefectAttachment is a file attached to a defect report with its publicly
// resolvable URL.
type DefectAttachment struct {
	ID        uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	ReportID  uuid.UUID           `gorm:"type:uuid;not null;index" json:"report_id"`
	Kind      enum.AttachmentKind `gorm:"size:30;not null" json:"kind"`
	FileName  string              `gorm:"size:255;not null" json:"file_name"`
	URL       string              `gorm:"size:500;not null" json:"url"`
	CreatedAt time.Time           `json:"created_at"`

	// Relationships
	Report DefectReport `gorm:"foreignKey:ReportID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new attachment
func (a *DefectAttachment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DefectAttachment model
func (DefectAttachment) TableName() string {
	return "defect_attachments"
}
