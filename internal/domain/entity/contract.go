package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/autoforge/dealership-api/internal/domain/enum"
	"github.com/autoforge/dealership-api/internal/domain/pricing"
)

// ContractorRecord flattens the contractor tagged union into nullable
// columns. Which variant columns are populated is decided by Type; the
// validation layer works on the union form, never on this bag directly.
type ContractorRecord struct {
	Type enum.ContractorType `gorm:"size:20;not null" json:"type"`

	// Natural person variant
	FirstName  *string `gorm:"size:255" json:"first_name,omitempty"`
	LastName   *string `gorm:"size:255" json:"last_name,omitempty"`
	FiscalCode *string `gorm:"size:32" json:"fiscal_code,omitempty"`
	BirthDate  *string `gorm:"size:20" json:"birth_date,omitempty"`
	BirthPlace *string `gorm:"size:100" json:"birth_place,omitempty"`

	// Legal entity variant
	CompanyName              *string `gorm:"size:255" json:"company_name,omitempty"`
	VATNumber                *string `gorm:"size:32" json:"vat_number,omitempty"`
	RepresentativeFiscalCode *string `gorm:"size:32" json:"representative_fiscal_code,omitempty"`
	RepresentativeBirthDate  *string `gorm:"size:20" json:"representative_birth_date,omitempty"`
	RepresentativeBirthPlace *string `gorm:"size:100" json:"representative_birth_place,omitempty"`

	// Shared mandatory set
	Address    string `gorm:"type:text;not null" json:"address"`
	City       string `gorm:"size:100;not null" json:"city"`
	Province   string `gorm:"size:10;not null" json:"province"`
	PostalCode string `gorm:"size:20;not null" json:"postal_code"`
	Phone      string `gorm:"size:50;not null" json:"phone"`
	Email      string `gorm:"size:255;not null" json:"email"`
}

// Union rebuilds the tagged union from the flattened columns.
func (r ContractorRecord) Union() pricing.Contractor {
	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}
	c := pricing.Contractor{
		Type: r.Type,
		Contact: pricing.ContactInfo{
			Address:    r.Address,
			City:       r.City,
			Province:   r.Province,
			PostalCode: r.PostalCode,
			Phone:      r.Phone,
			Email:      r.Email,
		},
	}
	switch r.Type {
	case enum.ContractorNaturalPerson:
		c.NaturalPerson = &pricing.NaturalPerson{
			FirstName:  deref(r.FirstName),
			LastName:   deref(r.LastName),
			FiscalCode: deref(r.FiscalCode),
			BirthDate:  deref(r.BirthDate),
			BirthPlace: deref(r.BirthPlace),
		}
	case enum.ContractorLegalEntity:
		c.LegalEntity = &pricing.LegalEntity{
			CompanyName:              deref(r.CompanyName),
			VATNumber:                deref(r.VATNumber),
			RepresentativeFiscalCode: deref(r.RepresentativeFiscalCode),
			RepresentativeBirthDate:  deref(r.RepresentativeBirthDate),
			RepresentativeBirthPlace: deref(r.RepresentativeBirthPlace),
		}
	}
	return c
}

// Contract is created from an accepted quote. It embeds the contractor and
// a snapshot of the quote's adjustment set and derived final price, plus
// the contract terms.
type Contract struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	QuoteID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"quote_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Reference string    `gorm:"size:100;unique;not null" json:"reference"`

	Contractor ContractorRecord `gorm:"embedded;embeddedPrefix:contractor_" json:"contractor"`

	BasePrice     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"base_price"`
	AdjustmentSet `gorm:"embedded" json:"adjustments"`
	TradeIn       TradeInRecord   `gorm:"embedded;embeddedPrefix:trade_in_" json:"trade_in"`
	FinalPrice    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"final_price"`

	DeliveryDays   int            `gorm:"default:0" json:"delivery_days"`
	SpecialClauses *string        `gorm:"type:text" json:"special_clauses,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Quote Quote `gorm:"foreignKey:QuoteID" json:"-"`
	User  User  `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new contract
func (c *Contract) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Contract model
func (Contract) TableName() string {
	return "contracts"
}
