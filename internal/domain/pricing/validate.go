package pricing

import (
	"strings"

	"github.com/autoforge/dealership-api/internal/domain/enum"
)

// ValidationResult lists the fields a submission is missing. An empty list
// means the data is complete.
type ValidationResult struct {
	OK            bool     `json:"ok"`
	MissingFields []string `json:"missing_fields,omitempty"`
}

func newValidationResult(missing []string) ValidationResult {
	return ValidationResult{OK: len(missing) == 0, MissingFields: missing}
}

// TradeInVehicle holds the descriptive fields of a customer's trade-in.
type TradeInVehicle struct {
	Brand   string
	Model   string
	Plate   string
	Year    int
	Mileage int
}

// ValidateTradeIn checks that the trade-in descriptive fields are present
// when the adjustment set enables a trade-in. Live drafts are exempt; this
// gate applies to contract finalization only.
func ValidateTradeIn(adj Adjustments, tradeIn TradeInVehicle) ValidationResult {
	if !adj.HasTradeIn {
		return newValidationResult(nil)
	}

	var missing []string
	if strings.TrimSpace(tradeIn.Brand) == "" {
		missing = append(missing, "trade_in_brand")
	}
	if strings.TrimSpace(tradeIn.Model) == "" {
		missing = append(missing, "trade_in_model")
	}
	if strings.TrimSpace(tradeIn.Plate) == "" {
		missing = append(missing, "trade_in_plate")
	}
	if tradeIn.Year <= 0 {
		missing = append(missing, "trade_in_year")
	}
	if tradeIn.Mileage <= 0 {
		missing = append(missing, "trade_in_mileage")
	}
	return newValidationResult(missing)
}

// NaturalPerson is the contractor variant for a private customer.
type NaturalPerson struct {
	FirstName  string
	LastName   string
	FiscalCode string
	BirthDate  string
	BirthPlace string
}

// LegalEntity is the contractor variant for a company; the legal
// representative's personal data is mandatory alongside the VAT number.
type LegalEntity struct {
	CompanyName              string
	VATNumber                string
	RepresentativeFiscalCode string
	RepresentativeBirthDate  string
	RepresentativeBirthPlace string
}

// ContactInfo is the field set shared by both contractor variants.
type ContactInfo struct {
	Address    string
	City       string
	Province   string
	PostalCode string
	Phone      string
	Email      string
}

// Contractor is a tagged union discriminated by Type: exactly one of
// NaturalPerson or LegalEntity is set, each with its own disjoint mandatory
// field set on top of the shared ContactInfo.
type Contractor struct {
	Type          enum.ContractorType
	NaturalPerson *NaturalPerson
	LegalEntity   *LegalEntity
	Contact       ContactInfo
}

// ValidateContractor selects the mandatory field set for the contractor's
// variant and reports everything missing. An unknown discriminator fails
// with "contractor_type".
func ValidateContractor(c Contractor) ValidationResult {
	var missing []string

	switch c.Type {
	case enum.ContractorNaturalPerson:
		p := c.NaturalPerson
		if p == nil {
			p = &NaturalPerson{}
		}
		if strings.TrimSpace(p.FirstName) == "" {
			missing = append(missing, "first_name")
		}
		if strings.TrimSpace(p.LastName) == "" {
			missing = append(missing, "last_name")
		}
		if strings.TrimSpace(p.FiscalCode) == "" {
			missing = append(missing, "fiscal_code")
		}
		if strings.TrimSpace(p.BirthDate) == "" {
			missing = append(missing, "birth_date")
		}
		if strings.TrimSpace(p.BirthPlace) == "" {
			missing = append(missing, "birth_place")
		}
	case enum.ContractorLegalEntity:
		e := c.LegalEntity
		if e == nil {
			e = &LegalEntity{}
		}
		if strings.TrimSpace(e.CompanyName) == "" {
			missing = append(missing, "company_name")
		}
		if strings.TrimSpace(e.VATNumber) == "" {
			missing = append(missing, "vat_number")
		}
		if strings.TrimSpace(e.RepresentativeFiscalCode) == "" {
			missing = append(missing, "representative_fiscal_code")
		}
		if strings.TrimSpace(e.RepresentativeBirthDate) == "" {
			missing = append(missing, "representative_birth_date")
		}
		if strings.TrimSpace(e.RepresentativeBirthPlace) == "" {
			missing = append(missing, "representative_birth_place")
		}
	default:
		missing = append(missing, "contractor_type")
	}

	if strings.TrimSpace(c.Contact.Address) == "" {
		missing = append(missing, "address")
	}
	if strings.TrimSpace(c.Contact.City) == "" {
		missing = append(missing, "city")
	}
	if strings.TrimSpace(c.Contact.Province) == "" {
		missing = append(missing, "province")
	}
	if strings.TrimSpace(c.Contact.PostalCode) == "" {
		missing = append(missing, "postal_code")
	}
	if strings.TrimSpace(c.Contact.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(c.Contact.Email) == "" {
		missing = append(missing, "email")
	}

	return newValidationResult(missing)
}
