package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/autoforge/dealership-api/internal/domain/enum"
)

func TestValidateTradeInNotRequiredWhenDisabled(t *testing.T) {
	adj := NewAdjustments()
	adj.HasTradeIn = false

	res := ValidateTradeIn(adj, TradeInVehicle{})
	assert.True(t, res.OK)
	assert.Empty(t, res.MissingFields)
}

func TestValidateTradeInRequiresDescriptiveFields(t *testing.T) {
	adj := NewAdjustments()
	adj.HasTradeIn = true

	res := ValidateTradeIn(adj, TradeInVehicle{})
	assert.False(t, res.OK)
	assert.ElementsMatch(t, []string{
		"trade_in_brand", "trade_in_model", "trade_in_plate",
		"trade_in_year", "trade_in_mileage",
	}, res.MissingFields)

	res = ValidateTradeIn(adj, TradeInVehicle{
		Brand:   "Fiat",
		Model:   "Panda",
		Plate:   "AB123CD",
		Year:    2019,
		Mileage: 64000,
	})
	assert.True(t, res.OK)
}

func TestValidateContractorNaturalPerson(t *testing.T) {
	c := Contractor{
		Type: enum.ContractorNaturalPerson,
		NaturalPerson: &NaturalPerson{
			FirstName:  "Maria",
			LastName:   "Rossi",
			FiscalCode: "RSSMRA80A41H501X",
			BirthDate:  "1980-01-01",
			BirthPlace: "Roma",
		},
		Contact: ContactInfo{
			Address:    "Via Roma 1",
			City:       "Milano",
			Province:   "MI",
			PostalCode: "20100",
			Phone:      "3331234567",
			Email:      "maria@example.com",
		},
	}
	assert.True(t, ValidateContractor(c).OK)

	c.NaturalPerson.FiscalCode = ""
	c.Contact.Email = "  "
	res := ValidateContractor(c)
	assert.False(t, res.OK)
	assert.ElementsMatch(t, []string{"fiscal_code", "email"}, res.MissingFields)
}

func TestValidateContractorLegalEntity(t *testing.T) {
	c := Contractor{
		Type: enum.ContractorLegalEntity,
		LegalEntity: &LegalEntity{
			CompanyName:              "Trasporti SRL",
			VATNumber:                "01234567890",
			RepresentativeFiscalCode: "VRDLGI75C15F205Z",
			RepresentativeBirthDate:  "1975-03-15",
			RepresentativeBirthPlace: "Torino",
		},
		Contact: ContactInfo{
			Address:    "Via Milano 10",
			City:       "Torino",
			Province:   "TO",
			PostalCode: "10100",
			Phone:      "0115551234",
			Email:      "info@trasporti.example",
		},
	}
	assert.True(t, ValidateContractor(c).OK)

	// A legal entity missing its variant block reports the entity field
	// names, never the natural-person ones.
	c.LegalEntity = nil
	res := ValidateContractor(c)
	assert.False(t, res.OK)
	assert.ElementsMatch(t, []string{
		"company_name", "vat_number", "representative_fiscal_code",
		"representative_birth_date", "representative_birth_place",
	}, res.MissingFields)
	assert.NotContains(t, res.MissingFields, "fiscal_code")
}

func TestValidateContractorUnknownType(t *testing.T) {
	res := ValidateContractor(Contractor{Type: enum.ContractorType("partnership")})
	assert.False(t, res.OK)
	assert.Contains(t, res.MissingFields, "contractor_type")
}

func TestParseWarrantyTermFailsClosed(t *testing.T) {
	assert.Equal(t, enum.WarrantyExtended84, enum.ParseWarrantyTerm("extended84"))
	assert.Equal(t, enum.WarrantyStandard24, enum.ParseWarrantyTerm("standard24"))
	assert.Equal(t, enum.WarrantyStandard24, enum.ParseWarrantyTerm(""))
	assert.Equal(t, enum.WarrantyStandard24, enum.ParseWarrantyTerm("extended"))
	assert.Equal(t, enum.WarrantyStandard24, enum.ParseWarrantyTerm("EXTENDED84"))
}
