package entity

import (
	"github.com/shopspring/decimal"

	"github.com/autoforge/dealership-api/internal/domain/enum"
	"github.com/autoforge/dealership-api/internal/domain/pricing"
)

// AdjustmentSet persists the raw pricing modifiers alongside the computed
// final price, so a historical quote or contract can always be audited
// without recomputing against rates that may have changed since.
type AdjustmentSet struct {
	ReducedVAT         bool              `gorm:"default:false" json:"reduced_vat"`
	Discount           decimal.Decimal   `gorm:"type:decimal(12,2);default:0" json:"discount"`
	LicensePlateBonus  decimal.Decimal   `gorm:"type:decimal(12,2);default:0" json:"license_plate_bonus"`
	HasTradeIn         bool              `gorm:"default:false" json:"has_trade_in"`
	TradeInValue       decimal.Decimal   `gorm:"type:decimal(12,2);default:0" json:"trade_in_value"`
	TradeInBonus       decimal.Decimal   `gorm:"type:decimal(12,2);default:0" json:"trade_in_bonus"`
	TradeInHandlingFee decimal.Decimal   `gorm:"type:decimal(12,2);default:0" json:"trade_in_handling_fee"`
	SafetyKit          decimal.Decimal   `gorm:"type:decimal(12,2);default:0" json:"safety_kit"`
	RoadPreparationFee decimal.Decimal   `gorm:"type:decimal(12,2);default:400" json:"road_preparation_fee"`
	WarrantyTerm       enum.WarrantyTerm `gorm:"size:20;default:'standard24'" json:"warranty_term"`
	DepositAmount      decimal.Decimal   `gorm:"type:decimal(12,2);default:0" json:"deposit_amount"`
}

// Pricing converts the persisted set into the engine's input value object.
func (a AdjustmentSet) Pricing() pricing.Adjustments {
	return pricing.Adjustments{
		ReducedVAT:         a.ReducedVAT,
		Discount:           a.Discount,
		LicensePlateBonus:  a.LicensePlateBonus,
		HasTradeIn:         a.HasTradeIn,
		TradeInValue:       a.TradeInValue,
		TradeInBonus:       a.TradeInBonus,
		TradeInHandlingFee: a.TradeInHandlingFee,
		SafetyKit:          a.SafetyKit,
		RoadPreparationFee: a.RoadPreparationFee,
		WarrantyTerm:       a.WarrantyTerm,
		DepositAmount:      a.DepositAmount,
	}
}

// AdjustmentSetFrom snapshots an engine adjustment set into its persisted form.
func AdjustmentSetFrom(adj pricing.Adjustments) AdjustmentSet {
	return AdjustmentSet{
		ReducedVAT:         adj.ReducedVAT,
		Discount:           adj.Discount,
		LicensePlateBonus:  adj.LicensePlateBonus,
		HasTradeIn:         adj.HasTradeIn,
		TradeInValue:       adj.TradeInValue,
		TradeInBonus:       adj.TradeInBonus,
		TradeInHandlingFee: adj.TradeInHandlingFee,
		SafetyKit:          adj.SafetyKit,
		RoadPreparationFee: adj.RoadPreparationFee,
		WarrantyTerm:       adj.WarrantyTerm,
		DepositAmount:      adj.DepositAmount,
	}
}

// TradeInRecord holds the descriptive fields of the customer's trade-in
// vehicle, required on conversion when the trade-in flag is set.
type TradeInRecord struct {
	Brand   *string `gorm:"size:100" json:"brand,omitempty"`
	Model   *string `gorm:"size:100" json:"model,omitempty"`
	Plate   *string `gorm:"size:20" json:"plate,omitempty"`
	Year    *int    `json:"year,omitempty"`
	Mileage *int    `json:"mileage,omitempty"`
}

// Pricing converts the record into the validation input shape.
func (t TradeInRecord) Pricing() pricing.TradeInVehicle {
	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}
	derefInt := func(i *int) int {
		if i == nil {
			return 0
		}
		return *i
	}
	return pricing.TradeInVehicle{
		Brand:   deref(t.Brand),
		Model:   deref(t.Model),
		Plate:   deref(t.Plate),
		Year:    derefInt(t.Year),
		Mileage: derefInt(t.Mileage),
	}
}
