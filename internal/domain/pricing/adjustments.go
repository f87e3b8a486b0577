package pricing

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/autoforge/dealership-api/internal/domain/enum"
)

// DefaultRoadPreparationFee is the fixed pre-delivery inspection charge
// applied when the caller does not supply one.
var DefaultRoadPreparationFee = decimal.NewFromInt(400)

// Adjustments is the engine's input contract: the full set of optional
// pricing modifiers collected by the quote form. It is a value object —
// it has no identity outside the quote or contract that owns it.
type Adjustments struct {
	ReducedVAT         bool
	Discount           decimal.Decimal
	LicensePlateBonus  decimal.Decimal
	HasTradeIn         bool
	TradeInValue       decimal.Decimal
	TradeInBonus       decimal.Decimal
	TradeInHandlingFee decimal.Decimal
	SafetyKit          decimal.Decimal
	RoadPreparationFee decimal.Decimal
	WarrantyTerm       enum.WarrantyTerm
	DepositAmount      decimal.Decimal
}

// NewAdjustments returns the zero adjustment set with the defaults the form
// starts from: standard warranty and the default road preparation fee.
func NewAdjustments() Adjustments {
	return Adjustments{
		RoadPreparationFee: DefaultRoadPreparationFee,
		WarrantyTerm:       enum.WarrantyStandard24,
	}
}

// AmountFromFloat converts raw form input to a monetary amount, coercing
// anything the engine must not see (NaN, infinities, negatives) to zero.
func AmountFromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

// clampAmount zeroes a negative amount. The UI is responsible for clamping
// its inputs, but the engine treats strays defensively.
func clampAmount(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// sanitized returns a copy with every monetary field clamped to >= 0 and all
// trade-in dependent amounts zeroed when the trade-in flag is off, so stale
// form state can never leak into the price.
func (a Adjustments) sanitized() Adjustments {
	a.Discount = clampAmount(a.Discount)
	a.LicensePlateBonus = clampAmount(a.LicensePlateBonus)
	a.SafetyKit = clampAmount(a.SafetyKit)
	a.RoadPreparationFee = clampAmount(a.RoadPreparationFee)
	a.DepositAmount = clampAmount(a.DepositAmount)
	if a.HasTradeIn {
		a.TradeInValue = clampAmount(a.TradeInValue)
		a.TradeInBonus = clampAmount(a.TradeInBonus)
		a.TradeInHandlingFee = clampAmount(a.TradeInHandlingFee)
	} else {
		a.TradeInValue = decimal.Zero
		a.TradeInBonus = decimal.Zero
		a.TradeInHandlingFee = decimal.Zero
	}
	a.WarrantyTerm = enum.ParseWarrantyTerm(string(a.WarrantyTerm))
	return a
}
