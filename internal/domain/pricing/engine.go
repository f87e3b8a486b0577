// Package pricing implements the price derivation engine shared by the
// quote builder and the quote-to-contract converter. It is pure: no clock,
// no database, no shared state, cheap enough to run on every keystroke.
package pricing

import "github.com/shopspring/decimal"

var (
	// All listed prices are entered VAT-inclusive at the standard rate.
	// Switching to the reduced regime strips the embedded 22% and
	// re-applies 4%.
	vatStandard = decimal.NewFromFloat(1.22)
	vatReduced  = decimal.NewFromFloat(1.04)

	// ExtendedWarrantySurcharge is the fixed VAT-bearing charge for the
	// 84-month warranty term, in pre-adjustment monetary units.
	ExtendedWarrantySurcharge = decimal.NewFromInt(1000)

	hundred = decimal.NewFromInt(100)
)

// AdjustForVAT re-bases a VAT-bearing amount for the reduced regime. Under
// the standard regime it is the identity: the amount is already correctly
// VAT-inclusive.
func AdjustForVAT(amount decimal.Decimal, reducedVAT bool) decimal.Decimal {
	if !reducedVAT {
		return amount
	}
	return amount.Div(vatStandard).Mul(vatReduced)
}

// Breakdown exposes the derived components so the form can display them
// next to the final price.
type Breakdown struct {
	AdjustedBase      decimal.Decimal `json:"adjusted_base"`
	TotalDeductions   decimal.Decimal `json:"total_deductions"`
	TotalAdditions    decimal.Decimal `json:"total_additions"`
	WarrantySurcharge decimal.Decimal `json:"warranty_surcharge"`
	TradeInValue      decimal.Decimal `json:"trade_in_value"`
	Deposit           decimal.Decimal `json:"deposit"`
}

// Result is the outcome of a price derivation.
type Result struct {
	// FinalPrice is non-negative and rounded up to the cent.
	FinalPrice decimal.Decimal `json:"final_price"`
	// Clamped is set when the raw result was negative and pulled up to
	// zero. Callers may surface a warning; they must not block on it.
	Clamped   bool      `json:"clamped"`
	Breakdown Breakdown `json:"breakdown"`
}

// ComputeFinalPrice derives the contract price from a vehicle base price and
// an adjustment set. Every VAT-bearing component is re-based independently
// before combining; the trade-in credited value and the deposit are exempt.
// The result rounds up to the cent — a deliberate margin-protecting business
// rule, not a float workaround — and never goes below zero.
func ComputeFinalPrice(basePrice decimal.Decimal, adj Adjustments) Result {
	adj = adj.sanitized()
	base := clampAmount(basePrice)

	surcharge := decimal.Zero
	if adj.WarrantyTerm.IsExtended() {
		surcharge = ExtendedWarrantySurcharge
	}

	adjBase := AdjustForVAT(base, adj.ReducedVAT)
	adjDiscount := AdjustForVAT(adj.Discount, adj.ReducedVAT)
	adjPlateBonus := AdjustForVAT(adj.LicensePlateBonus, adj.ReducedVAT)
	adjTradeBonus := AdjustForVAT(adj.TradeInBonus, adj.ReducedVAT)
	adjSafetyKit := AdjustForVAT(adj.SafetyKit, adj.ReducedVAT)
	adjHandling := AdjustForVAT(adj.TradeInHandlingFee, adj.ReducedVAT)
	adjRoadPrep := AdjustForVAT(adj.RoadPreparationFee, adj.ReducedVAT)
	adjWarranty := AdjustForVAT(surcharge, adj.ReducedVAT)

	totalDeductions := adjDiscount.
		Add(adjPlateBonus).
		Add(adjTradeBonus).
		Add(adj.TradeInValue).
		Add(adj.DepositAmount)
	totalAdditions := adjSafetyKit.
		Add(adjHandling).
		Add(adjRoadPrep).
		Add(adjWarranty)

	rawFinal := adjBase.Sub(totalDeductions).Add(totalAdditions)

	final := ceilToCent(rawFinal)
	clamped := false
	if final.IsNegative() {
		final = decimal.Zero
		clamped = true
	} else if rawFinal.IsNegative() {
		clamped = true
	}

	return Result{
		FinalPrice: final,
		Clamped:    clamped,
		Breakdown: Breakdown{
			AdjustedBase:      adjBase,
			TotalDeductions:   totalDeductions,
			TotalAdditions:    totalAdditions,
			WarrantySurcharge: adjWarranty,
			TradeInValue:      adj.TradeInValue,
			Deposit:           adj.DepositAmount,
		},
	}
}

// ceilToCent rounds up to two decimal places.
func ceilToCent(d decimal.Decimal) decimal.Decimal {
	return d.Mul(hundred).Ceil().Div(hundred)
}
