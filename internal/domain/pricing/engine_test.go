package pricing

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoforge/dealership-api/internal/domain/enum"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestZeroAdjustmentIdentity(t *testing.T) {
	// With everything at default only the road preparation fee applies.
	cases := []string{"0", "100", "28500", "19999.99", "0.01"}
	for _, base := range cases {
		res := ComputeFinalPrice(d(base), NewAdjustments())
		expected := d(base).Add(DefaultRoadPreparationFee).Mul(decimal.NewFromInt(100)).Ceil().Div(decimal.NewFromInt(100))
		assert.True(t, res.FinalPrice.Equal(expected), "base %s: got %s want %s", base, res.FinalPrice, expected)
		assert.False(t, res.Clamped)
	}
}

func TestStandardScenario(t *testing.T) {
	res := ComputeFinalPrice(d("28500"), NewAdjustments())
	assert.Equal(t, "28900", res.FinalPrice.String())
}

func TestReducedVATScenario(t *testing.T) {
	adj := NewAdjustments()
	adj.ReducedVAT = true
	res := ComputeFinalPrice(d("28500"), adj)

	// Must match the formula exactly: each bearer stripped of 22% and
	// re-based at 4%, then summed and ceiling-rounded.
	raw := AdjustForVAT(d("28500"), true).Add(AdjustForVAT(DefaultRoadPreparationFee, true))
	expected := raw.Mul(decimal.NewFromInt(100)).Ceil().Div(decimal.NewFromInt(100))
	assert.True(t, res.FinalPrice.Equal(expected), "got %s want %s", res.FinalPrice, expected)
	assert.Equal(t, "24636.07", res.FinalPrice.StringFixed(2))
}

func TestVATSwitchConsistency(t *testing.T) {
	adj := Adjustments{
		Discount:           d("1500"),
		LicensePlateBonus:  d("300"),
		HasTradeIn:         true,
		TradeInValue:       d("5000"),
		TradeInBonus:       d("800"),
		TradeInHandlingFee: d("150"),
		SafetyKit:          d("250"),
		RoadPreparationFee: d("400"),
		WarrantyTerm:       enum.WarrantyExtended84,
		DepositAmount:      d("2000"),
	}
	base := d("32000")

	adjReduced := adj
	adjReduced.ReducedVAT = true
	res := ComputeFinalPrice(base, adjReduced)

	// Recompute by hand: every VAT-bearing component re-based, the
	// trade-in credited value and the deposit untouched.
	deductions := AdjustForVAT(adj.Discount, true).
		Add(AdjustForVAT(adj.LicensePlateBonus, true)).
		Add(AdjustForVAT(adj.TradeInBonus, true)).
		Add(adj.TradeInValue).
		Add(adj.DepositAmount)
	additions := AdjustForVAT(adj.SafetyKit, true).
		Add(AdjustForVAT(adj.TradeInHandlingFee, true)).
		Add(AdjustForVAT(adj.RoadPreparationFee, true)).
		Add(AdjustForVAT(ExtendedWarrantySurcharge, true))
	raw := AdjustForVAT(base, true).Sub(deductions).Add(additions)
	expected := raw.Mul(decimal.NewFromInt(100)).Ceil().Div(decimal.NewFromInt(100))

	assert.True(t, res.FinalPrice.Equal(expected), "got %s want %s", res.FinalPrice, expected)
	assert.True(t, res.Breakdown.TradeInValue.Equal(adj.TradeInValue))
	assert.True(t, res.Breakdown.Deposit.Equal(adj.DepositAmount))
}

func TestTradeInGating(t *testing.T) {
	base := d("25000")

	withStrays := NewAdjustments()
	withStrays.HasTradeIn = false
	withStrays.TradeInValue = d("9999")
	withStrays.TradeInBonus = d("500")
	withStrays.TradeInHandlingFee = d("120")

	enabledAtZero := NewAdjustments()
	enabledAtZero.HasTradeIn = true

	r1 := ComputeFinalPrice(base, withStrays)
	r2 := ComputeFinalPrice(base, enabledAtZero)
	assert.True(t, r1.FinalPrice.Equal(r2.FinalPrice),
		"stray trade-in values leaked: %s vs %s", r1.FinalPrice, r2.FinalPrice)
	assert.True(t, r1.Breakdown.TradeInValue.IsZero())
}

func TestNonNegativity(t *testing.T) {
	adj := NewAdjustments()
	adj.Discount = d("50000")
	adj.DepositAmount = d("10000")

	res := ComputeFinalPrice(d("20000"), adj)
	assert.True(t, res.FinalPrice.IsZero(), "got %s", res.FinalPrice)
	assert.True(t, res.Clamped)
}

func TestClampIsSilent(t *testing.T) {
	// A clamped result is still a result; the flag is advisory only.
	adj := NewAdjustments()
	adj.Discount = d("1000000")
	res := ComputeFinalPrice(d("100"), adj)
	require.True(t, res.Clamped)
	assert.True(t, res.FinalPrice.GreaterThanOrEqual(decimal.Zero))
}

func TestRoundingDirection(t *testing.T) {
	// rawFinal = 99.001 must round up to 99.01, never to 99.00.
	adj := Adjustments{WarrantyTerm: enum.WarrantyStandard24}
	res := ComputeFinalPrice(d("99.001"), adj)
	assert.Equal(t, "99.01", res.FinalPrice.StringFixed(2))

	res = ComputeFinalPrice(d("99.0000001"), adj)
	assert.Equal(t, "99.01", res.FinalPrice.StringFixed(2))

	res = ComputeFinalPrice(d("99.00"), adj)
	assert.Equal(t, "99.00", res.FinalPrice.StringFixed(2))
}

func TestWarrantySurcharge(t *testing.T) {
	base := d("28500")

	standard := NewAdjustments()
	extended := NewAdjustments()
	extended.WarrantyTerm = enum.WarrantyExtended84

	diff := ComputeFinalPrice(base, extended).FinalPrice.
		Sub(ComputeFinalPrice(base, standard).FinalPrice)
	assert.True(t, diff.Equal(ExtendedWarrantySurcharge), "got %s", diff)

	// Under the reduced regime both totals are ceiling-rounded, so the
	// difference may carry at most one cent of rounding.
	standard.ReducedVAT = true
	extended.ReducedVAT = true
	diff = ComputeFinalPrice(base, extended).FinalPrice.
		Sub(ComputeFinalPrice(base, standard).FinalPrice)
	want := AdjustForVAT(ExtendedWarrantySurcharge, true)
	assert.True(t, diff.Sub(want).Abs().LessThanOrEqual(d("0.01")),
		"got %s want %s", diff, want)
}

func TestUnknownWarrantyTermFailsClosed(t *testing.T) {
	adj := NewAdjustments()
	adj.WarrantyTerm = enum.WarrantyTerm("extended999")
	res := ComputeFinalPrice(d("28500"), adj)
	assert.Equal(t, "28900", res.FinalPrice.String(), "unknown term must not add the surcharge")
}

func TestNegativeInputsCoercedToZero(t *testing.T) {
	adj := NewAdjustments()
	adj.Discount = d("-500")
	adj.SafetyKit = d("-250")
	adj.DepositAmount = d("-1000")

	res := ComputeFinalPrice(d("-100"), adj)
	clean := ComputeFinalPrice(decimal.Zero, NewAdjustments())
	assert.True(t, res.FinalPrice.Equal(clean.FinalPrice))
}

func TestAmountFromFloatCoercion(t *testing.T) {
	assert.True(t, AmountFromFloat(math.NaN()).IsZero())
	assert.True(t, AmountFromFloat(math.Inf(1)).IsZero())
	assert.True(t, AmountFromFloat(math.Inf(-1)).IsZero())
	assert.True(t, AmountFromFloat(-42.5).IsZero())
	assert.Equal(t, "123.45", AmountFromFloat(123.45).StringFixed(2))
}

func TestAdjustForVATIdentityUnderStandardRegime(t *testing.T) {
	amount := d("1234.56")
	assert.True(t, AdjustForVAT(amount, false).Equal(amount))
}

func TestDeterminism(t *testing.T) {
	adj := NewAdjustments()
	adj.ReducedVAT = true
	adj.Discount = d("1250.33")
	adj.HasTradeIn = true
	adj.TradeInValue = d("7400")

	first := ComputeFinalPrice(d("31999.99"), adj)
	for i := 0; i < 100; i++ {
		again := ComputeFinalPrice(d("31999.99"), adj)
		require.True(t, first.FinalPrice.Equal(again.FinalPrice))
	}
}
