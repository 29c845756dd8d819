package pricing_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkoester/printpricer-go/internal/domain/entity"
	"github.com/dkoester/printpricer-go/internal/domain/pricing"
)

// referenceInputs is the worked example used across the test file:
// 100 g PLA, 6 h print, all other values at their defaults.
func referenceInputs() entity.PricingInputs {
	in := entity.DefaultInputs()
	in.FilamentUsedG = 100
	in.PrintTimeH = 6.0
	return in
}

func TestCompute_ReferenceScenario(t *testing.T) {
	breakdown, meta := pricing.Compute(referenceInputs())

	expected := []entity.CostLine{
		{Label: entity.LineMaterial, Amount: 2.20},
		{Label: entity.LineEnergy, Amount: 0.12},
		{Label: entity.LineMachine, Amount: 3.00},
		{Label: entity.LineLabor, Amount: 30.00},
		{Label: entity.LineConsumables, Amount: 0.12},
		{Label: entity.LineRisk, Amount: 0.53},
		{Label: entity.LineSubtotal, Amount: 35.97},
		{Label: entity.LineMarkup, Amount: 0.00},
		{Label: entity.LinePreDiscount, Amount: 35.97},
		{Label: entity.LineFriendDiscount, Amount: 7.19},
		{Label: entity.LinePackaging, Amount: 0.00},
		// 35.968 * 0.8 = 28.7744 at full precision; the rounded lines
		// 35.97 - 7.19 would give 28.78, but lines are never re-summed.
		{Label: entity.LineRecommended, Amount: 28.77},
	}

	require.Equal(t, entity.Breakdown(expected), breakdown)
	require.Equal(t, entity.Meta{KWh: 0.48, FilamentTotalG: 100.0}, meta)
}

func TestCompute_ZeroBaseline(t *testing.T) {
	in := entity.PricingInputs{MinFeeEUR: 10.0}

	breakdown, meta := pricing.Compute(in)

	for _, line := range breakdown {
		if line.Label == entity.LineRecommended {
			require.Equal(t, 10.0, line.Amount)
			continue
		}
		require.Zerof(t, line.Amount, "line %s", line.Label)
	}
	require.Equal(t, entity.Meta{}, meta)
}

func TestCompute_DiscountDrivenFloor(t *testing.T) {
	in := referenceInputs()
	in.FriendDiscountRatio = 1.0

	breakdown, _ := pricing.Compute(in)

	require.Equal(t, in.MinFeeEUR, breakdown.RecommendedPrice())
}

func TestCompute_PriceNeverBelowMinFee(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*entity.PricingInputs)
	}{
		{"tiny print", func(in *entity.PricingInputs) {
			in.FilamentUsedG = 1
			in.PrintTimeH = 0.1
			in.LaborHours = 0
		}},
		{"full discount with shipping", func(in *entity.PricingInputs) {
			in.FriendDiscountRatio = 1.0
			in.PackagingShippingEUR = 3.0
		}},
		{"zero everything", func(in *entity.PricingInputs) {
			*in = entity.PricingInputs{MinFeeEUR: in.MinFeeEUR}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := referenceInputs()
			tt.mutate(&in)

			breakdown, _ := pricing.Compute(in)

			require.GreaterOrEqual(t, breakdown.RecommendedPrice(), in.MinFeeEUR)
		})
	}
}

func TestCompute_MetaRounding(t *testing.T) {
	in := referenceInputs()
	in.PurgeWasteG = 12.34
	in.AvgPowerW = 77.7
	in.PrintTimeH = 3.3

	_, meta := pricing.Compute(in)

	require.Equal(t, math.Round(77.7*3.3)/1000, meta.KWh)
	require.Equal(t, 112.3, meta.FilamentTotalG)
}

func TestCompute_MonotonicInFilamentMass(t *testing.T) {
	prevMaterial := math.Inf(-1)
	prevSubtotal := math.Inf(-1)
	prevPrice := math.Inf(-1)

	for grams := 0.0; grams <= 2000; grams += 25 {
		in := referenceInputs()
		in.FilamentUsedG = grams

		breakdown, _ := pricing.Compute(in)

		material, ok := breakdown.Get(entity.LineMaterial)
		require.True(t, ok)
		subtotal, ok := breakdown.Get(entity.LineSubtotal)
		require.True(t, ok)
		price := breakdown.RecommendedPrice()

		require.GreaterOrEqualf(t, material, prevMaterial, "material at %v g", grams)
		require.GreaterOrEqualf(t, subtotal, prevSubtotal, "subtotal at %v g", grams)
		require.GreaterOrEqualf(t, price, prevPrice, "price at %v g", grams)

		prevMaterial, prevSubtotal, prevPrice = material, subtotal, price
	}
}

func TestCompute_Idempotent(t *testing.T) {
	in := referenceInputs()
	in.PurgeWasteG = 17.5
	in.MarkupRatio = 0.15

	breakdown1, meta1 := pricing.Compute(in)
	breakdown2, meta2 := pricing.Compute(in)

	require.Equal(t, breakdown1, breakdown2)
	require.Equal(t, meta1, meta2)
}

func TestCompute_NegativeInputsPropagate(t *testing.T) {
	in := referenceInputs()
	in.LaborHours = -2

	breakdown, _ := pricing.Compute(in)

	labor, _ := breakdown.Get(entity.LineLabor)
	require.Equal(t, -60.0, labor)
	// The floor still holds even when a line goes negative.
	require.GreaterOrEqual(t, breakdown.RecommendedPrice(), in.MinFeeEUR)
}

func TestCompute_NonFiniteInputsPropagate(t *testing.T) {
	in := referenceInputs()
	in.FilamentEURPerKg = math.NaN()

	breakdown, _ := pricing.Compute(in)

	require.True(t, math.IsNaN(breakdown.RecommendedPrice()))
}

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		expected float64
	}{
		{"plain value", 2.2, 2.20},
		{"round down", 0.116, 0.12},
		{"half cent rounds up", 0.005, 0.01},
		{"binary boundary 1.005", 1.005, 1.01},
		{"binary boundary 2.675", 2.675, 2.68},
		{"full precision total", 28.7744, 28.77},
		{"zero", 0, 0},
		{"negative", -60.0, -60.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, pricing.RoundMoney(tt.in))
		})
	}
}
