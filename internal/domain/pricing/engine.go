// Package pricing holds the pricing engine: a pure mapping from a
// PricingInputs record to the ordered cost breakdown and its meta
// figures. It performs no validation and no I/O; whatever numbers come
// in flow through the arithmetic, and only the final price is floored.
package pricing

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/dkoester/printpricer-go/internal/domain/entity"
)

// moneyEpsilon compensates binary float representation error before
// rounding, so an amount computed as 0.1249999... still lands on 0.12
// and an exact half-cent rounds up instead of down.
const moneyEpsilon = 1e-9

// RoundMoney rounds a euro amount to cents, half away from zero.
// NaN and ±Inf pass through unrounded; callers surface those as a
// computation error instead of a quote.
func RoundMoney(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	v, _ := decimal.NewFromFloat(x + moneyEpsilon).Round(2).Float64()
	return v
}

// Compute derives the full cost breakdown for one print job.
//
// Each quantity is derived from the full-precision values before it;
// every line is then rounded independently for display. The rounded
// lines are deliberately not re-summed, so they may differ from the
// rounded totals by a cent — consumers must not assume exact summation.
func Compute(in entity.PricingInputs) (entity.Breakdown, entity.Meta) {
	gramsTotal := in.FilamentUsedG + in.PurgeWasteG

	material := (gramsTotal / 1000.0) * in.FilamentEURPerKg
	kwh := (in.AvgPowerW * in.PrintTimeH) / 1000.0
	energy := kwh * in.ElectricityEURPerKWh
	machine := in.PrintTimeH * in.DepreciationEURPerH
	labor := in.LaborHours * in.LaborRateEURPerH

	consumables := (material + energy) * in.ConsumablesRatio
	riskBuffer := (material + energy + machine) * in.RiskRatio

	subtotal := material + energy + machine + labor + consumables + riskBuffer
	markup := subtotal * in.MarkupRatio
	preDiscountTotal := subtotal + markup
	friendDiscount := preDiscountTotal * in.FriendDiscountRatio
	total := preDiscountTotal - friendDiscount + in.PackagingShippingEUR

	// Price floor: never quote below the minimum fee.
	finalTotal := math.Max(total, in.MinFeeEUR)

	breakdown := entity.Breakdown{
		{Label: entity.LineMaterial, Amount: RoundMoney(material)},
		{Label: entity.LineEnergy, Amount: RoundMoney(energy)},
		{Label: entity.LineMachine, Amount: RoundMoney(machine)},
		{Label: entity.LineLabor, Amount: RoundMoney(labor)},
		{Label: entity.LineConsumables, Amount: RoundMoney(consumables)},
		{Label: entity.LineRisk, Amount: RoundMoney(riskBuffer)},
		{Label: entity.LineSubtotal, Amount: RoundMoney(subtotal)},
		{Label: entity.LineMarkup, Amount: RoundMoney(markup)},
		{Label: entity.LinePreDiscount, Amount: RoundMoney(preDiscountTotal)},
		{Label: entity.LineFriendDiscount, Amount: RoundMoney(friendDiscount)},
		{Label: entity.LinePackaging, Amount: RoundMoney(in.PackagingShippingEUR)},
		{Label: entity.LineRecommended, Amount: RoundMoney(finalTotal)},
	}

	// Meta figures are informational, not currency: plain rounding,
	// no epsilon.
	meta := entity.Meta{
		KWh:            math.Round(kwh*1000) / 1000,
		FilamentTotalG: math.Round(gramsTotal*10) / 10,
	}

	return breakdown, meta
}
