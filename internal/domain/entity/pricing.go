package entity

// PricingInputs is the immutable value record fed into the pricing
// engine. All fields are plain numbers; ratio fields are conventionally
// in [0,1] but nothing here enforces that — the engine is total over
// its numeric domain and out-of-range values simply propagate.
type PricingInputs struct {
	FilamentUsedG float64 `json:"filament_used_g"`
	PurgeWasteG   float64 `json:"purge_waste_g"`
	PrintTimeH    float64 `json:"print_time_h"`

	FilamentEURPerKg     float64 `json:"filament_eur_per_kg"`
	ElectricityEURPerKWh float64 `json:"electricity_eur_per_kwh"`
	AvgPowerW            float64 `json:"avg_power_w"`

	DepreciationEURPerH float64 `json:"depreciation_eur_per_h"`
	ConsumablesRatio    float64 `json:"consumables_ratio"`

	LaborHours       float64 `json:"labor_hours"`
	LaborRateEURPerH float64 `json:"labor_rate_eur_per_h"`

	RiskRatio           float64 `json:"risk_ratio"`
	MarkupRatio         float64 `json:"markup_ratio"`
	FriendDiscountRatio float64 `json:"friend_discount_ratio"`

	PackagingShippingEUR float64 `json:"packaging_shipping_eur"`
	MinFeeEUR            float64 `json:"min_fee_eur"`
}

// DefaultInputs returns a PricingInputs with the standard workshop
// defaults. The two required quantities (filament mass and print time)
// are left at zero; the input source is responsible for filling them.
func DefaultInputs() PricingInputs {
	return PricingInputs{
		FilamentEURPerKg:     22.0,
		ElectricityEURPerKWh: 0.25,
		AvgPowerW:            80.0,
		DepreciationEURPerH:  0.50,
		ConsumablesRatio:     0.05,
		LaborHours:           1.0,
		LaborRateEURPerH:     30.0,
		RiskRatio:            0.10,
		MarkupRatio:          0.0,
		FriendDiscountRatio:  0.20,
		PackagingShippingEUR: 0.0,
		MinFeeEUR:            10.0,
	}
}

// Meta carries the auxiliary figures shown next to the breakdown but
// not priced into it: energy drawn in kWh (3 decimals) and total
// filament mass including purge waste (1 decimal).
type Meta struct {
	KWh            float64 `json:"kwh"`
	FilamentTotalG float64 `json:"filament_total_g"`
}
