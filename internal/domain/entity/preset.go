package entity

// InputOverrides is a partial PricingInputs: nil fields are "leave as
// is". Presets, config-file defaults, environment values and CLI flags
// are all expressed as overrides and merged in precedence order before
// the final PricingInputs is materialized.
type InputOverrides struct {
	FilamentUsedG *float64 `json:"filament_used_g,omitempty" yaml:"filament_used_g" toml:"filament_used_g"`
	PurgeWasteG   *float64 `json:"purge_waste_g,omitempty" yaml:"purge_waste_g" toml:"purge_waste_g"`
	PrintTimeH    *float64 `json:"print_time_h,omitempty" yaml:"print_time_h" toml:"print_time_h"`

	FilamentEURPerKg     *float64 `json:"filament_eur_per_kg,omitempty" yaml:"filament_eur_per_kg" toml:"filament_eur_per_kg"`
	ElectricityEURPerKWh *float64 `json:"electricity_eur_per_kwh,omitempty" yaml:"electricity_eur_per_kwh" toml:"electricity_eur_per_kwh"`
	AvgPowerW            *float64 `json:"avg_power_w,omitempty" yaml:"avg_power_w" toml:"avg_power_w"`

	DepreciationEURPerH *float64 `json:"depreciation_eur_per_h,omitempty" yaml:"depreciation_eur_per_h" toml:"depreciation_eur_per_h"`
	ConsumablesRatio    *float64 `json:"consumables_ratio,omitempty" yaml:"consumables_ratio" toml:"consumables_ratio"`

	LaborHours       *float64 `json:"labor_hours,omitempty" yaml:"labor_hours" toml:"labor_hours"`
	LaborRateEURPerH *float64 `json:"labor_rate_eur_per_h,omitempty" yaml:"labor_rate_eur_per_h" toml:"labor_rate_eur_per_h"`

	RiskRatio           *float64 `json:"risk_ratio,omitempty" yaml:"risk_ratio" toml:"risk_ratio"`
	MarkupRatio         *float64 `json:"markup_ratio,omitempty" yaml:"markup_ratio" toml:"markup_ratio"`
	FriendDiscountRatio *float64 `json:"friend_discount_ratio,omitempty" yaml:"friend_discount_ratio" toml:"friend_discount_ratio"`

	PackagingShippingEUR *float64 `json:"packaging_shipping_eur,omitempty" yaml:"packaging_shipping_eur" toml:"packaging_shipping_eur"`
	MinFeeEUR            *float64 `json:"min_fee_eur,omitempty" yaml:"min_fee_eur" toml:"min_fee_eur"`
}

// Merge overlays other on top of o: fields set in other win.
func (o InputOverrides) Merge(other InputOverrides) InputOverrides {
	merge := func(dst **float64, src *float64) {
		if src != nil {
			*dst = src
		}
	}
	merge(&o.FilamentUsedG, other.FilamentUsedG)
	merge(&o.PurgeWasteG, other.PurgeWasteG)
	merge(&o.PrintTimeH, other.PrintTimeH)
	merge(&o.FilamentEURPerKg, other.FilamentEURPerKg)
	merge(&o.ElectricityEURPerKWh, other.ElectricityEURPerKWh)
	merge(&o.AvgPowerW, other.AvgPowerW)
	merge(&o.DepreciationEURPerH, other.DepreciationEURPerH)
	merge(&o.ConsumablesRatio, other.ConsumablesRatio)
	merge(&o.LaborHours, other.LaborHours)
	merge(&o.LaborRateEURPerH, other.LaborRateEURPerH)
	merge(&o.RiskRatio, other.RiskRatio)
	merge(&o.MarkupRatio, other.MarkupRatio)
	merge(&o.FriendDiscountRatio, other.FriendDiscountRatio)
	merge(&o.PackagingShippingEUR, other.PackagingShippingEUR)
	merge(&o.MinFeeEUR, other.MinFeeEUR)
	return o
}

// Apply writes the set fields of o onto in and returns the result.
func (o InputOverrides) Apply(in PricingInputs) PricingInputs {
	apply := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&in.FilamentUsedG, o.FilamentUsedG)
	apply(&in.PurgeWasteG, o.PurgeWasteG)
	apply(&in.PrintTimeH, o.PrintTimeH)
	apply(&in.FilamentEURPerKg, o.FilamentEURPerKg)
	apply(&in.ElectricityEURPerKWh, o.ElectricityEURPerKWh)
	apply(&in.AvgPowerW, o.AvgPowerW)
	apply(&in.DepreciationEURPerH, o.DepreciationEURPerH)
	apply(&in.ConsumablesRatio, o.ConsumablesRatio)
	apply(&in.LaborHours, o.LaborHours)
	apply(&in.LaborRateEURPerH, o.LaborRateEURPerH)
	apply(&in.RiskRatio, o.RiskRatio)
	apply(&in.MarkupRatio, o.MarkupRatio)
	apply(&in.FriendDiscountRatio, o.FriendDiscountRatio)
	apply(&in.PackagingShippingEUR, o.PackagingShippingEUR)
	apply(&in.MinFeeEUR, o.MinFeeEUR)
	return in
}

func f(v float64) *float64 { return &v }

// BuiltinPresets returns the material presets shipped with the tool.
// A preset only pins the fields that differ between materials; every
// other value keeps whatever lower-precedence source set it.
func BuiltinPresets() map[string]InputOverrides {
	return map[string]InputOverrides{
		// PLA on a stock enclosed printer.
		"pla": {
			FilamentEURPerKg:     f(22.0),
			ElectricityEURPerKWh: f(0.25),
			AvgPowerW:            f(80),
			DepreciationEURPerH:  f(0.5),
			ConsumablesRatio:     f(0.05),
		},
		// PETG runs hotter and strings more.
		"petg": {
			FilamentEURPerKg: f(26.0),
			AvgPowerW:        f(90),
			RiskRatio:        f(0.12),
		},
		// ABS/ASA: heated chamber, higher failure rate.
		"abs": {
			FilamentEURPerKg: f(28.0),
			AvgPowerW:        f(110),
			RiskRatio:        f(0.18),
		},
	}
}
