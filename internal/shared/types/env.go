package types

import (
	"github.com/caarlos0/env/v11"

	"github.com/dkoester/printpricer-go/internal/domain/entity"
)

// EnvSettings are workshop-level defaults picked up from the
// environment (or a .env file loaded at startup). Pointer fields stay
// nil when the variable is unset, so they only override what they
// actually pin.
type EnvSettings struct {
	FilamentEURPerKg     *float64 `env:"PRINTPRICER_FILAMENT_PRICE"`
	ElectricityEURPerKWh *float64 `env:"PRINTPRICER_ELECTRICITY_PRICE"`
	LaborRateEURPerH     *float64 `env:"PRINTPRICER_LABOR_RATE"`
	OutputDir            string   `env:"PRINTPRICER_OUTPUT_DIR"`
}

// LoadEnvSettings parses the PRINTPRICER_* environment variables.
func LoadEnvSettings() (EnvSettings, error) {
	var settings EnvSettings
	if err := env.Parse(&settings); err != nil {
		return EnvSettings{}, err
	}
	return settings, nil
}

// Overrides converts the pricing-relevant settings into input
// overrides for the resolution chain.
func (s EnvSettings) Overrides() entity.InputOverrides {
	return entity.InputOverrides{
		FilamentEURPerKg:     s.FilamentEURPerKg,
		ElectricityEURPerKWh: s.ElectricityEURPerKWh,
		LaborRateEURPerH:     s.LaborRateEURPerH,
	}
}
