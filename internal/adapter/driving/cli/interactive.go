package cli

import (
	"strconv"

	"github.com/pterm/pterm"

	"github.com/dkoester/printpricer-go/internal/domain/entity"
)

// promptInputs walks through every input field with the currently
// resolved value preloaded as the default, so presets, config and env
// still shine through as starting points.
func promptInputs(in entity.PricingInputs) entity.PricingInputs {
	prompts := []struct {
		label string
		field *float64
	}{
		{"Filamentverbrauch (g)", &in.FilamentUsedG},
		{"Purge/Abfall (g)", &in.PurgeWasteG},
		{"Druckzeit (h)", &in.PrintTimeH},
		{"Filament €/kg", &in.FilamentEURPerKg},
		{"Strompreis €/kWh", &in.ElectricityEURPerKWh},
		{"Ø Leistung (W)", &in.AvgPowerW},
		{"Verschleiß/Abschreibung €/h", &in.DepreciationEURPerH},
		{"Verbrauchsmaterial-Anteil", &in.ConsumablesRatio},
		{"Arbeitszeit (h)", &in.LaborHours},
		{"Stundensatz €/h", &in.LaborRateEURPerH},
		{"Risiko-Anteil", &in.RiskRatio},
		{"Marge/Aufschlag", &in.MarkupRatio},
		{"Freundschaftsrabatt", &in.FriendDiscountRatio},
		{"Verpackung/Versand (€)", &in.PackagingShippingEUR},
		{"Mindestbetrag (€)", &in.MinFeeEUR},
	}

	for _, p := range prompts {
		*p.field = promptFloat(p.label, *p.field)
	}

	return in
}

// promptFloat asks for one number; on unparseable input it warns and
// keeps the default.
func promptFloat(label string, def float64) float64 {
	defText := strconv.FormatFloat(def, 'f', -1, 64)

	text, err := pterm.DefaultInteractiveTextInput.
		WithDefaultValue(defText).
		Show(label)
	if err != nil {
		return def
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		pterm.Warning.Printfln("'%s' is not a number, keeping %s", text, defText)
		return def
	}

	return value
}
