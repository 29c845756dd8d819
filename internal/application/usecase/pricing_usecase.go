package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/dkoester/printpricer-go/internal/domain/entity"
	"github.com/dkoester/printpricer-go/internal/domain/pricing"
	"github.com/dkoester/printpricer-go/internal/domain/repository"
	"github.com/dkoester/printpricer-go/internal/logging"
	"github.com/dkoester/printpricer-go/internal/shared/types"
)

// PricingUseCase drives one computation: resolve the inputs, run the
// engine, present the breakdown and write the requested exports.
type PricingUseCase struct {
	exportRepo repository.ExportRepository
	configRepo repository.ConfigRepository
	console    types.ConsoleInterface
}

// NewPricingUseCase creates a new pricing use case.
func NewPricingUseCase(
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *PricingUseCase {
	return &PricingUseCase{
		exportRepo: exportRepo,
		configRepo: configRepo,
		console:    console,
	}
}

// ResolveInputs materializes the PricingInputs for this run. Sources
// are merged lowest precedence first: built-in defaults, environment,
// config-file defaults, preset, explicit flags. Interactive runs skip
// the required-field check because the prompts collect those values.
func (uc *PricingUseCase) ResolveInputs(args *types.CLIArgs, env types.EnvSettings) (entity.PricingInputs, *types.Config, error) {
	merged := env.Overrides()

	var cfg *types.Config
	if args.ConfigFile != "" {
		loaded, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return entity.PricingInputs{}, nil, err
		}
		cfg = loaded
		if cfg.Defaults != nil {
			merged = merged.Merge(*cfg.Defaults)
		}
	}

	if args.Preset != "" {
		name := strings.ToLower(args.Preset)
		preset, ok := entity.BuiltinPresets()[name]
		if cfg != nil {
			// Config-file presets shadow the built-in ones.
			if p, found := cfg.Presets[name]; found {
				preset, ok = p, true
			}
		}
		if !ok {
			return entity.PricingInputs{}, nil, fmt.Errorf("%w: %s", types.ErrUnknownPreset, args.Preset)
		}
		logging.Logger.Debug("applying preset", zap.String("preset", name))
		merged = merged.Merge(preset)
	}

	merged = merged.Merge(args.Overrides)

	if !args.Interactive {
		if merged.FilamentUsedG == nil {
			return entity.PricingInputs{}, nil, types.ErrMissingFilament
		}
		if merged.PrintTimeH == nil {
			return entity.PricingInputs{}, nil, types.ErrMissingPrintTime
		}
	}

	return merged.Apply(entity.DefaultInputs()), cfg, nil
}

// RunPricing computes and presents the price for the given inputs.
func (uc *PricingUseCase) RunPricing(
	ctx context.Context,
	inputs entity.PricingInputs,
	args *types.CLIArgs,
	cfg *types.Config,
	env types.EnvSettings,
) error {
	// The engine is instantaneous; the spinner is feedback, not work.
	status := uc.console.Status("Calculating price...")

	breakdown, meta := pricing.Compute(inputs)

	price := breakdown.RecommendedPrice()
	if math.IsNaN(price) || math.IsInf(price, 0) {
		status.Stop()
		return types.ErrNonFiniteResult
	}

	quote := entity.NewQuote(inputs, breakdown, meta)
	status.Stop()

	logging.Logger.Debug("computed quote",
		zap.String("quote_id", quote.ID),
		zap.Float64("recommended_price", price),
		zap.Float64("kwh", meta.KWh),
		zap.Float64("filament_total_g", meta.FilamentTotalG),
	)

	uc.displayQuote(quote)
	uc.exportQuote(quote, args, cfg, env)

	return nil
}

// displayQuote renders the summary cards, the breakdown table, the
// cost-share bars and the copyable note line.
func (uc *PricingUseCase) displayQuote(quote entity.Quote) {
	uc.console.DisplaySummaryCards([]types.SummaryCard{
		{Title: "Empfohlener Preis", Value: fmt.Sprintf("€ %.2f", quote.Breakdown.RecommendedPrice()), Subtitle: "inkl. Mindestbetrag & Rabatt"},
		{Title: "Filament gesamt", Value: fmt.Sprintf("%.1f g", quote.Meta.FilamentTotalG), Subtitle: "inkl. Purge"},
		{Title: "Energie", Value: fmt.Sprintf("%.3f kWh", quote.Meta.KWh)},
		{Title: "Druckzeit", Value: fmt.Sprintf("%.1f h", quote.Inputs.PrintTimeH)},
	})

	uc.console.Print(uc.createBreakdownTable(quote.Breakdown).Render())
	uc.console.DisplayCostShareBars(uc.costShares(quote.Breakdown))
	uc.console.Println()
	uc.console.LogInfo("Note for sharing:")
	uc.console.Println("  " + quote.Note())
}

// createBreakdownTable builds the Posten/€ table, with the friend
// discount shown as a negative amount.
func (uc *PricingUseCase) createBreakdownTable(breakdown entity.Breakdown) types.TableInterface {
	table := uc.console.CreateTable()
	table.AddColumn("Posten")
	table.AddColumn("€")

	for _, line := range breakdown {
		amount := line.Amount
		if line.Label == entity.LineFriendDiscount {
			amount = -amount
		}
		table.AddRow(line.Label, fmt.Sprintf("%.2f", amount))
	}

	return table
}

// costShares returns the six primary cost lines together with the
// subtotal they are measured against.
func (uc *PricingUseCase) costShares(breakdown entity.Breakdown) ([]types.CostShare, float64) {
	primary := []string{
		entity.LineMaterial,
		entity.LineEnergy,
		entity.LineMachine,
		entity.LineLabor,
		entity.LineConsumables,
		entity.LineRisk,
	}

	shares := make([]types.CostShare, 0, len(primary))
	for _, label := range primary {
		amount, _ := breakdown.Get(label)
		shares = append(shares, types.CostShare{Label: label, Amount: amount})
	}

	subtotal, _ := breakdown.Get(entity.LineSubtotal)
	return shares, subtotal
}

// exportQuote writes the requested report files. Export failures are
// reported but do not fail the run; the quote was already displayed.
func (uc *PricingUseCase) exportQuote(quote entity.Quote, args *types.CLIArgs, cfg *types.Config, env types.EnvSettings) {
	reportName := args.ReportName
	reportTypes := args.ReportType
	dir := args.Dir

	if cfg != nil {
		if reportName == "" {
			reportName = cfg.ReportName
		}
		if len(reportTypes) == 0 {
			reportTypes = cfg.ReportType
		}
		if dir == "" {
			dir = cfg.Dir
		}
	}
	if dir == "" {
		dir = env.OutputDir
	}
	if len(reportTypes) == 0 {
		reportTypes = []string{"csv"}
	}

	if reportName == "" {
		return
	}

	for _, reportType := range reportTypes {
		switch reportType {
		case "csv":
			csvPath, err := uc.exportRepo.ExportToCSV(quote, reportName, dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to CSV: %s", csvPath)
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportToJSON(quote, reportName, dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportToPDF(quote, reportName, dir)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", pdfPath)
			}
		default:
			uc.console.LogWarning("Unknown report type '%s' (expected csv, json, or pdf)", reportType)
		}
	}
}
