package cli

import (
	"context"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/dkoester/printpricer-go/internal/application/usecase"
	"github.com/dkoester/printpricer-go/internal/domain/entity"
	"github.com/dkoester/printpricer-go/internal/logging"
	"github.com/dkoester/printpricer-go/internal/shared/types"
	"github.com/dkoester/printpricer-go/pkg/version"
)

// inputFlags maps each pricing input field to its flag name; used to
// translate only the flags the user actually set into overrides.
var inputFlags = []struct {
	name  string
	usage string
	def   float64
	field func(o *entity.InputOverrides) **float64
}{
	{"filament-g", "Modeled filament mass in grams (required)", 0, func(o *entity.InputOverrides) **float64 { return &o.FilamentUsedG }},
	{"purge-g", "Purge/waste filament in grams (e.g. AMS color changes)", 0, func(o *entity.InputOverrides) **float64 { return &o.PurgeWasteG }},
	{"time-h", "Total print duration in hours (required)", 0, func(o *entity.InputOverrides) **float64 { return &o.PrintTimeH }},
	{"filament-price", "Filament price in €/kg", 22.0, func(o *entity.InputOverrides) **float64 { return &o.FilamentEURPerKg }},
	{"electricity-price", "Electricity price in €/kWh", 0.25, func(o *entity.InputOverrides) **float64 { return &o.ElectricityEURPerKWh }},
	{"power-w", "Average printer power draw in watts", 80, func(o *entity.InputOverrides) **float64 { return &o.AvgPowerW }},
	{"depreciation", "Machine wear/depreciation in €/h", 0.50, func(o *entity.InputOverrides) **float64 { return &o.DepreciationEURPerH }},
	{"consumables-ratio", "Consumables fraction of material+energy", 0.05, func(o *entity.InputOverrides) **float64 { return &o.ConsumablesRatio }},
	{"labor-h", "Human labor time in hours", 1.0, func(o *entity.InputOverrides) **float64 { return &o.LaborHours }},
	{"labor-rate", "Labor rate in €/h", 30.0, func(o *entity.InputOverrides) **float64 { return &o.LaborRateEURPerH }},
	{"risk-ratio", "Risk buffer fraction of material+energy+machine", 0.10, func(o *entity.InputOverrides) **float64 { return &o.RiskRatio }},
	{"markup-ratio", "Profit margin fraction on the subtotal", 0.0, func(o *entity.InputOverrides) **float64 { return &o.MarkupRatio }},
	{"friend-discount", "Discount fraction applied after markup", 0.20, func(o *entity.InputOverrides) **float64 { return &o.FriendDiscountRatio }},
	{"packaging", "Flat packaging/shipping add-on in €", 0.0, func(o *entity.InputOverrides) **float64 { return &o.PackagingShippingEUR }},
	{"min-fee", "Price floor in €", 10.0, func(o *entity.InputOverrides) **float64 { return &o.MinFeeEUR }},
}

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd        *cobra.Command
	pricingUseCase *usecase.PricingUseCase
	version        string
}

// NewCLIApp creates a new CLI application.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:   "printpricer",
		Short: "3D print price calculator CLI",
		Long: `printpricer computes a recommended sale price for a 3D-printed item
from material, energy, machine wear, labor, risk buffer, markup,
discount and shipping, and exports the cost breakdown as CSV, JSON or
PDF.

Examples:
  printpricer --filament-g 100 --time-h 6
  printpricer --filament-g 250 --time-h 12 --preset petg --report-name quote --report-type csv,json
  printpricer --interactive`,
		Version: formattedVersion,
		RunE:    app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "printpricer version: %s\n" .Version}}`)

	for _, flag := range inputFlags {
		rootCmd.PersistentFlags().Float64(flag.name, flag.def, flag.usage)
	}

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().String("preset", "", "Material preset to apply (pla, petg, abs, or one from the config file)")
	rootCmd.PersistentFlags().BoolP("interactive", "i", false, "Prompt for every input value")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Base name for the report files (without extension); no reports are written without it")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", nil, "Report types to write: csv, json, pdf (default csv)")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct. Only
// input flags the user changed become overrides.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	flags := app.rootCmd.Flags()

	configFile, _ := flags.GetString("config-file")
	preset, _ := flags.GetString("preset")
	interactive, _ := flags.GetBool("interactive")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")
	noColor, _ := flags.GetBool("no-color")
	verbose, _ := flags.GetBool("verbose")

	if dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	var overrides entity.InputOverrides
	for _, flag := range inputFlags {
		if flags.Changed(flag.name) {
			value, err := flags.GetFloat64(flag.name)
			if err != nil {
				return nil, err
			}
			v := value
			*flag.field(&overrides) = &v
		}
	}

	args := &types.CLIArgs{
		ConfigFile:  configFile,
		Preset:      preset,
		Interactive: interactive,
		ReportName:  reportName,
		ReportType:  reportType,
		Dir:         dir,
		NoColor:     noColor,
		Verbose:     verbose,
		Overrides:   overrides,
	}

	return args, nil
}

// runCommand is the main entry point for the CLI command.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	if cliArgs.NoColor {
		pterm.DisableColor()
	}

	logging.Initialize(cliArgs.Verbose)
	defer logging.Sync()

	displayWelcomeBanner(app.version)

	go version.CheckLatestVersion(app.version)

	env, err := types.LoadEnvSettings()
	if err != nil {
		return err
	}

	inputs, cfg, err := app.pricingUseCase.ResolveInputs(cliArgs, env)
	if err != nil {
		return err
	}

	if cliArgs.Interactive {
		inputs = promptInputs(inputs)
	}

	ctx := context.Background()
	return app.pricingUseCase.RunPricing(ctx, inputs, cliArgs, cfg, env)
}

// SetPricingUseCase sets the pricing use case for the CLI app.
func (app *CLIApp) SetPricingUseCase(useCase *usecase.PricingUseCase) {
	app.pricingUseCase = useCase
}
