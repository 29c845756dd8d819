package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/dkoester/printpricer-go/internal/adapter/driven/config"
	"github.com/dkoester/printpricer-go/internal/adapter/driven/export"
	"github.com/dkoester/printpricer-go/internal/adapter/driving/cli"
	"github.com/dkoester/printpricer-go/internal/application/usecase"
	"github.com/dkoester/printpricer-go/pkg/console"
	"github.com/dkoester/printpricer-go/pkg/version"
)

func main() {
	// Optional .env for workshop defaults; absence is fine.
	_ = godotenv.Load()

	app := cli.NewCLIApp(version.Version)

	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	pricingUseCase := usecase.NewPricingUseCase(
		exportRepo,
		configRepo,
		consoleImpl,
	)

	app.SetPricingUseCase(pricingUseCase)

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
