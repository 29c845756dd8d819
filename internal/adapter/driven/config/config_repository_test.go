package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkoester/printpricer-go/internal/adapter/driven/config"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigFile_TOML(t *testing.T) {
	path := writeFile(t, "printpricer.toml", `
report_name = "quote"
report_type = ["csv", "pdf"]
dir = "/tmp/reports"

[defaults]
labor_rate_eur_per_h = 45.0
min_fee_eur = 15.0

[presets.tpu]
filament_eur_per_kg = 35.0
risk_ratio = 0.2
`)

	repo := config.NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)

	require.Equal(t, "quote", cfg.ReportName)
	require.Equal(t, []string{"csv", "pdf"}, cfg.ReportType)
	require.Equal(t, "/tmp/reports", cfg.Dir)

	require.NotNil(t, cfg.Defaults)
	require.Equal(t, 45.0, *cfg.Defaults.LaborRateEURPerH)
	require.Equal(t, 15.0, *cfg.Defaults.MinFeeEUR)
	require.Nil(t, cfg.Defaults.FilamentEURPerKg)

	tpu, ok := cfg.Presets["tpu"]
	require.True(t, ok)
	require.Equal(t, 35.0, *tpu.FilamentEURPerKg)
	require.Equal(t, 0.2, *tpu.RiskRatio)
}

func TestLoadConfigFile_YAML(t *testing.T) {
	path := writeFile(t, "printpricer.yaml", `
report_name: quote
defaults:
  electricity_eur_per_kwh: 0.32
presets:
  nylon:
    filament_eur_per_kg: 40.0
`)

	repo := config.NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)

	require.Equal(t, "quote", cfg.ReportName)
	require.Equal(t, 0.32, *cfg.Defaults.ElectricityEURPerKWh)
	require.Equal(t, 40.0, *cfg.Presets["nylon"].FilamentEURPerKg)
}

func TestLoadConfigFile_JSON(t *testing.T) {
	path := writeFile(t, "printpricer.json", `{
  "report_name": "quote",
  "defaults": {"markup_ratio": 0.1},
  "presets": {"pla": {"filament_eur_per_kg": 19.5}}
}`)

	repo := config.NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)

	require.Equal(t, 0.1, *cfg.Defaults.MarkupRatio)
	require.Equal(t, 19.5, *cfg.Presets["pla"].FilamentEURPerKg)
}

func TestLoadConfigFile_Errors(t *testing.T) {
	repo := config.NewConfigRepository()

	t.Run("missing file", func(t *testing.T) {
		_, err := repo.LoadConfigFile("/does/not/exist.toml")
		require.Error(t, err)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := repo.LoadConfigFile(t.TempDir())
		require.Error(t, err)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeFile(t, "config.ini", "report_name=quote")
		_, err := repo.LoadConfigFile(path)
		require.ErrorContains(t, err, "unsupported config file format")
	})

	t.Run("malformed toml", func(t *testing.T) {
		path := writeFile(t, "broken.toml", "report_name = [unclosed")
		_, err := repo.LoadConfigFile(path)
		require.Error(t, err)
	})
}
