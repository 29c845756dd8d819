package types

import "github.com/dkoester/printpricer-go/internal/domain/entity"

// Config represents the application configuration that can be loaded
// from a TOML, YAML, or JSON file. Defaults overlay the built-in input
// defaults; Presets add to (or shadow) the built-in material presets.
type Config struct {
	ReportName string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir        string   `json:"dir" yaml:"dir" toml:"dir"`

	Defaults *entity.InputOverrides           `json:"defaults" yaml:"defaults" toml:"defaults"`
	Presets  map[string]entity.InputOverrides `json:"presets" yaml:"presets" toml:"presets"`
}
