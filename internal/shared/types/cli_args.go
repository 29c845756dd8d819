package types

import "github.com/dkoester/printpricer-go/internal/domain/entity"

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile  string
	Preset      string
	Interactive bool
	ReportName  string
	ReportType  []string
	Dir         string
	NoColor     bool
	Verbose     bool

	// Overrides holds exactly the input fields the user set via flags;
	// untouched flags stay nil so lower-precedence sources shine
	// through.
	Overrides entity.InputOverrides
}
