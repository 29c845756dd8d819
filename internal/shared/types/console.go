package types

// ConsoleInterface defines the interface for terminal output.
type ConsoleInterface interface {
	Print(a ...interface{})
	Printf(format string, a ...interface{})
	Println(a ...interface{})

	LogInfo(format string, a ...interface{})
	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})

	Status(message string) StatusHandle

	CreateTable() TableInterface
	DisplaySummaryCards(cards []SummaryCard)
	DisplayCostShareBars(shares []CostShare, subtotal float64)
}

// StatusHandle is an interface for updating a status spinner.
type StatusHandle interface {
	Update(message string)
	Stop()
}

// TableInterface defines the interface for building and rendering tables.
type TableInterface interface {
	AddColumn(name string, options ...interface{})
	AddRow(cells ...interface{})
	Render() string
}

// SummaryCard is one headline metric shown above the breakdown table.
type SummaryCard struct {
	Title    string
	Value    string
	Subtitle string
}

// CostShare is one cost line of the share chart, kept as a plain pair
// so the console package does not depend on the domain entities.
type CostShare struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}
