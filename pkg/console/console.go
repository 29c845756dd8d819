package console

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/dkoester/printpricer-go/internal/shared/types"
)

// Console is a pterm-backed implementation of the ConsoleInterface.
type Console struct{}

// NewConsole creates a new Console.
func NewConsole() *Console {
	return &Console{}
}

// Print prints to the console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf prints a formatted string to the console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println prints to the console with a trailing newline.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo logs an informational message.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning logs a warning message.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError logs an error message.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess logs a success message.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// statusHandle is an implementation of the StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status starts a status spinner with the given message.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Update changes the status message.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop stops the status spinner.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// Table is an implementation of the TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable creates a new table.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adds a column to the table.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cells ...interface{}) {
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renders the table as a string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// DisplaySummaryCards renders the headline metrics as a row of boxed
// panels above the breakdown table.
func (c *Console) DisplaySummaryCards(cards []types.SummaryCard) {
	row := make([]pterm.Panel, 0, len(cards))
	for _, card := range cards {
		body := pterm.FgLightWhite.Sprint(card.Value)
		if card.Subtitle != "" {
			body += "\n" + pterm.FgGray.Sprint(card.Subtitle)
		}
		box := pterm.DefaultBox.
			WithTitle(card.Title).
			WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).
			Sprint(body)
		row = append(row, pterm.Panel{Data: box})
	}
	_ = pterm.DefaultPanel.WithPanels(pterm.Panels{row}).Render()
}

// DisplayCostShareBars renders each cost line as a bar scaled to its
// share of the subtotal.
func (c *Console) DisplayCostShareBars(shares []types.CostShare, subtotal float64) {
	maxAmount := 0.0
	for _, s := range shares {
		if s.Amount > maxAmount {
			maxAmount = s.Amount
		}
	}

	if maxAmount <= 0 || subtotal <= 0 {
		pterm.Warning.Println("All cost lines are € 0.00")
		return
	}

	tableData := pterm.TableData{
		{"Posten", "€", "", "Anteil"},
	}

	for _, s := range shares {
		barLength := int((s.Amount / maxAmount) * 40)
		if barLength < 0 {
			barLength = 0
		}
		bar := pterm.FgBlue.Sprint(strings.Repeat("█", barLength))
		sharePercent := (s.Amount / subtotal) * 100.0

		tableData = append(tableData, []string{
			s.Label,
			fmt.Sprintf("%.2f", s.Amount),
			bar,
			fmt.Sprintf("%.1f%%", sharePercent),
		})
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.
		WithTitle("Kostenanteile").
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).
		Sprint(renderedTable)

	fmt.Println("\n" + panel)
}
