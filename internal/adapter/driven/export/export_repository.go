package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/dkoester/printpricer-go/internal/domain/entity"
	"github.com/dkoester/printpricer-go/internal/domain/repository"
)

// ExportRepositoryImpl implements the ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository creates a new ExportRepository implementation.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// ExportToCSV writes the breakdown table: one row per cost line, in
// display order, with the friend discount carried as a negative
// amount just like the terminal table.
func (r *ExportRepositoryImpl) ExportToCSV(quote entity.Quote, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"Posten", "€"}); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, line := range quote.Breakdown {
		amount := line.Amount
		if line.Label == entity.LineFriendDiscount {
			amount = -amount
		}
		record := []string{line.Label, fmt.Sprintf("%.2f", amount)}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	return filepath.Abs(outputFilename)
}

// quoteDocument is the JSON export shape: a flat object of all input
// fields with the ordered breakdown nested under its own key and the
// meta figures at top level.
type quoteDocument struct {
	entity.PricingInputs
	Breakdown      entity.Breakdown `json:"breakdown"`
	KWh            float64          `json:"kwh"`
	FilamentTotalG float64          `json:"filament_total_g"`
}

func (r *ExportRepositoryImpl) ExportToJSON(quote entity.Quote, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	doc := quoteDocument{
		PricingInputs:  quote.Inputs,
		Breakdown:      quote.Breakdown,
		KWh:            quote.Meta.KWh,
		FilamentTotalG: quote.Meta.FilamentTotalG,
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// ExportToPDF writes a one-page A4 quote sheet.
func (r *ExportRepositoryImpl) ExportToPDF(quote entity.Quote, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{18, 168, 122}
	headerTextColor := [3]int{255, 255, 255}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	pdf.AddPage()

	// Header bar
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  3D-Druck Preiskalkulation"), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  %s", quote.GeneratedAt.Format("2006-01-02 15:04"))), "", 1, "L", true, 0, "")
	pdf.Ln(8)

	// Headline figures
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.Cell(0, 8, tr("Zusammenfassung"))
	pdf.Ln(7)
	pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
	pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(95, 12, tr(fmt.Sprintf("€ %.2f", quote.Breakdown.RecommendedPrice())), "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	summary := fmt.Sprintf("Filament %.1f g  |  %.3f kWh  |  %.1f h",
		quote.Meta.FilamentTotalG, quote.Meta.KWh, quote.Inputs.PrintTimeH)
	pdf.CellFormat(95, 12, tr(summary), "", 1, "R", false, 0, "")
	pdf.Ln(6)

	// Breakdown table
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.Cell(0, 8, tr("Kostenaufschlüsselung"))
	pdf.Ln(7)
	pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(130, 7, tr("Posten"), "B", 0, "L", false, 0, "")
	pdf.CellFormat(60, 7, tr("€"), "B", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, line := range quote.Breakdown {
		amount := line.Amount
		style := ""
		if line.Label == entity.LineFriendDiscount {
			amount = -amount
		}
		if line.Label == entity.LineRecommended {
			style = "B"
		}
		pdf.SetFont("Arial", style, 10)
		pdf.CellFormat(130, 6, tr(line.Label), "", 0, "L", false, 0, "")
		pdf.CellFormat(60, 6, tr(fmt.Sprintf("%.2f", amount)), "", 1, "R", false, 0, "")
	}

	// Footer with quote reference
	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	footerText := fmt.Sprintf("Quote %s | %s", quote.ID, quote.GeneratedAt.Format("2006-01-02"))
	pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// generateFilename builds a unique timestamped filename and makes sure
// the output directory exists.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
