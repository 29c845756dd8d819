package repository

import (
	"github.com/dkoester/printpricer-go/internal/domain/entity"
)

// ExportRepository writes a quote to the export artifacts. Every
// method returns the absolute path of the file it created.
type ExportRepository interface {
	ExportToCSV(quote entity.Quote, filename string, outputDir string) (string, error)
	ExportToJSON(quote entity.Quote, filename string, outputDir string) (string, error)
	ExportToPDF(quote entity.Quote, filename string, outputDir string) (string, error)
}
