package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/diillson/usage-statement-go/internal/domain/entity"
	"github.com/diillson/usage-statement-go/internal/domain/repository"
	"github.com/diillson/usage-statement-go/internal/shared/types"
	"github.com/gocarina/gocsv"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// ExportStatementToPDF desenha o documento paginado do extrato em um arquivo PDF.
func (r *ExportRepositoryImpl) ExportStatementToPDF(statement *entity.Statement, filename, outputDir string) (string, error) {
	if statement.Document == nil {
		return "", fmt.Errorf("%w: statement has no laid out document", types.ErrRender)
	}

	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf, err := RenderPDF(statement.Document)
	if err != nil {
		return "", err
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("%w: error writing PDF file: %v", types.ErrRender, err)
	}

	return filepath.Abs(outputFilename)
}

// csvRow flattens summaries and records into one table.
type csvRow struct {
	Section       string `csv:"section"`
	StartTime     string `csv:"start_time"`
	EndTime       string `csv:"end_time"`
	UsageType     string `csv:"usage_type"`
	RawAmount     string `csv:"raw_amount"`
	DisplayAmount string `csv:"display_amount"`
}

// ExportStatementToCSV grava o resumo por categoria seguido dos registros.
func (r *ExportRepositoryImpl) ExportStatementToCSV(statement *entity.Statement, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(csvRows(statement), file); err != nil {
		return "", fmt.Errorf("error writing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func csvRows(statement *entity.Statement) []*csvRow {
	rows := make([]*csvRow, 0, len(statement.Summaries)+len(statement.Rows))
	for _, s := range statement.Summaries {
		rows = append(rows, &csvRow{
			Section:       "summary",
			UsageType:     s.Category,
			RawAmount:     formatRaw(s.Total),
			DisplayAmount: s.DisplayTotal,
		})
	}
	for _, rec := range statement.Rows {
		rows = append(rows, &csvRow{
			Section:       "usage",
			StartTime:     rec.StartTime,
			EndTime:       rec.EndTime,
			UsageType:     rec.Category,
			RawAmount:     formatRaw(rec.RawAmount),
			DisplayAmount: rec.DisplayAmount,
		})
	}
	return rows
}

func formatRaw(v float64) string {
	return fmt.Sprintf("%g", v)
}

// jsonStatement is the JSON form of a statement.
type jsonStatement struct {
	CustomerName   string                   `json:"customer_name,omitempty"`
	DocumentNumber string                   `json:"document_number,omitempty"`
	GeneratedAt    time.Time                `json:"generated_at"`
	Sheet          string                   `json:"sheet"`
	DateRange      entity.DateRange         `json:"date_range"`
	Pages          int                      `json:"pages,omitempty"`
	Summaries      []entity.CategorySummary `json:"summaries"`
	Rows           []entity.UsageRecord     `json:"rows"`
}

// ExportStatementToJSON grava o extrato completo em JSON indentado.
func (r *ExportRepositoryImpl) ExportStatementToJSON(statement *entity.Statement, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	payload := jsonStatement{
		CustomerName:   statement.Metadata.CustomerName,
		DocumentNumber: statement.Metadata.DocumentNumber,
		GeneratedAt:    statement.Metadata.GeneratedAt,
		Sheet:          statement.Sheet,
		DateRange:      statement.Range,
		Summaries:      statement.Summaries,
		Rows:           statement.Rows,
	}
	if statement.Document != nil {
		payload.Pages = statement.Document.PageCount()
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(payload); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// generateFilename monta o caminho do arquivo e garante que o diretório exista.
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
	return filepath.Join(dir, fmt.Sprintf("%s.%s", base, ext)), nil
}
