// Package layout turns extracted usage data into a paginated ReportDocument.
// Layout runs in two phases: Compose places every element and leaves an
// empty page-number slot on each page, Finalize fills the slots once the
// page count is known.
package layout

import "github.com/diillson/usage-statement-go/internal/domain/entity"

// Geometry is the fixed page geometry in millimetres.
type Geometry struct {
	PageWidth        float64
	PageHeight       float64
	Margin           float64
	HeaderBand       float64
	RowHeight        float64
	SummaryRowHeight float64
	BottomReserve    float64
}

// UsableWidth is the page width minus both margins.
func (g Geometry) UsableWidth() float64 {
	return g.PageWidth - 2*g.Margin
}

// limit is the lowest y a row may reach before the page must break.
func (g Geometry) limit() float64 {
	return g.PageHeight - g.BottomReserve
}

// A4 is a portrait A4 page.
func A4() Geometry {
	return Geometry{
		PageWidth:        210,
		PageHeight:       297,
		Margin:           10,
		HeaderBand:       40,
		RowHeight:        10,
		SummaryRowHeight: 15,
		BottomReserve:    30,
	}
}

// Labels are the fixed strings printed on the statement.
type Labels struct {
	CustomerNumber string
	Customer       string
	GeneratedAt    string
	Summary        string
	StartTime      string
	EndTime        string
	Category       string
	Amount         string
	PageNumber     string
}

// DefaultLabels returns the Portuguese labels of the statement.
func DefaultLabels() Labels {
	return Labels{
		CustomerNumber: "Nº do Cliente",
		Customer:       "Cliente",
		GeneratedAt:    "Gerado em",
		Summary:        "Resumo de Consumo",
		StartTime:      "Data de Início",
		EndTime:        "Data Final",
		Category:       "Tipo de Consumo",
		Amount:         "Consumo",
		PageNumber:     "Page %d of %d",
	}
}

// DefaultBranding returns the company texts used when none are configured.
func DefaultBranding() entity.Branding {
	return entity.Branding{
		CompanyName: "Africell",
		Title:       "Relatório de Consumo",
		FooterText:  "Africell Angola | Rua dos Municipios dos Portugueses, Luanda, Angola | apoio.cliente@africell.ao | +244 950 180 123",
	}
}

// Config configures an Engine.
type Config struct {
	Geometry Geometry
	Labels   Labels
	Branding entity.Branding
}

// DefaultConfig returns an A4 engine configuration with default texts.
func DefaultConfig() Config {
	return Config{
		Geometry: A4(),
		Labels:   DefaultLabels(),
		Branding: DefaultBranding(),
	}
}

// Column width ratios of the detail table: start, end, category, amount.
var detailRatios = [4]float64{0.20, 0.20, 0.35, 0.25}

// Character budgets of the detail table cells.
var detailBudgets = [4]int{20, 20, 28, 20}

const summaryLabelBudget = 60

var (
	colorHeaderBand = entity.RGB{240, 240, 240}
	colorLogo       = entity.RGB{41, 128, 185}
	colorBrand      = entity.RGB{160, 23, 117}
	colorWhite      = entity.RGB{255, 255, 255}
	colorTitle      = entity.RGB{44, 62, 80}
	colorMuted      = entity.RGB{100, 100, 100}
	colorBody       = entity.RGB{0, 0, 0}
	colorRule       = entity.RGB{200, 200, 200}
	colorPageNumber = entity.RGB{150, 150, 150}
)
