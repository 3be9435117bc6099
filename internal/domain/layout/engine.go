package layout

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/diillson/usage-statement-go/internal/domain/entity"
	"github.com/diillson/usage-statement-go/internal/shared/types"
)

// Engine lays out usage statements.
type Engine struct {
	cfg Config
}

// NewEngine cria um novo Engine com a configuração informada.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Layout composes the statement and stamps the page numbers.
func (e *Engine) Layout(
	rows []entity.UsageRecord,
	summaries []entity.CategorySummary,
	dateRange entity.DateRange,
	meta entity.Metadata,
) (*entity.ReportDocument, error) {
	doc, err := e.Compose(rows, summaries, dateRange, meta)
	if err != nil {
		return nil, err
	}
	return Finalize(doc), nil
}

// Compose places every element of the statement. Page-number text blocks are
// left empty; see Finalize.
func (e *Engine) Compose(
	rows []entity.UsageRecord,
	summaries []entity.CategorySummary,
	dateRange entity.DateRange,
	meta entity.Metadata,
) (*entity.ReportDocument, error) {
	g := e.cfg.Geometry
	if len(rows) == 0 {
		return nil, types.ErrNoUsageRows
	}
	if g.UsableWidth() <= 0 {
		return nil, fmt.Errorf("%w: margins leave no usable width", types.ErrLayout)
	}
	// A continuation page must hold the logo, a table header and one row.
	if g.limit() < g.Margin+25+2*max(g.RowHeight, g.SummaryRowHeight) {
		return nil, fmt.Errorf("%w: page height %.1f is too small", types.ErrLayout, g.PageHeight)
	}

	b := &builder{cfg: e.cfg}
	b.firstPage(dateRange, meta)
	b.summaryTable(summaries)
	b.detailTable(rows)
	b.closePage()

	title := e.cfg.Branding.Title
	if meta.DocumentNumber != "" {
		title = fmt.Sprintf("%s - %s", title, meta.DocumentNumber)
	}

	return &entity.ReportDocument{
		Size:   entity.PageSize{Width: g.PageWidth, Height: g.PageHeight},
		Title:  title,
		Author: e.cfg.Branding.CompanyName,
		Pages:  b.pages,
	}, nil
}

// builder accumulates pages while a vertical cursor moves down the page.
type builder struct {
	cfg   Config
	pages []entity.Page
	ops   []entity.DrawOp
	y     float64
}

func (b *builder) add(ops ...entity.DrawOp) {
	b.ops = append(b.ops, ops...)
}

// fits reports whether a block of height h still fits above the footer.
func (b *builder) fits(h float64) bool {
	return b.y+h <= b.cfg.Geometry.limit()
}

func (b *builder) firstPage(dateRange entity.DateRange, meta entity.Metadata) {
	g := b.cfg.Geometry
	l := b.cfg.Labels
	right := g.PageWidth - g.Margin

	b.add(entity.FilledRect{
		Bounds: entity.Rect{X: 0, Y: 0, W: g.PageWidth, H: g.HeaderBand},
		Color:  colorHeaderBand,
	})
	b.logo()

	b.add(
		entity.TextBlock{
			Text:     fmt.Sprintf("%s: %s", l.CustomerNumber, orPlaceholder(meta.DocumentNumber)),
			Position: entity.Point{X: right, Y: 15},
			Style:    entity.TextStyle{Size: 14, Bold: true, Color: colorTitle, Align: entity.AlignRight},
		},
		entity.TextBlock{
			Text:     fmt.Sprintf("%s: %s", l.Customer, orPlaceholder(meta.CustomerName)),
			Position: entity.Point{X: right, Y: 25},
			Style:    entity.TextStyle{Size: 12, Bold: true, Color: colorTitle, Align: entity.AlignRight},
		},
		entity.TextBlock{
			Text:     b.cfg.Branding.Title,
			Position: entity.Point{X: g.PageWidth / 2, Y: 35},
			Style:    entity.TextStyle{Size: 16, Bold: true, Color: colorTitle, Align: entity.AlignCenter},
		},
		entity.TextBlock{
			Text:     fmt.Sprintf("%s - %s", dateRange.Min, dateRange.Max),
			Position: entity.Point{X: g.Margin, Y: g.HeaderBand + 5},
			Style:    entity.TextStyle{Size: 10, Color: colorMuted},
		},
		entity.TextBlock{
			Text:     fmt.Sprintf("%s: %s", l.GeneratedAt, meta.GeneratedAt.Format("02/01/2006, 15:04:05")),
			Position: entity.Point{X: right, Y: g.HeaderBand + 5},
			Style:    entity.TextStyle{Size: 10, Color: colorMuted, Align: entity.AlignRight},
		},
	)

	b.y = g.HeaderBand + 15
}

// logo draws the logo placeholder at the top-left corner.
func (b *builder) logo() {
	g := b.cfg.Geometry
	box := entity.Rect{X: g.Margin, Y: 10, W: 30, H: 15}
	b.add(
		entity.FilledRect{Bounds: box, Color: colorLogo},
		entity.TextBlock{
			Text:     b.cfg.Branding.CompanyName,
			Position: entity.Point{X: box.X + box.W/2, Y: box.Y + 10},
			Style:    entity.TextStyle{Size: 12, Bold: true, Color: colorWhite, Align: entity.AlignCenter},
		},
	)
}

// closePage draws the footer and the page-number slot and stores the page.
func (b *builder) closePage() {
	g := b.cfg.Geometry
	footerY := g.PageHeight - 20

	b.add(
		entity.Line{
			From:  entity.Point{X: g.Margin, Y: footerY},
			To:    entity.Point{X: g.PageWidth - g.Margin, Y: footerY},
			Color: colorRule,
			Width: 0.5,
		},
		entity.TextBlock{
			Text:     b.cfg.Branding.FooterText,
			Position: entity.Point{X: g.PageWidth / 2, Y: footerY + 7},
			Style:    entity.TextStyle{Size: 9, Color: colorMuted, Align: entity.AlignCenter},
		},
		entity.TextBlock{
			Position: entity.Point{X: g.PageWidth - g.Margin, Y: g.PageHeight - 10},
			Style:    entity.TextStyle{Size: 8, Color: colorPageNumber, Align: entity.AlignRight},
			Slot:     entity.SlotPageNumber,
		},
	)

	b.pages = append(b.pages, entity.Page{Ops: b.ops})
	b.ops = nil
}

// breakPage closes the current page and opens a continuation page.
func (b *builder) breakPage() {
	b.closePage()
	b.logo()
	b.y = 10 + 15 + 5
}

func (b *builder) summaryTable(summaries []entity.CategorySummary) {
	if len(summaries) == 0 {
		return
	}
	g := b.cfg.Geometry
	uw := g.UsableWidth()
	cols := []entity.Column{
		{Title: b.cfg.Labels.Summary, Width: uw * 0.6, Align: entity.AlignLeft},
		{Width: uw * 0.4, Align: entity.AlignRight},
	}

	if !b.fits(g.RowHeight + g.SummaryRowHeight) {
		b.breakPage()
	}
	b.add(tableHeader(entity.Rect{X: g.Margin, Y: b.y, W: uw, H: g.RowHeight}, cols, 9))
	b.y += g.RowHeight

	for i, s := range summaries {
		if !b.fits(g.SummaryRowHeight) {
			b.breakPage()
		}
		b.add(entity.TableRow{
			Bounds:     entity.Rect{X: g.Margin, Y: b.y, W: uw, H: g.SummaryRowHeight},
			Columns:    cols,
			Cells:      []string{TruncateText(s.Category+":", summaryLabelBudget), s.DisplayTotal},
			ZebraIndex: i,
			TextStyle:  entity.TextStyle{Size: 9, Color: colorTitle},
			LabelBold:  true,
		})
		b.y += g.SummaryRowHeight
	}

	b.y += 10
}

func (b *builder) detailTable(rows []entity.UsageRecord) {
	g := b.cfg.Geometry
	uw := g.UsableWidth()
	l := b.cfg.Labels
	titles := [4]string{l.StartTime, l.EndTime, l.Category, l.Amount}

	cols := make([]entity.Column, len(titles))
	for i, t := range titles {
		cols[i] = entity.Column{Title: t, Width: uw * detailRatios[i], Align: entity.AlignLeft}
	}

	header := func() {
		b.add(tableHeader(entity.Rect{X: g.Margin, Y: b.y, W: uw, H: g.RowHeight}, cols, 8))
		b.y += g.RowHeight
	}

	if !b.fits(2 * g.RowHeight) {
		b.breakPage()
	}
	header()

	for i, row := range rows {
		if !b.fits(g.RowHeight) {
			b.breakPage()
			header()
		}
		cells := [4]string{row.StartTime, row.EndTime, row.Category, row.DisplayAmount}
		truncated := make([]string, len(cells))
		for c, v := range cells {
			truncated[c] = TruncateText(v, detailBudgets[c])
		}
		b.add(entity.TableRow{
			Bounds:     entity.Rect{X: g.Margin, Y: b.y, W: uw, H: g.RowHeight},
			Columns:    cols,
			Cells:      truncated,
			ZebraIndex: i,
			Bordered:   true,
			TextStyle:  entity.TextStyle{Size: 8, Color: colorBody},
		})
		b.y += g.RowHeight
	}
}

func tableHeader(bounds entity.Rect, cols []entity.Column, size float64) entity.TableHeader {
	return entity.TableHeader{
		Bounds:    bounds,
		Columns:   cols,
		Fill:      colorBrand,
		TextStyle: entity.TextStyle{Size: size, Bold: true, Color: colorWhite},
	}
}

// TruncateText shortens text to at most limit characters, ending with "...".
func TruncateText(text string, limit int) string {
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	if limit <= 3 {
		return strings.Repeat(".", max(limit, 0))
	}
	runes := []rune(text)
	return string(runes[:limit-3]) + "..."
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return entity.Placeholder
	}
	return s
}
