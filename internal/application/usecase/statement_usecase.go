package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/diillson/usage-statement-go/internal/domain/entity"
	"github.com/diillson/usage-statement-go/internal/domain/layout"
	"github.com/diillson/usage-statement-go/internal/domain/repository"
	"github.com/diillson/usage-statement-go/internal/domain/usage"
	"github.com/diillson/usage-statement-go/internal/shared/types"
	"github.com/diillson/usage-statement-go/pkg/console"
)

// StatementUseCase gera extratos de consumo a partir de planilhas.
type StatementUseCase struct {
	sheetRepo   repository.SheetRepository
	exportRepo  repository.ExportRepository
	configRepo  repository.ConfigRepository
	publishRepo repository.PublishRepository
	console     types.ConsoleInterface
	now         func() time.Time
}

// NewStatementUseCase cria um novo caso de uso de extrato.
func NewStatementUseCase(
	sheetRepo repository.SheetRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	publishRepo repository.PublishRepository,
	console types.ConsoleInterface,
) *StatementUseCase {
	return &StatementUseCase{
		sheetRepo:   sheetRepo,
		exportRepo:  exportRepo,
		configRepo:  configRepo,
		publishRepo: publishRepo,
		console:     console,
		now:         time.Now,
	}
}

// GenerateRequest is one pipeline invocation over an opened workbook.
type GenerateRequest struct {
	Workbook *entity.Workbook
	Sheet    string
	Metadata entity.Metadata
	Start    string
	End      string
	Layout   layout.Config
}

// Generate runs the pipeline: sheet selection, column resolution, extraction,
// date range and layout. Every failure is a *types.StatementError.
func (uc *StatementUseCase) Generate(req GenerateRequest) (*entity.Statement, error) {
	filter, err := usage.NewDateFilter(req.Start, req.End)
	if err != nil {
		return nil, types.InputError(err)
	}

	sheet, err := uc.sheetRepo.SelectSheet(req.Workbook, req.Sheet)
	if err != nil {
		return nil, types.InputError(err)
	}
	if len(sheet.Grid) == 0 {
		return nil, types.InputError(fmt.Errorf("%w: %s", types.ErrEmptySheet, sheet.Name))
	}

	result := usage.Process(sheet.Grid, filter)
	ext := result.Extraction
	slog.Debug("sheet processed",
		"sheet", sheet.Name,
		"scanned", ext.Scanned,
		"kept", len(ext.Rows),
		"zero_amount", ext.ZeroAmount,
		"duplicates", ext.Duplicates,
		"undated", ext.Undated,
		"outside_filter", ext.OutsideFilter,
	)

	if result.Columns.Empty() {
		return nil, types.InputError(types.ErrNoColumns)
	}
	if len(ext.Rows) == 0 {
		return nil, types.GenerationError(types.ErrNoUsageRows)
	}

	if ext.Undated > 0 {
		uc.console.LogWarning("%d row(s) have a start time that could not be read and are listed last", ext.Undated)
	}
	if filter != nil && ext.OutsideFilter > 0 {
		uc.console.LogInfo("%d row(s) outside the selected period were left out", ext.OutsideFilter)
	}

	meta := req.Metadata
	if meta.GeneratedAt.IsZero() {
		meta.GeneratedAt = uc.now()
	}

	doc, err := layout.NewEngine(req.Layout).Layout(ext.Rows, ext.Summaries, result.Range, meta)
	if err != nil {
		return nil, types.GenerationError(err)
	}
	slog.Debug("statement laid out", "pages", doc.PageCount())

	return &entity.Statement{
		Sheet:     sheet.Name,
		Metadata:  meta,
		Rows:      ext.Rows,
		Summaries: ext.Summaries,
		Range:     result.Range,
		Document:  doc,
	}, nil
}

// RunStatement executa o fluxo completo da linha de comando.
func (uc *StatementUseCase) RunStatement(ctx context.Context, args *types.CLIArgs) error {
	cfg, err := uc.ResolveConfig(args)
	if err != nil {
		return err
	}

	if strings.TrimSpace(args.File) == "" {
		return types.InputError(fmt.Errorf("%w: no file given", types.ErrUnreadableFile))
	}

	status := uc.console.Status("Reading workbook...")
	wb, err := uc.sheetRepo.Open(args.File)
	status.Stop()
	if err != nil {
		return types.InputError(err)
	}

	if args.ListSheets {
		uc.displaySheets(wb)
		return nil
	}

	if len(wb.Sheets) > 1 && cfg.Sheet == "" {
		uc.console.LogWarning("Workbook has %d sheets, using %q. Use --sheet to pick another one.",
			len(wb.Sheets), wb.Sheets[0].Name)
	}

	statement, err := uc.Generate(GenerateRequest{
		Workbook: wb,
		Sheet:    cfg.Sheet,
		Metadata: entity.Metadata{
			CustomerName:   cfg.CustomerName,
			DocumentNumber: cfg.DocumentNumber,
		},
		Start:  cfg.Start,
		End:    cfg.End,
		Layout: layoutConfig(cfg),
	})
	if err != nil {
		return err
	}

	uc.displayPreview(statement, args.Preview)

	files, err := uc.export(statement, cfg)
	if err != nil {
		return err
	}

	if target := publishTarget(cfg); target.Enabled() {
		if err := uc.publish(ctx, target, files); err != nil {
			return err
		}
	}

	return nil
}

// export grava um arquivo por tipo de relatório. Falhas no PDF abortam; nos
// demais formatos são apenas registradas.
func (uc *StatementUseCase) export(statement *entity.Statement, cfg *types.Config) ([]string, error) {
	base := ReportFilename(statement.Metadata.DocumentNumber)
	var files []string

	for _, reportType := range cfg.ReportType {
		switch reportType {
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportStatementToPDF(statement, base, cfg.Dir)
			if err != nil {
				return nil, types.GenerationError(err)
			}
			uc.console.LogSuccess("Successfully exported statement to PDF: %s", pdfPath)
			files = append(files, pdfPath)
		case "csv":
			csvPath, err := uc.exportRepo.ExportStatementToCSV(statement, base, cfg.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
				continue
			}
			uc.console.LogSuccess("Successfully exported to CSV: %s", csvPath)
			files = append(files, csvPath)
		case "json":
			jsonPath, err := uc.exportRepo.ExportStatementToJSON(statement, base, cfg.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
				continue
			}
			uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
			files = append(files, jsonPath)
		}
	}

	return files, nil
}

func (uc *StatementUseCase) publish(ctx context.Context, target entity.PublishTarget, files []string) error {
	account, err := uc.publishRepo.GetAccountID(ctx, target)
	if err != nil {
		return types.PublishError(err)
	}
	slog.Debug("publishing statement", "account", account, "bucket", target.Bucket, "files", len(files))

	for _, file := range files {
		uri, err := uc.publishRepo.Publish(ctx, target, file)
		if err != nil {
			return types.PublishError(err)
		}
		uc.console.LogSuccess("Uploaded %s", uri)
	}
	return nil
}

// ReportFilename names output files after the document number, falling back
// to "report".
func ReportFilename(documentNumber string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		case r == ' ':
			return '_'
		default:
			return -1
		}
	}, strings.TrimSpace(documentNumber))
	name = strings.Trim(name, ".")
	if name == "" {
		name = "report"
	}
	return "usage-statement-" + name
}

func layoutConfig(cfg *types.Config) layout.Config {
	lc := layout.DefaultConfig()
	if cfg.CompanyName != "" {
		lc.Branding.CompanyName = cfg.CompanyName
	}
	if cfg.Title != "" {
		lc.Branding.Title = cfg.Title
	}
	if cfg.FooterText != "" {
		lc.Branding.FooterText = cfg.FooterText
	}
	return lc
}

func publishTarget(cfg *types.Config) entity.PublishTarget {
	return entity.PublishTarget{
		Bucket:  cfg.S3Bucket,
		Prefix:  cfg.S3Prefix,
		Profile: cfg.AWSProfile,
		Region:  cfg.AWSRegion,
	}
}

func (uc *StatementUseCase) displaySheets(wb *entity.Workbook) {
	table := uc.console.CreateTable()
	table.AddColumn("#")
	table.AddColumn("Sheet")
	table.AddColumn("Rows")
	for i, s := range wb.Sheets {
		table.AddRow(i+1, s.Name, len(s.Grid))
	}
	uc.console.Println(table.Render())
}

func (uc *StatementUseCase) displayPreview(statement *entity.Statement, withRows bool) {
	labels := layout.DefaultLabels()

	uc.console.Println(console.BrightCyan(fmt.Sprintf("%s - %s", statement.Range.Min, statement.Range.Max)))

	summary := uc.console.CreateTable()
	summary.AddColumn(labels.Category)
	summary.AddColumn("Total")
	for _, s := range statement.Summaries {
		summary.AddRow(s.Category, console.BrightGreen(s.DisplayTotal))
	}
	uc.console.DisplayPanel(labels.Summary, summary.Render())

	if !withRows {
		return
	}

	rows := uc.console.CreateTable()
	rows.AddColumn(labels.StartTime)
	rows.AddColumn(labels.EndTime)
	rows.AddColumn(labels.Category)
	rows.AddColumn("Raw")
	rows.AddColumn(labels.Amount)
	for _, r := range statement.Rows {
		rows.AddRow(r.StartTime, r.EndTime, r.Category, fmt.Sprintf("%g", r.RawAmount), r.DisplayAmount)
	}
	uc.console.Println(rows.Render())
	uc.console.LogInfo("%d usage row(s), %d page(s)", len(statement.Rows), statement.Document.PageCount())
}
