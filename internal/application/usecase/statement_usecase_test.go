package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/diillson/usage-statement-go/internal/domain/entity"
	"github.com/diillson/usage-statement-go/internal/domain/layout"
	"github.com/diillson/usage-statement-go/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- fakes ---

type fakeConsole struct {
	warnings []string
	errors   []string
	success  []string
	panels   []string
	printed  []string
}

func (c *fakeConsole) Print(a ...interface{})                 { c.printed = append(c.printed, fmt.Sprint(a...)) }
func (c *fakeConsole) Printf(format string, a ...interface{}) { c.printed = append(c.printed, fmt.Sprintf(format, a...)) }
func (c *fakeConsole) Println(a ...interface{})               { c.printed = append(c.printed, fmt.Sprint(a...)) }
func (c *fakeConsole) LogInfo(string, ...interface{})         {}
func (c *fakeConsole) LogWarning(format string, a ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogError(format string, a ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogSuccess(format string, a ...interface{}) {
	c.success = append(c.success, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) Status(string) types.StatusHandle   { return noopStatus{} }
func (c *fakeConsole) CreateTable() types.TableInterface  { return &fakeTable{} }
func (c *fakeConsole) DisplayPanel(title, content string) { c.panels = append(c.panels, title+"\n"+content) }

type noopStatus struct{}

func (noopStatus) Update(string) {}
func (noopStatus) Stop()         {}

type fakeTable struct{ lines []string }

func (t *fakeTable) AddColumn(name string, _ ...interface{}) { t.lines = append(t.lines, name) }
func (t *fakeTable) AddRow(cells ...interface{})             { t.lines = append(t.lines, fmt.Sprint(cells...)) }
func (t *fakeTable) Render() string                          { return strings.Join(t.lines, "\n") }

type fakeSheetRepo struct {
	wb  *entity.Workbook
	err error
}

func (r *fakeSheetRepo) Open(string) (*entity.Workbook, error) { return r.wb, r.err }

func (r *fakeSheetRepo) SelectSheet(wb *entity.Workbook, name string) (entity.Sheet, error) {
	if len(wb.Sheets) == 0 {
		return entity.Sheet{}, types.ErrNoSheets
	}
	if name == "" {
		return wb.Sheets[0], nil
	}
	for _, s := range wb.Sheets {
		if s.Name == name {
			return s, nil
		}
	}
	return entity.Sheet{}, types.ErrSheetNotFound
}

type fakeExportRepo struct {
	calls  []string
	pdfErr error
	csvErr error
}

func (r *fakeExportRepo) record(kind, filename, dir string) (string, error) {
	path := dir + "/" + filename + "." + kind
	r.calls = append(r.calls, path)
	return path, nil
}

func (r *fakeExportRepo) ExportStatementToPDF(_ *entity.Statement, filename, dir string) (string, error) {
	if r.pdfErr != nil {
		return "", r.pdfErr
	}
	return r.record("pdf", filename, dir)
}

func (r *fakeExportRepo) ExportStatementToCSV(_ *entity.Statement, filename, dir string) (string, error) {
	if r.csvErr != nil {
		return "", r.csvErr
	}
	return r.record("csv", filename, dir)
}

func (r *fakeExportRepo) ExportStatementToJSON(_ *entity.Statement, filename, dir string) (string, error) {
	return r.record("json", filename, dir)
}

type fakeConfigRepo struct {
	env  *types.Config
	file *types.Config
	err  error
}

func (r *fakeConfigRepo) LoadConfigFile(string) (*types.Config, error) { return r.file, r.err }
func (r *fakeConfigRepo) LoadEnv(string) (*types.Config, error) {
	if r.env == nil {
		return &types.Config{}, nil
	}
	return r.env, nil
}

type fakePublishRepo struct {
	published []string
	err       error
}

func (r *fakePublishRepo) GetAccountID(context.Context, entity.PublishTarget) (string, error) {
	return "123456789012", r.err
}

func (r *fakePublishRepo) Publish(_ context.Context, t entity.PublishTarget, path string) (string, error) {
	r.published = append(r.published, path)
	return "s3://" + t.Bucket + "/" + path, nil
}

// --- helpers ---

var header = []string{"Start Time", "End Time", "Usage Type", "Amount"}

func workbook(rows ...[]string) *entity.Workbook {
	return &entity.Workbook{
		Path: "usage.xlsx",
		Sheets: []entity.Sheet{
			{Name: "Usage", Grid: append(entity.RawGrid{header}, rows...)},
			{Name: "Other", Grid: entity.RawGrid{{"foo", "bar"}, {"1", "2"}}},
		},
	}
}

type fixture struct {
	uc      *StatementUseCase
	console *fakeConsole
	sheets  *fakeSheetRepo
	exports *fakeExportRepo
	config  *fakeConfigRepo
	publish *fakePublishRepo
}

func newFixture(wb *entity.Workbook) *fixture {
	f := &fixture{
		console: &fakeConsole{},
		sheets:  &fakeSheetRepo{wb: wb},
		exports: &fakeExportRepo{},
		config:  &fakeConfigRepo{},
		publish: &fakePublishRepo{},
	}
	f.uc = NewStatementUseCase(f.sheets, f.exports, f.config, f.publish, f.console)
	f.uc.now = func() time.Time { return time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC) }
	return f
}

func request(wb *entity.Workbook) GenerateRequest {
	return GenerateRequest{
		Workbook: wb,
		Metadata: entity.Metadata{CustomerName: "Ana", DocumentNumber: "42"},
		Layout:   layout.DefaultConfig(),
	}
}

// --- tests ---

func TestGenerate(t *testing.T) {
	wb := workbook(
		[]string{"01/01/2024 10:00", "01/01/2024 10:05", "Serviço de Voz", "125"},
		[]string{"01/01/2024 09:00", "01/01/2024 09:01", "Serviço de SMS", "2"},
	)
	f := newFixture(wb)

	st, err := f.uc.Generate(request(wb))
	require.NoError(t, err)

	assert.Equal(t, "Usage", st.Sheet)
	require.Len(t, st.Rows, 2)
	assert.Equal(t, "01/01/2024, 09:00", st.Rows[0].StartTime)
	assert.Equal(t, "00:02:05", st.Rows[1].DisplayAmount)
	assert.Equal(t, entity.DateRange{Min: "01/01/2024, 09:00", Max: "01/01/2024, 10:05"}, st.Range)
	assert.Equal(t, time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC), st.Metadata.GeneratedAt)
	require.NotNil(t, st.Document)
	assert.True(t, st.Document.Finished)
	assert.Equal(t, 1, st.Document.PageCount())
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name     string
		wb       *entity.Workbook
		mutate   func(*GenerateRequest)
		reason   types.ReasonCode
		sentinel error
	}{
		{
			name:     "no columns recognised",
			wb:       &entity.Workbook{Sheets: []entity.Sheet{{Name: "S", Grid: entity.RawGrid{{"a", "b"}, {"1", "2"}}}}},
			reason:   types.ReasonInput,
			sentinel: types.ErrNoColumns,
		},
		{
			name: "missing amount column",
			wb: &entity.Workbook{Sheets: []entity.Sheet{{Name: "S", Grid: entity.RawGrid{
				{"Start Time", "End Time", "Usage Type"},
				{"01/01/2024 10:00", "01/01/2024 10:05", "Serviço de Voz"},
			}}}},
			reason:   types.ReasonGeneration,
			sentinel: types.ErrNoUsageRows,
		},
		{
			name:     "all amounts zero",
			wb:       workbook([]string{"01/01/2024 10:00", "01/01/2024 10:05", "Serviço de Voz", "0"}),
			reason:   types.ReasonGeneration,
			sentinel: types.ErrNoUsageRows,
		},
		{
			name:     "empty sheet",
			wb:       &entity.Workbook{Sheets: []entity.Sheet{{Name: "S"}}},
			reason:   types.ReasonInput,
			sentinel: types.ErrEmptySheet,
		},
		{
			name:     "unknown sheet",
			wb:       workbook(),
			mutate:   func(r *GenerateRequest) { r.Sheet = "Missing" },
			reason:   types.ReasonInput,
			sentinel: types.ErrSheetNotFound,
		},
		{
			name:     "bad filter",
			wb:       workbook([]string{"01/01/2024 10:00", "01/01/2024 10:05", "Serviço de Voz", "1"}),
			mutate:   func(r *GenerateRequest) { r.Start = "yesterday" },
			reason:   types.ReasonInput,
			sentinel: types.ErrInvalidFilter,
		},
		{
			name: "layout failure",
			wb:   workbook([]string{"01/01/2024 10:00", "01/01/2024 10:05", "Serviço de Voz", "1"}),
			mutate: func(r *GenerateRequest) {
				r.Layout.Geometry.PageHeight = 40
			},
			reason:   types.ReasonGeneration,
			sentinel: types.ErrLayout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(tt.wb)
			req := request(tt.wb)
			if tt.mutate != nil {
				tt.mutate(&req)
			}

			st, err := f.uc.Generate(req)

			require.Error(t, err)
			assert.Nil(t, st)
			assert.Equal(t, tt.reason, types.ReasonOf(err))
			assert.ErrorIs(t, err, tt.sentinel)
		})
	}
}

func TestGenerateErrorMessages(t *testing.T) {
	wb := workbook([]string{"01/01/2024 10:00", "01/01/2024 10:05", "Serviço de Voz", "0"})
	_, err := newFixture(wb).uc.Generate(request(wb))

	assert.Equal(t, "Error generating PDF: could not extract data from the sheet or all amounts are zero", err.Error())
}

func TestGenerateWithFilter(t *testing.T) {
	wb := workbook(
		[]string{"01/01/2024 10:00", "01/01/2024 10:05", "Serviço de Voz", "60"},
		[]string{"02/01/2024 10:00", "02/01/2024 10:05", "Serviço de Voz", "60"},
		[]string{"03/01/2024 10:00", "03/01/2024 10:05", "Serviço de Voz", "60"},
	)
	f := newFixture(wb)
	req := request(wb)
	req.Start = "02/01/2024, 10:00"
	req.End = "03/01/2024"

	st, err := f.uc.Generate(req)
	require.NoError(t, err)

	require.Len(t, st.Rows, 2)
	assert.Equal(t, "00:02:00", st.Summaries[0].DisplayTotal)
}

func TestGenerateWarnsAboutUndatedRows(t *testing.T) {
	wb := workbook(
		[]string{"01/01/2024 10:00", "01/01/2024 10:05", "Serviço de Voz", "60"},
		[]string{"someday", "", "Serviço de Voz", "60"},
	)
	f := newFixture(wb)

	_, err := f.uc.Generate(request(wb))
	require.NoError(t, err)

	require.Len(t, f.console.warnings, 1)
	assert.Contains(t, f.console.warnings[0], "1 row(s)")
}

func TestRunStatement(t *testing.T) {
	wb := workbook([]string{"01/01/2024 10:00", "01/01/2024 10:05", "Serviço de Voz", "125"})
	f := newFixture(wb)
	f.config.env = &types.Config{S3Bucket: "statements", CustomerName: "Env Name"}

	err := f.uc.RunStatement(context.Background(), &types.CLIArgs{
		File:           "usage.xlsx",
		DocumentNumber: "42",
		ReportType:     []string{"PDF", "csv", "pdf"},
		Dir:            "/out",
		Preview:        true,
	})
	require.NoError(t, err)

	want := []string{"/out/usage-statement-42.pdf", "/out/usage-statement-42.csv"}
	assert.Equal(t, want, f.exports.calls)
	assert.Equal(t, want, f.publish.published)
	require.Len(t, f.console.panels, 1)
	assert.Contains(t, f.console.panels[0], "Serviço de Voz")
	assert.Contains(t, f.console.warnings, `Workbook has 2 sheets, using "Usage". Use --sheet to pick another one.`)
}

func TestRunStatementListSheets(t *testing.T) {
	f := newFixture(workbook())

	err := f.uc.RunStatement(context.Background(), &types.CLIArgs{File: "usage.xlsx", ListSheets: true})
	require.NoError(t, err)

	assert.Empty(t, f.exports.calls)
	require.Len(t, f.console.printed, 1)
	assert.Contains(t, f.console.printed[0], "Usage")
	assert.Contains(t, f.console.printed[0], "Other")
}

func TestRunStatementFailures(t *testing.T) {
	rows := []string{"01/01/2024 10:00", "01/01/2024 10:05", "Serviço de Voz", "125"}

	t.Run("unreadable file", func(t *testing.T) {
		f := newFixture(nil)
		f.sheets.err = types.ErrUnreadableFile
		err := f.uc.RunStatement(context.Background(), &types.CLIArgs{File: "x.xlsx"})
		assert.Equal(t, types.ReasonInput, types.ReasonOf(err))
	})

	t.Run("missing file argument", func(t *testing.T) {
		err := newFixture(nil).uc.RunStatement(context.Background(), &types.CLIArgs{})
		assert.Equal(t, types.ReasonInput, types.ReasonOf(err))
	})

	t.Run("pdf export failure aborts", func(t *testing.T) {
		f := newFixture(workbook(rows))
		f.exports.pdfErr = types.ErrRender
		err := f.uc.RunStatement(context.Background(), &types.CLIArgs{File: "x.xlsx"})
		assert.Equal(t, types.ReasonGeneration, types.ReasonOf(err))
		assert.ErrorIs(t, err, types.ErrRender)
	})

	t.Run("csv export failure is logged", func(t *testing.T) {
		f := newFixture(workbook(rows))
		f.exports.csvErr = errors.New("disk full")
		err := f.uc.RunStatement(context.Background(), &types.CLIArgs{File: "x.xlsx", ReportType: []string{"csv", "json"}})
		require.NoError(t, err)
		require.Len(t, f.console.errors, 1)
		assert.Contains(t, f.console.errors[0], "disk full")
		assert.Len(t, f.exports.calls, 1)
	})

	t.Run("publish failure", func(t *testing.T) {
		f := newFixture(workbook(rows))
		f.publish.err = errors.New("expired token")
		err := f.uc.RunStatement(context.Background(), &types.CLIArgs{File: "x.xlsx", S3Bucket: "b"})
		assert.Equal(t, types.ReasonPublish, types.ReasonOf(err))
	})

	t.Run("config file failure", func(t *testing.T) {
		f := newFixture(workbook(rows))
		f.config.err = errors.New("bad toml")
		err := f.uc.RunStatement(context.Background(), &types.CLIArgs{File: "x.xlsx", ConfigFile: "c.toml"})
		assert.Equal(t, types.ReasonConfig, types.ReasonOf(err))
	})
}

func TestResolveConfig(t *testing.T) {
	f := newFixture(nil)
	f.config.env = &types.Config{CustomerName: "env", Sheet: "env-sheet", Dir: "env-dir"}
	f.config.file = &types.Config{CustomerName: "file", Sheet: "file-sheet", ReportType: []string{"json"}}

	cfg, err := f.uc.ResolveConfig(&types.CLIArgs{ConfigFile: "c.yaml", CustomerName: "flag"})
	require.NoError(t, err)

	assert.Equal(t, "flag", cfg.CustomerName)
	assert.Equal(t, "file-sheet", cfg.Sheet)
	assert.Equal(t, "env-dir", cfg.Dir)
	assert.Equal(t, []string{"json"}, cfg.ReportType)
}

func TestResolveConfigDefaultsAndValidation(t *testing.T) {
	f := newFixture(nil)

	cfg, err := f.uc.ResolveConfig(&types.CLIArgs{})
	require.NoError(t, err)
	assert.Equal(t, []string{"pdf"}, cfg.ReportType)

	_, err = f.uc.ResolveConfig(&types.CLIArgs{ReportType: []string{"xlsx"}})
	assert.Equal(t, types.ReasonConfig, types.ReasonOf(err))
}

func TestReportFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"244923000111", "usage-statement-244923000111"},
		{"", "usage-statement-report"},
		{"  ", "usage-statement-report"},
		{"AB 12/34", "usage-statement-AB_1234"},
		{"../..", "usage-statement-report"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ReportFilename(tt.in))
		})
	}
}
