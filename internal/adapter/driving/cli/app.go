package cli

import (
	"path/filepath"

	"github.com/diillson/usage-statement-go/internal/application/usecase"
	"github.com/diillson/usage-statement-go/internal/shared/types"
	"github.com/diillson/usage-statement-go/pkg/version"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd          *cobra.Command
	statementUseCase *usecase.StatementUseCase
	version          string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	rootCmd := &cobra.Command{
		Use:           "usage-statement [file]",
		Short:         "Generate PDF consumption statements from telecom usage spreadsheets",
		Version:       version.FormatVersion(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "Usage Statement version: %s\n" .Version}}`)

	flags := rootCmd.PersistentFlags()
	flags.StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	flags.String("env-file", "", "Path to a .env file with STATEMENT_* variables (default: ./.env when present)")
	flags.StringP("file", "f", "", "Usage spreadsheet (.xlsx, .xlsm or .xls)")
	flags.StringP("sheet", "s", "", "Sheet to read (default: first sheet)")
	flags.Bool("list-sheets", false, "List the sheets of the workbook and exit")
	flags.StringP("customer-name", "n", "", "Customer name printed on the statement")
	flags.StringP("document-number", "u", "", "Customer or document number, also used in the output file name")
	flags.String("start", "", "Only include usage starting at or after this time (DD/MM/YYYY, HH:MM)")
	flags.String("end", "", "Only include usage starting at or before this time (DD/MM/YYYY, HH:MM)")
	flags.StringSliceP("report-type", "y", nil, "Specify report types: pdf, csv, json (default: pdf)")
	flags.StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	flags.BoolP("preview", "p", false, "Show every usage row in the terminal")
	flags.String("s3-bucket", "", "Upload the generated files to this S3 bucket")
	flags.String("s3-prefix", "", "Key prefix for uploaded files")
	flags.String("aws-profile", "", "AWS profile used for the upload")
	flags.String("aws-region", "", "AWS region used for the upload")
	flags.String("log-level", "warn", "Log level: debug, info, warn, error")
	flags.String("log-format", "console", "Log format: console, json")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs(positional []string) (*types.CLIArgs, error) {
	flags := app.rootCmd.Flags()
	configFile, _ := flags.GetString("config-file")
	envFile, _ := flags.GetString("env-file")
	file, _ := flags.GetString("file")
	sheet, _ := flags.GetString("sheet")
	listSheets, _ := flags.GetBool("list-sheets")
	customerName, _ := flags.GetString("customer-name")
	documentNumber, _ := flags.GetString("document-number")
	start, _ := flags.GetString("start")
	end, _ := flags.GetString("end")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")
	preview, _ := flags.GetBool("preview")
	s3Bucket, _ := flags.GetString("s3-bucket")
	s3Prefix, _ := flags.GetString("s3-prefix")
	awsProfile, _ := flags.GetString("aws-profile")
	awsRegion, _ := flags.GetString("aws-region")
	logLevel, _ := flags.GetString("log-level")
	logFormat, _ := flags.GetString("log-format")

	if file == "" && len(positional) > 0 {
		file = positional[0]
	}

	if dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	return &types.CLIArgs{
		ConfigFile:     configFile,
		EnvFile:        envFile,
		File:           file,
		Sheet:          sheet,
		ListSheets:     listSheets,
		CustomerName:   customerName,
		DocumentNumber: documentNumber,
		Start:          start,
		End:            end,
		ReportType:     reportType,
		Dir:            dir,
		Preview:        preview,
		S3Bucket:       s3Bucket,
		S3Prefix:       s3Prefix,
		AWSProfile:     awsProfile,
		AWSRegion:      awsRegion,
		LogLevel:       logLevel,
		LogFormat:      logFormat,
	}, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	cliArgs, err := app.parseArgs(args)
	if err != nil {
		return err
	}

	if err := setupLogging(cliArgs.LogLevel, cliArgs.LogFormat, cmd.ErrOrStderr()); err != nil {
		return types.ConfigError(err)
	}

	displayWelcomeBanner(app.version)

	return app.statementUseCase.RunStatement(cmd.Context(), cliArgs)
}

// SetStatementUseCase sets the statement use case for the CLI app.
func (app *CLIApp) SetStatementUseCase(useCase *usecase.StatementUseCase) {
	app.statementUseCase = useCase
}
