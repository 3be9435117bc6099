package main

import (
	"os"

	"github.com/diillson/usage-statement-go/internal/adapter/driven/config"
	"github.com/diillson/usage-statement-go/internal/adapter/driven/export"
	"github.com/diillson/usage-statement-go/internal/adapter/driven/sheet"
	"github.com/diillson/usage-statement-go/internal/adapter/driven/storage"
	"github.com/diillson/usage-statement-go/internal/adapter/driving/cli"
	"github.com/diillson/usage-statement-go/internal/application/usecase"
	"github.com/diillson/usage-statement-go/pkg/console"
	"github.com/diillson/usage-statement-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	sheetRepo := sheet.NewSheetRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	publishRepo := storage.NewS3Repository()
	consoleImpl := console.NewConsole()

	statementUseCase := usecase.NewStatementUseCase(
		sheetRepo,
		exportRepo,
		configRepo,
		publishRepo,
		consoleImpl,
	)

	app.SetStatementUseCase(statementUseCase)

	if err := app.Execute(); err != nil {
		consoleImpl.LogError("%v", err)
		os.Exit(1)
	}
}
