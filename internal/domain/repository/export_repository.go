package repository

import (
	"github.com/diillson/usage-statement-go/internal/domain/entity"
)

type ExportRepository interface {
	ExportStatementToPDF(statement *entity.Statement, filename string, outputDir string) (string, error)
	ExportStatementToCSV(statement *entity.Statement, filename string, outputDir string) (string, error)
	ExportStatementToJSON(statement *entity.Statement, filename string, outputDir string) (string, error)
}
