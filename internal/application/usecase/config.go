package usecase

import (
	"fmt"
	"strings"

	"github.com/diillson/usage-statement-go/internal/shared/types"
)

var supportedReportTypes = map[string]bool{"pdf": true, "csv": true, "json": true}

// ResolveConfig combina ambiente, arquivo de configuração e flags, nessa
// ordem de precedência crescente.
func (uc *StatementUseCase) ResolveConfig(args *types.CLIArgs) (*types.Config, error) {
	cfg := &types.Config{}

	envCfg, err := uc.configRepo.LoadEnv(args.EnvFile)
	if err != nil {
		return nil, types.ConfigError(err)
	}
	cfg.Overlay(envCfg)

	if args.ConfigFile != "" {
		fileCfg, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return nil, types.ConfigError(err)
		}
		cfg.Overlay(fileCfg)
	}

	cfg.Overlay(&types.Config{
		CustomerName:   args.CustomerName,
		DocumentNumber: args.DocumentNumber,
		Sheet:          args.Sheet,
		Start:          args.Start,
		End:            args.End,
		ReportType:     args.ReportType,
		Dir:            args.Dir,
		S3Bucket:       args.S3Bucket,
		S3Prefix:       args.S3Prefix,
		AWSProfile:     args.AWSProfile,
		AWSRegion:      args.AWSRegion,
	})

	if len(cfg.ReportType) == 0 {
		cfg.ReportType = []string{"pdf"}
	}
	seen := map[string]bool{}
	reportTypes := make([]string, 0, len(cfg.ReportType))
	for _, t := range cfg.ReportType {
		t = strings.ToLower(strings.TrimSpace(t))
		if !supportedReportTypes[t] {
			return nil, configErrorf("unsupported report type %q, expected pdf, csv or json", t)
		}
		if !seen[t] {
			seen[t] = true
			reportTypes = append(reportTypes, t)
		}
	}
	cfg.ReportType = reportTypes

	return cfg, nil
}

func configErrorf(format string, a ...interface{}) error {
	return types.ConfigError(fmt.Errorf(format, a...))
}
