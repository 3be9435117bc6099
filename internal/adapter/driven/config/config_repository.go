package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/diillson/usage-statement-go/internal/domain/repository"
	"github.com/diillson/usage-statement-go/internal/shared/types"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by LoadEnv.
const EnvPrefix = "STATEMENT_"

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct {
	getenv func(string) string
}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{getenv: os.Getenv}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := filepath.Ext(filePath)
	fileExtension = strings.ToLower(fileExtension)

	// Verifica se o arquivo existe
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	return &config, nil
}

// LoadEnv lê as variáveis STATEMENT_*. Valores do arquivo .env só valem quando
// a variável não está definida no ambiente. Sem envFile, um .env no diretório
// atual é lido se existir.
func (r *ConfigRepositoryImpl) LoadEnv(envFile string) (*types.Config, error) {
	fileValues := map[string]string{}

	path := envFile
	if path == "" {
		path = ".env"
	}
	values, err := godotenv.Read(path)
	switch {
	case err == nil:
		fileValues = values
	case envFile == "" && errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("error reading env file %s: %w", path, err)
	}

	lookup := func(key string) string {
		if v := r.getenv(EnvPrefix + key); v != "" {
			return v
		}
		return fileValues[EnvPrefix+key]
	}

	config := &types.Config{
		CustomerName:   lookup("CUSTOMER_NAME"),
		DocumentNumber: lookup("DOCUMENT_NUMBER"),
		Sheet:          lookup("SHEET"),
		Start:          lookup("START"),
		End:            lookup("END"),
		Dir:            lookup("DIR"),
		CompanyName:    lookup("COMPANY_NAME"),
		Title:          lookup("TITLE"),
		FooterText:     lookup("FOOTER_TEXT"),
		S3Bucket:       lookup("S3_BUCKET"),
		S3Prefix:       lookup("S3_PREFIX"),
		AWSProfile:     lookup("AWS_PROFILE"),
		AWSRegion:      lookup("AWS_REGION"),
	}
	if v := lookup("REPORT_TYPE"); v != "" {
		for _, t := range strings.Split(v, ",") {
			if t = strings.TrimSpace(t); t != "" {
				config.ReportType = append(config.ReportType, t)
			}
		}
	}

	return config, nil
}
