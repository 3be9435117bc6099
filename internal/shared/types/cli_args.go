package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile     string
	EnvFile        string
	File           string
	Sheet          string
	ListSheets     bool
	CustomerName   string
	DocumentNumber string
	Start          string
	End            string
	ReportType     []string
	Dir            string
	Preview        bool
	S3Bucket       string
	S3Prefix       string
	AWSProfile     string
	AWSRegion      string
	LogLevel       string
	LogFormat      string
}
