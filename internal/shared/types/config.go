package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	CustomerName   string   `json:"customer_name" yaml:"customer_name" toml:"customer_name"`
	DocumentNumber string   `json:"document_number" yaml:"document_number" toml:"document_number"`
	Sheet          string   `json:"sheet" yaml:"sheet" toml:"sheet"`
	Start          string   `json:"start" yaml:"start" toml:"start"`
	End            string   `json:"end" yaml:"end" toml:"end"`
	ReportType     []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir            string   `json:"dir" yaml:"dir" toml:"dir"`
	CompanyName    string   `json:"company_name" yaml:"company_name" toml:"company_name"`
	Title          string   `json:"title" yaml:"title" toml:"title"`
	FooterText     string   `json:"footer_text" yaml:"footer_text" toml:"footer_text"`
	S3Bucket       string   `json:"s3_bucket" yaml:"s3_bucket" toml:"s3_bucket"`
	S3Prefix       string   `json:"s3_prefix" yaml:"s3_prefix" toml:"s3_prefix"`
	AWSProfile     string   `json:"aws_profile" yaml:"aws_profile" toml:"aws_profile"`
	AWSRegion      string   `json:"aws_region" yaml:"aws_region" toml:"aws_region"`
}

// Overlay copies every non-empty field of o over c.
func (c *Config) Overlay(o *Config) {
	if o == nil {
		return
	}
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&c.CustomerName, o.CustomerName)
	set(&c.DocumentNumber, o.DocumentNumber)
	set(&c.Sheet, o.Sheet)
	set(&c.Start, o.Start)
	set(&c.End, o.End)
	set(&c.Dir, o.Dir)
	set(&c.CompanyName, o.CompanyName)
	set(&c.Title, o.Title)
	set(&c.FooterText, o.FooterText)
	set(&c.S3Bucket, o.S3Bucket)
	set(&c.S3Prefix, o.S3Prefix)
	set(&c.AWSProfile, o.AWSProfile)
	set(&c.AWSRegion, o.AWSRegion)
	if len(o.ReportType) > 0 {
		c.ReportType = o.ReportType
	}
}
