package entity

import "time"

// Metadata is the user-supplied information printed in the header band.
type Metadata struct {
	CustomerName   string
	DocumentNumber string
	GeneratedAt    time.Time
}

// Branding carries the fixed texts of the statement layout.
type Branding struct {
	CompanyName string
	Title       string
	FooterText  string
}

// Statement is the full result of one pipeline invocation.
type Statement struct {
	Sheet     string            `json:"sheet"`
	Metadata  Metadata          `json:"-"`
	Rows      []UsageRecord     `json:"rows"`
	Summaries []CategorySummary `json:"summaries"`
	Range     DateRange         `json:"date_range"`
	Document  *ReportDocument   `json:"-"`
}

// PublishTarget is the S3 location generated files are uploaded to.
type PublishTarget struct {
	Bucket  string
	Prefix  string
	Profile string
	Region  string
}

// Enabled reports whether a bucket was configured.
func (t PublishTarget) Enabled() bool {
	return t.Bucket != ""
}
