package types

import (
	"errors"
	"fmt"
)

var (
	ErrUnreadableFile    = errors.New("could not read the spreadsheet file")
	ErrUnsupportedFormat = errors.New("unsupported spreadsheet format, expected .xlsx, .xlsm or .xls")
	ErrNoSheets          = errors.New("the workbook has no sheets")
	ErrSheetNotFound     = errors.New("sheet not found in workbook")
	ErrEmptySheet        = errors.New("the selected sheet has no data rows")
	ErrNoColumns         = errors.New("no start time, end time, usage type or amount column found")
	ErrNoUsageRows       = errors.New("could not extract data from the sheet or all amounts are zero")
	ErrLayout            = errors.New("could not lay out the statement")
	ErrRender            = errors.New("could not write the statement")
	ErrInvalidFilter     = errors.New("invalid date filter")
)

// ReasonCode classifies a pipeline failure.
type ReasonCode string

const (
	ReasonInput      ReasonCode = "input"
	ReasonGeneration ReasonCode = "generation"
	ReasonConfig     ReasonCode = "config"
	ReasonPublish    ReasonCode = "publish"
)

// StatementError is the only error returned across the pipeline boundary.
type StatementError struct {
	Reason ReasonCode
	Err    error
}

func (e *StatementError) Error() string {
	switch e.Reason {
	case ReasonInput:
		return fmt.Sprintf("Error processing Excel file: %v", e.Err)
	case ReasonGeneration:
		return fmt.Sprintf("Error generating PDF: %v", e.Err)
	case ReasonPublish:
		return fmt.Sprintf("Error publishing statement: %v", e.Err)
	default:
		return fmt.Sprintf("Invalid configuration: %v", e.Err)
	}
}

func (e *StatementError) Unwrap() error {
	return e.Err
}

// InputError wraps err as an input failure.
func InputError(err error) error {
	return &StatementError{Reason: ReasonInput, Err: err}
}

// GenerationError wraps err as a generation failure.
func GenerationError(err error) error {
	return &StatementError{Reason: ReasonGeneration, Err: err}
}

// ConfigError wraps err as a configuration failure.
func ConfigError(err error) error {
	return &StatementError{Reason: ReasonConfig, Err: err}
}

// PublishError wraps err as an upload failure.
func PublishError(err error) error {
	return &StatementError{Reason: ReasonPublish, Err: err}
}

// ReasonOf returns the reason code of err, or "" when err did not come from
// the pipeline.
func ReasonOf(err error) ReasonCode {
	var se *StatementError
	if errors.As(err, &se) {
		return se.Reason
	}
	return ""
}
