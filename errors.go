package formcsv

import (
	"errors"
	"fmt"
	"strings"
)

// Standard error messages and error creation functions for consistency
var (
	// ErrNoHeader indicates that the document has no header: the source file is
	// empty, or a row was added before SetHeader.
	ErrNoHeader = errors.New("formcsv: no csv header")

	// ErrMalformedRow indicates a row whose cell count differs from the header
	ErrMalformedRow = errors.New("formcsv: malformed row")

	// ErrDuplicateColumnName is returned when a header contains the same column twice
	ErrDuplicateColumnName = errors.New("formcsv: duplicate column name")

	// ErrUnsupportedFormat indicates an unsupported output format
	ErrUnsupportedFormat = errors.New("formcsv: unsupported file format")
)

// ErrorContext provides context for where an error occurred
type ErrorContext struct {
	Operation string
	FilePath  string
	TableName string
	Details   string
}

// NewErrorContext creates a new error context
func NewErrorContext(operation, filePath string) *ErrorContext {
	return &ErrorContext{
		Operation: operation,
		FilePath:  filePath,
	}
}

// WithTable adds table context to the error
func (ec *ErrorContext) WithTable(tableName string) *ErrorContext {
	ec.TableName = tableName
	return ec
}

// WithDetails adds details to the error context
func (ec *ErrorContext) WithDetails(details string) *ErrorContext {
	ec.Details = details
	return ec
}

// Error creates a formatted error with context
func (ec *ErrorContext) Error(baseErr error) error {
	var parts []string
	parts = append(parts, fmt.Sprintf("formcsv: %s failed", ec.Operation))

	if ec.FilePath != "" {
		parts = append(parts, "file: "+ec.FilePath)
	}

	if ec.TableName != "" {
		parts = append(parts, "table: "+ec.TableName)
	}

	if ec.Details != "" {
		parts = append(parts, "details: "+ec.Details)
	}

	context := strings.Join(parts, ", ")
	if baseErr != nil {
		return fmt.Errorf("%s: %w", context, baseErr)
	}
	return fmt.Errorf("%s", context)
}

// malformedRowError reports the line and the cell counts of a malformed row.
// A line lower than 1 is unknown and omitted.
func malformedRowError(line, got, want int) error {
	if line < 1 {
		return fmt.Errorf("%w: %d cells, header has %d", ErrMalformedRow, got, want)
	}
	return fmt.Errorf("%w: line %d has %d cells, header has %d", ErrMalformedRow, line, got, want)
}
