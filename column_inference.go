package formcsv

import (
	"strconv"
	"strings"
)

// columnType represents the SQL column type
type columnType int

const (
	// columnTypeText represents TEXT column type
	columnTypeText columnType = iota
	// columnTypeInteger represents INTEGER column type
	columnTypeInteger
	// columnTypeReal represents REAL column type
	columnTypeReal
)

// String returns the SQL column type string
func (ct columnType) String() string {
	switch ct {
	case columnTypeInteger:
		return "INTEGER"
	case columnTypeReal:
		return "REAL"
	default:
		return "TEXT"
	}
}

// columnInfo represents column information with name and inferred type
type columnInfo struct {
	Name string
	Type columnType
}

// hasLeadingZero reports values such as phone numbers or postal codes that
// would lose digits as numbers
func hasLeadingZero(value string) bool {
	value = strings.TrimLeft(value, "+-")
	return len(value) > 1 && value[0] == '0' && value[1] != '.'
}

// inferColumnType infers the SQL column type from a slice of string values
func inferColumnType(values []string) columnType {
	hasReal := false
	hasInteger := false

	for _, value := range values {
		// Skip empty values for type inference
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}

		if hasLeadingZero(value) {
			return columnTypeText
		}

		// Try to parse as integer
		if _, err := strconv.ParseInt(value, 10, 64); err == nil {
			hasInteger = true
			continue
		}

		// Try to parse as float
		if _, err := strconv.ParseFloat(value, 64); err == nil {
			hasReal = true
			continue
		}

		// If any value is text, the whole column is text
		return columnTypeText
	}

	// Priority: TEXT > REAL > INTEGER
	if hasReal {
		return columnTypeReal
	}
	if hasInteger {
		return columnTypeInteger
	}
	return columnTypeText
}

// inferColumnsInfo infers column information from header and rows
func inferColumnsInfo(header Header, rows []Row) []columnInfo {
	columns := make([]columnInfo, len(header))
	for i, name := range header {
		var values []string
		for _, row := range rows {
			if i < len(row) {
				values = append(values, row[i])
			}
		}
		columns[i] = columnInfo{
			Name: name,
			Type: inferColumnType(values),
		}
	}
	return columns
}
