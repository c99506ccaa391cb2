package formcsv

import (
	"path/filepath"
	"strings"
)

// OutputFormat represents the export file format
type OutputFormat int

const (
	// OutputFormatCSV represents comma separated values
	OutputFormatCSV OutputFormat = iota
	// OutputFormatTSV represents tab separated values
	OutputFormatTSV
	// OutputFormatParquet represents Apache Parquet
	OutputFormatParquet
	// OutputFormatXLSX represents Excel XLSX
	OutputFormatXLSX
	// OutputFormatUnsupported represents an unknown format
	OutputFormatUnsupported
)

// File extensions
const (
	// extCSV is the CSV file extension
	extCSV = ".csv"
	// extTSV is the TSV file extension
	extTSV = ".tsv"
	// extParquet is the Parquet file extension
	extParquet = ".parquet"
	// extXLSX is the Excel XLSX file extension
	extXLSX = ".xlsx"
)

// String returns the string representation of OutputFormat
func (f OutputFormat) String() string {
	switch f {
	case OutputFormatCSV:
		return "csv"
	case OutputFormatTSV:
		return "tsv"
	case OutputFormatParquet:
		return "parquet"
	case OutputFormatXLSX:
		return "xlsx"
	default:
		return "unsupported"
	}
}

// Extension returns the file extension for the format
func (f OutputFormat) Extension() string {
	switch f {
	case OutputFormatCSV:
		return extCSV
	case OutputFormatTSV:
		return extTSV
	case OutputFormatParquet:
		return extParquet
	case OutputFormatXLSX:
		return extXLSX
	default:
		return ""
	}
}

// ExportOptions configures how a document is exported.
//
// Example:
//
//	options := NewExportOptions().
//		WithFormat(OutputFormatParquet).
//		WithCompression(CompressionZSTD)
//
//	err := Export(doc, "records.parquet.zst", options)
type ExportOptions struct {
	// Format specifies the output file format
	Format OutputFormat
	// Compression specifies the compression type
	Compression CompressionType
}

// NewExportOptions creates default export options (CSV, no compression).
func NewExportOptions() ExportOptions {
	return ExportOptions{
		Format:      OutputFormatCSV,
		Compression: CompressionNone,
	}
}

// ExportOptionsFromPath derives the options from the file extensions,
// e.g. "out.tsv.gz" gives TSV with gzip compression.
func ExportOptionsFromPath(path string) ExportOptions {
	compression := detectCompression(path)
	ext := strings.ToLower(filepath.Ext(trimCompressionExtension(path)))

	format := OutputFormatUnsupported
	switch ext {
	case extCSV:
		format = OutputFormatCSV
	case extTSV:
		format = OutputFormatTSV
	case extParquet:
		format = OutputFormatParquet
	case extXLSX:
		format = OutputFormatXLSX
	}

	return ExportOptions{
		Format:      format,
		Compression: compression,
	}
}

// WithFormat sets the output file format.
func (o ExportOptions) WithFormat(format OutputFormat) ExportOptions {
	o.Format = format
	return o
}

// WithCompression adds compression to the output file.
// bzip2 can only be read, exporting with CompressionBZ2 fails.
func (o ExportOptions) WithCompression(compression CompressionType) ExportOptions {
	o.Compression = compression
	return o
}

// FileExtension returns the complete file extension including compression
func (o ExportOptions) FileExtension() string {
	return o.Format.Extension() + o.Compression.Extension()
}
