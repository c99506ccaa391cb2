package formcsv

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/memory"
	"github.com/apache/arrow/go/v18/parquet"
	"github.com/apache/arrow/go/v18/parquet/pqarrow"
	"github.com/xuri/excelize/v2"
)

// xlsxSheet is the sheet written by XLSX export
const xlsxSheet = "Sheet1"

// Export writes doc to path in the format selected by options.
//
// CSV and TSV exports use standard quoting, so cells holding the separator
// survive. Parquet stores every column as a UTF-8 string and needs every row
// to match the header. The document itself is not modified.
func Export(doc *Document, path string, options ExportOptions) error {
	ec := NewErrorContext("export", path).WithDetails(options.Format.String())
	if !doc.HasHeader() {
		return ec.Error(ErrNoHeader)
	}

	var write func(w io.Writer) error
	switch options.Format {
	case OutputFormatCSV:
		write = func(w io.Writer) error { return exportDelimited(doc, w, ',') }
	case OutputFormatTSV:
		write = func(w io.Writer) error { return exportDelimited(doc, w, '\t') }
	case OutputFormatXLSX:
		write = func(w io.Writer) error { return exportXLSX(doc, w) }
	case OutputFormatParquet:
		if err := checkRows(doc); err != nil {
			return ec.Error(err)
		}
		write = func(w io.Writer) error { return exportParquet(doc, w) }
	default:
		return ec.Error(ErrUnsupportedFormat)
	}

	if err := writeFile(path, options.Compression, write); err != nil {
		return ec.Error(err)
	}
	return nil
}

// checkRows returns ErrMalformedRow for the first row not matching the header
func checkRows(doc *Document) error {
	width := len(doc.header)
	for i, row := range doc.rows {
		if len(row) != width {
			return malformedRowError(i+2, len(row), width)
		}
	}
	return nil
}

// exportDelimited writes the document with encoding/csv
func exportDelimited(doc *Document, w io.Writer, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma

	if err := cw.Write(doc.header); err != nil {
		return err
	}
	for _, row := range doc.rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// exportXLSX writes the document as a single sheet workbook
func exportXLSX(doc *Document, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := setXLSXRow(f, 1, doc.header); err != nil {
		return err
	}
	for i, row := range doc.rows {
		if err := setXLSXRow(f, i+2, row); err != nil {
			return err
		}
	}
	return f.Write(w)
}

// setXLSXRow writes cells starting at column A of the given row
func setXLSXRow(f *excelize.File, rowNumber int, cells []string) error {
	if len(cells) == 0 {
		return nil
	}
	cell, err := excelize.CoordinatesToCellName(1, rowNumber)
	if err != nil {
		return err
	}
	values := make([]any, len(cells))
	for i, v := range cells {
		values[i] = v
	}
	if err := f.SetSheetRow(xlsxSheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write xlsx row %d: %w", rowNumber, err)
	}
	return nil
}

// writeOnly hides io.Closer from the parquet writer, the caller owns the file
type writeOnly struct {
	io.Writer
}

// exportParquet writes the document as a parquet file with string columns
func exportParquet(doc *Document, w io.Writer) error {
	fields := make([]arrow.Field, len(doc.header))
	for i, name := range doc.header {
		fields[i] = arrow.Field{Name: name, Type: arrow.BinaryTypes.String}
	}
	schema := arrow.NewSchema(fields, nil)

	builder := array.NewRecordBuilder(memory.DefaultAllocator, schema)
	defer builder.Release()

	for _, row := range doc.rows {
		for i, cell := range row {
			builder.Field(i).(*array.StringBuilder).Append(cell)
		}
	}

	record := builder.NewRecord()
	defer record.Release()

	table := array.NewTableFromRecords(schema, []arrow.Record{record})
	defer table.Release()

	chunkSize := int64(max(len(doc.rows), 1))
	if err := pqarrow.WriteTable(table, writeOnly{w}, chunkSize,
		parquet.NewWriterProperties(), pqarrow.DefaultWriterProps()); err != nil {
		return fmt.Errorf("failed to write parquet: %w", err)
	}
	return nil
}
