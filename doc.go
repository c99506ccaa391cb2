// Package formcsv stores validated form submissions in delimited text files
// and converts those files to other representations.
//
// # Documents
//
// A Document holds a header and ordered rows in memory and is saved to, or
// loaded from, a single file. The default separator is ';'.
//
//	doc := formcsv.New("records.csv", formcsv.DefaultSeparator)
//	doc.SetHeader(record.AttributeNames())
//	if err := doc.AddLine(record.DataValues()); err != nil {
//	    log.Fatal(err)
//	}
//	if err := doc.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// Opening a file reads its first line as header:
//
//	doc, err := formcsv.Open("records.csv")
//	if errors.Is(err, formcsv.ErrNoHeader) {
//	    // empty file
//	}
//
// Cells are split and joined with the separator only. A separator or a quote
// inside a cell is not escaped; such a cell breaks its line.
//
// # Compression
//
// Open and Save handle compressed files based on the extension:
//   - ".gz" gzip
//   - ".bz2" bzip2 (read only)
//   - ".xz" xz
//   - ".zst" zstandard
//
// # Conversions
//
// JSONConverter turns every data line into a JSON-like text keyed by the
// header (the historical, non standard output) and EncodeJSON writes a valid
// JSON array. Export writes a document as CSV, TSV, XLSX or Parquet, and
// ImportSQLite loads it into a SQLite table.
//
// # Records
//
// The domain/model package provides Record, the validated representation of
// one submission, and the field validators guarding its setters.
package formcsv
