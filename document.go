package formcsv

import (
	"bufio"
	"io"
	"strings"
)

// DefaultSeparator is the separator used when none is given
const DefaultSeparator = ';'

// Header is the first row of a document, naming its columns.
type Header []string

// Equal compare Header.
func (h Header) Equal(h2 Header) bool {
	return equalCells(h, h2)
}

// Row is one data line of a document.
type Row []string

// Equal compare Row.
func (r Row) Equal(r2 Row) bool {
	return equalCells(r, r2)
}

// equalCells compares two cell sequences
func equalCells(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i, v := range a {
		if v != b[i] {
			return false
		}
	}
	return true
}

// Document is an in-memory delimited text document: an optional header and
// ordered rows, backed by a file.
//
// A Document starts without header when created with New and must receive
// one with SetHeader before rows can be added. Cells are joined and split
// with the separator only; separators or quotes inside a cell are not
// escaped and corrupt the line.
//
// A Document is not safe for concurrent use. Two Documents saving to the same
// path overwrite each other, the last Save wins.
type Document struct {
	path       string
	separator  rune
	header     Header
	hasHeader  bool
	rows       []Row
	strictRows bool
}

// Option configures a Document.
type Option func(*Document)

// WithSeparator sets the cell separator. The default is ';'.
func WithSeparator(separator rune) Option {
	return func(d *Document) {
		d.separator = separator
	}
}

// WithStrictRows makes AddLine reject rows whose cell count differs from the
// header. Without it mismatches are only detected when the rows are read back.
func WithStrictRows() Option {
	return func(d *Document) {
		d.strictRows = true
	}
}

// New creates an empty Document without header.
func New(path string, separator rune, opts ...Option) *Document {
	d := &Document{
		path:      path,
		separator: separator,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Open loads the document stored at path.
//
// The first line is the header and every following line is a row. An empty
// file returns ErrNoHeader. Files ending in .gz, .bz2, .xz or .zst are
// decompressed. I/O errors keep their cause, so errors.Is(err, fs.ErrNotExist)
// works on a missing file.
func Open(path string, opts ...Option) (*Document, error) {
	d := New(path, DefaultSeparator, opts...)

	data, err := readFile(path)
	if err != nil {
		return nil, NewErrorContext("open", path).Error(err)
	}

	lines := splitLines(string(data))
	if len(lines) == 0 {
		return nil, NewErrorContext("open", path).Error(ErrNoHeader)
	}

	d.header = d.split(lines[0])
	d.hasHeader = true
	for _, line := range lines[1:] {
		d.rows = append(d.rows, Row(d.split(line)))
	}
	return d, nil
}

// splitLines splits content into lines. "\r\n" is accepted and a final line
// terminator does not produce an empty line.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// split splits a line into cells. Empty cells, trailing ones included, are kept.
func (d *Document) split(line string) []string {
	return strings.Split(line, string(d.separator))
}

// join joins cells into a line.
func (d *Document) join(cells []string) string {
	return strings.Join(cells, string(d.separator))
}

// Path returns the file path of the document.
func (d *Document) Path() string {
	return d.path
}

// Separator returns the cell separator.
func (d *Document) Separator() rune {
	return d.separator
}

// HasHeader reports whether a header is set.
func (d *Document) HasHeader() bool {
	return d.hasHeader
}

// Header returns a copy of the header, nil when there is none.
func (d *Document) Header() Header {
	if !d.hasHeader {
		return nil
	}
	return Header(copyCells(d.header))
}

// Rows returns a copy of the rows.
func (d *Document) Rows() []Row {
	rows := make([]Row, len(d.rows))
	for i, row := range d.rows {
		rows[i] = Row(copyCells(row))
	}
	return rows
}

// Lines returns the data rows as raw lines, header excluded.
func (d *Document) Lines() []string {
	lines := make([]string, len(d.rows))
	for i, row := range d.rows {
		lines[i] = d.join(row)
	}
	return lines
}

// SetHeader replaces the header. Existing rows are kept as they are.
func (d *Document) SetHeader(names []string) {
	d.header = Header(copyCells(names))
	d.hasHeader = true
}

// AddLine appends a row. It returns ErrNoHeader when no header is set, and
// with WithStrictRows ErrMalformedRow when the cell count differs from the header.
func (d *Document) AddLine(cells []string) error {
	if !d.hasHeader {
		return ErrNoHeader
	}
	if d.strictRows && len(cells) != len(d.header) {
		return malformedRowError(len(d.rows)+2, len(cells), len(d.header))
	}
	d.rows = append(d.rows, Row(copyCells(cells)))
	return nil
}

// Save writes the header and every row to the document path, one line each,
// replacing any existing file. A document without header saves the rows only.
func (d *Document) Save() error {
	if err := writeFile(d.path, detectCompression(d.path), d.Encode); err != nil {
		return NewErrorContext("save", d.path).Error(err)
	}
	return nil
}

// Encode writes the document lines to w.
func (d *Document) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if d.hasHeader {
		if _, err := bw.WriteString(d.join(d.header) + "\n"); err != nil {
			return err
		}
	}
	for _, row := range d.rows {
		if _, err := bw.WriteString(d.join(row) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// copyCells copies a cell slice so callers can not alias document state
func copyCells(cells []string) []string {
	if cells == nil {
		return []string{}
	}
	out := make([]string, len(cells))
	copy(out, cells)
	return out
}
