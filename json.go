package formcsv

import (
	"bufio"
	"errors"
	"io"
	"strings"

	json "github.com/goccy/go-json"
)

// Element is the conversion of one data line.
type Element struct {
	// Line is the 1-based line number in the source file, header included.
	Line int
	// Raw is the source line.
	Raw string
	// JSON is the converted text, empty when Err is set.
	JSON string
	// Err is ErrMalformedRow when the line does not match the header.
	Err error
}

// Malformed reports whether the line could not be converted.
func (e Element) Malformed() bool {
	return errors.Is(e.Err, ErrMalformedRow)
}

// JSONConverter converts the lines of a document into a JSON-like text keyed
// by the header names.
type JSONConverter struct {
	doc      *Document
	keys     Header
	elements []Element
}

// NewJSONConverter opens the document at path and uses its header as key set.
// It fails like Open does.
func NewJSONConverter(path string, opts ...Option) (*JSONConverter, error) {
	doc, err := Open(path, opts...)
	if err != nil {
		return nil, err
	}
	return NewJSONConverterFromDocument(doc)
}

// NewJSONConverterFromDocument uses an already loaded document.
func NewJSONConverterFromDocument(doc *Document) (*JSONConverter, error) {
	if !doc.HasHeader() {
		return nil, ErrNoHeader
	}
	return &JSONConverter{
		doc:  doc,
		keys: doc.Header(),
	}, nil
}

// Document returns the source document.
func (c *JSONConverter) Document() *Document {
	return c.doc
}

// ConvertLine converts one raw line.
//
// The output keeps the historical layout, which is not valid JSON because
// pairs end with ';':
//
//	{
//	"key1":"val1";
//	"key2":"val2";
//	}
//
// A line whose cell count differs from the header returns ErrMalformedRow.
func (c *JSONConverter) ConvertLine(line string) (string, error) {
	cells := c.doc.split(line)
	if len(cells) != len(c.keys) {
		return "", malformedRowError(0, len(cells), len(c.keys))
	}

	var sb strings.Builder
	sb.WriteString("{\n")
	for i, cell := range cells {
		sb.WriteString(`"` + c.keys[i] + `":"` + cell + `";` + "\n")
	}
	sb.WriteString("}")
	return sb.String(), nil
}

// ConvertAll converts every data line of the document and stores the result.
func (c *JSONConverter) ConvertAll() []Element {
	lines := c.doc.Lines()
	elements := make([]Element, 0, len(lines))
	for i, line := range lines {
		number := i + 2
		text, err := c.ConvertLine(line)
		if err != nil {
			err = malformedRowError(number, len(c.doc.split(line)), len(c.keys))
		}
		elements = append(elements, Element{
			Line: number,
			Raw:  line,
			JSON: text,
			Err:  err,
		})
	}
	c.elements = elements
	return c.Elements()
}

// Elements returns the elements computed by the last ConvertAll call.
func (c *JSONConverter) Elements() []Element {
	out := make([]Element, len(c.elements))
	copy(out, c.elements)
	return out
}

// EncodeJSON writes the document as a valid JSON array of objects, keys in
// header order. Malformed lines are skipped and returned joined after the
// array has been written.
func (c *JSONConverter) EncodeJSON(w io.Writer) error {
	bw := bufio.NewWriter(w)
	var malformed []error

	if _, err := bw.WriteString("["); err != nil {
		return err
	}
	written := 0
	for i, row := range c.doc.Rows() {
		if len(row) != len(c.keys) {
			malformed = append(malformed, malformedRowError(i+2, len(row), len(c.keys)))
			continue
		}
		if written > 0 {
			if _, err := bw.WriteString(","); err != nil {
				return err
			}
		}
		if err := c.encodeObject(bw, row); err != nil {
			return err
		}
		written++
	}
	if _, err := bw.WriteString("]\n"); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return errors.Join(malformed...)
}

// encodeObject writes one row as a JSON object
func (c *JSONConverter) encodeObject(w *bufio.Writer, row Row) error {
	if _, err := w.WriteString("{"); err != nil {
		return err
	}
	for i, cell := range row {
		if i > 0 {
			if _, err := w.WriteString(","); err != nil {
				return err
			}
		}
		key, err := json.Marshal(c.keys[i])
		if err != nil {
			return err
		}
		value, err := json.Marshal(cell)
		if err != nil {
			return err
		}
		if _, err := w.Write(key); err != nil {
			return err
		}
		if _, err := w.WriteString(":"); err != nil {
			return err
		}
		if _, err := w.Write(value); err != nil {
			return err
		}
	}
	_, err := w.WriteString("}")
	return err
}
