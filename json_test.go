package formcsv

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDocument(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "records.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewJSONConverter(t *testing.T) {
	t.Parallel()

	t.Run("empty file", func(t *testing.T) {
		t.Parallel()

		_, err := NewJSONConverter(writeDocument(t, ""))
		assert.ErrorIs(t, err, ErrNoHeader)
	})

	t.Run("document without header", func(t *testing.T) {
		t.Parallel()

		_, err := NewJSONConverterFromDocument(New("records.csv", DefaultSeparator))
		assert.ErrorIs(t, err, ErrNoHeader)
	})
}

func TestJSONConverter_ConvertLine(t *testing.T) {
	t.Parallel()

	c, err := NewJSONConverter(writeDocument(t, "name;city\n"))
	require.NoError(t, err)

	t.Run("matching line", func(t *testing.T) {
		t.Parallel()

		got, err := c.ConvertLine("John;milano")
		require.NoError(t, err)
		assert.Equal(t, "{\n\"name\":\"John\";\n\"city\":\"milano\";\n}", got)
	})

	t.Run("too few cells", func(t *testing.T) {
		t.Parallel()

		got, err := c.ConvertLine("John")
		require.ErrorIs(t, err, ErrMalformedRow)
		assert.Empty(t, got)
	})

	t.Run("too many cells", func(t *testing.T) {
		t.Parallel()

		_, err := c.ConvertLine("John;milano;extra")
		assert.ErrorIs(t, err, ErrMalformedRow)
	})
}

func TestJSONConverter_ConvertAll(t *testing.T) {
	t.Parallel()

	c, err := NewJSONConverter(writeDocument(t, "a,b\n1,2\nbroken\n3,4\n"), WithSeparator(','))
	require.NoError(t, err)
	assert.Empty(t, c.Elements(), "nothing converted yet")

	elements := c.ConvertAll()
	require.Len(t, elements, 3)
	assert.Equal(t, elements, c.Elements())

	assert.Equal(t, 2, elements[0].Line)
	assert.Equal(t, "1,2", elements[0].Raw)
	assert.Equal(t, "{\n\"a\":\"1\";\n\"b\":\"2\";\n}", elements[0].JSON)
	assert.False(t, elements[0].Malformed())

	assert.True(t, elements[1].Malformed())
	assert.Equal(t, 3, elements[1].Line)
	assert.Contains(t, elements[1].Err.Error(), "line 3")
	assert.Empty(t, elements[1].JSON)

	assert.False(t, elements[2].Malformed())
}

func TestJSONConverter_EncodeJSON(t *testing.T) {
	t.Parallel()

	t.Run("valid rows", func(t *testing.T) {
		t.Parallel()

		c, err := NewJSONConverter(writeDocument(t, "name;quote\nJohn;say \"hi\"\nJane;\n"))
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, c.EncodeJSON(&buf))

		assert.Equal(t, `[{"name":"John","quote":"say \"hi\""},{"name":"Jane","quote":""}]`+"\n", buf.String())

		var decoded []map[string]string
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Len(t, decoded, 2)
	})

	t.Run("malformed rows are skipped", func(t *testing.T) {
		t.Parallel()

		c, err := NewJSONConverter(writeDocument(t, "a;b\n1;2\nbroken\n"))
		require.NoError(t, err)

		var buf bytes.Buffer
		err = c.EncodeJSON(&buf)
		require.ErrorIs(t, err, ErrMalformedRow)
		assert.Equal(t, `[{"a":"1","b":"2"}]`+"\n", buf.String())
	})
}
