package formcsv

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectCompression(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want CompressionType
	}{
		{path: "records.csv", want: CompressionNone},
		{path: "records.csv.gz", want: CompressionGZ},
		{path: "RECORDS.CSV.GZ", want: CompressionGZ},
		{path: "records.csv.bz2", want: CompressionBZ2},
		{path: "records.csv.xz", want: CompressionXZ},
		{path: "records.csv.zst", want: CompressionZSTD},
		{path: "Csv.txt", want: CompressionNone},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, detectCompression(tt.path))
		})
	}
}

func TestTrimCompressionExtension(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "records.csv", trimCompressionExtension("records.csv.gz"))
	assert.Equal(t, "records.parquet", trimCompressionExtension("records.parquet.zst"))
	assert.Equal(t, "records.csv", trimCompressionExtension("records.csv"))
}

func TestCompressionType_StringAndExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		compression CompressionType
		str         string
		ext         string
	}{
		{compression: CompressionNone, str: "none", ext: ""},
		{compression: CompressionGZ, str: "gz", ext: ".gz"},
		{compression: CompressionBZ2, str: "bz2", ext: ".bz2"},
		{compression: CompressionXZ, str: "xz", ext: ".xz"},
		{compression: CompressionZSTD, str: "zstd", ext: ".zst"},
		{compression: CompressionType(999), str: "none", ext: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.str, tt.compression.String())
		assert.Equal(t, tt.ext, tt.compression.Extension())
	}
}

func TestCompressRoundTrip(t *testing.T) {
	t.Parallel()

	for _, compression := range []CompressionType{CompressionNone, CompressionGZ, CompressionXZ, CompressionZSTD} {
		t.Run(compression.String(), func(t *testing.T) {
			t.Parallel()

			content := []byte("\"nome\";\"cognome\"\n\"John\";\"Doe\"\n")

			var buf bytes.Buffer
			w, closeWriter, err := newCompressWriter(&buf, compression)
			require.NoError(t, err)
			_, err = w.Write(content)
			require.NoError(t, err)
			require.NoError(t, closeWriter())

			r, closeReader, err := newDecompressReader(&buf, compression)
			require.NoError(t, err)
			got, err := io.ReadAll(r)
			require.NoError(t, err)
			require.NoError(t, closeReader())

			assert.Equal(t, content, got)
		})
	}
}

func TestNewCompressWriter_BZ2(t *testing.T) {
	t.Parallel()

	_, _, err := newCompressWriter(io.Discard, CompressionBZ2)
	assert.ErrorIs(t, err, errBZ2Write)
}

func TestNewDecompressReader_InvalidGzip(t *testing.T) {
	t.Parallel()

	_, _, err := newDecompressReader(bytes.NewReader([]byte("not gzip")), CompressionGZ)
	assert.Error(t, err)
}
