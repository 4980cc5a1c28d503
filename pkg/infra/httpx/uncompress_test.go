package httpx

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"io"
	"net/http"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipCompress(data []byte) []byte {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, _ = gz.Write(data)
	_ = gz.Close()
	return buf.Bytes()
}

func brCompress(data []byte) []byte {
	var buf bytes.Buffer
	br := brotli.NewWriter(&buf)
	_, _ = br.Write(data)
	_ = br.Close()
	return buf.Bytes()
}

func zstdCompress(data []byte) []byte {
	var buf bytes.Buffer
	zw, _ := zstd.NewWriter(&buf)
	_, _ = zw.Write(data)
	_ = zw.Close()
	return buf.Bytes()
}

func zlibCompress(data []byte) []byte {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	_, _ = zw.Write(data)
	_ = zw.Close()
	return buf.Bytes()
}

func rawDeflateCompress(data []byte) []byte {
	var buf bytes.Buffer
	dw, _ := flate.NewWriter(&buf, flate.DefaultCompression)
	_, _ = dw.Write(data)
	_ = dw.Close()
	return buf.Bytes()
}

func TestDecodeChain(t *testing.T) {
	payload := []byte(`[[{"label":"LABEL_0","score":0.01}]]`)

	tests := []struct {
		name     string
		encoding string
		body     []byte
	}{
		{"identity", "", payload},
		{"gzip", "gzip", gzipCompress(payload)},
		{"brotli", "br", brCompress(payload)},
		{"zstd", "zstd", zstdCompress(payload)},
		{"zlib deflate", "deflate", zlibCompress(payload)},
		{"raw deflate", "deflate", rawDeflateCompress(payload)},
		{"chained", "gzip, br", brCompress(gzipCompress(payload))},
		{"upper case", "GZIP", gzipCompress(payload)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := DecodeChain(tt.encoding, tt.body)
			require.NoError(t, err)
			assert.Equal(t, payload, out)
		})
	}
}

func TestDecodeChain_Errors(t *testing.T) {
	_, err := DecodeChain("lzma", []byte("x"))
	assert.EqualError(t, err, `unsupported content-encoding: "lzma"`)

	_, err = DecodeChain("gzip", []byte("not gzip"))
	assert.Error(t, err)
}

func TestReadBody(t *testing.T) {
	payload := []byte(`{"ok":true}`)
	resp := &http.Response{
		Header: http.Header{"Content-Encoding": []string{"zstd"}},
		Body:   io.NopCloser(bytes.NewReader(zstdCompress(payload))),
	}

	out, err := ReadBody(resp)

	require.NoError(t, err)
	assert.Equal(t, payload, out)
}
