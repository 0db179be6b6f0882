package mapfile

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression defines the codec wrapped around a map or scenario stream.
type Compression uint8

const (
	// CompressionNone indicates plain text.
	CompressionNone Compression = iota
	// CompressionZSTD indicates a zstd stream (".zst").
	CompressionZSTD
	// CompressionLZ4 indicates an lz4 frame (".lz4").
	CompressionLZ4
	// CompressionBrotli indicates a brotli stream (".br").
	CompressionBrotli
)

// String returns the file extension of c, or "none".
func (c Compression) String() string {
	switch c {
	case CompressionZSTD:
		return "zst"
	case CompressionLZ4:
		return "lz4"
	case CompressionBrotli:
		return "br"
	default:
		return "none"
	}
}

// CompressionFor picks the codec from the extension of path.
func CompressionFor(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		return CompressionZSTD
	case ".lz4":
		return CompressionLZ4
	case ".br":
		return CompressionBrotli
	default:
		return CompressionNone
	}
}

// NewReader wraps r with the decoder for c. Closing the result does not close r.
func NewReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case CompressionZSTD:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zstdReadCloser{dec}, nil
	case CompressionLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	case CompressionBrotli:
		return io.NopCloser(brotli.NewReader(r)), nil
	default:
		return io.NopCloser(r), nil
	}
}

// NewWriter wraps w with the encoder for c. Close flushes the encoder but does
// not close w.
func NewWriter(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case CompressionZSTD:
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	case CompressionLZ4:
		return lz4.NewWriter(w), nil
	case CompressionBrotli:
		return brotli.NewWriterLevel(w, brotli.DefaultCompression), nil
	default:
		return nopWriteCloser{w}, nil
	}
}

// zstd.Decoder.Close returns nothing.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
