package fetcher

import (
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// errBodyTooLarge is returned when a decoded body exceeds the configured cap.
var errBodyTooLarge = errors.New("response body exceeds size limit")

// decodeBody undoes the Content-Encoding chain of a response and reads at most
// limit bytes of the result. Encodings are applied in header order, so they
// are removed in reverse.
func decodeBody(body io.Reader, contentEncoding string, limit int64) ([]byte, error) {
	reader := body
	var closers []io.Closer
	defer func() {
		for _, c := range closers {
			c.Close()
		}
	}()

	encodings := strings.Split(contentEncoding, ",")
	for i := len(encodings) - 1; i >= 0; i-- {
		switch enc := strings.ToLower(strings.TrimSpace(encodings[i])); enc {
		case "", "identity":
		case "gzip", "x-gzip":
			gz, err := gzip.NewReader(reader)
			if err != nil {
				return nil, errors.Wrap(err, "failed to create gzip reader")
			}
			closers = append(closers, gz)
			reader = gz
		case "deflate":
			fl := flate.NewReader(reader)
			closers = append(closers, fl)
			reader = fl
		case "br":
			reader = brotli.NewReader(reader)
		case "zstd":
			zr, err := zstd.NewReader(reader)
			if err != nil {
				return nil, errors.Wrap(err, "failed to create zstd reader")
			}
			closers = append(closers, zr.IOReadCloser())
			reader = zr
		default:
			return nil, errors.Errorf("unsupported content encoding %q", enc)
		}
	}

	if limit <= 0 {
		b, err := io.ReadAll(reader)
		return b, errors.Wrap(err, "failed to read response body")
	}

	b, err := io.ReadAll(io.LimitReader(reader, limit+1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}
	if int64(len(b)) > limit {
		return nil, errBodyTooLarge
	}
	return b, nil
}
