package httpx

import (
	"fmt"
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// gzipMinSize skips compression for bodies too small to benefit.
const gzipMinSize = 512

// Gzip compresses responses for clients that accept gzip.
func Gzip() (Middleware, error) {
	wrapper, err := gzhttp.NewWrapper(gzhttp.MinSize(gzipMinSize))
	if err != nil {
		return nil, fmt.Errorf("gzip middleware: %w", err)
	}
	return func(next http.Handler) http.Handler {
		return wrapper(next)
	}, nil
}
