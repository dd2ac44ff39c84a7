package mineral

import (
	"bytes"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/jmylchreest/mineral/internal/logger"
)

// prunableTypes lists the media types the middleware rewrites.
var prunableTypes = map[string]bool{
	"text/html":  true,
	"text/xhtml": true,
}

// IsPrunable reports whether a Content-Type header value names a media type
// the middleware rewrites.
func IsPrunable(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return prunableTypes[mediaType]
}

// isEncoded reports whether a response body carries a content coding such
// as gzip. Encoded bodies are not text and must not be rewritten.
func isEncoded(header http.Header) bool {
	enc := strings.TrimSpace(header.Get("Content-Encoding"))
	return enc != "" && !strings.EqualFold(enc, "identity")
}

// Middleware returns HTTP middleware that runs h's AfterLayout over every
// unencoded HTML response. Other responses pass through untouched. A hook
// failure turns the response into a 500.
func Middleware(h *Helper) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &bufferedResponse{header: make(http.Header), status: http.StatusOK}
			next.ServeHTTP(rec, r)

			for k, v := range rec.header {
				w.Header()[k] = v
			}

			if h.Enabled() && IsPrunable(rec.header.Get("Content-Type")) && !isEncoded(rec.header) {
				if err := h.AfterLayout(rec); err != nil {
					logger.Error("pruning response failed", "path", r.URL.Path, "error", err)
					w.Header().Del("Content-Length")
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					return
				}
				w.Header().Set("Content-Length", strconv.Itoa(rec.body.Len()))
			}

			w.WriteHeader(rec.status)
			_, _ = w.Write(rec.body.Bytes())
		})
	}
}

// bufferedResponse captures a downstream response so its body can be
// rewritten before anything reaches the client.
type bufferedResponse struct {
	header      http.Header
	body        bytes.Buffer
	status      int
	wroteHeader bool
}

func (b *bufferedResponse) Header() http.Header {
	return b.header
}

func (b *bufferedResponse) WriteHeader(status int) {
	if b.wroteHeader {
		return
	}
	b.status = status
	b.wroteHeader = true
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	if !b.wroteHeader {
		if b.header.Get("Content-Type") == "" {
			b.header.Set("Content-Type", http.DetectContentType(p))
		}
		b.WriteHeader(http.StatusOK)
	}
	return b.body.Write(p)
}

// GetRenderedBody implements Body.
func (b *bufferedResponse) GetRenderedBody() string {
	return b.body.String()
}

// SetRenderedBody implements Body.
func (b *bufferedResponse) SetRenderedBody(content string) {
	b.body.Reset()
	b.body.WriteString(content)
}
