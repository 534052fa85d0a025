package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-auth-keeper/internal/app"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
)

var (
	gzipWriters = sync.Pool{New: func() any { return gzip.NewWriter(io.Discard) }}
	gzipReaders = sync.Pool{New: func() any { return new(gzip.Reader) }}
)

// withGZip decompresses gzip request bodies and compresses responses for
// clients that send "Accept-Encoding: gzip".
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			body, err := newGzipBody(r.Body)
			if err != nil {
				utils.WriteMessage(w, app.MsgInvalidJSON, http.StatusBadRequest)
				return
			}
			r.Body = body
			r.Header.Del("Content-Encoding")
		}

		w.Header().Add("Vary", "Accept-Encoding")
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		gw := newGzipResponseWriter(w)
		defer gw.finish()

		next.ServeHTTP(gw, r)
	})
}

// gzipBody returns its reader to the pool on Close.
type gzipBody struct {
	*gzip.Reader
	source io.ReadCloser
}

func newGzipBody(source io.ReadCloser) (*gzipBody, error) {
	zr := gzipReaders.Get().(*gzip.Reader)
	if err := zr.Reset(source); err != nil {
		gzipReaders.Put(zr)
		return nil, err
	}
	return &gzipBody{Reader: zr, source: source}, nil
}

func (b *gzipBody) Close() error {
	b.Reader.Close()
	gzipReaders.Put(b.Reader)
	return b.source.Close()
}

// gzipResponseWriter holds the status back until the first Write, so a
// response without a body is sent without Content-Encoding.
type gzipResponseWriter struct {
	http.ResponseWriter
	zw *gzip.Writer

	status  int
	started bool
}

func newGzipResponseWriter(w http.ResponseWriter) *gzipResponseWriter {
	return &gzipResponseWriter{ResponseWriter: w}
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.status == 0 {
		w.status = statusCode
	}
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.started {
		w.started = true
		if w.status == 0 {
			w.status = http.StatusOK
		}
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length")
		w.ResponseWriter.WriteHeader(w.status)

		w.zw = gzipWriters.Get().(*gzip.Writer)
		w.zw.Reset(w.ResponseWriter)
	}
	return w.zw.Write(data)
}

// finish flushes the compressed stream, or forwards a bodiless status.
func (w *gzipResponseWriter) finish() {
	if w.zw != nil {
		w.zw.Close()
		gzipWriters.Put(w.zw)
		return
	}
	if w.status != 0 {
		w.ResponseWriter.WriteHeader(w.status)
	}
}
