// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/vidly/internal/app"
	"github.com/MKhiriev/vidly/internal/utils"
)

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGzipRequest transparently decompresses request bodies sent with
// "Content-Encoding: gzip". Response compression is done by chi's Compress
// middleware.
func withGzipRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") || r.Body == nil || r.Body == http.NoBody {
			next.ServeHTTP(w, r)
			return
		}

		gzipReader := gzipReaderPool.Get().(*gzip.Reader)
		if err := gzipReader.Reset(r.Body); err != nil {
			gzipReaderPool.Put(gzipReader)
			utils.WriteText(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}

		r.Body = &pooledReadCloser{
			Reader: gzipReader,
			close: func() {
				gzipReader.Close()
				gzipReaderPool.Put(gzipReader)
			},
		}
		r.Header.Del("Content-Encoding")
		r.Header.Del("Content-Length")
		r.ContentLength = -1

		next.ServeHTTP(w, r)
	})
}

// pooledReadCloser returns its reader to the pool once on Close.
type pooledReadCloser struct {
	io.Reader
	close func()
	once  sync.Once
}

func (p *pooledReadCloser) Close() error {
	p.once.Do(p.close)
	return nil
}
