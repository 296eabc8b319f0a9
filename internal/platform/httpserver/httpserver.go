// Package httpserver builds the http.Server hosting the registration API.
package httpserver

import (
	"net/http"
	"time"
)

// New builds the server. The write timeout leaves headroom over the
// handler's 60s request timeout so provisioning runs that approach the
// deadline still get their error response written; registration payloads are
// small JSON documents, so the header and body limits stay tight.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10,
	}
}
