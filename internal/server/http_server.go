package server

import (
	"context"
	"net/http"
)

// httpServer is the narrow surface the lifecycle code needs from a listener.
// Tests substitute a scripted implementation so startup and shutdown ordering
// can be observed without binding real ports.
type httpServer interface {
	ListenAndServe() error
	Shutdown(context.Context) error
	Addr() string
	Handler() http.Handler
}

// stdServer adapts *http.Server to the seam. Both the public API listener and
// the metrics listener run through it.
type stdServer struct {
	srv *http.Server
}

func (s stdServer) ListenAndServe() error { return s.srv.ListenAndServe() }

func (s stdServer) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }

func (s stdServer) Addr() string { return s.srv.Addr }

func (s stdServer) Handler() http.Handler { return s.srv.Handler }
