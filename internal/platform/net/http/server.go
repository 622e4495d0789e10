package http

import (
	"context"
	"errors"
	stdhttp "net/http"
	"strings"
	"time"

	"gsa/internal/platform/config"
	"gsa/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"
)

// Server serves a chi mux with graceful shutdown
type Server struct {
	mux *chi.Mux
	srv *stdhttp.Server
}

// NewServer builds the server from cfg. PORT accepts "9392" or "host:9392"
// (default 9392); READ_HEADER_TIMEOUT, READ_TIMEOUT, WRITE_TIMEOUT and
// IDLE_TIMEOUT tune the listener. opts receive the mux before any route is mounted
func NewServer(cfg config.Conf, opts ...func(*chi.Mux)) *Server {
	addr := cfg.MayString("PORT", "9392")
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}
	mux := chi.NewRouter()
	for _, o := range opts {
		o(mux)
	}
	return &Server{
		mux: mux,
		srv: &stdhttp.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: cfg.MayDuration("READ_HEADER_TIMEOUT", 10*time.Second),
			ReadTimeout:       cfg.MayDuration("READ_TIMEOUT", 30*time.Second),
			WriteTimeout:      cfg.MayDuration("WRITE_TIMEOUT", 90*time.Second),
			IdleTimeout:       cfg.MayDuration("IDLE_TIMEOUT", 2*time.Minute),
		},
	}
}

// Router exposes the mux through the Router seam
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr is the configured listen address
func (s *Server) Addr() string { return s.srv.Addr }

// Run serves until ctx ends or the listener fails. On ctx end in-flight
// requests get grace to finish
func (s *Server) Run(ctx context.Context, grace time.Duration) error {
	log := logger.Named("http")
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", s.srv.Addr).Msg("http listening")
		if err := s.srv.ListenAndServe(); !errors.Is(err, stdhttp.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Dur("grace", grace).Msg("http shutting down")
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), grace)
		defer cancel()
		return s.srv.Shutdown(sctx)
	})
	return g.Wait()
}
