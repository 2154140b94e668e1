package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-faved-comments/internal/config"
	"github.com/MKhiriev/go-faved-comments/internal/logger"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	address    string

	// listen is replaced in tests to bind an ephemeral port.
	listen func(network, address string) (net.Listener, error)

	logger *logger.Logger
}

// NewServer returns a server for router listening on cfg.HTTPAddress.
func NewServer(router http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" || router == nil {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(router, cfg, logger),
		address:    cfg.HTTPAddress,
		listen:     net.Listen,
		logger:     logger,
	}, nil
}

func (s *server) RunServer(ctx context.Context) error {
	listener, err := s.listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.address, err)
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return s.httpServer.serve(listener)
	})
	group.Go(func() error {
		<-groupCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})

	if err = group.Wait(); err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.httpServer.shutdown(ctx)
}
