package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/rkprasad/portfolio/internal/platform/config"
	"github.com/rkprasad/portfolio/internal/platform/readiness"
	"github.com/rkprasad/portfolio/internal/platform/timeouts"
	"github.com/rkprasad/portfolio/internal/services/web/content"
	"github.com/rkprasad/portfolio/internal/services/web/storage"
	"github.com/rkprasad/portfolio/internal/services/web/storage/sqlite"
	"golang.org/x/sync/errgroup"
)

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr string
	// HealthAddr enables the gRPC health endpoint when set.
	HealthAddr string
	Mode       config.Mode
	// BasePath overrides the deploy base. Empty selects the mode default.
	BasePath string
	// ContentPath loads site content from a YAML file instead of the
	// embedded document. Development reloads it on change.
	ContentPath string
	// InboxPath records contact submissions in a SQLite file when set.
	InboxPath string
	// SubmitDelay is the simulated contact latency. Negative selects the
	// default.
	SubmitDelay time.Duration
	// ContactRateInterval is the refill interval of the per-client contact
	// limiter. Zero selects the default.
	ContactRateInterval time.Duration
	ContactRateBurst    int
	// MinimumLoad is the readiness floor. Zero selects the default and a
	// negative value disables it.
	MinimumLoad         time.Duration
	TrustForwardedProto bool
	TrustForwardedFor   bool
	Logger              *log.Logger
}

// Server hosts the portfolio HTTP server.
type Server struct {
	httpAddr   string
	healthAddr string
	httpServer *http.Server
	site       *Site
	watcher    *content.Watcher
	inbox      storage.Store
	logger     *log.Logger
}

// NewServer builds a configured web server.
func NewServer(config Config) (*Server, error) {
	return NewServerWithContext(context.Background(), config)
}

// NewServerWithContext builds a configured web server. The context bounds
// opening the inbox.
func NewServerWithContext(ctx context.Context, config Config) (*Server, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	logger := config.Logger
	if logger == nil {
		logger = log.Default()
	}
	config.Logger = logger

	var inbox storage.Store
	if path := strings.TrimSpace(config.InboxPath); path != "" {
		openCtx, cancel := context.WithTimeout(ctx, timeouts.StorageOpen)
		store, err := sqlite.Open(openCtx, path)
		cancel()
		if err != nil {
			return nil, fmt.Errorf("open contact inbox: %w", err)
		}
		inbox = store
	}

	site, err := NewSite(config, SiteDependencies{Inbox: inbox})
	if err != nil {
		if inbox != nil {
			_ = inbox.Close()
		}
		return nil, fmt.Errorf("build site: %w", err)
	}

	var watcher *content.Watcher
	if path := strings.TrimSpace(config.ContentPath); path != "" && !config.Mode.IsProduction() {
		watcher = content.NewWatcher(path, site.Content, logger)
	}

	return &Server{
		httpAddr:   httpAddr,
		healthAddr: strings.TrimSpace(config.HealthAddr),
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           site.Handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			WriteTimeout:      timeouts.Write,
			IdleTimeout:       timeouts.Idle,
		},
		site:    site,
		watcher: watcher,
		inbox:   inbox,
		logger:  logger,
	}, nil
}

// Site returns the assembled HTTP surface.
func (s *Server) Site() *Site {
	if s == nil {
		return nil
	}
	return s.site
}

// ListenAndServe binds the HTTP address and serves until ctx ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	lis, err := net.Listen("tcp", s.httpAddr)
	if err != nil {
		return fmt.Errorf("listen http %s: %w", s.httpAddr, err)
	}
	return s.Serve(ctx, lis)
}

// Serve runs the HTTP server on lis alongside the readiness gate, the
// optional health endpoint and the optional content watcher. A bound
// listener is the gate's load signal.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}
	if lis == nil {
		return errors.New("listener is required")
	}

	loaded := make(chan struct{})
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		err := s.site.Gate.Run(groupCtx, loaded, s.site.Tasks()...)
		if err != nil && groupCtx.Err() != nil {
			return nil
		}
		return err
	})
	if s.healthAddr != "" {
		group.Go(func() error {
			return readiness.ServeHealth(groupCtx, s.healthAddr, s.site.Gate)
		})
	}
	if s.watcher != nil {
		group.Go(func() error {
			return s.watcher.Run(groupCtx)
		})
	}
	group.Go(func() error {
		serveErr := make(chan error, 1)
		s.logger.Printf("web listening addr=%s base=%q mode=%s", lis.Addr(), s.site.Paths.Base(), s.site.Mode)
		go func() {
			serveErr <- s.httpServer.Serve(lis)
		}()
		close(loaded)

		select {
		case <-groupCtx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
			err := s.httpServer.Shutdown(shutdownCtx)
			cancel()
			if err != nil {
				return fmt.Errorf("shutdown http server: %w", err)
			}
			<-serveErr
			return nil
		case err := <-serveErr:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("serve http: %w", err)
		}
	})

	return group.Wait()
}

// Close releases the inbox held by the server.
func (s *Server) Close() {
	if s == nil || s.inbox == nil {
		return
	}
	if err := s.inbox.Close(); err != nil {
		s.logger.Printf("close contact inbox: %v", err)
	}
}
