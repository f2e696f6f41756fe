package readiness

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthService is the gRPC health service name reported for the site.
const HealthService = "portfolio.web"

// NewHealthServer returns a gRPC health server mirroring the gate: NOT_SERVING
// while loading, SERVING once open. Both the overall ("") and HealthService
// entries are kept in sync.
func NewHealthServer(g *Gate) *health.Server {
	srv := health.NewServer()
	g.OnChange(func(ready bool) {
		status := healthpb.HealthCheckResponse_NOT_SERVING
		if ready {
			status = healthpb.HealthCheckResponse_SERVING
		}
		srv.SetServingStatus("", status)
		srv.SetServingStatus(HealthService, status)
	})
	return srv
}

// ServeHealth exposes the gate over the gRPC health protocol on addr until ctx
// ends.
func ServeHealth(ctx context.Context, addr string, g *Gate) error {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return errors.New("health address is required")
	}
	if g == nil {
		return errors.New("readiness gate is required")
	}
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen health %s: %w", addr, err)
	}
	return serveHealth(ctx, lis, g)
}

func serveHealth(ctx context.Context, lis net.Listener, g *Gate) error {
	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	healthSrv := NewHealthServer(g)
	healthpb.RegisterHealthServer(grpcServer, healthSrv)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- grpcServer.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		healthSrv.Shutdown()
		grpcServer.GracefulStop()
		return nil
	case err := <-serveErr:
		if errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve health: %w", err)
	}
}
