// Package cmd holds the startup plumbing shared by the portfolio commands:
// environment then flag configuration, and a telemetry scope around the
// command body.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/rkprasad/portfolio/internal/platform/config"
	"github.com/rkprasad/portfolio/internal/platform/otel"
)

// telemetryFlushTimeout bounds flushing spans on exit.
const telemetryFlushTimeout = 5 * time.Second

// Command names, also used as the telemetry service suffix.
const (
	ServiceWeb       = "web"
	ServiceSiteBuild = "sitebuild"
)

// ParseConfig fills cfg from its env struct tags.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// ParseArgs applies command-line flags on top of the env defaults already
// bound to fs.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// RunWithTelemetry runs body inside a tracing scope named after service and
// flushes spans when it returns. body's error is returned unchanged.
func RunWithTelemetry(ctx context.Context, service string, body func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return errors.New("service name is required")
	}
	if body == nil {
		return errors.New("run function is required")
	}
	shutdown, err := otel.Setup(ctx, "portfolio-"+service)
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), telemetryFlushTimeout)
		defer cancel()
		if err := shutdown(flushCtx); err != nil {
			log.Printf("telemetry shutdown failed service=%s err=%v", service, err)
		}
	}()
	return body(ctx)
}
