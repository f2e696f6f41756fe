// Package web parses web command flags and launches the portfolio server.
package web

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/rkprasad/portfolio/internal/platform/cmd"
	"github.com/rkprasad/portfolio/internal/platform/config"
	"github.com/rkprasad/portfolio/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string        `env:"PORTFOLIO_WEB_HTTP_ADDR" envDefault:"localhost:3000"`
	HealthAddr          string        `env:"PORTFOLIO_WEB_HEALTH_ADDR"`
	Mode                config.Mode   `env:"PORTFOLIO_WEB_MODE" envDefault:"development"`
	BasePath            string        `env:"PORTFOLIO_WEB_BASE_PATH"`
	ContentPath         string        `env:"PORTFOLIO_WEB_CONTENT_PATH"`
	InboxPath           string        `env:"PORTFOLIO_WEB_INBOX_PATH"`
	SubmitDelay         time.Duration `env:"PORTFOLIO_WEB_SUBMIT_DELAY" envDefault:"2s"`
	ContactRateInterval time.Duration `env:"PORTFOLIO_WEB_CONTACT_RATE_INTERVAL" envDefault:"20s"`
	ContactRateBurst    int           `env:"PORTFOLIO_WEB_CONTACT_RATE_BURST" envDefault:"3"`
	MinimumLoad         time.Duration `env:"PORTFOLIO_WEB_MINIMUM_LOAD" envDefault:"800ms"`
	TrustForwardedProto bool          `env:"PORTFOLIO_WEB_TRUST_FORWARDED_PROTO"`
	TrustForwardedFor   bool          `env:"PORTFOLIO_WEB_TRUST_FORWARDED_FOR"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	mode := cfg.Mode.String()
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.HealthAddr, "health-addr", cfg.HealthAddr, "gRPC health listen address (disabled when empty)")
	fs.StringVar(&mode, "mode", mode, "Site mode: development or production")
	fs.StringVar(&cfg.BasePath, "base-path", cfg.BasePath, "Deploy base path (defaults per mode)")
	fs.StringVar(&cfg.ContentPath, "content", cfg.ContentPath, "Site content YAML file (embedded content when empty)")
	fs.StringVar(&cfg.InboxPath, "inbox-path", cfg.InboxPath, "Contact inbox SQLite path (disabled when empty)")
	fs.DurationVar(&cfg.SubmitDelay, "submit-delay", cfg.SubmitDelay, "Simulated contact submission delay")
	fs.DurationVar(&cfg.ContactRateInterval, "contact-rate-interval", cfg.ContactRateInterval, "Contact limiter refill interval per client")
	fs.IntVar(&cfg.ContactRateBurst, "contact-rate-burst", cfg.ContactRateBurst, "Contact submissions allowed back to back per client")
	fs.DurationVar(&cfg.MinimumLoad, "minimum-load", cfg.MinimumLoad, "Minimum time the loader stays up")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Trust X-Forwarded-Proto for origin checks")
	fs.BoolVar(&cfg.TrustForwardedFor, "trust-forwarded-for", cfg.TrustForwardedFor, "Trust X-Forwarded-For for client addresses")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	parsed, err := config.ParseMode(mode)
	if err != nil {
		return Config{}, err
	}
	cfg.Mode = parsed
	return cfg, nil
}

// Run starts the portfolio web server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServerWithContext(ctx, web.Config{
			HTTPAddr:            cfg.HTTPAddr,
			HealthAddr:          cfg.HealthAddr,
			Mode:                cfg.Mode,
			BasePath:            cfg.BasePath,
			ContentPath:         cfg.ContentPath,
			InboxPath:           cfg.InboxPath,
			SubmitDelay:         cfg.SubmitDelay,
			ContactRateInterval: cfg.ContactRateInterval,
			ContactRateBurst:    cfg.ContactRateBurst,
			MinimumLoad:         cfg.MinimumLoad,
			TrustForwardedProto: cfg.TrustForwardedProto,
			TrustForwardedFor:   cfg.TrustForwardedFor,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
