package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
)

type siteConfig struct {
	Addr string `env:"PORTFOLIO_CMD_TEST_ADDR" envDefault:"localhost:3000"`
	Mode string `env:"PORTFOLIO_CMD_TEST_MODE" envDefault:"development"`
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("PORTFOLIO_CMD_TEST_ADDR", "0.0.0.0:80")
	t.Setenv("PORTFOLIO_CMD_TEST_MODE", "production")

	var cfg siteConfig
	if err := ParseConfig(&cfg); err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	fs := flag.NewFlagSet("site", flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "mode")
	if err := ParseArgs(fs, []string{"-addr", "127.0.0.1:9000"}); err != nil {
		t.Fatalf("ParseArgs() error = %v", err)
	}

	if cfg.Addr != "127.0.0.1:9000" {
		t.Fatalf("Addr = %q, want flag value", cfg.Addr)
	}
	if cfg.Mode != "production" {
		t.Fatalf("Mode = %q, want env value", cfg.Mode)
	}
}

func TestParseHelpersRejectNilInputs(t *testing.T) {
	if err := ParseConfig[siteConfig](nil); err == nil {
		t.Fatal("ParseConfig(nil) error = nil")
	}
	if err := ParseArgs(nil, nil); err == nil {
		t.Fatal("ParseArgs(nil) error = nil")
	}
}

func TestRunWithTelemetry(t *testing.T) {
	t.Setenv("PORTFOLIO_OTEL_ENDPOINT", "")

	noop := func(context.Context) error { return nil }
	if err := RunWithTelemetry(context.Background(), " ", noop); err == nil {
		t.Fatal("blank service accepted")
	}
	if err := RunWithTelemetry(context.Background(), ServiceSiteBuild, nil); err == nil {
		t.Fatal("nil body accepted")
	}

	want := errors.New("render failed")
	if err := RunWithTelemetry(context.Background(), ServiceSiteBuild, func(context.Context) error { return want }); !errors.Is(err, want) {
		t.Fatalf("RunWithTelemetry() error = %v, want %v", err, want)
	}
}
