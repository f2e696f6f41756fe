// Package sitebuild implements the build tooling command: manifest emission,
// content security policy injection and static export of the site.
package sitebuild

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	entrypoint "github.com/rkprasad/portfolio/internal/platform/cmd"
	"github.com/rkprasad/portfolio/internal/platform/config"
	"github.com/spf13/cobra"
)

// Options are the flags shared by every subcommand.
type Options struct {
	Mode     string
	BasePath string
}

// Execute runs the command tree with args under the shared telemetry setup.
func Execute(ctx context.Context, args []string) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSiteBuild, func(ctx context.Context) error {
		root := NewRootCommand()
		root.SetArgs(args)
		return root.ExecuteContext(ctx)
	})
}

// NewRootCommand builds the sitebuild command tree.
func NewRootCommand() *cobra.Command {
	opts := &Options{}
	root := &cobra.Command{
		Use:           "sitebuild",
		Short:         "Build tooling for the portfolio site",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.Mode, "mode", envOr("PORTFOLIO_SITEBUILD_MODE", string(config.ModeProduction)), "build mode: development or production")
	root.PersistentFlags().StringVar(&opts.BasePath, "base-path", os.Getenv("PORTFOLIO_SITEBUILD_BASE_PATH"), "deploy base path (defaults per mode)")

	root.AddCommand(manifestCmd(opts), cspCmd(opts), exportCmd(opts), iconsCmd())
	return root
}

func (o *Options) mode() (config.Mode, error) {
	return config.ParseMode(o.Mode)
}

func envOr(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

// writeOutput writes body to path, or to stdout when path is empty or "-".
func writeOutput(stdout io.Writer, path string, body []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(body)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
