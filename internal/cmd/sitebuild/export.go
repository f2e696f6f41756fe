package sitebuild

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rkprasad/portfolio/internal/platform/config"
	"github.com/rkprasad/portfolio/internal/platform/csp"
	"github.com/rkprasad/portfolio/internal/platform/manifest"
	"github.com/rkprasad/portfolio/internal/services/web"
	"github.com/rkprasad/portfolio/internal/services/web/routepath"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// notFoundPage is the document static hosts serve for unknown paths. It
// holds the home page so unknown routes land on home.
const notFoundPage = "404.html"

func exportCmd(opts *Options) *cobra.Command {
	var out, contentPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render every page, asset and the manifest into a static directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := opts.mode()
			if err != nil {
				return err
			}
			if out == "" {
				return fmt.Errorf("--out is required")
			}
			written, err := Export(cmd.Context(), ExportConfig{
				Mode:        mode,
				BasePath:    opts.BasePath,
				ContentPath: contentPath,
				OutDir:      out,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d files to %s\n", len(written), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "dist", "output directory")
	cmd.Flags().StringVar(&contentPath, "content", "", "site content YAML file (embedded content when empty)")
	return cmd
}

// ExportConfig controls a static export.
type ExportConfig struct {
	Mode        config.Mode
	BasePath    string
	ContentPath string
	OutDir      string
	Logger      *log.Logger
}

// Export renders the site into cfg.OutDir and returns the written paths
// relative to it. Pages carry the mode's CSP meta tag.
func Export(ctx context.Context, cfg ExportConfig) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	site, err := web.NewSite(web.Config{
		Mode:        cfg.Mode,
		BasePath:    cfg.BasePath,
		ContentPath: cfg.ContentPath,
		Logger:      logger,
	}, web.SiteDependencies{})
	if err != nil {
		return nil, fmt.Errorf("build site: %w", err)
	}

	files := map[string][]byte{}
	for _, item := range routepath.NavItems(routepath.NewPaths(""), routepath.Root) {
		route := item.Route.Path()
		body, err := renderPage(ctx, site, route, cfg.Mode)
		if err != nil {
			return nil, err
		}
		files[pageFile(route)] = body
		if route == routepath.Root {
			files[notFoundPage] = body
		}
	}

	for _, name := range site.Catalog.Names() {
		asset, _ := site.Catalog.Lookup(name)
		files[path.Join(strings.Trim(routepath.StaticPrefix, "/"), name)] = asset.Body
	}
	for _, name := range []string{"favicon.svg", "android-chrome-192x192.png", "android-chrome-512x512.png"} {
		if asset, ok := site.Catalog.Lookup(name); ok {
			files[name] = asset.Body
		}
	}
	manifestBody, err := manifest.Build(cfg.Mode, site.Paths.Base()).JSON()
	if err != nil {
		return nil, err
	}
	files[manifest.FileName] = manifestBody

	return writeFiles(ctx, cfg.OutDir, files, logger)
}

func renderPage(ctx context.Context, site *web.Site, route string, mode config.Mode) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, route, nil)
	if err != nil {
		return nil, err
	}
	rec := &pageRecorder{header: http.Header{}}
	site.ServePage(rec, req)
	if rec.status != http.StatusOK {
		return nil, fmt.Errorf("render %s: status %d", route, rec.status)
	}
	body, err := csp.InjectMeta(rec.body.Bytes(), mode)
	if err != nil {
		return nil, fmt.Errorf("inject csp into %s: %w", route, err)
	}
	return body, nil
}

// pageFile maps a route to its exported document, "/about" to
// "about/index.html".
func pageFile(route string) string {
	trimmed := strings.Trim(route, "/")
	if trimmed == "" {
		return "index.html"
	}
	return path.Join(trimmed, "index.html")
}

func writeFiles(ctx context.Context, outDir string, files map[string][]byte, logger *log.Logger) ([]string, error) {
	names := make([]string, 0, len(files))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(4)
	for name, body := range files {
		names = append(names, name)
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			target := filepath.Join(outDir, filepath.FromSlash(name))
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return fmt.Errorf("create %s: %w", filepath.Dir(target), err)
			}
			if err := os.WriteFile(target, body, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", target, err)
			}
			logger.Printf("sitebuild wrote path=%s bytes=%d", name, len(body))
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return names, nil
}

// pageRecorder collects one rendered page.
type pageRecorder struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func (p *pageRecorder) Header() http.Header { return p.header }

func (p *pageRecorder) WriteHeader(status int) {
	if p.status == 0 {
		p.status = status
	}
}

func (p *pageRecorder) Write(b []byte) (int, error) {
	if p.status == 0 {
		p.status = http.StatusOK
	}
	return p.body.Write(b)
}
