package publichandler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rkprasad/portfolio/internal/services/web/content"
	module "github.com/rkprasad/portfolio/internal/services/web/module"
	apperrors "github.com/rkprasad/portfolio/internal/services/web/platform/errors"
	"github.com/rkprasad/portfolio/internal/services/web/routepath"
	webtemplates "github.com/rkprasad/portfolio/internal/services/web/templates"
)

func TestNewBaseAppliesOptions(t *testing.T) {
	t.Parallel()

	site := &content.Site{}
	now := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	base := NewBase(
		WithPaths(routepath.NewPaths("/base")),
		WithSite(module.StaticSite(site)),
		WithAssets(webtemplates.Assets{Stylesheet: "/base/static/site.css"}),
		WithClock(func() time.Time { return now }),
		nil,
	)
	if got := base.Paths().Base(); got != "/base" {
		t.Fatalf("Paths().Base() = %q, want %q", got, "/base")
	}
	if base.Site() != site {
		t.Fatal("Site() did not return configured site")
	}
	if got := base.Shell().Assets.Stylesheet; got != "/base/static/site.css" {
		t.Fatalf("Shell().Assets.Stylesheet = %q", got)
	}
}

func TestSiteIsNilWithoutResolver(t *testing.T) {
	t.Parallel()

	if NewBase().Site() != nil {
		t.Fatal("Site() = non-nil, want nil")
	}
}

func TestWriteNotFoundRendersErrorPage(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	NewBase().WriteNotFound(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if !strings.Contains(rr.Body.String(), `id="error-state"`) {
		t.Fatalf("body missing error state: %q", rr.Body.String())
	}
}

func TestWriteErrorMapsTypedErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "rate limited", err: apperrors.E(apperrors.KindRateLimited, "slow down"), want: http.StatusTooManyRequests},
		{name: "forbidden", err: apperrors.E(apperrors.KindForbidden, "origin"), want: http.StatusForbidden},
		{name: "untyped", err: errors.New("boom"), want: http.StatusInternalServerError},
		{name: "nil", err: nil, want: http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rr := httptest.NewRecorder()
			NewBase().WriteError(rr, httptest.NewRequest(http.MethodGet, "/", nil), tc.err)
			if rr.Code != tc.want {
				t.Fatalf("status = %d, want %d", rr.Code, tc.want)
			}
		})
	}
}

func TestWriteFragmentWritesComponentOnly(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	NewBase().WriteFragment(rr, httptest.NewRequest(http.MethodGet, "/projects/list", nil), 0, textComponent(`<div id="frag">x</div>`))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Body.String(); got != `<div id="frag">x</div>` {
		t.Fatalf("body = %q", got)
	}
	if got := rr.Header().Get("Vary"); got != "HX-Request" {
		t.Fatalf("Vary = %q, want HX-Request", got)
	}
}

func TestWriteFragmentRenderFailureWritesError(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	NewBase().WriteFragment(rr, httptest.NewRequest(http.MethodGet, "/projects/list", nil), http.StatusOK, failingComponent{})
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
}

type textComponent string

func (c textComponent) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(c))
	return err
}

type failingComponent struct{}

func (failingComponent) Render(context.Context, io.Writer) error {
	return errors.New("render failed")
}
