package pages

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rkprasad/portfolio/internal/services/web/content"
	module "github.com/rkprasad/portfolio/internal/services/web/module"
	"github.com/rkprasad/portfolio/internal/services/web/platform/publichandler"
	"github.com/rkprasad/portfolio/internal/services/web/routepath"
)

func newTestHandler(t *testing.T, base string) http.Handler {
	t.Helper()
	site, err := content.Embedded()
	if err != nil {
		t.Fatalf("content.Embedded() error = %v", err)
	}
	mount, err := New(publichandler.NewBase(
		publichandler.WithPaths(routepath.NewPaths(base)),
		publichandler.WithSite(module.StaticSite(site)),
	)).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.Root {
		t.Fatalf("Prefix = %q, want %q", mount.Prefix, routepath.Root)
	}
	return mount.Handler
}

func TestPageRoutesRender(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, "")
	tests := []struct {
		path    string
		markers []string
	}{
		{path: "/", markers: []string{`id="hero"`, `id="skills"`, "<title>Home | RK Prasad</title>"}},
		{path: "/about", markers: []string{`id="about"`, "Clean Code", "<title>About | RK Prasad</title>"}},
		{path: "/single-page", markers: []string{`class="quick-nav`, `id="hero"`, `id="skills"`, `id="about"`, `id="featured-carousel"`, `id="project-grid"`, `id="contact-form"`, `data-scroll-top`}},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			t.Parallel()
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))
			if rr.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
			}
			body := rr.Body.String()
			for _, marker := range tc.markers {
				if !strings.Contains(body, marker) {
					t.Fatalf("GET %s body missing %q", tc.path, marker)
				}
			}
		})
	}
}

func TestHTMXNavigationReturnsMainContentOnly(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, "")
	req := httptest.NewRequest(http.MethodGet, "/about", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if strings.Contains(body, "<html") || strings.Contains(body, `class="site-header`) {
		t.Fatalf("fragment contains document chrome: %q", body)
	}
	if !strings.Contains(body, `id="about"`) {
		t.Fatalf("fragment missing about section")
	}
}

func TestCatchAllRedirects(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, "/protfolio-rk")
	tests := []struct {
		name   string
		method string
		target string
		want   string
	}{
		{name: "unknown path goes home", method: http.MethodGet, target: "/does/not/exist", want: "/protfolio-rk/"},
		{name: "trailing slash canonicalizes", method: http.MethodGet, target: "/about/", want: "/protfolio-rk/about"},
		{name: "query survives canonicalization", method: http.MethodGet, target: "/single-page/?featured=1", want: "/protfolio-rk/single-page?featured=1"},
		{name: "post to root goes home", method: http.MethodPost, target: "/", want: "/protfolio-rk/"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.target, nil))
			if rr.Code != http.StatusSeeOther {
				t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
			}
			if got := rr.Header().Get("Location"); got != tc.want {
				t.Fatalf("Location = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCatchAllHTMXUsesClientRedirect(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, "")
	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if got := rr.Header().Get("HX-Redirect"); got != "/" {
		t.Fatalf("HX-Redirect = %q, want %q", got, "/")
	}
}

func TestPageRoutesRejectMutations(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, "")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/about", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}

func TestSinglePageHonorsProjectQuery(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, "")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/single-page?featured=3&category=Frontend", nil))
	body := rr.Body.String()
	if !strings.Contains(body, "Task Management App") {
		t.Fatalf("featured=3 should wrap to the second featured project")
	}
	if strings.Contains(body, "Learning Management System") {
		t.Fatalf("Frontend filter should hide full stack projects")
	}
}
