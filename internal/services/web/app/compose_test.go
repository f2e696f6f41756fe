package app

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/rkprasad/portfolio/internal/services/web/module"
	"github.com/rkprasad/portfolio/internal/services/web/platform/httpx"
)

func TestComposeRejectsDuplicateModulePrefix(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "one", mount: module.Mount{Prefix: "/one/", Handler: okHandler("one")}},
			stubModule{id: "two", mount: module.Mount{Prefix: "/one/", Handler: okHandler("two")}},
		},
	})
	if err == nil {
		t.Fatalf("expected duplicate prefix error")
	}
	if !strings.Contains(err.Error(), `owned by module "one"`) {
		t.Fatalf("unexpected error = %q", err.Error())
	}
}

func TestComposeRejectsInvalidModulePrefixes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
	}{
		{name: "empty", prefix: ""},
		{name: "missing leading slash", prefix: "projects/"},
		{name: "missing trailing slash", prefix: "/projects"},
		{name: "contains surrounding whitespace", prefix: "/projects/ "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Compose(ComposeInput{
				Modules: []module.Module{
					stubModule{id: "bad", mount: module.Mount{Prefix: tc.prefix, Handler: okHandler("bad")}},
				},
			})
			if err == nil {
				t.Fatalf("expected invalid prefix error")
			}
			if got := err.Error(); !strings.Contains(got, "invalid prefix") || !strings.Contains(got, "bad") {
				t.Fatalf("unexpected error = %q", got)
			}
		})
	}
}

func TestComposeRejectsNilModuleAndMountFailures(t *testing.T) {
	t.Parallel()

	if _, err := Compose(ComposeInput{Modules: []module.Module{nil}}); err == nil {
		t.Fatalf("expected nil module error")
	}
	_, err := Compose(ComposeInput{Modules: []module.Module{stubModule{id: "broken", err: errors.New("boom")}}})
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("Compose() error = %v, want wrapped mount error", err)
	}
	_, err = Compose(ComposeInput{Modules: []module.Module{stubModule{id: "empty", mount: module.Mount{Prefix: "/x/"}}}})
	if err == nil || !strings.Contains(err.Error(), "handler is required") {
		t.Fatalf("Compose() error = %v, want missing handler error", err)
	}
}

func TestComposeMountsSlashlessAliases(t *testing.T) {
	t.Parallel()

	h, err := Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "root", mount: module.Mount{Prefix: "/", Handler: okHandler("root")}},
			stubModule{id: "projects", mount: module.Mount{Prefix: "/projects/", Handler: okHandler("projects")}},
		},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	for path, want := range map[string]string{
		"/":                  "root",
		"/about":             "root",
		"/projects":          "projects",
		"/projects/featured": "projects",
	} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d, want %d", path, rr.Code, http.StatusOK)
		}
		if got := rr.Body.String(); got != want {
			t.Fatalf("GET %s body = %q, want %q", path, got, want)
		}
	}
}

func TestComposeAppliesWrapMiddleware(t *testing.T) {
	t.Parallel()

	tag := func(value string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Add("X-Wrap", value)
				next.ServeHTTP(w, r)
			})
		}
	}
	h, err := Compose(ComposeInput{
		Modules: []module.Module{stubModule{id: "root", mount: module.Mount{Prefix: "/", Handler: okHandler("root")}}},
		Wrap:    []httpx.Middleware{tag("outer"), tag("inner")},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if got := strings.Join(rr.Header().Values("X-Wrap"), ","); got != "outer,inner" {
		t.Fatalf("X-Wrap = %q, want %q", got, "outer,inner")
	}
}

type stubModule struct {
	id    string
	mount module.Mount
	err   error
}

func (m stubModule) ID() string { return m.id }

func (m stubModule) Mount() (module.Mount, error) { return m.mount, m.err }

func okHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, body)
	})
}
