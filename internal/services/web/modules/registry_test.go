package modules

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rkprasad/portfolio/internal/services/web/content"
	module "github.com/rkprasad/portfolio/internal/services/web/module"
)

func TestDefaultModulesOrderAndPrefixes(t *testing.T) {
	t.Parallel()

	var ids, prefixes []string
	for _, feature := range DefaultModules(Dependencies{}) {
		mount, err := feature.Mount()
		if err != nil {
			t.Fatalf("Mount(%q) error = %v", feature.ID(), err)
		}
		ids = append(ids, feature.ID())
		prefixes = append(prefixes, mount.Prefix)
	}
	if diff := cmp.Diff([]string{"pages", "projects", "contact"}, ids); diff != "" {
		t.Fatalf("module ids mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"/", "/projects/", "/contact/"}, prefixes); diff != "" {
		t.Fatalf("module prefixes mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultModulesServeWithDependencies(t *testing.T) {
	t.Parallel()

	site, err := content.Embedded()
	if err != nil {
		t.Fatalf("content.Embedded() error = %v", err)
	}
	deps := Dependencies{Site: module.StaticSite(site), SubmitDelay: 0}
	for _, feature := range DefaultModules(deps) {
		mount, err := feature.Mount()
		if err != nil {
			t.Fatalf("Mount(%q) error = %v", feature.ID(), err)
		}
		target := mount.Prefix
		if target != "/" {
			target = target[:len(target)-1]
		}
		rr := httptest.NewRecorder()
		mount.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("GET %s via %q status = %d, want %d", target, feature.ID(), rr.Code, http.StatusOK)
		}
	}
}
