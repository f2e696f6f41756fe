package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/rkprasad/portfolio/internal/services/web/module"
	"github.com/rkprasad/portfolio/internal/services/web/platform/httpx"
)

// ComposeInput carries the site modules and the middleware wrapping each
// mount.
type ComposeInput struct {
	Modules []module.Module
	// Wrap applies to every module handler, outermost first.
	Wrap []httpx.Middleware
}

// Compose builds a root HTTP handler from modules. Every prefix other than
// the root is also mounted without its trailing slash so "/projects" does not
// bounce through a mux redirect.
func Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)

	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		mount, prefix, err := resolveMount(feature)
		if err != nil {
			return nil, err
		}
		handler := httpx.Chain(mount.Handler, input.Wrap...)
		if err := mountModule(root, feature, handler, prefix, seen); err != nil {
			return nil, err
		}
		if alias := slashlessPrefixAlias(prefix); alias != "" {
			if err := mountModule(root, feature, handler, alias, seen); err != nil {
				return nil, err
			}
		}
	}

	return root, nil
}

func mountModule(
	root *http.ServeMux,
	feature module.Module,
	handler http.Handler,
	prefix string,
	seen map[string]string,
) error {
	if previous, ok := seen[prefix]; ok {
		return fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, previous)
	}
	seen[prefix] = feature.ID()
	root.Handle(prefix, handler)
	return nil
}

func resolveMount(feature module.Module) (module.Mount, string, error) {
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	prefix := mount.Prefix
	if err := validatePrefix(prefix); err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), mount.Prefix, err)
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, prefix, nil
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("prefix is required")
	}
	if strings.TrimSpace(prefix) != prefix {
		return fmt.Errorf("prefix must not include surrounding whitespace")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("prefix must begin with /")
	}
	if !strings.HasSuffix(prefix, "/") {
		return fmt.Errorf("prefix must end with /")
	}
	return nil
}

func slashlessPrefixAlias(prefix string) string {
	if prefix == "/" || !strings.HasSuffix(prefix, "/") {
		return ""
	}
	return strings.TrimSuffix(prefix, "/")
}
