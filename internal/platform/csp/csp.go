// Package csp builds the site's content security policy and applies it as a
// response header or as an injected meta tag.
package csp

import (
	"net/http"
	"strings"

	"github.com/rkprasad/portfolio/internal/platform/config"
)

// HeaderName is the response header carrying the policy.
const HeaderName = "Content-Security-Policy"

// Directive is one policy directive and its source list.
type Directive struct {
	Name    string
	Sources []string
}

// Policy is an ordered directive list.
type Policy []Directive

// String renders the policy in header syntax.
func (p Policy) String() string {
	parts := make([]string, 0, len(p))
	for _, directive := range p {
		name := strings.TrimSpace(directive.Name)
		if name == "" {
			continue
		}
		if len(directive.Sources) == 0 {
			parts = append(parts, name)
			continue
		}
		parts = append(parts, name+" "+strings.Join(directive.Sources, " "))
	}
	return strings.Join(parts, "; ")
}

// Sources returns the sources of the named directive.
func (p Policy) Sources(name string) []string {
	for _, directive := range p {
		if directive.Name == name {
			return directive.Sources
		}
	}
	return nil
}

// ForMode returns the development or production policy. Development allows
// inline and eval scripts plus any connection target for live reload tooling.
func ForMode(mode config.Mode) Policy {
	if mode.IsProduction() {
		return Policy{
			{Name: "default-src", Sources: []string{"'self'"}},
			{Name: "script-src", Sources: []string{"'self'"}},
			{Name: "style-src", Sources: []string{"'self'", "'unsafe-inline'", "https://fonts.googleapis.com"}},
			{Name: "font-src", Sources: []string{"'self'", "https://fonts.gstatic.com"}},
			{Name: "img-src", Sources: []string{"'self'", "data:", "https:"}},
			{Name: "connect-src", Sources: []string{"'self'"}},
			{Name: "object-src", Sources: []string{"'none'"}},
			{Name: "base-uri", Sources: []string{"'self'"}},
		}
	}
	return Policy{
		{Name: "default-src", Sources: []string{"'self'"}},
		{Name: "script-src", Sources: []string{"'self'", "'unsafe-inline'", "'unsafe-eval'", "'unsafe-hashes'"}},
		{Name: "style-src", Sources: []string{"'self'", "'unsafe-inline'", "https://fonts.googleapis.com"}},
		{Name: "font-src", Sources: []string{"'self'", "https://fonts.gstatic.com"}},
		{Name: "img-src", Sources: []string{"'self'", "data:", "https:"}},
		{Name: "connect-src", Sources: []string{"'self'", "ws:", "wss:", "http:", "https:"}},
		{Name: "object-src", Sources: []string{"'none'"}},
		{Name: "base-uri", Sources: []string{"'self'"}},
	}
}

// Middleware sets the mode's policy and the companion hardening headers on
// every response.
func Middleware(mode config.Mode) func(http.Handler) http.Handler {
	policy := ForMode(mode).String()
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := w.Header()
			header.Set(HeaderName, policy)
			header.Set("X-Content-Type-Options", "nosniff")
			header.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			next.ServeHTTP(w, r)
		})
	}
}
