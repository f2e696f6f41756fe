// Package manifest builds the installable web-app manifest.
package manifest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rkprasad/portfolio/internal/platform/config"
)

// FileName is the emitted and served manifest name.
const FileName = "manifest.json"

const (
	appName        = "RK Prasad - Front-End Developer"
	appShortName   = "RK Prasad"
	appDescription = "Creative front-end developer specializing in React, TypeScript, and modern web technologies."
)

// Icon is one manifest icon entry.
type Icon struct {
	Src   string `json:"src"`
	Sizes string `json:"sizes"`
	Type  string `json:"type"`
}

// Manifest mirrors the subset of the web app manifest the site publishes.
type Manifest struct {
	Name            string `json:"name"`
	ShortName       string `json:"short_name"`
	Description     string `json:"description"`
	StartURL        string `json:"start_url"`
	Scope           string `json:"scope"`
	Display         string `json:"display"`
	BackgroundColor string `json:"background_color"`
	ThemeColor      string `json:"theme_color"`
	Icons           []Icon `json:"icons"`
}

// Build returns the manifest for mode. base is the deploy base path ("" or
// "/protfolio-rk"); development always uses the root scope.
func Build(mode config.Mode, base string) Manifest {
	root := "/"
	if mode.IsProduction() {
		root = normalizeBase(base) + "/"
	}
	return Manifest{
		Name:            appName,
		ShortName:       appShortName,
		Description:     appDescription,
		StartURL:        root,
		Scope:           root,
		Display:         "standalone",
		BackgroundColor: "#ffffff",
		ThemeColor:      "#000000",
		Icons: []Icon{
			{Src: root + "android-chrome-192x192.png", Sizes: "192x192", Type: "image/png"},
			{Src: root + "android-chrome-512x512.png", Sizes: "512x512", Type: "image/png"},
		},
	}
}

// JSON renders m with two-space indentation and a trailing newline.
func (m Manifest) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}
	return append(data, '\n'), nil
}

// Handler serves the manifest built once for mode and base.
func Handler(mode config.Mode, base string) http.Handler {
	body, err := Build(mode, base).JSON()
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/manifest+json")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		_, _ = w.Write(body)
	})
}

func normalizeBase(base string) string {
	base = strings.TrimSpace(base)
	base = strings.TrimRight(base, "/")
	if base == "" {
		return ""
	}
	if !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	return base
}
