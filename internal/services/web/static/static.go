// Package static serves the site's embedded assets with content
// fingerprints for cache busting.
package static

import (
	"bytes"
	"embed"
	"encoding/hex"
	"fmt"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/zeebo/blake3"
)

// FS exposes web static assets for HTTP serving.
//
//go:embed *.css *.js *.svg *.png
var FS embed.FS

// VersionQueryKey carries an asset fingerprint in asset URLs.
const VersionQueryKey = "v"

// fingerprintKey is the ASCII domain name zero-padded to 32 bytes.
var fingerprintKey = [32]byte{
	'p', 'o', 'r', 't', 'f', 'o', 'l', 'i', 'o', '.', 's', 't', 'a', 't', 'i', 'c',
	'.', 'a', 's', 's', 'e', 't', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Fingerprint returns a short keyed BLAKE3 digest of body in hex.
func Fingerprint(body []byte) string {
	hasher, err := blake3.NewKeyed(fingerprintKey[:])
	if err != nil {
		panic("static: blake3 keyed hash initialization failed: " + err.Error())
	}
	_, _ = hasher.Write(body)
	return hex.EncodeToString(hasher.Sum(nil)[:8])
}

// Asset is one servable file.
type Asset struct {
	Name        string
	ContentType string
	Body        []byte
	Version     string
}

// Catalog holds assets by name. It is safe for concurrent use.
type Catalog struct {
	mu       sync.RWMutex
	assets   map[string]Asset
	modified time.Time
}

// NewCatalog loads every regular file at the root of fsys.
func NewCatalog(fsys fs.FS) (*Catalog, error) {
	c := &Catalog{assets: map[string]Asset{}, modified: time.Now().UTC()}
	if fsys == nil {
		return c, nil
	}
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read static assets: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || strings.HasSuffix(entry.Name(), ".go") {
			continue
		}
		body, err := fs.ReadFile(fsys, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read static asset %s: %w", entry.Name(), err)
		}
		c.Add(entry.Name(), "", body)
	}
	return c, nil
}

// Add registers or replaces an asset. An empty contentType is derived from
// the file extension.
func (c *Catalog) Add(name, contentType string, body []byte) Asset {
	name = strings.TrimPrefix(path.Clean("/"+name), "/")
	if contentType == "" {
		contentType = mime.TypeByExtension(path.Ext(name))
	}
	if contentType == "" {
		contentType = http.DetectContentType(body)
	}
	asset := Asset{Name: name, ContentType: contentType, Body: body, Version: Fingerprint(body)}
	c.mu.Lock()
	c.assets[name] = asset
	c.mu.Unlock()
	return asset
}

// Lookup returns the named asset.
func (c *Catalog) Lookup(name string) (Asset, bool) {
	if c == nil {
		return Asset{}, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	asset, ok := c.assets[strings.TrimPrefix(name, "/")]
	return asset, ok
}

// Names lists asset names in order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.assets))
	for name := range c.assets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Version returns the fingerprint of the named asset, or "".
func (c *Catalog) Version(name string) string {
	asset, ok := c.Lookup(name)
	if !ok {
		return ""
	}
	return asset.Version
}

// URL joins prefix and name and appends the version query when the asset is
// known.
func (c *Catalog) URL(prefix, name string) string {
	target := strings.TrimSuffix(prefix, "/") + "/" + strings.TrimPrefix(name, "/")
	if version := c.Version(name); version != "" {
		target += "?" + VersionQueryKey + "=" + version
	}
	return target
}

// Handler serves assets by request path relative to the static prefix.
// Requests naming the current version are cached as immutable; others
// revalidate through the ETag.
func (c *Catalog) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		asset, ok := c.Lookup(r.URL.Path)
		if !ok {
			http.NotFound(w, r)
			return
		}
		header := w.Header()
		header.Set("Content-Type", asset.ContentType)
		header.Set("ETag", `"`+asset.Version+`"`)
		if r.URL.Query().Get(VersionQueryKey) == asset.Version {
			header.Set("Cache-Control", "public, max-age=31536000, immutable")
		} else {
			header.Set("Cache-Control", "no-cache")
		}
		http.ServeContent(w, r, asset.Name, c.modified, bytes.NewReader(asset.Body))
	})
}
