// Package requestmeta resolves request scheme, origin and client identity.
package requestmeta

import (
	"net"
	"net/http"
	"net/url"
	"strings"
)

// SchemePolicy controls which proxy headers are trusted.
//
// Both fields must be enabled explicitly; the site is often run directly on
// a public port where these headers are client controlled.
type SchemePolicy struct {
	TrustForwardedProto bool
	TrustForwardedFor   bool
}

// IsHTTPS reports whether a request should be treated as HTTPS.
func IsHTTPS(r *http.Request) bool {
	return IsHTTPSWithPolicy(r, SchemePolicy{})
}

// IsHTTPSWithPolicy reports whether a request should be treated as HTTPS
// under policy.
func IsHTTPSWithPolicy(r *http.Request, policy SchemePolicy) bool {
	return scheme(r, policy) == "https"
}

// HasSameOriginProof reports whether Origin, or Referer when Origin is absent,
// names the request's own scheme, host and port.
func HasSameOriginProof(r *http.Request, policy SchemePolicy) bool {
	if r == nil {
		return false
	}
	want := originOf(r, policy)
	if want.host == "" {
		return false
	}
	for _, header := range []string{"Origin", "Referer"} {
		if raw := strings.TrimSpace(r.Header.Get(header)); raw != "" {
			got, ok := parseOrigin(raw)
			return ok && got == want
		}
	}
	return false
}

// ClientIP returns the address used to key per-client limits. X-Forwarded-For
// is only consulted when the policy trusts it; its first entry wins.
func ClientIP(r *http.Request, policy SchemePolicy) string {
	if r == nil {
		return ""
	}
	if policy.TrustForwardedFor {
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			first, _, _ := strings.Cut(forwarded, ",")
			if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
				return ip.String()
			}
		}
	}
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err != nil {
		return strings.TrimSpace(r.RemoteAddr)
	}
	return host
}

type origin struct {
	scheme string
	host   string
	port   string
}

func parseOrigin(raw string) (origin, bool) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return origin{}, false
	}
	o := origin{
		scheme: strings.ToLower(parsed.Scheme),
		host:   strings.ToLower(parsed.Hostname()),
		port:   parsed.Port(),
	}
	if o.scheme == "" || o.host == "" {
		return origin{}, false
	}
	if o.port == "" {
		o.port = defaultPort(o.scheme)
	}
	return o, o.port != ""
}

func originOf(r *http.Request, policy SchemePolicy) origin {
	o := origin{scheme: scheme(r, policy)}
	o.host, o.port = splitHost(r.Host)
	if o.host == "" && r.URL != nil {
		o.host, o.port = splitHost(r.URL.Host)
	}
	if o.port == "" {
		o.port = defaultPort(o.scheme)
	}
	return o
}

func scheme(r *http.Request, policy SchemePolicy) string {
	if r == nil {
		return ""
	}
	if policy.TrustForwardedProto {
		if forwarded := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto"))); forwarded == "http" || forwarded == "https" {
			return forwarded
		}
	}
	if r.URL != nil {
		if s := strings.ToLower(r.URL.Scheme); s == "http" || s == "https" {
			return s
		}
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

func defaultPort(scheme string) string {
	switch scheme {
	case "https":
		return "443"
	case "http":
		return "80"
	default:
		return ""
	}
}

func splitHost(raw string) (string, string) {
	parsed, err := url.Parse("//" + strings.TrimSpace(raw))
	if err != nil {
		return "", ""
	}
	return strings.ToLower(parsed.Hostname()), parsed.Port()
}
