package csp

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/rkprasad/portfolio/internal/platform/config"
)

// ErrNoHead reports a document without a <head> to inject into.
var ErrNoHead = errors.New("csp: document has no head element")

var attrEscaper = strings.NewReplacer(`&`, "&amp;", `"`, "&#34;", `<`, "&lt;", `>`, "&gt;")

// MetaTag renders the http-equiv meta element for policy.
func MetaTag(policy Policy) string {
	return `<meta http-equiv="Content-Security-Policy" content="` + attrEscaper.Replace(policy.String()) + `" />`
}

// InjectMeta inserts the mode's policy meta tag right after the charset meta,
// or at the start of <head> when there is none. Existing CSP meta tags are
// replaced, so injecting twice yields the same document. Everything else is
// copied byte for byte.
func InjectMeta(document []byte, mode config.Mode) ([]byte, error) {
	tag := []byte("\n    " + MetaTag(ForMode(mode)))

	z := html.NewTokenizer(bytes.NewReader(document))
	var out bytes.Buffer
	out.Grow(len(document) + len(tag))
	headPos := -1
	injected := false

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("csp: tokenize: %w", err)
			}
			break
		}
		raw := append([]byte(nil), z.Raw()...)

		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			name, attrs := tagAttrs(z)
			if name == "meta" && strings.EqualFold(attrs["http-equiv"], HeaderName) {
				trimTrailingIndent(&out)
				continue
			}
			out.Write(raw)
			if injected {
				continue
			}
			switch {
			case name == "head":
				headPos = out.Len()
			case name == "meta" && headPos >= 0 && hasKey(attrs, "charset"):
				out.Write(tag)
				injected = true
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if !injected && string(name) == "head" && headPos >= 0 {
				insertAt(&out, headPos, tag)
				injected = true
			}
			out.Write(raw)
		default:
			out.Write(raw)
		}
	}

	if !injected {
		if headPos < 0 {
			return nil, ErrNoHead
		}
		insertAt(&out, headPos, tag)
	}
	return out.Bytes(), nil
}

func tagAttrs(z *html.Tokenizer) (string, map[string]string) {
	name, hasAttr := z.TagName()
	attrs := map[string]string{}
	for hasAttr {
		var key, val []byte
		key, val, hasAttr = z.TagAttr()
		attrs[strings.ToLower(string(key))] = string(val)
	}
	return string(name), attrs
}

func hasKey(attrs map[string]string, key string) bool {
	_, ok := attrs[key]
	return ok
}

func insertAt(buf *bytes.Buffer, pos int, data []byte) {
	current := buf.Bytes()
	joined := make([]byte, 0, len(current)+len(data))
	joined = append(joined, current[:pos]...)
	joined = append(joined, data...)
	joined = append(joined, current[pos:]...)
	buf.Reset()
	buf.Write(joined)
}

// trimTrailingIndent drops the newline and indentation written before a
// removed tag so replacement does not leave blank lines behind.
func trimTrailingIndent(buf *bytes.Buffer) {
	current := buf.Bytes()
	end := len(current)
	for end > 0 && (current[end-1] == ' ' || current[end-1] == '\t') {
		end--
	}
	if end > 0 && current[end-1] == '\n' {
		end--
	}
	buf.Truncate(end)
}
