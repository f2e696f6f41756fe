package content

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// The goldmark instance never changes after construction and is safe to share.
var (
	markdownOnce     sync.Once
	markdownRenderer goldmark.Markdown
)

func markdown() goldmark.Markdown {
	markdownOnce.Do(func() {
		// Raw HTML in the source is escaped: goldmark's unsafe mode stays off.
		markdownRenderer = goldmark.New(goldmark.WithExtensions(extension.Typographer, extension.Linkify))
	})
	return markdownRenderer
}

// RenderMarkdown converts Markdown to block-level HTML.
func RenderMarkdown(source string) (template.HTML, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := markdown().Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// RenderInlineMarkdown renders a single paragraph without its <p> wrapper so
// the result can sit inside an existing element.
func RenderInlineMarkdown(source string) (template.HTML, error) {
	rendered, err := RenderMarkdown(source)
	if err != nil {
		return "", err
	}
	html := strings.TrimSpace(string(rendered))
	inner, ok := strings.CutPrefix(html, "<p>")
	if ok {
		inner, ok = strings.CutSuffix(inner, "</p>")
	}
	if !ok || strings.Contains(inner, "<p>") {
		return template.HTML(html), nil
	}
	return template.HTML(inner), nil
}
