package content

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	mdRenderer    goldmark.Markdown
	htmlSanitizer *bluemonday.Policy
)

func init() {
	mdRenderer = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	htmlSanitizer = bluemonday.UGCPolicy()
}

// RenderMarkdown converts a markdown string to sanitized HTML.
// Returns empty string for empty input.
func RenderMarkdown(src string) string {
	if strings.TrimSpace(src) == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(src), &buf); err != nil {
		return htmlSanitizer.Sanitize(src)
	}

	return htmlSanitizer.Sanitize(buf.String())
}

// splitTitle separates a leading "# Heading" line from the rest of a
// markdown document. Documents without one return an empty title.
func splitTitle(src string) (title, body string) {
	src = strings.TrimLeft(src, "\r\n")
	first, rest, _ := strings.Cut(src, "\n")
	first = strings.TrimRight(first, "\r")
	if !strings.HasPrefix(first, "# ") {
		return "", src
	}
	return strings.TrimSpace(strings.TrimPrefix(first, "# ")), rest
}
