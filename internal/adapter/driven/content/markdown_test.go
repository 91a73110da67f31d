package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdown_EmptyInput(t *testing.T) {
	assert.Equal(t, "", RenderMarkdown(""))
	assert.Equal(t, "", RenderMarkdown("  \n"))
}

func TestRenderMarkdown_Bold(t *testing.T) {
	result := RenderMarkdown("At Social Route, **Social Media Marketing** is a core service")
	assert.Contains(t, result, "<strong>Social Media Marketing</strong>")
}

func TestRenderMarkdown_Link(t *testing.T) {
	result := RenderMarkdown("[mail us](mailto:info@socialroute.in)")
	assert.Contains(t, result, `<a href="mailto:info@socialroute.in"`)
	assert.Contains(t, result, "mail us</a>")
}

func TestRenderMarkdown_SanitizesScript(t *testing.T) {
	result := RenderMarkdown(`<script>alert("xss")</script>`)
	assert.NotContains(t, result, "<script>")
}

func TestRenderMarkdown_SanitizesEventHandlers(t *testing.T) {
	result := RenderMarkdown(`<img src="x.png" onerror="alert(1)">`)
	assert.NotContains(t, result, "onerror")
}

func TestRenderMarkdown_GFMStrikethrough(t *testing.T) {
	result := RenderMarkdown("~~deleted~~")
	assert.Contains(t, result, "<del>deleted</del>")
}

func TestSplitTitle(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		wantTitle string
		wantBody  string
	}{
		{name: "heading", src: "# Privacy Policy\n\nBody.", wantTitle: "Privacy Policy", wantBody: "\nBody."},
		{name: "leading blank lines", src: "\n\n# Terms\nText", wantTitle: "Terms", wantBody: "Text"},
		{name: "crlf", src: "# Terms\r\nText", wantTitle: "Terms", wantBody: "Text"},
		{name: "no heading", src: "Just text", wantTitle: "", wantBody: "Just text"},
		{name: "second level heading", src: "## Sub\nText", wantTitle: "", wantBody: "## Sub\nText"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, body := splitTitle(tt.src)
			assert.Equal(t, tt.wantTitle, title)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}
