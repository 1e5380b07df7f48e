package catalog

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	historyMarkdown = goldmark.New()
	historyPolicy   = bluemonday.UGCPolicy()
)

// RenderHistory converts a brand's markdown history into sanitised HTML
func RenderHistory(text string) template.HTML {
	if text == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := historyMarkdown.Convert([]byte(text), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(text))
	}
	return template.HTML(historyPolicy.SanitizeBytes(buf.Bytes()))
}
