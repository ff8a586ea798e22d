package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

type goldmarkRenderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func newGoldmark(p *bluemonday.Policy) Renderer {
	return &goldmarkRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Footnote),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				gmhtml.WithUnsafe(), // raw HTML is cleaned by the policy
			),
		),
		policy: p,
	}
}

func (r *goldmarkRenderer) Render(md []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(md, &buf); err != nil {
		return "", fmt.Errorf("Render: %w", err)
	}
	return template.HTML(r.policy.SanitizeBytes(buf.Bytes())), nil
}
