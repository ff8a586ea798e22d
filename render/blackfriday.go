package render

import (
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
)

type blackfridayRenderer struct {
	policy *bluemonday.Policy
}

func newBlackfriday(p *bluemonday.Policy) Renderer {
	return &blackfridayRenderer{policy: p}
}

// Render never fails.
func (r *blackfridayRenderer) Render(md []byte) (template.HTML, error) {
	out := blackfriday.Run(md, blackfriday.WithExtensions(blackfriday.CommonExtensions|blackfriday.Footnotes|blackfriday.AutoHeadingIDs))
	return template.HTML(r.policy.SanitizeBytes(out)), nil
}
