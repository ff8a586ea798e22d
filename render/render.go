// Package render converts Markdown bodies to sanitized HTML for templates.
//
// MDX bodies are treated as Markdown. Raw HTML is allowed through the
// Markdown stage and then cleaned by a bluemonday policy, which drops
// script tags, event handlers and unknown elements such as JSX components.
package render

import (
	"fmt"
	"html/template"
	"regexp"
	"sort"

	"github.com/microcosm-cc/bluemonday"
)

// Renderer converts Markdown to HTML that is safe to embed in a page.
type Renderer interface {
	Render(md []byte) (template.HTML, error)
}

// Default is the name of the renderer used when none is chosen.
const Default = "blackfriday"

var renderers = map[string]func(*bluemonday.Policy) Renderer{
	"blackfriday": newBlackfriday,
	"goldmark":    newGoldmark,
}

// Names returns the known renderer names, sorted.
func Names() []string {
	r := make([]string, 0, len(renderers))
	for k := range renderers {
		r = append(r, k)
	}
	sort.Strings(r)
	return r
}

// New returns the renderer called name. An empty name selects Default.
func New(name string) (Renderer, error) {
	if name == "" {
		name = Default
	}
	f, ok := renderers[name]
	if !ok {
		return nil, fmt.Errorf("New: unknown renderer %q (want one of %v)", name, Names())
	}
	return f(Policy()), nil
}

var headingID = regexp.MustCompile(`^[a-zA-Z0-9\-_]+$`)

// Policy returns the sanitizing policy applied to rendered Markdown.
func Policy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("id").Matching(headingID).OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	p.AllowAttrs("loading").OnElements("img")
	p.AllowElements("figure", "figcaption")
	p.RequireNoFollowOnLinks(true)
	return p
}
