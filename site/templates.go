package site

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/ancientlore/folio/content"
	"github.com/ancientlore/folio/render"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed templates/*.html
var defaultTemplates embed.FS

// TemplateDir holds templates in the site root that replace the defaults.
const TemplateDir = "template"

var youtubeID = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// funcs returns the helpers available to templates.
func funcs(r render.Renderer) template.FuncMap {
	return template.FuncMap{
		"markdown": func(s string) template.HTML {
			h, err := r.Render([]byte(s))
			if err != nil {
				log.Printf("markdown: %s", err)
				return ""
			}
			return h
		},
		// a Caser keeps state, so each call gets its own
		"title": func(s string) string {
			return cases.Title(language.English).String(s)
		},
		"date": formatDate,
		"year": func(s string) string {
			t, ok := content.ParseDate(s)
			if !ok {
				return ""
			}
			return t.Format("2006")
		},
		"excerpt": func(n int, s string) string {
			return content.Post{Content: s}.Excerpt(n)
		},
		"youtube": func(id string) string {
			if !youtubeID.MatchString(id) {
				return ""
			}
			return "https://www.youtube.com/embed/" + id
		},
		"join":      strings.Join,
		"lower":     strings.ToLower,
		"hasPrefix": strings.HasPrefix,
		"now":       time.Now,
		"seq": func(n int) []int {
			r := make([]int, n)
			for i := range r {
				r[i] = i + 1
			}
			return r
		},
	}
}

// formatDate writes a front matter date as "January 2, 2006", or returns it
// unchanged when it does not parse.
func formatDate(s string) string {
	t, ok := content.ParseDate(s)
	if !ok {
		return s
	}
	return t.Format("January 2, 2006")
}

// loadTemplates parses the built-in templates and then any in the template
// folder of fsys, which replace built-in ones with the same name. It reports
// whether custom templates were found.
func loadTemplates(fsys fs.FS, r render.Renderer) (*template.Template, bool, error) {
	tpl, err := template.New("folio").Funcs(funcs(r)).ParseFS(defaultTemplates, "templates/*.html")
	if err != nil {
		return nil, false, fmt.Errorf("loadTemplates: %w", err)
	}
	fi, err := fs.Stat(fsys, TemplateDir)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !fi.IsDir()) {
		return tpl, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("loadTemplates: %w", err)
	}
	matches, err := fs.Glob(fsys, TemplateDir+"/*.html")
	if err != nil {
		return nil, false, fmt.Errorf("loadTemplates: %w", err)
	}
	if len(matches) == 0 {
		return tpl, false, nil
	}
	tpl, err = tpl.ParseFS(fsys, matches...)
	if err != nil {
		return nil, true, fmt.Errorf("loadTemplates: %w", err)
	}
	return tpl, true, nil
}
