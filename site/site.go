// Package site serves the portfolio: home, projects, blog, resume and
// contact pages rendered from templates, a small JSON API over the same
// content, a plain text sitemap and the static assets folder.
//
// A site root looks like this:
//
//	site.toml          optional configuration
//	content/blog/      posts (*.md, *.mdx)
//	content/projects/  projects (*.md, *.mdx)
//	template/          optional *.html replacing the built-in templates
//	static/            assets served under /static/, plus 404.html and 500.html
package site

import (
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/ancientlore/cachefs"
	"github.com/ancientlore/folio/contact"
	"github.com/ancientlore/folio/content"
	"github.com/ancientlore/folio/render"
	"github.com/ancientlore/folio/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// StaticDir is the folder of the site root served under /static/.
const StaticDir = "static"

// Options configure a Site.
type Options struct {
	Renderer      render.Renderer  // nil selects render.Default
	Notifier      contact.Notifier // nil logs submissions
	CacheSize     int64            // static asset cache size in bytes
	CacheDuration time.Duration    // static assets are cached only when this is positive
}

// Site holds everything needed to serve one site root.
type Site struct {
	cfg      *Config
	blog     *content.Blog
	projects *content.Projects
	renderer render.Renderer
	tpl      *template.Template
	static   fs.FS
	notifier contact.Notifier
}

// New reads the configuration and templates of the site in fsys.
func New(fsys fs.FS, opts Options) (*Site, error) {
	cfg, err := LoadConfig(fsys)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	r := opts.Renderer
	if r == nil {
		r, err = render.New(render.Default)
		if err != nil {
			return nil, fmt.Errorf("New: %w", err)
		}
	}
	tpl, custom, err := loadTemplates(fsys, r)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	if custom {
		log.Printf("Loaded custom templates: %s", tpl.DefinedTemplates())
	}
	static, err := fs.Sub(fsys, StaticDir)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	if opts.CacheDuration > 0 {
		static = cachefs.New(static, &cachefs.Config{
			GroupName:   "static-" + uuid.NewString(),
			SizeInBytes: opts.CacheSize,
			Duration:    opts.CacheDuration,
		})
	}
	return &Site{
		cfg:      cfg,
		blog:     content.NewBlog(fsys, cfg.BlogDir, content.WithAuthor(cfg.Author), content.WithPageSize(cfg.PageSize)),
		projects: content.NewProjects(fsys, cfg.ProjectsDir, content.WithPageSize(cfg.PageSize)),
		renderer: r,
		tpl:      tpl,
		static:   static,
		notifier: opts.Notifier,
	}, nil
}

// Config returns the site configuration.
func (s *Site) Config() *Config { return s.cfg }

// Blog returns the site's posts.
func (s *Site) Blog() *content.Blog { return s.blog }

// Projects returns the site's projects.
func (s *Site) Projects() *content.Projects { return s.projects }

// Handler returns the http.Handler serving the site.
func (s *Site) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.home)
	r.Get("/projects", s.projectList)
	r.Get("/projects/{slug}", s.project)
	r.Get("/blog", s.blogList)
	r.Get("/blog/{slug}", s.post)
	r.Get("/resume", s.resume)
	r.Get("/contact", s.contactPage)
	r.Get("/sitemap.txt", s.sitemap)
	r.Get("/health", s.health)
	r.Get("/favicon.ico", s.favicon)

	r.Route("/api", func(r chi.Router) {
		r.Handle("/contact", contact.Handler(s.notifier))
		r.Get("/posts", s.apiPosts)
		r.Get("/posts/{slug}", s.apiPost)
		r.Get("/projects", s.apiProjects)
		r.Get("/projects/{slug}", s.apiProject)
		r.Get("/categories", s.apiCategories)
		r.Get("/tags", s.apiTags)
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			web.WriteError(w, http.StatusNotFound, msgNotFound)
		})
	})

	r.Handle(web.StaticPrefix+"*", web.HideSpecialFiles(http.StripPrefix(web.StaticPrefix, http.FileServer(http.FS(s.static)))))
	r.NotFound(s.notFound)

	return web.HeaderHandler(
		web.ExpiresHandler(
			gziphandler.GzipHandler(
				web.ErrorHandler(r, s.static),
			),
			time.Duration(s.cfg.Expires),
			time.Duration(s.cfg.StaticExpires),
		),
		s.cfg.Headers)
}
