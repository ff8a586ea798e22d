package site

import (
	"bytes"
	"errors"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/ancientlore/folio/content"
	"github.com/go-chi/chi/v5"
)

// view is what is passed to page templates. Pages fill in the fields they use.
type view struct {
	Site        *Config
	Path        string
	Title       string
	Description string
	Message     string

	Posts    []content.Post
	Projects []content.Project
	Featured []content.Project

	Post            *content.Post
	Project         *content.Project
	Body            template.HTML
	RelatedPosts    []content.Post
	RelatedProjects []content.Project
	Prev, Next      *content.Post

	Page       content.Page[content.Post]
	Categories []string
	Category   string
}

func (s *Site) newView(r *http.Request, title string) *view {
	return &view{Site: s.cfg, Path: r.URL.Path, Title: title}
}

// execute renders the named template with the given status.
func (s *Site) execute(w http.ResponseWriter, status int, name string, v *view) {
	var buf bytes.Buffer
	err := s.tpl.ExecuteTemplate(&buf, name, v)
	if err != nil {
		log.Printf("execute %s: %s", name, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func (s *Site) notFound(w http.ResponseWriter, r *http.Request) {
	s.execute(w, http.StatusNotFound, "notfound", s.newView(r, "Not Found"))
}

func logError(r *http.Request, err error) {
	log.Printf("%s: %s", r.URL.Path, err)
}

func (s *Site) serverError(w http.ResponseWriter, r *http.Request, err error) {
	logError(r, err)
	s.execute(w, http.StatusInternalServerError, "error", s.newView(r, "Error"))
}

func (s *Site) home(w http.ResponseWriter, r *http.Request) {
	v := s.newView(r, "")
	var err error
	if v.Featured, err = s.projects.Featured(); err != nil {
		s.serverError(w, r, err)
		return
	}
	if v.Posts, err = s.blog.Recent(s.cfg.Recent); err != nil {
		s.serverError(w, r, err)
		return
	}
	s.execute(w, http.StatusOK, "home", v)
}

func (s *Site) projectList(w http.ResponseWriter, r *http.Request) {
	v := s.newView(r, "Projects")
	var err error
	if v.Featured, err = s.projects.Featured(); err != nil {
		s.serverError(w, r, err)
		return
	}
	if v.Projects, err = s.projects.NonFeatured(); err != nil {
		s.serverError(w, r, err)
		return
	}
	s.execute(w, http.StatusOK, "projects", v)
}

func (s *Site) project(w http.ResponseWriter, r *http.Request) {
	p, err := s.projects.Get(chi.URLParam(r, "slug"))
	if errors.Is(err, content.ErrNotFound) {
		s.notFound(w, r)
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	v := s.newView(r, p.Title)
	v.Description = p.Description
	v.Project = &p
	if v.Body, err = s.renderer.Render([]byte(p.Content)); err != nil {
		s.serverError(w, r, err)
		return
	}
	if v.RelatedProjects, err = s.projects.Related(p.Slug, s.cfg.Related); err != nil {
		s.serverError(w, r, err)
		return
	}
	s.execute(w, http.StatusOK, "project", v)
}

// category returns the category query parameter, with "all" meaning none.
func category(r *http.Request) string {
	c := strings.TrimSpace(r.URL.Query().Get("category"))
	if strings.EqualFold(c, "all") {
		return ""
	}
	return c
}

// intParam returns the named query parameter as an int, or 0.
func intParam(r *http.Request, name string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return n
}

func (s *Site) blogList(w http.ResponseWriter, r *http.Request) {
	v := s.newView(r, "Blog")
	v.Category = category(r)
	var err error
	if v.Page, err = s.blog.Page(intParam(r, "page"), s.cfg.PageSize, v.Category); err != nil {
		s.serverError(w, r, err)
		return
	}
	if v.Categories, err = s.blog.Categories(); err != nil {
		s.serverError(w, r, err)
		return
	}
	s.execute(w, http.StatusOK, "blog", v)
}

func (s *Site) post(w http.ResponseWriter, r *http.Request) {
	p, err := s.blog.Get(chi.URLParam(r, "slug"))
	if errors.Is(err, content.ErrNotFound) {
		s.notFound(w, r)
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	v := s.newView(r, p.Title)
	v.Description = p.Summary()
	v.Post = &p
	if v.Body, err = s.renderer.Render([]byte(p.Content)); err != nil {
		s.serverError(w, r, err)
		return
	}
	if v.RelatedPosts, err = s.blog.Related(p.Slug, s.cfg.Related); err != nil {
		s.serverError(w, r, err)
		return
	}
	v.Prev, v.Next, err = s.blog.Neighbors(p.Slug)
	if err != nil && !errors.Is(err, content.ErrNotFound) {
		s.serverError(w, r, err)
		return
	}
	s.execute(w, http.StatusOK, "post", v)
}

func (s *Site) resume(w http.ResponseWriter, r *http.Request) {
	s.execute(w, http.StatusOK, "resume", s.newView(r, "Resume"))
}

func (s *Site) contactPage(w http.ResponseWriter, r *http.Request) {
	s.execute(w, http.StatusOK, "contact", s.newView(r, "Contact"))
}
