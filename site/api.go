package site

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ancientlore/folio/content"
	"github.com/ancientlore/folio/web"
	"github.com/go-chi/chi/v5"
)

const msgNotFound = "Not found"

// apiPosts returns one page of post metadata.
func (s *Site) apiPosts(w http.ResponseWriter, r *http.Request) {
	pg, err := s.blog.Page(intParam(r, "page"), intParam(r, "size"), category(r))
	if err != nil {
		s.apiError(w, r, err)
		return
	}
	for i := range pg.Items {
		pg.Items[i] = pg.Items[i].Metadata()
	}
	web.WriteJSON(w, http.StatusOK, pg)
}

func (s *Site) apiPost(w http.ResponseWriter, r *http.Request) {
	p, err := s.blog.Get(chi.URLParam(r, "slug"))
	if err != nil {
		s.apiError(w, r, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, p)
}

// apiProjects returns all projects, or only featured or non-featured ones
// when the featured parameter is given.
func (s *Site) apiProjects(w http.ResponseWriter, r *http.Request) {
	var (
		list []content.Project
		err  error
	)
	if f := r.URL.Query().Get("featured"); f == "" {
		list, err = s.projects.All()
	} else {
		featured, perr := strconv.ParseBool(f)
		if perr != nil {
			web.WriteError(w, http.StatusBadRequest, "Invalid featured value")
			return
		}
		if featured {
			list, err = s.projects.Featured()
		} else {
			list, err = s.projects.NonFeatured()
		}
	}
	if err != nil {
		s.apiError(w, r, err)
		return
	}
	for i := range list {
		list[i].Content = ""
	}
	web.WriteJSON(w, http.StatusOK, list)
}

func (s *Site) apiProject(w http.ResponseWriter, r *http.Request) {
	p, err := s.projects.Get(chi.URLParam(r, "slug"))
	if err != nil {
		s.apiError(w, r, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, p)
}

func (s *Site) apiCategories(w http.ResponseWriter, r *http.Request) {
	c, err := s.blog.Categories()
	if err != nil {
		s.apiError(w, r, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, c)
}

func (s *Site) apiTags(w http.ResponseWriter, r *http.Request) {
	t, err := s.blog.Tags()
	if err != nil {
		s.apiError(w, r, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, t)
}

func (s *Site) health(w http.ResponseWriter, r *http.Request) {
	web.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// apiError writes 404 for unknown slugs and logs anything else as a 500.
func (s *Site) apiError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, content.ErrNotFound) {
		web.WriteError(w, http.StatusNotFound, msgNotFound)
		return
	}
	logError(r, err)
	web.WriteError(w, http.StatusInternalServerError, "Failed to process request")
}
