package site

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// sitemapURLs lists every page of the site relative to base.
func (s *Site) sitemapURLs(base string) ([]string, error) {
	base = strings.TrimSuffix(base, "/")
	result := []string{base + "/"}
	for _, p := range []string{"/projects", "/blog", "/resume", "/contact"} {
		result = append(result, base+p)
	}
	projects, err := s.projects.Slugs()
	if err != nil {
		return nil, fmt.Errorf("sitemapURLs: %w", err)
	}
	for _, slug := range projects {
		result = append(result, base+"/projects/"+url.PathEscape(slug))
	}
	posts, err := s.blog.Slugs()
	if err != nil {
		return nil, fmt.Errorf("sitemapURLs: %w", err)
	}
	for _, slug := range posts {
		result = append(result, base+"/blog/"+url.PathEscape(slug))
	}
	return result, nil
}

// baseURL returns the configured base URL, or one built from the request.
func (s *Site) baseURL(r *http.Request) string {
	if s.cfg.BaseURL != "" {
		return s.cfg.BaseURL
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

// sitemap is an http.HandlerFunc that renders the site map.
func (s *Site) sitemap(w http.ResponseWriter, r *http.Request) {
	urls, err := s.sitemapURLs(s.baseURL(r))
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	var out bytes.Buffer
	for _, u := range urls {
		out.WriteString(u)
		out.WriteByte('\n')
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	http.ServeContent(w, r, "sitemap.txt", time.Time{}, bytes.NewReader(out.Bytes()))
}
