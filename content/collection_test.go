package content

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

// mapFS builds an in-memory file system from name/content pairs.
func mapFS(files map[string]string) fstest.MapFS {
	m := make(fstest.MapFS, len(files))
	for name, data := range files {
		m[name] = &fstest.MapFile{Data: []byte(data)}
	}
	return m
}

var blogFiles = map[string]string{
	"blog/hello.md": "---\ntitle: \"Hello\"\ndate: \"2024-01-01\"\ncategory: \"Tech\"\n---\nWorld",
	"blog/go-generics.mdx": `---
title: Go generics
date: 2024-03-15
category: tech
tags: [go, generics, go]
author: Someone Else
readTime: 8 min read
youtubeId: dQw4w9WgXcQ
---
# Generics

Type parameters arrived in **Go 1.18**.`,
	"blog/career.md":    "---\ntitle: Career\ndate: 2023-06-01\ncategory: Life\n---\nNotes",
	"blog/undated.md":   "---\ntitle: Undated\n---\nNo date",
	"blog/garbage.md":   "---\ntitle: Garbage date\ndate: not a date\n---\nBad date",
	"blog/plain.md":     "Just a body without front matter",
	"blog/notes.txt":    "not content",
	"blog/.draft.md":    "---\ntitle: Hidden\n---\n",
	"blog/sub/inner.md": "---\ntitle: Nested\n---\n",
}

func newTestBlog(t *testing.T) *Blog {
	t.Helper()
	return NewBlog(mapFS(blogFiles), "blog")
}

func slugsOf[T item](items []T) []string {
	r := make([]string, len(items))
	for i := range items {
		r[i] = items[i].key()
	}
	return r
}

func TestRoundTrip(t *testing.T) {
	b := newTestBlog(t)
	p, err := b.Get("hello")
	if err != nil {
		t.Fatal(err)
	}
	p.Content = strings.TrimSpace(p.Content)
	want := Post{
		Slug:     "hello",
		Title:    "Hello",
		Date:     "2024-01-01",
		ReadTime: DefaultReadTime,
		Author:   DefaultAuthor,
		Category: "Tech",
		Content:  "World",
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("Get(hello) mismatch (-want +got):\n%s", diff)
	}
}

func TestMissingDir(t *testing.T) {
	b := NewBlog(mapFS(blogFiles), "nope")
	slugs, err := b.Slugs()
	if err != nil || len(slugs) != 0 {
		t.Errorf("expected no slugs and no error, got %v, %v", slugs, err)
	}
	all, err := b.All()
	if err != nil || len(all) != 0 {
		t.Errorf("expected no items and no error, got %v, %v", all, err)
	}
	if _, err := b.Get("hello"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	pg, err := b.Page(3, 6, "")
	if err != nil {
		t.Fatal(err)
	}
	if pg.CurrentPage != 1 || pg.TotalPages != 0 || pg.TotalItems != 0 || len(pg.Items) != 0 {
		t.Errorf("unexpected empty page %+v", pg)
	}
}

func TestSlugs(t *testing.T) {
	b := newTestBlog(t)
	slugs, err := b.Slugs()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"career", "garbage", "go-generics", "hello", "plain", "undated"}
	if diff := cmp.Diff(want, slugs); diff != "" {
		t.Errorf("Slugs mismatch (-want +got):\n%s", diff)
	}
	for _, s := range slugs {
		p, err := b.Get(s)
		if err != nil {
			t.Errorf("Get(%q): %v", s, err)
			continue
		}
		if p.Slug != s {
			t.Errorf("Get(%q) returned slug %q", s, p.Slug)
		}
	}
}

func TestGetNotFound(t *testing.T) {
	b := newTestBlog(t)
	for _, s := range []string{"missing", "", ".draft", "sub/inner", "../blog/hello", "notes"} {
		if _, err := b.Get(s); !errors.Is(err, ErrNotFound) {
			t.Errorf("Get(%q): expected ErrNotFound, got %v", s, err)
		}
	}
}

func TestAllSorted(t *testing.T) {
	b := newTestBlog(t)
	all, err := b.All()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"go-generics", "hello", "career", "garbage", "plain", "undated"}
	if diff := cmp.Diff(want, slugsOf(all)); diff != "" {
		t.Errorf("All order mismatch (-want +got):\n%s", diff)
	}
	for i := 1; i < len(all); i++ {
		a, _ := ParseDate(all[i-1].Date)
		c, _ := ParseDate(all[i].Date)
		if a.Before(c) {
			t.Errorf("%s (%s) sorted before newer %s (%s)", all[i-1].Slug, all[i-1].Date, all[i].Slug, all[i].Date)
		}
	}
}

func TestDefaults(t *testing.T) {
	b := newTestBlog(t)
	p, err := b.Get("plain")
	if err != nil {
		t.Fatal(err)
	}
	if p.Title != "" || p.Date != "" || p.Category != DefaultCategory || p.Author != DefaultAuthor || p.ReadTime != DefaultReadTime {
		t.Errorf("defaults not applied: %+v", p)
	}
	if p.Content != blogFiles["blog/plain.md"] {
		t.Errorf("expected whole file as content, got %q", p.Content)
	}

	g, err := b.Get("go-generics")
	if err != nil {
		t.Fatal(err)
	}
	if g.Author != "Someone Else" || g.ReadTime != "8 min read" || g.YouTubeID != "dQw4w9WgXcQ" || g.Date != "2024-03-15" {
		t.Errorf("declared fields not used: %+v", g)
	}
	if diff := cmp.Diff([]string{"go", "generics", "go"}, g.Tags); diff != "" {
		t.Errorf("tags must keep declared order (-want +got):\n%s", diff)
	}

	custom := NewBlog(mapFS(blogFiles), "blog", WithAuthor("Site Owner"))
	p, err = custom.Get("plain")
	if err != nil {
		t.Fatal(err)
	}
	if p.Author != "Site Owner" {
		t.Errorf("expected configured author, got %q", p.Author)
	}
}

func TestCategories(t *testing.T) {
	b := newTestBlog(t)
	cats, err := b.Categories()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"General", "Life", "Tech", "tech"}
	if diff := cmp.Diff(want, cats); diff != "" {
		t.Errorf("Categories mismatch (-want +got):\n%s", diff)
	}
	if !sort.StringsAreSorted(cats) {
		t.Errorf("categories not sorted: %v", cats)
	}
}

func TestByCategory(t *testing.T) {
	b := newTestBlog(t)
	all, err := b.All()
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range []string{"", "all", "ALL", "All", "  "} {
		got, err := b.ByCategory(c)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(all, got); diff != "" {
			t.Errorf("ByCategory(%q) should equal All (-want +got):\n%s", c, diff)
		}
	}
	lower, err := b.ByCategory("tech")
	if err != nil {
		t.Fatal(err)
	}
	upper, err := b.ByCategory("TECH")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(slugsOf(lower), slugsOf(upper)); diff != "" {
		t.Errorf("category match must ignore case (-lower +upper):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"go-generics", "hello"}, slugsOf(lower)); diff != "" {
		t.Errorf("ByCategory(tech) mismatch (-want +got):\n%s", diff)
	}
	padded, err := b.ByCategory("  Tech ")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(slugsOf(lower), slugsOf(padded)); diff != "" {
		t.Errorf("category must be trimmed (-want +got):\n%s", diff)
	}
	none, err := b.ByCategory("cooking")
	if err != nil || none == nil || len(none) != 0 {
		t.Errorf("expected an empty list, got %v, %v", none, err)
	}
}

func TestPage(t *testing.T) {
	b := newTestBlog(t) // 6 posts
	tests := []struct {
		page, size  int
		category    string
		currentPage int
		totalPages  int
		items       int
	}{
		{1, 4, "", 1, 2, 4},
		{2, 4, "", 2, 2, 2},
		{0, 4, "", 1, 2, 4},
		{-5, 4, "", 1, 2, 4},
		{99, 4, "", 2, 2, 2},
		{1, 6, "", 1, 1, 6},
		{1, 0, "", 1, 1, 6},
		{2, 1, "tech", 2, 2, 1},
		{1, 3, "cooking", 1, 0, 0},
		{7, 3, "cooking", 1, 0, 0},
		{1, math.MaxInt, "", 1, 1, 6},
		{3, math.MaxInt, "", 1, 1, 6},
		{1, math.MaxInt - 1, "tech", 1, 1, 2},
		{1, 2, " Tech ", 1, 1, 2},
	}
	for _, tt := range tests {
		pg, err := b.Page(tt.page, tt.size, tt.category)
		if err != nil {
			t.Fatal(err)
		}
		if pg.CurrentPage != tt.currentPage || pg.TotalPages != tt.totalPages || len(pg.Items) != tt.items {
			t.Errorf("Page(%d, %d, %q) = current %d, total %d, %d items; want %d, %d, %d",
				tt.page, tt.size, tt.category, pg.CurrentPage, pg.TotalPages, len(pg.Items),
				tt.currentPage, tt.totalPages, tt.items)
		}
	}
}

func TestPageProperties(t *testing.T) {
	for n := 0; n <= 7; n++ {
		items := make([]int, n)
		for size := 1; size <= 4; size++ {
			last := (n + size - 1) / size
			if last < 1 {
				last = 1
			}
			for page := -2; page <= 12; page++ {
				pg := paginate(items, page, size)
				if pg.CurrentPage < 1 || pg.CurrentPage > last {
					t.Errorf("n=%d size=%d page=%d: current page %d out of [1,%d]", n, size, page, pg.CurrentPage, last)
				}
				if len(pg.Items) > size {
					t.Errorf("n=%d size=%d page=%d: %d items", n, size, page, len(pg.Items))
				}
				if pg.TotalItems != n {
					t.Errorf("n=%d: total items %d", n, pg.TotalItems)
				}
			}
		}
	}
}

func TestPageHugeSize(t *testing.T) {
	for n := 0; n <= 3; n++ {
		items := make([]int, n)
		want := 0
		if n > 0 {
			want = 1
		}
		for _, size := range []int{math.MaxInt, math.MaxInt - 1, math.MaxInt/2 + 1} {
			for page := -1; page <= 3; page++ {
				pg := paginate(items, page, size)
				if pg.TotalPages != want || pg.CurrentPage != 1 || len(pg.Items) != n || pg.TotalItems != n {
					t.Errorf("n=%d size=%d page=%d: got total %d, current %d, %d items",
						n, size, page, pg.TotalPages, pg.CurrentPage, len(pg.Items))
				}
			}
		}
	}
}

func TestRecentRelatedNeighbors(t *testing.T) {
	b := newTestBlog(t)
	recent, err := b.Recent(2)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"go-generics", "hello"}, slugsOf(recent)); diff != "" {
		t.Errorf("Recent(2) mismatch (-want +got):\n%s", diff)
	}
	if r, _ := b.Recent(0); len(r) != 0 {
		t.Errorf("Recent(0) returned %d items", len(r))
	}
	if r, _ := b.Recent(100); len(r) != 6 {
		t.Errorf("Recent(100) returned %d items", len(r))
	}

	related, err := b.Related("go-generics", 2)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"hello", "career"}, slugsOf(related)); diff != "" {
		t.Errorf("Related mismatch (-want +got):\n%s", diff)
	}

	prev, next, err := b.Neighbors("hello")
	if err != nil {
		t.Fatal(err)
	}
	if prev == nil || prev.Slug != "go-generics" || next == nil || next.Slug != "career" {
		t.Errorf("unexpected neighbors %v, %v", prev, next)
	}
	prev, _, err = b.Neighbors("go-generics")
	if err != nil || prev != nil {
		t.Errorf("newest post should have no previous: %v, %v", prev, err)
	}
	if _, _, err := b.Neighbors("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestIdempotent(t *testing.T) {
	b := newTestBlog(t)
	first, err := b.All()
	if err != nil {
		t.Fatal(err)
	}
	second, err := b.All()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("All is not idempotent (-first +second):\n%s", diff)
	}
	c1, _ := b.Categories()
	c2, _ := b.Categories()
	if diff := cmp.Diff(c1, c2); diff != "" {
		t.Errorf("Categories is not idempotent:\n%s", diff)
	}
}

func TestDuplicateSlug(t *testing.T) {
	fsys := mapFS(map[string]string{
		"posts/a.mdx": "---\ntitle: From MDX\ndate: 2024-01-01\n---\n",
		"posts/a.md":  "---\ntitle: From MD\ndate: 2024-01-01\n---\n",
		"posts/b.mdx": "---\ntitle: B\ndate: 2024-01-02\n---\n",
	})
	b := NewBlog(fsys, "posts")
	slugs, err := b.Slugs()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, slugs); diff != "" {
		t.Errorf("duplicate slugs must be listed once (-want +got):\n%s", diff)
	}
	p, err := b.Get("a")
	if err != nil {
		t.Fatal(err)
	}
	if p.Title != "From MD" {
		t.Errorf("expected the .md file to win, got %q", p.Title)
	}
	problems, err := b.Check()
	if err != nil {
		t.Fatal(err)
	}
	if len(problems) != 1 || problems[0].File != "a.mdx" {
		t.Errorf("expected one duplicate problem for a.mdx, got %v", problems)
	}
}

func TestMalformedFrontMatter(t *testing.T) {
	fsys := mapFS(map[string]string{
		"blog/broken.md": "---\ntitle: [unclosed\n---\nbody",
		"blog/ok.md":     "---\ntitle: OK\ndate: 2024-01-01\n---\nbody",
	})
	b := NewBlog(fsys, "blog")
	all, err := b.All()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("expected both posts, got %d", len(all))
	}
	p, err := b.Get("broken")
	if err != nil {
		t.Fatal(err)
	}
	if p.Title != "" || p.Category != DefaultCategory {
		t.Errorf("expected defaults for broken front matter, got %+v", p)
	}
	problems, err := b.Check()
	if err != nil {
		t.Fatal(err)
	}
	var sawMeta bool
	for _, pr := range problems {
		if pr.Slug == "broken" && strings.HasPrefix(pr.Message, "front matter") {
			sawMeta = true
		}
		if pr.Slug == "ok" {
			t.Errorf("unexpected problem for ok.md: %v", pr)
		}
	}
	if !sawMeta {
		t.Errorf("expected a front matter problem, got %v", problems)
	}
}

func TestCheckDates(t *testing.T) {
	b := newTestBlog(t)
	problems, err := b.Check()
	if err != nil {
		t.Fatal(err)
	}
	got := make(map[string]string)
	for _, p := range problems {
		got[p.Slug] = p.Message
	}
	want := map[string]string{
		"undated": "missing date",
		"plain":   "missing date",
		"garbage": `cannot parse date "not a date"`,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Check mismatch (-want +got):\n%s", diff)
	}
}

func TestTOMLFrontMatter(t *testing.T) {
	fsys := mapFS(map[string]string{
		"blog/toml.md": "+++\ntitle = \"TOML post\"\ndate = 2024-02-29\ntags = [\"a\", \"b\"]\n+++\nBody",
	})
	p, err := NewBlog(fsys, "blog").Get("toml")
	if err != nil {
		t.Fatal(err)
	}
	if p.Title != "TOML post" || p.Date != "2024-02-29" || len(p.Tags) != 2 {
		t.Errorf("unexpected TOML decode %+v", p)
	}
}

func TestEditsVisible(t *testing.T) {
	dir := t.TempDir()
	blogDir := filepath.Join(dir, "blog")
	if err := os.Mkdir(blogDir, 0o755); err != nil {
		t.Fatal(err)
	}
	name := filepath.Join(blogDir, "live.md")
	if err := os.WriteFile(name, []byte("---\ntitle: Before\n---\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	b := NewBlog(os.DirFS(dir), "/blog")
	p, err := b.Get("live")
	if err != nil {
		t.Fatal(err)
	}
	if p.Title != "Before" {
		t.Fatalf("expected Before, got %q", p.Title)
	}
	if err := os.WriteFile(name, []byte("---\ntitle: After\n---\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err = b.Get("live")
	if err != nil {
		t.Fatal(err)
	}
	if p.Title != "After" {
		t.Errorf("edit not visible: got %q", p.Title)
	}
	if err := os.Remove(name); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Get("live"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after removal, got %v", err)
	}
}

func TestExcerpt(t *testing.T) {
	b := newTestBlog(t)
	p, err := b.Get("go-generics")
	if err != nil {
		t.Fatal(err)
	}
	if s := p.Excerpt(0); strings.ContainsAny(s, "#*") {
		t.Errorf("expected plain text, got %q", s)
	}
	short := p.Excerpt(10)
	if !strings.HasSuffix(short, "…") || len([]rune(short)) > 11 {
		t.Errorf("unexpected short excerpt %q", short)
	}
	if p.Summary() == "" {
		t.Error("expected a summary from the body")
	}
	if m := p.Metadata(); m.Content != "" || m.Title != p.Title {
		t.Errorf("unexpected metadata %+v", m)
	}
}
