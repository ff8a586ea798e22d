package content

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

// DefaultPageSize is the page size used when a caller passes zero or less.
const DefaultPageSize = 6

// item is implemented by the types a Collection holds.
type item interface {
	key() string
	published() string
	group() string
	labels() []string
}

// Page is one page of a paginated list.
type Page[T any] struct {
	Items       []T `json:"items"`
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
	TotalItems  int `json:"totalItems"`
}

// Collection answers queries over the items of one folder. It keeps no
// state between calls; every query reads the folder again.
type Collection[T item] struct {
	src    *Source
	decode func(Document) T
	opts   options
}

// Option configures a collection.
type Option func(*options)

type options struct {
	author   string
	pageSize int
}

// WithAuthor sets the author used for posts that do not name one.
func WithAuthor(name string) Option {
	return func(o *options) {
		if name != "" {
			o.author = name
		}
	}
}

// WithPageSize sets the page size used when Page is called with size <= 0.
func WithPageSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.pageSize = n
		}
	}
}

func newOptions(opts []Option) options {
	o := options{author: DefaultAuthor, pageSize: DefaultPageSize}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Dir returns the folder the collection reads.
func (c *Collection[T]) Dir() string {
	return c.src.Dir()
}

// Slugs returns the slug of every item, sorted. A missing folder has none.
func (c *Collection[T]) Slugs() ([]string, error) {
	return c.src.Slugs()
}

// Get returns the item named by slug, or ErrNotFound.
func (c *Collection[T]) Get(slug string) (T, error) {
	var zero T
	d, err := c.src.Read(slug)
	if err != nil {
		return zero, err
	}
	return c.decode(d), nil
}

// All returns every item, newest first.
func (c *Collection[T]) All() ([]T, error) {
	docs, err := c.src.ReadAll()
	if err != nil {
		return nil, err
	}
	r := make([]T, len(docs))
	for i := range docs {
		r[i] = c.decode(docs[i])
	}
	sortByDate(r)
	return r, nil
}

// isAll reports whether category means "no filter".
func isAll(category string) bool {
	return category == "" || strings.EqualFold(category, "all")
}

// ByCategory returns the items whose category matches, ignoring case.
// An empty category or "all" returns every item.
func (c *Collection[T]) ByCategory(category string) ([]T, error) {
	category = strings.TrimSpace(category)
	items, err := c.All()
	if err != nil || isAll(category) {
		return items, err
	}
	r := []T{}
	for _, it := range items {
		if strings.EqualFold(it.group(), category) {
			r = append(r, it)
		}
	}
	return r, nil
}

// Categories returns the distinct categories, sorted. Categories that differ
// only in case are listed separately.
func (c *Collection[T]) Categories() ([]string, error) {
	items, err := c.All()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	r := []string{}
	for _, it := range items {
		if !seen[it.group()] {
			seen[it.group()] = true
			r = append(r, it.group())
		}
	}
	sort.Strings(r)
	return r, nil
}

// Tags returns the distinct tags across all items, sorted.
func (c *Collection[T]) Tags() ([]string, error) {
	items, err := c.All()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	r := []string{}
	for _, it := range items {
		for _, t := range it.labels() {
			if !seen[t] {
				seen[t] = true
				r = append(r, t)
			}
		}
	}
	sort.Strings(r)
	return r, nil
}

// Recent returns the newest n items.
func (c *Collection[T]) Recent(n int) ([]T, error) {
	items, err := c.All()
	if err != nil {
		return nil, err
	}
	return head(items, n), nil
}

// Related returns the first n items other than slug, newest first.
func (c *Collection[T]) Related(slug string, n int) ([]T, error) {
	items, err := c.All()
	if err != nil {
		return nil, err
	}
	r := make([]T, 0, len(items))
	for _, it := range items {
		if it.key() != slug {
			r = append(r, it)
		}
	}
	return head(r, n), nil
}

// Neighbors returns the items just newer (prev) and just older (next) than
// slug. Either is nil at the ends of the list.
func (c *Collection[T]) Neighbors(slug string) (prev, next *T, err error) {
	items, err := c.All()
	if err != nil {
		return nil, nil, err
	}
	for i := range items {
		if items[i].key() != slug {
			continue
		}
		if i > 0 {
			prev = &items[i-1]
		}
		if i < len(items)-1 {
			next = &items[i+1]
		}
		return prev, next, nil
	}
	return nil, nil, ErrNotFound
}

// Page returns one page of the items in category (see ByCategory). page is
// 1-based and clamped into range, so CurrentPage may differ from the
// request. A size of zero or less uses the collection's page size.
func (c *Collection[T]) Page(page, size int, category string) (Page[T], error) {
	if size <= 0 {
		size = c.opts.pageSize
	}
	items, err := c.ByCategory(category)
	if err != nil {
		return Page[T]{}, err
	}
	return paginate(items, page, size), nil
}

// paginate slices items into the requested page.
func paginate[T any](items []T, page, size int) Page[T] {
	total := len(items)
	pages := total / size
	if total%size != 0 {
		pages++
	}
	last := pages
	if last < 1 {
		last = 1
	}
	if page < 1 {
		page = 1
	} else if page > last {
		page = last
	}
	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := total
	if size < total-start {
		end = start + size
	}
	return Page[T]{
		Items:       items[start:end],
		TotalPages:  pages,
		CurrentPage: page,
		TotalItems:  total,
	}
}

// head returns at most the first n items.
func head[T any](items []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	if n < len(items) {
		return items[:n]
	}
	return items
}

// Problem describes something wrong with a content file. Problems never
// stop the site from serving; Check reports them for authors.
type Problem struct {
	Dir     string `json:"dir"`
	Slug    string `json:"slug"`
	File    string `json:"file"`
	Message string `json:"message"`
}

func (p Problem) String() string {
	return fmt.Sprintf("%s/%s: %s", p.Dir, p.File, p.Message)
}

// Check reads every file and reports shadowed duplicates, front matter
// that did not decode and dates that do not parse.
func (c *Collection[T]) Check() ([]Problem, error) {
	ents, err := c.src.entries()
	if err != nil {
		return nil, fmt.Errorf("Check: %w", err)
	}
	var r []Problem
	for _, e := range ents {
		for _, s := range e.shadowed {
			r = append(r, Problem{Dir: c.Dir(), Slug: e.slug, File: s, Message: fmt.Sprintf("duplicate slug %q, using %s", e.slug, e.name)})
		}
		d, err := c.src.read(e)
		if errors.Is(err, ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("Check: %w", err)
		}
		if d.MetaErr != nil {
			r = append(r, Problem{Dir: c.Dir(), Slug: e.slug, File: e.name, Message: "front matter: " + d.MetaErr.Error()})
		}
		it := c.decode(d)
		if date := it.published(); date == "" {
			r = append(r, Problem{Dir: c.Dir(), Slug: e.slug, File: e.name, Message: "missing date"})
		} else if _, ok := ParseDate(date); !ok {
			r = append(r, Problem{Dir: c.Dir(), Slug: e.slug, File: e.name, Message: fmt.Sprintf("cannot parse date %q", date)})
		}
	}
	return r, nil
}
