package content

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"

	"github.com/karlseguin/typed"
)

// ErrNotFound is returned when no file matches a slug.
var ErrNotFound = errors.New("content: not found")

// Extensions lists the recognized content extensions in order of preference.
var Extensions = []string{".md", ".mdx"}

// Document is a parsed content file.
type Document struct {
	Slug    string      // file name without extension
	File    string      // file name within the folder
	Meta    typed.Typed // decoded front matter, empty if there was none
	Body    string      // everything after the front matter
	MetaErr error       // set when the front matter could not be decoded
}

// Source reads the content files of one folder of an fs.FS.
type Source struct {
	fsys fs.FS
	dir  string
}

// NewSource returns a Source for dir within fsys. dir uses forward slashes;
// a leading "/" or "./" is ignored.
func NewSource(fsys fs.FS, dir string) *Source {
	dir = path.Clean("./" + strings.TrimPrefix(dir, "/"))
	return &Source{fsys: fsys, dir: dir}
}

// Dir returns the folder the source reads.
func (s *Source) Dir() string {
	return s.dir
}

// entry is a content file found in the folder.
type entry struct {
	slug     string
	name     string
	shadowed []string // other files with the same slug
}

// entries lists the content files sorted by slug. A folder that does not
// exist has no entries.
func (s *Source) entries() ([]entry, error) {
	des, err := fs.ReadDir(s.fsys, s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("entries: %w", err)
	}
	var (
		r      []entry
		bySlug = make(map[string]int, len(des))
	)
	for _, de := range des {
		if de.IsDir() {
			continue
		}
		slug, ext, ok := splitName(de.Name())
		if !ok {
			continue
		}
		i, dup := bySlug[slug]
		if !dup {
			bySlug[slug] = len(r)
			r = append(r, entry{slug: slug, name: de.Name()})
			continue
		}
		if extRank(ext) < extRank(path.Ext(r[i].name)) {
			r[i].shadowed = append(r[i].shadowed, r[i].name)
			r[i].name = de.Name()
		} else {
			r[i].shadowed = append(r[i].shadowed, de.Name())
		}
	}
	sort.Slice(r, func(i, j int) bool { return r[i].slug < r[j].slug })
	return r, nil
}

// Slugs returns the slugs of all content files, sorted.
func (s *Source) Slugs() ([]string, error) {
	ents, err := s.entries()
	if err != nil {
		return nil, fmt.Errorf("Slugs: %w", err)
	}
	r := make([]string, len(ents))
	for i := range ents {
		r[i] = ents[i].slug
	}
	return r, nil
}

// Read returns the document for slug, or ErrNotFound.
func (s *Source) Read(slug string) (Document, error) {
	if !validSlug(slug) {
		return Document{}, ErrNotFound
	}
	ents, err := s.entries()
	if err != nil {
		return Document{}, fmt.Errorf("Read: %w", err)
	}
	i := sort.Search(len(ents), func(i int) bool { return ents[i].slug >= slug })
	if i == len(ents) || ents[i].slug != slug {
		return Document{}, ErrNotFound
	}
	return s.read(ents[i])
}

// ReadAll returns every document, sorted by slug.
func (s *Source) ReadAll() ([]Document, error) {
	ents, err := s.entries()
	if err != nil {
		return nil, fmt.Errorf("ReadAll: %w", err)
	}
	r := make([]Document, 0, len(ents))
	for _, e := range ents {
		d, err := s.read(e)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("ReadAll: %w", err)
		}
		r = append(r, d)
	}
	return r, nil
}

// read loads and parses one entry.
func (s *Source) read(e entry) (Document, error) {
	b, err := fs.ReadFile(s.fsys, path.Join(s.dir, e.name))
	if err != nil {
		// removed between listing and reading
		if errors.Is(err, fs.ErrNotExist) {
			return Document{}, ErrNotFound
		}
		return Document{}, fmt.Errorf("read: %w", err)
	}
	d := Document{Slug: e.slug, File: e.name}
	fm, body, err := extractFrontMatter(b)
	if err != nil {
		log.Printf("read %s: %s", path.Join(s.dir, e.name), err)
		d.MetaErr = err
		fm = nil
	}
	d.Meta = typed.New(fm)
	d.Body = string(body)
	return d, nil
}

// splitName splits a file name into slug and extension, reporting whether
// it is a content file.
func splitName(name string) (slug, ext string, ok bool) {
	if strings.HasPrefix(name, ".") {
		return "", "", false
	}
	ext = path.Ext(name)
	if extRank(ext) < 0 {
		return "", "", false
	}
	return strings.TrimSuffix(name, ext), ext, true
}

// extRank returns the preference of ext, or -1 if it is not a content extension.
func extRank(ext string) int {
	for i, e := range Extensions {
		if ext == e {
			return i
		}
	}
	return -1
}

// validSlug rejects slugs that could name something outside the folder.
func validSlug(slug string) bool {
	return slug != "" && !strings.HasPrefix(slug, ".") && !strings.ContainsAny(slug, `/\`)
}
