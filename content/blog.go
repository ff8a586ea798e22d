package content

import "io/fs"

// Defaults applied to posts and projects.
const (
	DefaultAuthor   = "Edison Nkemande"
	DefaultCategory = "General"
	DefaultReadTime = "5 min read"
	DefaultImage    = "🚀"
)

// Post is a blog article.
type Post struct {
	Slug         string   `json:"slug"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Date         string   `json:"date"`
	ReadTime     string   `json:"readTime"`
	Author       string   `json:"author"`
	Category     string   `json:"category"`
	Tags         []string `json:"tags,omitempty"`
	Content      string   `json:"content,omitempty"`
	YouTubeID    string   `json:"youtubeId,omitempty"`
	YouTubeTitle string   `json:"youtubeTitle,omitempty"`
}

func (p Post) key() string       { return p.Slug }
func (p Post) published() string { return p.Date }
func (p Post) group() string     { return p.Category }
func (p Post) labels() []string  { return p.Tags }

// Excerpt returns the first n characters of the body as plain text.
func (p Post) Excerpt(n int) string {
	return excerpt(p.Content, n)
}

// Summary returns the description, or an excerpt of the body when there is none.
func (p Post) Summary() string {
	if p.Description != "" {
		return p.Description
	}
	return p.Excerpt(SummaryLength)
}

// Metadata returns a copy of the post without its body, for listings.
func (p Post) Metadata() Post {
	p.Content = ""
	return p
}

// Blog is the collection of blog posts.
type Blog struct {
	*Collection[Post]
}

// NewBlog returns the blog stored in dir of fsys.
func NewBlog(fsys fs.FS, dir string, opts ...Option) *Blog {
	o := newOptions(opts)
	return &Blog{
		Collection: &Collection[Post]{
			src:  NewSource(fsys, dir),
			opts: o,
			decode: func(d Document) Post {
				return decodePost(d, o.author)
			},
		},
	}
}

// decodePost applies the post defaults to a document.
func decodePost(d Document, author string) Post {
	return Post{
		Slug:         d.Slug,
		Title:        text(d.Meta, "title", ""),
		Description:  text(d.Meta, "description", ""),
		Date:         text(d.Meta, "date", ""),
		ReadTime:     text(d.Meta, "readTime", DefaultReadTime),
		Author:       text(d.Meta, "author", author),
		Category:     text(d.Meta, "category", DefaultCategory),
		Tags:         list(d.Meta, "tags"),
		Content:      d.Body,
		YouTubeID:    text(d.Meta, "youtubeId", ""),
		YouTubeTitle: text(d.Meta, "youtubeTitle", ""),
	}
}
