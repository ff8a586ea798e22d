package content

import "io/fs"

// Project is a portfolio project.
type Project struct {
	Slug            string   `json:"slug"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription"`
	Date            string   `json:"date"`
	Image           string   `json:"image"`
	Role            string   `json:"role"`
	Impact          string   `json:"impact"`
	Category        string   `json:"category"`
	Featured        bool     `json:"featured"`
	Tags            []string `json:"tags"`
	GitHub          string   `json:"github,omitempty"`
	Live            string   `json:"live,omitempty"`
	Content         string   `json:"content,omitempty"`
	YouTubeID       string   `json:"youtubeId,omitempty"`
	YouTubeTitle    string   `json:"youtubeTitle,omitempty"`
}

func (p Project) key() string       { return p.Slug }
func (p Project) published() string { return p.Date }
func (p Project) group() string     { return p.Category }
func (p Project) labels() []string  { return p.Tags }

// Excerpt returns the first n characters of the body as plain text.
func (p Project) Excerpt(n int) string {
	return excerpt(p.Content, n)
}

// Year returns the year of the project date, or "" when it does not parse.
func (p Project) Year() string {
	t, ok := ParseDate(p.Date)
	if !ok {
		return ""
	}
	return t.Format("2006")
}

// Projects is the collection of portfolio projects.
type Projects struct {
	*Collection[Project]
}

// NewProjects returns the projects stored in dir of fsys.
func NewProjects(fsys fs.FS, dir string, opts ...Option) *Projects {
	return &Projects{
		Collection: &Collection[Project]{
			src:    NewSource(fsys, dir),
			opts:   newOptions(opts),
			decode: decodeProject,
		},
	}
}

// Featured returns the featured projects, newest first.
func (p *Projects) Featured() ([]Project, error) {
	return p.where(true)
}

// NonFeatured returns the projects that are not featured, newest first.
func (p *Projects) NonFeatured() ([]Project, error) {
	return p.where(false)
}

func (p *Projects) where(featured bool) ([]Project, error) {
	all, err := p.All()
	if err != nil {
		return nil, err
	}
	r := []Project{}
	for _, it := range all {
		if it.Featured == featured {
			r = append(r, it)
		}
	}
	return r, nil
}

// decodeProject applies the project defaults to a document.
func decodeProject(d Document) Project {
	tags := list(d.Meta, "tags")
	if tags == nil {
		tags = []string{}
	}
	return Project{
		Slug:            d.Slug,
		Title:           text(d.Meta, "title", ""),
		Description:     text(d.Meta, "description", ""),
		LongDescription: text(d.Meta, "longDescription", ""),
		Date:            text(d.Meta, "date", ""),
		Image:           text(d.Meta, "image", DefaultImage),
		Role:            text(d.Meta, "role", ""),
		Impact:          text(d.Meta, "impact", ""),
		Category:        text(d.Meta, "category", DefaultCategory),
		Featured:        flag(d.Meta, "featured"),
		Tags:            tags,
		GitHub:          text(d.Meta, "github", ""),
		Live:            text(d.Meta, "live", ""),
		Content:         d.Body,
		YouTubeID:       text(d.Meta, "youtubeId", ""),
		YouTubeTitle:    text(d.Meta, "youtubeTitle", ""),
	}
}
