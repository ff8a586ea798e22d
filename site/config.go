package site

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/ancientlore/folio/content"
	"github.com/pelletier/go-toml/v2"
)

// ConfigFile is the name of the site configuration file in the site root.
const ConfigFile = "site.toml"

// Config contains configuration data from the site.toml file.
type Config struct {
	Title         string            `toml:"title"`
	Author        string            `toml:"author"`
	Description   string            `toml:"description"`
	BaseURL       string            `toml:"baseurl"`
	Expires       Duration          `toml:"expires"`
	StaticExpires Duration          `toml:"staticexpires"`
	Headers       map[string]string `toml:"headers"`
	PageSize      int               `toml:"pagesize"`
	Recent        int               `toml:"recent"`
	Related       int               `toml:"related"`
	BlogDir       string            `toml:"blogdir"`
	ProjectsDir   string            `toml:"projectsdir"`
	Links         []Link            `toml:"links"`

	Experience     []Experience    `toml:"experience"`
	Education      []Education     `toml:"education"`
	Certifications []Certification `toml:"certification"`
	Skills         []SkillGroup    `toml:"skills"`
}

// Link is an external profile shown in the footer and on the contact page.
type Link struct {
	Label string `toml:"label"`
	URL   string `toml:"url"`
}

// Experience is a job on the resume.
type Experience struct {
	Title      string   `toml:"title"`
	Company    string   `toml:"company"`
	Period     string   `toml:"period"`
	Location   string   `toml:"location"`
	Highlights []string `toml:"highlights"`
}

// Education is a degree on the resume.
type Education struct {
	Degree     string `toml:"degree"`
	School     string `toml:"school"`
	Graduation string `toml:"graduation"`
	GPA        string `toml:"gpa"`
	Details    string `toml:"details"`
}

// Certification is a certificate on the resume.
type Certification struct {
	Name   string `toml:"name"`
	Issuer string `toml:"issuer"`
	Date   string `toml:"date"`
	Link   string `toml:"link"`
}

// SkillGroup is a named list of skills.
type SkillGroup struct {
	Category string   `toml:"category"`
	Items    []string `toml:"items"`
}

// defaults fills in whatever the file left out.
func (cfg *Config) defaults() {
	if cfg.Title == "" {
		cfg.Title = "Portfolio"
	}
	if cfg.Author == "" {
		cfg.Author = content.DefaultAuthor
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = content.DefaultPageSize
	}
	if cfg.Recent <= 0 {
		cfg.Recent = 3
	}
	if cfg.Related <= 0 {
		cfg.Related = 2
	}
	if cfg.BlogDir == "" {
		cfg.BlogDir = "content/blog"
	}
	if cfg.ProjectsDir == "" {
		cfg.ProjectsDir = "content/projects"
	}
}

// LoadConfig returns configuration from the site.toml file of fsys.
// It is not an error if the file does not exist; defaults are used.
func LoadConfig(fsys fs.FS) (*Config, error) {
	var cfg Config
	cfgBytes, err := fs.ReadFile(fsys, ConfigFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("Cannot read config file: %w", err)
		}
	} else {
		err = toml.Unmarshal(cfgBytes, &cfg)
		if err != nil {
			return nil, fmt.Errorf("Cannot parse config file: %w", err)
		}
	}
	cfg.defaults()
	return &cfg, nil
}
