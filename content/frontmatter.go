package content

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// formats are the front matter fences we recognize.
var formats = []*frontmatter.Format{
	frontmatter.NewFormat("---", "---", yaml.Unmarshal),
	frontmatter.NewFormat("+++", "+++", toml.Unmarshal),
}

// extractFrontMatter decodes the front matter of x and returns it along with
// the remaining body. A file without front matter yields an empty map and
// the whole file as the body.
func extractFrontMatter(x []byte) (map[string]interface{}, []byte, error) {
	fm := make(map[string]interface{})
	r, err := frontmatter.Parse(bytes.NewReader(x), &fm, formats...)
	if err != nil {
		return nil, x, fmt.Errorf("extractFrontMatter: %w", err)
	}
	return fm, bytes.TrimLeft(r, "\r\n"), nil
}
