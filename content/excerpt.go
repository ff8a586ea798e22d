package content

import (
	"strings"
	"unicode/utf8"

	stripmd "github.com/writeas/go-strip-markdown/v2"
)

// SummaryLength is the excerpt length used by Summary.
const SummaryLength = 160

// excerpt converts Markdown to plain text and cuts it at a word boundary
// near n characters. n <= 0 returns the whole text.
func excerpt(md string, n int) string {
	s := strings.Join(strings.Fields(stripmd.Strip(md)), " ")
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)[:n]
	cut := string(r)
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}
