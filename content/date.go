package content

import (
	"sort"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseDate parses a front matter date. It reports false for empty or
// unrecognized values, which sort as the oldest items.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// sortByDate orders items newest first. The sort is stable, so items with
// equal (or missing) dates keep their incoming order.
func sortByDate[T item](items []T) {
	times := make(map[string]time.Time, len(items))
	for _, it := range items {
		t, _ := ParseDate(it.published())
		times[it.key()] = t
	}
	sort.SliceStable(items, func(i, j int) bool {
		return times[items[j].key()].Before(times[items[i].key()])
	})
}
