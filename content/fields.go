package content

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/karlseguin/typed"
)

// text returns the value of key as a string, or def when the value is
// missing or empty. Scalars that are not strings are formatted.
func text(meta typed.Typed, key, def string) string {
	if s, ok := meta.StringIf(key); ok {
		if s == "" {
			return def
		}
		return s
	}
	switch v := meta[key].(type) {
	case nil:
		return def
	case bool:
		if !v {
			return def
		}
		return strconv.FormatBool(v)
	case int, int64, uint64, float64:
		return fmt.Sprint(v)
	case time.Time:
		return formatTime(v)
	case fmt.Stringer:
		return v.String()
	}
	return def
}

// flag reports whether key is true. Strings are parsed with strconv.ParseBool.
func flag(meta typed.Typed, key string) bool {
	if b, ok := meta.BoolIf(key); ok {
		return b
	}
	if s, ok := meta.StringIf(key); ok {
		b, _ := strconv.ParseBool(strings.TrimSpace(s))
		return b
	}
	return false
}

// list returns key as a list of strings in declared order. A single string
// is a list of one; anything else is treated as missing.
func list(meta typed.Typed, key string) []string {
	switch v := meta[key].(type) {
	case []string:
		return append([]string(nil), v...)
	case []interface{}:
		r := make([]string, 0, len(v))
		for _, x := range v {
			switch s := x.(type) {
			case nil:
			case string:
				r = append(r, s)
			default:
				r = append(r, fmt.Sprint(s))
			}
		}
		return r
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	}
	return nil
}

// formatTime writes dates without a time of day as plain calendar dates.
func formatTime(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format(time.RFC3339)
}
