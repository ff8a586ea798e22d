package cache

import (
	"hash/fnv"
	"time"
)

// quantize returns the time bucket of t for an entry living d. Each name is
// shifted by a hash of itself so entries do not all expire together. A
// non-positive d always yields bucket 0.
func quantize(t time.Time, d time.Duration, name string) int64 {
	if d <= 0 {
		return 0
	}
	h := fnv.New64a()
	h.Write([]byte(name))
	offset := int64(h.Sum64() % uint64(d))
	return (t.UnixNano() + offset) / int64(d)
}
