package web

import (
	"net/http"
	"strings"
)

// containsSpecialFile reports whether name contains a path element starting with a period.
// The name is assumed to be delimited by forward slashes, as guaranteed by the
// http.FileSystem interface.
func containsSpecialFile(name string) bool {
	for _, part := range strings.Split(name, "/") {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

// HideSpecialFiles forbids requests for dot files and folders such as .git or .env.
func HideSpecialFiles(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if containsSpecialFile(r.URL.Path) {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}
		h.ServeHTTP(w, r)
	})
}
