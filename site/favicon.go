package site

import (
	"errors"
	"io/fs"
	"net/http"

	"github.com/ancientlore/folio/web"
)

// favicon sends browsers asking for /favicon.ico to the copy in the static folder.
func (s *Site) favicon(w http.ResponseWriter, r *http.Request) {
	_, err := fs.Stat(s.static, "favicon.ico")
	if errors.Is(err, fs.ErrNotExist) {
		http.NotFound(w, r)
		return
	} else if err != nil {
		logError(r, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, web.StaticPrefix+"favicon.ico", http.StatusPermanentRedirect)
}
