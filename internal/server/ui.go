package server

import (
	"io/fs"
	"net/http"
	"strings"
)

// uiFS holds the embedded garden UI. Set via SetUI before creating the server.
var uiFS fs.FS

// SetUI sets the embedded filesystem for serving the UI.
func SetUI(fsys fs.FS) {
	uiFS = fsys
}

// spaHandler serves static files from the embedded FS. Any path that does not
// match a real file falls back to index.html for client-side routing.
func spaHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if uiFS == nil {
			http.Error(w, "UI not embedded", http.StatusNotFound)
			return
		}

		path := strings.TrimPrefix(r.URL.Path, "/")
		if path == "" {
			path = "index.html"
		}

		f, err := uiFS.Open(path)
		if err != nil {
			path = "index.html"
		} else {
			f.Close()
		}

		http.ServeFileFS(w, r, uiFS, path)
	}
}
