package handlers

import (
	"net/http"
	"os"
	"path/filepath"
)

// StaticHandler serves the built editor UI
type StaticHandler struct {
	dir    string
	server http.Handler
}

// NewStaticHandler creates a handler serving files from dir
func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{
		dir:    dir,
		server: http.FileServer(http.Dir(dir)),
	}
}

// ServeHTTP serves the requested file, falling back to index.html for paths
// that do not exist on disk so client-side routes resolve
func (sh *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(sh.dir, filepath.Clean("/"+r.URL.Path))
	if _, err := os.Stat(path); os.IsNotExist(err) {
		http.ServeFile(w, r, filepath.Join(sh.dir, "index.html"))
		return
	}
	sh.server.ServeHTTP(w, r)
}
