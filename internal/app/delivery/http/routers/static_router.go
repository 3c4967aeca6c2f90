package routers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"brm-service/internal/pkg/constvars"
)

// staticHandler serves the single-page client from dir. Paths without a file
// fall back to index.html so client-side routes load the app. API paths and
// non-GET requests get the JSON not-found response.
func staticHandler(dir, endpointPrefix string, notFound http.HandlerFunc) http.HandlerFunc {
	fileServer := http.FileServer(http.Dir(dir))
	index := filepath.Join(dir, "index.html")

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != constvars.MethodGet && r.Method != constvars.MethodHead {
			notFound(w, r)
			return
		}
		if endpointPrefix != "" && (r.URL.Path == endpointPrefix || strings.HasPrefix(r.URL.Path, endpointPrefix+"/")) {
			notFound(w, r)
			return
		}

		path := filepath.Join(dir, filepath.FromSlash(filepath.Clean("/"+r.URL.Path)))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, r)
			return
		}
		http.ServeFile(w, r, index)
	}
}
