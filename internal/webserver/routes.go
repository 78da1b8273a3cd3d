package webserver

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"

	"github.com/psinghania/packadvisor/internal/webapi"
)

//go:embed static
var staticAssets embed.FS

// registerRoutes sets up API and dashboard routes on the given mux.
func registerRoutes(mux *http.ServeMux, store webapi.CatalogStore) {
	webapi.RegisterRoutes(mux, store)
	mux.Handle("/", dashboardHandler())
}

// dashboardHandler serves the embedded dashboard assets. Unknown paths are
// served index.html so browser-side routing keeps working.
func dashboardHandler() http.Handler {
	assets, err := fs.Sub(staticAssets, "static")
	if err != nil {
		// The static directory is embedded at compile time.
		panic(err)
	}

	fileServer := http.FileServer(http.FS(assets))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		if path != "/" {
			cleanPath := strings.TrimPrefix(path, "/")
			if f, err := assets.Open(cleanPath); err == nil {
				f.Close() //nolint:errcheck
				fileServer.ServeHTTP(w, r)
				return
			}
		}

		r.URL.Path = "/"
		fileServer.ServeHTTP(w, r)
	})
}
