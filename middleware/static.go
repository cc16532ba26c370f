package middleware

import (
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
)

// Static serves files that exist under dir and hands every other request
// to the next handler. Only GET and HEAD are considered.
func Static(dir string, logger *log.Logger) func(http.Handler) http.Handler {
	root := http.Dir(dir)
	fileServer := http.FileServer(root)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}

			if !exists(dir, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			if logger != nil {
				logger.Printf("Static hit - path=%s remote=%s", r.URL.Path, r.RemoteAddr)
			}
			fileServer.ServeHTTP(w, r)
		})
	}
}

// exists reports whether urlPath names a regular file under dir, or a
// directory holding an index.html
func exists(dir, urlPath string) bool {
	// rooting before cleaning keeps ".." from climbing out of dir
	name := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+urlPath)))

	info, err := os.Stat(name)
	if err != nil {
		return false
	}
	if info.Mode().IsRegular() {
		return true
	}
	if !info.IsDir() {
		return false
	}

	index, err := os.Stat(filepath.Join(name, "index.html"))
	return err == nil && index.Mode().IsRegular()
}
