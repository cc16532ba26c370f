package render

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/a-h/templ"
	cache "github.com/patrickmn/go-cache"
	"github.com/segmentio/ksuid"
)

// Shell renders the index document as an application shell. In prod mode
// the document is read once and kept; otherwise it is re-read on every
// request so edits show up without a restart.
type Shell struct {
	Log *log.Logger

	documents *cache.Cache
}

// NewShell creates a shell renderer
func NewShell(logger *log.Logger) *Shell {
	return &Shell{
		Log:       logger,
		documents: cache.New(cache.NoExpiration, 0),
	}
}

func (s *Shell) Handler(opts Options) http.Handler {
	if opts.Main != "" {
		if _, err := os.Stat(opts.Main); err != nil && s.Log != nil {
			s.Log.Printf("Main bundle not readable: %v", err)
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		renderID := fmt.Sprintf("render_%s", ksuid.New().String())

		doc, err := s.document(opts)
		if err != nil {
			if s.Log != nil {
				s.Log.Printf("Render failed: %v - id=%s path=%s", err, renderID, r.URL.Path)
			}
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		if s.Log != nil && !opts.ProdMode {
			s.Log.Printf("Rendered %s - id=%s path=%s", opts.Index, renderID, r.URL.Path)
		}

		templ.Handler(shellPage(doc)).ServeHTTP(w, r)
	})
}

// document returns the index document, cached only in prod mode
func (s *Shell) document(opts Options) (string, error) {
	if opts.Index == "" {
		return "", fmt.Errorf("no index document configured")
	}

	if opts.ProdMode {
		if cached, found := s.documents.Get(opts.Index); found {
			if doc, ok := cached.(string); ok {
				return doc, nil
			}
		}
	}

	raw, err := os.ReadFile(opts.Index)
	if err != nil {
		return "", fmt.Errorf("failed to read index document: %w", err)
	}
	doc := string(raw)

	if opts.ProdMode {
		s.documents.Set(opts.Index, doc, cache.NoExpiration)
	}

	return doc, nil
}

// Invalidate drops every cached document
func (s *Shell) Invalidate() {
	s.documents.Flush()
}

func shellPage(doc string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, doc)
		return err
	})
}
