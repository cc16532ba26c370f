// Package render holds the rendering delegate that answers every request
// the static and cache stages pass on.
package render

import (
	"net/http"

	"github.com/mrbennbenn/universal/config"
)

// Options are the entry points handed to a renderer untouched
type Options struct {
	Index    string
	Main     string
	ProdMode bool
}

// OptionsFrom picks the renderer fields out of a RenderConfig
func OptionsFrom(cfg config.RenderConfig) Options {
	return Options{
		Index:    cfg.Index,
		Main:     cfg.Main,
		ProdMode: cfg.EnableProdMode,
	}
}

// Renderer turns Options into the handler serving rendered pages
type Renderer interface {
	Handler(opts Options) http.Handler
}

// RendererFunc adapts a plain function to a Renderer
type RendererFunc func(opts Options) http.Handler

func (f RendererFunc) Handler(opts Options) http.Handler {
	return f(opts)
}
