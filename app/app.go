// Package app builds the request pipeline: optional static files, the
// Cache-Control stage and the catch-all render route, in that order.
package app

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/mrbennbenn/universal/config"
	"github.com/mrbennbenn/universal/middleware"
	"github.com/mrbennbenn/universal/render"
)

// New builds the handler for cfg. The Cache-Control value is computed
// here, once, and shared by every request.
func New(cfg config.RenderConfig, renderer render.Renderer, logger *log.Logger) http.Handler {
	r := chi.NewRouter()

	// Files found on disk win over the dynamic route
	if cfg.HasStaticDirectory() {
		r.Use(middleware.Static(cfg.StaticDirectory, logger))
	}

	cacheControl := middleware.CacheControlValue(cfg)
	r.Use(middleware.CacheControl(cacheControl))
	r.Use(chimiddleware.GetHead)

	r.Get("/*", renderer.Handler(render.OptionsFrom(cfg)).ServeHTTP)

	if logger != nil {
		logger.Printf("Pipeline ready - static=%q cache-control=%q prod=%t", cfg.StaticDirectory, cacheControl, cfg.EnableProdMode)
	}

	return r
}
