// Package server assembles the HTTP router.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"brand-showcase/pkg/handlers"
)

// NewRouter wires the API, the pages and the static public directory
func NewRouter(h *handlers.Handler, publicDir string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(Metrics)

	r.Get("/healthz", handlers.HealthHandler)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/images", h.ImagesHandler)
		r.Get("/images/bulk", h.BulkImagesHandler)
		r.Get("/images/random", h.RandomImagesHandler)
		r.Get("/images/test", h.TestImagesHandler)
		r.Get("/debug", h.DebugHandler)
		r.Get("/brands", h.BrandsHandler)
		r.Get("/brands/{slug}", h.BrandHandler)
		r.Get("/stats", h.StatsHandler)
	})

	r.Get("/", h.HomeHandler)
	r.Get("/marques", h.BrandsPageHandler)
	r.Get("/marques/arpin", h.ArpinHandler)
	r.Post("/marques/arpin", h.ArpinHandler)
	r.Get("/marques/{slug}", h.BrandPageHandler)
	r.Get("/marques/{slug}/galerie", h.GalleryPageHandler)
	r.Post("/marques/{slug}/favori", h.ToggleFavoriteHandler)
	r.Get("/contact", h.ContactHandler)
	r.Post("/contact", h.ContactHandler)

	if publicDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(publicDir)))
	}

	return r
}
