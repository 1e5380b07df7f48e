package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"brand-showcase/pkg/apperrors"
	"brand-showcase/pkg/catalog"
	"brand-showcase/pkg/favorites"
	"brand-showcase/pkg/models"
	"brand-showcase/pkg/services"
)

// intParam parses a query integer, falling back to def when absent or malformed
func intParam(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return n
}

// ImagesHandler lists the images of ?folder=
func (h *Handler) ImagesHandler(w http.ResponseWriter, r *http.Request) {
	folder := r.URL.Query().Get("folder")

	listing, err := h.images.ListImages(r.Context(), folder)
	if err != nil {
		h.writeError(w, r, err, "Erreur serveur lors de la récupération des images")
		return
	}
	writeJSON(w, http.StatusOK, listing)
}

// BulkImagesHandler lists the first images of several brand folders, or the folders themselves
func (h *Handler) BulkImagesHandler(w http.ResponseWriter, r *http.Request) {
	const fallback = "Erreur serveur lors de la récupération des images en masse"
	q := r.URL.Query()

	if !q.Has("brands") || strings.TrimSpace(q.Get("brands")) == "" {
		folders, err := h.images.BrandFolders(r.Context())
		if err != nil {
			h.writeError(w, r, err, fallback)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"brands": folders})
		return
	}

	limit := intParam(r, "limit", services.DefaultBulkLimit)
	results, err := h.images.BulkImages(r.Context(), strings.Split(q.Get("brands"), ","), limit)
	if err != nil {
		h.writeError(w, r, err, fallback)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

// RandomImagesHandler samples images of one brand, or across all brands
func (h *Handler) RandomImagesHandler(w http.ResponseWriter, r *http.Request) {
	const fallback = "Erreur serveur lors de la récupération des images aléatoires"
	count := intParam(r, "count", services.DefaultRandomCount)

	if brand := r.URL.Query().Get("brand"); brand != "" {
		images, err := h.images.RandomBrandImages(r.Context(), brand, count)
		if err != nil {
			h.writeError(w, r, err, fallback)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"brand": brand, "images": images})
		return
	}

	images, err := h.images.RandomImages(r.Context(), count)
	if err != nil {
		h.writeError(w, r, err, fallback)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"images": images})
}

// TestImagesHandler serves a simulated Arpin gallery outside production
func (h *Handler) TestImagesHandler(w http.ResponseWriter, r *http.Request) {
	if h.production {
		h.writeError(w, r, apperrors.NotFound("Route non disponible en production"), "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "success",
		"folder": "/img/Arpin/",
		"images": services.MockArpinGallery(),
		"note":   "Ceci est une API de test qui retourne des chemins d'images simulés pour le développement.",
	})
}

// DebugHandler reports where images are read from and what each brand folder holds
func (h *Handler) DebugHandler(w http.ResponseWriter, r *http.Request) {
	report, err := h.images.Debug(r.Context(), h.environment)
	if err != nil {
		h.writeError(w, r, err, "Erreur lors du débogage")
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// brandJSON is a catalog entry as served by the brands API
type brandJSON struct {
	models.Brand
	Slug    string `json:"slug"`
	Gallery string `json:"gallery"`
}

func toBrandJSON(b models.Brand) brandJSON {
	return brandJSON{Brand: b, Slug: catalog.Slug(b.Name), Gallery: catalog.GalleryFolder(b)}
}

// BrandsHandler returns the catalog filtered by q, tag, type and favorites
func (h *Handler) BrandsHandler(w http.ResponseWriter, r *http.Request) {
	filter := catalog.FromQuery(r.URL.Query())

	var favs []string
	if filter.FavoritesOnly {
		favs, _ = favorites.Load(r.Context(), h.favorites(w, r), h.logger)
	}

	matched := filter.Apply(h.catalog.All(), favs)
	out := make([]brandJSON, 0, len(matched))
	for _, b := range matched {
		out = append(out, toBrandJSON(b))
	}
	writeJSON(w, http.StatusOK, map[string]any{"marques": out, "count": len(out)})
}

// BrandHandler returns one brand by slug
func (h *Handler) BrandHandler(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	brand, err := h.catalog.BySlug(slug)
	if err != nil {
		h.logger.Debug("brand not found", zap.String("slug", slug))
		h.writeError(w, r, apperrors.NotFound("Marque non trouvée").With("slug", slug), "")
		return
	}
	writeJSON(w, http.StatusOK, toBrandJSON(brand))
}

// StatsHandler returns catalog statistics
func (h *Handler) StatsHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Stats())
}
