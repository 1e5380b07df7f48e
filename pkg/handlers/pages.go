package handlers

import (
	"bytes"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"brand-showcase/pkg/catalog"
	"brand-showcase/pkg/favorites"
	"brand-showcase/pkg/forms"
	"brand-showcase/pkg/gallery"
	"brand-showcase/pkg/imageurl"
	"brand-showcase/pkg/models"
)

const (
	previewCount = 6
	arpinSlug    = "arpin"
)

func (h *Handler) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, name, data); err != nil {
		h.logger.Error("failed to render page", zap.String("template", name), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) notFound(w http.ResponseWriter, message string) {
	h.render(w, http.StatusNotFound, "not_found", ErrorPage{Title: "Page introuvable", Message: message})
}

func (h *Handler) favoriteSet(w http.ResponseWriter, r *http.Request) map[string]bool {
	names, _ := favorites.Load(r.Context(), h.favorites(w, r), h.logger)
	return favorites.Set(names)
}

func withQuery(base string, q url.Values) string {
	if len(q) == 0 {
		return base
	}
	return base + "?" + q.Encode()
}

func brandURL(b models.Brand) string {
	return "/marques/" + url.PathEscape(catalog.Slug(b.Name))
}

// galleryImages lists a brand's gallery, falling back to the catalog's own image list
func (h *Handler) galleryImages(r *http.Request, b models.Brand) []string {
	images, err := h.images.BrandGallery(r.Context(), catalog.GalleryFolder(b), b.Images)
	if err != nil {
		h.logger.Warn("gallery listing failed", zap.String("brand", b.Name), zap.Error(err))
		return b.Images
	}
	return images
}

func thumbnails(images []string, first int, base string) []GalleryImage {
	out := make([]GalleryImage, 0, len(images))
	for i, img := range images {
		idx := first + i
		out = append(out, GalleryImage{
			URL:    imageurl.Encode(img),
			Name:   path.Base(img),
			Index:  idx,
			Number: idx + 1,
			Link:   withQuery(base, url.Values{"image": {strconv.Itoa(idx)}}),
		})
	}
	return out
}

// HomeHandler renders the landing page with the featured brands
func (h *Handler) HomeHandler(w http.ResponseWriter, r *http.Request) {
	showAll := r.URL.Query().Get("all") == "true"
	brands := h.catalog.Featured(catalog.FeaturedCount)
	if showAll {
		brands = h.catalog.All()
	}

	h.render(w, http.StatusOK, "index", HomePage{
		Title:    "Nos marques partenaires",
		Featured: newBrandCards(brands, h.favoriteSet(w, r)),
		ShowAll:  showAll || h.catalog.Len() <= catalog.FeaturedCount,
		AllURL:   "/?all=true",
		Stats:    h.catalog.Stats(),
	})
}

// BrandsPageHandler renders the filterable brand listing; the filter lives in the query string
func (h *Handler) BrandsPageHandler(w http.ResponseWriter, r *http.Request) {
	filter := catalog.FromQuery(r.URL.Query())
	favNames, _ := favorites.Load(r.Context(), h.favorites(w, r), h.logger)

	filtered := filter.Apply(h.catalog.All(), favNames)
	visible, more := filter.Visible(filtered)

	tags := []FilterLink{}
	for _, tag := range append([]string{catalog.AllTags}, h.catalog.Tags()...) {
		tags = append(tags, FilterLink{
			Label:  tag,
			URL:    withQuery("/marques", filter.WithTag(tag).Query()),
			Active: filter.Tag == tag,
		})
	}
	types := []FilterLink{}
	for _, typ := range append([]string{catalog.AllTypes}, h.catalog.Types()...) {
		types = append(types, FilterLink{
			Label:  typ,
			URL:    withQuery("/marques", filter.WithType(typ).Query()),
			Active: filter.Type == typ,
		})
	}

	favToggle := filter
	favToggle.FavoritesOnly = !filter.FavoritesOnly
	favToggle.Shown = catalog.PageStep

	h.render(w, http.StatusOK, "marques", BrandsPage{
		Title:         "Nos marques",
		Search:        filter.Search,
		FavoritesOnly: filter.FavoritesOnly,
		Tags:          tags,
		Types:         types,
		Brands:        newBrandCards(visible, favorites.Set(favNames)),
		Total:         len(filtered),
		HasMore:       more,
		LoadMoreURL:   withQuery("/marques", filter.LoadMore().Query()),
		ResetURL:      withQuery("/marques", filter.Reset().Query()),
		FavoritesURL:  withQuery("/marques", favToggle.Query()),
		Filtered:      filter.Active(),
		Stats:         h.catalog.Stats(),
	})
}

// BrandPageHandler renders one brand with a gallery preview and similar brands
func (h *Handler) BrandPageHandler(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	brand, err := h.catalog.BySlug(slug)
	if err != nil {
		h.logger.Debug("brand not found", zap.String("slug", slug))
		h.notFound(w, "Cette marque n'existe pas ou plus.")
		return
	}

	images := h.galleryImages(r, brand)
	galleryURL := brandURL(brand) + "/galerie"
	preview := images
	if len(preview) > previewCount {
		preview = preview[:previewCount]
	}

	description := brand.Description
	if description == "" {
		description = brand.DescriptionFR
	}

	favs := h.favoriteSet(w, r)
	h.render(w, http.StatusOK, "marque", BrandPage{
		Title:       brand.Name,
		Brand:       brand,
		Card:        newBrandCard(brand, favs),
		Description: description,
		History:     catalog.RenderHistory(brand.History),
		Website:     brand.Website,
		Products:    brand.Products,
		Contact:     brand.Contact,
		Preview:     thumbnails(preview, 0, galleryURL),
		ImageCount:  len(images),
		GalleryURL:  galleryURL,
		Similar:     newBrandCards(h.catalog.Similar(brand, 3), favs),
	})
}

// GalleryPageHandler renders a brand gallery page, or one image fullscreen when ?image= is set
func (h *Handler) GalleryPageHandler(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	brand, err := h.catalog.BySlug(slug)
	if err != nil {
		h.notFound(w, "Cette marque n'existe pas ou plus.")
		return
	}

	images := h.galleryImages(r, brand)
	base := brandURL(brand) + "/galerie"

	var index *int
	if raw := r.URL.Query().Get("image"); raw != "" {
		if i, err := strconv.Atoi(raw); err == nil {
			index = &i
		}
	}
	v := gallery.Restore(images, intParam(r, "page", 1), index)

	page := GalleryPage{
		Title:     "Galerie " + brand.Name,
		BrandName: brand.Name,
		BrandURL:  brandURL(brand),
		Empty:     v.Len() == 0,
		Page:      v.Page(),
		Pages:     v.Pages(),
		Total:     v.Len(),
	}

	pageImages, first := v.PageImages()
	page.Images = thumbnails(pageImages, first, base)
	if v.Page() > 1 {
		page.PrevPageURL = withQuery(base, url.Values{"page": {strconv.Itoa(v.Page() - 1)}})
	}
	if v.Page() < v.Pages() {
		page.NextPageURL = withQuery(base, url.Values{"page": {strconv.Itoa(v.Page() + 1)}})
	}

	if v.Mode() == gallery.Fullscreen {
		current, _ := v.Current()
		page.Fullscreen = true
		page.Current = imageurl.Encode(current)
		page.CurrentName = path.Base(current)
		page.DownloadName = imageurl.SanitizeFileName(page.CurrentName)
		page.Position = v.Index() + 1
		page.PrevURL = withQuery(base, url.Values{"image": {strconv.Itoa(v.PrevIndex())}})
		page.NextURL = withQuery(base, url.Values{"image": {strconv.Itoa(v.NextIndex())}})
		_ = v.Close()
		page.CloseURL = withQuery(base, url.Values{"page": {strconv.Itoa(v.Page())}})
	}

	h.render(w, http.StatusOK, "galerie", page)
}

// ToggleFavoriteHandler adds or removes a brand from the visitor's favourites
func (h *Handler) ToggleFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	brand, err := h.catalog.BySlug(slug)
	if err != nil {
		h.notFound(w, "Cette marque n'existe pas ou plus.")
		return
	}

	names, added, err := favorites.Toggle(r.Context(), h.favorites(w, r), h.logger, brand.Name)
	if err != nil {
		h.logger.Error("failed to save favorites", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	h.logger.Debug("favorite toggled",
		zap.String("brand", brand.Name),
		zap.Bool("added", added),
		zap.Int("count", len(names)))

	target := r.FormValue("redirect")
	if !localPath(target) {
		target = brandURL(brand)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// localPath reports whether target stays on this site; browsers read a backslash as a slash
func localPath(target string) bool {
	if !strings.HasPrefix(target, "/") {
		return false
	}
	normalised := strings.ReplaceAll(target, "\\", "/")
	if strings.HasPrefix(normalised, "//") {
		return false
	}
	u, err := url.Parse(normalised)
	return err == nil && u.Scheme == "" && u.Host == ""
}

func (h *Handler) arpinPage(r *http.Request) QuotePage {
	brand, err := h.catalog.BySlug(arpinSlug)
	if err != nil {
		brand = models.Brand{Name: "Arpin"}
	}
	images := h.galleryImages(r, brand)
	if len(images) > previewCount {
		images = images[:previewCount]
	}
	return QuotePage{
		Title:      brand.Name,
		Brand:      brand,
		History:    catalog.RenderHistory(brand.History),
		Products:   forms.ArpinProducts,
		Gallery:    thumbnails(images, 0, brandURL(brand)+"/galerie"),
		FormAction: "/marques/arpin",
	}
}

// ArpinHandler renders the Arpin page and its quote request form
func (h *Handler) ArpinHandler(w http.ResponseWriter, r *http.Request) {
	page := h.arpinPage(r)
	if r.Method != http.MethodPost {
		h.render(w, http.StatusOK, "arpin", page)
		return
	}

	if err := r.ParseForm(); err != nil {
		page.Error = forms.MsgRequired
		h.render(w, http.StatusBadRequest, "arpin", page)
		return
	}

	form := forms.QuoteFromValues(r.PostForm)
	result := h.submitter.Submit(r.Context(), "quote", form)
	switch result.State {
	case forms.Succeeded:
		page.Success = true
		page.ReceiptID = result.Receipt.ID.String()
		h.render(w, http.StatusOK, "arpin", page)
	case forms.Idle:
		page.Form = form
		page.Error = result.Message
		h.render(w, http.StatusUnprocessableEntity, "arpin", page)
	default:
		page.Form = form
		page.Error = result.Message
		h.render(w, http.StatusInternalServerError, "arpin", page)
	}
}

// ContactHandler renders the contact page and handles its form
func (h *Handler) ContactHandler(w http.ResponseWriter, r *http.Request) {
	page := ContactPage{Title: "Contactez-nous"}
	if r.Method != http.MethodPost {
		h.render(w, http.StatusOK, "contact", page)
		return
	}

	if err := r.ParseForm(); err != nil {
		page.Error = forms.MsgRequired
		h.render(w, http.StatusBadRequest, "contact", page)
		return
	}

	form := forms.ContactFromValues(r.PostForm)
	result := h.submitter.Submit(r.Context(), "contact", form)
	switch result.State {
	case forms.Succeeded:
		page.Success = true
		page.ReceiptID = result.Receipt.ID.String()
		h.render(w, http.StatusOK, "contact", page)
	case forms.Idle:
		page.Form = form
		page.Error = result.Message
		h.render(w, http.StatusUnprocessableEntity, "contact", page)
	default:
		page.Form = form
		page.Error = result.Message
		h.render(w, http.StatusInternalServerError, "contact", page)
	}
}
