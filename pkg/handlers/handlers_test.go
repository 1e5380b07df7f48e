package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brand-showcase/pkg/catalog"
	"brand-showcase/pkg/favorites"
	"brand-showcase/pkg/forms"
	"brand-showcase/pkg/models"
	"brand-showcase/pkg/services"
	"brand-showcase/pkg/storage"
)

type recordingRenderer struct {
	mu   sync.Mutex
	name string
	data any
}

func (r *recordingRenderer) Render(w io.Writer, name string, data any) error {
	r.mu.Lock()
	r.name = name
	r.data = data
	r.mu.Unlock()
	_, err := io.WriteString(w, "<html>"+name+"</html>")
	return err
}

type testEnv struct {
	router   http.Handler
	renderer *recordingRenderer
	favs     *favorites.MemoryStore
}

func testBrands() []models.Brand {
	return []models.Brand{
		{
			Name:        "Arpin",
			Description: "Filature savoyarde depuis 1817",
			Tags:        []string{"Textile", "Montagne"},
			Type:        "Artisanat",
			History:     "Fondée en **1817** à Séez.",
		},
		{Name: "UGG", Description: "Bottes en peau de mouton", Tags: []string{"Chaussures", "Montagne"}, Type: "Mode"},
		{Name: "Le Slip Français", Description: "Sous-vêtements made in France", Tags: []string{"Textile"}, Type: "Mode"},
		{Name: "Bensimon", Description: "Tennis colorées", Tags: []string{"Chaussures"}, Type: "Mode", Images: []string{"/img/static/b1.jpg"}},
	}
}

func newTestEnv(t *testing.T, environment string) *testEnv {
	t.Helper()
	return newTestEnvWithRenderer(t, environment, &recordingRenderer{})
}

// newTestEnvWithRenderer builds the router over a temp public dir; renderer is only recorded when it is a recordingRenderer
func newTestEnvWithRenderer(t *testing.T, environment string, renderer Renderer) *testEnv {
	t.Helper()

	public := t.TempDir()
	arpin := filepath.Join(public, "img", "Arpin")
	require.NoError(t, os.MkdirAll(arpin, 0o755))
	for _, name := range []string{"a.jpg", "b.png", "c d.jpg", "logo.png"} {
		require.NoError(t, os.WriteFile(filepath.Join(arpin, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(public, "img", "UGG"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(public, "img", "UGG", "u.jpg"), []byte("x"), 0o644))

	store, err := storage.NewLocalStore(public)
	require.NoError(t, err)
	cat, err := catalog.New(testBrands())
	require.NoError(t, err)

	favs := favorites.NewMemoryStore()
	h := New(Deps{
		Images:      services.NewService(store, nil),
		Catalog:     cat,
		Renderer:    renderer,
		Submitter:   forms.NewSubmitter(time.Millisecond, nil),
		Environment: environment,
		Favorites: func(http.ResponseWriter, *http.Request) favorites.Store {
			return favs
		},
	})

	r := chi.NewRouter()
	r.Get("/api/images", h.ImagesHandler)
	r.Get("/api/images/bulk", h.BulkImagesHandler)
	r.Get("/api/images/random", h.RandomImagesHandler)
	r.Get("/api/images/test", h.TestImagesHandler)
	r.Get("/api/debug", h.DebugHandler)
	r.Get("/api/brands", h.BrandsHandler)
	r.Get("/api/brands/{slug}", h.BrandHandler)
	r.Get("/api/stats", h.StatsHandler)
	r.Get("/", h.HomeHandler)
	r.Get("/marques", h.BrandsPageHandler)
	r.Get("/marques/arpin", h.ArpinHandler)
	r.Post("/marques/arpin", h.ArpinHandler)
	r.Get("/marques/{slug}", h.BrandPageHandler)
	r.Get("/marques/{slug}/galerie", h.GalleryPageHandler)
	r.Post("/marques/{slug}/favori", h.ToggleFavoriteHandler)
	r.Get("/contact", h.ContactHandler)
	r.Post("/contact", h.ContactHandler)

	env := &testEnv{router: r, favs: favs}
	env.renderer, _ = renderer.(*recordingRenderer)
	return env
}

func (e *testEnv) do(t *testing.T, method, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
