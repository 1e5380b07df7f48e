package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"brand-showcase/pkg/catalog"
	"brand-showcase/pkg/client"
	"brand-showcase/pkg/favorites"
	"brand-showcase/pkg/models"
	"brand-showcase/pkg/services"
	"brand-showcase/pkg/storage"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]models.Brand{
		{Name: "Arpin", Type: "Artisanat", Tags: []string{"Textile", "Montagne"}, Website: "https://www.arpin1817.com"},
		{Name: "UGG", Type: "Mode", Tags: []string{"Chaussures", "Montagne"}},
		{Name: "Le Slip Français", Type: "Mode", Tags: []string{"Textile"}},
	})
	require.NoError(t, err)
	return cat
}

func testService(t *testing.T) *services.Service {
	t.Helper()
	public := t.TempDir()
	dir := filepath.Join(public, "img", "Arpin")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, name := range []string{"b.jpg", "a.jpg", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	store, err := storage.NewLocalStore(public)
	require.NoError(t, err)
	return services.NewService(store, zap.NewNop())
}

func TestListBrands_Filter(t *testing.T) {
	var buf bytes.Buffer
	listBrands(&buf, testCatalog(t), catalog.DefaultFilter().WithTag("Montagne"))

	out := buf.String()
	assert.Contains(t, out, "Arpin (Artisanat)")
	assert.Contains(t, out, "UGG (Mode)")
	assert.NotContains(t, out, "Le Slip Français")
	assert.Contains(t, out, "Total: 2 of 3 brands")
}

func TestListTypes(t *testing.T) {
	var buf bytes.Buffer
	listTypes(&buf, testCatalog(t))

	out := buf.String()
	assert.Contains(t, out, "Mode\n  Brands: 2")
	assert.Contains(t, out, "  Montagne (2)")
	assert.Contains(t, out, "Total: 2 types, 3 tags")
}

func TestShowBrand(t *testing.T) {
	var buf bytes.Buffer
	err := showBrand(context.Background(), &buf, testCatalog(t), testService(t), "arpin")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Brand: Arpin")
	assert.Contains(t, out, "Website: https://www.arpin1817.com")
	assert.Contains(t, out, "Images: 2")
	assert.Contains(t, out, "1. /img/Arpin/a.jpg")
	assert.Contains(t, out, "  - UGG")
}

func TestShowBrand_Unknown(t *testing.T) {
	var buf bytes.Buffer
	err := showBrand(context.Background(), &buf, testCatalog(t), testService(t), "nope")
	require.Error(t, err)
}

func TestExportData(t *testing.T) {
	cat := testCatalog(t)

	var js bytes.Buffer
	require.NoError(t, exportData(&js, cat, "json"))
	var fromJSON models.Catalog
	require.NoError(t, json.Unmarshal(js.Bytes(), &fromJSON))
	assert.Len(t, fromJSON.Brands, 3)

	var ym bytes.Buffer
	require.NoError(t, exportData(&ym, cat, "yaml"))
	var fromYAML models.Catalog
	require.NoError(t, yaml.Unmarshal(ym.Bytes(), &fromYAML))
	assert.Equal(t, "Le Slip Français", fromYAML.Brands[2].Name)

	assert.Error(t, exportData(&bytes.Buffer{}, cat, "xml"))
}

func TestListImages(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, listImages(context.Background(), &buf, testService(t), "/img/arpin"))
	assert.Contains(t, buf.String(), "/img/arpin/a.jpg\n/img/arpin/b.jpg\n")
	assert.Contains(t, buf.String(), "Total: 2 images")
}

func TestRandomImages_Brand(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, randomImages(context.Background(), &buf, testService(t), "Arpin", 5))
	assert.Contains(t, buf.String(), "/img/Arpin/a.jpg")
	assert.Contains(t, buf.String(), "/img/Arpin/b.jpg")
}

func TestFetchImages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead {
			if r.URL.Path == "/img/Arpin/missing.jpg" {
				w.WriteHeader(http.StatusNotFound)
			}
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.ImageListing{
			Images: []string{"/img/Arpin/a.jpg", "/img/Arpin/missing.jpg"},
			Folder: "/img/Arpin",
			Count:  2,
		})
	}))
	defer srv.Close()

	c := client.New(srv.URL)

	var plain bytes.Buffer
	require.NoError(t, fetchImages(context.Background(), &plain, c, zap.NewNop(), "/img/Arpin", false))
	assert.Contains(t, plain.String(), "Total: 2 images")

	var verified bytes.Buffer
	err := fetchImages(context.Background(), &verified, c, zap.NewNop(), "/img/Arpin", true)
	require.Error(t, err)
	assert.Contains(t, verified.String(), "/img/Arpin/a.jpg\tOK")
	assert.Contains(t, verified.String(), "/img/Arpin/missing.jpg\tFAILED")
}

func TestFavorites_ToggleAndList(t *testing.T) {
	ctx := context.Background()
	cat := testCatalog(t)
	store := favorites.NewFileStore(filepath.Join(t.TempDir(), "favorites.json"))

	var buf bytes.Buffer
	require.NoError(t, listFavorites(ctx, &buf, store, zap.NewNop()))
	assert.Equal(t, "No favourite brands\n", buf.String())

	buf.Reset()
	require.NoError(t, toggleFavorite(ctx, &buf, store, cat, zap.NewNop(), "le-slip-français"))
	assert.Equal(t, "Added Le Slip Français to favourites\n", buf.String())

	buf.Reset()
	require.NoError(t, listFavorites(ctx, &buf, store, zap.NewNop()))
	assert.Equal(t, "Le Slip Français\n", buf.String())

	buf.Reset()
	require.NoError(t, toggleFavorite(ctx, &buf, store, cat, zap.NewNop(), "Le Slip Français"))
	assert.Equal(t, "Removed Le Slip Français from favourites\n", buf.String())

	assert.Error(t, toggleFavorite(ctx, &buf, store, cat, zap.NewNop(), "Inconnue"))
}

func TestPrintStats(t *testing.T) {
	var buf bytes.Buffer
	printStats(&buf, testCatalog(t))
	assert.Contains(t, buf.String(), "Brands: 3\nTypes: 2\nTags: 3\n")
}
