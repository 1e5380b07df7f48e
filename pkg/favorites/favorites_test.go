package favorites

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggle_SavesEmptyList(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	names, added, err := Toggle(ctx, store, nil, "Arpin")
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, []string{"Arpin"}, names)

	names, added, err = Toggle(ctx, store, nil, "UGG")
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, []string{"Arpin", "UGG"}, names)

	_, _, err = Toggle(ctx, store, nil, "Arpin")
	require.NoError(t, err)
	names, added, err = Toggle(ctx, store, nil, "UGG")
	require.NoError(t, err)
	assert.False(t, added)
	assert.Empty(t, names)

	raw, err := store.Get(ctx, Key)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestLoad_CorruptIsEmpty(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, Key, []byte("{not json")))

	names, err := Load(ctx, store, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{}, names)
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "favorites.json")
	store := NewFileStore(path)

	_, err := store.Get(ctx, Key)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, Save(ctx, store, []string{"Arpin"}))
	names, err := Load(ctx, NewFileStore(path), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Arpin"}, names)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"marquesFavorites":["Arpin"]}`, string(data))

	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o644))
	names, err = Load(ctx, store, nil)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestCookieStore_RoundTrip(t *testing.T) {
	ctx := context.Background()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/marques/arpin/favori", nil)
	store := NewCookieStore(rec, req)

	_, added, err := Toggle(ctx, store, nil, "Arpin")
	require.NoError(t, err)
	assert.True(t, added)

	names, err := Load(ctx, store, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Arpin"}, names)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, Key, cookies[0].Name)

	next := httptest.NewRequest(http.MethodGet, "/marques", nil)
	next.AddCookie(cookies[0])
	names, err = Load(ctx, NewCookieStore(httptest.NewRecorder(), next), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Arpin"}, names)
}

func TestSet(t *testing.T) {
	set := Set([]string{"Arpin", "UGG"})
	assert.True(t, set["Arpin"])
	assert.False(t, set["Bensimon"])
}
