package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, time.Second, cfg.FormSubmitDelay)
	assert.True(t, filepath.IsAbs(cfg.PublicDir))
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, ":8080", cfg.ServerAddress())
}

func TestLoad_Overrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("PUBLIC_DIR", dir)
	t.Setenv("FORM_SUBMIT_DELAY", "250ms")
	t.Setenv("IMAGE_BUCKET", "showcase-assets")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, dir, cfg.PublicDir)
	assert.Equal(t, 250*time.Millisecond, cfg.FormSubmitDelay)
	assert.Equal(t, "showcase-assets", cfg.ImageBucket)
	assert.Equal(t, "public", cfg.ImageBucketPrefix)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("FORM_SUBMIT_DELAY", "soon")

	_, err := Load()
	assert.Error(t, err)
}
