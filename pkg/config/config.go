package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	Port        string `env:"PORT" envDefault:"8080"`

	// PublicDir is the root every image folder path is resolved against.
	PublicDir   string `env:"PUBLIC_DIR" envDefault:"./public"`
	CatalogPath string `env:"CATALOG_PATH" envDefault:"./data/marques.json"`
	ViewsDir    string `env:"VIEWS_DIR" envDefault:"./views"`

	// When ImageBucket is set the public tree is read from Cloud Storage instead of PublicDir.
	ImageBucket       string `env:"IMAGE_BUCKET"`
	ImageBucketPrefix string `env:"IMAGE_BUCKET_PREFIX" envDefault:"public"`

	FormSubmitDelay time.Duration `env:"FORM_SUBMIT_DELAY" envDefault:"1s"`
	FavoritesFile   string        `env:"FAVORITES_FILE" envDefault:"./data/favorites.json"`

	// APIBaseURL is used by the fetch-images command.
	APIBaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:8080"`
}

// ErrCatalogPathNotSet is returned when CATALOG_PATH resolves to an empty value
var ErrCatalogPathNotSet = errors.New("CATALOG_PATH environment variable not set")

// ErrPublicDirNotSet is returned when PUBLIC_DIR resolves to an empty value
var ErrPublicDirNotSet = errors.New("PUBLIC_DIR environment variable not set")

// Load loads configuration from environment variables, reading a .env file first when present
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.CatalogPath == "" {
		return nil, ErrCatalogPathNotSet
	}
	if cfg.PublicDir == "" && cfg.ImageBucket == "" {
		return nil, ErrPublicDirNotSet
	}

	if cfg.PublicDir != "" {
		abs, err := filepath.Abs(cfg.PublicDir)
		if err != nil {
			return nil, fmt.Errorf("resolve public dir: %w", err)
		}
		cfg.PublicDir = abs
	}

	return cfg, nil
}

// IsProduction reports whether the server runs with production error reporting
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// ServerAddress returns the server address with port
func (c *Config) ServerAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// PrintServerStartMessage prints a message when the server starts
func (c *Config) PrintServerStartMessage() {
	fmt.Printf("Starting server at port %s\n", c.Port)
	fmt.Printf("Brands URL: http://localhost:%s/marques\n", c.Port)
	fmt.Printf("Images API: http://localhost:%s/api/images?folder=/img/Arpin\n", c.Port)
	if cwd, err := os.Getwd(); err == nil {
		fmt.Printf("Working directory: %s\n", cwd)
	}
}
