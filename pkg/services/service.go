package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"sync"
	"time"
	"unicode"

	"go.uber.org/zap"

	"brand-showcase/pkg/catalog"
	"brand-showcase/pkg/config"
	"brand-showcase/pkg/storage"
)

// Service handles image folder resolution and listing over a store
type Service struct {
	store      storage.Store
	strategies []Strategy
	logger     *zap.Logger
	production bool

	mu  sync.Mutex
	rng *rand.Rand
}

// Option customises a Service
type Option func(*Service)

// WithRand makes random sampling deterministic
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) { s.rng = rng }
}

// WithStrategies replaces the folder resolution chain
func WithStrategies(strategies ...Strategy) Option {
	return func(s *Service) { s.strategies = strategies }
}

// WithProduction hides stack traces from error payloads
func WithProduction(production bool) Option {
	return func(s *Service) { s.production = production }
}

// NewService creates an image service reading from store
func NewService(store storage.Store, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	now := uint64(time.Now().UnixNano())
	s := &Service{
		store:      store,
		strategies: DefaultStrategies(),
		logger:     logger,
		rng:        rand.New(rand.NewPCG(now, now>>1|1)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Production reports whether error payloads omit stack traces
func (s *Service) Production() bool {
	return s.production
}

// Backend names the store implementation
func (s *Service) Backend() string {
	return s.store.Backend()
}

var (
	// defaultService is the singleton image service used by the CLI commands
	defaultService *Service
	// defaultCatalog is the singleton catalog used by the CLI commands
	defaultCatalog *catalog.Catalog
	once           sync.Once
	initErr        error
)

// InitService loads the catalog and opens the image store described by cfg
func InitService(cfg *config.Config, logger *zap.Logger) error {
	once.Do(func() {
		store, err := OpenStore(context.Background(), cfg)
		if err != nil {
			initErr = err
			return
		}
		cat, err := catalog.Load(cfg.CatalogPath)
		if err != nil {
			initErr = err
			return
		}
		defaultCatalog = cat
		defaultService = NewService(store, logger, WithProduction(cfg.IsProduction()))
	})
	return initErr
}

// OpenStore picks the Cloud Storage backend when a bucket is configured, the local one otherwise
func OpenStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	if cfg.ImageBucket != "" {
		store, err := storage.NewGCSStore(ctx, cfg.ImageBucket, cfg.ImageBucketPrefix)
		if err != nil {
			return nil, fmt.Errorf("open bucket %s: %w", cfg.ImageBucket, err)
		}
		return store, nil
	}
	return storage.NewLocalStore(cfg.PublicDir)
}

// Default returns the singleton image service
func Default() *Service {
	return defaultService
}

// Catalog returns the singleton catalog
func Catalog() *catalog.Catalog {
	return defaultCatalog
}

// naturalLess compares strings in a way that treats numbers as numbers rather than characters
// For example: "image2" < "image10" when using naturalLess
func naturalLess(s1, s2 string) bool {
	i, j := 0, 0
	for i < len(s1) && j < len(s2) {
		// Skip leading spaces
		for i < len(s1) && unicode.IsSpace(rune(s1[i])) {
			i++
		}
		for j < len(s2) && unicode.IsSpace(rune(s2[j])) {
			j++
		}

		if i >= len(s1) || j >= len(s2) {
			break
		}

		if unicode.IsDigit(rune(s1[i])) && unicode.IsDigit(rune(s2[j])) {
			start1 := i
			for i < len(s1) && unicode.IsDigit(rune(s1[i])) {
				i++
			}
			start2 := j
			for j < len(s2) && unicode.IsDigit(rune(s2[j])) {
				j++
			}

			n1, _ := strconv.Atoi(s1[start1:i])
			n2, _ := strconv.Atoi(s2[start2:j])
			if n1 != n2 {
				return n1 < n2
			}
		} else {
			if s1[i] != s2[j] {
				return s1[i] < s2[j]
			}
			i++
			j++
		}
	}

	return len(s1) < len(s2)
}
