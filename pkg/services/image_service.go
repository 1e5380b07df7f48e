package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"
	"os"
	"path"
	"sort"
	"strings"

	"go.uber.org/zap"

	"brand-showcase/pkg/apperrors"
	"brand-showcase/pkg/models"
	"brand-showcase/pkg/storage"
)

const (
	imgDirName = "img"

	// DefaultBulkLimit is the number of images returned per folder by a bulk listing
	DefaultBulkLimit = 3
	// DefaultRandomCount is the number of images returned by a random listing
	DefaultRandomCount = 5

	msgFolderNotFound = "Dossier non trouvé"
)

// imageExtensions is the allow-list of listed image types
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
	".avif": true,
	".bmp":  true,
}

// IsImageName reports whether name is a listable image: allowed extension and no "logo" in it
func IsImageName(name string) bool {
	lower := strings.ToLower(name)
	if !imageExtensions[path.Ext(lower)] {
		return false
	}
	return !strings.Contains(lower, "logo")
}

// imageNames returns the sorted names of listable images among entries
func imageNames(entries []storage.Entry) []string {
	var names []string
	for _, e := range entries {
		if e.IsDir || !IsImageName(e.Name) {
			continue
		}
		names = append(names, e.Name)
	}
	sort.Strings(names)
	return names
}

// ResolvedFolder is a requested folder mapped onto a store directory
type ResolvedFolder struct {
	// Requested is the folder after ".." removal and slash collapsing, as used in returned URLs.
	Requested string
	Decoded   string
	Dir       string
	Strategy  string
}

// ResolveFolder validates a requested folder and finds the directory it designates
func (s *Service) ResolveFolder(ctx context.Context, folder string) (*ResolvedFolder, error) {
	if strings.TrimSpace(folder) == "" {
		return nil, apperrors.InvalidInput("Le paramètre folder est requis")
	}

	requested := sanitizeFolder(folder)
	decoded, err := url.PathUnescape(requested)
	if err != nil {
		return nil, apperrors.InvalidInput("Encodage du dossier invalide").With("path", requested)
	}

	root := s.store.Root()
	full := path.Join(root, decoded)
	if !within(root, full) {
		s.logger.Warn("folder outside public root", zap.String("path", requested))
		return nil, apperrors.Forbidden("Accès refusé").With("path", requested)
	}

	for _, strategy := range s.strategies {
		dir, ok, err := strategy.Resolve(ctx, s.store, full)
		if err != nil {
			return nil, apperrors.WithStack(fmt.Errorf("resolve %s with %s: %w", requested, strategy.Name, err))
		}
		if ok && within(root, dir) {
			return &ResolvedFolder{Requested: requested, Decoded: decoded, Dir: dir, Strategy: strategy.Name}, nil
		}
	}

	return nil, apperrors.NotFound(msgFolderNotFound).
		With("path", requested).
		With("decodedPath", decoded).
		With("fullPath", relative(root, full))
}

// ListImages lists the images of a requested folder as URLs under that folder
func (s *Service) ListImages(ctx context.Context, folder string) (*models.ImageListing, error) {
	resolved, err := s.ResolveFolder(ctx, folder)
	if err != nil {
		imageListings.WithLabelValues("single", outcome(err)).Inc()
		return nil, err
	}

	entries, err := s.store.ReadDir(ctx, resolved.Dir)
	if err != nil {
		imageListings.WithLabelValues("single", "error").Inc()
		return nil, apperrors.WithStack(fmt.Errorf("list %s: %w", resolved.Dir, err))
	}

	base := resolved.Requested
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	names := imageNames(entries)
	images := make([]string, 0, len(names))
	for _, name := range names {
		images = append(images, base+name)
	}

	s.logger.Debug("listed images",
		zap.String("folder", resolved.Requested),
		zap.String("strategy", resolved.Strategy),
		zap.Int("count", len(images)))
	imageListings.WithLabelValues("single", "ok").Inc()

	return &models.ImageListing{Images: images, Folder: resolved.Requested, Count: len(images)}, nil
}

// BrandGallery lists a brand's gallery folder, falling back to the catalog's static list when the folder is missing
func (s *Service) BrandGallery(ctx context.Context, folder string, fallback []string) ([]string, error) {
	listing, err := s.ListImages(ctx, folder)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fallback, nil
		}
		return nil, err
	}
	if len(listing.Images) == 0 {
		return fallback, nil
	}
	return listing.Images, nil
}

func (s *Service) imgDir() string {
	return path.Join(s.store.Root(), imgDirName)
}

// BrandFolders lists the sub-directories of the img root in natural order
func (s *Service) BrandFolders(ctx context.Context) ([]models.BrandFolder, error) {
	names, err := s.brandFolderNames(ctx)
	if err != nil {
		return nil, err
	}
	folders := make([]models.BrandFolder, 0, len(names))
	for _, name := range names {
		folders = append(folders, models.BrandFolder{Name: name, Path: "/img/" + name + "/"})
	}
	return folders, nil
}

func (s *Service) brandFolderNames(ctx context.Context) ([]string, error) {
	entries, err := s.store.ReadDir(ctx, s.imgDir())
	if errors.Is(err, storage.ErrNotExist) {
		return nil, apperrors.NotFound("Dossier d'images non trouvé").With("path", "/img")
	}
	if err != nil {
		return nil, apperrors.WithStack(fmt.Errorf("list brand folders: %w", err))
	}

	var names []string
	for _, e := range entries {
		if e.IsDir {
			names = append(names, e.Name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		return naturalLess(names[i], names[j])
	})
	return names, nil
}

// folderImages lists the sorted images of one folder directly under the img root
func (s *Service) folderImages(ctx context.Context, name string) ([]string, bool, error) {
	clean := sanitizeFolder(name)
	dir := path.Join(s.imgDir(), clean)
	if clean == "" || dir == s.imgDir() || !within(s.imgDir(), dir) {
		return nil, false, nil
	}

	entries, err := s.store.ReadDir(ctx, dir)
	if errors.Is(err, storage.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, apperrors.WithStack(fmt.Errorf("list %s: %w", dir, err))
	}

	prefix := "/img/" + strings.Trim(clean, "/") + "/"
	names := imageNames(entries)
	images := make([]string, 0, len(names))
	for _, n := range names {
		images = append(images, prefix+n)
	}
	return images, true, nil
}

// BulkImages lists up to limit images for each named folder under the img root
func (s *Service) BulkImages(ctx context.Context, brands []string, limit int) ([]models.BulkResult, error) {
	if limit < 0 {
		limit = 0
	}
	if ok, err := s.store.IsDir(ctx, s.imgDir()); err != nil {
		return nil, apperrors.WithStack(fmt.Errorf("check img dir: %w", err))
	} else if !ok {
		return nil, apperrors.NotFound("Dossier d'images non trouvé").With("path", "/img")
	}

	results := make([]models.BulkResult, 0, len(brands))
	for _, raw := range brands {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		result := models.BulkResult{Name: name, Path: "/img/" + name + "/", Images: []string{}}

		images, found, err := s.folderImages(ctx, name)
		if err != nil {
			return nil, err
		}
		if !found {
			result.Error = msgFolderNotFound
			results = append(results, result)
			continue
		}
		if len(images) > limit {
			images = images[:limit]
		}
		result.Images = images
		results = append(results, result)
	}

	imageListings.WithLabelValues("bulk", "ok").Inc()
	return results, nil
}

// RandomBrandImages samples up to count distinct images of one brand folder
func (s *Service) RandomBrandImages(ctx context.Context, brand string, count int) ([]string, error) {
	if ok, err := s.store.IsDir(ctx, s.imgDir()); err != nil {
		return nil, apperrors.WithStack(fmt.Errorf("check img dir: %w", err))
	} else if !ok {
		return nil, apperrors.NotFound("Dossier d'images non trouvé").With("path", "/img")
	}

	images, _, err := s.folderImages(ctx, brand)
	if err != nil {
		return nil, err
	}

	sampled := s.sample(images, count)
	if len(sampled) == 0 {
		imageListings.WithLabelValues("random", "not_found").Inc()
		return nil, apperrors.NotFound("Aucune image trouvée pour cette marque").With("brand", brand)
	}
	imageListings.WithLabelValues("random", "ok").Inc()
	return sampled, nil
}

// RandomImages samples images across every brand folder and shuffles them
func (s *Service) RandomImages(ctx context.Context, count int) ([]models.RandomImage, error) {
	if count < 0 {
		count = 0
	}
	names, err := s.brandFolderNames(ctx)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return []models.RandomImage{}, nil
	}

	quota := int(math.Max(1, math.Ceil(float64(count)/float64(len(names)))))

	var pool []models.RandomImage
	for _, name := range names {
		images, _, err := s.folderImages(ctx, name)
		if err != nil {
			return nil, err
		}
		for _, img := range s.sample(images, quota) {
			pool = append(pool, models.RandomImage{Brand: name, Image: img})
		}
	}

	s.mu.Lock()
	s.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	s.mu.Unlock()

	if len(pool) > count {
		pool = pool[:count]
	}
	imageListings.WithLabelValues("random", "ok").Inc()
	return pool, nil
}

// sample draws up to limit distinct images; when most of the folder is wanted the sorted head is returned
func (s *Service) sample(images []string, limit int) []string {
	n := len(images)
	if limit > n {
		limit = n
	}
	if limit <= 0 {
		return []string{}
	}
	if float64(limit) >= 0.8*float64(n) {
		return append([]string(nil), images[:limit]...)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	used := make(map[int]bool, limit)
	out := make([]string, 0, limit)
	for len(out) < limit {
		idx := s.rng.IntN(n)
		if used[idx] {
			continue
		}
		used[idx] = true
		out = append(out, images[idx])
	}
	return out
}

// Debug reports the resolved roots and the image count of every brand folder
func (s *Service) Debug(ctx context.Context, env string) (*models.DebugReport, error) {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = ""
	}

	root := s.store.Root()
	publicExists, err := s.store.IsDir(ctx, root)
	if err != nil {
		return nil, apperrors.WithStack(fmt.Errorf("check public dir: %w", err))
	}
	imgExists, err := s.store.IsDir(ctx, s.imgDir())
	if err != nil {
		return nil, apperrors.WithStack(fmt.Errorf("check img dir: %w", err))
	}

	report := &models.DebugReport{
		Env:     env,
		Cwd:     cwd,
		Backend: s.store.Backend(),
		Paths: models.DebugPaths{
			PublicDir:    root,
			ImgDir:       s.imgDir(),
			PublicExists: publicExists,
			ImgExists:    imgExists,
		},
		BrandFolders: []models.DebugFolder{},
	}
	if !imgExists {
		return report, nil
	}

	names, err := s.brandFolderNames(ctx)
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		images, found, err := s.folderImages(ctx, name)
		if err != nil {
			return nil, err
		}
		report.BrandFolders = append(report.BrandFolders, models.DebugFolder{
			Name:       name,
			Path:       path.Join(s.imgDir(), name),
			Exists:     found,
			ImageCount: len(images),
		})
	}
	return report, nil
}

// MockArpinGallery is the simulated gallery served by the test endpoint
func MockArpinGallery() []string {
	images := []string{
		"/img/Arpin/image4.jpeg",
		"/img/Arpin/image003.jpg",
		"/img/Arpin/IMG_0253.jpg",
	}
	for i := 1; i <= 15; i++ {
		images = append(images, fmt.Sprintf("/img/Arpin/simulated-image-%d.jpg", i))
	}
	return images
}

func outcome(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return "not_found"
	case errors.Is(err, apperrors.ErrForbidden):
		return "forbidden"
	case errors.Is(err, apperrors.ErrInvalidInput):
		return "invalid"
	default:
		return "error"
	}
}
