package services

import (
	"context"
	"errors"
	"path"
	"regexp"
	"strings"

	"brand-showcase/pkg/storage"
)

// Strategy maps an attempted folder path onto an existing directory of the store
type Strategy struct {
	Name    string
	Resolve func(ctx context.Context, store storage.Store, attempted string) (string, bool, error)
}

// DefaultStrategies is the resolution chain used by the image endpoint, tried in order
func DefaultStrategies() []Strategy {
	return []Strategy{ExactPath, TrailingSeparator, SiblingFold, ImgRootFold}
}

// ExactPath accepts the attempted path as-is
var ExactPath = Strategy{
	Name: "exact",
	Resolve: func(ctx context.Context, store storage.Store, attempted string) (string, bool, error) {
		ok, err := store.IsDir(ctx, attempted)
		return attempted, ok, err
	},
}

// TrailingSeparator retries with a trailing slash
var TrailingSeparator = Strategy{
	Name: "trailing-separator",
	Resolve: func(ctx context.Context, store storage.Store, attempted string) (string, bool, error) {
		if strings.HasSuffix(attempted, "/") {
			return "", false, nil
		}
		candidate := attempted + "/"
		ok, err := store.IsDir(ctx, candidate)
		return candidate, ok, err
	},
}

// SiblingFold looks for a case-insensitive match of the last segment in the parent directory
var SiblingFold = Strategy{
	Name: "sibling-case-insensitive",
	Resolve: func(ctx context.Context, store storage.Store, attempted string) (string, bool, error) {
		clean := strings.TrimSuffix(attempted, "/")
		return foldMatch(ctx, store, path.Dir(clean), path.Base(clean))
	},
}

// ImgRootFold looks for a case-insensitive match of the last segment among the brand folders
var ImgRootFold = Strategy{
	Name: "img-root-case-insensitive",
	Resolve: func(ctx context.Context, store storage.Store, attempted string) (string, bool, error) {
		clean := strings.TrimSuffix(attempted, "/")
		return foldMatch(ctx, store, path.Join(store.Root(), imgDirName), path.Base(clean))
	},
}

func foldMatch(ctx context.Context, store storage.Store, parent, name string) (string, bool, error) {
	if name == "" || name == "/" || name == "." {
		return "", false, nil
	}
	entries, err := store.ReadDir(ctx, parent)
	if errors.Is(err, storage.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	for _, e := range entries {
		if e.IsDir && strings.EqualFold(e.Name, name) {
			return path.Join(parent, e.Name), true, nil
		}
	}
	return "", false, nil
}

var repeatedSlashes = regexp.MustCompile(`/+`)

// sanitizeFolder strips every ".." and collapses runs of "/"
func sanitizeFolder(folder string) string {
	return repeatedSlashes.ReplaceAllString(strings.ReplaceAll(folder, "..", ""), "/")
}

// within reports whether full is root or lies beneath it
func within(root, full string) bool {
	if full == root {
		return true
	}
	return strings.HasPrefix(full, strings.TrimSuffix(root, "/")+"/")
}

// relative strips the store root from p for diagnostics
func relative(root, p string) string {
	if root == "/" {
		return p
	}
	rel := strings.TrimPrefix(p, strings.TrimSuffix(root, "/"))
	if rel == "" {
		return "/"
	}
	return rel
}
