package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// GCSStore serves the public tree from a Cloud Storage bucket, treating "/" as the directory separator
type GCSStore struct {
	client *storage.Client
	bucket *storage.BucketHandle
	root   string
}

// NewGCSStore connects to bucketName; prefix is the object prefix mirroring the public directory
func NewGCSStore(ctx context.Context, bucketName, prefix string) (*GCSStore, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	root := strings.Trim(prefix, "/")
	if root == "" {
		root = "/"
	}

	return &GCSStore{
		client: client,
		bucket: client.Bucket(bucketName),
		root:   root,
	}, nil
}

// Close releases the storage client
func (s *GCSStore) Close() error {
	return s.client.Close()
}

// Root returns the object prefix standing for the public directory
func (s *GCSStore) Root() string {
	return s.root
}

// Backend identifies the Cloud Storage backend
func (s *GCSStore) Backend() string {
	return "gcs"
}

// IsDir reports whether at least one object lives under name
func (s *GCSStore) IsDir(ctx context.Context, name string) (bool, error) {
	it := s.bucket.Objects(ctx, &storage.Query{Prefix: objectPrefix(name), Delimiter: "/"})
	it.PageInfo().MaxSize = 1

	_, err := it.Next()
	if errors.Is(err, iterator.Done) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error iterating objects: %w", err)
	}
	return true, nil
}

// ReadDir lists the objects and sub-prefixes directly under name
func (s *GCSStore) ReadDir(ctx context.Context, name string) ([]Entry, error) {
	prefix := objectPrefix(name)
	it := s.bucket.Objects(ctx, &storage.Query{Prefix: prefix, Delimiter: "/"})

	var entries []Entry
	found := false
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating objects: %w", err)
		}
		found = true

		if attrs.Prefix != "" {
			child := strings.TrimSuffix(strings.TrimPrefix(attrs.Prefix, prefix), "/")
			if child != "" {
				entries = append(entries, Entry{Name: child, IsDir: true})
			}
			continue
		}

		// Zero-length "folder/" placeholder objects name the directory itself.
		child := strings.TrimPrefix(attrs.Name, prefix)
		if child == "" {
			continue
		}
		entries = append(entries, Entry{Name: child})
	}

	if !found {
		return nil, ErrNotExist
	}
	return entries, nil
}

// objectPrefix turns a store path into the bucket prefix of its children
func objectPrefix(name string) string {
	p := strings.Trim(name, "/")
	if p == "" {
		return ""
	}
	return p + "/"
}
