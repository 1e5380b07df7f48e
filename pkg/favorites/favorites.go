package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// Load reads the favourites list; missing or corrupt data yields an empty list
func Load(ctx context.Context, store Store, logger *zap.Logger) ([]string, error) {
	data, err := store.Get(ctx, Key)
	if errors.Is(err, ErrNotFound) {
		return []string{}, nil
	}
	if err != nil {
		if logger != nil {
			logger.Warn("favorites unreadable", zap.Error(err))
		}
		return []string{}, nil
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		if logger != nil {
			logger.Warn("favorites corrupt, starting empty", zap.Error(err))
		}
		return []string{}, nil
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// Save overwrites the whole favourites list
func Save(ctx context.Context, store Store, names []string) error {
	if names == nil {
		names = []string{}
	}
	data, err := json.Marshal(names)
	if err != nil {
		return err
	}
	if err := store.Set(ctx, Key, data); err != nil {
		return fmt.Errorf("save favorites: %w", err)
	}
	return nil
}

// Toggle adds or removes name and saves the result, even when the list becomes empty
func Toggle(ctx context.Context, store Store, logger *zap.Logger, name string) ([]string, bool, error) {
	names, err := Load(ctx, store, logger)
	if err != nil {
		return nil, false, err
	}

	added := false
	if i := slices.Index(names, name); i >= 0 {
		names = slices.Delete(names, i, i+1)
	} else {
		names = append(names, name)
		added = true
	}

	if err := Save(ctx, store, names); err != nil {
		return nil, false, err
	}
	return names, added, nil
}

// Set turns a favourites list into a membership lookup
func Set(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
