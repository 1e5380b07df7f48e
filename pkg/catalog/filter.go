package catalog

import (
	"net/url"
	"strconv"
	"strings"

	"brand-showcase/pkg/models"
)

const (
	// AllTags is the tag choice that disables tag filtering
	AllTags = "Toutes"
	// AllTypes is the type choice that disables type filtering
	AllTypes = "Tous types"
	// PageStep is the number of brands revealed initially and by each "load more"
	PageStep = 6
)

// Filter is the brand listing state: the three filters, the favourites switch and the reveal cursor
type Filter struct {
	Search        string
	Tag           string
	Type          string
	FavoritesOnly bool
	Shown         int
}

// DefaultFilter returns the unfiltered listing state
func DefaultFilter() Filter {
	return Filter{Tag: AllTags, Type: AllTypes, Shown: PageStep}
}

// FromQuery reads a filter from the listing's query string (q, tag, type, favorites, shown)
func FromQuery(q url.Values) Filter {
	f := DefaultFilter()
	f.Search = q.Get("q")
	if tag := q.Get("tag"); tag != "" {
		f.Tag = tag
	}
	if typ := q.Get("type"); typ != "" {
		f.Type = typ
	}
	f.FavoritesOnly = q.Get("favorites") == "true"
	if shown, err := strconv.Atoi(q.Get("shown")); err == nil && shown > PageStep {
		f.Shown = shown
	}
	return f
}

// Query encodes the non-default parts of the filter, so a filtered view can be shared
func (f Filter) Query() url.Values {
	q := url.Values{}
	if f.Search != "" {
		q.Set("q", f.Search)
	}
	if f.Tag != "" && f.Tag != AllTags {
		q.Set("tag", f.Tag)
	}
	if f.Type != "" && f.Type != AllTypes {
		q.Set("type", f.Type)
	}
	if f.FavoritesOnly {
		q.Set("favorites", "true")
	}
	if f.Shown > PageStep {
		q.Set("shown", strconv.Itoa(f.Shown))
	}
	return q
}

// Active reports whether any filter narrows the listing
func (f Filter) Active() bool {
	return (f.Tag != "" && f.Tag != AllTags) ||
		(f.Type != "" && f.Type != AllTypes) ||
		strings.TrimSpace(f.Search) != "" ||
		f.FavoritesOnly
}

// LoadMore reveals the next PageStep brands
func (f Filter) LoadMore() Filter {
	if f.Shown < PageStep {
		f.Shown = PageStep
	}
	f.Shown += PageStep
	return f
}

// Reset clears every filter and the reveal cursor
func (f Filter) Reset() Filter {
	return DefaultFilter()
}

// WithTag returns the filter with a different tag and the reveal cursor reset
func (f Filter) WithTag(tag string) Filter {
	f.Tag = tag
	f.Shown = PageStep
	return f
}

// WithType returns the filter with a different type and the reveal cursor reset
func (f Filter) WithType(typ string) Filter {
	f.Type = typ
	f.Shown = PageStep
	return f
}

// Apply keeps the brands matching every active filter, in catalog order
func (f Filter) Apply(brands []models.Brand, favorites []string) []models.Brand {
	// Blank input disables the search; otherwise the text is matched as typed.
	term := ""
	if strings.TrimSpace(f.Search) != "" {
		term = strings.ToLower(f.Search)
	}

	var favSet map[string]struct{}
	if f.FavoritesOnly {
		favSet = make(map[string]struct{}, len(favorites))
		for _, name := range favorites {
			favSet[name] = struct{}{}
		}
	}

	out := make([]models.Brand, 0, len(brands))
	for _, b := range brands {
		if f.Tag != "" && f.Tag != AllTags && !b.HasTag(f.Tag) {
			continue
		}
		if f.Type != "" && f.Type != AllTypes && b.Type != f.Type {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(b.Name), term) &&
			!strings.Contains(strings.ToLower(b.Description), term) &&
			!strings.Contains(strings.ToLower(b.Type), term) {
			continue
		}
		if favSet != nil {
			if _, ok := favSet[b.Name]; !ok {
				continue
			}
		}
		out = append(out, b)
	}
	return out
}

// Visible cuts the filtered list at the reveal cursor and reports whether more remain
func (f Filter) Visible(filtered []models.Brand) ([]models.Brand, bool) {
	shown := f.Shown
	if shown <= 0 {
		shown = PageStep
	}
	if shown >= len(filtered) {
		return filtered, false
	}
	return filtered[:shown], true
}
