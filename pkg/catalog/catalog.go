package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gosimple/slug"
	"gopkg.in/yaml.v3"

	"brand-showcase/pkg/apperrors"
	"brand-showcase/pkg/models"
)

// FeaturedCount is the number of brands shown on the home page before "show all"
const FeaturedCount = 8

var whitespaceRegex = regexp.MustCompile(`\s+`)

// Catalog is the immutable, in-memory brand catalog
type Catalog struct {
	brands  []models.Brand
	bySlug  map[string]int
	byAlias map[string]int
}

// Slug returns the routing slug of a brand name: lower-cased, whitespace runs replaced by hyphens
func Slug(name string) string {
	return whitespaceRegex.ReplaceAllString(strings.ToLower(name), "-")
}

// Load reads a catalog document from a .json, .yaml or .yml file
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var doc models.Catalog
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}

	return New(doc.Brands)
}

// New builds a catalog, rejecting empty names and slug collisions
func New(brands []models.Brand) (*Catalog, error) {
	c := &Catalog{
		brands:  make([]models.Brand, len(brands)),
		bySlug:  make(map[string]int, len(brands)),
		byAlias: make(map[string]int, len(brands)),
	}
	copy(c.brands, brands)

	for i, b := range c.brands {
		if strings.TrimSpace(b.Name) == "" {
			return nil, fmt.Errorf("brand #%d: empty name: %w", i, apperrors.ErrInvalidInput)
		}
		s := Slug(b.Name)
		if j, exists := c.bySlug[s]; exists {
			return nil, fmt.Errorf("brands %q and %q share slug %q: %w",
				c.brands[j].Name, b.Name, s, apperrors.ErrInvalidInput)
		}
		c.bySlug[s] = i

		// First brand wins an accent-folded alias.
		alias := slug.Make(b.Name)
		if _, exists := c.byAlias[alias]; !exists {
			c.byAlias[alias] = i
		}
	}

	return c, nil
}

// All returns every brand in catalog order
func (c *Catalog) All() []models.Brand {
	out := make([]models.Brand, len(c.brands))
	copy(out, c.brands)
	return out
}

// Len returns the number of brands
func (c *Catalog) Len() int {
	return len(c.brands)
}

// BySlug finds a brand by its routing slug, falling back to the accent-folded alias
func (c *Catalog) BySlug(s string) (models.Brand, error) {
	if i, ok := c.bySlug[strings.ToLower(s)]; ok {
		return c.brands[i], nil
	}
	if i, ok := c.byAlias[slug.Make(s)]; ok {
		return c.brands[i], nil
	}
	return models.Brand{}, fmt.Errorf("brand %q: %w", s, apperrors.ErrNotFound)
}

// ByName finds a brand by its exact name
func (c *Catalog) ByName(name string) (models.Brand, bool) {
	if i, ok := c.bySlug[Slug(name)]; ok && c.brands[i].Name == name {
		return c.brands[i], true
	}
	return models.Brand{}, false
}

// Featured returns the first n brands, or all of them when n <= 0
func (c *Catalog) Featured(n int) []models.Brand {
	if n <= 0 || n >= len(c.brands) {
		return c.All()
	}
	out := make([]models.Brand, n)
	copy(out, c.brands[:n])
	return out
}

// Similar returns up to n other brands sharing at least one tag with b, in catalog order
func (c *Catalog) Similar(b models.Brand, n int) []models.Brand {
	var out []models.Brand
	for _, other := range c.brands {
		if len(out) >= n {
			break
		}
		if other.Name == b.Name {
			continue
		}
		for _, tag := range other.Tags {
			if b.HasTag(tag) {
				out = append(out, other)
				break
			}
		}
	}
	return out
}

// Tags returns the distinct tags in first-seen order
func (c *Catalog) Tags() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, b := range c.brands {
		for _, t := range b.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}

// Types returns the distinct types in first-seen order
func (c *Catalog) Types() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, b := range c.brands {
		if _, ok := seen[b.Type]; ok {
			continue
		}
		seen[b.Type] = struct{}{}
		out = append(out, b.Type)
	}
	return out
}

// GalleryFolder returns the image folder of a brand: its imageFolder, or /img/<name>/
func GalleryFolder(b models.Brand) string {
	if b.ImageFolder != "" {
		return b.ImageFolder
	}
	return fmt.Sprintf("/img/%s/", b.Name)
}
