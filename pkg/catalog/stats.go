package catalog

import (
	"sort"

	"brand-showcase/pkg/models"
)

// popularCount is how many brands the statistics block highlights
const popularCount = 3

// Stats computes catalog totals and the brands carrying the most tags
func (c *Catalog) Stats() models.Stats {
	ranked := c.All()
	sort.SliceStable(ranked, func(i, j int) bool {
		return len(ranked[i].Tags) > len(ranked[j].Tags)
	})
	if len(ranked) > popularCount {
		ranked = ranked[:popularCount]
	}

	popular := make([]string, 0, len(ranked))
	for _, b := range ranked {
		popular = append(popular, b.Name)
	}

	return models.Stats{
		TotalBrands:     len(c.brands),
		CategoriesCount: len(c.Types()),
		TagsCount:       len(c.Tags()),
		PopularBrands:   popular,
	}
}
