package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"brand-showcase/pkg/catalog"
	"brand-showcase/pkg/services"
)

// newStatsCmd creates a new command for showing catalog statistics
func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show catalog statistics",
		Run: func(cmd *cobra.Command, args []string) {
			setup()
			printStats(os.Stdout, services.Catalog())
		},
	}
}

// printStats displays the catalog summary
func printStats(w io.Writer, cat *catalog.Catalog) {
	stats := cat.Stats()
	fmt.Fprintf(w, "Brands: %d\n", stats.TotalBrands)
	fmt.Fprintf(w, "Types: %d\n", stats.CategoriesCount)
	fmt.Fprintf(w, "Tags: %d\n", stats.TagsCount)
	fmt.Fprintf(w, "Popular: %s\n", strings.Join(stats.PopularBrands, ", "))
}
