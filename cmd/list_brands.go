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

// newListBrandsCmd creates a new command for listing brands
func newListBrandsCmd() *cobra.Command {
	var search, tag, typ string

	cmd := &cobra.Command{
		Use:   "list-brands",
		Short: "List all brands",
		Long:  `List the brands of the catalog, optionally narrowed by search text, tag and type.`,
		Run: func(cmd *cobra.Command, args []string) {
			setup()

			filter := catalog.DefaultFilter()
			filter.Search = search
			if tag != "" {
				filter.Tag = tag
			}
			if typ != "" {
				filter.Type = typ
			}
			listBrands(os.Stdout, services.Catalog(), filter)
		},
	}

	cmd.Flags().StringVarP(&search, "search", "q", "", "Only brands whose name, description or type contains this text")
	cmd.Flags().StringVarP(&tag, "tag", "t", "", "Only brands carrying this tag")
	cmd.Flags().StringVar(&typ, "type", "", "Only brands of this type")
	return cmd
}

// listBrands displays the brands matching filter
func listBrands(w io.Writer, cat *catalog.Catalog, filter catalog.Filter) {
	brands := filter.Apply(cat.All(), nil)

	fmt.Fprintln(w, "Brands:")
	fmt.Fprintln(w, "=======")

	for _, b := range brands {
		fmt.Fprintf(w, "%s (%s)\n", b.Name, b.Type)
		fmt.Fprintf(w, "  Slug: %s\n", catalog.Slug(b.Name))
		if len(b.Tags) > 0 {
			fmt.Fprintf(w, "  Tags: %s\n", strings.Join(b.Tags, ", "))
		}
		fmt.Fprintf(w, "  Gallery: %s\n", catalog.GalleryFolder(b))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total: %d of %d brands\n", len(brands), cat.Len())
}
