package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"brand-showcase/pkg/catalog"
	"brand-showcase/pkg/services"
)

// newListTypesCmd creates a new command for listing brand types and tags
func newListTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-types",
		Short: "List all brand types and tags",
		Long:  `List all brand types with the number of brands in each, followed by every tag in use.`,
		Run: func(cmd *cobra.Command, args []string) {
			setup()
			listTypes(os.Stdout, services.Catalog())
		},
	}
}

// listTypes displays all types and tags with their brand counts
func listTypes(w io.Writer, cat *catalog.Catalog) {
	types := cat.Types()

	fmt.Fprintln(w, "Brand Types:")
	fmt.Fprintln(w, "============")

	for _, typ := range types {
		brands := catalog.DefaultFilter().WithType(typ).Apply(cat.All(), nil)
		fmt.Fprintf(w, "%s\n", typ)
		fmt.Fprintf(w, "  Brands: %d\n", len(brands))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Tags:")
	for _, tag := range cat.Tags() {
		brands := catalog.DefaultFilter().WithTag(tag).Apply(cat.All(), nil)
		fmt.Fprintf(w, "  %s (%d)\n", tag, len(brands))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total: %d types, %d tags\n", len(types), len(cat.Tags()))
}
