package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"brand-showcase/pkg/catalog"
	"brand-showcase/pkg/services"
)

// newShowBrandCmd creates a new command for showing brand details
func newShowBrandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show-brand [slug]",
		Short: "Show a brand and its gallery",
		Long:  `Show detailed information about a brand identified by its slug, including the images of its gallery folder.`,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			setup()
			if err := showBrand(cmd.Context(), os.Stdout, services.Catalog(), services.Default(), args[0]); err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
		},
	}
}

// showBrand displays details about a specific brand
func showBrand(ctx context.Context, w io.Writer, cat *catalog.Catalog, svc *services.Service, slug string) error {
	brand, err := cat.BySlug(slug)
	if err != nil {
		return err
	}

	images, err := svc.BrandGallery(ctx, catalog.GalleryFolder(brand), brand.Images)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Brand: %s\n", brand.Name)
	fmt.Fprintf(w, "Type: %s\n", brand.Type)
	fmt.Fprintf(w, "Tags: %s\n", strings.Join(brand.Tags, ", "))
	if brand.Website != "" {
		fmt.Fprintf(w, "Website: %s\n", brand.Website)
	}
	fmt.Fprintf(w, "Images: %d\n", len(images))
	fmt.Fprintln(w, "================")

	for i, img := range images {
		fmt.Fprintf(w, "%d. %s\n", i+1, img)
	}

	if similar := cat.Similar(brand, 3); len(similar) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Similar brands:")
		for _, s := range similar {
			fmt.Fprintf(w, "  - %s\n", s.Name)
		}
	}
	return nil
}
