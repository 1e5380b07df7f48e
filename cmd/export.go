package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"brand-showcase/pkg/catalog"
	"brand-showcase/pkg/models"
	"brand-showcase/pkg/services"
)

// newExportCmd creates a new command for exporting catalog data
func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [format]",
		Short: "Export catalog data",
		Long:  `Export the whole brand catalog in the specified format. Supported formats: json, yaml.`,
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			setup()

			format := "json"
			if len(args) > 0 {
				format = args[0]
			}
			if err := exportData(os.Stdout, services.Catalog(), format); err != nil {
				fmt.Printf("Error: %v\n", err)
				fmt.Println("Supported formats: json, yaml")
				os.Exit(1)
			}
		},
	}
}

// exportData writes the catalog document in the specified format
func exportData(w io.Writer, cat *catalog.Catalog, format string) error {
	doc := models.Catalog{Brands: cat.All()}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}
}
