package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"brand-showcase/pkg/config"
	"brand-showcase/pkg/logging"
	"brand-showcase/pkg/services"
)

// Configuration flags
var (
	publicDir   string
	catalogPath string
	bucketName  string
	portNumber  string
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "brand-showcase",
		Short: "Brand Showcase presents a catalog of partner brands and their image galleries",
		Long: `Brand Showcase is a command line application that serves a catalog of partner brands,
their image galleries and contact forms over HTTP. It can also inspect the catalog and the
image folders from the terminal.`,
	}

	// Define persistent flags that will be available for all commands
	rootCmd.PersistentFlags().StringVarP(&publicDir, "public-dir", "d", "", "Set the PUBLIC_DIR (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&catalogPath, "catalog", "c", "", "Set the CATALOG_PATH (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&bucketName, "bucket", "b", "", "Set the IMAGE_BUCKET (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&portNumber, "port", "p", "", "Set the PORT (overrides environment variable)")

	// Add commands to root
	rootCmd.AddCommand(newListBrandsCmd())
	rootCmd.AddCommand(newListTypesCmd())
	rootCmd.AddCommand(newShowBrandCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newListImagesCmd())
	rootCmd.AddCommand(newRandomImagesCmd())
	rootCmd.AddCommand(newFetchImagesCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newFavoritesCmd())
	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}

// LoadConfig loads configuration with respect to command line flags
func LoadConfig() (*config.Config, error) {
	// Set environment variables from flags if provided
	if publicDir != "" {
		os.Setenv("PUBLIC_DIR", publicDir)
	}

	if catalogPath != "" {
		os.Setenv("CATALOG_PATH", catalogPath)
	}

	if bucketName != "" {
		os.Setenv("IMAGE_BUCKET", bucketName)
	}

	if portNumber != "" {
		os.Setenv("PORT", portNumber)
	}

	// Load configuration from environment variables (potentially set above)
	return config.Load()
}

// setup loads the configuration, builds the logger and initialises the shared services
func setup() (*config.Config, *zap.Logger) {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.Must(cfg.Environment, cfg.LogLevel)
	zap.ReplaceGlobals(logger)

	if err := services.InitService(cfg, logger); err != nil {
		logger.Fatal("Failed to initialise services", zap.Error(err))
	}
	return cfg, logger
}
