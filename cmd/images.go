package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"brand-showcase/pkg/client"
	"brand-showcase/pkg/services"
)

// newListImagesCmd creates a new command for listing the images of a folder
func newListImagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-images [folder]",
		Short: "List the images of a folder",
		Long:  `List the images of a folder under the public directory, e.g. /img/Arpin. Folder names are matched case-insensitively when the exact path does not exist.`,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			setup()
			if err := listImages(cmd.Context(), os.Stdout, services.Default(), args[0]); err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
		},
	}
}

// listImages displays the images of folder
func listImages(ctx context.Context, w io.Writer, svc *services.Service, folder string) error {
	listing, err := svc.ListImages(ctx, folder)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Folder: %s\n", listing.Folder)
	fmt.Fprintln(w, "================")
	for _, img := range listing.Images {
		fmt.Fprintln(w, img)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total: %d images\n", listing.Count)
	return nil
}

// newRandomImagesCmd creates a new command for sampling random images
func newRandomImagesCmd() *cobra.Command {
	var brand string
	var count int

	cmd := &cobra.Command{
		Use:   "random-images",
		Short: "Pick random images",
		Long:  `Pick random images from one brand folder, or from all brand folders when no brand is given.`,
		Run: func(cmd *cobra.Command, args []string) {
			setup()
			if err := randomImages(cmd.Context(), os.Stdout, services.Default(), brand, count); err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
		},
	}

	cmd.Flags().StringVar(&brand, "brand", "", "Only sample from this brand folder")
	cmd.Flags().IntVarP(&count, "count", "n", services.DefaultRandomCount, "Number of images to pick")
	return cmd
}

// randomImages displays a random sample of images
func randomImages(ctx context.Context, w io.Writer, svc *services.Service, brand string, count int) error {
	if brand != "" {
		images, err := svc.RandomBrandImages(ctx, brand, count)
		if err != nil {
			return err
		}
		for _, img := range images {
			fmt.Fprintln(w, img)
		}
		return nil
	}

	images, err := svc.RandomImages(ctx, count)
	if err != nil {
		return err
	}
	for _, img := range images {
		fmt.Fprintf(w, "%s\t%s\n", img.Brand, img.Image)
	}
	return nil
}

// newFetchImagesCmd creates a new command for listing a folder through a running server
func newFetchImagesCmd() *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "fetch-images [folder]",
		Short: "List the images of a folder through the HTTP API",
		Long:  `Query the image API of a running server (API_BASE_URL) for a folder, optionally checking that every image URL answers.`,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg, logger := setup()
			c := client.New(cfg.APIBaseURL, client.WithLogger(logger))
			if err := fetchImages(cmd.Context(), os.Stdout, c, logger, args[0], verify); err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "Check that each image URL is reachable")
	return cmd
}

// fetchImages displays the images the server reports for folder
func fetchImages(ctx context.Context, w io.Writer, c *client.Client, logger *zap.Logger, folder string, verify bool) error {
	listing, err := c.Images(ctx, folder)
	if err != nil {
		return err
	}

	failed := 0
	for _, img := range listing.Images {
		if !verify {
			fmt.Fprintln(w, img)
			continue
		}
		src, err := c.VerifyImage(ctx, img)
		if err != nil {
			failed++
			logger.Warn("image not reachable", zap.String("image", img), zap.Error(err))
			fmt.Fprintf(w, "%s\tFAILED\n", img)
			continue
		}
		fmt.Fprintf(w, "%s\tOK\n", src)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total: %d images\n", listing.Count)
	if failed > 0 {
		return fmt.Errorf("%d of %d images not reachable", failed, len(listing.Images))
	}
	return nil
}
