package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"brand-showcase/pkg/catalog"
	"brand-showcase/pkg/favorites"
	"brand-showcase/pkg/services"
)

// newFavoritesCmd creates the favorites command group, backed by FAVORITES_FILE
func newFavoritesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "Manage favourite brands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List favourite brands",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, logger := setup()
			store := favorites.NewFileStore(cfg.FavoritesFile)
			if err := listFavorites(cmd.Context(), os.Stdout, store, logger); err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle [name]",
		Short: "Add or remove a brand from the favourites",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg, logger := setup()
			store := favorites.NewFileStore(cfg.FavoritesFile)
			if err := toggleFavorite(cmd.Context(), os.Stdout, store, services.Catalog(), logger, args[0]); err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
		},
	})

	return cmd
}

// listFavorites displays the stored favourite brand names
func listFavorites(ctx context.Context, w io.Writer, store favorites.Store, logger *zap.Logger) error {
	names, err := favorites.Load(ctx, store, logger)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintln(w, "No favourite brands")
		return nil
	}
	for _, name := range names {
		fmt.Fprintln(w, name)
	}
	return nil
}

// toggleFavorite flips the favourite flag of a brand, accepting either its name or its slug
func toggleFavorite(ctx context.Context, w io.Writer, store favorites.Store, cat *catalog.Catalog, logger *zap.Logger, ref string) error {
	name := ref
	if b, ok := cat.ByName(ref); ok {
		name = b.Name
	} else if b, err := cat.BySlug(ref); err == nil {
		name = b.Name
	} else {
		return err
	}

	_, added, err := favorites.Toggle(ctx, store, logger, name)
	if err != nil {
		return err
	}
	if added {
		fmt.Fprintf(w, "Added %s to favourites\n", name)
	} else {
		fmt.Fprintf(w, "Removed %s from favourites\n", name)
	}
	return nil
}
