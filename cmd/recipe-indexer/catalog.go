// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jimg-beep/recipes/internal/catalog"
	"github.com/jimg-beep/recipes/internal/index"
	"github.com/jimg-beep/recipes/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the SQLite catalog built from a written index",
	Long: `Catalog mirrors a written recipe index into a SQLite database for
consumers that prefer relational access over the flat index file. The
database holds the same records the index does.`,
}

// --- build subcommand ---

var catalogBuildCmd = &cobra.Command{
	Use:   "build [output_directory]",
	Short: "Load the index file into the catalog database",
	Long: `Build reads the index file from the output directory (default ".")
and replaces the catalog database contents with its records. Rebuilding
from the same index is idempotent.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalogBuild,
}

func runCatalogBuild(cmd *cobra.Command, args []string) error {
	cfg := catalogConfig(cmd, args)

	recipes, err := index.ReadIndex(catalog.IndexPath(cfg))
	if err != nil {
		return err
	}

	store, err := catalog.NewStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Rebuild(context.Background(), recipes); err != nil {
		return err
	}

	fmt.Printf("Cataloged %d recipes\n", len(recipes))
	return nil
}

// --- stats subcommand ---

var catalogStatsCmd = &cobra.Command{
	Use:   "stats [output_directory]",
	Short: "Print per-type record counts from the catalog",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCatalogStats,
}

func runCatalogStats(cmd *cobra.Command, args []string) error {
	store, err := catalog.NewStore(catalogConfig(cmd, args))
	if err != nil {
		return err
	}
	defer store.Close()

	stats, err := store.StatsByType(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("%-8s  %8s  %14s\n", "Type", "Count", "Source bytes")
	total := 0
	for _, st := range stats {
		fmt.Printf("%-8s  %8d  %14d\n", st.Type, st.Count, st.TotalSize)
		total += st.Count
	}
	fmt.Printf("\n%d recipes cataloged\n", total)
	return nil
}

// --- shared helpers ---

func catalogConfig(cmd *cobra.Command, args []string) types.CatalogConfig {
	outputDir := "."
	if len(args) > 0 {
		outputDir = args[0]
	}

	indexFile, _ := cmd.Flags().GetString("index")
	if indexFile == "" {
		indexFile = viper.GetString("index.output_file")
	}
	dbFile, _ := cmd.Flags().GetString("db")
	if dbFile == "" {
		dbFile = viper.GetString("catalog.db_file")
	}

	return types.CatalogConfig{
		OutputDir: outputDir,
		IndexFile: indexFile,
		DBFile:    dbFile,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	catalogCmd.PersistentFlags().String("index", "", "index file to load (default: recipes_index.json)")
	catalogCmd.PersistentFlags().String("db", "", "catalog database file (default: recipes_catalog.db)")

	catalogCmd.AddCommand(catalogBuildCmd)
	catalogCmd.AddCommand(catalogStatsCmd)

	rootCmd.AddCommand(catalogCmd)
}
