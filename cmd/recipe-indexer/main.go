// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the recipe-indexer CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jimg-beep/recipes/internal/catalog"
	"github.com/jimg-beep/recipes/internal/index"
	"github.com/jimg-beep/recipes/internal/preview"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command. Running it with a directory argument starts
// an indexing run; management surfaces live in subcommands.
var rootCmd = &cobra.Command{
	Use:   "recipe-indexer <recipes_directory> [output_directory] [output_file]",
	Short: "Build a searchable index from a directory of recipe documents",
	Long: `recipe-indexer walks a directory tree for recipe documents (PDF, HTML,
plain text, Markdown), extracts their text, copies every source file into a
stable output layout, and writes an ordered index with one record per file.

Each record carries the full extracted text plus a short preview; searching
the index is left to whatever consumes it.`,
	Args: cobra.RangeArgs(1, 3),
	RunE: runIndex,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./recipe-indexer.yaml or ~/.config/recipe-indexer/config.yaml)")
	rootCmd.Flags().Int("preview-length", 0, "maximum preview length in characters")
	rootCmd.Flags().String("copy-dir", "", "name of the copy subdirectory under the output directory")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("recipe-indexer")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "recipe-indexer"))
		}
	}

	viper.SetDefault("index.output_file", index.DefaultOutputFile)
	viper.SetDefault("index.copy_dir", index.DefaultCopyDirName)
	viper.SetDefault("preview.max_length", preview.DefaultMaxLength)
	viper.SetDefault("catalog.db_file", catalog.DefaultDBFile)

	viper.SetEnvPrefix("RECIPE_INDEXER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
