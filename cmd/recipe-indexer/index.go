package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jimg-beep/recipes/internal/index"
	"github.com/jimg-beep/recipes/pkg/types"
)

// runIndex executes one indexing run from positional arguments. Per-file
// failures are reported inline by the pipeline and do not fail the command;
// only an unusable recipes directory or output location does.
func runIndex(cmd *cobra.Command, args []string) error {
	cfg := types.IndexConfig{
		RecipesDir:    args[0],
		OutputDir:     ".",
		OutputFile:    viper.GetString("index.output_file"),
		CopyDirName:   viper.GetString("index.copy_dir"),
		PreviewLength: viper.GetInt("preview.max_length"),
	}
	if len(args) > 1 {
		cfg.OutputDir = args[1]
	}
	if len(args) > 2 {
		cfg.OutputFile = args[2]
	}

	// Flags override config file and environment values.
	if cmd.Flags().Changed("preview-length") {
		cfg.PreviewLength, _ = cmd.Flags().GetInt("preview-length")
	}
	if cmd.Flags().Changed("copy-dir") {
		cfg.CopyDirName, _ = cmd.Flags().GetString("copy-dir")
	}

	fmt.Printf("Indexing %s\n", cfg.RecipesDir)

	_, err := index.Run(cfg, os.Stdout)
	return err
}
