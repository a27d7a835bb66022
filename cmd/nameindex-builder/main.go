// Package main provides the nameindex-builder CLI tool.
//
// The builder is the offline half of colour naming: it reads a reference
// colour table (rows of R,G,B,name), fits a 1-nearest-neighbour index
// over it, and serializes the fitted structure to an artifact file. The
// serving path treats that artifact as read-only and never re-fits the
// table itself; re-run the builder whenever the table changes.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vimaki/colors-of-paintings/internal/naming"
)

var version = "dev"

func main() {
	var (
		tablePath  string
		outputPath string
	)

	rootCmd := &cobra.Command{
		Use:   "nameindex-builder",
		Short: "Build the colour name index artifact",
		Long: `Build the nearest-neighbour colour name index.

Reads a reference colour table (CSV rows of R,G,B,name), fits a
1-nearest-neighbour index over it, and writes the fitted structure to an
artifact file for the extraction pipeline to load at runtime.

Examples:
  # Build from the bundled reference table
  nameindex-builder --output nearest_color.idx

  # Build from a custom table
  nameindex-builder --table rgb_color_names.csv --output nearest_color.idx`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(tablePath, outputPath)
		},
	}

	rootCmd.Flags().StringVarP(&tablePath, "table", "t", "", "reference colour table CSV (default: bundled table)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "nearest_color.idx", "artifact output path")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runBuild(tablePath, outputPath string) error {
	var (
		entries []naming.Entry
		err     error
	)
	if tablePath != "" {
		entries, err = naming.LoadTable(tablePath)
	} else {
		entries, err = naming.BuiltinTable()
	}
	if err != nil {
		return err
	}

	index, err := naming.NewIndex(entries)
	if err != nil {
		return err
	}
	if err := index.Save(outputPath); err != nil {
		return err
	}

	fmt.Printf("Indexed %d colour names to %s\n", index.Len(), outputPath)
	return nil
}
