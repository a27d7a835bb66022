package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/vimaki/colors-of-paintings/internal/colour"
	"github.com/vimaki/colors-of-paintings/internal/compose"
	"github.com/vimaki/colors-of-paintings/pkg/primarycolors"
)

// newExtractCmd builds the extract command.
func newExtractCmd() *cobra.Command {
	var (
		colours  int
		output   string
		noVisual bool
		preview  bool
		maxSize  int
		index    string
	)

	extractCmd := &cobra.Command{
		Use:   "extract <image>",
		Short: "Extract primary colours from an image",
		Long: `Extract the primary colours of an image by clustering its pixels, and
render an infographic with the original image, a proportional colour
bar, and a labeled legend.

Supported image formats: BMP, JPEG, PNG, WebP, TIFF, the PPM family,
EXR, HDR and similar raster formats (validated by file extension).

Examples:
  # Extract 5 colours (default) and write primary-colors.png
  colors-of-paintings extract painting.jpg

  # Extract 8 colours to a chosen output file
  colors-of-paintings extract -c 8 -o result.png painting.jpg

  # Only list the colours, without rendering the infographic
  colors-of-paintings extract --no-visual painting.jpg

  # Use a prebuilt name-index artifact
  colors-of-paintings extract --index nearest_color.idx painting.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args[0], extractOptions{
				colours:  flagOrConfigInt(cmd, "colours", colours),
				output:   flagOrConfigString(cmd, "output", output),
				noVisual: noVisual,
				preview:  preview,
				maxSize:  flagOrConfigInt(cmd, "max-size", maxSize),
				index:    flagOrConfigString(cmd, "index", index),
			})
		},
	}

	extractCmd.Flags().IntVarP(&colours, "colours", "c", 5, "number of colours to extract (1-20)")
	extractCmd.Flags().StringVarP(&output, "output", "o", "", "output image file (default: primary-colors.png)")
	extractCmd.Flags().BoolVar(&noVisual, "no-visual", false, "skip rendering the infographic")
	extractCmd.Flags().BoolVar(&preview, "preview", false, "show colour previews in the terminal")
	extractCmd.Flags().IntVar(&maxSize, "max-size", 0, "bound on the longer image dimension before clustering (default: 800)")
	extractCmd.Flags().StringVar(&index, "index", "", "path to a prebuilt colour name index artifact")

	return extractCmd
}

type extractOptions struct {
	colours  int
	output   string
	noVisual bool
	preview  bool
	maxSize  int
	index    string
}

// flagOrConfigInt resolves an int setting: an explicitly set flag wins,
// then the config file, then the flag default.
func flagOrConfigInt(cmd *cobra.Command, name string, flagValue int) int {
	if !cmd.Flags().Changed(name) && viper.IsSet(name) {
		return viper.GetInt(name)
	}
	return flagValue
}

// flagOrConfigString resolves a string setting with the same precedence.
func flagOrConfigString(cmd *cobra.Command, name string, flagValue string) string {
	if !cmd.Flags().Changed(name) && viper.IsSet(name) {
		return viper.GetString(name)
	}
	return flagValue
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, imagePath string, opts extractOptions) error {
	logger := newLogger(cmd)

	logger.Debug("extracting colours", "image", imagePath, "colours", opts.colours,
		"visualize", !opts.noVisual, "max-size", opts.maxSize)

	colors, err := primarycolors.ExtractWithOptions(imagePath, opts.colours, !opts.noVisual, primarycolors.Options{
		MaxDimension: opts.maxSize,
		OutputPath:   opts.output,
		IndexPath:    opts.index,
	})
	if err != nil {
		return err
	}

	logger.Debug("extraction complete", "colours", len(colors))

	// ANSI previews only make sense on a real terminal.
	preview := opts.preview && term.IsTerminal(int(os.Stdout.Fd()))
	for _, c := range colors {
		if preview {
			fmt.Println(formatColourWithPreview(c))
		} else {
			fmt.Printf("%s  %s\n", c.Hex(), c.String())
		}
	}

	if !opts.noVisual {
		out := opts.output
		if out == "" {
			out = compose.DefaultOutputPath
		}
		logger.Info("wrote visualization", "path", out)
	}

	return nil
}

// formatColourWithPreview renders a colour swatch using a 24-bit ANSI
// background escape, followed by the hex and rgb forms.
func formatColourWithPreview(c colour.RGB) string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm        \x1b[0m  %s  %s", c.R, c.G, c.B, c.Hex(), c.String())
}
