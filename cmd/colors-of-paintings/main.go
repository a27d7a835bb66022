// colors-of-paintings - primary colour extraction for images
//
// Extracts representative colours from an image and renders an
// infographic with the original image, a proportional colour bar, and a
// legend naming every colour.
package main

import (
	"os"

	"github.com/vimaki/colors-of-paintings/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
