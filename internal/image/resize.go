package image

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// DefaultMaxDimension is the default bound applied to the longer image
// dimension before clustering.
const DefaultMaxDimension = 800

// TargetSize computes the normalized (height, width) for an image so that
// the longer original dimension maps exactly to maxDim and the shorter
// one scales proportionally, rounded down. Images already smaller than
// the bound in both dimensions are returned unchanged; normalization
// never upscales. When height equals width, the width is treated as the
// longer dimension.
func TargetSize(height, width, maxDim int) (int, int) {
	if max(height, width) < maxDim {
		return height, width
	}
	if height > width {
		return maxDim, maxDim * width / height
	}
	return maxDim * height / width, maxDim
}

// Downscale resizes an image to the given height and width.
func Downscale(img image.Image, height, width int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

// Normalize bounds the longer dimension of an image by maxDim, preserving
// aspect ratio. The result is used only to bound clustering cost; callers
// keep the original image for display. A non-positive maxDim selects
// DefaultMaxDimension.
func Normalize(img image.Image, maxDim int) image.Image {
	if maxDim <= 0 {
		maxDim = DefaultMaxDimension
	}
	bounds := img.Bounds()
	height, width := bounds.Dy(), bounds.Dx()
	newHeight, newWidth := TargetSize(height, width, maxDim)
	if newHeight == height && newWidth == width {
		return img
	}
	return Downscale(img, newHeight, newWidth)
}
