package gfx

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/gfx/driver"
)

// mippable reports whether CPU mip generation understands the pixel layout.
// Only the plain 4-byte RGBA layouts qualify; everything else uploads its
// top level alone.
func mippable(format driver.TextureFormat) bool {
	switch format {
	case driver.FormatRGBA8, driver.FormatSRGBA:
		return true
	default:
		return false
	}
}

// mipChain scales RGBA8 pixels down to a full mip chain, halving each
// dimension (floor, minimum 1) until 1x1. Level 0 aliases pixels; every
// other level is freshly allocated.
func mipChain(width, height int, pixels []byte) (levels [][]byte, widths, heights []int) {
	levels = [][]byte{pixels}
	widths = []int{width}
	heights = []int{height}

	src := &image.RGBA{
		Pix:    pixels,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	w, h := width, height
	for w > 1 || h > 1 {
		w = max(1, w/2)
		h = max(1, h/2)
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.ApproxBiLinear.Scale(dst, dst.Rect, src, src.Bounds(), draw.Src, nil)
		levels = append(levels, dst.Pix)
		widths = append(widths, w)
		heights = append(heights, h)
		src = dst
	}
	return levels, widths, heights
}
