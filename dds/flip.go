package dds

import (
	"fmt"

	"github.com/gogpu/gfx/driver"
)

// Scanline flipping for block-compressed surfaces, after the technique in
// GPU Gems 2 ("Fast flipping of DXT surfaces"). Each 4x4 block is
// bit-shuffled so its rows read bottom-up, then whole block lines are
// mirrored. Only the DXT variants have a defined shuffle; BC4/BC5 surfaces
// cannot be flipped here.

func flipCompressed(w, h int, format driver.TextureFormat, data []byte) error {
	var blockBytes int
	var flipLine func(line []byte)
	switch format {
	case driver.FormatBC1, driver.FormatBC1SRGB:
		blockBytes = 8
		flipLine = flipLineDXT1
	case driver.FormatBC2, driver.FormatBC2SRGB:
		blockBytes = 16
		flipLine = flipLineDXT3
	case driver.FormatBC3, driver.FormatBC3SRGB:
		blockBytes = 16
		flipLine = flipLineDXT5
	default:
		return fmt.Errorf("%w: cannot flip %v scanlines", ErrUnsupportedFormat, format)
	}

	xBlocks := w >> 2
	yBlocks := h >> 2
	if xBlocks == 0 || yBlocks == 0 {
		return nil
	}
	lineBytes := xBlocks * blockBytes

	top, bottom := 0, (yBlocks-1)*lineBytes
	tmp := make([]byte, lineBytes)
	for top < bottom {
		flipLine(data[top : top+lineBytes])
		flipLine(data[bottom : bottom+lineBytes])
		copy(tmp, data[top:top+lineBytes])
		copy(data[top:], data[bottom:bottom+lineBytes])
		copy(data[bottom:], tmp)
		top += lineBytes
		bottom -= lineBytes
	}
	if top == bottom {
		flipLine(data[top : top+lineBytes])
	}
	return nil
}

// flipColorRows reverses the four row bytes of a DXT color block. rows points
// at the 4 row-index bytes that follow the two 16-bit endpoint colors.
func flipColorRows(rows []byte) {
	rows[0], rows[3] = rows[3], rows[0]
	rows[1], rows[2] = rows[2], rows[1]
}

func flipLineDXT1(line []byte) {
	for i := 0; i < len(line); i += 8 {
		flipColorRows(line[i+4 : i+8])
	}
}

func flipLineDXT3(line []byte) {
	for i := 0; i < len(line); i += 16 {
		// The alpha block holds one 16-bit row of 4-bit alphas per scanline.
		a := line[i : i+8]
		a[0], a[1], a[6], a[7] = a[6], a[7], a[0], a[1]
		a[2], a[3], a[4], a[5] = a[4], a[5], a[2], a[3]
		flipColorRows(line[i+12 : i+16])
	}
}

func flipLineDXT5(line []byte) {
	for i := 0; i < len(line); i += 16 {
		flipDXT5Alpha(line[i : i+8])
		flipColorRows(line[i+12 : i+16])
	}
}

// flipDXT5Alpha reverses the row order of the 3-bit interpolation codes in a
// DXT5 alpha block. The codes live in the six bytes after the two endpoint
// alphas, packed as two 24-bit little-endian words of two rows each.
func flipDXT5Alpha(block []byte) {
	var codes [4][4]uint32
	bits := uint32(block[2]) | uint32(block[3])<<8 | uint32(block[4])<<16
	for row := 0; row < 2; row++ {
		for col := 0; col < 4; col++ {
			codes[row][col] = bits & 0x7
			bits >>= 3
		}
	}
	bits = uint32(block[5]) | uint32(block[6])<<8 | uint32(block[7])<<16
	for row := 2; row < 4; row++ {
		for col := 0; col < 4; col++ {
			codes[row][col] = bits & 0x7
			bits >>= 3
		}
	}

	pack := func(lo, hi [4]uint32) uint32 {
		return lo[0] | lo[1]<<3 | lo[2]<<6 | lo[3]<<9 |
			hi[0]<<12 | hi[1]<<15 | hi[2]<<18 | hi[3]<<21
	}
	writeWord := func(dst []byte, w uint32) {
		dst[0] = byte(w)
		dst[1] = byte(w >> 8)
		dst[2] = byte(w >> 16)
	}
	writeWord(block[2:5], pack(codes[3], codes[2]))
	writeWord(block[5:8], pack(codes[1], codes[0]))
}
