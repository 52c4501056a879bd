// Package dds decodes the DirectDraw Surface texture container.
//
// The decoder walks a DDS byte buffer and streams its mip levels, in the
// container's physical order (face-major for cubemaps, mip-minor), to a
// caller-supplied upload function. It never touches a graphics API itself;
// the gfx package routes the callback into driver upload primitives.
//
// Supported pixel formats, classified in this order: DXT1, DXT3, DXT5, ATI1
// (BC4), ATI2 (BC5), 32-bit BGRA, 24-bit BGR, 16-bit BGR5A1, 16-bit BGR565
// and 8-bit paletted. The first matching variant wins; anything else is
// ErrUnsupportedFormat.
package dds

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/gogpu/gfx/driver"
)

// Decoding errors.
var (
	// ErrMalformed is returned for a bad magic, header size or a byte layout
	// that contradicts the header. No upload calls precede it.
	ErrMalformed = errors.New("dds: malformed container")

	// ErrUnsupportedFormat is returned when the pixel format descriptor
	// matches none of the supported variants. No upload calls precede it.
	ErrUnsupportedFormat = errors.New("dds: unsupported pixel format")
)

// Header field offsets and sizes. The header region is a fixed 128 bytes:
// 4 bytes of magic followed by the 124-byte DDS_HEADER.
const (
	headerSize = 128
	magic      = 0x20534444 // "DDS " little-endian
)

// Header flag bits.
const (
	flagCaps        = 0x00000001
	flagPitch       = 0x00000008
	flagPixelFormat = 0x00001000
	flagMipMapCount = 0x00020000
	flagLinearSize  = 0x00080000
)

// Pixel format flag bits.
const (
	pfAlphaPixels = 0x00000001
	pfFourCC      = 0x00000004
	pfIndexed     = 0x00000020
	pfRGB         = 0x00000040
)

// Caps2 bits.
const (
	capsCubemap = 0x00000200
)

func fourCC(s string) uint32 {
	return binary.LittleEndian.Uint32([]byte(s))
}

var (
	fourCCDXT1 = fourCC("DXT1")
	fourCCDXT3 = fourCC("DXT3")
	fourCCDXT5 = fourCC("DXT5")
	fourCCATI1 = fourCC("ATI1")
	fourCCATI2 = fourCC("ATI2")
)

// pixelFormat is the DDS_PIXELFORMAT sub-block at offset 76.
type pixelFormat struct {
	size        uint32
	flags       uint32
	fourCC      uint32
	rgbBitCount uint32
	rBitMask    uint32
	gBitMask    uint32
	bBitMask    uint32
	aBitMask    uint32
}

// header is the parsed 128-byte header region.
type header struct {
	size              uint32
	flags             uint32
	height            uint32
	width             uint32
	pitchOrLinearSize uint32
	depth             uint32
	mipMapCount       uint32
	pf                pixelFormat
	caps1             uint32
	caps2             uint32
}

func parseHeader(data []byte) (header, error) {
	if len(data) < headerSize {
		return header{}, fmt.Errorf("%w: %d byte buffer, want at least %d", ErrMalformed, len(data), headerSize)
	}
	le := binary.LittleEndian
	h := header{
		size:              le.Uint32(data[4:]),
		flags:             le.Uint32(data[8:]),
		height:            le.Uint32(data[12:]),
		width:             le.Uint32(data[16:]),
		pitchOrLinearSize: le.Uint32(data[20:]),
		depth:             le.Uint32(data[24:]),
		mipMapCount:       le.Uint32(data[28:]),
		pf: pixelFormat{
			size:        le.Uint32(data[76:]),
			flags:       le.Uint32(data[80:]),
			fourCC:      le.Uint32(data[84:]),
			rgbBitCount: le.Uint32(data[88:]),
			rBitMask:    le.Uint32(data[92:]),
			gBitMask:    le.Uint32(data[96:]),
			bBitMask:    le.Uint32(data[100:]),
			aBitMask:    le.Uint32(data[104:]),
		},
		caps1: le.Uint32(data[108:]),
		caps2: le.Uint32(data[112:]),
	}
	if le.Uint32(data) != magic {
		return header{}, fmt.Errorf("%w: bad magic 0x%08x", ErrMalformed, le.Uint32(data))
	}
	if h.size != 124 {
		return header{}, fmt.Errorf("%w: header size %d, want 124", ErrMalformed, h.size)
	}
	if h.flags&flagPixelFormat == 0 || h.flags&flagCaps == 0 {
		return header{}, fmt.Errorf("%w: required header flags missing (0x%08x)", ErrMalformed, h.flags)
	}
	return h, nil
}

func (h *header) mips() int {
	// Some writers set the mip-count flag with a count of 0; treat that as
	// a single level rather than a zero-upload texture.
	if h.flags&flagMipMapCount != 0 && h.mipMapCount > 1 {
		return int(h.mipMapCount)
	}
	return 1
}

func (h *header) cubemap() bool {
	return h.caps2&capsCubemap != 0
}

// Format describes how a classified pixel-format variant is decoded and
// uploaded.
type Format struct {
	// Pixel is the upload format, and SRGBPixel its sRGB variant where one
	// exists (FormatUnknown otherwise).
	Pixel     driver.TextureFormat
	SRGBPixel driver.TextureFormat

	// Compressed marks block-compressed variants; BlockBytes is then the
	// byte size of one 4x4 block, otherwise the byte size of one pixel as
	// stored in the container.
	Compressed bool
	BlockBytes int

	// Palette marks the 8-bit indexed variant: a 256-entry 32-bit palette
	// precedes the mip data, and index bytes are expanded through it before
	// upload.
	Palette bool

	// Swap marks 16-bit variants whose words are byte-swapped before upload.
	Swap bool
}

var (
	formatDXT1   = Format{Pixel: driver.FormatBC1, SRGBPixel: driver.FormatBC1SRGB, Compressed: true, BlockBytes: 8}
	formatDXT3   = Format{Pixel: driver.FormatBC2, SRGBPixel: driver.FormatBC2SRGB, Compressed: true, BlockBytes: 16}
	formatDXT5   = Format{Pixel: driver.FormatBC3, SRGBPixel: driver.FormatBC3SRGB, Compressed: true, BlockBytes: 16}
	formatATI1   = Format{Pixel: driver.FormatBC4, Compressed: true, BlockBytes: 8}
	formatATI2   = Format{Pixel: driver.FormatBC5, Compressed: true, BlockBytes: 16}
	formatBGRA8  = Format{Pixel: driver.FormatBGRA8, SRGBPixel: driver.FormatSBGRA8, BlockBytes: 4}
	formatBGR8   = Format{Pixel: driver.FormatBGR8, SRGBPixel: driver.FormatSBGR8, BlockBytes: 3}
	formatBGR5A1 = Format{Pixel: driver.FormatBGR5A1, BlockBytes: 2, Swap: true}
	formatBGR565 = Format{Pixel: driver.FormatBGR565, BlockBytes: 2, Swap: true}
	formatIndex8 = Format{Pixel: driver.FormatBGRA8, SRGBPixel: driver.FormatSBGRA8, BlockBytes: 1, Palette: true}
)

// classify tests the pixel-format descriptor against the supported variants,
// in order. The first match wins.
func classify(pf *pixelFormat) (Format, bool) {
	isFourCC := func(cc uint32) bool {
		return pf.flags&pfFourCC != 0 && pf.fourCC == cc
	}
	switch {
	case isFourCC(fourCCDXT1):
		return formatDXT1, true
	case isFourCC(fourCCDXT3):
		return formatDXT3, true
	case isFourCC(fourCCDXT5):
		return formatDXT5, true
	case isFourCC(fourCCATI1):
		return formatATI1, true
	case isFourCC(fourCCATI2):
		return formatATI2, true
	case pf.flags&pfRGB != 0 && pf.flags&pfAlphaPixels != 0 &&
		pf.rgbBitCount == 32 &&
		pf.rBitMask == 0x00ff0000 && pf.gBitMask == 0x0000ff00 &&
		pf.bBitMask == 0x000000ff && pf.aBitMask == 0xff000000:
		return formatBGRA8, true
	case pf.flags&pfRGB != 0 && pf.flags&pfAlphaPixels == 0 &&
		pf.rgbBitCount == 24 &&
		pf.rBitMask == 0x00ff0000 && pf.gBitMask == 0x0000ff00 &&
		pf.bBitMask == 0x000000ff:
		return formatBGR8, true
	case pf.flags&pfRGB != 0 && pf.flags&pfAlphaPixels != 0 &&
		pf.rgbBitCount == 16 &&
		pf.rBitMask == 0x00007c00 && pf.gBitMask == 0x000003e0 &&
		pf.bBitMask == 0x0000001f && pf.aBitMask == 0x00008000:
		return formatBGR5A1, true
	case pf.flags&pfRGB != 0 && pf.flags&pfAlphaPixels == 0 &&
		pf.rgbBitCount == 16 &&
		pf.rBitMask == 0x0000f800 && pf.gBitMask == 0x000007e0 &&
		pf.bBitMask == 0x0000001f:
		return formatBGR565, true
	case pf.flags&pfIndexed != 0 && pf.rgbBitCount == 8:
		return formatIndex8, true
	}
	return Format{}, false
}

// compressedSize returns the byte size of one mip level of a block-compressed
// format: ceil(w/4) x ceil(h/4) blocks.
func compressedSize(w, h, blockBytes int) int {
	return ((w + 3) / 4) * ((h + 3) / 4) * blockBytes
}

// Info describes the texture geometry declared by a container header.
type Info struct {
	Width    int
	Height   int
	Depth    int
	Layers   int
	MipCount int
	Cubemap  bool
	Format   Format
}

// ReadInfo parses only the header region and reports the declared geometry.
// It does not validate the mip data that follows.
func ReadInfo(data []byte) (Info, error) {
	h, err := parseHeader(data)
	if err != nil {
		return Info{}, err
	}
	f, ok := classify(&h.pf)
	if !ok {
		return Info{}, fmt.Errorf("%w: fourcc 0x%08x, %d bpp", ErrUnsupportedFormat, h.pf.fourCC, h.pf.rgbBitCount)
	}
	return Info{
		Width:    int(h.width),
		Height:   int(h.height),
		Depth:    1,
		Layers:   1,
		MipCount: h.mips(),
		Cubemap:  h.cubemap(),
		Format:   f,
	}, nil
}

// Options configure decoding.
type Options struct {
	// SRGB selects the sRGB upload format of variants that have one.
	SRGB bool

	// FlipY flips block-compressed scanline order before upload. It applies
	// to the DXT variants only and is off by default, matching the
	// container's native top-down layout.
	FlipY bool
}

// UploadFunc receives one decoded mip level. face is driver.Face2D for plain
// textures or a face index in [0, 6) for cubemaps; data is only valid for the
// duration of the call.
type UploadFunc func(face, level int, format driver.TextureFormat, width, height int, data []byte) error

// cursor is a linear read cursor over the container payload.
type cursor struct {
	data []byte
	off  int
}

func (c *cursor) read(n int) ([]byte, error) {
	if n < 0 || c.off+n > len(c.data) {
		return nil, fmt.Errorf("%w: truncated at byte %d, want %d more", ErrMalformed, c.off, n)
	}
	b := c.data[c.off : c.off+n]
	c.off += n
	return b, nil
}

// Decode parses the container in data and streams every mip level of every
// face to upload, face-major and mip-minor. It stops at the first upload
// error and returns it unchanged. On ErrMalformed or ErrUnsupportedFormat no
// upload call has been made for the failing level.
func Decode(data []byte, opts Options, upload UploadFunc) (Info, error) {
	info, err := ReadInfo(data)
	if err != nil {
		return Info{}, err
	}
	f := info.Format
	h, _ := parseHeader(data)

	pixel := f.Pixel
	if opts.SRGB && f.SRGBPixel != driver.FormatUnknown {
		pixel = f.SRGBPixel
	}

	cur := &cursor{data: data, off: headerSize}
	faces := 1
	if info.Cubemap {
		faces = 6
	}

	switch {
	case f.Compressed:
		if h.flags&flagLinearSize == 0 {
			return Info{}, fmt.Errorf("%w: compressed container without linear size", ErrMalformed)
		}
		if s := compressedSize(info.Width, info.Height, f.BlockBytes); s != int(h.pitchOrLinearSize) {
			return Info{}, fmt.Errorf("%w: linear size %d, computed %d", ErrMalformed, h.pitchOrLinearSize, s)
		}
	case f.Palette:
		if h.flags&flagPitch == 0 {
			return Info{}, fmt.Errorf("%w: paletted container without pitch", ErrMalformed)
		}
		if int(h.pitchOrLinearSize)*info.Height != info.Width*info.Height {
			return Info{}, fmt.Errorf("%w: pitch %d for width %d", ErrMalformed, h.pitchOrLinearSize, info.Width)
		}
	}

	var palette []byte
	if f.Palette {
		palette, err = cur.read(256 * 4)
		if err != nil {
			return Info{}, err
		}
	}

	for face := 0; face < faces; face++ {
		target := driver.Face2D
		if info.Cubemap {
			target = face
		}
		w, ht := info.Width, info.Height
		for level := 0; level < info.MipCount; level++ {
			var size int
			if f.Compressed {
				size = compressedSize(w, ht, f.BlockBytes)
			} else {
				size = w * ht * f.BlockBytes
			}
			raw, err := cur.read(size)
			if err != nil {
				return Info{}, err
			}

			switch {
			case f.Compressed:
				buf := raw
				if opts.FlipY {
					buf = append([]byte(nil), raw...)
					if err := flipCompressed(w, ht, pixel, buf); err != nil {
						return Info{}, err
					}
				}
				if err := upload(target, level, pixel, w, ht, buf); err != nil {
					return Info{}, err
				}
			case f.Palette:
				unpacked := expandPalette(raw, palette)
				if err := upload(target, level, pixel, w, ht, unpacked); err != nil {
					return Info{}, err
				}
			default:
				buf := raw
				if f.Swap {
					buf = swapWords(raw)
				}
				if err := upload(target, level, pixel, w, ht, buf); err != nil {
					return Info{}, err
				}
			}

			w = max(1, w/2)
			ht = max(1, ht/2)
		}
	}
	return info, nil
}

// expandPalette maps every index byte through a 256-entry 32-bit palette.
func expandPalette(indices, palette []byte) []byte {
	out := make([]byte, len(indices)*4)
	for i, idx := range indices {
		copy(out[i*4:], palette[int(idx)*4:int(idx)*4+4])
	}
	return out
}

// swapWords returns a copy of data with every 16-bit word byte-swapped.
func swapWords(data []byte) []byte {
	out := make([]byte, len(data))
	for i := 0; i+1 < len(data); i += 2 {
		out[i], out[i+1] = data[i+1], data[i]
	}
	return out
}
