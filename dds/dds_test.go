package dds

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/gogpu/gfx/driver"
)

// containerSpec drives the synthetic container builder.
type containerSpec struct {
	fourCC      string
	width       int
	height      int
	mips        int
	cubemap     bool
	rgbBits     int
	masks       [4]uint32 // r, g, b, a
	alphaPixels bool
	indexed     bool
	pitch       uint32
	linearSize  uint32
	payload     []byte
}

// build assembles a header region followed by the payload.
func (s containerSpec) build() []byte {
	buf := make([]byte, headerSize+len(s.payload))
	le := binary.LittleEndian
	le.PutUint32(buf[0:], magic)
	le.PutUint32(buf[4:], 124)

	flags := uint32(flagCaps | flagPixelFormat)
	if s.mips > 1 {
		flags |= flagMipMapCount
		le.PutUint32(buf[28:], uint32(s.mips))
	}
	if s.linearSize != 0 {
		flags |= flagLinearSize
		le.PutUint32(buf[20:], s.linearSize)
	}
	if s.pitch != 0 {
		flags |= flagPitch
		le.PutUint32(buf[20:], s.pitch)
	}
	le.PutUint32(buf[8:], flags)
	le.PutUint32(buf[12:], uint32(s.height))
	le.PutUint32(buf[16:], uint32(s.width))

	le.PutUint32(buf[76:], 32)
	var pfFlags uint32
	if s.fourCC != "" {
		pfFlags |= pfFourCC
		le.PutUint32(buf[84:], fourCC(s.fourCC))
	}
	if s.rgbBits != 0 {
		pfFlags |= pfRGB
		le.PutUint32(buf[88:], uint32(s.rgbBits))
		le.PutUint32(buf[92:], s.masks[0])
		le.PutUint32(buf[96:], s.masks[1])
		le.PutUint32(buf[100:], s.masks[2])
		le.PutUint32(buf[104:], s.masks[3])
	}
	if s.alphaPixels {
		pfFlags |= pfAlphaPixels
	}
	if s.indexed {
		pfFlags |= pfIndexed
		le.PutUint32(buf[88:], uint32(s.rgbBits))
	}
	le.PutUint32(buf[80:], pfFlags)

	if s.cubemap {
		le.PutUint32(buf[112:], capsCubemap)
	}
	copy(buf[headerSize:], s.payload)
	return buf
}

// upload records one callback invocation.
type upload struct {
	face   int
	level  int
	format driver.TextureFormat
	width  int
	height int
	data   []byte
}

func collect(uploads *[]upload) UploadFunc {
	return func(face, level int, format driver.TextureFormat, width, height int, data []byte) error {
		*uploads = append(*uploads, upload{face, level, format, width, height, append([]byte(nil), data...)})
		return nil
	}
}

func TestDecodeDXT1MipChain(t *testing.T) {
	// 8x8 with a full chain: 8x8, 4x4, 2x2, 1x1. Every sub-4x4 level still
	// occupies one block.
	payload := make([]byte, 4*8+8+8+8)
	spec := containerSpec{
		fourCC: "DXT1", width: 8, height: 8, mips: 4,
		linearSize: uint32(compressedSize(8, 8, 8)),
		payload:    payload,
	}

	var uploads []upload
	info, err := Decode(spec.build(), Options{}, collect(&uploads))
	if err != nil {
		t.Fatalf("Decode() = %v", err)
	}
	if info.MipCount != 4 || info.Width != 8 || info.Cubemap {
		t.Errorf("info = %+v", info)
	}
	if len(uploads) != 4 {
		t.Fatalf("uploads = %d, want 4", len(uploads))
	}
	wantSizes := []int{32, 8, 8, 8}
	wantDims := []int{8, 4, 2, 1}
	for i, up := range uploads {
		if up.face != driver.Face2D || up.level != i {
			t.Errorf("upload %d: face %d level %d", i, up.face, up.level)
		}
		if up.format != driver.FormatBC1 {
			t.Errorf("upload %d format = %v, want BC1", i, up.format)
		}
		if len(up.data) != wantSizes[i] {
			t.Errorf("upload %d size = %d, want %d", i, len(up.data), wantSizes[i])
		}
		if up.width != wantDims[i] || up.height != wantDims[i] {
			t.Errorf("upload %d = %dx%d, want %dx%d", i, up.width, up.height, wantDims[i], wantDims[i])
		}
	}
}

func TestDecodeZeroMipCountUploadsBaseLevel(t *testing.T) {
	spec := containerSpec{
		fourCC: "DXT1", width: 4, height: 4, mips: 1,
		linearSize: uint32(compressedSize(4, 4, 8)),
		payload:    make([]byte, 8),
	}
	data := spec.build()
	// Some writers set the mip-count flag with a stored count of 0.
	le := binary.LittleEndian
	le.PutUint32(data[8:], le.Uint32(data[8:])|flagMipMapCount)
	le.PutUint32(data[28:], 0)

	var uploads []upload
	info, err := Decode(data, Options{}, collect(&uploads))
	if err != nil {
		t.Fatalf("Decode() = %v", err)
	}
	if info.MipCount != 1 {
		t.Errorf("MipCount = %d, want 1", info.MipCount)
	}
	if len(uploads) != 1 {
		t.Errorf("uploads = %d, want 1", len(uploads))
	}
}

func TestDecodeSRGBSelectsVariant(t *testing.T) {
	spec := containerSpec{
		fourCC: "DXT5", width: 4, height: 4, mips: 1,
		linearSize: uint32(compressedSize(4, 4, 16)),
		payload:    make([]byte, 16),
	}
	var uploads []upload
	if _, err := Decode(spec.build(), Options{SRGB: true}, collect(&uploads)); err != nil {
		t.Fatalf("Decode() = %v", err)
	}
	if uploads[0].format != driver.FormatBC3SRGB {
		t.Errorf("format = %v, want BC3 sRGB", uploads[0].format)
	}

	// ATI2 has no sRGB variant; the request degrades to the linear format.
	uploads = nil
	spec.fourCC = "ATI2"
	if _, err := Decode(spec.build(), Options{SRGB: true}, collect(&uploads)); err != nil {
		t.Fatalf("Decode(ATI2) = %v", err)
	}
	if uploads[0].format != driver.FormatBC5 {
		t.Errorf("format = %v, want BC5", uploads[0].format)
	}
}

func TestDecodeCubemapFaceOrder(t *testing.T) {
	// Six faces, two mips each, face-major order.
	perFace := compressedSize(8, 8, 8) + compressedSize(4, 4, 8)
	spec := containerSpec{
		fourCC: "DXT1", width: 8, height: 8, mips: 2, cubemap: true,
		linearSize: uint32(compressedSize(8, 8, 8)),
		payload:    make([]byte, 6*perFace),
	}

	var uploads []upload
	info, err := Decode(spec.build(), Options{}, collect(&uploads))
	if err != nil {
		t.Fatalf("Decode() = %v", err)
	}
	if !info.Cubemap {
		t.Error("info.Cubemap = false")
	}
	if len(uploads) != 12 {
		t.Fatalf("uploads = %d, want 12", len(uploads))
	}
	for i, up := range uploads {
		wantFace, wantLevel := i/2, i%2
		if up.face != wantFace || up.level != wantLevel {
			t.Errorf("upload %d = face %d level %d, want face %d level %d",
				i, up.face, up.level, wantFace, wantLevel)
		}
	}
}

func TestDecodeBGRA8(t *testing.T) {
	spec := containerSpec{
		width: 2, height: 2, rgbBits: 32, alphaPixels: true,
		masks:   [4]uint32{0x00ff0000, 0x0000ff00, 0x000000ff, 0xff000000},
		payload: []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
	}
	var uploads []upload
	if _, err := Decode(spec.build(), Options{}, collect(&uploads)); err != nil {
		t.Fatalf("Decode() = %v", err)
	}
	up := uploads[0]
	if up.format != driver.FormatBGRA8 || len(up.data) != 16 {
		t.Errorf("upload = format %v, %d bytes", up.format, len(up.data))
	}
	// 32-bit data passes through untouched.
	if up.data[0] != 1 || up.data[15] != 16 {
		t.Errorf("data = %v", up.data)
	}
}

func TestDecodeBGR565SwapsWords(t *testing.T) {
	spec := containerSpec{
		width: 2, height: 1, rgbBits: 16,
		masks:   [4]uint32{0x0000f800, 0x000007e0, 0x0000001f, 0},
		payload: []byte{0xAA, 0xBB, 0xCC, 0xDD},
	}
	var uploads []upload
	if _, err := Decode(spec.build(), Options{}, collect(&uploads)); err != nil {
		t.Fatalf("Decode() = %v", err)
	}
	up := uploads[0]
	if up.format != driver.FormatBGR565 {
		t.Errorf("format = %v, want BGR565", up.format)
	}
	want := []byte{0xBB, 0xAA, 0xDD, 0xCC}
	for i := range want {
		if up.data[i] != want[i] {
			t.Fatalf("data = %x, want %x", up.data, want)
		}
	}
}

func TestDecodePalette(t *testing.T) {
	palette := make([]byte, 256*4)
	// Entry 7 is a recognizable color.
	copy(palette[7*4:], []byte{10, 20, 30, 40})
	indices := []byte{7, 0, 7, 0}

	spec := containerSpec{
		width: 2, height: 2, rgbBits: 8, indexed: true,
		pitch:   2,
		payload: append(append([]byte(nil), palette...), indices...),
	}
	var uploads []upload
	if _, err := Decode(spec.build(), Options{}, collect(&uploads)); err != nil {
		t.Fatalf("Decode() = %v", err)
	}
	up := uploads[0]
	if up.format != driver.FormatBGRA8 || len(up.data) != 16 {
		t.Fatalf("upload = format %v, %d bytes", up.format, len(up.data))
	}
	want := []byte{10, 20, 30, 40, 0, 0, 0, 0, 10, 20, 30, 40, 0, 0, 0, 0}
	for i := range want {
		if up.data[i] != want[i] {
			t.Fatalf("expanded data = %v, want %v", up.data, want)
		}
	}
}

func TestDecodeMalformed(t *testing.T) {
	good := containerSpec{
		fourCC: "DXT1", width: 4, height: 4,
		linearSize: 8, payload: make([]byte, 8),
	}

	tests := []struct {
		name    string
		corrupt func(data []byte)
	}{
		{"bad magic", func(d []byte) { d[0] = 'X' }},
		{"bad header size", func(d []byte) { binary.LittleEndian.PutUint32(d[4:], 125) }},
		{"missing required flags", func(d []byte) { binary.LittleEndian.PutUint32(d[8:], 0) }},
		{"linear size mismatch", func(d []byte) { binary.LittleEndian.PutUint32(d[20:], 999) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := good.build()
			tt.corrupt(data)

			var uploads []upload
			_, err := Decode(data, Options{}, collect(&uploads))
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("Decode() = %v, want ErrMalformed", err)
			}
			if len(uploads) != 0 {
				t.Errorf("%d uploads before rejection", len(uploads))
			}
		})
	}
}

func TestDecodeTruncatedPayload(t *testing.T) {
	spec := containerSpec{
		fourCC: "DXT1", width: 8, height: 8, mips: 2,
		linearSize: uint32(compressedSize(8, 8, 8)),
		payload:    make([]byte, 32), // second mip missing
	}
	var uploads []upload
	_, err := Decode(spec.build(), Options{}, collect(&uploads))
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("Decode() = %v, want ErrMalformed", err)
	}
	// The complete first level was still delivered.
	if len(uploads) != 1 {
		t.Errorf("uploads = %d, want 1", len(uploads))
	}
}

func TestDecodeUnsupportedFormat(t *testing.T) {
	spec := containerSpec{
		fourCC: "DX10", width: 4, height: 4,
		linearSize: 16, payload: make([]byte, 16),
	}
	var uploads []upload
	_, err := Decode(spec.build(), Options{}, collect(&uploads))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Decode() = %v, want ErrUnsupportedFormat", err)
	}
	if len(uploads) != 0 {
		t.Errorf("%d uploads for unsupported format", len(uploads))
	}
}

func TestReadInfoDoesNotValidatePayload(t *testing.T) {
	spec := containerSpec{
		fourCC: "DXT3", width: 16, height: 8, mips: 3,
		linearSize: uint32(compressedSize(16, 8, 16)),
		// No payload at all.
	}
	info, err := ReadInfo(spec.build())
	if err != nil {
		t.Fatalf("ReadInfo() = %v", err)
	}
	if info.Width != 16 || info.Height != 8 || info.MipCount != 3 {
		t.Errorf("info = %+v", info)
	}
	if info.Format.Pixel != driver.FormatBC2 || !info.Format.Compressed {
		t.Errorf("format = %+v", info.Format)
	}
}

func TestClassifyOrder(t *testing.T) {
	// A descriptor with both a fourCC and RGB masks classifies by fourCC.
	spec := containerSpec{
		fourCC: "DXT1", width: 4, height: 4,
		rgbBits: 32, alphaPixels: true,
		masks:      [4]uint32{0x00ff0000, 0x0000ff00, 0x000000ff, 0xff000000},
		linearSize: 8, payload: make([]byte, 8),
	}
	var uploads []upload
	if _, err := Decode(spec.build(), Options{}, collect(&uploads)); err != nil {
		t.Fatalf("Decode() = %v", err)
	}
	if uploads[0].format != driver.FormatBC1 {
		t.Errorf("format = %v, want BC1 (fourCC wins)", uploads[0].format)
	}
}
