package dds

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gogpu/gfx/driver"
)

func TestFlipCompressedIsInvolution(t *testing.T) {
	tests := []struct {
		name   string
		format driver.TextureFormat
		blocks int // bytes per block
	}{
		{"dxt1", driver.FormatBC1, 8},
		{"dxt3", driver.FormatBC2, 16},
		{"dxt5", driver.FormatBC3, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 8x12: two block columns, three block rows.
			const w, h = 8, 12
			data := make([]byte, (w/4)*(h/4)*tt.blocks)
			for i := range data {
				data[i] = byte(i * 37)
			}
			orig := append([]byte(nil), data...)

			if err := flipCompressed(w, h, tt.format, data); err != nil {
				t.Fatalf("flipCompressed() = %v", err)
			}
			if bytes.Equal(data, orig) {
				t.Fatal("flip left the surface unchanged")
			}
			if err := flipCompressed(w, h, tt.format, data); err != nil {
				t.Fatalf("second flipCompressed() = %v", err)
			}
			if !bytes.Equal(data, orig) {
				t.Error("double flip did not restore the original surface")
			}
		})
	}
}

func TestFlipCompressedSwapsBlockLines(t *testing.T) {
	// 4x8: one block column, two block rows. After the flip the second
	// block's color endpoints (bytes 0..3 of each block, untouched by the
	// row shuffle) must occupy the first block.
	data := make([]byte, 16)
	copy(data[0:], []byte{1, 1, 1, 1})
	copy(data[8:], []byte{2, 2, 2, 2})

	if err := flipCompressed(4, 8, driver.FormatBC1, data); err != nil {
		t.Fatalf("flipCompressed() = %v", err)
	}
	if data[0] != 2 || data[8] != 1 {
		t.Errorf("block lines not mirrored: % x", data)
	}
}

func TestFlipCompressedReversesRowIndices(t *testing.T) {
	// Single DXT1 block with distinct row bytes.
	data := []byte{0, 0, 0, 0, 0x11, 0x22, 0x33, 0x44}
	if err := flipCompressed(4, 4, driver.FormatBC1, data); err != nil {
		t.Fatalf("flipCompressed() = %v", err)
	}
	want := []byte{0, 0, 0, 0, 0x44, 0x33, 0x22, 0x11}
	if !bytes.Equal(data, want) {
		t.Errorf("rows = % x, want % x", data[4:], want[4:])
	}
}

func TestFlipDXT5AlphaRows(t *testing.T) {
	// Alpha codes 0..7 per row, rows distinguishable: row r holds code r in
	// every column.
	block := make([]byte, 8)
	var lo, hi uint32
	for col := 0; col < 4; col++ {
		lo |= 0 << (3 * col)        // row 0
		lo |= 1 << (3 * (col + 4))  // row 1
		hi |= 2 << (3 * col)        // row 2
		hi |= 3 << (3 * (col + 4))  // row 3
	}
	block[2], block[3], block[4] = byte(lo), byte(lo>>8), byte(lo>>16)
	block[5], block[6], block[7] = byte(hi), byte(hi>>8), byte(hi>>16)

	flipDXT5Alpha(block)

	read := func(word uint32, row int) uint32 {
		return (word >> (3 * 4 * uint(row))) & 0x7
	}
	first := uint32(block[2]) | uint32(block[3])<<8 | uint32(block[4])<<16
	second := uint32(block[5]) | uint32(block[6])<<8 | uint32(block[7])<<16
	got := []uint32{read(first, 0), read(first, 1), read(second, 0), read(second, 1)}
	want := []uint32{3, 2, 1, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row codes after flip = %v, want %v", got, want)
		}
	}
}

func TestFlipCompressedUnsupported(t *testing.T) {
	data := make([]byte, 8)
	err := flipCompressed(4, 4, driver.FormatBC4, data)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("flipCompressed(BC4) = %v, want ErrUnsupportedFormat", err)
	}
}

func TestDecodeFlipYAppliesToCompressed(t *testing.T) {
	payload := make([]byte, 16)
	copy(payload[0:], []byte{1, 1, 1, 1})
	copy(payload[8:], []byte{2, 2, 2, 2})
	spec := containerSpec{
		fourCC: "DXT1", width: 4, height: 8,
		linearSize: uint32(compressedSize(4, 8, 8)),
		payload:    payload,
	}

	var uploads []upload
	if _, err := Decode(spec.build(), Options{FlipY: true}, collect(&uploads)); err != nil {
		t.Fatalf("Decode() = %v", err)
	}
	if uploads[0].data[0] != 2 {
		t.Error("FlipY did not mirror block lines")
	}
	// The source buffer stays untouched; the flip works on a copy.
	if payload[0] != 1 {
		t.Error("decode mutated the input buffer")
	}
}
