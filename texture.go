package gfx

import (
	"fmt"

	"github.com/gogpu/gfx/dds"
	"github.com/gogpu/gfx/driver"
)

// TextureFlags adjust texture creation and container loading.
type TextureFlags uint32

const (
	// TextureSRGB selects the sRGB variant of the pixel format while
	// loading a container. Direct CreateTexture calls encode sRGB in the
	// format argument instead and reject this flag.
	TextureSRGB TextureFlags = 1 << iota

	// TextureFlipY flips block-compressed container scanlines during
	// decode.
	TextureFlipY

	// TextureNoMips suppresses CPU mip generation in CreateTexture.
	TextureNoMips
)

// AllocTextureHandle reserves a texture slot and returns its handle, or the
// invalid handle when the pool is exhausted. Safe to call from any
// goroutine.
func (c *Context) AllocTextureHandle() TextureHandle {
	c.mu.Lock()
	defer c.mu.Unlock()
	index, gen, ok := c.textures.alloc()
	if !ok {
		slogger().Error("gfx: out of texture slots", "capacity", MaxTextures)
		return TextureHandle{}
	}
	return TextureHandle{makeHandle(index, gen)}
}

func (c *Context) textureRecord(h TextureHandle) (*textureRecord, error) {
	if !h.Valid() {
		return nil, ErrInvalidHandle
	}
	return c.textures.get(h.h.index(), h.h.gen())
}

// CreateTexture realizes a 2D texture from raw pixels. pixels may be nil for
// an uninitialized texture (render targets). For RGBA8-layout formats with
// pixels a full mip chain is generated on the CPU and uploaded unless
// TextureNoMips is set.
func (c *Context) CreateTexture(h TextureHandle, width, height int, format driver.TextureFormat, flags TextureFlags, pixels []byte) error {
	if err := c.checkThread("CreateTexture"); err != nil {
		return err
	}
	rec, err := c.textureRecord(h)
	if err != nil {
		return err
	}
	if flags&TextureSRGB != 0 {
		return fmt.Errorf("gfx: TextureSRGB is a container flag, use an sRGB format instead")
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("gfx: invalid texture dimensions %dx%d", width, height)
	}

	id, err := c.dev.CreateTexture()
	if err != nil {
		slogger().Error("gfx: texture creation failed", "err", err)
		return fmt.Errorf("%w: create texture: %w", ErrDriverFailure, err)
	}

	levels := [][]byte{pixels}
	widths, heights := []int{width}, []int{height}
	if pixels != nil && flags&TextureNoMips == 0 && mippable(format) {
		levels, widths, heights = mipChain(width, height, pixels)
	}
	for level := range levels {
		if err := c.dev.UploadMip(id, driver.Face2D, level, format, widths[level], heights[level], levels[level]); err != nil {
			c.dev.DeleteTexture(id)
			slogger().Error("gfx: texture upload failed", "format", format, "level", level, "err", err)
			return fmt.Errorf("%w: upload %v mip %d: %w", ErrDriverFailure, format, level, err)
		}
	}
	c.dev.SetTextureParams(id, false, len(levels), true)

	rec.id = id
	rec.cubemap = false
	rec.format = format
	return nil
}

// LoadTexture realizes a texture from a DDS container. The sRGB and
// scanline-flip options come from flags; geometry and pixel format come from
// the container. Decoding errors (dds.ErrMalformed, dds.ErrUnsupportedFormat)
// pass through unchanged and leave no driver object behind.
func (c *Context) LoadTexture(h TextureHandle, data []byte, flags TextureFlags) (dds.Info, error) {
	if err := c.checkThread("LoadTexture"); err != nil {
		return dds.Info{}, err
	}
	rec, err := c.textureRecord(h)
	if err != nil {
		return dds.Info{}, err
	}

	// Classify before creating anything so unsupported or malformed input
	// costs no driver traffic.
	if _, err := dds.ReadInfo(data); err != nil {
		slogger().Error("gfx: rejected texture container", "err", err)
		return dds.Info{}, err
	}

	id, err := c.dev.CreateTexture()
	if err != nil {
		slogger().Error("gfx: texture creation failed", "err", err)
		return dds.Info{}, fmt.Errorf("%w: create texture: %w", ErrDriverFailure, err)
	}

	opts := dds.Options{
		SRGB:  flags&TextureSRGB != 0,
		FlipY: flags&TextureFlipY != 0,
	}
	info, err := dds.Decode(data, opts, func(face, level int, format driver.TextureFormat, w, h int, mip []byte) error {
		if format.Compressed() {
			return c.dev.UploadCompressedMip(id, face, level, format, w, h, len(mip), mip)
		}
		return c.dev.UploadMip(id, face, level, format, w, h, mip)
	})
	if err != nil {
		c.dev.DeleteTexture(id)
		slogger().Error("gfx: texture load failed", "err", err)
		return dds.Info{}, err
	}
	c.dev.SetTextureParams(id, info.Cubemap, info.MipCount, false)

	rec.id = id
	rec.cubemap = info.Cubemap
	rec.format = info.Format.Pixel
	if opts.SRGB && info.Format.SRGBPixel != driver.FormatUnknown {
		rec.format = info.Format.SRGBPixel
	}
	return info, nil
}

// DestroyTexture tears down the driver object and releases the handle slot.
func (c *Context) DestroyTexture(h TextureHandle) error {
	if err := c.checkThread("DestroyTexture"); err != nil {
		return err
	}
	rec, err := c.textureRecord(h)
	if err != nil {
		return err
	}
	c.dev.DeleteTexture(rec.id)
	c.mu.Lock()
	c.textures.dealloc(h.h.index())
	c.mu.Unlock()
	return nil
}

// BindTexture binds a texture to a sampling unit. The invalid handle unbinds
// the unit; a stale handle is an error.
func (c *Context) BindTexture(unit int, h TextureHandle) error {
	if err := c.checkThread("BindTexture"); err != nil {
		return err
	}
	if !h.Valid() {
		c.dev.BindTexture(unit, 0, false)
		return nil
	}
	rec, err := c.textureRecord(h)
	if err != nil {
		return err
	}
	c.dev.BindTexture(unit, rec.id, rec.cubemap)
	return nil
}

// TexturePixels reads back level 0 of a texture as RGBA8 into buf.
func (c *Context) TexturePixels(h TextureHandle, buf []byte) error {
	if err := c.checkThread("TexturePixels"); err != nil {
		return err
	}
	rec, err := c.textureRecord(h)
	if err != nil {
		return err
	}
	if err := c.dev.ReadTexturePixels(rec.id, buf); err != nil {
		return fmt.Errorf("%w: read texture: %w", ErrDriverFailure, err)
	}
	return nil
}
