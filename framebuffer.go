package gfx

import "fmt"

// AllocFramebufferHandle reserves a framebuffer slot without touching the
// driver. Returns the invalid handle when the pool is exhausted.
func (c *Context) AllocFramebufferHandle() FramebufferHandle {
	c.mu.Lock()
	index, gen, ok := c.framebuffers.alloc()
	c.mu.Unlock()
	if !ok {
		slogger().Error("gfx: out of framebuffer slots", "capacity", MaxFramebuffers)
		return FramebufferHandle{}
	}
	return FramebufferHandle{makeHandle(index, gen)}
}

func (c *Context) framebufferRecord(h FramebufferHandle) (*framebufferRecord, error) {
	if !h.Valid() {
		return nil, ErrInvalidHandle
	}
	return c.framebuffers.get(h.h.index(), h.h.gen())
}

// CreateFramebuffer allocates a handle and realizes a framebuffer with the
// given attachments. See UpdateFramebuffer for how textures map to
// attachment points.
func (c *Context) CreateFramebuffer(attachments []TextureHandle) (FramebufferHandle, error) {
	if err := c.checkThread("CreateFramebuffer"); err != nil {
		return FramebufferHandle{}, err
	}
	h := c.AllocFramebufferHandle()
	if !h.Valid() {
		return FramebufferHandle{}, fmt.Errorf("%w: framebuffers", ErrPoolExhausted)
	}
	rec, _ := c.framebufferRecord(h)
	id, err := c.dev.CreateFramebuffer()
	if err != nil {
		c.mu.Lock()
		c.framebuffers.dealloc(h.h.index())
		c.mu.Unlock()
		return FramebufferHandle{}, fmt.Errorf("%w: %w", ErrDriverFailure, err)
	}
	rec.id = id
	if err := c.UpdateFramebuffer(h, attachments); err != nil {
		c.dev.DeleteFramebuffer(id)
		c.mu.Lock()
		c.framebuffers.dealloc(h.h.index())
		c.mu.Unlock()
		return FramebufferHandle{}, err
	}
	return h, nil
}

// UpdateFramebuffer rebinds the attachment set of an existing framebuffer.
// Textures with a depth-bearing format become the depth attachment (the last
// one wins); every other texture takes the next color slot in order. Slots
// beyond the given attachments are detached, as is the depth attachment when
// no depth texture is present. All attachment handles are resolved before
// the driver is touched; a bad handle leaves the framebuffer as it was.
func (c *Context) UpdateFramebuffer(h FramebufferHandle, attachments []TextureHandle) error {
	if err := c.checkThread("UpdateFramebuffer"); err != nil {
		return err
	}
	rec, err := c.framebufferRecord(h)
	if err != nil {
		return err
	}

	texs := make([]*textureRecord, len(attachments))
	for i, th := range attachments {
		tex, err := c.textureRecord(th)
		if err != nil {
			return fmt.Errorf("gfx: framebuffer attachment: %w", err)
		}
		texs[i] = tex
	}

	colorIdx := 0
	depthBound := false
	for _, tex := range texs {
		if tex.format.HasDepth() {
			c.dev.AttachDepth(rec.id, tex.id, tex.format)
			depthBound = true
			continue
		}
		c.dev.AttachColor(rec.id, colorIdx, tex.id)
		colorIdx++
	}
	for i := colorIdx; i < c.dev.MaxColorAttachments(); i++ {
		c.dev.DetachColor(rec.id, i)
	}
	if !depthBound {
		c.dev.DetachDepth(rec.id)
	}
	if err := c.dev.ValidateFramebuffer(rec.id); err != nil {
		return fmt.Errorf("%w: incomplete framebuffer: %w", ErrDriverFailure, err)
	}
	return nil
}

// SetFramebuffer makes a framebuffer the render target. The invalid handle
// selects the default (window) framebuffer. srgb controls sRGB conversion on
// write.
func (c *Context) SetFramebuffer(h FramebufferHandle, srgb bool) error {
	if err := c.checkThread("SetFramebuffer"); err != nil {
		return err
	}
	if !h.Valid() {
		c.dev.BindDefaultFramebuffer(srgb)
		return nil
	}
	rec, err := c.framebufferRecord(h)
	if err != nil {
		return err
	}
	c.dev.BindFramebuffer(rec.id, srgb)
	return nil
}

// DestroyFramebuffer tears down the driver object and releases the handle
// slot. Attached textures are not owned by the framebuffer and stay alive.
func (c *Context) DestroyFramebuffer(h FramebufferHandle) error {
	if err := c.checkThread("DestroyFramebuffer"); err != nil {
		return err
	}
	rec, err := c.framebufferRecord(h)
	if err != nil {
		return err
	}
	c.dev.DeleteFramebuffer(rec.id)
	c.mu.Lock()
	c.framebuffers.dealloc(h.h.index())
	c.mu.Unlock()
	return nil
}
