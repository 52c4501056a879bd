package gfx

import "fmt"

// AllocBufferHandle reserves a buffer slot and returns its handle, or the
// invalid handle when the pool is exhausted. Safe to call from any
// goroutine; the buffer has no driver object until CreateBuffer realizes it
// on the graphics goroutine.
func (c *Context) AllocBufferHandle() BufferHandle {
	c.mu.Lock()
	defer c.mu.Unlock()
	index, gen, ok := c.buffers.alloc()
	if !ok {
		slogger().Error("gfx: out of buffer slots", "capacity", MaxBuffers)
		return BufferHandle{}
	}
	return BufferHandle{makeHandle(index, gen)}
}

func (c *Context) bufferRecord(h BufferHandle) (*bufferRecord, error) {
	if !h.Valid() {
		return nil, ErrInvalidHandle
	}
	return c.buffers.get(h.h.index(), h.h.gen())
}

// CreateBuffer realizes the driver object for a previously allocated handle.
// data may be nil for an uninitialized buffer of the given size.
func (c *Context) CreateBuffer(h BufferHandle, size int, data []byte) error {
	if err := c.checkThread("CreateBuffer"); err != nil {
		return err
	}
	rec, err := c.bufferRecord(h)
	if err != nil {
		return err
	}
	id, err := c.dev.CreateBuffer(size, data)
	if err != nil {
		slogger().Error("gfx: buffer creation failed", "size", size, "err", err)
		return fmt.Errorf("%w: create buffer: %w", ErrDriverFailure, err)
	}
	rec.id = id
	return nil
}

// UpdateBuffer overwrites size bytes of the buffer at the given offset.
func (c *Context) UpdateBuffer(h BufferHandle, data []byte, offset int) error {
	if err := c.checkThread("UpdateBuffer"); err != nil {
		return err
	}
	rec, err := c.bufferRecord(h)
	if err != nil {
		return err
	}
	if err := c.dev.UpdateBuffer(rec.id, offset, data); err != nil {
		slogger().Error("gfx: buffer update failed", "offset", offset, "size", len(data), "err", err)
		return fmt.Errorf("%w: update buffer: %w", ErrDriverFailure, err)
	}
	return nil
}

// DestroyBuffer tears down the driver object and releases the handle slot.
// The handle is dead afterwards; later uses fail with ErrStaleHandle.
func (c *Context) DestroyBuffer(h BufferHandle) error {
	if err := c.checkThread("DestroyBuffer"); err != nil {
		return err
	}
	rec, err := c.bufferRecord(h)
	if err != nil {
		return err
	}
	c.dev.DeleteBuffer(rec.id)
	c.mu.Lock()
	c.buffers.dealloc(h.h.index())
	c.mu.Unlock()
	return nil
}

// BindUniformBuffer binds a buffer range to an indexed uniform slot.
func (c *Context) BindUniformBuffer(slot int, h BufferHandle, offset, size int) error {
	if err := c.checkThread("BindUniformBuffer"); err != nil {
		return err
	}
	rec, err := c.bufferRecord(h)
	if err != nil {
		return err
	}
	c.dev.BindUniformBuffer(slot, rec.id, offset, size)
	return nil
}

// SetIndexBuffer makes a buffer the element index source for draws. The
// invalid handle unbinds.
func (c *Context) SetIndexBuffer(h BufferHandle) error {
	if err := c.checkThread("SetIndexBuffer"); err != nil {
		return err
	}
	if !h.Valid() {
		c.dev.BindIndexBuffer(0)
		return nil
	}
	rec, err := c.bufferRecord(h)
	if err != nil {
		return err
	}
	c.dev.BindIndexBuffer(rec.id)
	return nil
}

// SetVertexBuffer binds a buffer as the vertex source and configures one
// attribute slot per declaration entry. attributeMap, when non-nil, remaps
// declaration order to attribute slots; a negative entry disables the slot.
// A nil declaration disables every attribute slot.
func (c *Context) SetVertexBuffer(decl *VertexDecl, h BufferHandle, bufferOffset int, attributeMap []int) error {
	if err := c.checkThread("SetVertexBuffer"); err != nil {
		return err
	}
	if decl == nil {
		for i := 0; i < c.dev.MaxVertexAttributes(); i++ {
			c.dev.DisableVertexAttribute(i)
		}
		return nil
	}
	rec, err := c.bufferRecord(h)
	if err != nil {
		return err
	}
	c.dev.BindVertexBuffer(rec.id)
	for i, attr := range decl.Attributes {
		slot := i
		if attributeMap != nil {
			slot = attributeMap[i]
		}
		if slot < 0 {
			c.dev.DisableVertexAttribute(i)
			continue
		}
		c.dev.SetVertexAttribute(slot, attr.Components, attr.Type, attr.Normalized, attr.AsInt,
			decl.Size, attr.Offset+bufferOffset)
	}
	return nil
}
