package gfx

// handle packs a pool slot index into the low 16 bits and a nonzero slot
// generation into the high 16 bits. The zero value is the invalid sentinel
// of every handle kind: generations start at 1 and skip 0 when they wrap, so
// no live resource ever encodes to 0.
type handle uint32

func makeHandle(index int, gen uint16) handle {
	return handle(uint32(gen)<<16 | uint32(index)&0xffff)
}

func (h handle) index() int  { return int(h & 0xffff) }
func (h handle) gen() uint16 { return uint16(h >> 16) }
func (h handle) valid() bool { return h != 0 }

// BufferHandle identifies a buffer. The zero value is invalid.
type BufferHandle struct{ h handle }

// Valid reports whether the handle was ever issued. It does not check
// whether the resource is still alive; dereferencing operations do.
func (h BufferHandle) Valid() bool { return h.h.valid() }

// TextureHandle identifies a texture. The zero value is invalid.
type TextureHandle struct{ h handle }

// Valid reports whether the handle was ever issued.
func (h TextureHandle) Valid() bool { return h.h.valid() }

// UniformHandle identifies an interned uniform. The zero value is invalid.
type UniformHandle struct{ h handle }

// Valid reports whether the handle was ever issued.
func (h UniformHandle) Valid() bool { return h.h.valid() }

// ProgramHandle identifies a linked program. The zero value is invalid.
type ProgramHandle struct{ h handle }

// Valid reports whether the handle was ever issued.
func (h ProgramHandle) Valid() bool { return h.h.valid() }

// FramebufferHandle identifies a framebuffer. The zero value is invalid.
type FramebufferHandle struct{ h handle }

// Valid reports whether the handle was ever issued.
func (h FramebufferHandle) Valid() bool { return h.h.valid() }

// QueryHandle identifies a timer query. The zero value is invalid.
type QueryHandle struct{ h handle }

// Valid reports whether the handle was ever issued.
func (h QueryHandle) Valid() bool { return h.h.valid() }
