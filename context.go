package gfx

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/petermattis/goid"

	"github.com/gogpu/gfx/driver"
)

// Pool capacities. Pools are fixed: when one runs out, the corresponding
// alloc or create call fails with ErrPoolExhausted and the caller decides.
const (
	MaxBuffers      = 4096
	MaxTextures     = 4096
	MaxUniforms     = 256
	MaxPrograms     = 1024
	MaxFramebuffers = 256
	MaxQueries      = 64

	// maxProgramUniforms caps the uniform binding table of one program.
	// Uniforms past the cap are dropped with a warning.
	maxProgramUniforms = 32
)

// Context owns every handle pool, the uniform interning table and the
// graphics-goroutine identity. There is no hidden package state: every
// operation is a method on an explicit Context.
//
// Two classes of methods exist. Handle acquisition (AllocBufferHandle,
// AllocTextureHandle, AllocUniform) may be called from any goroutine; it
// touches only pool structure under an internal mutex. Everything else —
// resource realization, state changes, draws — must run on the single
// graphics goroutine registered by Init and fails with ErrThreadViolation
// otherwise.
type Context struct {
	dev driver.Device

	// mu guards pool structure (alloc/dealloc) and the uniform name map.
	// Uniform records are initialized under the lock (AllocUniform runs on
	// any goroutine); every other record is written outside the lock, only
	// ever from the graphics goroutine.
	mu           sync.Mutex
	buffers      *pool[bufferRecord]
	textures     *pool[textureRecord]
	uniforms     *pool[uniformRecord]
	programs     *pool[programRecord]
	framebuffers *pool[framebufferRecord]
	queries      *pool[queryRecord]

	uniformNames map[uint32]UniformHandle

	// graphicsID is the goid of the goroutine that called Init, or 0.
	graphicsID atomic.Int64
}

// New creates a Context over the given driver. The Context is not usable for
// graphics work until Init is called on the graphics goroutine.
func New(dev driver.Device) (*Context, error) {
	if dev == nil {
		return nil, errors.New("gfx: nil driver")
	}
	return &Context{
		dev:          dev,
		buffers:      newPool[bufferRecord](MaxBuffers),
		textures:     newPool[textureRecord](MaxTextures),
		uniforms:     newPool[uniformRecord](MaxUniforms),
		programs:     newPool[programRecord](MaxPrograms),
		framebuffers: newPool[framebufferRecord](MaxFramebuffers),
		queries:      newPool[queryRecord](MaxQueries),
		uniformNames: make(map[uint32]UniformHandle),
	}, nil
}

// Init registers the calling goroutine as the graphics goroutine. The caller
// must have pinned it to its OS thread with runtime.LockOSThread and made the
// driver's context current on that thread before calling Init.
//
// Calling Init on an already-initialized Context is an error; after
// Shutdown, Init may be called again to adopt a new graphics goroutine.
func (c *Context) Init() error {
	if c.graphicsID.Load() != 0 {
		return errors.New("gfx: context already initialized")
	}
	c.graphicsID.Store(goid.Get())
	slogger().Info("gfx: context initialized",
		"buffers", MaxBuffers, "textures", MaxTextures,
		"uniforms", MaxUniforms, "programs", MaxPrograms)
	return nil
}

// Shutdown forgets the graphics goroutine. Driver objects still alive are the
// caller's responsibility; gfx never destroys resources implicitly.
func (c *Context) Shutdown() {
	c.graphicsID.Store(0)
}

// checkThread enforces the graphics-goroutine contract. The check is always
// compiled in; it is the only guard between a misplaced call and corrupted
// driver state.
func (c *Context) checkThread(op string) error {
	if c.graphicsID.Load() != goid.Get() {
		return fmt.Errorf("%w: %s", ErrThreadViolation, op)
	}
	return nil
}

// Device returns the underlying driver. Useful for capability queries; all
// resource and command traffic should go through the Context.
func (c *Context) Device() driver.Device { return c.dev }

// OriginBottomLeft reports whether the render target origin is bottom-left.
func (c *Context) OriginBottomLeft() bool { return c.dev.OriginBottomLeft() }

// HomogeneousDepth reports whether clip-space depth spans [-1, 1].
func (c *Context) HomogeneousDepth() bool { return c.dev.HomogeneousDepth() }

// PushDebugGroup opens a named group in a debugging capture.
func (c *Context) PushDebugGroup(name string) error {
	if err := c.checkThread("PushDebugGroup"); err != nil {
		return err
	}
	c.dev.PushDebugGroup(name)
	return nil
}

// PopDebugGroup closes the innermost debug group.
func (c *Context) PopDebugGroup() error {
	if err := c.checkThread("PopDebugGroup"); err != nil {
		return err
	}
	c.dev.PopDebugGroup()
	return nil
}

// Resource records. A record is authoritative for its handle: binding calls
// resolve handles to the driver-native identifiers stored here.

type bufferRecord struct {
	id driver.BufferID
}

type textureRecord struct {
	id      driver.TextureID
	cubemap bool
	format  driver.TextureFormat
}

type uniformRecord struct {
	name  string
	typ   driver.UniformType
	count int
	data  []byte
}

type programUniform struct {
	location int
	uniform  UniformHandle
}

type programRecord struct {
	id           driver.ProgramID
	uniforms     [maxProgramUniforms]programUniform
	uniformCount int
}

type framebufferRecord struct {
	id driver.FramebufferID
}

type queryRecord struct {
	id driver.QueryID
}
