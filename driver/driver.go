// Package driver defines the contract between the gfx backend and the
// underlying graphics API.
//
// A Device is the abstraction of an API such as OpenGL: it realizes and
// destroys driver-native objects, uploads texture data, and executes state
// and draw commands. The gfx package never talks to a graphics API directly;
// it resolves its own handles into the opaque identifiers returned by the
// Device and forwards every command here.
//
// Implementations are not required to be safe for concurrent use. The gfx
// package guarantees that all Device calls happen on a single goroutine (the
// graphics goroutine, pinned to its OS thread by the caller).
package driver

// Opaque driver-native object identifiers. The zero value never names a live
// object.
type (
	// BufferID identifies a driver-native buffer object.
	BufferID uint32

	// TextureID identifies a driver-native texture object.
	TextureID uint32

	// ProgramID identifies a linked driver-native program object.
	ProgramID uint32

	// FramebufferID identifies a driver-native framebuffer object.
	FramebufferID uint32

	// QueryID identifies a driver-native query object.
	QueryID uint32
)

// Face2D is the face argument for uploads to plain 2D textures. Cubemap
// uploads pass a face index in [0, 6).
const Face2D = -1

// ShaderSource is one compiled stage of a program, already reduced to a
// source string the device understands (GLSL for the GL device). Shader
// composition and cross-compilation happen above this interface.
type ShaderSource struct {
	Type   ShaderType
	Source string
}

// ActiveUniform describes one uniform reported by the device after a
// successful program link. Sampler types are collapsed to UniformInt by the
// device.
type ActiveUniform struct {
	Name     string
	Type     UniformType
	Count    int
	Location int
}

// Device is the graphics driver consumed by gfx.
//
// All object-creating calls are fallible and never retried; on failure the
// device must not leak partially created objects. Delete calls on the zero
// identifier are no-ops.
type Device interface {
	// CreateBuffer realizes a buffer of the given size. data may be nil for
	// an uninitialized buffer, otherwise len(data) must equal size.
	CreateBuffer(size int, data []byte) (BufferID, error)

	// UpdateBuffer overwrites a range of a buffer with data.
	UpdateBuffer(id BufferID, offset int, data []byte) error

	// DeleteBuffer destroys a buffer object.
	DeleteBuffer(id BufferID)

	// BindVertexBuffer makes a buffer the source for vertex attributes.
	BindVertexBuffer(id BufferID)

	// BindIndexBuffer makes a buffer the source for element indices.
	// The zero identifier unbinds.
	BindIndexBuffer(id BufferID)

	// BindUniformBuffer binds a buffer range to an indexed uniform slot.
	BindUniformBuffer(slot int, id BufferID, offset, size int)

	// SetVertexAttribute configures one attribute slot against the currently
	// bound vertex buffer.
	SetVertexAttribute(slot, components int, typ AttributeType, normalized, asInt bool, stride, offset int)

	// DisableVertexAttribute disables one attribute slot.
	DisableVertexAttribute(slot int)

	// MaxVertexAttributes reports the number of attribute slots.
	MaxVertexAttributes() int

	// CreateTexture realizes an empty texture object. Storage is defined by
	// subsequent UploadMip/UploadCompressedMip calls.
	CreateTexture() (TextureID, error)

	// DeleteTexture destroys a texture object.
	DeleteTexture(id TextureID)

	// BindTexture binds a texture to a sampling unit. The zero identifier
	// unbinds the unit.
	BindTexture(unit int, id TextureID, cube bool)

	// UploadMip uploads one uncompressed mip level. face is Face2D or a
	// cubemap face index.
	UploadMip(id TextureID, face, level int, format TextureFormat, width, height int, data []byte) error

	// UploadCompressedMip uploads one block-compressed mip level of the given
	// byte size.
	UploadCompressedMip(id TextureID, face, level int, format TextureFormat, width, height, size int, data []byte) error

	// SetTextureParams sets filtering, wrap mode and the top mip level for a
	// fully uploaded texture.
	SetTextureParams(id TextureID, cube bool, mipCount int, repeat bool)

	// ReadTexturePixels reads back level 0 as RGBA8 into buf.
	ReadTexturePixels(id TextureID, buf []byte) error

	// CreateProgram compiles and links the given stages. On any compile or
	// link failure the device deletes everything it created and returns the
	// driver's info log wrapped in the error.
	CreateProgram(shaders []ShaderSource) (ProgramID, error)

	// DeleteProgram destroys a program object.
	DeleteProgram(id ProgramID)

	// UseProgram makes a program current. The zero identifier unbinds.
	UseProgram(id ProgramID)

	// ActiveUniforms enumerates the uniforms of a linked program.
	ActiveUniforms(id ProgramID) ([]ActiveUniform, error)

	// ApplyUniform writes a uniform value of the current program. data holds
	// count elements laid out per UniformType.Size.
	ApplyUniform(location int, typ UniformType, count int, data []byte)

	// UniformBlockBinding assigns a named uniform block to a buffer slot.
	UniformBlockBinding(id ProgramID, block string, binding int)

	// AttribLocation reports the location of a named vertex attribute, or a
	// negative value if the program has no such attribute.
	AttribLocation(id ProgramID, name string) int

	// CreateFramebuffer realizes an empty framebuffer object.
	CreateFramebuffer() (FramebufferID, error)

	// DeleteFramebuffer destroys a framebuffer object.
	DeleteFramebuffer(id FramebufferID)

	// AttachColor attaches a texture to a color slot.
	AttachColor(fb FramebufferID, index int, tex TextureID)

	// AttachDepth attaches a texture to the depth slot. format selects
	// between the depth and combined depth-stencil attachment points.
	AttachDepth(fb FramebufferID, tex TextureID, format TextureFormat)

	// DetachColor clears a color slot.
	DetachColor(fb FramebufferID, index int)

	// DetachDepth clears the depth slot.
	DetachDepth(fb FramebufferID)

	// MaxColorAttachments reports the number of color slots.
	MaxColorAttachments() int

	// ValidateFramebuffer reports whether the framebuffer is complete.
	ValidateFramebuffer(fb FramebufferID) error

	// BindFramebuffer makes a framebuffer the render target and switches
	// sRGB conversion on writes.
	BindFramebuffer(fb FramebufferID, srgb bool)

	// BindDefaultFramebuffer makes the window surface the render target.
	BindDefaultFramebuffer(srgb bool)

	// CreateQuery realizes a timer query object.
	CreateQuery() (QueryID, error)

	// DeleteQuery destroys a query object.
	DeleteQuery(id QueryID)

	// QueryTimestamp records the GPU timestamp into a query.
	QueryTimestamp(id QueryID)

	// QueryResult blocks until the query result is available and returns it.
	QueryResult(id QueryID) uint64

	// Viewport sets the viewport rectangle.
	Viewport(x, y, w, h int)

	// Scissor sets the scissor rectangle.
	Scissor(x, y, w, h int)

	// SetBlending switches standard alpha blending.
	SetBlending(enabled bool)

	// SetDepthTest switches the depth test.
	SetDepthTest(enabled bool)

	// SetCull sets the face culling mode.
	SetCull(mode CullMode)

	// SetWireframe switches line polygon mode.
	SetWireframe(enabled bool)

	// Clear clears the bound render target. The current program binding is
	// released before clearing.
	Clear(clearColor, clearDepth bool, color [4]float32, depth float32)

	// DrawArrays draws count vertices starting at first.
	DrawArrays(mode Primitive, first, count int)

	// DrawElements draws count 16-bit indices starting at a byte offset
	// into the bound index buffer.
	DrawElements(mode Primitive, offset, count int)

	// PushDebugGroup opens a named group in a debugging capture.
	PushDebugGroup(name string)

	// PopDebugGroup closes the innermost debug group.
	PopDebugGroup()

	// OriginBottomLeft reports whether the render target origin is the
	// bottom-left corner.
	OriginBottomLeft() bool

	// HomogeneousDepth reports whether clip-space depth spans [-1, 1]
	// rather than [0, 1].
	HomogeneousDepth() bool
}
