package driver

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// ShaderType identifies a program stage.
type ShaderType int

const (
	// ShaderVertex is the vertex stage.
	ShaderVertex ShaderType = iota
	// ShaderFragment is the fragment stage.
	ShaderFragment
)

// String returns the human-readable stage name.
func (t ShaderType) String() string {
	switch t {
	case ShaderVertex:
		return "vertex shader"
	case ShaderFragment:
		return "fragment shader"
	default:
		return "unknown shader type"
	}
}

// UniformType is the type tag of an interned uniform value.
type UniformType int

const (
	// UniformInt is a single 32-bit integer (samplers collapse to this).
	UniformInt UniformType = iota
	// UniformFloat is a single 32-bit float.
	UniformFloat
	// UniformVec2 is a 2-component float vector.
	UniformVec2
	// UniformVec3 is a 3-component float vector.
	UniformVec3
	// UniformVec4 is a 4-component float vector.
	UniformVec4
	// UniformMat4 is a 4x4 float matrix.
	UniformMat4
	// UniformMat4x3 is a 4x3 float matrix.
	UniformMat4x3
	// UniformMat3x4 is a 3x4 float matrix.
	UniformMat3x4
)

// Size returns the byte size of one element of the type.
func (t UniformType) Size() int {
	switch t {
	case UniformInt, UniformFloat:
		return 4
	case UniformVec2:
		return 8
	case UniformVec3:
		return 12
	case UniformVec4:
		return 16
	case UniformMat4:
		return 64
	case UniformMat4x3, UniformMat3x4:
		return 48
	default:
		return 4
	}
}

// String returns the type tag name.
func (t UniformType) String() string {
	switch t {
	case UniformInt:
		return "int"
	case UniformFloat:
		return "float"
	case UniformVec2:
		return "vec2"
	case UniformVec3:
		return "vec3"
	case UniformVec4:
		return "vec4"
	case UniformMat4:
		return "mat4"
	case UniformMat4x3:
		return "mat4x3"
	case UniformMat3x4:
		return "mat3x4"
	default:
		return fmt.Sprintf("Unknown(%d)", int(t))
	}
}

// AttributeType is the component type of a vertex attribute.
type AttributeType int

const (
	// AttrFloat is a 32-bit float component.
	AttrFloat AttributeType = iota
	// AttrU8 is an unsigned 8-bit component.
	AttrU8
	// AttrI16 is a signed 16-bit component.
	AttrI16
)

// Size returns the byte size of one component.
func (t AttributeType) Size() int {
	switch t {
	case AttrFloat:
		return 4
	case AttrU8:
		return 1
	case AttrI16:
		return 2
	default:
		return 0
	}
}

// Primitive selects the primitive topology of a draw call.
type Primitive int

const (
	// Triangles draws independent triangles.
	Triangles Primitive = iota
	// TriangleStrip draws a connected triangle strip.
	TriangleStrip
	// Lines draws independent line segments.
	Lines
)

// CullMode selects which triangle faces are discarded.
type CullMode int

const (
	// CullNone disables face culling.
	CullNone CullMode = iota
	// CullFront discards front faces.
	CullFront
	// CullBack discards back faces.
	CullBack
)

// TextureFormat identifies the storage format of a texture, including the
// external layout of uploaded pixels where the two differ (the BGR-ordered
// formats found in DDS containers).
type TextureFormat int

const (
	// FormatUnknown is the zero, invalid format.
	FormatUnknown TextureFormat = iota

	// FormatRGBA8 is 8-bit RGBA.
	FormatRGBA8
	// FormatSRGB is 8-bit RGB stored as sRGB, uploaded as RGBA pixels.
	FormatSRGB
	// FormatSRGBA is 8-bit RGBA stored as sRGB.
	FormatSRGBA
	// FormatRGBA16F is 16-bit float RGBA.
	FormatRGBA16F
	// FormatR16F is 16-bit float single channel.
	FormatR16F
	// FormatR16 is 16-bit normalized single channel.
	FormatR16
	// FormatR32F is 32-bit float single channel.
	FormatR32F

	// FormatD24 is 24-bit depth.
	FormatD24
	// FormatD24S8 is 24-bit depth with 8-bit stencil.
	FormatD24S8
	// FormatD32 is 32-bit depth.
	FormatD32

	// FormatBGRA8 is 8-bit RGBA uploaded from BGRA-ordered pixels.
	FormatBGRA8
	// FormatSBGRA8 is sRGB 8-bit RGBA uploaded from BGRA-ordered pixels.
	FormatSBGRA8
	// FormatBGR8 is 8-bit RGB uploaded from BGR-ordered pixels.
	FormatBGR8
	// FormatSBGR8 is sRGB 8-bit RGB uploaded from BGR-ordered pixels.
	FormatSBGR8
	// FormatBGR5A1 is 16-bit 5551 color uploaded from BGRA-ordered words.
	FormatBGR5A1
	// FormatBGR565 is 16-bit 565 color.
	FormatBGR565

	// FormatBC1 is DXT1 block compression.
	FormatBC1
	// FormatBC1SRGB is DXT1 with sRGB decoding.
	FormatBC1SRGB
	// FormatBC2 is DXT3 block compression.
	FormatBC2
	// FormatBC2SRGB is DXT3 with sRGB decoding.
	FormatBC2SRGB
	// FormatBC3 is DXT5 block compression.
	FormatBC3
	// FormatBC3SRGB is DXT5 with sRGB decoding.
	FormatBC3SRGB
	// FormatBC4 is single-channel block compression (ATI1).
	FormatBC4
	// FormatBC5 is dual-channel block compression (ATI2).
	FormatBC5
)

// String returns the format name.
func (f TextureFormat) String() string {
	switch f {
	case FormatRGBA8:
		return "RGBA8"
	case FormatSRGB:
		return "SRGB"
	case FormatSRGBA:
		return "SRGBA"
	case FormatRGBA16F:
		return "RGBA16F"
	case FormatR16F:
		return "R16F"
	case FormatR16:
		return "R16"
	case FormatR32F:
		return "R32F"
	case FormatD24:
		return "D24"
	case FormatD24S8:
		return "D24S8"
	case FormatD32:
		return "D32"
	case FormatBGRA8:
		return "BGRA8"
	case FormatSBGRA8:
		return "sBGRA8"
	case FormatBGR8:
		return "BGR8"
	case FormatSBGR8:
		return "sBGR8"
	case FormatBGR5A1:
		return "BGR5A1"
	case FormatBGR565:
		return "BGR565"
	case FormatBC1:
		return "BC1"
	case FormatBC1SRGB:
		return "BC1 sRGB"
	case FormatBC2:
		return "BC2"
	case FormatBC2SRGB:
		return "BC2 sRGB"
	case FormatBC3:
		return "BC3"
	case FormatBC3SRGB:
		return "BC3 sRGB"
	case FormatBC4:
		return "BC4"
	case FormatBC5:
		return "BC5"
	default:
		return fmt.Sprintf("Unknown(%d)", int(f))
	}
}

// Compressed reports whether the format is block-compressed.
func (f TextureFormat) Compressed() bool {
	switch f {
	case FormatBC1, FormatBC1SRGB, FormatBC2, FormatBC2SRGB,
		FormatBC3, FormatBC3SRGB, FormatBC4, FormatBC5:
		return true
	default:
		return false
	}
}

// HasDepth reports whether the format carries a depth component. The
// framebuffer attachment algorithm routes these to the depth slot.
func (f TextureFormat) HasDepth() bool {
	switch f {
	case FormatD24, FormatD24S8, FormatD32:
		return true
	default:
		return false
	}
}

// BlockBytes returns the byte size of one 4x4 block for compressed formats,
// and 0 otherwise.
func (f TextureFormat) BlockBytes() int {
	switch f {
	case FormatBC1, FormatBC1SRGB, FormatBC4:
		return 8
	case FormatBC2, FormatBC2SRGB, FormatBC3, FormatBC3SRGB, FormatBC5:
		return 16
	default:
		return 0
	}
}

// BytesPerPixel returns the byte size of one pixel for linear formats, and 0
// for compressed formats.
func (f TextureFormat) BytesPerPixel() int {
	switch f {
	case FormatRGBA8, FormatSRGBA, FormatBGRA8, FormatSBGRA8, FormatR32F, FormatD24, FormatD24S8, FormatD32:
		return 4
	case FormatSRGB:
		return 4 // uploaded as RGBA pixels
	case FormatBGR8, FormatSBGR8:
		return 3
	case FormatBGR5A1, FormatBGR565, FormatR16F, FormatR16:
		return 2
	case FormatRGBA16F:
		return 8
	default:
		return 0
	}
}

// WebGPUFormat converts to the gputypes format vocabulary so textures created
// by this backend can be described to GoGPU-ecosystem consumers. Formats with
// no WebGPU counterpart (the 16-bit packed and BGR-ordered 24-bit layouts)
// map to TextureFormatUndefined.
func (f TextureFormat) WebGPUFormat() gputypes.TextureFormat {
	switch f {
	case FormatRGBA8:
		return gputypes.TextureFormatRGBA8Unorm
	case FormatSRGB, FormatSRGBA:
		return gputypes.TextureFormatRGBA8UnormSrgb
	case FormatRGBA16F:
		return gputypes.TextureFormatRGBA16Float
	case FormatR16F:
		return gputypes.TextureFormatR16Float
	case FormatR16:
		return gputypes.TextureFormatR16Unorm
	case FormatR32F:
		return gputypes.TextureFormatR32Float
	case FormatD24:
		return gputypes.TextureFormatDepth24Plus
	case FormatD24S8:
		return gputypes.TextureFormatDepth24PlusStencil8
	case FormatD32:
		return gputypes.TextureFormatDepth32Float
	case FormatBGRA8:
		return gputypes.TextureFormatBGRA8Unorm
	case FormatSBGRA8:
		return gputypes.TextureFormatBGRA8UnormSrgb
	case FormatBC1:
		return gputypes.TextureFormatBC1RGBAUnorm
	case FormatBC1SRGB:
		return gputypes.TextureFormatBC1RGBAUnormSrgb
	case FormatBC2:
		return gputypes.TextureFormatBC2RGBAUnorm
	case FormatBC2SRGB:
		return gputypes.TextureFormatBC2RGBAUnormSrgb
	case FormatBC3:
		return gputypes.TextureFormatBC3RGBAUnorm
	case FormatBC3SRGB:
		return gputypes.TextureFormatBC3RGBAUnormSrgb
	case FormatBC4:
		return gputypes.TextureFormatBC4RUnorm
	case FormatBC5:
		return gputypes.TextureFormatBC5RGUnorm
	default:
		return gputypes.TextureFormatUndefined
	}
}
