// Package gl implements driver.Device on OpenGL 4.5 core.
//
// The device must be created and used on the goroutine that owns the GL
// context, pinned to its OS thread. New calls gl.Init, so a context must be
// current before constructing the device.
package gl

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.5-core/gl"

	"github.com/gogpu/gfx/driver"
)

// ErrUnsupportedFormat is returned when a texture upload names a format the
// device has no descriptor for.
var ErrUnsupportedFormat = errors.New("gl: unsupported texture format")

// S3TC and sRGB S3TC internal formats come from extensions and are not part
// of the core constant set.
const (
	compressedRGBADXT1      = 0x83F1
	compressedRGBADXT3      = 0x83F2
	compressedRGBADXT5      = 0x83F3
	compressedSRGBAlphaDXT1 = 0x8C4D
	compressedSRGBAlphaDXT3 = 0x8C4E
	compressedSRGBAlphaDXT5 = 0x8C4F
)

// formatDesc maps a texture format to the GL triple used to upload it.
type formatDesc struct {
	internal   uint32
	format     uint32
	xtype      uint32
	compressed bool
}

var formats = map[driver.TextureFormat]formatDesc{
	driver.FormatRGBA8:    {internal: gl.RGBA8, format: gl.RGBA, xtype: gl.UNSIGNED_BYTE},
	driver.FormatSRGB:     {internal: gl.SRGB8, format: gl.RGB, xtype: gl.UNSIGNED_BYTE},
	driver.FormatSRGBA:    {internal: gl.SRGB8_ALPHA8, format: gl.RGBA, xtype: gl.UNSIGNED_BYTE},
	driver.FormatRGBA16F:  {internal: gl.RGBA16F, format: gl.RGBA, xtype: gl.HALF_FLOAT},
	driver.FormatR16F:     {internal: gl.R16F, format: gl.RED, xtype: gl.HALF_FLOAT},
	driver.FormatR16:      {internal: gl.R16, format: gl.RED, xtype: gl.UNSIGNED_SHORT},
	driver.FormatR32F:     {internal: gl.R32F, format: gl.RED, xtype: gl.FLOAT},
	driver.FormatD24:      {internal: gl.DEPTH_COMPONENT24, format: gl.DEPTH_COMPONENT, xtype: gl.UNSIGNED_INT},
	driver.FormatD24S8:    {internal: gl.DEPTH24_STENCIL8, format: gl.DEPTH_STENCIL, xtype: gl.UNSIGNED_INT_24_8},
	driver.FormatD32:      {internal: gl.DEPTH_COMPONENT32F, format: gl.DEPTH_COMPONENT, xtype: gl.FLOAT},
	driver.FormatBGRA8:    {internal: gl.RGBA8, format: gl.BGRA, xtype: gl.UNSIGNED_BYTE},
	driver.FormatSBGRA8:   {internal: gl.SRGB8_ALPHA8, format: gl.BGRA, xtype: gl.UNSIGNED_BYTE},
	driver.FormatBGR8:     {internal: gl.RGB8, format: gl.BGR, xtype: gl.UNSIGNED_BYTE},
	driver.FormatSBGR8:    {internal: gl.SRGB8, format: gl.BGR, xtype: gl.UNSIGNED_BYTE},
	driver.FormatBGR5A1:   {internal: gl.RGB5_A1, format: gl.BGRA, xtype: gl.UNSIGNED_SHORT_1_5_5_5_REV},
	driver.FormatBGR565:   {internal: gl.RGB565, format: gl.RGB, xtype: gl.UNSIGNED_SHORT_5_6_5},
	driver.FormatBC1:      {internal: compressedRGBADXT1, compressed: true},
	driver.FormatBC1SRGB:  {internal: compressedSRGBAlphaDXT1, compressed: true},
	driver.FormatBC2:      {internal: compressedRGBADXT3, compressed: true},
	driver.FormatBC2SRGB:  {internal: compressedSRGBAlphaDXT3, compressed: true},
	driver.FormatBC3:      {internal: compressedRGBADXT5, compressed: true},
	driver.FormatBC3SRGB:  {internal: compressedSRGBAlphaDXT5, compressed: true},
	driver.FormatBC4:      {internal: gl.COMPRESSED_RED_RGTC1, compressed: true},
	driver.FormatBC5:      {internal: gl.COMPRESSED_RG_RGTC2, compressed: true},
}

// Device is the OpenGL 4.5 core implementation of driver.Device.
type Device struct {
	vao                 uint32
	maxVertexAttribs    int
	maxColorAttachments int

	// Highest attached color slot per framebuffer, for draw buffer lists.
	colorCount map[driver.FramebufferID]int
}

var _ driver.Device = (*Device)(nil)

// New initializes GL bindings against the current context and returns a
// ready device.
func New() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl: init: %w", err)
	}
	d := &Device{colorCount: make(map[driver.FramebufferID]int)}

	// One vertex array object for the lifetime of the device; attribute
	// layout changes go through SetVertexAttribute.
	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	var v int32
	gl.GetIntegerv(gl.MAX_VERTEX_ATTRIBS, &v)
	d.maxVertexAttribs = int(v)
	gl.GetIntegerv(gl.MAX_COLOR_ATTACHMENTS, &v)
	d.maxColorAttachments = int(v)

	gl.Enable(gl.TEXTURE_CUBE_MAP_SEAMLESS)
	return d, nil
}

// Release destroys device-owned GL state. Resources created through the
// device are not tracked and must be deleted by the caller.
func (d *Device) Release() {
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
		d.vao = 0
	}
}

func dataPtr(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return gl.Ptr(data)
}

func (d *Device) CreateBuffer(size int, data []byte) (driver.BufferID, error) {
	var b uint32
	gl.CreateBuffers(1, &b)
	if b == 0 {
		return 0, errors.New("gl: buffer creation failed")
	}
	gl.NamedBufferData(b, size, dataPtr(data), gl.DYNAMIC_DRAW)
	return driver.BufferID(b), nil
}

func (d *Device) UpdateBuffer(id driver.BufferID, offset int, data []byte) error {
	gl.NamedBufferSubData(uint32(id), offset, len(data), dataPtr(data))
	return nil
}

func (d *Device) DeleteBuffer(id driver.BufferID) {
	if id == 0 {
		return
	}
	b := uint32(id)
	gl.DeleteBuffers(1, &b)
}

func (d *Device) BindVertexBuffer(id driver.BufferID) {
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(id))
}

func (d *Device) BindIndexBuffer(id driver.BufferID) {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, uint32(id))
}

func (d *Device) BindUniformBuffer(slot int, id driver.BufferID, offset, size int) {
	gl.BindBufferRange(gl.UNIFORM_BUFFER, uint32(slot), uint32(id), offset, size)
}

func attribType(typ driver.AttributeType) uint32 {
	switch typ {
	case driver.AttrU8:
		return gl.UNSIGNED_BYTE
	case driver.AttrI16:
		return gl.SHORT
	default:
		return gl.FLOAT
	}
}

func (d *Device) SetVertexAttribute(slot, components int, typ driver.AttributeType, normalized, asInt bool, stride, offset int) {
	gl.EnableVertexAttribArray(uint32(slot))
	if asInt {
		gl.VertexAttribIPointerWithOffset(uint32(slot), int32(components), attribType(typ), int32(stride), uintptr(offset))
		return
	}
	gl.VertexAttribPointerWithOffset(uint32(slot), int32(components), attribType(typ), normalized, int32(stride), uintptr(offset))
}

func (d *Device) DisableVertexAttribute(slot int) {
	gl.DisableVertexAttribArray(uint32(slot))
}

func (d *Device) MaxVertexAttributes() int { return d.maxVertexAttribs }

func (d *Device) CreateTexture() (driver.TextureID, error) {
	var t uint32
	gl.GenTextures(1, &t)
	if t == 0 {
		return 0, errors.New("gl: texture creation failed")
	}
	return driver.TextureID(t), nil
}

func (d *Device) DeleteTexture(id driver.TextureID) {
	if id == 0 {
		return
	}
	t := uint32(id)
	gl.DeleteTextures(1, &t)
}

func (d *Device) BindTexture(unit int, id driver.TextureID, cube bool) {
	gl.ActiveTexture(uint32(gl.TEXTURE0 + unit))
	if cube {
		gl.BindTexture(gl.TEXTURE_CUBE_MAP, uint32(id))
		return
	}
	gl.BindTexture(gl.TEXTURE_2D, uint32(id))
}

// uploadTargets resolves the bind target and upload target for a face.
func uploadTargets(face int) (bind, upload uint32) {
	if face == driver.Face2D {
		return gl.TEXTURE_2D, gl.TEXTURE_2D
	}
	return gl.TEXTURE_CUBE_MAP, uint32(gl.TEXTURE_CUBE_MAP_POSITIVE_X + face)
}

func (d *Device) UploadMip(id driver.TextureID, face, level int, format driver.TextureFormat, width, height int, data []byte) error {
	desc, ok := formats[format]
	if !ok || desc.compressed {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	bind, upload := uploadTargets(face)
	gl.BindTexture(bind, uint32(id))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(upload, int32(level), int32(desc.internal), int32(width), int32(height), 0, desc.format, desc.xtype, dataPtr(data))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	return nil
}

func (d *Device) UploadCompressedMip(id driver.TextureID, face, level int, format driver.TextureFormat, width, height, size int, data []byte) error {
	desc, ok := formats[format]
	if !ok || !desc.compressed {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	bind, upload := uploadTargets(face)
	gl.BindTexture(bind, uint32(id))
	gl.CompressedTexImage2D(upload, int32(level), desc.internal, int32(width), int32(height), 0, int32(size), dataPtr(data))
	return nil
}

func (d *Device) SetTextureParams(id driver.TextureID, cube bool, mipCount int, repeat bool) {
	target := uint32(gl.TEXTURE_2D)
	if cube {
		target = gl.TEXTURE_CUBE_MAP
	}
	gl.BindTexture(target, uint32(id))
	minFilter := int32(gl.LINEAR)
	if mipCount > 1 {
		minFilter = gl.LINEAR_MIPMAP_LINEAR
	}
	gl.TexParameteri(target, gl.TEXTURE_MIN_FILTER, minFilter)
	gl.TexParameteri(target, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(target, gl.TEXTURE_BASE_LEVEL, 0)
	gl.TexParameteri(target, gl.TEXTURE_MAX_LEVEL, int32(mipCount-1))
	wrap := int32(gl.CLAMP_TO_EDGE)
	if repeat {
		wrap = gl.REPEAT
	}
	gl.TexParameteri(target, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(target, gl.TEXTURE_WRAP_T, wrap)
	if cube {
		gl.TexParameteri(target, gl.TEXTURE_WRAP_R, wrap)
	}
}

func (d *Device) ReadTexturePixels(id driver.TextureID, buf []byte) error {
	gl.BindTexture(gl.TEXTURE_2D, uint32(id))
	gl.GetTexImage(gl.TEXTURE_2D, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(buf))
	return nil
}

func shaderStage(typ driver.ShaderType) uint32 {
	if typ == driver.ShaderVertex {
		return gl.VERTEX_SHADER
	}
	return gl.FRAGMENT_SHADER
}

func compileShader(sh driver.ShaderSource) (uint32, error) {
	s := gl.CreateShader(shaderStage(sh.Type))
	src, free := gl.Strs(sh.Source + "\x00")
	gl.ShaderSource(s, 1, src, nil)
	free()
	gl.CompileShader(s)

	var status int32
	gl.GetShaderiv(s, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(s, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen)+1)
		gl.GetShaderInfoLog(s, logLen, nil, gl.Str(log))
		gl.DeleteShader(s)
		return 0, fmt.Errorf("gl: compile %s: %s", sh.Type, strings.TrimRight(log, "\x00"))
	}
	return s, nil
}

func (d *Device) CreateProgram(shaders []driver.ShaderSource) (driver.ProgramID, error) {
	p := gl.CreateProgram()
	compiled := make([]uint32, 0, len(shaders))
	cleanup := func() {
		for _, s := range compiled {
			gl.DeleteShader(s)
		}
		gl.DeleteProgram(p)
	}
	for _, sh := range shaders {
		s, err := compileShader(sh)
		if err != nil {
			cleanup()
			return 0, err
		}
		compiled = append(compiled, s)
		gl.AttachShader(p, s)
	}
	gl.LinkProgram(p)

	var status int32
	gl.GetProgramiv(p, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(p, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen)+1)
		gl.GetProgramInfoLog(p, logLen, nil, gl.Str(log))
		cleanup()
		return 0, fmt.Errorf("gl: link: %s", strings.TrimRight(log, "\x00"))
	}
	for _, s := range compiled {
		gl.DetachShader(p, s)
		gl.DeleteShader(s)
	}
	return driver.ProgramID(p), nil
}

func (d *Device) DeleteProgram(id driver.ProgramID) {
	if id == 0 {
		return
	}
	gl.DeleteProgram(uint32(id))
}

func (d *Device) UseProgram(id driver.ProgramID) {
	gl.UseProgram(uint32(id))
}

// uniformType maps a GL uniform type to the backend's taxonomy. Sampler
// types collapse to int; the second result is false for types the backend
// does not handle.
func uniformType(glType uint32) (driver.UniformType, bool) {
	switch glType {
	case gl.INT, gl.BOOL, gl.SAMPLER_2D, gl.SAMPLER_2D_ARRAY, gl.SAMPLER_3D, gl.SAMPLER_CUBE, gl.SAMPLER_2D_SHADOW:
		return driver.UniformInt, true
	case gl.FLOAT:
		return driver.UniformFloat, true
	case gl.FLOAT_VEC2:
		return driver.UniformVec2, true
	case gl.FLOAT_VEC3:
		return driver.UniformVec3, true
	case gl.FLOAT_VEC4:
		return driver.UniformVec4, true
	case gl.FLOAT_MAT4:
		return driver.UniformMat4, true
	case gl.FLOAT_MAT4x3:
		return driver.UniformMat4x3, true
	case gl.FLOAT_MAT3x4:
		return driver.UniformMat3x4, true
	default:
		return 0, false
	}
}

func (d *Device) ActiveUniforms(id driver.ProgramID) ([]driver.ActiveUniform, error) {
	p := uint32(id)
	var count int32
	gl.GetProgramiv(p, gl.ACTIVE_UNIFORMS, &count)

	out := make([]driver.ActiveUniform, 0, count)
	buf := make([]byte, 256)
	for i := int32(0); i < count; i++ {
		var nameLen, size int32
		var glType uint32
		gl.GetActiveUniform(p, uint32(i), int32(len(buf)-1), &nameLen, &size, &glType, &buf[0])
		name := string(buf[:nameLen])
		// Array uniforms report as "name[0]".
		name = strings.TrimSuffix(name, "[0]")

		typ, ok := uniformType(glType)
		if !ok {
			continue
		}
		loc := gl.GetUniformLocation(p, gl.Str(name+"\x00"))
		if loc < 0 {
			// Uniform block members have no location.
			continue
		}
		out = append(out, driver.ActiveUniform{
			Name:     name,
			Type:     typ,
			Count:    int(size),
			Location: int(loc),
		})
	}
	return out, nil
}

func (d *Device) ApplyUniform(location int, typ driver.UniformType, count int, data []byte) {
	if len(data) == 0 {
		return
	}
	loc := int32(location)
	n := int32(count)
	f := (*float32)(unsafe.Pointer(&data[0]))
	switch typ {
	case driver.UniformInt:
		gl.Uniform1iv(loc, n, (*int32)(unsafe.Pointer(&data[0])))
	case driver.UniformFloat:
		gl.Uniform1fv(loc, n, f)
	case driver.UniformVec2:
		gl.Uniform2fv(loc, n, f)
	case driver.UniformVec3:
		gl.Uniform3fv(loc, n, f)
	case driver.UniformVec4:
		gl.Uniform4fv(loc, n, f)
	case driver.UniformMat4:
		gl.UniformMatrix4fv(loc, n, false, f)
	case driver.UniformMat4x3:
		gl.UniformMatrix4x3fv(loc, n, false, f)
	case driver.UniformMat3x4:
		gl.UniformMatrix3x4fv(loc, n, false, f)
	}
}

func (d *Device) UniformBlockBinding(id driver.ProgramID, block string, binding int) {
	idx := gl.GetUniformBlockIndex(uint32(id), gl.Str(block+"\x00"))
	if idx == gl.INVALID_INDEX {
		return
	}
	gl.UniformBlockBinding(uint32(id), idx, uint32(binding))
}

func (d *Device) AttribLocation(id driver.ProgramID, name string) int {
	return int(gl.GetAttribLocation(uint32(id), gl.Str(name+"\x00")))
}

func (d *Device) CreateFramebuffer() (driver.FramebufferID, error) {
	var f uint32
	gl.CreateFramebuffers(1, &f)
	if f == 0 {
		return 0, errors.New("gl: framebuffer creation failed")
	}
	return driver.FramebufferID(f), nil
}

func (d *Device) DeleteFramebuffer(id driver.FramebufferID) {
	if id == 0 {
		return
	}
	f := uint32(id)
	gl.DeleteFramebuffers(1, &f)
	delete(d.colorCount, id)
}

// syncDrawBuffers points the framebuffer's draw buffer list at its attached
// color slots.
func (d *Device) syncDrawBuffers(fb driver.FramebufferID) {
	n := d.colorCount[fb]
	if n == 0 {
		gl.NamedFramebufferDrawBuffer(uint32(fb), gl.NONE)
		return
	}
	bufs := make([]uint32, n)
	for i := range bufs {
		bufs[i] = uint32(gl.COLOR_ATTACHMENT0 + i)
	}
	gl.NamedFramebufferDrawBuffers(uint32(fb), int32(n), &bufs[0])
}

func (d *Device) AttachColor(fb driver.FramebufferID, index int, tex driver.TextureID) {
	gl.NamedFramebufferTexture(uint32(fb), uint32(gl.COLOR_ATTACHMENT0+index), uint32(tex), 0)
	if index+1 > d.colorCount[fb] {
		d.colorCount[fb] = index + 1
	}
	d.syncDrawBuffers(fb)
}

func (d *Device) AttachDepth(fb driver.FramebufferID, tex driver.TextureID, format driver.TextureFormat) {
	attachment := uint32(gl.DEPTH_ATTACHMENT)
	if format == driver.FormatD24S8 {
		attachment = gl.DEPTH_STENCIL_ATTACHMENT
	}
	gl.NamedFramebufferTexture(uint32(fb), attachment, uint32(tex), 0)
}

func (d *Device) DetachColor(fb driver.FramebufferID, index int) {
	gl.NamedFramebufferTexture(uint32(fb), uint32(gl.COLOR_ATTACHMENT0+index), 0, 0)
	if index < d.colorCount[fb] {
		d.colorCount[fb] = index
		d.syncDrawBuffers(fb)
	}
}

func (d *Device) DetachDepth(fb driver.FramebufferID) {
	gl.NamedFramebufferTexture(uint32(fb), gl.DEPTH_ATTACHMENT, 0, 0)
	gl.NamedFramebufferTexture(uint32(fb), gl.STENCIL_ATTACHMENT, 0, 0)
}

func (d *Device) MaxColorAttachments() int { return d.maxColorAttachments }

func (d *Device) ValidateFramebuffer(fb driver.FramebufferID) error {
	status := gl.CheckNamedFramebufferStatus(uint32(fb), gl.FRAMEBUFFER)
	if status != gl.FRAMEBUFFER_COMPLETE {
		return fmt.Errorf("gl: framebuffer status 0x%04x", status)
	}
	return nil
}

func setSRGB(srgb bool) {
	if srgb {
		gl.Enable(gl.FRAMEBUFFER_SRGB)
		return
	}
	gl.Disable(gl.FRAMEBUFFER_SRGB)
}

func (d *Device) BindFramebuffer(fb driver.FramebufferID, srgb bool) {
	setSRGB(srgb)
	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(fb))
}

func (d *Device) BindDefaultFramebuffer(srgb bool) {
	setSRGB(srgb)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

func (d *Device) CreateQuery() (driver.QueryID, error) {
	var q uint32
	gl.GenQueries(1, &q)
	if q == 0 {
		return 0, errors.New("gl: query creation failed")
	}
	return driver.QueryID(q), nil
}

func (d *Device) DeleteQuery(id driver.QueryID) {
	if id == 0 {
		return
	}
	q := uint32(id)
	gl.DeleteQueries(1, &q)
}

func (d *Device) QueryTimestamp(id driver.QueryID) {
	gl.QueryCounter(uint32(id), gl.TIMESTAMP)
}

func (d *Device) QueryResult(id driver.QueryID) uint64 {
	var r uint64
	gl.GetQueryObjectui64v(uint32(id), gl.QUERY_RESULT, &r)
	return r
}

func (d *Device) Viewport(x, y, w, h int) {
	gl.Viewport(int32(x), int32(y), int32(w), int32(h))
}

func (d *Device) Scissor(x, y, w, h int) {
	gl.Scissor(int32(x), int32(y), int32(w), int32(h))
}

func (d *Device) SetBlending(enabled bool) {
	if !enabled {
		gl.Disable(gl.BLEND)
		return
	}
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

func (d *Device) SetDepthTest(enabled bool) {
	if !enabled {
		gl.Disable(gl.DEPTH_TEST)
		return
	}
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
}

func (d *Device) SetCull(mode driver.CullMode) {
	switch mode {
	case driver.CullFront:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.FRONT)
	case driver.CullBack:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
	default:
		gl.Disable(gl.CULL_FACE)
	}
}

func (d *Device) SetWireframe(enabled bool) {
	if enabled {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		return
	}
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
}

func (d *Device) Clear(clearColor, clearDepth bool, color [4]float32, depth float32) {
	var mask uint32
	if clearColor {
		gl.ClearColor(color[0], color[1], color[2], color[3])
		mask |= gl.COLOR_BUFFER_BIT
	}
	if clearDepth {
		gl.DepthMask(true)
		gl.ClearDepth(float64(depth))
		mask |= gl.DEPTH_BUFFER_BIT
	}
	if mask != 0 {
		gl.Clear(mask)
	}
}

func primitive(mode driver.Primitive) uint32 {
	switch mode {
	case driver.TriangleStrip:
		return gl.TRIANGLE_STRIP
	case driver.Lines:
		return gl.LINES
	default:
		return gl.TRIANGLES
	}
}

func (d *Device) DrawArrays(mode driver.Primitive, first, count int) {
	gl.DrawArrays(primitive(mode), int32(first), int32(count))
}

func (d *Device) DrawElements(mode driver.Primitive, offset, count int) {
	gl.DrawElementsWithOffset(primitive(mode), int32(count), gl.UNSIGNED_SHORT, uintptr(offset))
}

func (d *Device) PushDebugGroup(name string) {
	gl.PushDebugGroup(gl.DEBUG_SOURCE_APPLICATION, 0, int32(len(name)), gl.Str(name+"\x00"))
}

func (d *Device) PopDebugGroup() {
	gl.PopDebugGroup()
}

func (d *Device) OriginBottomLeft() bool { return true }

func (d *Device) HomogeneousDepth() bool { return false }
