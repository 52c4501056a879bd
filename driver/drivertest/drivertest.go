// Package drivertest provides an in-memory driver.Device for tests.
//
// The Device records every call it receives and hands out sequential
// identifiers, so tests can assert on the exact driver traffic a gfx
// operation produces without a GPU. Individual creation calls can be made to
// fail through the Fail* fields.
package drivertest

import (
	"errors"
	"fmt"

	"github.com/gogpu/gfx/driver"
)

// ErrForcedFailure is returned by creation calls armed through a Fail*
// field.
var ErrForcedFailure = errors.New("drivertest: forced failure")

// Upload records one UploadMip or UploadCompressedMip call.
type Upload struct {
	Texture    driver.TextureID
	Face       int
	Level      int
	Format     driver.TextureFormat
	Width      int
	Height     int
	Size       int
	Compressed bool
}

// Device implements driver.Device in memory.
//
// Every method appends a short description of the call to Calls. Zero value
// is ready to use.
type Device struct {
	Calls   []string
	Uploads []Upload

	// Uniforms reported by ActiveUniforms for any program.
	ActiveUniformList []driver.ActiveUniform

	// AttribLocations answers AttribLocation lookups; unknown names
	// return -1.
	AttribLocations map[string]int

	// Forced failures for fallible calls.
	FailCreateBuffer      bool
	FailCreateTexture     bool
	FailCreateProgram     bool
	FailCreateFramebuffer bool
	FailCreateQuery       bool
	FailUpload            bool
	FailValidate          bool

	// Live object counts, incremented on create and decremented on delete.
	LiveBuffers      int
	LiveTextures     int
	LivePrograms     int
	LiveFramebuffers int
	LiveQueries      int

	nextID uint32
}

var _ driver.Device = (*Device)(nil)

func (d *Device) record(format string, args ...any) {
	d.Calls = append(d.Calls, fmt.Sprintf(format, args...))
}

func (d *Device) id() uint32 {
	d.nextID++
	return d.nextID
}

// CallCount reports how many recorded calls start with prefix.
func (d *Device) CallCount(prefix string) int {
	n := 0
	for _, c := range d.Calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

// Reset clears the call log and upload record but keeps live counts.
func (d *Device) Reset() {
	d.Calls = nil
	d.Uploads = nil
}

func (d *Device) CreateBuffer(size int, data []byte) (driver.BufferID, error) {
	if d.FailCreateBuffer {
		return 0, ErrForcedFailure
	}
	id := driver.BufferID(d.id())
	d.LiveBuffers++
	d.record("CreateBuffer(%d) = %d", size, id)
	return id, nil
}

func (d *Device) UpdateBuffer(id driver.BufferID, offset int, data []byte) error {
	d.record("UpdateBuffer(%d, %d, %d)", id, offset, len(data))
	return nil
}

func (d *Device) DeleteBuffer(id driver.BufferID) {
	if id == 0 {
		return
	}
	d.LiveBuffers--
	d.record("DeleteBuffer(%d)", id)
}

func (d *Device) BindVertexBuffer(id driver.BufferID) {
	d.record("BindVertexBuffer(%d)", id)
}

func (d *Device) BindIndexBuffer(id driver.BufferID) {
	d.record("BindIndexBuffer(%d)", id)
}

func (d *Device) BindUniformBuffer(slot int, id driver.BufferID, offset, size int) {
	d.record("BindUniformBuffer(%d, %d, %d, %d)", slot, id, offset, size)
}

func (d *Device) SetVertexAttribute(slot, components int, typ driver.AttributeType, normalized, asInt bool, stride, offset int) {
	d.record("SetVertexAttribute(%d, %d, %d, %d, %d)", slot, components, typ, stride, offset)
}

func (d *Device) DisableVertexAttribute(slot int) {
	d.record("DisableVertexAttribute(%d)", slot)
}

func (d *Device) MaxVertexAttributes() int { return 16 }

func (d *Device) CreateTexture() (driver.TextureID, error) {
	if d.FailCreateTexture {
		return 0, ErrForcedFailure
	}
	id := driver.TextureID(d.id())
	d.LiveTextures++
	d.record("CreateTexture() = %d", id)
	return id, nil
}

func (d *Device) DeleteTexture(id driver.TextureID) {
	if id == 0 {
		return
	}
	d.LiveTextures--
	d.record("DeleteTexture(%d)", id)
}

func (d *Device) BindTexture(unit int, id driver.TextureID, cube bool) {
	d.record("BindTexture(%d, %d, %t)", unit, id, cube)
}

func (d *Device) UploadMip(id driver.TextureID, face, level int, format driver.TextureFormat, width, height int, data []byte) error {
	if d.FailUpload {
		return ErrForcedFailure
	}
	d.record("UploadMip(%d, %d, %d, %s, %dx%d)", id, face, level, format, width, height)
	d.Uploads = append(d.Uploads, Upload{
		Texture: id, Face: face, Level: level, Format: format,
		Width: width, Height: height, Size: len(data),
	})
	return nil
}

func (d *Device) UploadCompressedMip(id driver.TextureID, face, level int, format driver.TextureFormat, width, height, size int, data []byte) error {
	if d.FailUpload {
		return ErrForcedFailure
	}
	d.record("UploadCompressedMip(%d, %d, %d, %s, %dx%d, %d)", id, face, level, format, width, height, size)
	d.Uploads = append(d.Uploads, Upload{
		Texture: id, Face: face, Level: level, Format: format,
		Width: width, Height: height, Size: size, Compressed: true,
	})
	return nil
}

func (d *Device) SetTextureParams(id driver.TextureID, cube bool, mipCount int, repeat bool) {
	d.record("SetTextureParams(%d, %t, %d, %t)", id, cube, mipCount, repeat)
}

func (d *Device) ReadTexturePixels(id driver.TextureID, buf []byte) error {
	d.record("ReadTexturePixels(%d, %d)", id, len(buf))
	return nil
}

func (d *Device) CreateProgram(shaders []driver.ShaderSource) (driver.ProgramID, error) {
	if d.FailCreateProgram {
		return 0, ErrForcedFailure
	}
	id := driver.ProgramID(d.id())
	d.LivePrograms++
	d.record("CreateProgram(%d stages) = %d", len(shaders), id)
	return id, nil
}

func (d *Device) DeleteProgram(id driver.ProgramID) {
	if id == 0 {
		return
	}
	d.LivePrograms--
	d.record("DeleteProgram(%d)", id)
}

func (d *Device) UseProgram(id driver.ProgramID) {
	d.record("UseProgram(%d)", id)
}

func (d *Device) ActiveUniforms(id driver.ProgramID) ([]driver.ActiveUniform, error) {
	d.record("ActiveUniforms(%d)", id)
	return d.ActiveUniformList, nil
}

func (d *Device) ApplyUniform(location int, typ driver.UniformType, count int, data []byte) {
	d.record("ApplyUniform(%d, %s, %d)", location, typ, count)
}

func (d *Device) UniformBlockBinding(id driver.ProgramID, block string, binding int) {
	d.record("UniformBlockBinding(%d, %s, %d)", id, block, binding)
}

func (d *Device) AttribLocation(id driver.ProgramID, name string) int {
	d.record("AttribLocation(%d, %s)", id, name)
	if loc, ok := d.AttribLocations[name]; ok {
		return loc
	}
	return -1
}

func (d *Device) CreateFramebuffer() (driver.FramebufferID, error) {
	if d.FailCreateFramebuffer {
		return 0, ErrForcedFailure
	}
	id := driver.FramebufferID(d.id())
	d.LiveFramebuffers++
	d.record("CreateFramebuffer() = %d", id)
	return id, nil
}

func (d *Device) DeleteFramebuffer(id driver.FramebufferID) {
	if id == 0 {
		return
	}
	d.LiveFramebuffers--
	d.record("DeleteFramebuffer(%d)", id)
}

func (d *Device) AttachColor(fb driver.FramebufferID, index int, tex driver.TextureID) {
	d.record("AttachColor(%d, %d, %d)", fb, index, tex)
}

func (d *Device) AttachDepth(fb driver.FramebufferID, tex driver.TextureID, format driver.TextureFormat) {
	d.record("AttachDepth(%d, %d, %s)", fb, tex, format)
}

func (d *Device) DetachColor(fb driver.FramebufferID, index int) {
	d.record("DetachColor(%d, %d)", fb, index)
}

func (d *Device) DetachDepth(fb driver.FramebufferID) {
	d.record("DetachDepth(%d)", fb)
}

func (d *Device) MaxColorAttachments() int { return 8 }

func (d *Device) ValidateFramebuffer(fb driver.FramebufferID) error {
	d.record("ValidateFramebuffer(%d)", fb)
	if d.FailValidate {
		return ErrForcedFailure
	}
	return nil
}

func (d *Device) BindFramebuffer(fb driver.FramebufferID, srgb bool) {
	d.record("BindFramebuffer(%d, %t)", fb, srgb)
}

func (d *Device) BindDefaultFramebuffer(srgb bool) {
	d.record("BindDefaultFramebuffer(%t)", srgb)
}

func (d *Device) CreateQuery() (driver.QueryID, error) {
	if d.FailCreateQuery {
		return 0, ErrForcedFailure
	}
	id := driver.QueryID(d.id())
	d.LiveQueries++
	d.record("CreateQuery() = %d", id)
	return id, nil
}

func (d *Device) DeleteQuery(id driver.QueryID) {
	if id == 0 {
		return
	}
	d.LiveQueries--
	d.record("DeleteQuery(%d)", id)
}

func (d *Device) QueryTimestamp(id driver.QueryID) {
	d.record("QueryTimestamp(%d)", id)
}

func (d *Device) QueryResult(id driver.QueryID) uint64 {
	d.record("QueryResult(%d)", id)
	return 0
}

func (d *Device) Viewport(x, y, w, h int) {
	d.record("Viewport(%d, %d, %d, %d)", x, y, w, h)
}

func (d *Device) Scissor(x, y, w, h int) {
	d.record("Scissor(%d, %d, %d, %d)", x, y, w, h)
}

func (d *Device) SetBlending(enabled bool) {
	d.record("SetBlending(%t)", enabled)
}

func (d *Device) SetDepthTest(enabled bool) {
	d.record("SetDepthTest(%t)", enabled)
}

func (d *Device) SetCull(mode driver.CullMode) {
	d.record("SetCull(%d)", mode)
}

func (d *Device) SetWireframe(enabled bool) {
	d.record("SetWireframe(%t)", enabled)
}

func (d *Device) Clear(clearColor, clearDepth bool, color [4]float32, depth float32) {
	d.record("Clear(%t, %t)", clearColor, clearDepth)
}

func (d *Device) DrawArrays(mode driver.Primitive, first, count int) {
	d.record("DrawArrays(%d, %d, %d)", mode, first, count)
}

func (d *Device) DrawElements(mode driver.Primitive, offset, count int) {
	d.record("DrawElements(%d, %d, %d)", mode, offset, count)
}

func (d *Device) PushDebugGroup(name string) {
	d.record("PushDebugGroup(%s)", name)
}

func (d *Device) PopDebugGroup() {
	d.record("PopDebugGroup()")
}

func (d *Device) OriginBottomLeft() bool { return true }

func (d *Device) HomogeneousDepth() bool { return false }
