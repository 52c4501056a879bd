package gfx

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"math"

	"github.com/gogpu/gfx/driver"
)

// AllocUniform interns a uniform by name. The first declaration of a name
// allocates a pool slot and a zero-initialized value buffer of
// count x type-size bytes; every later declaration of the same name returns
// the existing handle, so uniforms shared across shader stages and programs
// share one value.
//
// Redeclaring a name with a different type or count keeps the original
// storage. That sharing is deliberate, but the mismatch is reported with a
// warning rather than ignored.
//
// Safe to call from any goroutine.
func (c *Context) AllocUniform(name string, typ driver.UniformType, count int) (UniformHandle, error) {
	key := crc32.ChecksumIEEE([]byte(name))

	c.mu.Lock()
	defer c.mu.Unlock()

	if h, ok := c.uniformNames[key]; ok {
		if rec, err := c.uniforms.get(h.h.index(), h.h.gen()); err == nil {
			if rec.typ != typ || rec.count != count {
				slogger().Warn("gfx: uniform redeclared with different type",
					"name", name,
					"declared", fmt.Sprintf("%v[%d]", rec.typ, rec.count),
					"requested", fmt.Sprintf("%v[%d]", typ, count))
			}
		}
		return h, nil
	}

	index, gen, ok := c.uniforms.alloc()
	if !ok {
		slogger().Error("gfx: out of uniform slots", "capacity", MaxUniforms, "name", name)
		return UniformHandle{}, fmt.Errorf("%w: uniform %q", ErrPoolExhausted, name)
	}
	h := UniformHandle{makeHandle(index, gen)}
	rec, _ := c.uniforms.get(index, gen)
	rec.name = name
	rec.typ = typ
	rec.count = count
	rec.data = make([]byte, count*typ.Size())
	c.uniformNames[key] = h
	return h, nil
}

func (c *Context) uniformRecord(h UniformHandle) (*uniformRecord, error) {
	if !h.Valid() {
		return nil, ErrInvalidHandle
	}
	return c.uniforms.get(h.h.index(), h.h.gen())
}

// setUniform validates the stored type and copies one element's worth of
// encoded data into the cached value. The driver sees the new value on the
// next UseProgram.
func (c *Context) setUniform(op string, h UniformHandle, typ driver.UniformType, src []byte) error {
	if err := c.checkThread(op); err != nil {
		return err
	}
	rec, err := c.uniformRecord(h)
	if err != nil {
		return err
	}
	if rec.typ != typ {
		return fmt.Errorf("%w: %s on %v uniform %q", ErrTypeMismatch, op, rec.typ, rec.name)
	}
	copy(rec.data, src)
	return nil
}

func encodeFloats(vs []float32) []byte {
	out := make([]byte, len(vs)*4)
	for i, v := range vs {
		binary.NativeEndian.PutUint32(out[i*4:], math.Float32bits(v))
	}
	return out
}

// SetUniform1i sets an int uniform.
func (c *Context) SetUniform1i(h UniformHandle, v int32) error {
	var buf [4]byte
	binary.NativeEndian.PutUint32(buf[:], uint32(v))
	return c.setUniform("SetUniform1i", h, driver.UniformInt, buf[:])
}

// SetUniform1f sets a float uniform.
func (c *Context) SetUniform1f(h UniformHandle, v float32) error {
	return c.setUniform("SetUniform1f", h, driver.UniformFloat, encodeFloats([]float32{v}))
}

// SetUniform2f sets a vec2 uniform.
func (c *Context) SetUniform2f(h UniformHandle, v [2]float32) error {
	return c.setUniform("SetUniform2f", h, driver.UniformVec2, encodeFloats(v[:]))
}

// SetUniform3f sets a vec3 uniform.
func (c *Context) SetUniform3f(h UniformHandle, v [3]float32) error {
	return c.setUniform("SetUniform3f", h, driver.UniformVec3, encodeFloats(v[:]))
}

// SetUniform4f sets a vec4 uniform.
func (c *Context) SetUniform4f(h UniformHandle, v [4]float32) error {
	return c.setUniform("SetUniform4f", h, driver.UniformVec4, encodeFloats(v[:]))
}

// SetUniformMatrix4f sets a mat4 uniform (column-major).
func (c *Context) SetUniformMatrix4f(h UniformHandle, v [16]float32) error {
	return c.setUniform("SetUniformMatrix4f", h, driver.UniformMat4, encodeFloats(v[:]))
}

// SetUniformMatrix4x3f sets a mat4x3 uniform.
func (c *Context) SetUniformMatrix4x3f(h UniformHandle, v [12]float32) error {
	return c.setUniform("SetUniformMatrix4x3f", h, driver.UniformMat4x3, encodeFloats(v[:]))
}

// SetUniformMatrix3x4f sets a mat3x4 uniform.
func (c *Context) SetUniformMatrix3x4f(h UniformHandle, v [12]float32) error {
	return c.setUniform("SetUniformMatrix3x4f", h, driver.UniformMat3x4, encodeFloats(v[:]))
}
