package gfx

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gogpu/gfx/driver"
)

const (
	testVertexSource   = "#version 330 core\nvoid main() { gl_Position = vec4(0); }\n"
	testFragmentSource = "#version 330 core\nout vec4 o; void main() { o = vec4(1); }\n"
)

// mustCreateProgram links a two-stage GLSL program through the recording
// device.
func mustCreateProgram(t *testing.T, ctx *Context, name string) ProgramHandle {
	t.Helper()
	h, err := ctx.CreateProgram(ProgramConfig{
		Name: name,
		Shaders: []ShaderDesc{
			{Type: driver.ShaderVertex, Source: testVertexSource},
			{Type: driver.ShaderFragment, Source: testFragmentSource},
		},
	})
	if err != nil {
		t.Fatalf("CreateProgram(%q) = %v", name, err)
	}
	return h
}

func TestCreateProgramBindsUniforms(t *testing.T) {
	ctx, dev := newTestContext(t)
	dev.ActiveUniformList = []driver.ActiveUniform{
		{Name: "u_model", Type: driver.UniformMat4, Count: 1, Location: 0},
		{Name: "u_albedo", Type: driver.UniformInt, Count: 1, Location: 4},
	}

	prog := mustCreateProgram(t, ctx, "pbr")

	// Both uniforms were interned and mapped to their locations.
	u, err := ctx.AllocUniform("u_model", driver.UniformMat4, 1)
	if err != nil {
		t.Fatalf("AllocUniform() = %v", err)
	}
	if loc := ctx.UniformLocation(prog, u); loc != 0 {
		t.Errorf("UniformLocation(u_model) = %d, want 0", loc)
	}
	sampler, err := ctx.AllocUniform("u_albedo", driver.UniformInt, 1)
	if err != nil {
		t.Fatalf("AllocUniform(sampler) = %v", err)
	}
	if loc := ctx.UniformLocation(prog, sampler); loc != 4 {
		t.Errorf("UniformLocation(u_albedo) = %d, want 4", loc)
	}
}

func TestCreateProgramUniformCap(t *testing.T) {
	ctx, dev := newTestContext(t)
	for i := 0; i < maxProgramUniforms+8; i++ {
		dev.ActiveUniformList = append(dev.ActiveUniformList, driver.ActiveUniform{
			Name: fmt.Sprintf("u_%d", i), Type: driver.UniformFloat, Count: 1, Location: i,
		})
	}

	prog := mustCreateProgram(t, ctx, "fat")
	rec, err := ctx.programRecord(prog)
	if err != nil {
		t.Fatalf("programRecord() = %v", err)
	}
	if rec.uniformCount != maxProgramUniforms {
		t.Errorf("uniformCount = %d, want %d", rec.uniformCount, maxProgramUniforms)
	}
}

func TestCreateProgramLinkFailure(t *testing.T) {
	ctx, dev := newTestContext(t)
	dev.FailCreateProgram = true

	_, err := ctx.CreateProgram(ProgramConfig{
		Name:    "broken",
		Shaders: []ShaderDesc{{Type: driver.ShaderVertex, Source: testVertexSource}},
	})
	if !errors.Is(err, ErrDriverFailure) {
		t.Fatalf("CreateProgram() = %v, want ErrDriverFailure", err)
	}
	if dev.LivePrograms != 0 {
		t.Errorf("LivePrograms = %d after failed link, want 0", dev.LivePrograms)
	}
}

func TestCreateProgramWGSLParseError(t *testing.T) {
	ctx, _ := newTestContext(t)
	_, err := ctx.CreateProgram(ProgramConfig{
		Name: "bad-wgsl",
		Shaders: []ShaderDesc{
			{Type: driver.ShaderVertex, Source: "not wgsl at all {", Lang: LangWGSL},
		},
	})
	if err == nil {
		t.Fatal("CreateProgram with invalid WGSL succeeded")
	}
}

func TestUseProgramInvalidIsNoOp(t *testing.T) {
	ctx, dev := newTestContext(t)
	if err := ctx.UseProgram(ProgramHandle{}); err != nil {
		t.Fatalf("UseProgram(invalid) = %v", err)
	}
	if n := dev.CallCount("UseProgram"); n != 0 {
		t.Errorf("UseProgram calls = %d, want 0", n)
	}
}

func TestUseProgramPushesCachedUniforms(t *testing.T) {
	ctx, dev := newTestContext(t)
	dev.ActiveUniformList = []driver.ActiveUniform{
		{Name: "u_a", Type: driver.UniformVec4, Count: 1, Location: 1},
		{Name: "u_b", Type: driver.UniformFloat, Count: 2, Location: 2},
	}
	prog := mustCreateProgram(t, ctx, "push")

	dev.Reset()
	if err := ctx.UseProgram(prog); err != nil {
		t.Fatalf("UseProgram() = %v", err)
	}
	if n := dev.CallCount("ApplyUniform"); n != 2 {
		t.Errorf("ApplyUniform calls = %d, want 2\ncalls: %v", n, dev.Calls)
	}
}

func TestDestroyProgram(t *testing.T) {
	ctx, dev := newTestContext(t)
	prog := mustCreateProgram(t, ctx, "gone")

	if err := ctx.DestroyProgram(prog); err != nil {
		t.Fatalf("DestroyProgram() = %v", err)
	}
	if dev.LivePrograms != 0 {
		t.Errorf("LivePrograms = %d, want 0", dev.LivePrograms)
	}
	if err := ctx.UseProgram(prog); !errors.Is(err, ErrStaleHandle) {
		t.Errorf("UseProgram after destroy = %v, want ErrStaleHandle", err)
	}
}

func TestAttribLocation(t *testing.T) {
	ctx, dev := newTestContext(t)
	dev.AttribLocations = map[string]int{"a_position": 0, "a_uv": 2}
	prog := mustCreateProgram(t, ctx, "attribs")

	loc, err := ctx.AttribLocation(prog, "a_uv")
	if err != nil {
		t.Fatalf("AttribLocation() = %v", err)
	}
	if loc != 2 {
		t.Errorf("AttribLocation(a_uv) = %d, want 2", loc)
	}
	loc, err = ctx.AttribLocation(prog, "a_missing")
	if err != nil {
		t.Fatalf("AttribLocation(missing) = %v", err)
	}
	if loc >= 0 {
		t.Errorf("AttribLocation(missing) = %d, want negative", loc)
	}
}
