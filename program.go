package gfx

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/glsl"

	"github.com/gogpu/gfx/driver"
)

// ShaderLang identifies the source language of one shader stage.
type ShaderLang int

const (
	// LangGLSL passes the source to the driver as-is.
	LangGLSL ShaderLang = iota
	// LangWGSL translates the source to GLSL through naga before the driver
	// sees it.
	LangWGSL
)

// ShaderDesc is one stage of a program under construction.
type ShaderDesc struct {
	Type   driver.ShaderType
	Source string
	Lang   ShaderLang

	// EntryPoint names the WGSL entry point to compile. Empty selects the
	// first entry point in the module. Ignored for GLSL.
	EntryPoint string
}

// ProgramConfig describes a program to create. Name appears in diagnostics
// only.
type ProgramConfig struct {
	Name    string
	Shaders []ShaderDesc
}

const maxShadersPerProgram = 16

// CreateProgram compiles, links and introspects a program. On success the
// binding table of the program maps every active uniform (up to
// maxProgramUniforms) to an interned uniform handle, so UseProgram can push
// cached values. On any failure no program object survives and the invalid
// handle is returned.
func (c *Context) CreateProgram(cfg ProgramConfig) (ProgramHandle, error) {
	if err := c.checkThread("CreateProgram"); err != nil {
		return ProgramHandle{}, err
	}
	if len(cfg.Shaders) > maxShadersPerProgram {
		slogger().Error("gfx: too many shaders per program", "program", cfg.Name, "count", len(cfg.Shaders))
		return ProgramHandle{}, fmt.Errorf("gfx: program %q has %d shaders, max %d", cfg.Name, len(cfg.Shaders), maxShadersPerProgram)
	}
	c.mu.Lock()
	full := c.programs.isFull()
	c.mu.Unlock()
	if full {
		slogger().Error("gfx: out of program slots", "capacity", MaxPrograms, "program", cfg.Name)
		return ProgramHandle{}, fmt.Errorf("%w: program %q", ErrPoolExhausted, cfg.Name)
	}

	sources := make([]driver.ShaderSource, 0, len(cfg.Shaders))
	for _, sh := range cfg.Shaders {
		src := sh.Source
		if sh.Lang == LangWGSL {
			var err error
			src, err = translateWGSL(sh)
			if err != nil {
				slogger().Error("gfx: shader translation failed",
					"program", cfg.Name, "stage", sh.Type.String(), "err", err)
				return ProgramHandle{}, err
			}
		}
		sources = append(sources, driver.ShaderSource{Type: sh.Type, Source: src})
	}

	id, err := c.dev.CreateProgram(sources)
	if err != nil {
		slogger().Error("gfx: program link failed", "program", cfg.Name, "err", err)
		return ProgramHandle{}, fmt.Errorf("%w: program %q: %w", ErrDriverFailure, cfg.Name, err)
	}

	c.mu.Lock()
	index, gen, ok := c.programs.alloc()
	c.mu.Unlock()
	if !ok {
		c.dev.DeleteProgram(id)
		slogger().Error("gfx: out of program slots", "capacity", MaxPrograms, "program", cfg.Name)
		return ProgramHandle{}, fmt.Errorf("%w: program %q", ErrPoolExhausted, cfg.Name)
	}
	h := ProgramHandle{makeHandle(index, gen)}
	rec, _ := c.programs.get(index, gen)
	rec.id = id

	actives, err := c.dev.ActiveUniforms(id)
	if err != nil {
		c.teardownProgram(h, rec)
		slogger().Error("gfx: uniform enumeration failed", "program", cfg.Name, "err", err)
		return ProgramHandle{}, fmt.Errorf("%w: program %q: %w", ErrDriverFailure, cfg.Name, err)
	}
	if len(actives) > maxProgramUniforms {
		slogger().Warn("gfx: too many uniforms per program, not all will be used",
			"program", cfg.Name, "count", len(actives), "max", maxProgramUniforms)
		actives = actives[:maxProgramUniforms]
	}
	for _, u := range actives {
		if u.Location < 0 {
			continue
		}
		uh, err := c.AllocUniform(u.Name, u.Type, u.Count)
		if err != nil {
			// The program still works; this uniform just cannot be cached.
			continue
		}
		rec.uniforms[rec.uniformCount] = programUniform{location: u.Location, uniform: uh}
		rec.uniformCount++
	}
	return h, nil
}

// translateWGSL lowers one WGSL stage to GLSL 330 core.
func translateWGSL(sh ShaderDesc) (string, error) {
	ast, err := naga.Parse(sh.Source)
	if err != nil {
		return "", fmt.Errorf("gfx: parse %s: %w", sh.Type, err)
	}
	module, err := naga.LowerWithSource(ast, sh.Source)
	if err != nil {
		return "", fmt.Errorf("gfx: lower %s: %w", sh.Type, err)
	}
	out, _, err := glsl.Compile(module, glsl.Options{
		LangVersion: glsl.Version330,
		EntryPoint:  sh.EntryPoint,
	})
	if err != nil {
		return "", fmt.Errorf("gfx: translate %s: %w", sh.Type, err)
	}
	return out, nil
}

func (c *Context) programRecord(h ProgramHandle) (*programRecord, error) {
	if !h.Valid() {
		return nil, ErrInvalidHandle
	}
	return c.programs.get(h.h.index(), h.h.gen())
}

// UseProgram makes a program current and re-pushes every cached uniform
// value of its binding table through the driver. There is no dirty tracking;
// the push is unconditional and write-heavy but always correct. The invalid
// handle is a no-op.
func (c *Context) UseProgram(h ProgramHandle) error {
	if err := c.checkThread("UseProgram"); err != nil {
		return err
	}
	if !h.Valid() {
		return nil
	}
	rec, err := c.programRecord(h)
	if err != nil {
		return err
	}
	c.dev.UseProgram(rec.id)
	for i := 0; i < rec.uniformCount; i++ {
		pu := rec.uniforms[i]
		u, err := c.uniformRecord(pu.uniform)
		if err != nil {
			continue
		}
		c.dev.ApplyUniform(pu.location, u.typ, u.count, u.data)
	}
	return nil
}

// UniformLocation returns the driver location of an interned uniform within
// a program's binding table, or -1 when the program does not use it.
func (c *Context) UniformLocation(p ProgramHandle, u UniformHandle) int {
	rec, err := c.programRecord(p)
	if err != nil {
		return -1
	}
	for i := 0; i < rec.uniformCount; i++ {
		if rec.uniforms[i].uniform == u {
			return rec.uniforms[i].location
		}
	}
	return -1
}

// UniformBlockBinding assigns a named uniform block to a buffer slot.
func (c *Context) UniformBlockBinding(h ProgramHandle, block string, binding int) error {
	if err := c.checkThread("UniformBlockBinding"); err != nil {
		return err
	}
	rec, err := c.programRecord(h)
	if err != nil {
		return err
	}
	c.dev.UniformBlockBinding(rec.id, block, binding)
	return nil
}

// AttribLocation reports the location of a named vertex attribute, or a
// negative value when the program has no such attribute.
func (c *Context) AttribLocation(h ProgramHandle, name string) (int, error) {
	if err := c.checkThread("AttribLocation"); err != nil {
		return -1, err
	}
	rec, err := c.programRecord(h)
	if err != nil {
		return -1, err
	}
	return c.dev.AttribLocation(rec.id, name), nil
}

// DestroyProgram tears down the driver object and releases the handle slot.
// Interned uniforms referenced by the binding table stay alive; they are
// shared with other programs.
func (c *Context) DestroyProgram(h ProgramHandle) error {
	if err := c.checkThread("DestroyProgram"); err != nil {
		return err
	}
	rec, err := c.programRecord(h)
	if err != nil {
		return err
	}
	c.teardownProgram(h, rec)
	return nil
}

func (c *Context) teardownProgram(h ProgramHandle, rec *programRecord) {
	c.dev.DeleteProgram(rec.id)
	c.mu.Lock()
	c.programs.dealloc(h.h.index())
	c.mu.Unlock()
}
