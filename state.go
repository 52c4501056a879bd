package gfx

import "github.com/gogpu/gfx/driver"

// StateFlags selects the fixed-function raster state applied by SetState.
// Flags not set fall back to their disabled default.
type StateFlags uint32

const (
	// StateDepthTest enables the depth test with less-or-equal comparison.
	StateDepthTest StateFlags = 1 << iota
	// StateCullFront culls front-facing triangles.
	StateCullFront
	// StateCullBack culls back-facing triangles.
	StateCullBack
	// StateWireframe rasterizes triangles as lines.
	StateWireframe
)

// ClearFlags selects which aspects Clear writes.
type ClearFlags uint32

const (
	ClearColor ClearFlags = 1 << iota
	ClearDepth
)

// Viewport sets the rasterization viewport in pixels.
func (c *Context) Viewport(x, y, width, height int) error {
	if err := c.checkThread("Viewport"); err != nil {
		return err
	}
	c.dev.Viewport(x, y, width, height)
	return nil
}

// Scissor restricts rendering to a pixel rectangle.
func (c *Context) Scissor(x, y, width, height int) error {
	if err := c.checkThread("Scissor"); err != nil {
		return err
	}
	c.dev.Scissor(x, y, width, height)
	return nil
}

// Blending toggles alpha blending. When enabled the blend function is
// source-alpha, one-minus-source-alpha; there is no other blend mode.
func (c *Context) Blending(enable bool) error {
	if err := c.checkThread("Blending"); err != nil {
		return err
	}
	c.dev.SetBlending(enable)
	return nil
}

// SetState applies depth test, culling and fill mode in one call. Setting
// both cull flags selects back-face culling.
func (c *Context) SetState(flags StateFlags) error {
	if err := c.checkThread("SetState"); err != nil {
		return err
	}
	c.dev.SetDepthTest(flags&StateDepthTest != 0)
	switch {
	case flags&StateCullBack != 0:
		c.dev.SetCull(driver.CullBack)
	case flags&StateCullFront != 0:
		c.dev.SetCull(driver.CullFront)
	default:
		c.dev.SetCull(driver.CullNone)
	}
	c.dev.SetWireframe(flags&StateWireframe != 0)
	return nil
}

// Clear writes the given color and depth to the bound render target. The
// current program binding does not survive a clear; bind it again before
// drawing.
func (c *Context) Clear(flags ClearFlags, color [4]float32, depth float32) error {
	if err := c.checkThread("Clear"); err != nil {
		return err
	}
	c.dev.UseProgram(0)
	c.dev.Clear(flags&ClearColor != 0, flags&ClearDepth != 0, color, depth)
	return nil
}
