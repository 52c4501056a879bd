package gfx

import "github.com/gogpu/gfx/driver"

// DrawArrays issues a non-indexed draw of count vertices starting at offset.
func (c *Context) DrawArrays(prim driver.Primitive, offset, count int) error {
	if err := c.checkThread("DrawArrays"); err != nil {
		return err
	}
	c.dev.DrawArrays(prim, offset, count)
	return nil
}

// DrawElements issues an indexed draw of count 16-bit indices starting at a
// byte offset into the bound index buffer.
func (c *Context) DrawElements(prim driver.Primitive, offset, count int) error {
	if err := c.checkThread("DrawElements"); err != nil {
		return err
	}
	c.dev.DrawElements(prim, offset, count)
	return nil
}

// DrawTriangles draws count 16-bit indices as triangles from the start of
// the bound index buffer.
func (c *Context) DrawTriangles(count int) error {
	return c.DrawElements(driver.Triangles, 0, count)
}
