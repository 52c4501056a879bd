package gfx

import "github.com/gogpu/gfx/driver"

// MaxVertexAttributes caps the attribute count of one declaration.
const MaxVertexAttributes = 16

// Attribute is one entry of a vertex declaration. Offsets are packed: each
// attribute starts where the previous one ends.
type Attribute struct {
	Components int
	Type       driver.AttributeType
	Normalized bool
	AsInt      bool
	Offset     int
}

// VertexDecl describes the interleaved layout of one vertex. Size is the
// stride in bytes.
type VertexDecl struct {
	Attributes []Attribute
	Size       int
}

// AddAttribute appends an attribute after the previous one. Declarations
// past MaxVertexAttributes are dropped.
func (d *VertexDecl) AddAttribute(components int, typ driver.AttributeType, normalized, asInt bool) {
	if len(d.Attributes) >= MaxVertexAttributes {
		slogger().Warn("gfx: vertex declaration full", "max", MaxVertexAttributes)
		return
	}
	offset := 0
	if n := len(d.Attributes); n > 0 {
		prev := d.Attributes[n-1]
		offset = prev.Offset + prev.Components*prev.Type.Size()
	}
	d.Attributes = append(d.Attributes, Attribute{
		Components: components,
		Type:       typ,
		Normalized: normalized,
		AsInt:      asInt,
		Offset:     offset,
	})
	d.Size = offset + components*typ.Size()
}
