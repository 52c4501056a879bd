// Package gfx is a thin, stateful GPU resource and command backend for Go.
//
// # Overview
//
// gfx sits between application rendering code and a concrete graphics
// driver. It owns the lifetime of GPU objects through fixed-capacity handle
// pools, interns shader uniforms by name so values survive program switches,
// decodes DDS texture containers, and exposes a small immediate command
// surface (state, draws, clears) over the driver.Device interface.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/gfx"
//		"github.com/gogpu/gfx/driver/gl"
//	)
//
//	// On the goroutine that owns the GL context:
//	runtime.LockOSThread()
//	dev, err := gl.New()
//	if err != nil {
//		return err
//	}
//	ctx, err := gfx.New(dev)
//	if err != nil {
//		return err
//	}
//	ctx.Init()
//	defer ctx.Shutdown()
//
//	buf := ctx.AllocBufferHandle()
//	ctx.CreateBuffer(buf, len(vertexData), vertexData)
//
// # Threading
//
// A Context is bound to a single graphics goroutine, recorded by Init.
// Handle allocation and release are safe from any goroutine; everything that
// reaches the driver must run on the graphics goroutine and returns
// ErrThreadViolation otherwise. Callers are expected to pin that goroutine
// with runtime.LockOSThread.
//
// # Handles
//
// Resources are addressed by small generation-tagged handles, not pointers.
// The zero value of every handle type is invalid; using a handle after its
// slot was released and reused yields ErrStaleHandle instead of touching the
// wrong resource.
//
// # Architecture
//
// The module is organized into:
//   - gfx: handle pools, resource registry, uniform store, command surface
//   - gfx/dds: DDS container decoding, independent of any driver
//   - gfx/driver: the Device interface concrete drivers implement
//   - gfx/driver/gl: OpenGL 4.5 core implementation
//   - gfx/driver/drivertest: recording fake device for tests
package gfx
