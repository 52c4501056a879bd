package gfx

import (
	"testing"

	"github.com/gogpu/gfx/driver"
)

func TestSetStateCullPriority(t *testing.T) {
	tests := []struct {
		name  string
		flags StateFlags
		want  string
	}{
		{"none", 0, "SetCull(0)"},
		{"front", StateCullFront, "SetCull(1)"},
		{"back", StateCullBack, "SetCull(2)"},
		{"both prefers back", StateCullFront | StateCullBack, "SetCull(2)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, dev := newTestContext(t)
			if err := ctx.SetState(tt.flags); err != nil {
				t.Fatalf("SetState() = %v", err)
			}
			if n := dev.CallCount(tt.want); n != 1 {
				t.Errorf("calls = %v, want one %q", dev.Calls, tt.want)
			}
		})
	}
}

func TestSetStateDepthAndWireframe(t *testing.T) {
	ctx, dev := newTestContext(t)
	if err := ctx.SetState(StateDepthTest | StateWireframe); err != nil {
		t.Fatalf("SetState() = %v", err)
	}
	if dev.CallCount("SetDepthTest(true)") != 1 || dev.CallCount("SetWireframe(true)") != 1 {
		t.Errorf("calls = %v", dev.Calls)
	}
}

func TestClearReleasesProgram(t *testing.T) {
	ctx, dev := newTestContext(t)
	prog := mustCreateProgram(t, ctx, "clear")
	if err := ctx.UseProgram(prog); err != nil {
		t.Fatalf("UseProgram() = %v", err)
	}

	dev.Reset()
	if err := ctx.Clear(ClearColor|ClearDepth, [4]float32{0, 0, 0, 1}, 1); err != nil {
		t.Fatalf("Clear() = %v", err)
	}
	if len(dev.Calls) < 2 || dev.Calls[0] != "UseProgram(0)" {
		t.Errorf("Clear must unbind the program first: %v", dev.Calls)
	}
	if dev.CallCount("Clear(true, true)") != 1 {
		t.Errorf("calls = %v", dev.Calls)
	}
}

func TestViewportAndScissor(t *testing.T) {
	ctx, dev := newTestContext(t)
	if err := ctx.Viewport(0, 0, 800, 600); err != nil {
		t.Fatalf("Viewport() = %v", err)
	}
	if err := ctx.Scissor(10, 20, 100, 50); err != nil {
		t.Fatalf("Scissor() = %v", err)
	}
	if dev.CallCount("Viewport(0, 0, 800, 600)") != 1 || dev.CallCount("Scissor(10, 20, 100, 50)") != 1 {
		t.Errorf("calls = %v", dev.Calls)
	}
}

func TestDrawCalls(t *testing.T) {
	ctx, dev := newTestContext(t)
	if err := ctx.DrawArrays(driver.TriangleStrip, 0, 4); err != nil {
		t.Fatalf("DrawArrays() = %v", err)
	}
	if err := ctx.DrawTriangles(36); err != nil {
		t.Fatalf("DrawTriangles() = %v", err)
	}
	if dev.CallCount("DrawArrays") != 1 || dev.CallCount("DrawElements(0, 0, 36)") != 1 {
		t.Errorf("calls = %v", dev.Calls)
	}
}

func TestQueryLifecycle(t *testing.T) {
	ctx, dev := newTestContext(t)

	q, err := ctx.CreateQuery()
	if err != nil {
		t.Fatalf("CreateQuery() = %v", err)
	}
	if err := ctx.QueryTimestamp(q); err != nil {
		t.Fatalf("QueryTimestamp() = %v", err)
	}
	if _, err := ctx.QueryResult(q); err != nil {
		t.Fatalf("QueryResult() = %v", err)
	}
	if err := ctx.DestroyQuery(q); err != nil {
		t.Fatalf("DestroyQuery() = %v", err)
	}
	if dev.LiveQueries != 0 {
		t.Errorf("LiveQueries = %d, want 0", dev.LiveQueries)
	}
}
