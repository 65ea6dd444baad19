package luamodule

import (
	"time"

	"github.com/gogpu/gg"
	glua "github.com/yuin/gopher-lua"
)

func (m *Module) registerAPIs() {
	L := m.L

	canvas := L.NewTable()
	L.SetFuncs(canvas, map[string]glua.LGFunction{
		"width":      m.canvasWidth,
		"height":     m.canvasHeight,
		"clear":      m.canvasClear,
		"color":      m.canvasColor,
		"line_width": m.canvasLineWidth,
		"move_to":    m.canvasMoveTo,
		"line_to":    m.canvasLineTo,
		"close_path": m.canvasClosePath,
		"rect":       m.canvasRect,
		"circle":     m.canvasCircle,
		"stroke":     m.canvasStroke,
		"fill":       m.canvasFill,
	})
	L.SetGlobal("canvas", canvas)

	frame := L.NewTable()
	L.SetFuncs(frame, map[string]glua.LGFunction{
		"request": m.frameRequest,
	})
	L.SetGlobal("frame", frame)

	host := L.NewTable()
	L.SetFuncs(host, map[string]glua.LGFunction{
		"now": m.hostNow,
		"log": m.hostLog,
	})
	L.SetGlobal("host", host)
}

// ctx returns the drawing context or raises a Lua error when the module has
// no canvas.
func (m *Module) ctx(L *glua.LState) *gg.Context {
	if m.target == nil || m.target.Context() == nil {
		L.RaiseError("canvas: no drawing surface attached")
		return nil
	}
	return m.target.Context()
}

// --- canvas ---

func (m *Module) canvasWidth(L *glua.LState) int {
	m.ctx(L)
	L.Push(glua.LNumber(m.target.Width()))
	return 1
}

func (m *Module) canvasHeight(L *glua.LState) int {
	m.ctx(L)
	L.Push(glua.LNumber(m.target.Height()))
	return 1
}

// canvas.clear([hex]) fills the surface, transparent when no color is given.
func (m *Module) canvasClear(L *glua.LState) int {
	c := m.ctx(L)
	if L.GetTop() >= 1 {
		c.ClearWithColor(gg.Hex(L.CheckString(1)))
	} else {
		c.Clear()
	}
	return 0
}

func (m *Module) canvasColor(L *glua.LState) int {
	m.ctx(L).SetHexColor(L.CheckString(1))
	return 0
}

func (m *Module) canvasLineWidth(L *glua.LState) int {
	m.ctx(L).SetLineWidth(float64(L.CheckNumber(1)))
	return 0
}

func (m *Module) canvasMoveTo(L *glua.LState) int {
	m.ctx(L).MoveTo(float64(L.CheckNumber(1)), float64(L.CheckNumber(2)))
	return 0
}

func (m *Module) canvasLineTo(L *glua.LState) int {
	m.ctx(L).LineTo(float64(L.CheckNumber(1)), float64(L.CheckNumber(2)))
	return 0
}

func (m *Module) canvasClosePath(L *glua.LState) int {
	m.ctx(L).ClosePath()
	return 0
}

func (m *Module) canvasRect(L *glua.LState) int {
	m.ctx(L).DrawRectangle(
		float64(L.CheckNumber(1)), float64(L.CheckNumber(2)),
		float64(L.CheckNumber(3)), float64(L.CheckNumber(4)),
	)
	return 0
}

func (m *Module) canvasCircle(L *glua.LState) int {
	m.ctx(L).DrawCircle(float64(L.CheckNumber(1)), float64(L.CheckNumber(2)), float64(L.CheckNumber(3)))
	return 0
}

func (m *Module) canvasStroke(L *glua.LState) int {
	if err := m.ctx(L).Stroke(); err != nil {
		L.RaiseError("canvas.stroke: %v", err)
	}
	return 0
}

func (m *Module) canvasFill(L *glua.LState) int {
	if err := m.ctx(L).Fill(); err != nil {
		L.RaiseError("canvas.fill: %v", err)
	}
	return 0
}

// --- frame ---

// frame.request(fn) queues fn for the next frame, like requestAnimationFrame.
func (m *Module) frameRequest(L *glua.LState) int {
	m.pending = append(m.pending, L.CheckFunction(1))
	return 0
}

// --- host ---

// host.now() returns milliseconds since the module was created.
func (m *Module) hostNow(L *glua.LState) int {
	L.Push(glua.LNumber(float64(time.Since(m.start).Microseconds()) / 1000))
	return 1
}

func (m *Module) hostLog(L *glua.LState) int {
	m.log.Info(L.CheckString(1))
	return 0
}
