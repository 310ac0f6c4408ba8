package main

import (
	"github.com/hubastard/thicket/engine/colors"
	"github.com/hubastard/thicket/engine/core"
	"github.com/hubastard/thicket/engine/gfx/renderer2d"
	"github.com/hubastard/thicket/engine/profiler"
	"github.com/hubastard/thicket/engine/scene"
	"github.com/hubastard/thicket/engine/scratch"
	"github.com/hubastard/thicket/engine/text"
)

// LayerDebug draws a stats overlay in the top-left corner.
type LayerDebug struct {
	cam           *scene.OrthoCamera2D
	r2d           *renderer2d.Renderer2D
	font          *text.Font
	stats         *renderer2d.Statistics
	grid          *LayerGrid
	frameDuration float32
	tick          int
}

func (l *LayerDebug) OnAttach(e *core.Engine) {
	w, h := e.Window.FramebufferSize()
	l.cam = scene.NewOrtho2D(w, h)
	l.cam.SetPosition(float32(w/2), float32(h/2)) // origin top-left
}

func (l *LayerDebug) OnDetach(e *core.Engine) {}

func (l *LayerDebug) OnUpdate(e *core.Engine, dt float64) {}

func (l *LayerDebug) OnRender(e *core.Engine, alpha float64) {
	if l.font == nil {
		return
	}
	scopeRender := profiler.Start("LayerDebug.OnRender")

	lineH := text.LineHeight(l.font)
	x, y := float32(16), float32(16)
	line := func(s string, c colors.Color) {
		text.DrawText(l.r2d, l.font, x, y, s, c)
		y += lineH
	}

	l.r2d.BeginScene(l.cam.VP())
	{
		line(scratch.Sprintf("Frame: %d", l.tick), colors.Yellow)
		line(scratch.Sprintf("  %.3f ms (%.2f FPS)", l.frameDuration, 1000.0/l.frameDuration), colors.White)
		line("2D Renderer", colors.Yellow)
		line(scratch.Sprintf("  Draw Calls: %d", l.stats.DrawCalls), colors.White)
		line(scratch.Sprintf("  Quads: %d", l.stats.QuadCount), colors.White)
		line(scratch.Sprintf("  Vertices: %d", l.stats.TotalVertexCount()), colors.White)
		line(scratch.Sprintf("  Textures: %d", l.stats.TextureCount), colors.White)
		if l.grid != nil {
			line("Grid", colors.Yellow)
			if hit := l.grid.hovered; hit.None() {
				line("  Hover: -", colors.White)
			} else {
				line(scratch.Sprintf("  Hover: %d,%d", hit.Col, hit.Row), colors.White)
			}
			line(scratch.Sprintf("  Stamps: %d", len(l.grid.stamps)), colors.White)
			line(scratch.Sprintf("  Tile: %d,%d", l.grid.tileCol, l.grid.tileRow), colors.White)
		}
		line("Memory", colors.Yellow)
		line(scratch.Sprintf("  Usage: %.3f MB", float32(profiler.MemoryUsage())/(1<<20)), colors.White)
		line(scratch.Sprintf("  Allocs: %u", profiler.MemoryAllocs()), colors.White)
		line(scratch.Sprintf("  Goroutines: %d", profiler.NumGoroutine()), colors.White)
		line("GPU", colors.Yellow)
		line(scratch.Sprintf("  Vendor: %s", e.Renderer.GPUVendor()), colors.White)
		line(scratch.Sprintf("  Renderer: %s", e.Renderer.GPURenderer()), colors.White)
		line(scratch.Sprintf("  Version: %s", e.Renderer.GPUVersion()), colors.White)
	}
	l.r2d.EndScene()

	scopeRender()
}

func (l *LayerDebug) OnEvent(e *core.Engine, ev core.Event) bool {
	if v, ok := ev.(core.EventResize); ok {
		l.cam.SetViewportPixels(v.W, v.H)
		l.cam.SetPosition(float32(v.W/2), float32(v.H/2))
	}
	return false
}
