package main

import (
	"fmt"
	"log"

	"github.com/hubastard/thicket/engine/anim"
	"github.com/hubastard/thicket/engine/assets"
	"github.com/hubastard/thicket/engine/colors"
	"github.com/hubastard/thicket/engine/core"
	"github.com/hubastard/thicket/engine/gfx/renderer2d"
	"github.com/hubastard/thicket/engine/profiler"
	"github.com/hubastard/thicket/engine/scene"
	"github.com/hubastard/thicket/engine/ui"
)

type cellKey struct{ col, row int }

// stamp is what a click left in a cell: a sheet tile or a registered texture.
type stamp struct {
	tileCol, tileRow int
	texIndex         int // -1 when the stamp is a sheet tile
}

// LayerGrid is the sandbox's interactive grid: hover highlights a cell,
// left click stamps the selected tile, right click clears it.
type LayerGrid struct {
	cfg Config
	r2d *renderer2d.Renderer2D

	screenCam *scene.OrthoCamera2D // fixed, origin top-left
	worldCam  *scene.OrthoCamera2D // panned/zoomed by the controller
	ctrl      *scene.OrthoController2D

	grid     *ui.Grid
	stamps   map[cellKey]stamp
	tileCol  int
	tileRow  int
	animCols []int // grid columns occupied by animations
	cameraOn bool

	hovered ui.Cell
}

func (l *LayerGrid) OnAttach(e *core.Engine) {
	w, h := e.Window.FramebufferSize()
	l.screenCam = scene.NewOrtho2D(w, h)
	l.screenCam.SetPosition(float32(w/2), float32(h/2)) // origin top-left
	l.worldCam = scene.NewOrtho2D(w, h)
	l.ctrl = scene.NewOrthoController2D(l.worldCam)

	gc := l.cfg.Grid
	l.grid = ui.New(gc.X, gc.Y, gc.CellW, gc.CellH, gc.Cols, gc.Rows,
		gc.LineColor.Color(), gc.FillColor.Color())
	l.grid.SetCamera(l.worldCam)
	l.grid.EnableCamera(l.cfg.CameraOn)
	l.cameraOn = l.cfg.CameraOn
	l.stamps = make(map[cellKey]stamp)

	// Missing assets degrade the demo instead of killing it.
	if s := gc.Sheet; s != nil {
		if err := l.grid.LoadSheet(e.Renderer, s.Path, s.Cols, s.Rows); err != nil {
			log.Println("sandbox: sheet unavailable:", err)
		}
	}
	if len(gc.Textures) > 0 {
		l.grid.InitTextures(len(gc.Textures))
		for _, path := range gc.Textures {
			if _, err := l.grid.LoadTexture(e.Renderer, path); err != nil {
				log.Println("sandbox: texture unavailable:", err)
			}
		}
	}
	for i, ac := range gc.Animations {
		tex, err := assets.LoadTexture(e.Renderer, ac.Path)
		if err != nil {
			log.Println("sandbox: animation sheet unavailable:", err)
			continue
		}
		a, err := anim.FromSheet(tex, ac.Cols, ac.Rows, ac.TicksPerFrame)
		if err != nil {
			log.Println("sandbox: bad animation:", err)
			continue
		}
		if _, err := l.grid.AddAnimation(a); err != nil {
			log.Println("sandbox: animation rejected:", err)
			continue
		}
		l.animCols = append(l.animCols, i%gc.Cols)
	}

	l.hovered = ui.Cell{Col: -1, Row: -1}
}

func (l *LayerGrid) OnDetach(e *core.Engine) {
	l.grid.Destroy(e.Renderer)
}

func (l *LayerGrid) OnUpdate(e *core.Engine, dt float64) {
	if l.cameraOn {
		l.ctrl.Update(e, float32(dt))
	}

	if e.Input.IsKeyDown(core.KeyEscape) {
		e.Window.RequestClose()
	}

	l.hovered = l.grid.Hover(e.Input)

	if hit := l.grid.Clicked(e.Input, core.MouseLeft); !hit.None() {
		l.stamps[cellKey{hit.Col, hit.Row}] = stamp{
			tileCol: l.tileCol, tileRow: l.tileRow,
			texIndex: -1,
		}
	}
	if hit := l.grid.Clicked(e.Input, core.MouseRight); !hit.None() {
		delete(l.stamps, cellKey{hit.Col, hit.Row})
	}
}

func (l *LayerGrid) OnRender(e *core.Engine, alpha float64) {
	renderEnd := profiler.Start("LayerGrid.OnRender")

	l.r2d.BeginScene(l.screenCam.VP())
	{
		l.grid.Fill(l.r2d)
		l.grid.DrawLines(l.r2d)

		for key, s := range l.stamps {
			if s.texIndex >= 0 {
				l.grid.PutTexture(l.r2d, key.col, key.row, s.texIndex, renderer2d.FlipNone, 0)
				continue
			}
			l.grid.SelectTile(s.tileCol, s.tileRow)
			l.grid.DrawSelectedTile(l.r2d, key.col, key.row, renderer2d.FlipNone, 0)
		}
		// restore the editor's selection after stamp redraws
		l.grid.SelectTile(l.tileCol, l.tileRow)

		// animations live on the bottom row
		for i, col := range l.animCols {
			l.grid.RenderAnimation(l.r2d, col, l.grid.Rows()-1, i, renderer2d.FlipNone, 0)
		}

		if !l.hovered.None() {
			cw, ch := l.grid.CellSize()
			w, h := float32(cw), float32(ch)
			l.r2d.DrawQuad(l.hovered.X+w*0.5, l.hovered.Y+h*0.5, w, h,
				colors.Yellow.WithAlpha(0.35), 0)
		}
	}
	l.r2d.EndScene()

	renderEnd()
}

func (l *LayerGrid) OnEvent(e *core.Engine, ev core.Event) bool {
	switch v := ev.(type) {
	case core.EventKey:
		if !v.Down {
			return false
		}
		switch {
		case v.Key == core.KeyP && (v.Mods&core.ModCtrl) != 0:
			if path, err := profiler.OpenProfilerGraph(); err == nil {
				fmt.Println("speedscope dump:", path)
			} else {
				fmt.Println("profiler dump error:", err)
			}
			return true
		case v.Key == core.KeyC:
			l.cameraOn = !l.cameraOn
			l.grid.EnableCamera(l.cameraOn)
			return true
		case v.Key == core.KeySpace:
			l.cycleTile()
			return true
		}
	case core.EventResize:
		l.screenCam.SetViewportPixels(v.W, v.H)
		l.screenCam.SetPosition(float32(v.W/2), float32(v.H/2))
		l.worldCam.SetViewportPixels(v.W, v.H)
	case core.EventScroll:
		if l.cameraOn {
			return l.ctrl.HandleEvent(e, ev)
		}
	}
	return false
}

// cycleTile walks the sheet row-major and wraps.
func (l *LayerGrid) cycleTile() {
	s := l.cfg.Grid.Sheet
	if s == nil {
		return
	}
	l.tileCol++
	if l.tileCol >= s.Cols {
		l.tileCol = 0
		l.tileRow++
		if l.tileRow >= s.Rows {
			l.tileRow = 0
		}
	}
	l.grid.SelectTile(l.tileCol, l.tileRow)
}
