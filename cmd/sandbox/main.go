package main

import (
	"log"
	"time"

	"github.com/hubastard/thicket/engine/core"
	glbackend "github.com/hubastard/thicket/engine/gfx/gl"
	"github.com/hubastard/thicket/engine/gfx/renderer2d"
	"github.com/hubastard/thicket/engine/platform"
	"github.com/hubastard/thicket/engine/profiler"
	"github.com/hubastard/thicket/engine/text"
)

type App struct {
	cfg        Config
	lastFrame  time.Time
	tick       int
	r2d        *renderer2d.Renderer2D
	stats      renderer2d.Statistics
	font       *text.Font
	gridLayer  *LayerGrid
	debugLayer *LayerDebug
}

func (a *App) OnStart(e *core.Engine) {
	profiler.Init(1 << 10) // ~1K scope samples

	var err error
	a.r2d, err = renderer2d.New(e.Renderer, 10000)
	if err != nil {
		panic(err)
	}

	// The overlay degrades to invisible without a font; everything else works.
	if a.cfg.Font != "" {
		a.font, err = text.LoadTTF(e.Renderer, a.cfg.Font, 16)
		if err != nil {
			log.Println("sandbox: font unavailable:", err)
		}
	}

	a.gridLayer = &LayerGrid{r2d: a.r2d, cfg: a.cfg}
	e.PushLayer(a.gridLayer)

	a.debugLayer = &LayerDebug{r2d: a.r2d, font: a.font, stats: &a.stats, grid: a.gridLayer}
	e.PushLayer(a.debugLayer)
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {
	a.tick++

	now := time.Now()
	if a.debugLayer != nil && !a.lastFrame.IsZero() {
		a.debugLayer.frameDuration = float32(now.Sub(a.lastFrame).Seconds() * 1000.0)
		a.debugLayer.tick = a.tick
	}
	a.lastFrame = now
}

func (a *App) OnRender(e *core.Engine, alpha float64) {
	a.stats = a.r2d.Stats()
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {}

func (a *App) OnShutdown(e *core.Engine) {
	if a.font != nil {
		a.font.Close()
	}
}

func main() {
	cfg, err := LoadConfig("sandbox.yaml")
	if err != nil {
		log.Fatal(err)
	}

	clear := cfg.ClearColor.Color()
	engineCfg := core.Config{
		Title:           cfg.Window.Title,
		Width:           cfg.Window.Width,
		Height:          cfg.Window.Height,
		VSync:           cfg.Window.VSync,
		ClearColor:      [4]float32(clear),
		ScratchCapacity: 4096,
	}
	app := &App{cfg: cfg}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg, nil)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}

	if err := core.Run(app, engineCfg, newWindow, newRenderer); err != nil {
		log.Fatal(err)
	}
}
