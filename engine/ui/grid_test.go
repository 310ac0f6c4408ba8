package ui

import (
	"errors"
	"testing"

	"github.com/hubastard/thicket/engine/anim"
	"github.com/hubastard/thicket/engine/colors"
	"github.com/hubastard/thicket/engine/core"
	"github.com/hubastard/thicket/engine/gfx/renderer2d"
	"github.com/hubastard/thicket/engine/scene"
)

type lineCall struct {
	x0, y0, x1, y1 float32
	color          colors.Color
}

type quadCall struct {
	x, y, w, h float32
	color      colors.Color
	rot        float32
}

type spriteCall struct {
	x, y, w, h float32
	sub        renderer2d.SubTexture2D
	tint       colors.Color
	rot        float32
	flip       renderer2d.Flip
}

// fakeCanvas records draw calls so geometry can be asserted without a GPU.
type fakeCanvas struct {
	lines   []lineCall
	quads   []quadCall
	sprites []spriteCall
}

func (f *fakeCanvas) DrawLine(x0, y0, x1, y1 float32, color colors.Color) {
	f.lines = append(f.lines, lineCall{x0, y0, x1, y1, color})
}

func (f *fakeCanvas) DrawQuad(x, y, w, h float32, color colors.Color, rot float32) {
	f.quads = append(f.quads, quadCall{x, y, w, h, color, rot})
}

func (f *fakeCanvas) DrawSprite(x, y, w, h float32, sub renderer2d.SubTexture2D, tint colors.Color, rot float32, flip renderer2d.Flip) {
	f.sprites = append(f.sprites, spriteCall{x, y, w, h, sub, tint, rot, flip})
}

type fakeTexture struct{ w, h int }

func (t *fakeTexture) Size() (int, int) { return t.w, t.h }

type fakeReleaser struct{ destroyed []core.Texture }

func (f *fakeReleaser) DestroyTexture(t core.Texture) { f.destroyed = append(f.destroyed, t) }

func newTestGrid() *Grid {
	return New(0, 0, 32, 32, 4, 3, colors.White, colors.Gray)
}

func pointerAt(t *testing.T, x, y float64) *core.Input {
	t.Helper()
	in := core.NewInput()
	in.Handle(core.EventMouseMove{X: x, Y: y})
	return in
}

func press(in *core.Input, b core.MouseButton) {
	in.Handle(core.EventMouseButton{Button: b, Down: true})
}

func TestCellRect(t *testing.T) {
	g := newTestGrid()
	x, y, w, h := g.CellRect(2, 1)
	if x != 64 || y != 32 || w != 32 || h != 32 {
		t.Fatalf("CellRect(2,1) = {%v,%v,%v,%v}, want {64,32,32,32}", x, y, w, h)
	}
}

func TestHover(t *testing.T) {
	g := newTestGrid()

	tests := []struct {
		name     string
		px, py   float64
		col, row int
	}{
		{"inside cell 2,1", 70, 40, 2, 1},
		{"first cell", 0, 0, 0, 0},
		{"last cell", 127, 95, 3, 2},
		{"right of grid", 128, 40, -1, -1},
		{"below grid", 70, 96, -1, -1},
		{"negative", -1, -1, -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := g.Hover(pointerAt(t, tt.px, tt.py))
			if hit.Col != tt.col || hit.Row != tt.row {
				t.Fatalf("Hover(%v,%v) = (%d,%d), want (%d,%d)", tt.px, tt.py, hit.Col, hit.Row, tt.col, tt.row)
			}
			if !hit.None() {
				wantX := float32(tt.col * 32)
				wantY := float32(tt.row * 32)
				if hit.X != wantX || hit.Y != wantY {
					t.Fatalf("Hover top-left = (%v,%v), want (%v,%v)", hit.X, hit.Y, wantX, wantY)
				}
			}
		})
	}
}

func TestHoverIgnoresStaleCursor(t *testing.T) {
	g := newTestGrid()
	c := &fakeCanvas{}
	g.DrawLines(c) // walks the cursor
	hit := g.Hover(pointerAt(t, 70, 40))
	if hit.Col != 2 || hit.Row != 1 {
		t.Fatalf("Hover after DrawLines = (%d,%d), want (2,1)", hit.Col, hit.Row)
	}
}

func TestClickedConsumesPress(t *testing.T) {
	g := newTestGrid()
	in := pointerAt(t, 70, 40)
	press(in, core.MouseLeft)

	first := g.Clicked(in, core.MouseLeft)
	if first.Col != 2 || first.Row != 1 {
		t.Fatalf("first click = (%d,%d), want (2,1)", first.Col, first.Row)
	}
	second := g.Clicked(in, core.MouseLeft)
	if !second.None() {
		t.Fatalf("second click with consumed press = (%d,%d), want sentinel", second.Col, second.Row)
	}
}

func TestClickedMissKeepsPress(t *testing.T) {
	g := newTestGrid()
	in := pointerAt(t, 500, 500)
	press(in, core.MouseLeft)

	if hit := g.Clicked(in, core.MouseLeft); !hit.None() {
		t.Fatalf("click outside grid = (%d,%d), want sentinel", hit.Col, hit.Row)
	}
	if !in.IsMouseDown(core.MouseLeft) {
		t.Fatal("press was consumed by a miss")
	}
}

func TestClickedRequiresPress(t *testing.T) {
	g := newTestGrid()
	in := pointerAt(t, 70, 40)
	if hit := g.Clicked(in, core.MouseLeft); !hit.None() {
		t.Fatalf("click without press = (%d,%d), want sentinel", hit.Col, hit.Row)
	}
}

func TestDrawLinesGeometry(t *testing.T) {
	g := newTestGrid()
	c := &fakeCanvas{}
	g.DrawLines(c)

	wantLines := (3 + 1) + (4 + 1)
	if len(c.lines) != wantLines {
		t.Fatalf("DrawLines emitted %d segments, want %d", len(c.lines), wantLines)
	}
	// first horizontal spans the full width at y=0
	if l := c.lines[0]; l.x0 != 0 || l.y0 != 0 || l.x1 != 128 || l.y1 != 0 {
		t.Fatalf("first segment = %+v", l)
	}
	// last vertical sits on the right edge
	if l := c.lines[wantLines-1]; l.x0 != 128 || l.y0 != 0 || l.x1 != 128 || l.y1 != 96 {
		t.Fatalf("last segment = %+v", l)
	}
}

func TestDrawLinesIdempotent(t *testing.T) {
	g := newTestGrid()
	first := &fakeCanvas{}
	second := &fakeCanvas{}
	g.DrawLines(first)
	g.DrawLines(second)

	if len(first.lines) != len(second.lines) {
		t.Fatalf("pass sizes differ: %d vs %d", len(first.lines), len(second.lines))
	}
	for i := range first.lines {
		if first.lines[i] != second.lines[i] {
			t.Fatalf("segment %d differs: %+v vs %+v", i, first.lines[i], second.lines[i])
		}
	}
}

func TestFillGeometry(t *testing.T) {
	g := newTestGrid()
	c := &fakeCanvas{}
	g.Fill(c)
	g.Fill(c)

	if len(c.quads) != 2*4*3 {
		t.Fatalf("Fill twice emitted %d quads, want %d", len(c.quads), 2*4*3)
	}
	// both passes start at cell (0,0), centered quad
	want := quadCall{x: 16, y: 16, w: 32, h: 32, color: colors.Gray}
	if c.quads[0] != want {
		t.Fatalf("first quad = %+v, want %+v", c.quads[0], want)
	}
	if c.quads[12] != want {
		t.Fatalf("second pass first quad = %+v, want %+v", c.quads[12], want)
	}
}

func TestTextureCapacity(t *testing.T) {
	g := newTestGrid()

	// store not initialized yet
	if _, err := g.AddTexture(&fakeTexture{8, 8}); !errors.Is(err, ErrTextureCapacity) {
		t.Fatalf("AddTexture before init: err = %v, want ErrTextureCapacity", err)
	}

	g.InitTextures(3)
	g.InitTextures(10) // one-time effect; must not resize

	for i := 0; i < 3; i++ {
		idx, err := g.AddTexture(&fakeTexture{8, 8})
		if err != nil {
			t.Fatalf("AddTexture %d: %v", i, err)
		}
		if idx != i {
			t.Fatalf("AddTexture %d stored at slot %d", i, idx)
		}
	}

	idx, err := g.AddTexture(&fakeTexture{8, 8})
	if !errors.Is(err, ErrTextureCapacity) {
		t.Fatalf("fourth AddTexture: err = %v, want ErrTextureCapacity", err)
	}
	if idx != -1 {
		t.Fatalf("fourth AddTexture returned slot %d, want -1", idx)
	}
}

func TestAddTextureNil(t *testing.T) {
	g := newTestGrid()
	g.InitTextures(1)
	if _, err := g.AddTexture(nil); !errors.Is(err, ErrNilTexture) {
		t.Fatalf("err = %v, want ErrNilTexture", err)
	}
}

func TestPutTexture(t *testing.T) {
	g := newTestGrid()
	g.InitTextures(2)
	tex := &fakeTexture{16, 16}
	idx, err := g.AddTexture(tex)
	if err != nil {
		t.Fatal(err)
	}

	c := &fakeCanvas{}
	g.PutTexture(c, 2, 1, idx, renderer2d.FlipNone, 0)
	if len(c.sprites) != 1 {
		t.Fatalf("emitted %d sprites, want 1", len(c.sprites))
	}
	s := c.sprites[0]
	if s.x != 80 || s.y != 48 || s.w != 32 || s.h != 32 {
		t.Fatalf("sprite rect = {%v,%v,%v,%v}, want {80,48,32,32}", s.x, s.y, s.w, s.h)
	}
	if s.sub.Texture != tex {
		t.Fatal("sprite bound to wrong texture")
	}
}

func TestPutTextureOutOfRange(t *testing.T) {
	g := newTestGrid()
	g.InitTextures(2)
	if _, err := g.AddTexture(&fakeTexture{16, 16}); err != nil {
		t.Fatal(err)
	}

	c := &fakeCanvas{}
	g.PutTexture(c, 0, 0, -1, renderer2d.FlipNone, 0)
	g.PutTexture(c, 0, 0, 2, renderer2d.FlipNone, 0)
	g.PutTexture(c, 0, 0, 1, renderer2d.FlipNone, 0) // within capacity, empty slot
	if len(c.sprites) != 0 {
		t.Fatalf("out-of-range indices emitted %d sprites, want 0", len(c.sprites))
	}
}

func TestAttachSheetClip(t *testing.T) {
	g := newTestGrid()
	sheet := &fakeTexture{96, 64}
	if err := g.AttachSheet(sheet, 3, 2); err != nil {
		t.Fatal(err)
	}

	if _, _, w, h := g.Clip(); w != 32 || h != 32 {
		t.Fatalf("clip size = %dx%d, want 32x32", w, h)
	}

	g.SelectTile(2, 1)
	if x, y, _, _ := g.Clip(); x != 64 || y != 32 {
		t.Fatalf("clip origin = (%d,%d), want (64,32)", x, y)
	}

	// out-of-range selections leave the clip untouched
	g.SelectTile(3, 0)
	g.SelectTile(0, 2)
	g.SelectTile(-1, 0)
	if x, y, _, _ := g.Clip(); x != 64 || y != 32 {
		t.Fatalf("clip origin moved to (%d,%d) on out-of-range select", x, y)
	}

	// attach is a one-time effect
	if err := g.AttachSheet(&fakeTexture{10, 10}, 1, 1); err != nil {
		t.Fatal(err)
	}
	if _, _, w, h := g.Clip(); w != 32 || h != 32 {
		t.Fatalf("second attach resized clip to %dx%d", w, h)
	}
}

func TestDrawSelectedTile(t *testing.T) {
	g := newTestGrid()
	if err := g.AttachSheet(&fakeTexture{96, 64}, 3, 2); err != nil {
		t.Fatal(err)
	}
	g.SelectTile(1, 0)

	c := &fakeCanvas{}
	g.DrawSelectedTile(c, 0, 0, renderer2d.FlipNone, 0)
	if len(c.sprites) != 1 {
		t.Fatalf("emitted %d sprites, want 1", len(c.sprites))
	}
	sub := c.sprites[0].sub
	third := float32(1) / 3
	if !closeTo(sub.U0, third) || !closeTo(sub.U1, 2*third) || sub.V0 != 0 || !closeTo(sub.V1, 0.5) {
		t.Fatalf("tile UVs = {%v,%v,%v,%v}", sub.U0, sub.V0, sub.U1, sub.V1)
	}

	// outside the grid's own bounds: no draw
	g.DrawSelectedTile(c, 4, 0, renderer2d.FlipNone, 0)
	g.DrawSelectedTile(c, 0, 3, renderer2d.FlipNone, 0)
	if len(c.sprites) != 1 {
		t.Fatalf("out-of-grid draws emitted %d sprites", len(c.sprites)-1)
	}
}

func TestDrawSelectedTileWithoutSheet(t *testing.T) {
	g := newTestGrid()
	c := &fakeCanvas{}
	g.DrawSelectedTile(c, 0, 0, renderer2d.FlipNone, 0)
	if len(c.sprites) != 0 {
		t.Fatal("draw without an attached sheet emitted sprites")
	}
}

func TestAddAnimation(t *testing.T) {
	g := newTestGrid()

	idx, err := g.AddAnimation(nil)
	if !errors.Is(err, ErrNilAnimation) {
		t.Fatalf("err = %v, want ErrNilAnimation", err)
	}
	if idx != -1 {
		t.Fatalf("nil animation stored at %d", idx)
	}

	a := anim.New(nil, 1)
	if idx, err = g.AddAnimation(a); err != nil || idx != 0 {
		t.Fatalf("AddAnimation = (%d, %v), want (0, nil)", idx, err)
	}
	if idx, err = g.AddAnimation(a); err != nil || idx != 1 {
		t.Fatalf("second AddAnimation = (%d, %v), want (1, nil)", idx, err)
	}
}

func TestRenderAnimationDrawThenAdvance(t *testing.T) {
	g := newTestGrid()
	sheet := &fakeTexture{64, 32}
	a, err := anim.FromSheet(sheet, 2, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	idx, err := g.AddAnimation(a)
	if err != nil {
		t.Fatal(err)
	}

	c := &fakeCanvas{}
	g.RenderAnimation(c, 1, 2, idx, renderer2d.FlipX, 0)

	if len(c.sprites) != 1 {
		t.Fatalf("emitted %d sprites, want 1", len(c.sprites))
	}
	s := c.sprites[0]
	// frame 0 must be the one visible on the advancing call
	if s.sub.U0 != 0 || !closeTo(s.sub.U1, 0.5) {
		t.Fatalf("drew frame with UVs {%v,%v}, want frame 0", s.sub.U0, s.sub.U1)
	}
	if s.x != 48 || s.y != 80 || s.w != 32 || s.h != 32 {
		t.Fatalf("animation rect = {%v,%v,%v,%v}, want {48,80,32,32}", s.x, s.y, s.w, s.h)
	}
	if s.flip != renderer2d.FlipX {
		t.Fatalf("flip = %v, want FlipX", s.flip)
	}
	if a.Frame() != 1 {
		t.Fatalf("frame after render = %d, want 1", a.Frame())
	}

	// out-of-range cell or index: no draw, no advance
	g.RenderAnimation(c, 4, 0, idx, renderer2d.FlipNone, 0)
	g.RenderAnimation(c, 0, 0, 5, renderer2d.FlipNone, 0)
	if len(c.sprites) != 1 || a.Frame() != 1 {
		t.Fatal("out-of-range render touched the animation")
	}
}

func TestCameraOffsetAppliesToDrawsOnly(t *testing.T) {
	g := newTestGrid()
	cam := scene.NewOrtho2D(128, 96)
	cam.SetPosition(10, 5)
	g.SetCamera(cam)
	g.EnableCamera(true)

	c := &fakeCanvas{}
	g.Fill(c)
	if q := c.quads[0]; q.x != 6 || q.y != 11 {
		t.Fatalf("camera fill origin = (%v,%v), want (6,11)", q.x, q.y)
	}

	// hit testing stays in screen space
	hit := g.Hover(pointerAt(t, 70, 40))
	if hit.Col != 2 || hit.Row != 1 {
		t.Fatalf("camera hover = (%d,%d), want (2,1)", hit.Col, hit.Row)
	}
}

func TestDestroyReleasesTextures(t *testing.T) {
	g := newTestGrid()
	g.InitTextures(2)
	t1 := &fakeTexture{8, 8}
	t2 := &fakeTexture{8, 8}
	if _, err := g.AddTexture(t1); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddTexture(t2); err != nil {
		t.Fatal(err)
	}
	sheet := &fakeTexture{32, 32}
	if err := g.AttachSheet(sheet, 2, 2); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddAnimation(anim.New(nil, 1)); err != nil {
		t.Fatal(err)
	}

	rel := &fakeReleaser{}
	g.Destroy(rel)

	if len(rel.destroyed) != 3 {
		t.Fatalf("destroyed %d textures, want 3", len(rel.destroyed))
	}
	c := &fakeCanvas{}
	g.PutTexture(c, 0, 0, 0, renderer2d.FlipNone, 0)
	g.RenderAnimation(c, 0, 0, 0, renderer2d.FlipNone, 0)
	if len(c.sprites) != 0 {
		t.Fatal("destroyed grid still draws resources")
	}
}

func closeTo(got, want float32) bool {
	d := got - want
	return d > -1e-6 && d < 1e-6
}
