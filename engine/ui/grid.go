package ui

import (
	"errors"
	"log"

	"github.com/hubastard/thicket/engine/anim"
	"github.com/hubastard/thicket/engine/assets"
	"github.com/hubastard/thicket/engine/colors"
	"github.com/hubastard/thicket/engine/core"
	"github.com/hubastard/thicket/engine/gfx/renderer2d"
	"github.com/hubastard/thicket/engine/scene"
)

var (
	// ErrTextureCapacity reports an AddTexture call with every slot used
	// (or InitTextures never called).
	ErrTextureCapacity = errors.New("ui: grid texture slots exhausted")
	// ErrNilTexture reports a nil texture handle passed to a register call.
	ErrNilTexture = errors.New("ui: nil texture")
	// ErrNilAnimation reports a nil animation passed to AddAnimation.
	ErrNilAnimation = errors.New("ui: nil animation")
)

// Canvas is what the grid draws against. *renderer2d.Renderer2D satisfies it.
// Quad and sprite coordinates are center-based, matching the batch renderer.
type Canvas interface {
	DrawLine(x0, y0, x1, y1 float32, color colors.Color)
	DrawQuad(x, y, w, h float32, color colors.Color, rotationRad float32)
	DrawSprite(x, y, w, h float32, sub renderer2d.SubTexture2D, tint colors.Color, rotationRad float32, flip renderer2d.Flip)
}

// TextureReleaser frees GPU textures on teardown. core.Renderer satisfies it.
type TextureReleaser interface {
	DestroyTexture(t core.Texture)
}

// Cell is a hit-test result: the matched column/row and the screen-space
// top-left of that cell. Col/Row are -1 when nothing matched; X/Y are stale
// in that case.
type Cell struct {
	Col, Row int
	X, Y     float32
}

// None reports whether the cell is the no-match sentinel.
func (c Cell) None() bool { return c.Col < 0 || c.Row < 0 }

var noCell = Cell{Col: -1, Row: -1}

// Grid renders a rectangular grid of uniform cells and treats each cell as a
// button. Cells can be outlined, flat-filled, stamped with a registered
// texture, a sprite-sheet tile, or an animation.
//
// The (x, y) origin is a cursor: every draw and hit-test pass resets it to
// the immutable start position before walking the cells, so passes never see
// state leaked by a previous call.
type Grid struct {
	x, y           float32
	startX, startY float32
	cellW, cellH   int
	cols, rows     int
	lineColor      colors.Color
	fillColor      colors.Color

	textures   []core.Texture
	textureCap int
	texInit    bool

	sheet                core.Texture
	sheetW, sheetH       int
	clipX, clipY         int
	clipW, clipH         int
	sheetCols, sheetRows int
	sheetInit            bool

	anims []*anim.Animation // non-owning; order and indexing only

	cam      *scene.OrthoCamera2D
	cameraOn bool
}

// New returns a ready, texture-less grid with its cursor at the start
// position. Cell size and column/row counts are clamped to at least 1 and
// fixed for the grid's lifetime.
func New(x, y float32, cellW, cellH, cols, rows int, lineColor, fillColor colors.Color) *Grid {
	if cellW < 1 {
		cellW = 1
	}
	if cellH < 1 {
		cellH = 1
	}
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &Grid{
		x: x, y: y,
		startX: x, startY: y,
		cellW: cellW, cellH: cellH,
		cols: cols, rows: rows,
		lineColor: lineColor,
		fillColor: fillColor,
	}
}

func (g *Grid) Cols() int            { return g.cols }
func (g *Grid) Rows() int            { return g.rows }
func (g *Grid) CellSize() (int, int) { return g.cellW, g.cellH }

// CellRect returns the screen rect of (col, row) relative to the current
// cursor origin. Callers are expected to stay inside the grid's bounds.
func (g *Grid) CellRect(col, row int) (x, y, w, h float32) {
	return g.x + float32(col*g.cellW),
		g.y + float32(row*g.cellH),
		float32(g.cellW),
		float32(g.cellH)
}

// Width reports the full grid extent in pixels.
func (g *Grid) Width() float32 { return float32(g.cols * g.cellW) }

// Height reports the full grid extent in pixels.
func (g *Grid) Height() float32 { return float32(g.rows * g.cellH) }

// SetCamera binds the camera used for camera-relative rendering.
func (g *Grid) SetCamera(cam *scene.OrthoCamera2D) { g.cam = cam }

// EnableCamera toggles camera-relative (scrolled) rendering. Hit tests are
// unaffected; they always work in screen space.
func (g *Grid) EnableCamera(on bool) { g.cameraOn = on }

func (g *Grid) resetCursor() {
	g.x, g.y = g.startX, g.startY
}

func (g *Grid) drawOffset() (float32, float32) {
	if g.cameraOn && g.cam != nil {
		return -g.cam.X, -g.cam.Y
	}
	return 0, 0
}

// --- resource store ---

// InitTextures sizes the texture slot store exactly once per grid; later
// calls are no-ops. n must be positive.
func (g *Grid) InitTextures(n int) {
	if g.texInit || n < 1 {
		return
	}
	g.textures = make([]core.Texture, 0, n)
	g.textureCap = n
	g.texInit = true
}

// AddTexture stores an already-loaded texture in the next free slot and
// returns its index. Fails with ErrTextureCapacity when the store is full or
// was never initialized; the slot counter is the stored slice length, so it
// persists across calls.
func (g *Grid) AddTexture(tex core.Texture) (int, error) {
	if tex == nil {
		return -1, ErrNilTexture
	}
	if len(g.textures) >= g.textureCap {
		return -1, ErrTextureCapacity
	}
	g.textures = append(g.textures, tex)
	return len(g.textures) - 1, nil
}

// LoadTexture loads a PNG through the asset loader and registers it.
func (g *Grid) LoadTexture(r core.Renderer, relPath string) (int, error) {
	tex, err := assets.LoadTexture(r, relPath)
	if err != nil {
		return -1, err
	}
	return g.AddTexture(tex)
}

// AttachSheet binds a sprite sheet of sheetCols x sheetRows tiles exactly
// once per grid; later calls are no-ops. The clip size is the sheet pixel
// size divided by the tile counts.
func (g *Grid) AttachSheet(tex core.Texture, sheetCols, sheetRows int) error {
	if tex == nil {
		return ErrNilTexture
	}
	if g.sheetInit || sheetCols < 1 || sheetRows < 1 {
		return nil
	}
	g.sheet = tex
	g.sheetW, g.sheetH = tex.Size()
	g.clipW = g.sheetW / sheetCols
	g.clipH = g.sheetH / sheetRows
	g.clipX, g.clipY = 0, 0
	g.sheetCols, g.sheetRows = sheetCols, sheetRows
	g.sheetInit = true
	return nil
}

// LoadSheet loads a PNG through the asset loader and attaches it as the
// grid's sprite sheet.
func (g *Grid) LoadSheet(r core.Renderer, relPath string, sheetCols, sheetRows int) error {
	tex, err := assets.LoadTexture(r, relPath)
	if err != nil {
		return err
	}
	return g.AttachSheet(tex, sheetCols, sheetRows)
}

// SelectTile picks the sheet tile drawn by DrawSelectedTile. Out-of-range
// tiles are ignored and the clip stays put.
func (g *Grid) SelectTile(sheetCol, sheetRow int) {
	if !g.sheetInit {
		return
	}
	if sheetCol < 0 || sheetRow < 0 || sheetCol >= g.sheetCols || sheetRow >= g.sheetRows {
		return
	}
	g.clipX = sheetCol * g.clipW
	g.clipY = sheetRow * g.clipH
}

// Clip reports the current sheet clip rect in pixels.
func (g *Grid) Clip() (x, y, w, h int) { return g.clipX, g.clipY, g.clipW, g.clipH }

// AddAnimation appends an externally-owned animation and returns its index.
// The grid never destroys animations; it only orders and indexes them.
func (g *Grid) AddAnimation(a *anim.Animation) (int, error) {
	if a == nil {
		log.Println("ui: grid rejected nil animation")
		return -1, ErrNilAnimation
	}
	g.anims = append(g.anims, a)
	return len(g.anims) - 1, nil
}

// --- render engine ---

// DrawLines outlines every cell: rows+1 horizontal and cols+1 vertical
// segments spanning the grid extent.
func (g *Grid) DrawLines(c Canvas) {
	g.resetCursor()
	ox, oy := g.drawOffset()

	for r := 0; r <= g.rows; r++ {
		c.DrawLine(g.x+ox, g.y+oy, g.x+g.Width()+ox, g.y+oy, g.lineColor)
		g.y += float32(g.cellH)
	}
	g.y = g.startY

	for col := 0; col <= g.cols; col++ {
		c.DrawLine(g.x+ox, g.y+oy, g.x+ox, g.y+g.Height()+oy, g.lineColor)
		g.x += float32(g.cellW)
	}
	g.x = g.startX
}

// Fill paints one flat rect per cell, left-to-right then top-to-bottom.
func (g *Grid) Fill(c Canvas) {
	g.resetCursor()
	ox, oy := g.drawOffset()
	w := float32(g.cellW)
	h := float32(g.cellH)

	fx, fy := g.x, g.y
	for r := 0; r < g.rows; r++ {
		for col := 0; col < g.cols; col++ {
			c.DrawQuad(fx+w*0.5+ox, fy+h*0.5+oy, w, h, g.fillColor, 0)
			fx += w
		}
		fx = g.startX
		fy += h
	}
}

// PutTexture stamps the texture at index onto cell (col, row). Indices
// outside (-1, capacity) are ignored, as are empty slots.
func (g *Grid) PutTexture(c Canvas, col, row, index int, flip renderer2d.Flip, angleRad float32) {
	g.resetCursor()
	if index <= -1 || index >= g.textureCap || index >= len(g.textures) {
		return
	}
	tex := g.textures[index]
	if tex == nil {
		return
	}
	ox, oy := g.drawOffset()
	x, y, w, h := g.CellRect(col, row)
	c.DrawSprite(x+w*0.5+ox, y+h*0.5+oy, w, h, renderer2d.Full(tex), colors.White, angleRad, flip)
}

// DrawSelectedTile stamps the sheet tile picked by SelectTile onto cell
// (col, row). A no-op without an attached sheet or outside the grid.
func (g *Grid) DrawSelectedTile(c Canvas, col, row int, flip renderer2d.Flip, angleRad float32) {
	g.resetCursor()
	if !g.sheetInit || col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		return
	}
	ox, oy := g.drawOffset()
	x, y, w, h := g.CellRect(col, row)
	sub := renderer2d.FromPixels(g.sheet, g.clipX, g.clipY, g.clipW, g.clipH, g.sheetW, g.sheetH)
	c.DrawSprite(x+w*0.5+ox, y+h*0.5+oy, w, h, sub, colors.White, angleRad, flip)
}

// RenderAnimation moves the animation at index into cell (col, row), mirrors
// the grid's flip/angle/camera settings onto it, draws it, then advances its
// playback one tick. Draw-then-advance keeps the first frame visible on the
// call that starts playback.
func (g *Grid) RenderAnimation(c Canvas, col, row, index int, flip renderer2d.Flip, angleRad float32) {
	g.resetCursor()
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		return
	}
	if index < 0 || index >= len(g.anims) {
		return
	}
	ox, oy := g.drawOffset()
	x, y, w, h := g.CellRect(col, row)

	a := g.anims[index]
	a.X, a.Y = x+ox, y+oy
	a.W, a.H = w, h
	a.Flip = flip
	a.Angle = angleRad
	a.CameraOn = g.cameraOn
	a.Draw(c)
	a.Advance()
}

// --- interaction ---

// Hover scans cells row-major and returns the first one containing the
// pointer, or the sentinel cell.
func (g *Grid) Hover(in *core.Input) Cell {
	mx, my := in.Mouse()
	return g.scan(float32(mx), float32(my))
}

// Clicked behaves like Hover but also requires button to be pressed. On a
// match the press is consumed, so one press yields at most one click across
// all callers.
func (g *Grid) Clicked(in *core.Input, button core.MouseButton) Cell {
	if !in.IsMouseDown(button) {
		return noCell
	}
	mx, my := in.Mouse()
	hit := g.scan(float32(mx), float32(my))
	if !hit.None() {
		in.ConsumeMouseButton(button)
	}
	return hit
}

// scan walks rects row-major (top-to-bottom, left-to-right); the first
// geometric match wins.
func (g *Grid) scan(px, py float32) Cell {
	g.resetCursor()
	w := float32(g.cellW)
	h := float32(g.cellH)

	cx, cy := g.x, g.y
	for r := 0; r < g.rows; r++ {
		for col := 0; col < g.cols; col++ {
			if px >= cx && px < cx+w && py >= cy && py < cy+h {
				return Cell{Col: col, Row: r, X: cx, Y: cy}
			}
			cx += w
		}
		cx = g.startX
		cy += h
	}
	return noCell
}

// --- lifecycle ---

// Destroy releases every registered texture and the sprite sheet, then
// clears the grid's stores. Animations are externally owned and left alone.
// Call at most once.
func (g *Grid) Destroy(rel TextureReleaser) {
	for _, tex := range g.textures {
		if tex != nil {
			rel.DestroyTexture(tex)
		}
	}
	g.textures = nil
	g.textureCap = 0

	if g.sheet != nil {
		rel.DestroyTexture(g.sheet)
		g.sheet = nil
	}

	g.anims = nil
	log.Println("ui: grid destroyed")
}
