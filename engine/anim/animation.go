package anim

import (
	"fmt"

	"github.com/hubastard/thicket/engine/colors"
	"github.com/hubastard/thicket/engine/core"
	"github.com/hubastard/thicket/engine/gfx/renderer2d"
)

// Surface is the draw target an animation renders to. *renderer2d.Renderer2D
// satisfies it.
type Surface interface {
	DrawSprite(x, y, w, h float32, sub renderer2d.SubTexture2D, tint colors.Color, rotationRad float32, flip Flip)
}

// Flip aliases the renderer's mirroring mask.
type Flip = renderer2d.Flip

const (
	FlipNone = renderer2d.FlipNone
	FlipX    = renderer2d.FlipX
	FlipY    = renderer2d.FlipY
)

// Animation plays a fixed sequence of subtexture frames. Position, size,
// orientation and the camera flag are plain fields so an owner (a grid cell,
// an entity) can reposition the animation before each draw. Playback only
// moves when Advance is called; Draw never advances, so the caller decides
// the draw/advance ordering.
type Animation struct {
	X, Y     float32 // destination top-left
	W, H     float32 // destination size
	Angle    float32 // radians
	Flip     Flip
	CameraOn bool
	Tint     colors.Color

	frames        []renderer2d.SubTexture2D
	frame         int
	tick          int
	ticksPerFrame int
}

// New builds an animation over pre-cut frames. ticksPerFrame is how many
// Advance calls each frame stays visible (min 1).
func New(frames []renderer2d.SubTexture2D, ticksPerFrame int) *Animation {
	if ticksPerFrame < 1 {
		ticksPerFrame = 1
	}
	return &Animation{frames: frames, ticksPerFrame: ticksPerFrame, Tint: colors.White}
}

// FromSheet cuts a sheet texture into sheetCols x sheetRows frames, row-major.
func FromSheet(tex core.Texture, sheetCols, sheetRows, ticksPerFrame int) (*Animation, error) {
	if tex == nil {
		return nil, fmt.Errorf("anim: nil sheet texture")
	}
	if sheetCols < 1 || sheetRows < 1 {
		return nil, fmt.Errorf("anim: bad sheet layout %dx%d", sheetCols, sheetRows)
	}
	w, h := tex.Size()
	fw, fh := w/sheetCols, h/sheetRows
	frames := make([]renderer2d.SubTexture2D, 0, sheetCols*sheetRows)
	for r := 0; r < sheetRows; r++ {
		for c := 0; c < sheetCols; c++ {
			frames = append(frames, renderer2d.FromGrid(tex, c, r, fw, fh, w, h))
		}
	}
	return New(frames, ticksPerFrame), nil
}

// Frame reports the current frame index.
func (a *Animation) Frame() int { return a.frame }

// Len reports the frame count.
func (a *Animation) Len() int { return len(a.frames) }

// Draw renders the current frame at the animation's destination rect.
func (a *Animation) Draw(s Surface) {
	if len(a.frames) == 0 {
		return
	}
	s.DrawSprite(a.X+a.W*0.5, a.Y+a.H*0.5, a.W, a.H, a.frames[a.frame], a.Tint, a.Angle, a.Flip)
}

// Advance ticks playback forward once, wrapping past the last frame.
func (a *Animation) Advance() {
	if len(a.frames) == 0 {
		return
	}
	a.tick++
	if a.tick >= a.ticksPerFrame {
		a.tick = 0
		a.frame = (a.frame + 1) % len(a.frames)
	}
}

// Reset rewinds playback to the first frame.
func (a *Animation) Reset() {
	a.frame = 0
	a.tick = 0
}
