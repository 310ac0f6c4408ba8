package anim

import (
	"testing"

	"github.com/hubastard/thicket/engine/colors"
	"github.com/hubastard/thicket/engine/gfx/renderer2d"
)

type fakeTexture struct{ w, h int }

func (t *fakeTexture) Size() (int, int) { return t.w, t.h }

type drawCall struct {
	x, y, w, h float32
	sub        renderer2d.SubTexture2D
	flip       Flip
}

type fakeSurface struct{ calls []drawCall }

func (f *fakeSurface) DrawSprite(x, y, w, h float32, sub renderer2d.SubTexture2D, tint colors.Color, rotationRad float32, flip Flip) {
	f.calls = append(f.calls, drawCall{x, y, w, h, sub, flip})
}

func TestFromSheetFrames(t *testing.T) {
	a, err := FromSheet(&fakeTexture{96, 64}, 3, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	if a.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", a.Len())
	}

	third := float32(1) / 3
	s := &fakeSurface{}
	// frames are cut row-major: frame 4 is (col 1, row 1)
	for i := 0; i < 4; i++ {
		a.Advance()
	}
	a.Draw(s)
	sub := s.calls[0].sub
	if !closeTo(sub.U0, third) || !closeTo(sub.V0, 0.5) {
		t.Fatalf("frame 4 UV origin = (%v,%v), want (1/3, 0.5)", sub.U0, sub.V0)
	}
}

func TestFromSheetErrors(t *testing.T) {
	if _, err := FromSheet(nil, 2, 2, 1); err == nil {
		t.Fatal("nil texture accepted")
	}
	if _, err := FromSheet(&fakeTexture{32, 32}, 0, 2, 1); err == nil {
		t.Fatal("zero columns accepted")
	}
}

func TestAdvanceWraps(t *testing.T) {
	a, err := FromSheet(&fakeTexture{64, 32}, 2, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	a.Advance()
	if a.Frame() != 1 {
		t.Fatalf("Frame() = %d, want 1", a.Frame())
	}
	a.Advance()
	if a.Frame() != 0 {
		t.Fatalf("Frame() after wrap = %d, want 0", a.Frame())
	}
}

func TestTicksPerFrameHolds(t *testing.T) {
	a, err := FromSheet(&fakeTexture{64, 32}, 2, 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	a.Advance()
	a.Advance()
	if a.Frame() != 0 {
		t.Fatalf("frame moved after %d of 3 ticks", 2)
	}
	a.Advance()
	if a.Frame() != 1 {
		t.Fatalf("frame did not move after 3 ticks")
	}
}

func TestDrawCentersDestination(t *testing.T) {
	a, err := FromSheet(&fakeTexture{64, 32}, 2, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	a.X, a.Y = 100, 40
	a.W, a.H = 32, 32
	a.Flip = FlipY

	s := &fakeSurface{}
	a.Draw(s)
	c := s.calls[0]
	if c.x != 116 || c.y != 56 {
		t.Fatalf("draw center = (%v,%v), want (116,56)", c.x, c.y)
	}
	if c.flip != FlipY {
		t.Fatalf("flip = %v, want FlipY", c.flip)
	}
	// drawing never advances playback
	if a.Frame() != 0 {
		t.Fatalf("Draw advanced to frame %d", a.Frame())
	}
}

func TestEmptyAnimationDrawsNothing(t *testing.T) {
	a := New(nil, 1)
	s := &fakeSurface{}
	a.Draw(s)
	a.Advance()
	if len(s.calls) != 0 {
		t.Fatal("empty animation emitted a draw")
	}
	if a.Frame() != 0 {
		t.Fatal("empty animation advanced")
	}
}

func TestReset(t *testing.T) {
	a, err := FromSheet(&fakeTexture{96, 32}, 3, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	a.Advance()
	a.Advance()
	a.Reset()
	if a.Frame() != 0 {
		t.Fatalf("Frame() after Reset = %d", a.Frame())
	}
}

func closeTo(got, want float32) bool {
	d := got - want
	return d > -1e-6 && d < 1e-6
}
