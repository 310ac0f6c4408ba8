package scene

import "github.com/hubastard/thicket/engine/core"

// OrthoController2D: WASD pans the camera over the scene.
type OrthoController2D struct {
	MoveSpeed float32 // pixels per second
	ZoomSpeed float32 // scroll zoom factor
	Camera    *OrthoCamera2D
}

func NewOrthoController2D(cam *OrthoCamera2D) *OrthoController2D {
	return &OrthoController2D{
		MoveSpeed: 200,
		ZoomSpeed: 1.2,
		Camera:    cam,
	}
}

func (cc *OrthoController2D) Update(e *core.Engine, dt float32) {
	in := e.Input
	speed := cc.MoveSpeed * dt

	if in.IsKeyDown(core.KeyW) {
		cc.Camera.Move(0, -speed)
	}
	if in.IsKeyDown(core.KeyS) {
		cc.Camera.Move(0, speed)
	}
	if in.IsKeyDown(core.KeyA) {
		cc.Camera.Move(-speed, 0)
	}
	if in.IsKeyDown(core.KeyD) {
		cc.Camera.Move(speed, 0)
	}
}

// HandleEvent applies scroll-wheel zoom. Returns true when the event was used.
func (cc *OrthoController2D) HandleEvent(_ *core.Engine, ev core.Event) bool {
	if s, ok := ev.(core.EventScroll); ok && s.Yoff != 0 {
		z := cc.Camera.Zoom
		if s.Yoff > 0 {
			z *= cc.ZoomSpeed
		} else {
			z /= cc.ZoomSpeed
		}
		cc.Camera.SetZoom(z)
		return true
	}
	return false
}
