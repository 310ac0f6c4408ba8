package core

import "testing"

func TestInputKeyState(t *testing.T) {
	in := NewInput()
	if in.IsKeyDown(KeyW) {
		t.Fatal("fresh input reports a key down")
	}
	in.Handle(EventKey{Key: KeyW, Down: true})
	if !in.IsKeyDown(KeyW) {
		t.Fatal("key press not tracked")
	}
	in.Handle(EventKey{Key: KeyW, Down: false})
	if in.IsKeyDown(KeyW) {
		t.Fatal("key release not tracked")
	}
}

func TestInputMousePosition(t *testing.T) {
	in := NewInput()
	in.Handle(EventMouseMove{X: 12.5, Y: 48})
	x, y := in.Mouse()
	if x != 12.5 || y != 48 {
		t.Fatalf("Mouse() = (%v,%v), want (12.5,48)", x, y)
	}
}

func TestInputMouseButtons(t *testing.T) {
	in := NewInput()
	in.Handle(EventMouseButton{Button: MouseLeft, Down: true})
	if !in.IsMouseDown(MouseLeft) {
		t.Fatal("press not tracked")
	}
	if in.IsMouseDown(MouseRight) {
		t.Fatal("wrong button reported down")
	}
	in.Handle(EventMouseButton{Button: MouseLeft, Down: false})
	if in.IsMouseDown(MouseLeft) {
		t.Fatal("release not tracked")
	}
}

func TestConsumeMouseButton(t *testing.T) {
	in := NewInput()
	in.Handle(EventMouseButton{Button: MouseLeft, Down: true})

	if !in.ConsumeMouseButton(MouseLeft) {
		t.Fatal("consume did not report the pressed state")
	}
	if in.IsMouseDown(MouseLeft) {
		t.Fatal("consume left the button pressed")
	}
	if in.ConsumeMouseButton(MouseLeft) {
		t.Fatal("second consume reported a press")
	}

	// a fresh OS press re-arms the button
	in.Handle(EventMouseButton{Button: MouseLeft, Down: true})
	if !in.IsMouseDown(MouseLeft) {
		t.Fatal("new press not tracked after consume")
	}
}
