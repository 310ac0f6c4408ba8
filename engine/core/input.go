package core

// Input tracks keyboard and pointer state fed from window events.
// A button stays pressed until released by the OS or consumed by a caller.
type Input struct {
	keys           map[Key]bool
	buttons        map[MouseButton]bool
	mouseX, mouseY float64
}

func NewInput() *Input {
	return &Input{keys: map[Key]bool{}, buttons: map[MouseButton]bool{}}
}

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		in.keys[e.Key] = e.Down
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
	case EventMouseButton:
		in.buttons[e.Button] = e.Down
	}
}

func (in *Input) IsKeyDown(k Key) bool      { return in.keys[k] }
func (in *Input) Mouse() (float64, float64) { return in.mouseX, in.mouseY }

func (in *Input) IsMouseDown(b MouseButton) bool { return in.buttons[b] }

// ConsumeMouseButton clears the pressed state so one press registers at most
// one click across all callers. Reports whether the button was pressed.
func (in *Input) ConsumeMouseButton(b MouseButton) bool {
	down := in.buttons[b]
	in.buttons[b] = false
	return down
}
