package osinput

import "github.com/go-vgo/robotgo"

// System is the production Input backed by robotgo.
type System struct{}

// NewSystem creates the robotgo-backed input.
func NewSystem() *System {
	return &System{}
}

func (s *System) MoveTo(x, y int) {
	robotgo.Move(x, y)
}

func (s *System) ButtonDown(b Button) {
	robotgo.Toggle(string(b), "down")
}

func (s *System) ButtonUp(b Button) {
	robotgo.Toggle(string(b), "up")
}

func (s *System) Click(b Button) {
	robotgo.Click(string(b))
}

func (s *System) DoubleClick() {
	robotgo.Click(string(ButtonLeft), true)
}

func (s *System) Scroll(amount int) {
	robotgo.Scroll(0, amount)
}

func (s *System) KeyDown(k Key) {
	robotgo.KeyToggle(string(k), "down")
}

func (s *System) KeyUp(k Key) {
	robotgo.KeyToggle(string(k), "up")
}

func (s *System) CursorPosition() (int, int) {
	return robotgo.Location()
}

func (s *System) ScreenSize() (int, int) {
	return robotgo.GetScreenSize()
}
