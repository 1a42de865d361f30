package osinput

import "fmt"

// Event is one recorded input primitive.
type Event struct {
	Kind   string // "move", "down", "up", "click", "double-click", "scroll", "key-down", "key-up"
	Button Button
	Key    Key
	X, Y   int
	Amount int
}

func (e Event) String() string {
	switch e.Kind {
	case "move":
		return fmt.Sprintf("move(%d,%d)", e.X, e.Y)
	case "scroll":
		return fmt.Sprintf("scroll(%d)", e.Amount)
	case "down", "up", "click":
		return fmt.Sprintf("%s(%s)", e.Kind, e.Button)
	case "key-down", "key-up":
		return fmt.Sprintf("%s(%s)", e.Kind, e.Key)
	}
	return e.Kind
}

// Recorder is a test Input that records every emitted primitive and tracks
// a virtual cursor on a virtual screen.
type Recorder struct {
	Events []Event

	X, Y          int
	Width, Height int
}

// NewRecorder creates a Recorder with a 1920x1080 virtual screen and the
// cursor at its center.
func NewRecorder() *Recorder {
	return &Recorder{
		X:      960,
		Y:      540,
		Width:  1920,
		Height: 1080,
	}
}

func (r *Recorder) MoveTo(x, y int) {
	r.X, r.Y = x, y
	r.Events = append(r.Events, Event{Kind: "move", X: x, Y: y})
}

func (r *Recorder) ButtonDown(b Button) {
	r.Events = append(r.Events, Event{Kind: "down", Button: b})
}

func (r *Recorder) ButtonUp(b Button) {
	r.Events = append(r.Events, Event{Kind: "up", Button: b})
}

func (r *Recorder) Click(b Button) {
	r.Events = append(r.Events, Event{Kind: "click", Button: b})
}

func (r *Recorder) DoubleClick() {
	r.Events = append(r.Events, Event{Kind: "double-click"})
}

func (r *Recorder) Scroll(amount int) {
	r.Events = append(r.Events, Event{Kind: "scroll", Amount: amount})
}

func (r *Recorder) KeyDown(k Key) {
	r.Events = append(r.Events, Event{Kind: "key-down", Key: k})
}

func (r *Recorder) KeyUp(k Key) {
	r.Events = append(r.Events, Event{Kind: "key-up", Key: k})
}

func (r *Recorder) CursorPosition() (int, int) {
	return r.X, r.Y
}

func (r *Recorder) ScreenSize() (int, int) {
	return r.Width, r.Height
}

// Count returns how many recorded events have the given kind.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Last returns the most recent event of the given kind, or nil.
func (r *Recorder) Last(kind string) *Event {
	for i := len(r.Events) - 1; i >= 0; i-- {
		if r.Events[i].Kind == kind {
			return &r.Events[i]
		}
	}
	return nil
}
