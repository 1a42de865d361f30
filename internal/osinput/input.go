// Package osinput injects pointer and keyboard events into the operating
// system. The control layer only ever talks to the Input interface, so tests
// can record the emitted actions instead of moving a real cursor.
package osinput

// Button identifies a mouse button.
type Button string

const (
	ButtonLeft  Button = "left"
	ButtonRight Button = "right"
)

// Key identifies a keyboard key used for chorded input.
type Key string

const (
	KeyShift Key = "shift"
	KeyCtrl  Key = "ctrl"
)

// Input is the set of primitives the control mapper emits. Coordinates are
// absolute screen pixels; all calls are fire-and-forget.
type Input interface {
	// MoveTo places the cursor at the given screen position.
	MoveTo(x, y int)

	// ButtonDown presses and holds a mouse button.
	ButtonDown(b Button)

	// ButtonUp releases a held mouse button.
	ButtonUp(b Button)

	// Click presses and releases a mouse button.
	Click(b Button)

	// DoubleClick emits a double click of the primary button.
	DoubleClick()

	// Scroll turns the wheel by amount units; positive scrolls up.
	Scroll(amount int)

	// KeyDown presses and holds a key.
	KeyDown(k Key)

	// KeyUp releases a held key.
	KeyUp(k Key)

	// CursorPosition reports the cursor's current screen position.
	CursorPosition() (x, y int)

	// ScreenSize reports the primary display size in pixels.
	ScreenSize() (w, h int)
}
