package osinput

import "testing"

func TestRecorder_TracksVirtualCursor(t *testing.T) {
	r := NewRecorder()

	w, h := r.ScreenSize()
	if w != 1920 || h != 1080 {
		t.Errorf("ScreenSize() = %dx%d, want 1920x1080", w, h)
	}

	x, y := r.CursorPosition()
	if x != w/2 || y != h/2 {
		t.Errorf("initial cursor = (%d,%d), want screen center", x, y)
	}

	r.MoveTo(100, 200)
	x, y = r.CursorPosition()
	if x != 100 || y != 200 {
		t.Errorf("cursor after MoveTo = (%d,%d), want (100,200)", x, y)
	}
}

func TestRecorder_CountsAndLast(t *testing.T) {
	r := NewRecorder()

	r.ButtonDown(ButtonLeft)
	r.Scroll(120)
	r.Scroll(-120)
	r.ButtonUp(ButtonLeft)

	if r.Count("scroll") != 2 {
		t.Errorf("Count(scroll) = %d, want 2", r.Count("scroll"))
	}
	if last := r.Last("scroll"); last == nil || last.Amount != -120 {
		t.Errorf("Last(scroll) = %v, want amount -120", last)
	}
	if r.Last("click") != nil {
		t.Error("Last(click) should be nil when no click was recorded")
	}
}
