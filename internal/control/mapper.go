// Package control maps settled gestures and hand position onto OS pointer
// actions: cursor movement with non-linear damping, clicks, drags, and
// quantized pinch scrolling.
package control

import (
	"math"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/osinput"
)

// pinchStableFrames is how many consecutive stable displacement readings a
// pinch needs before a scroll step is committed. Like the gesture debounce,
// this is a fixed property of the state machine.
const pinchStableFrames = 5

// Config holds the mapper's tuning constants.
type Config struct {
	// DeadZoneSq is the squared pixel delta at or below which the cursor
	// holds still, suppressing sub-pixel jitter.
	DeadZoneSq float64

	// FastZoneSq is the squared pixel delta above which motion passes
	// through at FastScale instead of the progressive mid-range curve.
	FastZoneSq float64

	// MidScale multiplies sqrt(delta^2) in the progressive mid range.
	MidScale float64

	// FastScale is the flat multiplier for fast flicks.
	FastScale float64

	// ScrollThreshold is the quantization step for pinch displacement
	// levels.
	ScrollThreshold float64

	// WheelStep is the magnitude of one committed scroll, in wheel units.
	WheelStep int
}

// DefaultConfig returns the standard mapper tuning.
func DefaultConfig() Config {
	return Config{
		DeadZoneSq:      25,
		FastZoneSq:      900,
		MidScale:        0.07,
		FastScale:       2.1,
		ScrollThreshold: 0.3,
		WheelStep:       120,
	}
}

// pinchSession is the state of one live pinch-scroll gesture, from the
// frame the pinch is first seen until any other gesture ends it.
type pinchSession struct {
	originX, originY float64 // index fingertip when the pinch began
	level            float64 // committed quantized displacement
	prevLevel        float64 // candidate displacement being stabilized
	frames           int
	horizontal       bool
}

// Mapper is the control-mapping state machine. One instance owns all
// pointer state: the armed flag set by a V gesture, the drag hold, the
// cursor damping anchor, and the pinch session. It is driven one frame at a
// time and is not safe for concurrent use.
type Mapper struct {
	cfg   Config
	input osinput.Input

	armed      bool
	dragging   bool
	pinchMajor bool
	pinchMinor bool

	hasAnchor        bool
	anchorX, anchorY float64

	pinch pinchSession
}

// NewMapper creates a Mapper emitting actions through the given input.
func NewMapper(cfg Config, input osinput.Input) *Mapper {
	if cfg.WheelStep == 0 {
		cfg = DefaultConfig()
	}
	return &Mapper{cfg: cfg, input: input}
}

// Handle consumes the active hand's settled gesture for one frame and emits
// whatever pointer actions it implies. The flag-reset pass runs first so a
// gesture change can never leave a button held or a stale pinch session
// alive.
func (m *Mapper) Handle(g gesture.Gesture, hand *detector.HandLandmarks) {
	if hand == nil {
		m.releaseAll(g)
		return
	}

	var px, py int
	if g != gesture.Palm {
		px, py = m.position(hand)
	}

	m.releaseAll(g)

	switch g {
	case gesture.VGesture:
		m.armed = true
		m.input.MoveTo(px, py)

	case gesture.Fist:
		if !m.dragging {
			m.dragging = true
			m.input.ButtonDown(osinput.ButtonLeft)
		}
		m.input.MoveTo(px, py)

	case gesture.Mid:
		if m.armed {
			m.input.Click(osinput.ButtonLeft)
			m.armed = false
		}

	case gesture.Index:
		if m.armed {
			m.input.Click(osinput.ButtonRight)
			m.armed = false
		}

	case gesture.TwoFingerClosed:
		if m.armed {
			m.input.DoubleClick()
			m.armed = false
		}

	case gesture.PinchMinor:
		if !m.pinchMinor {
			m.startPinch(hand)
			m.pinchMinor = true
		}
		m.stepPinch(hand)

	case gesture.PinchMajor:
		// Classified and reported but mapped to no primitive; the minor
		// hand owns scrolling.
		m.pinchMajor = true
	}
}

// Reset clears the cursor damping anchor. The frame loop calls it when no
// hand is visible so the cursor does not jump when tracking resumes.
func (m *Mapper) Reset() {
	m.hasAnchor = false
}

// Dragging reports whether a FIST drag currently holds the primary button.
func (m *Mapper) Dragging() bool {
	return m.dragging
}

// Armed reports whether a V gesture has armed the click gestures.
func (m *Mapper) Armed() bool {
	return m.armed
}

// releaseAll is the per-frame flag-reset rule: leaving FIST releases a held
// drag, and leaving a pinch gesture ends its session.
func (m *Mapper) releaseAll(g gesture.Gesture) {
	if g != gesture.Fist && m.dragging {
		m.dragging = false
		m.input.ButtonUp(osinput.ButtonLeft)
	}
	if g != gesture.PinchMajor && m.pinchMajor {
		m.pinchMajor = false
	}
	if g != gesture.PinchMinor && m.pinchMinor {
		m.pinchMinor = false
	}
}

// position converts the hand's anchor landmark to a damped screen position.
// The anchor is the middle-finger knuckle rather than a fingertip, which
// moves far less while fingers change pose. The damping curve has three
// tiers on the squared frame-to-frame delta: a dead zone that swallows
// jitter, a progressive mid range, and a flat fast tier for flicks.
func (m *Mapper) position(hand *detector.HandLandmarks) (int, int) {
	anchor := hand.Points[detector.MiddleMCP]
	sw, sh := m.input.ScreenSize()

	x := float64(int(anchor.X * float64(sw)))
	y := float64(int(anchor.Y * float64(sh)))

	if !m.hasAnchor {
		m.anchorX, m.anchorY = x, y
		m.hasAnchor = true
	}

	dx := x - m.anchorX
	dy := y - m.anchorY
	m.anchorX, m.anchorY = x, y

	distSq := dx*dx + dy*dy

	var scale float64
	switch {
	case distSq <= m.cfg.DeadZoneSq:
		scale = 0
	case distSq <= m.cfg.FastZoneSq:
		scale = m.cfg.MidScale * math.Sqrt(distSq)
	default:
		scale = m.cfg.FastScale
	}

	cx, cy := m.input.CursorPosition()
	return int(math.Round(float64(cx) + dx*scale)), int(math.Round(float64(cy) + dy*scale))
}

// startPinch opens a pinch session anchored at the index fingertip.
func (m *Mapper) startPinch(hand *detector.HandLandmarks) {
	m.pinch = pinchSession{
		originX: hand.Points[detector.IndexTip].X,
		originY: hand.Points[detector.IndexTip].Y,
	}
}

// stepPinch advances the pinch-scroll sub-machine one frame. A pending
// commit from the previous frame fires first; then the current displacement
// either extends the stability run or becomes the new candidate level.
// Scrolling therefore happens in discrete quantized steps, never
// continuously, so hand tremor cannot cause runaway scrolling.
func (m *Mapper) stepPinch(hand *detector.HandLandmarks) {
	if m.pinch.frames == pinchStableFrames {
		m.pinch.frames = 0
		m.pinch.level = m.pinch.prevLevel

		if m.pinch.horizontal {
			m.scrollHorizontal()
		} else {
			m.scrollVertical()
		}
	}

	// Displacement from the pinch origin, x10 and rounded to one decimal
	// so levels quantize cleanly. Up and right are positive.
	lvx := round1((hand.Points[detector.IndexTip].X - m.pinch.originX) * 10)
	lvy := round1((m.pinch.originY - hand.Points[detector.IndexTip].Y) * 10)

	switch {
	case math.Abs(lvy) > math.Abs(lvx) && math.Abs(lvy) > m.cfg.ScrollThreshold:
		m.pinch.horizontal = false
		m.trackLevel(lvy)
	case math.Abs(lvx) > m.cfg.ScrollThreshold:
		m.pinch.horizontal = true
		m.trackLevel(lvx)
	}
}

func (m *Mapper) trackLevel(lv float64) {
	if math.Abs(m.pinch.prevLevel-lv) < m.cfg.ScrollThreshold {
		m.pinch.frames++
	} else {
		m.pinch.prevLevel = lv
		m.pinch.frames = 0
	}
}

func (m *Mapper) scrollVertical() {
	step := m.cfg.WheelStep
	if m.pinch.level <= 0 {
		step = -step
	}
	m.input.Scroll(step)
}

// scrollHorizontal emulates a horizontal wheel by chording shift+ctrl
// around a vertical scroll, for platforms without a native horizontal
// scroll primitive.
func (m *Mapper) scrollHorizontal() {
	step := -m.cfg.WheelStep
	if m.pinch.level <= 0 {
		step = -step
	}
	m.input.KeyDown(osinput.KeyShift)
	m.input.KeyDown(osinput.KeyCtrl)
	m.input.Scroll(step)
	m.input.KeyUp(osinput.KeyCtrl)
	m.input.KeyUp(osinput.KeyShift)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
