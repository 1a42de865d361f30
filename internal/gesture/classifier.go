package gesture

import (
	"math"

	"github.com/ayusman/mudra/internal/detector"
)

// Disambiguation thresholds. These are geometric properties of a hand, not
// user preferences, so they are fixed rather than configured.
const (
	// extendedRatio is the tip-to-knuckle over knuckle-to-wrist ratio
	// above which a finger counts as extended.
	extendedRatio = 0.5

	// spreadRatio is the fingertip-gap over knuckle-gap ratio above which
	// two raised fingers count as a spread V rather than a pair.
	spreadRatio = 1.7

	// closedDepthGap is the maximum index/middle fingertip depth
	// difference for the two fingers to count as touching.
	closedDepthGap = 0.1

	// minReferenceDist replaces a degenerate knuckle-to-wrist distance so
	// the extension ratio stays finite.
	minReferenceDist = 0.01
)

// fingerSegments lists, per non-thumb finger, the landmarks used for the
// extension ratio: fingertip, base knuckle, wrist. Order matters: the
// index finger lands in the highest bit of the finger state.
var fingerSegments = [4][3]int{
	{detector.IndexTip, detector.IndexMCP, detector.Wrist},
	{detector.MiddleTip, detector.MiddleMCP, detector.Wrist},
	{detector.RingTip, detector.RingMCP, detector.Wrist},
	{detector.PinkyTip, detector.PinkyMCP, detector.Wrist},
}

// Classifier converts one hand's landmarks into a settled Gesture. It keeps
// the debounce state that absorbs single-frame detection jitter: the settled
// gesture only changes after Config.DebounceFrames identical raw
// classifications in a row.
//
// A Classifier belongs to exactly one hand role and is not safe for
// concurrent use; the frame loop drives it one frame at a time.
type Classifier struct {
	role Role
	cfg  Config

	hand    *detector.HandLandmarks
	settled Gesture
	prevRaw Gesture
	run     int
}

// NewClassifier creates a classifier for the given hand role. Both the
// settled and previous raw gestures start at Palm, the neutral state.
func NewClassifier(role Role, cfg Config) *Classifier {
	if cfg.DebounceFrames <= 0 {
		cfg.DebounceFrames = DefaultConfig().DebounceFrames
	}
	if cfg.PinchDistance <= 0 {
		cfg.PinchDistance = DefaultConfig().PinchDistance
	}
	return &Classifier{
		role:    role,
		cfg:     cfg,
		settled: Palm,
		prevRaw: Palm,
	}
}

// Update feeds the classifier this frame's landmarks and advances the
// debounce state. A nil hand means the role was not detected this frame; the
// run counters are left untouched so a dropout cannot fabricate a debounced
// transition. Call once per frame.
func (c *Classifier) Update(hand *detector.HandLandmarks) {
	c.hand = hand
	if hand == nil {
		return
	}

	raw := c.refine(c.fingerState())

	if raw == c.prevRaw {
		c.run++
	} else {
		c.run = 1
	}
	c.prevRaw = raw

	if c.run >= c.cfg.DebounceFrames {
		c.settled = raw
	}
}

// Classify returns the settled gesture for the current frame. With no hand
// present it reports Palm, the neutral open state, regardless of what was
// settled before the dropout.
func (c *Classifier) Classify() Gesture {
	if c.hand == nil {
		return Palm
	}
	return c.settled
}

// fingerState folds the four non-thumb extension booleans into a bit field.
// The thumb is not evaluated by the ratio method and contributes a constant
// zero bit.
func (c *Classifier) fingerState() int {
	state := 0
	for _, seg := range fingerSegments {
		tipDist := c.signedDist(seg[0], seg[1])
		refDist := c.signedDist(seg[1], seg[2])

		// A collapsed knuckle-to-wrist segment would divide by zero;
		// substitute a small reference length instead.
		if math.Abs(refDist) < 1e-9 {
			refDist = minReferenceDist
		}
		ratio := round1(tipDist / refDist)

		state <<= 1
		if ratio > extendedRatio {
			state |= 1
		}
	}
	return state
}

// refine applies the geometric disambiguation on top of the bit pattern, in
// priority order: pinch, then the two-finger sub-cases, then the raw
// pattern itself. A hand with all four fingers up and no pinch reads as an
// open palm.
func (c *Classifier) refine(state int) Gesture {
	pattern := Gesture(state)

	switch {
	case (pattern == Last3 || pattern == Last4) &&
		c.dist(detector.IndexTip, detector.ThumbTip) < c.cfg.PinchDistance:
		if c.role == RoleMinor {
			return PinchMinor
		}
		return PinchMajor

	case pattern == First2:
		spread := c.dist(detector.IndexTip, detector.MiddleTip) /
			c.dist(detector.IndexMCP, detector.MiddleMCP)
		if spread > spreadRatio {
			return VGesture
		}
		if c.depthGap(detector.IndexTip, detector.MiddleTip) < closedDepthGap {
			return TwoFingerClosed
		}
		return Mid

	case pattern == Last4:
		return Palm

	default:
		return pattern
	}
}

// signedDist is the planar distance between two landmarks, negated when the
// first sits below the second. The sign captures curled-vs-extended
// independent of hand size.
func (c *Classifier) signedDist(a, b int) float64 {
	sign := -1.0
	if c.hand.Points[a].Y < c.hand.Points[b].Y {
		sign = 1.0
	}
	dx := c.hand.Points[a].X - c.hand.Points[b].X
	dy := c.hand.Points[a].Y - c.hand.Points[b].Y
	return sign * math.Hypot(dx, dy)
}

// dist is the planar distance between two landmarks.
func (c *Classifier) dist(a, b int) float64 {
	dx := c.hand.Points[a].X - c.hand.Points[b].X
	dy := c.hand.Points[a].Y - c.hand.Points[b].Y
	return math.Hypot(dx, dy)
}

// depthGap is the absolute z difference between two landmarks.
func (c *Classifier) depthGap(a, b int) float64 {
	return math.Abs(c.hand.Points[a].Z - c.hand.Points[b].Z)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
