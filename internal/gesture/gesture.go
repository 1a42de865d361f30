// Package gesture turns per-frame hand landmarks into stable, debounced
// gesture values and assigns detected hands to major/minor control roles.
package gesture

// Gesture identifies a recognized hand pose.
//
// Values up to Palm mirror the finger-state bit pattern that produced them
// (bit 3 = index down to bit 0 = pinky; the thumb bit is never set by the
// ratio method). Values above Palm are refined gestures that need geometric
// tests beyond the bit pattern. Callers only ever see this type; raw
// finger-state integers stay inside the classifier.
type Gesture int

const (
	Fist   Gesture = 0
	Pinky  Gesture = 1
	Ring   Gesture = 2
	Mid    Gesture = 4
	Last3  Gesture = 7
	Index  Gesture = 8
	First2 Gesture = 12
	Last4  Gesture = 15
	Thumb  Gesture = 16
	Palm   Gesture = 31

	VGesture        Gesture = 33
	TwoFingerClosed Gesture = 34
	PinchMajor      Gesture = 35
	PinchMinor      Gesture = 36
)

// String returns a short name for logging and the event feed.
func (g Gesture) String() string {
	switch g {
	case Fist:
		return "fist"
	case Pinky:
		return "pinky"
	case Ring:
		return "ring"
	case Mid:
		return "mid"
	case Last3:
		return "last3"
	case Index:
		return "index"
	case First2:
		return "first2"
	case Last4:
		return "last4"
	case Thumb:
		return "thumb"
	case Palm:
		return "palm"
	case VGesture:
		return "v-gesture"
	case TwoFingerClosed:
		return "two-finger-closed"
	case PinchMajor:
		return "pinch-major"
	case PinchMinor:
		return "pinch-minor"
	}
	return "unknown"
}

// Role says which hand a classifier tracks. The major (dominant) hand
// drives pointer and click actions, the minor hand drives pinch scrolling.
type Role int

const (
	RoleMajor Role = iota
	RoleMinor
)

func (r Role) String() string {
	if r == RoleMinor {
		return "minor"
	}
	return "major"
}

// Config holds the classifier thresholds.
type Config struct {
	// PinchDistance is the normalized thumb-to-index gap at or below
	// which an open or three-finger hand reads as a pinch.
	PinchDistance float64

	// DebounceFrames is how many consecutive identical raw
	// classifications are needed before the settled gesture changes.
	DebounceFrames int
}

// DefaultConfig returns the standard classifier thresholds.
func DefaultConfig() Config {
	return Config{
		PinchDistance:  0.05,
		DebounceFrames: 5,
	}
}
