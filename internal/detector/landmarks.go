// Package detector defines the hand-landmark boundary: the types produced by
// a landmark source and the interface the rest of the system consumes them
// through.
package detector

// Hand landmark indices following the MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Handedness labels reported by the landmark source. Anything else is
// treated as unclassified and the hand is dropped during role assignment.
const (
	HandednessLeft  = "Left"
	HandednessRight = "Right"
)

// Point3D is a single landmark position. X and Y are normalized frame
// coordinates in [0,1]; Z is relative depth with smaller values closer to
// the camera.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HandLandmarks is one detected hand: the 21 landmark points plus the
// handedness classification and its confidence score. The fixed-size array
// guarantees a full landmark set to every consumer; a detection that could
// not produce all 21 points never leaves the detector.
type HandLandmarks struct {
	Points     [NumLandmarks]Point3D `json:"points"`
	Handedness string                `json:"handedness"`
	Score      float64               `json:"score"`
}
