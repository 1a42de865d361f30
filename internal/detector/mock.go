package detector

import "gocv.io/x/gocv"

// MockDetector is a test implementation of the Detector interface that
// returns pre-configured results.
type MockDetector struct {
	hands []HandLandmarks
	err   error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *MockDetector) SetHands(hands []HandLandmarks) {
	m.hands = hands
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// The fixtures below are synthetic right-hand landmark sets shaped so the
// finger-state ratios come out decisively on one side of the extension
// threshold. Y grows downward, so an extended finger has its tip well above
// (numerically below) its base knuckle.

// baseHand returns a hand skeleton with the wrist and thumb placed; callers
// fill in the four fingers.
func baseHand() HandLandmarks {
	lm := HandLandmarks{
		Handedness: HandednessRight,
		Score:      0.95,
	}
	lm.Points[Wrist] = Point3D{X: 0.50, Y: 0.80}
	lm.Points[ThumbCMC] = Point3D{X: 0.55, Y: 0.75, Z: 0.02}
	lm.Points[ThumbMCP] = Point3D{X: 0.62, Y: 0.70, Z: 0.03}
	lm.Points[ThumbIP] = Point3D{X: 0.68, Y: 0.65, Z: 0.03}
	lm.Points[ThumbTip] = Point3D{X: 0.73, Y: 0.60, Z: 0.03}
	return lm
}

// extendIndex points the index finger straight up from its knuckle.
func extendIndex(lm *HandLandmarks) {
	lm.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.68}
	lm.Points[IndexPIP] = Point3D{X: 0.57, Y: 0.55}
	lm.Points[IndexDIP] = Point3D{X: 0.58, Y: 0.45}
	lm.Points[IndexTip] = Point3D{X: 0.58, Y: 0.35}
}

func extendMiddle(lm *HandLandmarks) {
	lm.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.66}
	lm.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.52}
	lm.Points[MiddleDIP] = Point3D{X: 0.50, Y: 0.40}
	lm.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.28}
}

func extendRing(lm *HandLandmarks) {
	lm.Points[RingMCP] = Point3D{X: 0.45, Y: 0.68}
	lm.Points[RingPIP] = Point3D{X: 0.43, Y: 0.55}
	lm.Points[RingDIP] = Point3D{X: 0.42, Y: 0.45}
	lm.Points[RingTip] = Point3D{X: 0.42, Y: 0.35}
}

func extendPinky(lm *HandLandmarks) {
	lm.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.70}
	lm.Points[PinkyPIP] = Point3D{X: 0.37, Y: 0.60}
	lm.Points[PinkyDIP] = Point3D{X: 0.35, Y: 0.50}
	lm.Points[PinkyTip] = Point3D{X: 0.34, Y: 0.42}
}

// Curled fingers have the tip folded slightly below the knuckle, which
// flips the sign of the extension ratio.

func curlIndex(lm *HandLandmarks) {
	lm.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.70, Z: -0.02}
	lm.Points[IndexPIP] = Point3D{X: 0.55, Y: 0.68, Z: -0.05}
	lm.Points[IndexDIP] = Point3D{X: 0.52, Y: 0.70, Z: -0.04}
	lm.Points[IndexTip] = Point3D{X: 0.50, Y: 0.72, Z: -0.02}
}

func curlMiddle(lm *HandLandmarks) {
	lm.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.68, Z: -0.02}
	lm.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.66, Z: -0.05}
	lm.Points[MiddleDIP] = Point3D{X: 0.47, Y: 0.68, Z: -0.04}
	lm.Points[MiddleTip] = Point3D{X: 0.45, Y: 0.70, Z: -0.02}
}

func curlRing(lm *HandLandmarks) {
	lm.Points[RingMCP] = Point3D{X: 0.45, Y: 0.70, Z: -0.02}
	lm.Points[RingPIP] = Point3D{X: 0.45, Y: 0.68, Z: -0.05}
	lm.Points[RingDIP] = Point3D{X: 0.42, Y: 0.70, Z: -0.04}
	lm.Points[RingTip] = Point3D{X: 0.40, Y: 0.72, Z: -0.02}
}

func curlPinky(lm *HandLandmarks) {
	lm.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.72, Z: -0.02}
	lm.Points[PinkyPIP] = Point3D{X: 0.40, Y: 0.70, Z: -0.05}
	lm.Points[PinkyDIP] = Point3D{X: 0.37, Y: 0.72, Z: -0.04}
	lm.Points[PinkyTip] = Point3D{X: 0.35, Y: 0.74, Z: -0.02}
}

// OpenPalmLandmarks returns a hand with all four fingers extended and the
// thumb well clear of the index tip.
func OpenPalmLandmarks() HandLandmarks {
	lm := baseHand()
	extendIndex(&lm)
	extendMiddle(&lm)
	extendRing(&lm)
	extendPinky(&lm)
	return lm
}

// FistLandmarks returns a hand with all four fingers curled into the palm.
func FistLandmarks() HandLandmarks {
	lm := baseHand()
	curlIndex(&lm)
	curlMiddle(&lm)
	curlRing(&lm)
	curlPinky(&lm)
	return lm
}

// VGestureLandmarks returns a hand with index and middle fingers extended
// and spread apart, ring and pinky curled.
func VGestureLandmarks() HandLandmarks {
	lm := baseHand()
	extendIndex(&lm)
	extendMiddle(&lm)
	curlRing(&lm)
	curlPinky(&lm)
	return lm
}

// TwoFingerClosedLandmarks returns a hand with index and middle fingers
// extended parallel and touching at the same depth.
func TwoFingerClosedLandmarks() HandLandmarks {
	lm := VGestureLandmarks()
	lm.Points[IndexDIP] = Point3D{X: 0.56, Y: 0.45}
	lm.Points[IndexTip] = Point3D{X: 0.56, Y: 0.35}
	lm.Points[MiddleDIP] = Point3D{X: 0.51, Y: 0.43}
	lm.Points[MiddleTip] = Point3D{X: 0.51, Y: 0.33}
	return lm
}

// TwoFingerSplitDepthLandmarks is the two-finger pose with the fingertips
// at clearly different depths, which reads as MID rather than a
// double-click gesture.
func TwoFingerSplitDepthLandmarks() HandLandmarks {
	lm := TwoFingerClosedLandmarks()
	lm.Points[MiddleTip].Z = 0.15
	return lm
}

// PinchLandmarks returns an open hand with the thumb tip brought against
// the index tip.
func PinchLandmarks() HandLandmarks {
	lm := OpenPalmLandmarks()
	lm.Points[ThumbIP] = Point3D{X: 0.62, Y: 0.45}
	lm.Points[ThumbTip] = Point3D{X: 0.57, Y: 0.36}
	return lm
}
