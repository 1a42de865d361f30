package gesture

import (
	"testing"

	"github.com/ayusman/mudra/internal/detector"
)

// feed runs n frames of the same hand through the classifier.
func feed(c *Classifier, hand detector.HandLandmarks, n int) {
	for i := 0; i < n; i++ {
		c.Update(&hand)
	}
}

func TestClassifier_SettlesAfterDebounce(t *testing.T) {
	tests := []struct {
		name string
		role Role
		hand detector.HandLandmarks
		want Gesture
	}{
		{"open palm", RoleMajor, detector.OpenPalmLandmarks(), Palm},
		{"fist", RoleMajor, detector.FistLandmarks(), Fist},
		{"v gesture", RoleMajor, detector.VGestureLandmarks(), VGesture},
		{"two fingers closed", RoleMajor, detector.TwoFingerClosedLandmarks(), TwoFingerClosed},
		{"two fingers split depth", RoleMajor, detector.TwoFingerSplitDepthLandmarks(), Mid},
		{"pinch on major hand", RoleMajor, detector.PinchLandmarks(), PinchMajor},
		{"pinch on minor hand", RoleMinor, detector.PinchLandmarks(), PinchMinor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClassifier(tt.role, DefaultConfig())

			feed(c, tt.hand, 5)

			if got := c.Classify(); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifier_DoesNotSettleEarly(t *testing.T) {
	c := NewClassifier(RoleMajor, DefaultConfig())

	feed(c, detector.FistLandmarks(), 4)

	if got := c.Classify(); got != Palm {
		t.Errorf("Classify() after 4 frames = %v, want the initial %v", got, Palm)
	}

	c.Update(fistHand())
	if got := c.Classify(); got != Fist {
		t.Errorf("Classify() after 5 frames = %v, want %v", got, Fist)
	}
}

func fistHand() *detector.HandLandmarks {
	hand := detector.FistLandmarks()
	return &hand
}

func TestClassifier_SingleFrameJitterIsAbsorbed(t *testing.T) {
	c := NewClassifier(RoleMajor, DefaultConfig())

	// 4 frames of fist, one stray palm frame, then fist again: the run
	// counter restarts and the stray frame must never surface.
	feed(c, detector.FistLandmarks(), 4)
	feed(c, detector.OpenPalmLandmarks(), 1)
	feed(c, detector.FistLandmarks(), 4)

	if got := c.Classify(); got != Palm {
		t.Errorf("Classify() = %v, want the initial %v (no settle)", got, Palm)
	}

	// One more fist frame completes a clean run of 5.
	feed(c, detector.FistLandmarks(), 1)
	if got := c.Classify(); got != Fist {
		t.Errorf("Classify() = %v, want %v", got, Fist)
	}
}

func TestClassifier_NilHandReadsAsPalm(t *testing.T) {
	c := NewClassifier(RoleMajor, DefaultConfig())

	c.Update(nil)
	if got := c.Classify(); got != Palm {
		t.Errorf("Classify() with no hand = %v, want %v", got, Palm)
	}

	// A dropout must not corrupt the settled gesture or the run counters.
	feed(c, detector.FistLandmarks(), 5)
	c.Update(nil)
	if got := c.Classify(); got != Palm {
		t.Errorf("Classify() during dropout = %v, want %v", got, Palm)
	}

	c.Update(fistHand())
	if got := c.Classify(); got != Fist {
		t.Errorf("Classify() after dropout = %v, want the settled %v", got, Fist)
	}
}

func TestClassifier_DegenerateGeometry(t *testing.T) {
	// Every landmark at the same point collapses all reference distances;
	// classification must stay finite and fall through to a fist pattern.
	var hand detector.HandLandmarks
	hand.Handedness = detector.HandednessRight
	for i := range hand.Points {
		hand.Points[i] = detector.Point3D{X: 0.5, Y: 0.5}
	}

	c := NewClassifier(RoleMajor, DefaultConfig())
	feed(c, hand, 5)

	if got := c.Classify(); got != Fist {
		t.Errorf("Classify() = %v, want %v", got, Fist)
	}
}

func TestClassifier_PinchNeedsClosedThumb(t *testing.T) {
	// Same finger pattern as a pinch but with the thumb clear of the
	// index tip: stays an open palm.
	c := NewClassifier(RoleMajor, DefaultConfig())
	feed(c, detector.OpenPalmLandmarks(), 5)

	if got := c.Classify(); got != Palm {
		t.Errorf("Classify() = %v, want %v", got, Palm)
	}
}

func TestClassifier_TransitionBetweenGestures(t *testing.T) {
	c := NewClassifier(RoleMajor, DefaultConfig())

	feed(c, detector.VGestureLandmarks(), 5)
	if got := c.Classify(); got != VGesture {
		t.Fatalf("Classify() = %v, want %v", got, VGesture)
	}

	// The old gesture holds through the next gesture's debounce window.
	feed(c, detector.FistLandmarks(), 4)
	if got := c.Classify(); got != VGesture {
		t.Errorf("Classify() mid-transition = %v, want %v", got, VGesture)
	}

	feed(c, detector.FistLandmarks(), 1)
	if got := c.Classify(); got != Fist {
		t.Errorf("Classify() = %v, want %v", got, Fist)
	}
}

func TestGesture_String(t *testing.T) {
	if Palm.String() != "palm" {
		t.Errorf("Palm.String() = %q", Palm.String())
	}
	if PinchMinor.String() != "pinch-minor" {
		t.Errorf("PinchMinor.String() = %q", PinchMinor.String())
	}
	if Gesture(3).String() != "unknown" {
		t.Errorf("Gesture(3).String() = %q", Gesture(3).String())
	}
}
