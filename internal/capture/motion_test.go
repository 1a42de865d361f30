package capture

import (
	"testing"

	"gocv.io/x/gocv"
)

func TestNewMotionDetector(t *testing.T) {
	tests := []struct {
		name      string
		threshold float64
		want      float64
	}{
		{
			name:      "explicit threshold",
			threshold: 5.0,
			want:      5.0,
		},
		{
			name:      "zero falls back to default",
			threshold: 0,
			want:      DefaultMotionThreshold,
		},
		{
			name:      "negative falls back to default",
			threshold: -1,
			want:      DefaultMotionThreshold,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md := NewMotionDetector(tt.threshold)
			if md == nil {
				t.Fatal("NewMotionDetector returned nil")
			}
			defer md.Close()

			if md.threshold != tt.want {
				t.Errorf("threshold = %f, want %f", md.threshold, tt.want)
			}

			if md.initialized {
				t.Error("motion detector should not be initialized initially")
			}
		})
	}
}

func TestMotionDetector_NoMotion(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	md := NewMotionDetector(1.0)
	defer md.Close()

	frame1 := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame1.Close()

	frame2 := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame2.Close()

	// First frame only establishes the baseline.
	detected, changePercent := md.Detect(&frame1)
	if detected {
		t.Error("first frame should not detect motion")
	}
	if changePercent != 0 {
		t.Errorf("first frame changePercent = %f, want 0", changePercent)
	}

	detected, changePercent = md.Detect(&frame2)
	if detected {
		t.Errorf("identical frames should not detect motion, changePercent = %f", changePercent)
	}
}

func TestMotionDetector_WithMotion(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	md := NewMotionDetector(1.0)
	defer md.Close()

	dark := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer dark.Close()

	bright := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(255, 255, 255, 0), 480, 640, gocv.MatTypeCV8UC3)
	defer bright.Close()

	md.Detect(&dark)

	detected, changePercent := md.Detect(&bright)
	if !detected {
		t.Errorf("full-frame change should detect motion, changePercent = %f", changePercent)
	}
	if changePercent < 99 {
		t.Errorf("changePercent = %f, want near 100 for a full-frame change", changePercent)
	}
}

func TestMotionDetector_Reset(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	md := NewMotionDetector(1.0)
	defer md.Close()

	frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame.Close()

	md.Detect(&frame)
	md.Reset()

	if md.initialized {
		t.Error("Reset should clear the baseline")
	}

	// The frame after a reset is a new baseline, never motion.
	bright := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(255, 255, 255, 0), 480, 640, gocv.MatTypeCV8UC3)
	defer bright.Close()

	if detected, _ := md.Detect(&bright); detected {
		t.Error("first frame after reset should not detect motion")
	}
}

func TestMotionDetector_NilFrame(t *testing.T) {
	md := NewMotionDetector(1.0)
	defer md.Close()

	if detected, pct := md.Detect(nil); detected || pct != 0 {
		t.Errorf("Detect(nil) = (%v, %f), want (false, 0)", detected, pct)
	}
}
