package detector

import "gocv.io/x/gocv"

// Detector is implemented by hand-landmark sources.
type Detector interface {
	// Detect analyzes a video frame and returns the hands found in it,
	// at most Config.MaxHands. An empty slice means no hands this frame.
	Detect(frame *gocv.Mat) ([]HandLandmarks, error)

	// Close releases any resources held by the detector.
	Close() error
}

// Config holds detection options.
type Config struct {
	// MaxHands is the maximum number of hands to detect. The pointer
	// pipeline only ever uses two (major and minor).
	MaxHands int

	// MinConfidence is the minimum detection confidence (0.0-1.0).
	MinConfidence float64

	// MinTrackingConf is the minimum tracking confidence (0.0-1.0).
	MinTrackingConf float64
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		MaxHands:        2,
		MinConfidence:   0.5,
		MinTrackingConf: 0.5,
	}
}
