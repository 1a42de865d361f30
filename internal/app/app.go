// Package app wires the mudra pipeline together: camera frames through
// hand detection, per-hand gesture classification, and the control mapper
// that drives the OS pointer.
package app

import (
	"log"
	"strconv"
	"sync"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/control"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/osinput"
	"github.com/ayusman/mudra/internal/store"
)

// IdleTimeoutMs is the time in milliseconds without motion before the
// pipeline drops back to the idle frame rate.
const IdleTimeoutMs = 2000

// Config holds configuration options for the application.
type Config struct {
	Store        *store.Store
	CameraID     int
	MotionThresh float64
	DominantHand string
	Gesture      gesture.Config
	Control      control.Config

	// Input is the OS input backend. Leave nil to drive the real system
	// pointer; tests inject a recorder.
	Input osinput.Input
}

// FrameState is a snapshot of recognizer state after one processed frame,
// delivered to the OnFrame callback.
type FrameState struct {
	Gesture  string
	Hand     string
	Hands    int
	Enabled  bool
	Dragging bool
}

// App is the main application that orchestrates gesture recognition and
// pointer control.
type App struct {
	config   Config
	camera   capture.Camera
	motion   *capture.MotionDetector
	detector detector.Detector
	roles    *gesture.RoleAssigner
	major    *gesture.Classifier
	minor    *gesture.Classifier
	mapper   *control.Mapper

	enabled     bool
	lastGesture gesture.Gesture
	onFrame     func(FrameState)
	mu          sync.RWMutex
	stopCh      chan struct{}
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	input := config.Input
	if input == nil {
		input = osinput.NewSystem()
	}

	a := &App{
		config:      config,
		camera:      capture.NewCamera(config.CameraID),
		motion:      capture.NewMotionDetector(config.MotionThresh),
		roles:       gesture.NewRoleAssigner(config.DominantHand),
		major:       gesture.NewClassifier(gesture.RoleMajor, config.Gesture),
		minor:       gesture.NewClassifier(gesture.RoleMinor, config.Gesture),
		mapper:      control.NewMapper(config.Control, input),
		lastGesture: gesture.Palm,
	}

	// Try MediaPipe first, fall back to mock detector
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	return a
}

// LoadConfig builds an application Config from the settings stored in the
// database, falling back to defaults for anything unset or unparseable.
func LoadConfig(st *store.Store) Config {
	config := Config{
		Store:        st,
		DominantHand: "Right",
		Gesture:      gesture.DefaultConfig(),
		Control:      control.DefaultConfig(),
	}

	if st == nil {
		return config
	}

	settings, err := st.Settings().All()
	if err != nil {
		log.Printf("Failed to load settings, using defaults: %v", err)
		return config
	}

	if v, ok := settings[store.SettingDominantHand]; ok {
		config.DominantHand = v
	}
	if v, ok := settings[store.SettingCameraDevice]; ok {
		if id, err := strconv.Atoi(v); err == nil {
			config.CameraID = id
		}
	}
	if v, ok := settings[store.SettingMotionThreshold]; ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			config.MotionThresh = f
		}
	}
	if v, ok := settings[store.SettingPinchDistance]; ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			config.Gesture.PinchDistance = f
		}
	}
	if v, ok := settings[store.SettingDebounceFrames]; ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			config.Gesture.DebounceFrames = n
		}
	}
	if v, ok := settings[store.SettingScrollThreshold]; ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			config.Control.ScrollThreshold = f
		}
	}

	return config
}

// SetEnabled enables or disables gesture control.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled returns whether gesture control is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetDetector sets the hand detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// OnFrame registers a callback invoked after every processed frame with
// the recognizer state. Set it before Start.
func (a *App) OnFrame(fn func(FrameState)) {
	a.onFrame = fn
}

// Start begins the recognition pipeline.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}

	a.camera.SetFPS(capture.IdleFPS)

	a.stopCh = make(chan struct{})
	go a.runPipeline()

	log.Println("Recognition pipeline started")
	return nil
}

// Stop halts the recognition pipeline and releases resources.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	a.motion.Close()

	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Recognition pipeline stopped")
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	return a.camera
}

// MotionDetector returns the motion detector instance.
func (a *App) MotionDetector() *capture.MotionDetector {
	return a.motion
}

// Detector returns the hand detector.
func (a *App) Detector() detector.Detector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.detector
}

// LastGesture returns the most recent settled gesture name.
func (a *App) LastGesture() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.lastGesture.String()
}
