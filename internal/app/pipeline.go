package app

import (
	"log"
	"time"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/store"
)

// runPipeline is the main recognition loop. It reads camera frames, gates
// the heavy hand detector behind motion detection, and feeds detected
// hands through classification into the control mapper.
//
// The loop idles at a low frame rate until motion wakes it; after 2s
// without motion it drops back to idle.
func (a *App) runPipeline() {
	activeMode := false
	lastMotionTime := time.Now()

	frameInterval := time.Second / time.Duration(capture.IdleFPS)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-a.stopCh:
			return
		case <-ticker.C:
			if !a.IsEnabled() {
				// A disabled recognizer must not leave a button held.
				a.mapper.Handle(gesture.Palm, nil)
				a.mapper.Reset()
				continue
			}

			frame, err := a.camera.ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			motionDetected, _ := a.motion.Detect(frame)

			if motionDetected {
				lastMotionTime = time.Now()

				if !activeMode {
					activeMode = true
					a.camera.SetFPS(capture.ActiveFPS)
					frameInterval = time.Second / time.Duration(capture.ActiveFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to active mode")
				}
			} else if activeMode {
				if time.Since(lastMotionTime) > time.Duration(IdleTimeoutMs)*time.Millisecond {
					activeMode = false
					a.camera.SetFPS(capture.IdleFPS)
					frameInterval = time.Second / time.Duration(capture.IdleFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to idle mode")
				}
			}

			if !activeMode || a.detector == nil {
				frame.Close()
				continue
			}

			hands, err := a.detector.Detect(frame)
			frame.Close()

			if err != nil {
				log.Printf("Error detecting hands: %v", err)
				continue
			}

			a.processFrame(hands)
		}
	}
}

// ProcessHands runs one frame of recognition on already-detected hands.
// The pipeline calls it from the camera loop; it is exported so embedders
// can drive the recognizer from their own frame source.
func (a *App) ProcessHands(hands []detector.HandLandmarks) {
	a.processFrame(hands)
}

// processFrame runs one frame's worth of recognition: role assignment,
// per-hand classification, and control mapping. The minor hand takes over
// only while it holds a settled pinch; otherwise the dominant hand drives.
func (a *App) processFrame(hands []detector.HandLandmarks) {
	if len(hands) == 0 {
		a.major.Update(nil)
		a.minor.Update(nil)
		a.mapper.Handle(gesture.Palm, nil)
		a.mapper.Reset()
		a.recordTransition(gesture.Palm, "")
		a.publish(gesture.Palm, "", 0)
		return
	}

	majorHand, minorHand := a.roles.Assign(hands)

	a.major.Update(majorHand)
	a.minor.Update(minorHand)

	active := a.major.Classify()
	activeHand := majorHand
	handLabel := ""
	if majorHand != nil {
		handLabel = majorHand.Handedness
	}

	if minorHand != nil && a.minor.Classify() == gesture.PinchMinor {
		active = gesture.PinchMinor
		activeHand = minorHand
		handLabel = minorHand.Handedness
	}

	a.mapper.Handle(active, activeHand)

	a.recordTransition(active, handLabel)
	a.publish(active, handLabel, len(hands))
}

// recordTransition logs a settled gesture change to the event log.
func (a *App) recordTransition(g gesture.Gesture, hand string) {
	a.mu.Lock()
	changed := g != a.lastGesture
	a.lastGesture = g
	a.mu.Unlock()

	if !changed || a.config.Store == nil {
		return
	}

	err := a.config.Store.Events().Insert(&store.Event{
		Gesture: g.String(),
		Hand:    hand,
	})
	if err != nil {
		log.Printf("Failed to record gesture event: %v", err)
	}
}

// publish delivers the frame state to the OnFrame callback, if set.
func (a *App) publish(g gesture.Gesture, hand string, hands int) {
	if a.onFrame == nil {
		return
	}
	a.onFrame(FrameState{
		Gesture:  g.String(),
		Hand:     hand,
		Hands:    hands,
		Enabled:  a.IsEnabled(),
		Dragging: a.mapper.Dragging(),
	})
}
