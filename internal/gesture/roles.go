package gesture

import "github.com/ayusman/mudra/internal/detector"

// RoleAssigner maps detected hands to major/minor roles from their
// handedness labels and the configured dominant-hand preference.
type RoleAssigner struct {
	dominant string
}

// NewRoleAssigner creates an assigner for the given dominant hand
// ("Left" or "Right"). Anything unrecognized falls back to right-dominant.
func NewRoleAssigner(dominant string) *RoleAssigner {
	if dominant != detector.HandednessLeft {
		dominant = detector.HandednessRight
	}
	return &RoleAssigner{dominant: dominant}
}

// Dominant returns the configured dominant-hand label.
func (ra *RoleAssigner) Dominant() string {
	return ra.dominant
}

// Assign resolves up to two detections into (major, minor) landmark sets.
// The hand labeled with the dominant side becomes major, the other minor;
// an unmatched role is nil. A hand whose handedness label is missing or
// unrecognized is dropped entirely rather than guessed, because wrong-handed
// control input is worse than none. When two detections carry the same
// label the later one wins.
func (ra *RoleAssigner) Assign(hands []detector.HandLandmarks) (major, minor *detector.HandLandmarks) {
	var left, right *detector.HandLandmarks

	for i := range hands {
		switch hands[i].Handedness {
		case detector.HandednessLeft:
			left = &hands[i]
		case detector.HandednessRight:
			right = &hands[i]
		}
	}

	if ra.dominant == detector.HandednessLeft {
		return left, right
	}
	return right, left
}
