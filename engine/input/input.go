// package input provides the per-frame input sampling abstraction for the
// list scroller. The platform-conditional polling of the original UI code is
// replaced by an injected Source selected once at configuration time: hosts
// feed raw pointer or touch events into the source from their window
// callbacks, and the scroller polls a normalized Sample at most once per frame.
package input

import (
	"fmt"
)

// Phase classifies a single frame's gesture activity.
type Phase uint8

const (
	// PhaseNone means no gesture activity this frame.
	PhaseNone Phase = iota
	// PhaseBegan means the pointer/touch went down this frame.
	PhaseBegan
	// PhaseMoved means the pointer/touch is held down (dragging).
	PhaseMoved
	// PhaseEnded means the pointer/touch was released this frame.
	PhaseEnded
)

// String returns the phase name for logging.
func (p Phase) String() string {
	switch p {
	case PhaseBegan:
		return "began"
	case PhaseMoved:
		return "moved"
	case PhaseEnded:
		return "ended"
	default:
		return "none"
	}
}

// Sample is the normalized input state for one frame.
type Sample struct {
	// Phase is the gesture phase observed this frame.
	Phase Phase
	// X is the screen-space horizontal position in pixels.
	X float32
	// Y is the screen-space vertical position in pixels.
	Y float32
}

// Source produces one input Sample per frame.
// Implementations own the raw device state (mouse button + cursor, or touch
// events) and derive gesture phases from consecutive polls.
type Source interface {
	// Poll returns the input sample for the current frame.
	// Must be called at most once per frame; each call advances the
	// source's phase derivation (a press observed by one Poll reports
	// PhaseBegan, the next Poll reports PhaseMoved while still held).
	//
	// Returns:
	//   - Sample: the normalized input state for this frame
	Poll() Sample
}

// Platform is the coarse runtime classification used to pick an input source.
// This mirrors the original binary pointer-vs-touch split; it is not a real
// capability probe.
type Platform uint8

const (
	// PlatformDesktop uses pointer (mouse) input.
	PlatformDesktop Platform = iota
	// PlatformMobile uses touch input.
	PlatformMobile
)

// NewSource creates the input source for the given platform.
// An unmatched platform is a configuration error, not a silent fallback.
//
// Parameters:
//   - platform: the coarse platform classification
//
// Returns:
//   - Source: the pointer or touch source for the platform
//   - error: error if the platform is not recognized
func NewSource(platform Platform) (Source, error) {
	switch platform {
	case PlatformDesktop:
		return NewPointerSource(), nil
	case PlatformMobile:
		return NewTouchSource(), nil
	default:
		return nil, fmt.Errorf("input: unsupported platform %d", platform)
	}
}
