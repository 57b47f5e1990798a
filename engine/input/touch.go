package input

import (
	"sync"
)

// touchSource derives gesture phases from touch begin/end events. A single
// active touch is tracked; additional touches are folded into the same
// gesture, matching the single-pointer model of the list scroller.
type touchSource struct {
	mu *sync.Mutex

	active bool
	x, y   float32

	// wasActive is the active state seen by the previous Poll.
	wasActive bool
}

var _ TouchSource = &touchSource{}

// TouchSource is a Source fed by touch events.
type TouchSource interface {
	Source

	// TouchBegan records a touch starting at the given position.
	//
	// Parameters:
	//   - x, y: touch position in pixels
	TouchBegan(x, y float32)

	// TouchMoved records the active touch moving to the given position.
	// Ignored when no touch is active.
	//
	// Parameters:
	//   - x, y: touch position in pixels
	TouchMoved(x, y float32)

	// TouchEnded records the active touch lifting at the given position.
	//
	// Parameters:
	//   - x, y: touch position in pixels
	TouchEnded(x, y float32)
}

// NewTouchSource creates a touch-based input source.
//
// Returns:
//   - TouchSource: the newly created source
func NewTouchSource() TouchSource {
	return &touchSource{
		mu: &sync.Mutex{},
	}
}

func (t *touchSource) TouchBegan(x, y float32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active = true
	t.x = x
	t.y = y
}

func (t *touchSource) TouchMoved(x, y float32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.active {
		return
	}
	t.x = x
	t.y = y
}

func (t *touchSource) TouchEnded(x, y float32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active = false
	t.x = x
	t.y = y
}

func (t *touchSource) Poll() Sample {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Sample{X: t.x, Y: t.y}
	switch {
	case t.active && !t.wasActive:
		s.Phase = PhaseBegan
	case t.active && t.wasActive:
		s.Phase = PhaseMoved
	case !t.active && t.wasActive:
		s.Phase = PhaseEnded
	default:
		s.Phase = PhaseNone
	}
	t.wasActive = t.active
	return s
}
