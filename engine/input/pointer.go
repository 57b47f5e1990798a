package input

import (
	"sync"
)

// pointerSource derives gesture phases from mouse button + cursor state.
// Hosts feed it from window callbacks: SetPressed on button press/release,
// SetPosition on cursor movement.
type pointerSource struct {
	mu *sync.Mutex

	pressed bool
	x, y    float32

	// wasPressed is the pressed state seen by the previous Poll.
	wasPressed bool
}

var _ PointerSource = &pointerSource{}

// PointerSource is a Source fed by mouse events.
type PointerSource interface {
	Source

	// SetPressed records the primary button state.
	// Wire this to the window's mouse down/up callbacks.
	//
	// Parameters:
	//   - pressed: true while the primary button is held
	SetPressed(pressed bool)

	// SetPosition records the cursor position in screen pixels.
	// Wire this to the window's cursor move callback.
	//
	// Parameters:
	//   - x, y: cursor position in pixels
	SetPosition(x, y float32)
}

// NewPointerSource creates a pointer-based input source.
//
// Returns:
//   - PointerSource: the newly created source
func NewPointerSource() PointerSource {
	return &pointerSource{
		mu: &sync.Mutex{},
	}
}

func (p *pointerSource) SetPressed(pressed bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pressed = pressed
}

func (p *pointerSource) SetPosition(x, y float32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.x = x
	p.y = y
}

func (p *pointerSource) Poll() Sample {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := Sample{X: p.x, Y: p.y}
	switch {
	case p.pressed && !p.wasPressed:
		s.Phase = PhaseBegan
	case p.pressed && p.wasPressed:
		s.Phase = PhaseMoved
	case !p.pressed && p.wasPressed:
		s.Phase = PhaseEnded
	default:
		s.Phase = PhaseNone
	}
	p.wasPressed = p.pressed
	return s
}
