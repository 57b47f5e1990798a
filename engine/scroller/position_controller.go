package scroller

import (
	"github.com/EDU360/game-modules/common"
	"github.com/EDU360/game-modules/engine/button"
	"github.com/EDU360/game-modules/engine/list_box"
)

// Mode selects how the position controller moves its list boxes.
type Mode uint8

const (
	// ModeFreeMoving drags freely and keeps the release momentum as the
	// sliding distance.
	ModeFreeMoving Mode = iota
	// ModeAlignToCenter drags freely but snaps the nearest box to the list
	// center at gesture end, overriding release momentum.
	ModeAlignToCenter
	// ModeControlByButton disables gesture input entirely; the list advances
	// only through discrete unit moves from UI buttons.
	ModeControlByButton
)

// String returns the mode name for logging.
func (m Mode) String() string {
	switch m {
	case ModeAlignToCenter:
		return "align-to-center"
	case ModeControlByButton:
		return "control-by-button"
	default:
		return "free-moving"
	}
}

// Projector converts screen-space pointer coordinates to world space at a
// given depth. Satisfied by camera.Camera.
type Projector interface {
	// ScreenToWorld projects a screen point onto the plane depth world units
	// in front of the camera along the pointer ray.
	//
	// Parameters:
	//   - screenX, screenY: pointer position in pixels
	//   - depth: distance from the camera along the pointer ray
	//   - viewportWidth, viewportHeight: viewport size in pixels
	//
	// Returns:
	//   - x, y, z: the projected world-space point
	ScreenToWorld(screenX, screenY, depth float32, viewportWidth, viewportHeight int) (x, y, z float32)
}

// Viewport reports the current viewport size in pixels.
// Satisfied by window.Window.
type Viewport interface {
	// Width returns the viewport width in pixels.
	Width() int

	// Height returns the viewport height in pixels.
	Height() int
}

// PositionController translates pointer/touch drag input into per-frame
// position deltas or end-of-gesture sliding distances, broadcast to a fixed
// set of ListBox collaborators. One controller instance is owned by the UI
// scene's composition root and lives for the scene's duration.
type PositionController interface {
	// Mode returns the configured control mode.
	//
	// Returns:
	//   - Mode: the control mode
	Mode() Mode

	// Axis returns the configured scrolling axis.
	//
	// Returns:
	//   - common.Axis: the scrolling axis
	Axis() common.Axis

	// Boxes returns a copy of the managed box sequence, in broadcast and
	// tie-break order.
	//
	// Returns:
	//   - []list_box.ListBox: the managed boxes
	Boxes() []list_box.ListBox

	// Buttons returns a copy of the managed button sequence.
	//
	// Returns:
	//   - []button.Button: the managed buttons
	Buttons() []button.Button

	// Tick runs one frame of gesture processing: it polls the input source
	// exactly once and, depending on the observed phase, records the gesture
	// start, broadcasts a drag delta to every box, or dispatches the sliding
	// effect. The broadcast always happens after the sample, within the same
	// call. No-op in ModeControlByButton (no input polling occurs at all).
	Tick()

	// Dragging returns whether a gesture is currently in progress.
	//
	// Returns:
	//   - bool: true between a began and an ended phase
	Dragging() bool

	// DeltaPositionToCenter scans the managed boxes and returns the offset
	// that moves the box nearest the list center exactly onto it: the
	// negation of the smallest-magnitude active-axis position. The first
	// box encountered at the minimal distance wins ties (scan order is the
	// managed-box order). Returns the zero vector for an empty box set.
	//
	// Returns:
	//   - common.Vec3: the snap offset, populated only on the active axis
	DeltaPositionToCenter() common.Vec3

	// NextContent advances every box one slot forward. Pure dispatch:
	// every managed box receives UnitMove(1, true) exactly once.
	// Wire this to the "next" UI button.
	NextContent()

	// LastContent advances every box one slot backward. Every managed box
	// receives UnitMove(1, false) exactly once.
	// Wire this to the "previous" UI button.
	LastContent()
}
