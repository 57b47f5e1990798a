package scroller

import (
	"sync"

	"github.com/EDU360/game-modules/common"
	"github.com/EDU360/game-modules/engine/button"
	"github.com/EDU360/game-modules/engine/input"
	"github.com/EDU360/game-modules/engine/list_box"
)

type positionControllerImpl struct {
	mu *sync.Mutex

	mode Mode
	axis common.Axis

	// boxes are borrowed collaborators, iterated every broadcast and never
	// mutated by the controller. Order is the tie-break order of the
	// nearest-to-center search.
	boxes   []list_box.ListBox
	buttons []button.Button

	source    input.Source
	projector Projector
	viewport  Viewport

	projectionDistance float32
	containerScale     float32

	// per-gesture transient state, reset on gesture begin
	dragging        bool
	lastInputPos    common.Vec3
	currentInputPos common.Vec3
	deltaInputPos   common.Vec3
}

// Compile-time interface compliance check
var _ PositionController = &positionControllerImpl{}

// NewPositionController creates a new PositionController with the provided
// options. Gesture modes (free-moving and align-to-center) require an input
// source, a projector, and a viewport; NewPositionController panics when any
// of them is missing, matching the fail-fast construction of the scene.
// Unless button-driven control is active, all managed buttons are hidden.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - PositionController: the newly created controller
func NewPositionController(options ...PositionControllerOption) PositionController {
	pc := &positionControllerImpl{
		mu:                 &sync.Mutex{},
		mode:               ModeFreeMoving,
		axis:               common.AxisVertical,
		projectionDistance: 10.0,
		containerScale:     1.0,
	}

	for _, option := range options {
		option(pc)
	}

	if pc.containerScale <= 0 {
		pc.containerScale = 1.0
	}

	if pc.mode != ModeControlByButton {
		if pc.source == nil {
			panic("scroller: gesture modes require a non-nil input source")
		}
		if pc.projector == nil {
			panic("scroller: gesture modes require a non-nil projector")
		}
		if pc.viewport == nil {
			panic("scroller: gesture modes require a non-nil viewport")
		}
		// Buttons have no role outside button-driven control.
		for _, b := range pc.buttons {
			b.SetVisible(false)
		}
	}

	return pc
}

func (pc *positionControllerImpl) Mode() Mode {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.mode
}

func (pc *positionControllerImpl) Axis() common.Axis {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.axis
}

func (pc *positionControllerImpl) Boxes() []list_box.ListBox {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	cp := make([]list_box.ListBox, len(pc.boxes))
	copy(cp, pc.boxes)
	return cp
}

func (pc *positionControllerImpl) Buttons() []button.Button {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	cp := make([]button.Button, len(pc.buttons))
	copy(cp, pc.buttons)
	return cp
}

func (pc *positionControllerImpl) Dragging() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.dragging
}

func (pc *positionControllerImpl) Tick() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.mode == ModeControlByButton {
		return
	}

	sample := pc.source.Poll()
	switch sample.Phase {
	case input.PhaseBegan:
		// Capture the gesture anchor; no list motion on the first frame.
		pc.lastInputPos = pc.projectLocked(sample)
		pc.currentInputPos = pc.lastInputPos
		pc.deltaInputPos = common.Vec3{}
		pc.dragging = true

	case input.PhaseMoved:
		if !pc.dragging {
			return
		}
		pc.currentInputPos = pc.projectLocked(sample)
		// Deltas are frame-relative, not gesture-cumulative: the anchor
		// advances every frame so increments never double-count.
		delta := pc.currentInputPos.Sub(pc.lastInputPos).Scale(1.0 / pc.containerScale)
		pc.deltaInputPos = delta
		for _, b := range pc.boxes {
			b.UpdatePosition(delta)
		}
		pc.lastInputPos = pc.currentInputPos

	case input.PhaseEnded:
		if !pc.dragging {
			return
		}
		pc.dragging = false
		pc.slideLocked()
	}
}

func (pc *positionControllerImpl) DeltaPositionToCenter() common.Vec3 {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.deltaPositionToCenterLocked()
}

func (pc *positionControllerImpl) NextContent() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	for _, b := range pc.boxes {
		b.UnitMove(1, true)
	}
}

func (pc *positionControllerImpl) LastContent() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	for _, b := range pc.boxes {
		b.UnitMove(1, false)
	}
}

// slideLocked dispatches the end-of-gesture sliding effect: the last frame's
// scaled delta continues as release momentum, unless align-to-center is
// active, in which case the nearest-to-center offset takes precedence.
// Caller must hold the mutex.
func (pc *positionControllerImpl) slideLocked() {
	deltaPos := pc.deltaInputPos
	if pc.mode == ModeAlignToCenter {
		deltaPos = pc.deltaPositionToCenterLocked()
	}
	for _, b := range pc.boxes {
		b.SetSlidingDistance(deltaPos)
	}
}

// deltaPositionToCenterLocked performs the nearest-to-center search.
// Strict less-than comparison means the first-encountered minimal box wins
// ties. An empty box set yields the zero vector.
// Caller must hold the mutex.
func (pc *positionControllerImpl) deltaPositionToCenterLocked() common.Vec3 {
	found := false
	var best float32

	for _, b := range pc.boxes {
		x, y, _ := b.Position()

		var candidate float32
		if pc.axis == common.AxisHorizontal {
			candidate = -x
		} else {
			candidate = -y
		}

		if !found || common.Abs32(candidate) < common.Abs32(best) {
			best = candidate
			found = true
		}
	}

	if !found {
		return common.Vec3{}
	}
	return pc.axis.Vector(best)
}

// projectLocked converts a screen-space sample into the list's world space
// at the configured projection distance.
// Caller must hold the mutex.
func (pc *positionControllerImpl) projectLocked(sample input.Sample) common.Vec3 {
	x, y, z := pc.projector.ScreenToWorld(
		sample.X, sample.Y,
		pc.projectionDistance,
		pc.viewport.Width(), pc.viewport.Height(),
	)
	return common.Vec3{X: x, Y: y, Z: z}
}
