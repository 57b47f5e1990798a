package scroller

import (
	"github.com/EDU360/game-modules/common"
	"github.com/EDU360/game-modules/engine/button"
	"github.com/EDU360/game-modules/engine/input"
	"github.com/EDU360/game-modules/engine/list_box"
)

// PositionControllerOption is a functional option for configuring a PositionController.
type PositionControllerOption func(*positionControllerImpl)

// WithMode sets the control mode.
//
// Parameters:
//   - mode: free-moving, align-to-center, or control-by-button
//
// Returns:
//   - PositionControllerOption: functional option to set the mode
func WithMode(mode Mode) PositionControllerOption {
	return func(pc *positionControllerImpl) {
		pc.mode = mode
	}
}

// WithAxis sets the scrolling axis.
//
// Parameters:
//   - axis: the single axis all list motion is restricted to
//
// Returns:
//   - PositionControllerOption: functional option to set the axis
func WithAxis(axis common.Axis) PositionControllerOption {
	return func(pc *positionControllerImpl) {
		pc.axis = axis
	}
}

// WithBoxes sets the managed box sequence. Order matters: it is both the
// broadcast order and the tie-break order of the nearest-to-center search.
// The boxes are borrowed, not owned; their lifetime is managed by the scene.
//
// Parameters:
//   - boxes: the ListBox collaborators to manage
//
// Returns:
//   - PositionControllerOption: functional option to set the boxes
func WithBoxes(boxes ...list_box.ListBox) PositionControllerOption {
	return func(pc *positionControllerImpl) {
		pc.boxes = boxes
	}
}

// WithButtons sets the UI trigger sequence for button-driven control.
// Hidden at construction unless the mode is ModeControlByButton.
//
// Parameters:
//   - buttons: the Button collaborators to manage
//
// Returns:
//   - PositionControllerOption: functional option to set the buttons
func WithButtons(buttons ...button.Button) PositionControllerOption {
	return func(pc *positionControllerImpl) {
		pc.buttons = buttons
	}
}

// WithSource sets the injected input source polled each Tick.
// Required for gesture modes.
//
// Parameters:
//   - source: the input source to poll
//
// Returns:
//   - PositionControllerOption: functional option to set the source
func WithSource(source input.Source) PositionControllerOption {
	return func(pc *positionControllerImpl) {
		pc.source = source
	}
}

// WithProjector sets the screen-to-world projector (typically the scene
// camera). Required for gesture modes.
//
// Parameters:
//   - projector: the projector to use
//
// Returns:
//   - PositionControllerOption: functional option to set the projector
func WithProjector(projector Projector) PositionControllerOption {
	return func(pc *positionControllerImpl) {
		pc.projector = projector
	}
}

// WithViewport sets the viewport used to normalize screen coordinates
// (typically the window). Required for gesture modes.
//
// Parameters:
//   - viewport: the viewport to read dimensions from
//
// Returns:
//   - PositionControllerOption: functional option to set the viewport
func WithViewport(viewport Viewport) PositionControllerOption {
	return func(pc *positionControllerImpl) {
		pc.viewport = viewport
	}
}

// WithProjectionDistance sets the depth at which pointer positions are
// projected into world space: the distance from the camera to the list plane.
//
// Parameters:
//   - distance: projection depth in world units
//
// Returns:
//   - PositionControllerOption: functional option to set the distance
func WithProjectionDistance(distance float32) PositionControllerOption {
	return func(pc *positionControllerImpl) {
		pc.projectionDistance = distance
	}
}

// WithContainerScale sets the uniform scale factor of the list's container
// transform. Input deltas are divided by this scale to land in the
// container's local space. Values <= 0 fall back to 1.
//
// Parameters:
//   - scale: the container's uniform scale factor
//
// Returns:
//   - PositionControllerOption: functional option to set the scale
func WithContainerScale(scale float32) PositionControllerOption {
	return func(pc *positionControllerImpl) {
		pc.containerScale = scale
	}
}
