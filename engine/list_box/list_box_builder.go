package list_box

import (
	"github.com/EDU360/game-modules/common"
)

// ListBoxBuilderOption is a functional option for configuring a ListBox during construction.
type ListBoxBuilderOption func(*slotBox)

// WithAxis sets the box's scrolling axis.
//
// Parameters:
//   - axis: the scrolling axis (vertical or horizontal)
//
// Returns:
//   - ListBoxBuilderOption: functional option to set the axis
func WithAxis(axis common.Axis) ListBoxBuilderOption {
	return func(b *slotBox) {
		b.axis = axis
	}
}

// WithPosition sets the box's initial local position.
//
// Parameters:
//   - x, y, z: local position components
//
// Returns:
//   - ListBoxBuilderOption: functional option to set the position
func WithPosition(x, y, z float32) ListBoxBuilderOption {
	return func(b *slotBox) {
		b.position = common.Vec3{X: x, Y: y, Z: z}
	}
}

// WithSpacing sets the distance between adjacent logical slots.
// Unit moves displace the box by this distance per slot.
//
// Parameters:
//   - spacing: slot spacing in world units (values <= 0 keep the default)
//
// Returns:
//   - ListBoxBuilderOption: functional option to set the spacing
func WithSpacing(spacing float32) ListBoxBuilderOption {
	return func(b *slotBox) {
		if spacing > 0 {
			b.spacing = spacing
		}
	}
}

// WithWrapExtent sets the total ring length for circular wrapping.
// A box sliding past half this extent re-enters on the opposite side.
// Typically spacing multiplied by the box count. Zero disables wrapping.
//
// Parameters:
//   - extent: the ring length in world units
//
// Returns:
//   - ListBoxBuilderOption: functional option to set the wrap extent
func WithWrapExtent(extent float32) ListBoxBuilderOption {
	return func(b *slotBox) {
		b.wrapExtent = extent
	}
}

// WithSlidingFrames sets the number of animation frames a slide takes.
// Zero or negative makes slides apply instantly.
//
// Parameters:
//   - frames: the slide duration in frames
//
// Returns:
//   - ListBoxBuilderOption: functional option to set the frame count
func WithSlidingFrames(frames int) ListBoxBuilderOption {
	return func(b *slotBox) {
		b.slidingFrames = frames
	}
}

// WithSlidingFactor sets the per-frame deceleration factor: each animation
// frame moves the box by the remaining distance times this factor.
// Clamped to [0, 1].
//
// Parameters:
//   - factor: the geometric step fraction
//
// Returns:
//   - ListBoxBuilderOption: functional option to set the factor
func WithSlidingFactor(factor float32) ListBoxBuilderOption {
	return func(b *slotBox) {
		b.slidingFactor = common.Clamp(factor, 0, 1)
	}
}

// WithCurvature sets the lane curvature angularity. Positive values bow the
// lane toward the positive orthogonal axis, negative toward the negative.
// Clamped to [-1, 1].
//
// Parameters:
//   - curvature: the bow amount
//
// Returns:
//   - ListBoxBuilderOption: functional option to set the curvature
func WithCurvature(curvature float32) ListBoxBuilderOption {
	return func(b *slotBox) {
		b.curvature = common.Clamp(curvature, -1, 1)
	}
}

// WithCenterScale sets the scale factor applied to the box nearest the list
// center. Boxes farther than one slot from center keep scale 1.
//
// Parameters:
//   - scale: the center-item scale factor (values <= 0 keep the default)
//
// Returns:
//   - ListBoxBuilderOption: functional option to set the center scale
func WithCenterScale(scale float32) ListBoxBuilderOption {
	return func(b *slotBox) {
		if scale > 0 {
			b.centerScale = scale
		}
	}
}
