package camera

// CameraController owns the camera's positional state (position, target).
// The Camera reads from the controller and computes view/projection matrices.
// UI scenes typically use a fixed controller looking down the Z axis at the
// list plane; planar panning is available for scrolling the whole view.
type CameraController interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - x, y, z: world-space camera position
	Position() (x, y, z float32)

	// SetPosition sets the camera's world-space position directly.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetPosition(x, y, z float32)

	// Target returns the look-at point.
	//
	// Returns:
	//   - x, y, z: world-space target position
	Target() (x, y, z float32)

	// SetTarget sets the look-at point.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetTarget(x, y, z float32)

	// Pan translates both position and target by the same offset,
	// preserving the view direction.
	//
	// Parameters:
	//   - dx, dy, dz: world-space offset scaled by PanSpeed
	Pan(dx, dy, dz float32)

	// PanSpeed returns the pan speed multiplier.
	//
	// Returns:
	//   - float32: multiplier for pan input
	PanSpeed() float32
}
