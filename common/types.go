// package common contains common types that are used throughout this module. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

// Vec3 is a 3-component float vector in world space.
// Used for box positions, input deltas, and sliding distances.
type Vec3 struct {
	// X is the horizontal component.
	X float32
	// Y is the vertical component.
	Y float32
	// Z is the depth component.
	Z float32
}

// Add returns the component-wise sum of v and other.
//
// Parameters:
//   - other: the vector to add
//
// Returns:
//   - Vec3: the component-wise sum
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns the component-wise difference v - other.
//
// Parameters:
//   - other: the vector to subtract
//
// Returns:
//   - Vec3: the component-wise difference
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v scaled by the scalar s.
//
// Parameters:
//   - s: the scalar multiplier
//
// Returns:
//   - Vec3: the scaled vector
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Axis identifies the single scrolling axis of a list.
// All list vector math is restricted to one component; the orthogonal
// component of any produced vector is always zero.
type Axis uint8

const (
	// AxisVertical scrolls along Y.
	AxisVertical Axis = iota
	// AxisHorizontal scrolls along X.
	AxisHorizontal
)

// Component extracts the active-axis component of v.
//
// Parameters:
//   - v: the vector to read
//
// Returns:
//   - float32: v.Y for AxisVertical, v.X for AxisHorizontal
func (a Axis) Component(v Vec3) float32 {
	if a == AxisHorizontal {
		return v.X
	}
	return v.Y
}

// Vector builds a vector with magnitude on the active axis only.
//
// Parameters:
//   - magnitude: the active-axis value
//
// Returns:
//   - Vec3: a vector whose orthogonal components are zero
func (a Axis) Vector(magnitude float32) Vec3 {
	if a == AxisHorizontal {
		return Vec3{X: magnitude}
	}
	return Vec3{Y: magnitude}
}

// String returns the axis name for logging.
func (a Axis) String() string {
	if a == AxisHorizontal {
		return "horizontal"
	}
	return "vertical"
}
