package list_box

import (
	"testing"

	"github.com/EDU360/game-modules/common"
)

const frameTime = float32(1.0 / 60.0)

func position(b ListBox) common.Vec3 {
	x, y, z := b.Position()
	return common.Vec3{X: x, Y: y, Z: z}
}

func TestSlideConvergesExactly(t *testing.T) {
	b := NewListBox(
		WithSlidingFrames(4),
		WithSlidingFactor(0.5),
	)

	b.SetSlidingDistance(common.Vec3{Y: -2})
	if !b.Sliding() {
		t.Fatal("expected sliding after SetSlidingDistance")
	}

	for i := 0; i < 4; i++ {
		b.Advance(frameTime)
	}

	if got := position(b); got != (common.Vec3{Y: -2}) {
		t.Fatalf("position = %+v, want exactly {Y:-2}", got)
	}
	if b.Sliding() {
		t.Fatal("expected slide to finish after the configured frame count")
	}

	// Further frames are no-ops at rest.
	b.Advance(frameTime)
	if got := position(b); got != (common.Vec3{Y: -2}) {
		t.Fatalf("position moved at rest: %+v", got)
	}
}

func TestSlideDecelerates(t *testing.T) {
	b := NewListBox(
		WithSlidingFrames(10),
		WithSlidingFactor(0.5),
	)
	b.SetSlidingDistance(common.Vec3{Y: -8})

	b.Advance(frameTime)
	first := position(b).Y
	b.Advance(frameTime)
	second := position(b).Y - first

	if first != -4 {
		t.Fatalf("first step = %v, want -4 (half of remaining)", first)
	}
	if common.Abs32(second) >= common.Abs32(first) {
		t.Fatalf("steps must shrink: first %v, second %v", first, second)
	}
}

func TestSlideSupersession(t *testing.T) {
	b := NewListBox(
		WithSlidingFrames(4),
		WithSlidingFactor(0.5),
	)

	b.SetSlidingDistance(common.Vec3{Y: -4})
	b.Advance(frameTime) // now at -2
	b.SetSlidingDistance(common.Vec3{Y: 2})

	for i := 0; i < 4; i++ {
		b.Advance(frameTime)
	}

	// The new slide is relative to the position at supersession time.
	if got := position(b); got != (common.Vec3{Y: 0}) {
		t.Fatalf("position = %+v, want {Y:0}", got)
	}
}

func TestUnitMove(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		forward bool
		want    float32
	}{
		{"forward is negative axis", 1, true, -2},
		{"backward is positive axis", 1, false, 2},
		{"count multiplies spacing", 3, true, -6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewListBox(
				WithSpacing(2),
				WithSlidingFrames(0), // instant
			)
			b.UnitMove(tt.count, tt.forward)
			if got := position(b).Y; got != tt.want {
				t.Fatalf("y = %v, want %v", got, tt.want)
			}
			if b.Sliding() {
				t.Fatal("instant moves must not leave a slide in flight")
			}
		})
	}
}

func TestUpdatePositionCancelsSlide(t *testing.T) {
	b := NewListBox(WithSlidingFrames(10))
	b.SetSlidingDistance(common.Vec3{Y: -5})
	b.UpdatePosition(common.Vec3{Y: 1})

	if b.Sliding() {
		t.Fatal("direct drag must cancel the slide")
	}
	if got := position(b); got != (common.Vec3{Y: 1}) {
		t.Fatalf("position = %+v, want {Y:1}", got)
	}
}

func TestWrapReenters(t *testing.T) {
	tests := []struct {
		name  string
		start float32
		delta float32
		want  float32
	}{
		{"past positive half", 3.5, 1.0, -3.5},
		{"past negative half", -3.5, -1.0, 3.5},
		{"within extent untouched", 3.5, 0.4, 3.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewListBox(
				WithPosition(0, tt.start, 0),
				WithWrapExtent(8),
			)
			b.UpdatePosition(common.Vec3{Y: tt.delta})
			if got := position(b).Y; got != tt.want {
				t.Fatalf("y = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWrapDisabledByZeroExtent(t *testing.T) {
	b := NewListBox(WithPosition(0, 100, 0))
	b.UpdatePosition(common.Vec3{Y: 100})
	if got := position(b).Y; got != 200 {
		t.Fatalf("y = %v, want 200 with wrapping disabled", got)
	}
}

func TestWrapShiftsSlideTarget(t *testing.T) {
	b := NewListBox(
		WithWrapExtent(8),
		WithPosition(0, 3, 0),
		WithSlidingFrames(2),
		WithSlidingFactor(0.5),
	)
	// Target 5 is past the half-extent; after wrapping mid-slide the
	// remaining distance must be preserved.
	b.SetSlidingDistance(common.Vec3{Y: 2})
	b.Advance(frameTime) // 4 -> wraps to -4, target shifts to -3
	b.Advance(frameTime) // final frame snaps

	if got := position(b).Y; got != -3 {
		t.Fatalf("y = %v, want -3 after wrapping mid-slide", got)
	}
	if b.Sliding() {
		t.Fatal("slide must finish on schedule despite the wrap")
	}
}

func TestDisplayTransformCenterScale(t *testing.T) {
	b := NewListBox(
		WithSpacing(2),
		WithCenterScale(2),
	)

	m := b.DisplayTransform()
	if m[0] != 2 || m[5] != 2 {
		t.Fatalf("centered box scale = (%v, %v), want (2, 2)", m[0], m[5])
	}

	b.UpdatePosition(common.Vec3{Y: 1})
	m = b.DisplayTransform()
	if m[0] != 1.5 {
		t.Fatalf("half-slot box scale = %v, want 1.5", m[0])
	}

	b.UpdatePosition(common.Vec3{Y: 2})
	m = b.DisplayTransform()
	if m[0] != 1 {
		t.Fatalf("distant box scale = %v, want 1", m[0])
	}
}

func TestDisplayTransformCurvature(t *testing.T) {
	b := NewListBox(
		WithSpacing(2),
		WithCurvature(1),
		WithPosition(0, 2, 0),
	)

	m := b.DisplayTransform()
	// Parabolic bow: curvature * d^2 / (2 * spacing) on the orthogonal axis.
	if m[12] != 1 {
		t.Fatalf("x offset = %v, want 1", m[12])
	}
	if m[13] != 2 {
		t.Fatalf("y translation = %v, want the box position 2", m[13])
	}
}

func TestDisplayTransformPlain(t *testing.T) {
	b := NewListBox(WithPosition(1, 2, 3))
	m := b.DisplayTransform()

	if m[0] != 1 || m[5] != 1 || m[10] != 1 {
		t.Fatalf("unconfigured box must keep unit scale, got diag (%v, %v, %v)", m[0], m[5], m[10])
	}
	if m[12] != 1 || m[13] != 2 || m[14] != 3 {
		t.Fatalf("translation = (%v, %v, %v), want (1, 2, 3)", m[12], m[13], m[14])
	}
}
