package list_box

import (
	"sync"

	"github.com/EDU360/game-modules/common"
)

type slotBox struct {
	mu *sync.Mutex

	axis     common.Axis
	position common.Vec3

	spacing       float32
	wrapExtent    float32
	slidingFrames int
	slidingFactor float32
	curvature     float32
	centerScale   float32

	// in-flight slide state
	sliding    bool
	target     common.Vec3
	framesLeft int
}

// ListBox is the per-item collaborator of the list scroller. Each box owns
// one visual item's local position and animation state; the scroller only
// broadcasts deltas and sliding distances and reads positions back for the
// nearest-to-center search.
type ListBox interface {
	// Position returns the box's current local position.
	//
	// Returns:
	//   - x, y, z: local position components
	Position() (x, y, z float32)

	// UpdatePosition applies an immediate positional offset.
	// Cancels any in-flight slide; direct dragging takes over.
	//
	// Parameters:
	//   - delta: the world-space offset to apply this frame
	UpdatePosition(delta common.Vec3)

	// SetSlidingDistance begins a bounded deceleration toward the current
	// position plus delta, over the configured sliding frame count. A new
	// call supersedes any slide still in flight.
	//
	// Parameters:
	//   - delta: the total rest offset from the current position
	SetSlidingDistance(delta common.Vec3)

	// UnitMove advances the box by count logical slots in the given
	// direction, triggering the box's snap-to-slot slide. Forward moves
	// shift the box toward the negative axis (the next item slides into
	// center).
	//
	// Parameters:
	//   - count: number of slots to advance
	//   - forward: true for the next item, false for the previous
	UnitMove(count int, forward bool)

	// Advance steps the box's slide animation by one frame.
	// Called once per frame by the owning scene. No-op while at rest.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the last frame in seconds
	Advance(deltaTime float32)

	// Sliding returns whether a slide animation is in flight.
	//
	// Returns:
	//   - bool: true while sliding
	Sliding() bool

	// DisplayTransform builds the box's render model matrix from its local
	// position, applying the configured curvature bow and center scale.
	// Read by hosts for rendering; the box performs no rendering itself.
	//
	// Returns:
	//   - [16]float32: column-major model matrix
	DisplayTransform() [16]float32
}

var _ ListBox = &slotBox{}

// NewListBox creates a new slot box configured with the given options.
//
// Parameters:
//   - options: functional options to configure the box
//
// Returns:
//   - ListBox: the newly created box
func NewListBox(options ...ListBoxBuilderOption) ListBox {
	b := &slotBox{
		mu:            &sync.Mutex{},
		axis:          common.AxisVertical,
		spacing:       2.0,
		slidingFrames: 30,
		slidingFactor: 0.2,
		centerScale:   1.0,
	}
	for _, option := range options {
		option(b)
	}
	return b
}

func (b *slotBox) Position() (x, y, z float32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.position.X, b.position.Y, b.position.Z
}

func (b *slotBox) UpdatePosition(delta common.Vec3) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sliding = false
	b.position = b.position.Add(delta)
	b.wrapLocked()
}

func (b *slotBox) SetSlidingDistance(delta common.Vec3) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.slideLocked(delta)
}

func (b *slotBox) UnitMove(count int, forward bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	magnitude := b.spacing * float32(count)
	if forward {
		magnitude = -magnitude
	}
	b.slideLocked(b.axis.Vector(magnitude))
}

func (b *slotBox) Advance(deltaTime float32) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.sliding {
		return
	}

	remaining := b.target.Sub(b.position)
	if b.framesLeft <= 1 {
		// Last frame applies the remainder so the rest offset is exact.
		b.position = b.target
		b.sliding = false
		b.framesLeft = 0
	} else {
		b.position = b.position.Add(remaining.Scale(b.slidingFactor))
		b.framesLeft--
	}
	b.wrapLocked()
}

func (b *slotBox) Sliding() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sliding
}

func (b *slotBox) DisplayTransform() [16]float32 {
	b.mu.Lock()
	defer b.mu.Unlock()

	d := common.Abs32(b.axis.Component(b.position))

	// Items within one slot of center grow toward the center scale.
	scale := float32(1.0)
	if b.spacing > 0 && b.centerScale != 1.0 {
		if t := 1.0 - d/b.spacing; t > 0 {
			scale = 1.0 + (b.centerScale-1.0)*t
		}
	}

	// Curvature bows the lane: a parabolic offset on the orthogonal axis,
	// growing with distance from center.
	px, py, pz := b.position.X, b.position.Y, b.position.Z
	if b.curvature != 0 && b.spacing > 0 {
		offset := b.curvature * d * d / (2.0 * b.spacing)
		if b.axis == common.AxisVertical {
			px += offset
		} else {
			py += offset
		}
	}

	var out [16]float32
	common.BuildModelMatrix(out[:], px, py, pz, 0, 0, 0, scale, scale, scale)
	return out
}

// slideLocked starts a slide toward position + delta.
// Caller must hold the mutex.
func (b *slotBox) slideLocked(delta common.Vec3) {
	b.target = b.position.Add(delta)
	if b.slidingFrames <= 0 {
		b.position = b.target
		b.sliding = false
		b.wrapLocked()
		return
	}
	b.framesLeft = b.slidingFrames
	b.sliding = true
}

// wrapLocked re-enters the box on the opposite side of the ring when it
// slides past the half-extent, keeping a fixed set of boxes covering an
// unbounded logical list. The slide target shifts with the position so the
// remaining animation distance is unchanged. No-op when wrapping is
// disabled (extent 0).
// Caller must hold the mutex.
func (b *slotBox) wrapLocked() {
	if b.wrapExtent <= 0 {
		return
	}
	half := b.wrapExtent / 2
	p := b.axis.Component(b.position)

	var shift float32
	for p+shift > half {
		shift -= b.wrapExtent
	}
	for p+shift < -half {
		shift += b.wrapExtent
	}
	if shift != 0 {
		sv := b.axis.Vector(shift)
		b.position = b.position.Add(sv)
		b.target = b.target.Add(sv)
	}
}
