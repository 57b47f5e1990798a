package scroller

import (
	"testing"

	"github.com/EDU360/game-modules/common"
	"github.com/EDU360/game-modules/engine/button"
	"github.com/EDU360/game-modules/engine/input"
	"github.com/EDU360/game-modules/engine/list_box"
)

// scriptedSource replays a fixed sequence of samples, one per Poll.
// Polls past the end of the script report no activity.
type scriptedSource struct {
	samples []input.Sample
	polls   int
}

func (s *scriptedSource) Poll() input.Sample {
	s.polls++
	if len(s.samples) == 0 {
		return input.Sample{}
	}
	smp := s.samples[0]
	s.samples = s.samples[1:]
	return smp
}

// planeProjector maps screen pixels one-to-one onto the world plane, making
// expected drag deltas trivial to compute.
type planeProjector struct{}

func (planeProjector) ScreenToWorld(screenX, screenY, depth float32, viewportWidth, viewportHeight int) (x, y, z float32) {
	return screenX, screenY, 0
}

type fixedViewport struct {
	w, h int
}

func (v fixedViewport) Width() int  { return v.w }
func (v fixedViewport) Height() int { return v.h }

// recorderBox records every dispatch it receives.
type recorderBox struct {
	pos     common.Vec3
	updates []common.Vec3
	slides  []common.Vec3
	moves   []bool // forward flag per UnitMove call
}

func (r *recorderBox) Position() (x, y, z float32) { return r.pos.X, r.pos.Y, r.pos.Z }

func (r *recorderBox) UpdatePosition(delta common.Vec3) {
	r.updates = append(r.updates, delta)
	r.pos = r.pos.Add(delta)
}

func (r *recorderBox) SetSlidingDistance(delta common.Vec3) {
	r.slides = append(r.slides, delta)
}

func (r *recorderBox) UnitMove(count int, forward bool) {
	for range count {
		r.moves = append(r.moves, forward)
	}
}

func (r *recorderBox) Advance(deltaTime float32)     {}
func (r *recorderBox) Sliding() bool                 { return false }
func (r *recorderBox) DisplayTransform() [16]float32 { return [16]float32{} }

var _ list_box.ListBox = &recorderBox{}

func gestureController(src input.Source, mode Mode, boxes ...list_box.ListBox) PositionController {
	return NewPositionController(
		WithMode(mode),
		WithBoxes(boxes...),
		WithSource(src),
		WithProjector(planeProjector{}),
		WithViewport(fixedViewport{800, 600}),
	)
}

func TestDeltaPositionToCenter(t *testing.T) {
	tests := []struct {
		name      string
		axis      common.Axis
		positions []common.Vec3
		want      common.Vec3
	}{
		{
			name:      "nearest of three vertical",
			axis:      common.AxisVertical,
			positions: []common.Vec3{{Y: -5.0}, {Y: 0.8}, {Y: 6.2}},
			want:      common.Vec3{Y: -0.8},
		},
		{
			name:      "tie keeps first box",
			axis:      common.AxisVertical,
			positions: []common.Vec3{{Y: -1.2}, {Y: 1.2}},
			want:      common.Vec3{Y: 1.2},
		},
		{
			name:      "horizontal axis reads x",
			axis:      common.AxisHorizontal,
			positions: []common.Vec3{{X: 3.0, Y: 0.1}, {X: -0.5, Y: 9.0}},
			want:      common.Vec3{X: 0.5},
		},
		{
			name:      "box already centered",
			axis:      common.AxisVertical,
			positions: []common.Vec3{{Y: 0}, {Y: 2}},
			want:      common.Vec3{},
		},
		{
			name: "empty set yields zero",
			axis: common.AxisVertical,
			want: common.Vec3{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			boxes := make([]list_box.ListBox, 0, len(tt.positions))
			for _, p := range tt.positions {
				boxes = append(boxes, &recorderBox{pos: p})
			}
			// Button mode needs no gesture collaborators; the search is
			// mode-independent.
			pc := NewPositionController(
				WithMode(ModeControlByButton),
				WithAxis(tt.axis),
				WithBoxes(boxes...),
			)

			if got := pc.DeltaPositionToCenter(); got != tt.want {
				t.Fatalf("DeltaPositionToCenter() = %+v, want %+v", got, tt.want)
			}
			// The search is read-only and repeatable.
			if got := pc.DeltaPositionToCenter(); got != tt.want {
				t.Fatalf("second DeltaPositionToCenter() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTickFreeMovingDrag(t *testing.T) {
	src := &scriptedSource{samples: []input.Sample{
		{Phase: input.PhaseBegan, X: 100, Y: 100},
		{Phase: input.PhaseMoved, X: 100, Y: 90},
		{Phase: input.PhaseMoved, X: 100, Y: 70},
		{Phase: input.PhaseEnded, X: 100, Y: 70},
	}}
	box := &recorderBox{}
	pc := NewPositionController(
		WithMode(ModeFreeMoving),
		WithBoxes(box),
		WithSource(src),
		WithProjector(planeProjector{}),
		WithViewport(fixedViewport{800, 600}),
		WithContainerScale(2),
	)

	pc.Tick()
	if !pc.Dragging() {
		t.Fatal("expected dragging after began phase")
	}
	if len(box.updates) != 0 {
		t.Fatalf("began phase must not move boxes, got %d updates", len(box.updates))
	}

	pc.Tick()
	pc.Tick()
	want := []common.Vec3{{Y: -5}, {Y: -10}} // screen deltas divided by container scale
	if len(box.updates) != len(want) {
		t.Fatalf("got %d updates, want %d", len(box.updates), len(want))
	}
	for i, u := range box.updates {
		if u != want[i] {
			t.Fatalf("update %d = %+v, want %+v", i, u, want[i])
		}
	}

	pc.Tick()
	if pc.Dragging() {
		t.Fatal("expected drag to end after ended phase")
	}
	if len(box.slides) != 1 || box.slides[0] != (common.Vec3{Y: -10}) {
		t.Fatalf("slides = %+v, want one slide of {Y:-10}", box.slides)
	}
}

func TestTickAlignToCenterOverridesMomentum(t *testing.T) {
	src := &scriptedSource{samples: []input.Sample{
		{Phase: input.PhaseBegan, X: 0, Y: 0},
		{Phase: input.PhaseMoved, X: 0, Y: 3},
		{Phase: input.PhaseEnded, X: 0, Y: 3},
	}}
	// Positions after the drag land one box 0.8 above center.
	near := &recorderBox{pos: common.Vec3{Y: -2.2}}
	far := &recorderBox{pos: common.Vec3{Y: 3.2}}
	pc := gestureController(src, ModeAlignToCenter, near, far)

	pc.Tick() // began
	pc.Tick() // moved: both boxes shift by +3
	pc.Tick() // ended: snap to nearest

	want := common.Vec3{Y: -0.8} // near box sits at 0.8 after the drag
	for i, b := range []*recorderBox{near, far} {
		if len(b.slides) != 1 {
			t.Fatalf("box %d got %d slides, want 1", i, len(b.slides))
		}
		if b.slides[0] != want {
			t.Fatalf("box %d slide = %+v, want %+v", i, b.slides[0], want)
		}
	}
}

func TestTickMovedWithoutDragIgnored(t *testing.T) {
	src := &scriptedSource{samples: []input.Sample{
		{Phase: input.PhaseMoved, X: 10, Y: 10},
		{Phase: input.PhaseEnded, X: 10, Y: 10},
	}}
	box := &recorderBox{}
	pc := gestureController(src, ModeFreeMoving, box)

	pc.Tick()
	pc.Tick()

	if len(box.updates) != 0 || len(box.slides) != 0 {
		t.Fatalf("stray phases must be ignored: updates=%d slides=%d", len(box.updates), len(box.slides))
	}
	if pc.Dragging() {
		t.Fatal("dragging must stay false without a began phase")
	}
}

func TestControlByButtonSkipsPolling(t *testing.T) {
	src := &scriptedSource{samples: []input.Sample{
		{Phase: input.PhaseBegan, X: 1, Y: 1},
	}}
	box := &recorderBox{}
	pc := NewPositionController(
		WithMode(ModeControlByButton),
		WithBoxes(box),
		WithSource(src),
	)

	for range 5 {
		pc.Tick()
	}

	if src.polls != 0 {
		t.Fatalf("button mode polled the source %d times, want 0", src.polls)
	}
	if len(box.updates) != 0 || len(box.slides) != 0 {
		t.Fatal("button mode must not dispatch gesture movement")
	}
}

func TestNextAndLastContentDispatch(t *testing.T) {
	a := &recorderBox{}
	b := &recorderBox{}
	pc := NewPositionController(
		WithMode(ModeControlByButton),
		WithBoxes(a, b),
	)

	pc.NextContent()
	pc.LastContent()

	for i, r := range []*recorderBox{a, b} {
		if len(r.moves) != 2 {
			t.Fatalf("box %d got %d unit moves, want 2", i, len(r.moves))
		}
		if !r.moves[0] || r.moves[1] {
			t.Fatalf("box %d moves = %v, want [true false]", i, r.moves)
		}
	}
}

func TestButtonsHiddenOutsideButtonMode(t *testing.T) {
	next := button.NewButton(button.WithLabel("next"))
	prev := button.NewButton(button.WithLabel("previous"))
	src := &scriptedSource{}

	_ = NewPositionController(
		WithMode(ModeFreeMoving),
		WithButtons(next, prev),
		WithSource(src),
		WithProjector(planeProjector{}),
		WithViewport(fixedViewport{800, 600}),
	)
	if next.Visible() || prev.Visible() {
		t.Fatal("gesture modes must hide the navigation buttons")
	}

	next2 := button.NewButton(button.WithLabel("next"))
	_ = NewPositionController(
		WithMode(ModeControlByButton),
		WithButtons(next2),
	)
	if !next2.Visible() {
		t.Fatal("button mode must leave buttons visible")
	}
}

func TestContainerScaleFallback(t *testing.T) {
	src := &scriptedSource{samples: []input.Sample{
		{Phase: input.PhaseBegan, X: 0, Y: 0},
		{Phase: input.PhaseMoved, X: 0, Y: 4},
	}}
	box := &recorderBox{}
	pc := NewPositionController(
		WithMode(ModeFreeMoving),
		WithBoxes(box),
		WithSource(src),
		WithProjector(planeProjector{}),
		WithViewport(fixedViewport{800, 600}),
		WithContainerScale(0),
	)

	pc.Tick()
	pc.Tick()

	if len(box.updates) != 1 || box.updates[0] != (common.Vec3{Y: 4}) {
		t.Fatalf("updates = %+v, want unscaled {Y:4}", box.updates)
	}
}

func TestGestureModeRequiresCollaborators(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for gesture mode without an input source")
		}
	}()
	NewPositionController(WithMode(ModeAlignToCenter))
}
