package scene

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/EDU360/game-modules/common"
	"github.com/EDU360/game-modules/engine/camera"
	"github.com/EDU360/game-modules/engine/list_box"
	"github.com/EDU360/game-modules/engine/scroller"
)

// Scene is the composition root of one list UI: it owns the camera, the
// position controller, and the list boxes for the scene's lifetime. There is
// no ambient singleton; hosts construct a Scene when the UI loads and drop it
// on teardown. Scenes can be hot-swapped via the Active flag.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether this scene is currently updated by the engine.
	Active() bool

	// SetActive sets whether this scene is updated by the engine.
	SetActive(active bool)

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// SetCamera replaces the scene's camera.
	//
	// Parameters:
	//   - cam: the new camera
	SetCamera(cam camera.Camera)

	// Controller returns the scene's position controller.
	Controller() scroller.PositionController

	// Boxes returns the scene's list boxes in controller order.
	//
	// Returns:
	//   - []list_box.ListBox: the managed boxes
	Boxes() []list_box.ListBox

	// Count returns the number of list boxes in the scene.
	//
	// Returns:
	//   - int: the box count
	Count() int

	// Update runs one UI frame: refresh camera matrices, run the
	// controller's gesture tick, then advance in-flight box slide
	// animations. The controller tick is strictly synchronous; box
	// advancement fans out to the scene's worker pool with a per-frame
	// barrier, so the frame's input sample, broadcast, and animation all
	// complete before Update returns.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the last frame in seconds
	Update(deltaTime float32)
}

type scene struct {
	mu *sync.RWMutex

	name   string
	active bool

	cam   camera.Camera
	ctrl  scroller.PositionController
	boxes []list_box.ListBox

	// animPool manages a bounded set of reusable goroutines for per-frame
	// box animation stepping. Workers persist across frames, avoiding
	// per-frame goroutine spawn/teardown overhead.
	animPool         worker.DynamicWorkerPool
	animationWorkers int
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a new Scene with the given camera and position controller.
// Both are required and NewScene panics if either is nil. The scene takes the
// box sequence from the controller, so the controller's broadcast order and
// the scene's animation order always agree.
//
// Parameters:
//   - name: the name of the scene
//   - cam: the camera to attach (must not be nil)
//   - ctrl: the position controller to attach (must not be nil)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, cam camera.Camera, ctrl scroller.PositionController, options ...SceneBuilderOption) Scene {
	if cam == nil {
		panic("scene: NewScene requires a non-nil Camera")
	}
	if ctrl == nil {
		panic("scene: NewScene requires a non-nil PositionController")
	}

	s := &scene{
		mu:               &sync.RWMutex{},
		name:             common.Coalesce(name, "scene"),
		active:           false,
		cam:              cam,
		ctrl:             ctrl,
		boxes:            ctrl.Boxes(),
		animationWorkers: max(runtime.NumCPU()-1, 1),
	}

	for _, option := range options {
		option(s)
	}

	// Initialize the animation pool after options so WithAnimationWorkers
	// can override the default. Queue size of 64 accommodates typical list
	// sizes with headroom.
	s.animPool = worker.NewDynamicWorkerPool(s.animationWorkers, 64, 1*time.Second)

	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *scene) SetCamera(cam camera.Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cam = cam
}

func (s *scene) Controller() scroller.PositionController {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ctrl
}

func (s *scene) Boxes() []list_box.ListBox {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cp := make([]list_box.ListBox, len(s.boxes))
	copy(cp, s.boxes)
	return cp
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.boxes)
}

func (s *scene) Update(deltaTime float32) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	s.cam.Update()

	// Gesture processing first: the input sample and the resulting delta
	// broadcast land on the boxes before this frame's animation step.
	s.ctrl.Tick()

	// Fan out slide stepping to the animation pool. A WaitGroup provides
	// per-frame barrier sync since pool.Wait() blocks until workers
	// idle-exit which is unsuitable for frame-rate workloads.
	var wg sync.WaitGroup
	taskID := 0
	for _, b := range s.boxes {
		if !b.Sliding() {
			continue
		}

		wg.Add(1)
		bCap := b // capture for closure
		id := taskID
		taskID++
		s.animPool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				bCap.Advance(deltaTime)
				return nil, nil
			},
		})
	}
	wg.Wait()
}
