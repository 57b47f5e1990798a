package camera

import (
	"sync"
)

// cameraControllerImpl is the single implementation of CameraController.
// Holds a plain position/target pair; the UI scroller only needs a stable
// viewpoint in front of the list plane.
type cameraControllerImpl struct {
	mu *sync.Mutex

	position [3]float32
	target   [3]float32

	panSpeed float32
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a new camera controller with sensible defaults:
// positioned on the +Z axis looking at the origin.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:       &sync.Mutex{},
		position: [3]float32{0, 0, 10},
		target:   [3]float32{0, 0, 0},
		panSpeed: 1.0,
	}

	for _, option := range options {
		option(cc)
	}

	return cc
}

func (cc *cameraControllerImpl) Position() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.position[0], cc.position[1], cc.position[2]
}

func (cc *cameraControllerImpl) SetPosition(x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.position[0] = x
	cc.position[1] = y
	cc.position[2] = z
}

func (cc *cameraControllerImpl) Target() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.target[0], cc.target[1], cc.target[2]
}

func (cc *cameraControllerImpl) SetTarget(x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.target[0] = x
	cc.target[1] = y
	cc.target[2] = z
}

func (cc *cameraControllerImpl) Pan(dx, dy, dz float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	cc.position[0] += dx * cc.panSpeed
	cc.position[1] += dy * cc.panSpeed
	cc.position[2] += dz * cc.panSpeed
	cc.target[0] += dx * cc.panSpeed
	cc.target[1] += dy * cc.panSpeed
	cc.target[2] += dz * cc.panSpeed
}

func (cc *cameraControllerImpl) PanSpeed() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.panSpeed
}
