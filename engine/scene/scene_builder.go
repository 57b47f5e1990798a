package scene

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene is active for updates.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithAnimationWorkers sets the number of worker goroutines used for the
// per-frame box animation fan-out. Defaults to runtime.NumCPU()-1.
// Lists are typically small; lower values reduce scheduling overhead.
//
// Parameters:
//   - workers: the worker count (values < 1 keep the default)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithAnimationWorkers(workers int) SceneBuilderOption {
	return func(s *scene) {
		if workers >= 1 {
			s.animationWorkers = workers
		}
	}
}
