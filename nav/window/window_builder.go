package window

import (
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl64"
)

// WindowOption is a functional option for configuring a navWindow.
// Use the With* functions to create options.
type WindowOption func(w *navWindow)

// WithTitle sets the window title displayed in the title bar.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - WindowOption: option function to apply
func WithTitle(title string) WindowOption {
	return func(w *navWindow) {
		w.title = title
	}
}

// WithWidth sets the initial window width.
//
// Parameters:
//   - width: initial width in pixels
//
// Returns:
//   - WindowOption: option function to apply
func WithWidth(width int) WindowOption {
	return func(w *navWindow) {
		w.width = width
	}
}

// WithHeight sets the initial window height.
//
// Parameters:
//   - height: initial height in pixels
//
// Returns:
//   - WindowOption: option function to apply
func WithHeight(height int) WindowOption {
	return func(w *navWindow) {
		w.height = height
	}
}

// WithCameraPose sets the initial camera position and look target.
//
// Parameters:
//   - position: camera position in world units
//   - target: point the camera looks at
//
// Returns:
//   - WindowOption: option function to apply
func WithCameraPose(position, target mgl64.Vec3) WindowOption {
	return func(w *navWindow) {
		w.position = position
		w.target = target
	}
}

// WithSceneBounds sets the bounding sphere used by the fit-all command and
// the orthographic extent.
//
// Parameters:
//   - center: bounding sphere center in world units
//   - radius: bounding sphere radius in world units
//
// Returns:
//   - WindowOption: option function to apply
func WithSceneBounds(center mgl64.Vec3, radius float64) WindowOption {
	return func(w *navWindow) {
		w.sceneCenter = center
		w.sceneRadius = radius
	}
}

// WithClearColor sets the surface clear color.
//
// Parameters:
//   - r, g, b, a: color components in [0, 1]
//
// Returns:
//   - WindowOption: option function to apply
func WithClearColor(r, g, b, a float64) WindowOption {
	return func(w *navWindow) {
		w.clearColor = wgpu.Color{R: r, G: g, B: b, A: a}
	}
}

// WithWindowLogger sets the structured logger used by the window.
//
// Parameters:
//   - log: the logger
//
// Returns:
//   - WindowOption: option function to apply
func WithWindowLogger(log *slog.Logger) WindowOption {
	return func(w *navWindow) {
		if log != nil {
			w.log = log
		}
	}
}
