package viewer

import (
	"github.com/go-gl/mathgl/mgl64"
)

// ProjectionMode selects the host camera's projection.
type ProjectionMode int

const (
	// ProjectionPerspective is the perspective projection required while a
	// walkthrough session is active.
	ProjectionPerspective ProjectionMode = iota

	// ProjectionOrthographic is the host viewer's default projection,
	// restored when a session ends.
	ProjectionOrthographic
)

// String returns a human readable name for the projection mode.
//
// Returns:
//   - string: "Perspective", "Orthographic", or "Unknown"
func (m ProjectionMode) String() string {
	switch m {
	case ProjectionPerspective:
		return "Perspective"
	case ProjectionOrthographic:
		return "Orthographic"
	default:
		return "Unknown"
	}
}

// KeyEvent describes a single key press or release delivered by the host.
// PointerX/PointerY carry the pointer position at the time of the event so
// handlers can resynchronize motion deltas after key-driven interactions.
type KeyEvent struct {
	Key      uint32
	Pressed  bool
	PointerX int32
	PointerY int32
}

// PointerHandler receives pointer motion events with raw window coordinates.
type PointerHandler func(x, y int32)

// KeyHandler receives key press and release events.
type KeyHandler func(ev KeyEvent)

// Subscription is an opaque handle for a registered event handler.
// Unsubscribe releases the registration; releasing more than once is safe
// and subsequent calls are no-ops.
type Subscription interface {
	// Unsubscribe removes the handler from the host's dispatch list.
	//
	// Returns:
	//   - error: error if the host rejected the release
	Unsubscribe() error
}

// Viewer is the host 3D viewer contract the navigation core depends on.
// Implementations own the actual camera object and scene graph; the
// navigation controller only reads the pose, pushes pose updates, and
// subscribes to input events. All methods are expected to be called from
// the host's event thread.
type Viewer interface {
	// CameraPosition returns the camera's current world-space position in
	// the host's world units (millimeters).
	//
	// Returns:
	//   - mgl64.Vec3: the camera position
	//   - error: error if the camera is unavailable
	CameraPosition() (mgl64.Vec3, error)

	// SetCameraPosition moves the camera to the given world-space position
	// without changing its orientation.
	//
	// Parameters:
	//   - pos: the new camera position
	//
	// Returns:
	//   - error: error if the camera is unavailable
	SetCameraPosition(pos mgl64.Vec3) error

	// ViewDirection returns the camera's current view direction vector.
	//
	// Returns:
	//   - mgl64.Vec3: the (not necessarily normalized) view direction
	//   - error: error if the camera is unavailable
	ViewDirection() (mgl64.Vec3, error)

	// PointCameraAt orients the camera to face the target point using the
	// provided up vector.
	//
	// Parameters:
	//   - target: world-space point the camera should face
	//   - up: up vector, typically (0, 0, 1)
	//
	// Returns:
	//   - error: error if the camera is unavailable
	PointCameraAt(target, up mgl64.Vec3) error

	// SetProjectionMode switches the host camera between perspective and
	// orthographic projection.
	//
	// Parameters:
	//   - mode: the projection mode to activate
	//
	// Returns:
	//   - error: error if the camera is unavailable
	SetProjectionMode(mode ProjectionMode) error

	// SubscribePointerMotion registers a handler for pointer motion events.
	//
	// Parameters:
	//   - handler: callback invoked for every pointer motion event
	//
	// Returns:
	//   - Subscription: handle used to release the registration
	//   - error: error if the host cannot deliver events
	SubscribePointerMotion(handler PointerHandler) (Subscription, error)

	// SubscribeKeyPress registers a handler for key press/release events.
	//
	// Parameters:
	//   - handler: callback invoked for every key event
	//
	// Returns:
	//   - Subscription: handle used to release the registration
	//   - error: error if the host cannot deliver events
	SubscribeKeyPress(handler KeyHandler) (Subscription, error)

	// ShowStatusMessage displays text in the host's status area.
	//
	// Parameters:
	//   - text: the message to display
	ShowStatusMessage(text string)

	// ClearStatusMessage removes any text from the host's status area.
	ClearStatusMessage()

	// FitAll adjusts the camera so every object in the scene is visible,
	// equivalent to the host's "fit all" view command.
	//
	// Returns:
	//   - error: error if the command could not be issued
	FitAll() error
}
