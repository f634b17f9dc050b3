package input

import (
	"walknav/nav/camera"
)

// Controller runs a walkthrough navigation session against a host viewer.
// Start captures the live camera pose, switches the host to perspective
// projection, and subscribes to pointer and key events; End tears all of
// that down and restores the host's default projection. One controller
// drives at most one session at a time.
type Controller interface {
	// Start begins a navigation session. It fails without side effects if
	// the host camera is unavailable, and fails if a session is already
	// active.
	//
	// Returns:
	//   - error: error if the session could not be started
	Start() error

	// End terminates the session: unsubscribes the event handlers, restores
	// orthographic projection, and clears the status message. Each teardown
	// step runs even if an earlier one fails. Ending an inactive controller
	// is a no-op.
	//
	// Returns:
	//   - error: error if the controller could not be torn down cleanly
	End() error

	// Active reports whether a session is currently running.
	//
	// Returns:
	//   - bool: true while a session is active
	Active() bool

	// State returns the live camera state for the current session, or nil
	// when no session is active.
	//
	// Returns:
	//   - camera.State: the session camera state
	State() camera.State

	// MouseActive reports whether pointer motion currently rotates the view.
	//
	// Returns:
	//   - bool: true when mouse look is active, false while frozen
	MouseActive() bool

	// SetWalkSpeedText applies a walk speed typed as text, the way a host
	// settings field delivers it. Malformed input is logged and ignored.
	//
	// Parameters:
	//   - text: the typed value
	SetWalkSpeedText(text string)

	// SetWalkSpeedIncrementText applies a walk speed increment typed as
	// text. Malformed input is logged and ignored.
	//
	// Parameters:
	//   - text: the typed value
	SetWalkSpeedIncrementText(text string)

	// SetMouseSpeedText applies a mouse sensitivity typed as text.
	// Malformed input is logged and ignored.
	//
	// Parameters:
	//   - text: the typed value
	SetMouseSpeedText(text string)

	// SetMouseSpeedIncrementText applies a mouse sensitivity increment typed
	// as text. Malformed input is logged and ignored.
	//
	// Parameters:
	//   - text: the typed value
	SetMouseSpeedIncrementText(text string)
}
