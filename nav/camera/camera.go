package camera

import (
	"github.com/go-gl/mathgl/mgl64"
)

// State owns the walkthrough camera pose and its tunable speed parameters.
// Position is expressed in the host viewer's world units (millimeters);
// azimuth and elevation are look-direction angles in radians. One State
// instance exists per navigation session: it is created from the live host
// camera pose when the session starts, mutated exclusively by the input
// controller while the session runs, and discarded at session end.
type State interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl64.Vec3: the camera position in world units
	Position() mgl64.Vec3

	// SetPosition sets the camera's world-space position directly.
	// Used by the frozen-mouse mode to resynchronize with external camera
	// moves performed through the host UI.
	//
	// Parameters:
	//   - pos: the new position in world units
	SetPosition(pos mgl64.Vec3)

	// Azimuth returns the horizontal look-direction angle in radians.
	//
	// Returns:
	//   - float64: azimuth in radians
	Azimuth() float64

	// SetAzimuth sets the horizontal look-direction angle directly.
	// Azimuth wraps freely and is never clamped.
	//
	// Parameters:
	//   - azimuth: new horizontal angle in radians
	SetAzimuth(azimuth float64)

	// Elevation returns the vertical look-direction angle in radians.
	//
	// Returns:
	//   - float64: elevation in radians
	Elevation() float64

	// SetElevation sets the vertical look-direction angle, subject to the
	// pole clamp: a value whose degree-equivalent falls strictly between
	// 90 and 270 is rejected and the current value is retained.
	//
	// Parameters:
	//   - elevation: new vertical angle in radians
	SetElevation(elevation float64)

	// AdjustAzimuth steps the azimuth by the configured azimuth increment.
	//
	// Parameters:
	//   - positive: true to increment, false to decrement
	AdjustAzimuth(positive bool)

	// AdjustElevation steps the elevation by the configured elevation
	// increment, subject to the pole clamp.
	//
	// Parameters:
	//   - positive: true to increment, false to decrement
	AdjustElevation(positive bool)

	// LookTarget returns the point the camera should be commanded to face.
	// The target is position + (cos azimuth, sin azimuth, sin elevation).
	// This is a direction offset, not a normalized spherical basis; the
	// formula is preserved exactly because it defines the navigation feel.
	//
	// Returns:
	//   - mgl64.Vec3: the look target in world units
	LookTarget() mgl64.Vec3

	// PointerLook rotates the view from a pointer motion event. The deltas
	// are measured as previous-minus-current, scaled by mouseSpeed/10000,
	// and accumulated into azimuth and (pole-clamped) elevation. The event
	// coordinates become the new stored pointer reference.
	//
	// Parameters:
	//   - px, py: raw pointer coordinates, truncated to integers
	PointerLook(px, py int32)

	// SetPointerRef overwrites the stored last-pointer reference without
	// rotating the view. Called after every key event so pointer movement
	// that happened without a motion callback cannot produce a spurious
	// rotation on the next motion event.
	//
	// Parameters:
	//   - px, py: raw pointer coordinates
	SetPointerRef(px, py int32)

	// MoveForward translates the position one walk-speed step along the
	// look direction. The vertical component follows sin(elevation) and is
	// skipped while the elevation lock is on.
	MoveForward()

	// MoveBackward translates the position one walk-speed step against the
	// look direction, mirroring MoveForward.
	MoveBackward()

	// StrafeLeft translates the position one walk-speed step along
	// azimuth + 90 degrees.
	StrafeLeft()

	// StrafeRight translates the position one walk-speed step against
	// azimuth + 90 degrees.
	StrafeRight()

	// Ascend raises the position by one walk-speed step along world Z.
	// When vertical-move-uses-elevation is enabled the step is scaled by
	// sin(elevation) instead, reproducing the alternate legacy revision.
	Ascend()

	// Descend lowers the position, mirroring Ascend.
	Descend()

	// WalkSpeed returns the distance moved per translation key press.
	//
	// Returns:
	//   - float64: walk speed in world units
	WalkSpeed() float64

	// SetWalkSpeed sets the distance moved per translation key press.
	//
	// Parameters:
	//   - speed: walk speed in world units
	SetWalkSpeed(speed float64)

	// WalkSpeedIncrement returns the step applied by walk speed tuning.
	//
	// Returns:
	//   - float64: increment in world units
	WalkSpeedIncrement() float64

	// SetWalkSpeedIncrement sets the step applied by walk speed tuning.
	//
	// Parameters:
	//   - increment: increment in world units
	SetWalkSpeedIncrement(increment float64)

	// IncreaseWalkSpeed raises the walk speed by one increment.
	IncreaseWalkSpeed()

	// DecreaseWalkSpeed lowers the walk speed by one increment.
	DecreaseWalkSpeed()

	// MouseSpeed returns the look sensitivity scale. The effective
	// per-pixel rotation is mouseSpeed divided by 10000 radians.
	//
	// Returns:
	//   - float64: the mouse sensitivity scale
	MouseSpeed() float64

	// SetMouseSpeed sets the look sensitivity scale.
	//
	// Parameters:
	//   - speed: the new sensitivity scale
	SetMouseSpeed(speed float64)

	// MouseSpeedIncrement returns the step applied by sensitivity tuning.
	//
	// Returns:
	//   - float64: the sensitivity increment
	MouseSpeedIncrement() float64

	// SetMouseSpeedIncrement sets the step applied by sensitivity tuning.
	//
	// Parameters:
	//   - increment: the sensitivity increment
	SetMouseSpeedIncrement(increment float64)

	// IncreaseMouseSpeed raises the mouse sensitivity by one increment.
	IncreaseMouseSpeed()

	// DecreaseMouseSpeed lowers the mouse sensitivity by one increment.
	DecreaseMouseSpeed()

	// ElevationLocked reports whether forward/backward movement keeps the
	// vertical position fixed.
	//
	// Returns:
	//   - bool: true if the elevation lock is on
	ElevationLocked() bool

	// SetElevationLocked enables or disables the elevation lock.
	//
	// Parameters:
	//   - locked: true to freeze vertical movement on W/S
	SetElevationLocked(locked bool)

	// ToggleElevationLock flips the elevation lock.
	//
	// Returns:
	//   - bool: the new lock state
	ToggleElevationLock() bool

	// VerticalMoveUsesElevation reports whether Ascend/Descend scale by
	// sin(elevation) rather than moving a full walk-speed step.
	//
	// Returns:
	//   - bool: true if vertical keys scale by elevation
	VerticalMoveUsesElevation() bool
}
