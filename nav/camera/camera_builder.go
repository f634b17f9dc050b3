package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// StateOption is a functional option for configuring a camera State.
type StateOption func(*stateImpl)

// WithPosition sets the initial camera position.
//
// Parameters:
//   - pos: world-space position in millimeters
//
// Returns:
//   - StateOption: functional option to set the position
func WithPosition(pos mgl64.Vec3) StateOption {
	return func(s *stateImpl) {
		s.position = pos
	}
}

// WithViewDirection derives the initial azimuth and elevation from the host
// camera's view direction vector, the way a session captures the live pose:
// azimuth = atan(dy/dx) and elevation = atan(dz/dy). Components with a zero
// denominator leave the corresponding angle at zero.
//
// Parameters:
//   - dir: the host camera's view direction
//
// Returns:
//   - StateOption: functional option to derive the initial angles
func WithViewDirection(dir mgl64.Vec3) StateOption {
	return func(s *stateImpl) {
		if dir.X() != 0 {
			s.azimuth = math.Atan(dir.Y() / dir.X())
		}
		if dir.Y() != 0 {
			s.elevation = math.Atan(dir.Z() / dir.Y())
		}
	}
}

// WithAzimuth sets the initial horizontal look angle directly.
//
// Parameters:
//   - azimuth: horizontal angle in radians
//
// Returns:
//   - StateOption: functional option to set the azimuth
func WithAzimuth(azimuth float64) StateOption {
	return func(s *stateImpl) {
		s.azimuth = azimuth
	}
}

// WithElevation sets the initial vertical look angle directly.
//
// Parameters:
//   - elevation: vertical angle in radians
//
// Returns:
//   - StateOption: functional option to set the elevation
func WithElevation(elevation float64) StateOption {
	return func(s *stateImpl) {
		s.elevation = elevation
	}
}

// WithWalkSpeed sets the distance moved per translation key press.
//
// Parameters:
//   - speed: walk speed in world units
//
// Returns:
//   - StateOption: functional option to set the walk speed
func WithWalkSpeed(speed float64) StateOption {
	return func(s *stateImpl) {
		s.walkSpeed = speed
	}
}

// WithWalkSpeedIncrement sets the walk speed tuning step.
//
// Parameters:
//   - increment: increment in world units
//
// Returns:
//   - StateOption: functional option to set the walk speed increment
func WithWalkSpeedIncrement(increment float64) StateOption {
	return func(s *stateImpl) {
		s.walkSpeedIncrement = increment
	}
}

// WithMouseSpeed sets the look sensitivity scale.
//
// Parameters:
//   - speed: the sensitivity scale (effective rotation is speed/10000 per pixel)
//
// Returns:
//   - StateOption: functional option to set the mouse speed
func WithMouseSpeed(speed float64) StateOption {
	return func(s *stateImpl) {
		s.mouseSpeed = speed
	}
}

// WithMouseSpeedIncrement sets the sensitivity tuning step.
//
// Parameters:
//   - increment: the sensitivity increment
//
// Returns:
//   - StateOption: functional option to set the mouse speed increment
func WithMouseSpeedIncrement(increment float64) StateOption {
	return func(s *stateImpl) {
		s.mouseSpeedIncrement = increment
	}
}

// WithAngleIncrements sets the keyboard azimuth and elevation step sizes.
//
// Parameters:
//   - azimuthDeg: azimuth step in degrees
//   - elevationDeg: elevation step in degrees
//
// Returns:
//   - StateOption: functional option to set the angle increments
func WithAngleIncrements(azimuthDeg, elevationDeg float64) StateOption {
	return func(s *stateImpl) {
		s.azimuthIncrementDeg = azimuthDeg
		s.elevationIncrementDeg = elevationDeg
	}
}

// WithElevationLocked sets the initial elevation lock state.
//
// Parameters:
//   - locked: true to freeze vertical movement on forward/backward keys
//
// Returns:
//   - StateOption: functional option to set the elevation lock
func WithElevationLocked(locked bool) StateOption {
	return func(s *stateImpl) {
		s.elevationLocked = locked
	}
}

// WithVerticalMoveUsesElevation selects the legacy revision in which the
// ascend/descend keys scale by sin(elevation) instead of moving a full
// walk-speed step along world Z.
//
// Parameters:
//   - enabled: true to scale vertical keys by elevation
//
// Returns:
//   - StateOption: functional option to select the vertical key behavior
func WithVerticalMoveUsesElevation(enabled bool) StateOption {
	return func(s *stateImpl) {
		s.verticalMoveUsesElevation = enabled
	}
}
