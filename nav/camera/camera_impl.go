package camera

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// Default tunables, matching the host viewer's world units (millimeters).
const (
	DefaultWalkSpeed           = 100.0
	DefaultWalkSpeedIncrement  = 10.0
	DefaultMouseSpeed          = 50.0
	DefaultMouseSpeedIncrement = 5.0
	DefaultAzimuthIncrementDeg = 1.0
	DefaultElevationIncrement  = 1.0
)

const (
	deg2Rad = math.Pi / 180.0
	rad2Deg = 180.0 / math.Pi

	// mouseSpeedDivider converts the integer-scale mouse sensitivity into a
	// small per-pixel radian increment.
	mouseSpeedDivider = 10000.0

	// The vertical poles in degrees. Elevation values whose normalized
	// degree-equivalent falls strictly inside (poleLowDeg, poleHighDeg) would
	// tip the look vector past vertical and flip the view, so they are
	// rejected.
	poleLowDeg  = 90.0
	poleHighDeg = 270.0
)

// stateImpl is the single implementation of State.
// All mutating operations take the mutex; the host delivers events serially
// on one thread, but embedders may read the pose from a render loop.
type stateImpl struct {
	mu *sync.Mutex

	position  mgl64.Vec3
	azimuth   float64 // radians, wraps freely
	elevation float64 // radians, confined outside the pole band

	walkSpeed           float64
	walkSpeedIncrement  float64
	mouseSpeed          float64
	mouseSpeedIncrement float64

	azimuthIncrementDeg   float64
	elevationIncrementDeg float64

	lastPointerX int32
	lastPointerY int32

	elevationLocked           bool
	verticalMoveUsesElevation bool
}

// Compile-time interface compliance check
var _ State = &stateImpl{}

// NewState creates a walkthrough camera state with the legacy defaults.
//
// Parameters:
//   - options: functional options to configure the state
//
// Returns:
//   - State: the newly created camera state
func NewState(options ...StateOption) State {
	s := &stateImpl{
		mu: &sync.Mutex{},

		walkSpeed:           DefaultWalkSpeed,
		walkSpeedIncrement:  DefaultWalkSpeedIncrement,
		mouseSpeed:          DefaultMouseSpeed,
		mouseSpeedIncrement: DefaultMouseSpeedIncrement,

		azimuthIncrementDeg:   DefaultAzimuthIncrementDeg,
		elevationIncrementDeg: DefaultElevationIncrement,
	}

	for _, option := range options {
		option(s)
	}

	return s
}

// --- pure angle helpers ---

// normalizeDeg reduces a degree value into [0, 360).
func normalizeDeg(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// StepAzimuth applies one keyboard azimuth step: the current angle is
// converted to degrees, reduced modulo 360 to keep it canonical, moved by
// the increment, and converted back to radians. Azimuth is never clamped;
// increment and decrement are inverses modulo wraparound.
//
// Parameters:
//   - value: current azimuth in radians
//   - incrementDeg: step size in degrees
//   - positive: true to increment, false to decrement
//
// Returns:
//   - float64: the new azimuth in radians
func StepAzimuth(value, incrementDeg float64, positive bool) float64 {
	valueDeg := normalizeDeg(value * rad2Deg)
	if positive {
		valueDeg += incrementDeg
	} else {
		valueDeg -= incrementDeg
	}
	return valueDeg * deg2Rad
}

// StepElevation applies one keyboard elevation step with the pole clamp:
// if the stepped angle's degree-equivalent lies strictly between 90 and
// 270, the change is rejected and the modulo-reduced current value is
// returned instead. Elevation therefore stays inside
// [270, 360) union [0, 90] and the view can never flip past vertical.
//
// Parameters:
//   - value: current elevation in radians
//   - incrementDeg: step size in degrees
//   - positive: true to increment, false to decrement
//
// Returns:
//   - float64: the new elevation in radians
func StepElevation(value, incrementDeg float64, positive bool) float64 {
	valueDeg := value * rad2Deg
	valueMod := normalizeDeg(valueDeg)
	if positive {
		valueDeg += incrementDeg
	} else {
		valueDeg -= incrementDeg
	}
	if d := normalizeDeg(valueDeg); d > poleLowDeg && d < poleHighDeg {
		valueDeg = clampPoleDeg(valueMod)
	}
	return valueDeg * deg2Rad
}

// clampPoleDeg snaps a degree value that lies strictly inside the pole band
// to the nearest pole boundary. Values outside the band pass through.
func clampPoleDeg(d float64) float64 {
	if d > poleLowDeg && d < poleHighDeg {
		if d < 180 {
			return poleLowDeg
		}
		return poleHighDeg
	}
	return d
}

// clampElevation accepts candidate unless its degree-equivalent falls
// strictly inside the pole band, in which case the modulo-reduced current
// value (itself snapped out of the band) is kept.
func clampElevation(current, candidate float64) float64 {
	if d := normalizeDeg(candidate * rad2Deg); d > poleLowDeg && d < poleHighDeg {
		return clampPoleDeg(normalizeDeg(current*rad2Deg)) * deg2Rad
	}
	return candidate
}

// --- pose accessors ---

func (s *stateImpl) Position() mgl64.Vec3 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.position
}

func (s *stateImpl) SetPosition(pos mgl64.Vec3) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.position = pos
}

func (s *stateImpl) Azimuth() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.azimuth
}

func (s *stateImpl) SetAzimuth(azimuth float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.azimuth = azimuth
}

func (s *stateImpl) Elevation() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elevation
}

func (s *stateImpl) SetElevation(elevation float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.elevation = clampElevation(s.elevation, elevation)
}

func (s *stateImpl) AdjustAzimuth(positive bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.azimuth = StepAzimuth(s.azimuth, s.azimuthIncrementDeg, positive)
}

func (s *stateImpl) AdjustElevation(positive bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.elevation = StepElevation(s.elevation, s.elevationIncrementDeg, positive)
}

func (s *stateImpl) LookTarget() mgl64.Vec3 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.position.Add(mgl64.Vec3{
		math.Cos(s.azimuth),
		math.Sin(s.azimuth),
		math.Sin(s.elevation),
	})
}

// --- pointer-driven look ---

func (s *stateImpl) PointerLook(px, py int32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Deltas are previous minus current: moving the pointer right decreases
	// azimuth, moving it down decreases elevation.
	dAz := float64(s.lastPointerX - px)
	dEl := float64(s.lastPointerY - py)

	scale := s.mouseSpeed / mouseSpeedDivider
	s.azimuth += dAz * scale
	s.elevation = clampElevation(s.elevation, s.elevation+dEl*scale)

	s.lastPointerX = px
	s.lastPointerY = py
}

func (s *stateImpl) SetPointerRef(px, py int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastPointerX = px
	s.lastPointerY = py
}

// --- keyboard translation ---

func (s *stateImpl) MoveForward() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.position[0] += s.walkSpeed * math.Cos(s.azimuth)
	s.position[1] += s.walkSpeed * math.Sin(s.azimuth)
	if !s.elevationLocked {
		s.position[2] += s.walkSpeed * math.Sin(s.elevation)
	}
}

func (s *stateImpl) MoveBackward() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.position[0] -= s.walkSpeed * math.Cos(s.azimuth)
	s.position[1] -= s.walkSpeed * math.Sin(s.azimuth)
	if !s.elevationLocked {
		s.position[2] -= s.walkSpeed * math.Sin(s.elevation)
	}
}

func (s *stateImpl) StrafeLeft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.position[0] += s.walkSpeed * math.Cos(s.azimuth+math.Pi/2.0)
	s.position[1] += s.walkSpeed * math.Sin(s.azimuth+math.Pi/2.0)
}

func (s *stateImpl) StrafeRight() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.position[0] -= s.walkSpeed * math.Cos(s.azimuth+math.Pi/2.0)
	s.position[1] -= s.walkSpeed * math.Sin(s.azimuth+math.Pi/2.0)
}

func (s *stateImpl) Ascend() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.verticalMoveUsesElevation {
		s.position[2] += s.walkSpeed * math.Sin(s.elevation)
	} else {
		s.position[2] += s.walkSpeed
	}
}

func (s *stateImpl) Descend() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.verticalMoveUsesElevation {
		s.position[2] -= s.walkSpeed * math.Sin(s.elevation)
	} else {
		s.position[2] -= s.walkSpeed
	}
}

// --- speed tuning ---

func (s *stateImpl) WalkSpeed() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.walkSpeed
}

func (s *stateImpl) SetWalkSpeed(speed float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.walkSpeed = speed
}

func (s *stateImpl) WalkSpeedIncrement() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.walkSpeedIncrement
}

func (s *stateImpl) SetWalkSpeedIncrement(increment float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.walkSpeedIncrement = increment
}

func (s *stateImpl) IncreaseWalkSpeed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.walkSpeed += s.walkSpeedIncrement
}

func (s *stateImpl) DecreaseWalkSpeed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.walkSpeed -= s.walkSpeedIncrement
}

func (s *stateImpl) MouseSpeed() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mouseSpeed
}

func (s *stateImpl) SetMouseSpeed(speed float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mouseSpeed = speed
}

func (s *stateImpl) MouseSpeedIncrement() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mouseSpeedIncrement
}

func (s *stateImpl) SetMouseSpeedIncrement(increment float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mouseSpeedIncrement = increment
}

func (s *stateImpl) IncreaseMouseSpeed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mouseSpeed += s.mouseSpeedIncrement
}

func (s *stateImpl) DecreaseMouseSpeed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mouseSpeed -= s.mouseSpeedIncrement
}

// --- modes ---

func (s *stateImpl) ElevationLocked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elevationLocked
}

func (s *stateImpl) SetElevationLocked(locked bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.elevationLocked = locked
}

func (s *stateImpl) ToggleElevationLock() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.elevationLocked = !s.elevationLocked
	return s.elevationLocked
}

func (s *stateImpl) VerticalMoveUsesElevation() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.verticalMoveUsesElevation
}
