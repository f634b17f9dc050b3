package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const float64EqualityThreshold = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= float64EqualityThreshold
}

// sameAngleDeg compares two radian angles modulo 360 degrees.
func sameAngleDeg(a, b float64) bool {
	da := normalizeDeg(a * rad2Deg)
	db := normalizeDeg(b * rad2Deg)
	diff := math.Abs(da - db)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff <= 1e-7
}

func TestStepAzimuthIncrementDecrementAreInverses(t *testing.T) {
	values := []float64{0, 0.5, -0.5, math.Pi, 2 * math.Pi, 7.25, -13.0}
	increments := []float64{1, 5, 45, 123.4, 359}

	for _, v := range values {
		for _, k := range increments {
			up := StepAzimuth(v, k, true)
			back := StepAzimuth(up, k, false)
			if !sameAngleDeg(back, v) {
				t.Errorf("StepAzimuth(%v, %v) round trip = %v deg, want %v deg",
					v, k, normalizeDeg(back*rad2Deg), normalizeDeg(v*rad2Deg))
			}
		}
	}
}

func TestStepElevationNeverEntersPoleBand(t *testing.T) {
	for deg := -720.0; deg <= 720.0; deg += 7.3 {
		for _, inc := range []float64{1, 10, 89, 180} {
			for _, positive := range []bool{true, false} {
				got := StepElevation(deg*deg2Rad, inc, positive)
				d := normalizeDeg(got * rad2Deg)
				if d > poleLowDeg && d < poleHighDeg {
					t.Fatalf("StepElevation(%v deg, %v, %v) = %v deg, inside pole band",
						deg, inc, positive, d)
				}
			}
		}
	}
}

func TestStepElevationAcceptsSafeSteps(t *testing.T) {
	testCases := []struct {
		name     string
		startDeg float64
		inc      float64
		positive bool
		wantDeg  float64
	}{
		{"level up one degree", 0, 1, true, 1},
		{"level down one degree", 0, 1, false, -1},
		{"near upper pole rejected", 89, 2, true, 89},
		{"near lower pole rejected", 271, 2, false, 271},
		{"descending from upper pole", 89, 2, false, 87},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := StepElevation(tc.startDeg*deg2Rad, tc.inc, tc.positive)
			if !sameAngleDeg(got, tc.wantDeg*deg2Rad) {
				t.Errorf("got %v deg, want %v deg", normalizeDeg(got*rad2Deg), tc.wantDeg)
			}
		})
	}
}

func TestPointerLookZeroDeltaIsNoOp(t *testing.T) {
	s := NewState(WithAzimuth(0.4), WithElevation(0.2))
	s.SetPointerRef(100, 200)
	s.PointerLook(100, 200)

	if !almostEqual(s.Azimuth(), 0.4) {
		t.Errorf("azimuth changed to %v on zero delta", s.Azimuth())
	}
	if !almostEqual(s.Elevation(), 0.2) {
		t.Errorf("elevation changed to %v on zero delta", s.Elevation())
	}
}

func TestPointerLookDeltaScaling(t *testing.T) {
	// dx=10 at mouseSpeed=50 must rotate azimuth by exactly
	// -10*(50/10000) = -0.05 rad: deltas are previous minus current.
	s := NewState(WithMouseSpeed(50))
	s.SetPointerRef(0, 0)
	s.PointerLook(10, 0)

	if !almostEqual(s.Azimuth(), -0.05) {
		t.Errorf("azimuth = %v, want -0.05", s.Azimuth())
	}
	if !almostEqual(s.Elevation(), 0) {
		t.Errorf("elevation = %v, want 0", s.Elevation())
	}
}

func TestPointerLookElevationIsPoleClamped(t *testing.T) {
	// 89 degrees up, then a large upward mouse sweep: the elevation must
	// refuse to cross the pole.
	s := NewState(WithMouseSpeed(50), WithElevation(89*deg2Rad))
	s.SetPointerRef(0, 1000)
	s.PointerLook(0, 0)

	d := normalizeDeg(s.Elevation() * rad2Deg)
	if d > poleLowDeg && d < poleHighDeg {
		t.Fatalf("elevation %v deg crossed into the pole band", d)
	}
}

func TestMoveForwardAlongAzimuth(t *testing.T) {
	s := NewState(WithWalkSpeed(100))
	s.MoveForward()

	pos := s.Position()
	if !almostEqual(pos.X(), 100) {
		t.Errorf("x = %v, want 100", pos.X())
	}
	if !almostEqual(pos.Y(), 0) {
		t.Errorf("y = %v, want 0", pos.Y())
	}
	if !almostEqual(pos.Z(), 0) {
		t.Errorf("z = %v, want 0", pos.Z())
	}
}

func TestWalkThenStrafeScenario(t *testing.T) {
	// Start at the origin looking along +X: W moves to (100,0,0), then D
	// subtracts along azimuth+90 and lands at (100,-100,0).
	s := NewState(WithWalkSpeed(100))

	s.MoveForward()
	pos := s.Position()
	if !almostEqual(pos.X(), 100) || !almostEqual(pos.Y(), 0) || !almostEqual(pos.Z(), 0) {
		t.Fatalf("after W: %v, want (100,0,0)", pos)
	}

	s.StrafeRight()
	pos = s.Position()
	if !almostEqual(pos.X(), 100) || !almostEqual(pos.Y(), -100) || !almostEqual(pos.Z(), 0) {
		t.Fatalf("after D: %v, want (100,-100,0)", pos)
	}
}

func TestElevationLockFreezesVerticalMovement(t *testing.T) {
	s := NewState(WithWalkSpeed(100), WithElevation(0.5), WithElevationLocked(true))
	s.MoveForward()
	if z := s.Position().Z(); !almostEqual(z, 0) {
		t.Errorf("z = %v with elevation lock on, want 0", z)
	}

	s.SetElevationLocked(false)
	s.MoveForward()
	if z := s.Position().Z(); !almostEqual(z, 100*math.Sin(0.5)) {
		t.Errorf("z = %v with elevation lock off, want %v", z, 100*math.Sin(0.5))
	}
}

func TestVerticalMoveConventions(t *testing.T) {
	// Default convention: Q/E move a full walk-speed step along world Z,
	// independent of the look elevation.
	s := NewState(WithWalkSpeed(100), WithElevation(0.5))
	s.Ascend()
	if z := s.Position().Z(); !almostEqual(z, 100) {
		t.Errorf("default ascend z = %v, want 100", z)
	}

	// Legacy revision: vertical keys scale by sin(elevation).
	s = NewState(WithWalkSpeed(100), WithElevation(0.5), WithVerticalMoveUsesElevation(true))
	s.Descend()
	if z := s.Position().Z(); !almostEqual(z, -100*math.Sin(0.5)) {
		t.Errorf("elevation-scaled descend z = %v, want %v", z, -100*math.Sin(0.5))
	}
}

func TestSpeedTuning(t *testing.T) {
	s := NewState(WithWalkSpeed(100), WithWalkSpeedIncrement(10))
	s.IncreaseWalkSpeed()
	s.IncreaseWalkSpeed()
	if got := s.WalkSpeed(); !almostEqual(got, 120) {
		t.Errorf("walk speed after two increments = %v, want 120", got)
	}
	s.DecreaseWalkSpeed()
	if got := s.WalkSpeed(); !almostEqual(got, 110) {
		t.Errorf("walk speed after decrement = %v, want 110", got)
	}

	s.SetMouseSpeedIncrement(5)
	s.SetMouseSpeed(50)
	s.DecreaseMouseSpeed()
	if got := s.MouseSpeed(); !almostEqual(got, 45) {
		t.Errorf("mouse speed after decrement = %v, want 45", got)
	}
}

func TestWithViewDirectionDerivesAngles(t *testing.T) {
	testCases := []struct {
		name          string
		dir           mgl64.Vec3
		wantAzimuth   float64
		wantElevation float64
	}{
		{"general direction", mgl64.Vec3{1, 1, 1}, math.Atan(1), math.Atan(1)},
		{"zero x leaves azimuth", mgl64.Vec3{0, 2, 1}, 0, math.Atan(0.5)},
		{"zero y leaves elevation", mgl64.Vec3{2, 0, 1}, math.Atan(0), 0},
		{"zero vector leaves both", mgl64.Vec3{0, 0, 0}, 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewState(WithViewDirection(tc.dir))
			if !almostEqual(s.Azimuth(), tc.wantAzimuth) {
				t.Errorf("azimuth = %v, want %v", s.Azimuth(), tc.wantAzimuth)
			}
			if !almostEqual(s.Elevation(), tc.wantElevation) {
				t.Errorf("elevation = %v, want %v", s.Elevation(), tc.wantElevation)
			}
		})
	}
}

func TestLookTargetOffset(t *testing.T) {
	s := NewState(
		WithPosition(mgl64.Vec3{10, 20, 30}),
		WithAzimuth(math.Pi/3),
		WithElevation(math.Pi/6),
	)

	target := s.LookTarget()
	if !almostEqual(target.X(), 10+math.Cos(math.Pi/3)) {
		t.Errorf("target x = %v", target.X())
	}
	if !almostEqual(target.Y(), 20+math.Sin(math.Pi/3)) {
		t.Errorf("target y = %v", target.Y())
	}
	if !almostEqual(target.Z(), 30+math.Sin(math.Pi/6)) {
		t.Errorf("target z = %v", target.Z())
	}
}

func TestAdjustElevationHonorsPoleClamp(t *testing.T) {
	s := NewState(WithElevation(89*deg2Rad), WithAngleIncrements(1, 2))
	s.AdjustElevation(true)
	if !sameAngleDeg(s.Elevation(), 89*deg2Rad) {
		t.Errorf("elevation stepped into pole band: %v deg", normalizeDeg(s.Elevation()*rad2Deg))
	}

	s.AdjustElevation(false)
	if !sameAngleDeg(s.Elevation(), 87*deg2Rad) {
		t.Errorf("elevation = %v deg, want 87", normalizeDeg(s.Elevation()*rad2Deg))
	}
}
