package input

import (
	"log/slog"
	"time"

	"walknav/nav/camera"
	"walknav/nav/config"
	"walknav/nav/journal"
)

// ControllerOption is a functional option for configuring a Controller.
type ControllerOption func(*controllerImpl)

// WithConfig applies a loaded configuration: speed and angle tunables flow
// into each session's camera state, and the feature flags and toggle
// cooldown configure the controller itself.
//
// Parameters:
//   - cfg: the loaded configuration
//
// Returns:
//   - ControllerOption: functional option to apply the configuration
func WithConfig(cfg *config.Config) ControllerOption {
	return func(c *controllerImpl) {
		c.stateOptions = append(c.stateOptions,
			camera.WithWalkSpeed(cfg.Walk.Speed),
			camera.WithWalkSpeedIncrement(cfg.Walk.SpeedIncrement),
			camera.WithMouseSpeed(cfg.Mouse.Speed),
			camera.WithMouseSpeedIncrement(cfg.Mouse.SpeedIncrement),
			camera.WithAngleIncrements(cfg.Angles.AzimuthIncrementDeg, cfg.Angles.ElevationIncrementDeg),
			camera.WithElevationLocked(cfg.Features.ElevationLocked),
			camera.WithVerticalMoveUsesElevation(cfg.Features.VerticalMoveUsesElevation),
		)
		c.mouseActive = cfg.Mouse.Active
		c.mouseFreezeSupported = cfg.Features.MouseFreezeSupported
		c.elevationLockSupported = cfg.Features.ElevationLockSupported
		if cfg.Features.ToggleCooldown > 0 {
			c.toggleCooldown = time.Duration(cfg.Features.ToggleCooldown)
		}
	}
}

// WithStateOptions appends camera state options applied to every session
// this controller starts, after the pose captured from the host.
//
// Parameters:
//   - options: camera state options
//
// Returns:
//   - ControllerOption: functional option to append the state options
func WithStateOptions(options ...camera.StateOption) ControllerOption {
	return func(c *controllerImpl) {
		c.stateOptions = append(c.stateOptions, options...)
	}
}

// WithJournal sets the journal that receives session events.
//
// Parameters:
//   - j: the journal to record to
//
// Returns:
//   - ControllerOption: functional option to set the journal
func WithJournal(j journal.Journal) ControllerOption {
	return func(c *controllerImpl) {
		if j != nil {
			c.journal = j
		}
	}
}

// WithLogger sets the structured logger used by the controller.
//
// Parameters:
//   - log: the logger
//
// Returns:
//   - ControllerOption: functional option to set the logger
func WithLogger(log *slog.Logger) ControllerOption {
	return func(c *controllerImpl) {
		if log != nil {
			c.log = log
		}
	}
}

// WithToggleCooldown sets the minimum delay between mode toggle presses.
//
// Parameters:
//   - d: the cooldown duration
//
// Returns:
//   - ControllerOption: functional option to set the cooldown
func WithToggleCooldown(d time.Duration) ControllerOption {
	return func(c *controllerImpl) {
		c.toggleCooldown = d
	}
}

// WithMouseActive sets whether pointer look starts enabled.
//
// Parameters:
//   - active: true to start with mouse look on
//
// Returns:
//   - ControllerOption: functional option to set the initial mouse mode
func WithMouseActive(active bool) ControllerOption {
	return func(c *controllerImpl) {
		c.mouseActive = active
	}
}

// WithMouseFreezeSupported enables or disables the mouse freeze toggle key.
//
// Parameters:
//   - supported: true to allow freezing mouse look
//
// Returns:
//   - ControllerOption: functional option to set the capability
func WithMouseFreezeSupported(supported bool) ControllerOption {
	return func(c *controllerImpl) {
		c.mouseFreezeSupported = supported
	}
}

// WithElevationLockSupported enables or disables the elevation lock toggle
// key.
//
// Parameters:
//   - supported: true to allow locking the elevation
//
// Returns:
//   - ControllerOption: functional option to set the capability
func WithElevationLockSupported(supported bool) ControllerOption {
	return func(c *controllerImpl) {
		c.elevationLockSupported = supported
	}
}
