package input

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"walknav/common"
	"walknav/nav/camera"
	"walknav/nav/journal"
	"walknav/nav/viewer"
)

// DefaultToggleCooldown is the minimum delay between mode toggle key
// presses. Keyboard auto-repeat would otherwise flip a toggle several times
// per physical press.
const DefaultToggleCooldown = 300 * time.Millisecond

// statusTemplate is the hint line shown while a session is active.
const statusTemplate = "W: Forward, S: Backward, A: Left, D: Right, Speed: %v"

// worldUp is the fixed up vector used when orienting the host camera.
var worldUp = mgl64.Vec3{0, 0, 1}

// controllerImpl is the single implementation of Controller.
type controllerImpl struct {
	mu *sync.Mutex

	viewer viewer.Viewer
	state  camera.State

	journal journal.Journal
	log     *slog.Logger

	stateOptions []camera.StateOption

	pointerSub viewer.Subscription
	keySub     viewer.Subscription

	active      bool
	mouseActive bool

	mouseFreezeSupported   bool
	elevationLockSupported bool

	toggleCooldown time.Duration
	lastToggle     time.Time
}

// Compile-time interface compliance check
var _ Controller = &controllerImpl{}

// NewController creates a navigation controller bound to the given host
// viewer. The controller is idle until Start is called.
//
// Parameters:
//   - v: the host viewer to drive
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
func NewController(v viewer.Viewer, options ...ControllerOption) Controller {
	c := &controllerImpl{
		mu:                     &sync.Mutex{},
		viewer:                 v,
		journal:                journal.Noop(),
		log:                    slog.Default(),
		mouseActive:            true,
		mouseFreezeSupported:   true,
		elevationLockSupported: true,
		toggleCooldown:         DefaultToggleCooldown,
	}

	for _, option := range options {
		option(c)
	}

	return c
}

func (c *controllerImpl) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active {
		return fmt.Errorf("navigation session already active")
	}
	if c.viewer == nil {
		return fmt.Errorf("no viewer attached")
	}

	// Fail fast before touching any host state: a session must never start
	// half-initialized.
	pos, err := c.viewer.CameraPosition()
	if err != nil {
		return fmt.Errorf("host camera unavailable: %v", err)
	}
	dir, err := c.viewer.ViewDirection()
	if err != nil {
		return fmt.Errorf("host camera unavailable: %v", err)
	}

	opts := append([]camera.StateOption{
		camera.WithPosition(pos),
		camera.WithViewDirection(dir),
	}, c.stateOptions...)
	c.state = camera.NewState(opts...)

	if err := c.viewer.SetProjectionMode(viewer.ProjectionPerspective); err != nil {
		c.state = nil
		return fmt.Errorf("failed to switch to perspective projection: %v", err)
	}

	pointerSub, err := c.viewer.SubscribePointerMotion(c.handlePointerMotion)
	if err != nil {
		c.state = nil
		return fmt.Errorf("failed to subscribe to pointer motion: %v", err)
	}
	keySub, err := c.viewer.SubscribeKeyPress(c.handleKeyPress)
	if err != nil {
		if uerr := pointerSub.Unsubscribe(); uerr != nil {
			c.log.Warn("failed to release pointer subscription", "error", uerr)
		}
		c.state = nil
		return fmt.Errorf("failed to subscribe to key events: %v", err)
	}

	c.pointerSub = pointerSub
	c.keySub = keySub
	c.active = true

	c.viewer.ShowStatusMessage(c.statusLine())
	c.journalEvent(journal.KindSessionStart, "")
	c.log.Info("navigation session started",
		"position", pos,
		"walkSpeed", c.state.WalkSpeed(),
		"mouseSpeed", c.state.MouseSpeed(),
	)
	return nil
}

func (c *controllerImpl) End() error {
	c.mu.Lock()
	if !c.active {
		c.mu.Unlock()
		return nil
	}
	c.active = false
	pointerSub, keySub := c.pointerSub, c.keySub
	c.pointerSub, c.keySub = nil, nil
	c.journalEvent(journal.KindSessionEnd, "")
	c.mu.Unlock()

	// Teardown steps are guarded individually: a failure in one must not
	// leave the handlers registered or the projection stuck in perspective.
	if pointerSub != nil {
		if err := pointerSub.Unsubscribe(); err != nil {
			c.log.Warn("failed to release pointer subscription", "error", err)
		}
	}
	if keySub != nil {
		if err := keySub.Unsubscribe(); err != nil {
			c.log.Warn("failed to release key subscription", "error", err)
		}
	}
	if err := c.viewer.SetProjectionMode(viewer.ProjectionOrthographic); err != nil {
		c.log.Warn("failed to restore orthographic projection", "error", err)
	}
	c.viewer.ClearStatusMessage()

	c.log.Info("navigation session ended")
	return nil
}

func (c *controllerImpl) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

func (c *controllerImpl) State() camera.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *controllerImpl) MouseActive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mouseActive
}

// handlePointerMotion is the pointer motion subscription callback. While
// mouse look is active it rotates the view and reorients the host camera;
// while frozen it pulls the host's position back into the session state so
// external camera moves are not lost.
func (c *controllerImpl) handlePointerMotion(x, y int32) {
	defer c.recoverHandler("pointer motion")

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.active {
		return
	}

	if !c.mouseActive {
		pos, err := c.viewer.CameraPosition()
		if err != nil {
			c.log.Warn("failed to read host camera position", "error", err)
			return
		}
		c.state.SetPosition(pos)
		c.state.SetPointerRef(x, y)
		return
	}

	c.state.PointerLook(x, y)
	if err := c.viewer.PointCameraAt(c.state.LookTarget(), worldUp); err != nil {
		c.log.Warn("failed to orient host camera", "error", err)
		return
	}
	c.viewer.ShowStatusMessage(c.statusLine())
}

// handleKeyPress is the key subscription callback. Only key-down events act;
// auto-repeat is allowed for movement keys and damped for mode toggles by
// the cooldown. After every handled key the stored pointer reference is
// reset to the event's pointer coordinates, and the (possibly moved)
// position is pushed to the host.
func (c *controllerImpl) handleKeyPress(ev viewer.KeyEvent) {
	defer c.recoverHandler("key press")

	if c.dispatchKey(ev) {
		if err := c.End(); err != nil {
			c.log.Warn("failed to end navigation session", "error", err)
		}
	}
}

// dispatchKey applies a single key event to the session state. It returns
// true when the key requested session end, which must happen outside the
// lock.
func (c *controllerImpl) dispatchKey(ev viewer.KeyEvent) (endSession bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.active || !ev.Pressed {
		return false
	}

	pushPosition := true
	switch ev.Key {
	case common.KeyEsc:
		return true
	case common.KeyW:
		c.state.MoveForward()
	case common.KeyS:
		c.state.MoveBackward()
	case common.KeyA:
		c.state.StrafeLeft()
	case common.KeyD:
		c.state.StrafeRight()
	case common.KeyQ:
		c.state.Descend()
	case common.KeyE:
		c.state.Ascend()
	case common.KeyR:
		c.state.IncreaseWalkSpeed()
	case common.KeyF:
		c.state.DecreaseWalkSpeed()
	case common.KeyT:
		c.state.IncreaseMouseSpeed()
	case common.KeyG:
		c.state.DecreaseMouseSpeed()
	case common.KeyX:
		// Freezing the mouse must not snap the camera back to the stored
		// position, so the position push is skipped for this key.
		pushPosition = false
		if c.mouseFreezeSupported && c.toggleReady() {
			c.mouseActive = !c.mouseActive
			detail := "mouse_frozen"
			if c.mouseActive {
				detail = "mouse_active"
			}
			c.journalEvent(journal.KindToggle, detail)
			c.log.Info("mouse look toggled", "active", c.mouseActive)
		}
	case common.KeyC:
		if c.elevationLockSupported && c.toggleReady() {
			locked := c.state.ToggleElevationLock()
			detail := "elevation_unlocked"
			if locked {
				detail = "elevation_locked"
			}
			c.journalEvent(journal.KindToggle, detail)
			c.log.Info("elevation lock toggled", "locked", locked)
		}
	case common.KeyV:
		if c.toggleReady() {
			if err := c.viewer.FitAll(); err != nil {
				c.log.Warn("failed to fit view", "error", err)
			} else {
				c.journalEvent(journal.KindFitAll, "")
			}
		}
	}

	c.state.SetPointerRef(ev.PointerX, ev.PointerY)
	if pushPosition {
		if err := c.viewer.SetCameraPosition(c.state.Position()); err != nil {
			c.log.Warn("failed to move host camera", "error", err)
		}
	}
	c.viewer.ShowStatusMessage(c.statusLine())
	return false
}

// toggleReady reports whether enough time has passed since the last mode
// toggle, and arms the cooldown when it has. Caller must hold c.mu.
func (c *controllerImpl) toggleReady() bool {
	now := time.Now()
	if now.Sub(c.lastToggle) < c.toggleCooldown {
		return false
	}
	c.lastToggle = now
	return true
}

func (c *controllerImpl) SetWalkSpeedText(text string) {
	c.applySpeedText("walk speed", text, func(v float64) {
		c.state.SetWalkSpeed(v)
	})
}

func (c *controllerImpl) SetWalkSpeedIncrementText(text string) {
	c.applySpeedText("walk speed increment", text, func(v float64) {
		c.state.SetWalkSpeedIncrement(v)
	})
}

func (c *controllerImpl) SetMouseSpeedText(text string) {
	c.applySpeedText("mouse speed", text, func(v float64) {
		c.state.SetMouseSpeed(v)
	})
}

func (c *controllerImpl) SetMouseSpeedIncrementText(text string) {
	c.applySpeedText("mouse speed increment", text, func(v float64) {
		c.state.SetMouseSpeedIncrement(v)
	})
}

// applySpeedText parses a typed numeric field and applies it to the session
// state. Malformed input and input outside a session are logged and dropped.
func (c *controllerImpl) applySpeedText(name, text string, apply func(float64)) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		c.log.Warn("ignoring malformed numeric input", "field", name, "input", text)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.active || c.state == nil {
		c.log.Warn("ignoring numeric input outside a session", "field", name)
		return
	}
	apply(v)
	c.viewer.ShowStatusMessage(c.statusLine())
	c.log.Info("speed setting changed", "field", name, "value", v)
}

// statusLine formats the in-session hint line. Caller must hold c.mu.
func (c *controllerImpl) statusLine() string {
	return fmt.Sprintf(statusTemplate, c.state.WalkSpeed())
}

// journalEvent records a session event stamped with the current camera pose.
// Caller must hold c.mu.
func (c *controllerImpl) journalEvent(kind, detail string) {
	if c.state == nil {
		return
	}
	pos := c.state.Position()
	c.journal.Record(journal.Event{
		Kind:      kind,
		Detail:    detail,
		Position:  [3]float64{pos.X(), pos.Y(), pos.Z()},
		Azimuth:   c.state.Azimuth(),
		Elevation: c.state.Elevation(),
		WalkSpeed: c.state.WalkSpeed(),
	})
}

// recoverHandler absorbs a panic raised inside an event callback. One broken
// event must not take down the host's event loop.
func (c *controllerImpl) recoverHandler(name string) {
	if r := recover(); r != nil {
		c.log.Error("input handler panic recovered", "handler", name, "panic", r)
	}
}
