package window

import (
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl64"

	"walknav/common"
	"walknav/nav/viewer"
)

// Projection constants shared by the perspective and orthographic paths.
// World units are millimeters, so the far plane sits a kilometer out.
const (
	verticalFOV = 60.0 * math.Pi / 180.0
	nearPlane   = 10.0
	farPlane    = 1_000_000.0
)

// Window is a standalone GLFW viewer that satisfies the host contract the
// navigation controller drives. It owns a camera pose, dispatches pointer
// and key events to subscribers, and presents a WebGPU-cleared surface.
type Window interface {
	viewer.Viewer

	// Run blocks on the window message loop until the window is closed,
	// presenting one frame per iteration.
	Run()

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// Width returns the current client area width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current client area height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int

	// ViewMatrix writes the current world-to-view matrix in column-major
	// order.
	//
	// Parameters:
	//   - out: destination slice (must be at least 16 elements)
	ViewMatrix(out []float32)

	// ProjectionMatrix writes the current projection matrix for the active
	// projection mode in column-major order.
	//
	// Parameters:
	//   - out: destination slice (must be at least 16 elements)
	ProjectionMatrix(out []float32)
}

// navWindow is the implementation of the Window interface.
type navWindow struct {
	mu *sync.Mutex

	// title is the window title; the status message is appended to it.
	title string

	// width and height are the current framebuffer dimensions in pixels.
	width  int
	height int

	// Camera pose: the window owns position, look target and up vector the
	// way a host viewer owns its camera object.
	position mgl64.Vec3
	target   mgl64.Vec3
	up       mgl64.Vec3

	projection viewer.ProjectionMode

	// sceneCenter and sceneRadius bound the displayed scene for FitAll.
	sceneCenter mgl64.Vec3
	sceneRadius float64

	clearColor wgpu.Color

	status string

	nextSubID   int
	pointerSubs map[int]viewer.PointerHandler
	keySubs     map[int]viewer.KeyHandler

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	surface *clearSurface
	meter   *frameMeter
	log     *slog.Logger
}

var _ Window = &navWindow{}

// newWindowState creates a navWindow with defaults and no platform window.
func newWindowState() *navWindow {
	return &navWindow{
		mu:          &sync.Mutex{},
		title:       "Walkthrough",
		width:       1280,
		height:      720,
		target:      mgl64.Vec3{1, 0, 0},
		up:          mgl64.Vec3{0, 0, 1},
		projection:  viewer.ProjectionOrthographic,
		sceneRadius: 1000,
		clearColor:  wgpu.Color{R: 0.1, G: 0.1, B: 0.1, A: 1.0},
		pointerSubs: map[int]viewer.PointerHandler{},
		keySubs:     map[int]viewer.KeyHandler{},
		meter:       newFrameMeter(),
		log:         slog.Default(),
	}
}

// NewWindow creates and spawns a viewer window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured, spawned window
func NewWindow(options ...WindowOption) Window {
	w := newWindowState()
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	if err := newClearSurface(w); err != nil {
		panic(fmt.Sprintf("failed to create render surface: %v", err))
	}
	return w
}

func (w *navWindow) CameraPosition() (mgl64.Vec3, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.position, nil
}

func (w *navWindow) SetCameraPosition(pos mgl64.Vec3) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	// Carry the look target along so the orientation is preserved.
	delta := pos.Sub(w.position)
	w.position = pos
	w.target = w.target.Add(delta)
	return nil
}

func (w *navWindow) ViewDirection() (mgl64.Vec3, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.target.Sub(w.position), nil
}

func (w *navWindow) PointCameraAt(target, up mgl64.Vec3) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.target = target
	w.up = up
	return nil
}

func (w *navWindow) SetProjectionMode(mode viewer.ProjectionMode) error {
	switch mode {
	case viewer.ProjectionPerspective, viewer.ProjectionOrthographic:
	default:
		return fmt.Errorf("unknown projection mode: %v", mode)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.projection = mode
	return nil
}

func (w *navWindow) SubscribePointerMotion(handler viewer.PointerHandler) (viewer.Subscription, error) {
	if handler == nil {
		return nil, fmt.Errorf("nil pointer motion handler")
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	id := w.nextSubID
	w.nextSubID++
	w.pointerSubs[id] = handler
	return &subscription{release: func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.pointerSubs, id)
	}}, nil
}

func (w *navWindow) SubscribeKeyPress(handler viewer.KeyHandler) (viewer.Subscription, error) {
	if handler == nil {
		return nil, fmt.Errorf("nil key handler")
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	id := w.nextSubID
	w.nextSubID++
	w.keySubs[id] = handler
	return &subscription{release: func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.keySubs, id)
	}}, nil
}

func (w *navWindow) ShowStatusMessage(text string) {
	w.mu.Lock()
	w.status = text
	title := w.titleLine()
	w.mu.Unlock()
	platformSetTitle(w, title)
}

func (w *navWindow) ClearStatusMessage() {
	w.ShowStatusMessage("")
}

// titleLine formats the window title with the status appended. Caller must
// hold w.mu.
func (w *navWindow) titleLine() string {
	if w.status == "" {
		return w.title
	}
	return fmt.Sprintf("%s | %s", w.title, w.status)
}

func (w *navWindow) FitAll() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	radius := w.sceneRadius
	if radius <= 0 {
		radius = 1000
	}

	// Keep the current view direction and pull the camera back far enough
	// for the bounding sphere to fill the vertical field of view.
	dir := w.target.Sub(w.position)
	if dir.Len() == 0 {
		dir = mgl64.Vec3{1, 0, 0}
	}
	dir = dir.Normalize()

	distance := radius / math.Tan(verticalFOV/2)
	w.position = w.sceneCenter.Sub(dir.Mul(distance))
	w.target = w.sceneCenter
	return nil
}

// dispatchPointerMotion forwards a pointer event to every subscriber.
// Handlers are copied out first so they run without the window lock: a
// handler is free to call back into the window.
func (w *navWindow) dispatchPointerMotion(x, y int32) {
	w.mu.Lock()
	handlers := make([]viewer.PointerHandler, 0, len(w.pointerSubs))
	for _, h := range w.pointerSubs {
		handlers = append(handlers, h)
	}
	w.mu.Unlock()

	for _, h := range handlers {
		h(x, y)
	}
}

// dispatchKey forwards a key event to every subscriber, outside the lock.
func (w *navWindow) dispatchKey(ev viewer.KeyEvent) {
	w.mu.Lock()
	handlers := make([]viewer.KeyHandler, 0, len(w.keySubs))
	for _, h := range w.keySubs {
		handlers = append(handlers, h)
	}
	w.mu.Unlock()

	for _, h := range handlers {
		h(ev)
	}
}

func (w *navWindow) Run() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.surface != nil {
			if err := w.surface.renderFrame(); err != nil {
				w.log.Warn("failed to present frame", "error", err)
			}
		}
		if w.meter.Tick() {
			w.log.Debug("frame rate", "fps", fmt.Sprintf("%.2f", w.meter.Rate()))
		}

		runtime.Gosched()
	}
}

func (w *navWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *navWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *navWindow) Width() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width
}

func (w *navWindow) Height() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.height
}

func (w *navWindow) ViewMatrix(out []float32) {
	w.mu.Lock()
	defer w.mu.Unlock()
	common.LookAt(out,
		float32(w.position.X()), float32(w.position.Y()), float32(w.position.Z()),
		float32(w.target.X()), float32(w.target.Y()), float32(w.target.Z()),
		float32(w.up.X()), float32(w.up.Y()), float32(w.up.Z()),
	)
}

func (w *navWindow) ProjectionMatrix(out []float32) {
	w.mu.Lock()
	defer w.mu.Unlock()

	aspect := float32(1)
	if w.height > 0 {
		aspect = float32(w.width) / float32(w.height)
	}

	if w.projection == viewer.ProjectionPerspective {
		common.Perspective(out, float32(verticalFOV), aspect, nearPlane, farPlane)
		return
	}

	halfHeight := float32(w.sceneRadius)
	if halfHeight <= 0 {
		halfHeight = 1000
	}
	common.Ortho(out, halfHeight*aspect, halfHeight, -farPlane, farPlane)
}

// resize records new framebuffer dimensions and reconfigures the surface.
func (w *navWindow) resize(width, height int) {
	w.mu.Lock()
	w.width = width
	w.height = height
	surface := w.surface
	clear := w.clearColor
	w.mu.Unlock()

	if surface != nil && width > 0 && height > 0 {
		surface.configure(width, height, clear)
	}
}

// subscription releases a handler registration exactly once.
type subscription struct {
	once    sync.Once
	release func()
}

var _ viewer.Subscription = &subscription{}

func (s *subscription) Unsubscribe() error {
	s.once.Do(s.release)
	return nil
}
