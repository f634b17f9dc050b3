package window

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"walknav/nav/viewer"
)

func almostEqualVec(a, b mgl64.Vec3) bool {
	return a.Sub(b).Len() <= 1e-9
}

func TestSetCameraPositionPreservesOrientation(t *testing.T) {
	w := newWindowState()
	w.position = mgl64.Vec3{0, 0, 0}
	w.target = mgl64.Vec3{1, 2, 3}

	if err := w.SetCameraPosition(mgl64.Vec3{10, 10, 10}); err != nil {
		t.Fatalf("SetCameraPosition: %v", err)
	}

	dir, err := w.ViewDirection()
	if err != nil {
		t.Fatalf("ViewDirection: %v", err)
	}
	if !almostEqualVec(dir, mgl64.Vec3{1, 2, 3}) {
		t.Errorf("view direction changed by a position move: %v", dir)
	}
}

func TestPointCameraAt(t *testing.T) {
	w := newWindowState()
	w.position = mgl64.Vec3{5, 0, 0}

	if err := w.PointCameraAt(mgl64.Vec3{5, 10, 0}, mgl64.Vec3{0, 0, 1}); err != nil {
		t.Fatalf("PointCameraAt: %v", err)
	}
	dir, _ := w.ViewDirection()
	if !almostEqualVec(dir, mgl64.Vec3{0, 10, 0}) {
		t.Errorf("view direction = %v, want (0,10,0)", dir)
	}
}

func TestSetProjectionModeRejectsUnknown(t *testing.T) {
	w := newWindowState()
	if err := w.SetProjectionMode(viewer.ProjectionMode(42)); err == nil {
		t.Error("expected error for unknown projection mode")
	}
	if err := w.SetProjectionMode(viewer.ProjectionPerspective); err != nil {
		t.Errorf("SetProjectionMode: %v", err)
	}
}

func TestSubscriptionDispatchAndUnsubscribe(t *testing.T) {
	w := newWindowState()

	var pointerCalls, keyCalls int
	pointerSub, err := w.SubscribePointerMotion(func(x, y int32) { pointerCalls++ })
	if err != nil {
		t.Fatalf("SubscribePointerMotion: %v", err)
	}
	keySub, err := w.SubscribeKeyPress(func(ev viewer.KeyEvent) { keyCalls++ })
	if err != nil {
		t.Fatalf("SubscribeKeyPress: %v", err)
	}

	w.dispatchPointerMotion(1, 2)
	w.dispatchKey(viewer.KeyEvent{Key: 87, Pressed: true})
	if pointerCalls != 1 || keyCalls != 1 {
		t.Fatalf("dispatch counts = %d/%d, want 1/1", pointerCalls, keyCalls)
	}

	if err := pointerSub.Unsubscribe(); err != nil {
		t.Fatalf("Unsubscribe: %v", err)
	}
	// Releasing twice is a no-op.
	if err := pointerSub.Unsubscribe(); err != nil {
		t.Fatalf("second Unsubscribe: %v", err)
	}
	if err := keySub.Unsubscribe(); err != nil {
		t.Fatalf("Unsubscribe: %v", err)
	}

	w.dispatchPointerMotion(3, 4)
	w.dispatchKey(viewer.KeyEvent{Key: 87, Pressed: true})
	if pointerCalls != 1 || keyCalls != 1 {
		t.Errorf("released handlers still called: %d/%d", pointerCalls, keyCalls)
	}
}

func TestSubscriberMayCallBackIntoWindow(t *testing.T) {
	w := newWindowState()
	_, err := w.SubscribeKeyPress(func(ev viewer.KeyEvent) {
		// Handlers run outside the window lock, so calls back into the
		// window must not deadlock.
		if err := w.SetCameraPosition(mgl64.Vec3{1, 1, 1}); err != nil {
			t.Errorf("SetCameraPosition from handler: %v", err)
		}
	})
	if err != nil {
		t.Fatalf("SubscribeKeyPress: %v", err)
	}

	done := make(chan struct{})
	go func() {
		w.dispatchKey(viewer.KeyEvent{Key: 87, Pressed: true})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("dispatch deadlocked")
	}
}

func TestFitAllFramesSceneBounds(t *testing.T) {
	w := newWindowState()
	w.sceneCenter = mgl64.Vec3{100, 0, 0}
	w.sceneRadius = 1000
	w.position = mgl64.Vec3{0, 0, 0}
	w.target = mgl64.Vec3{1, 0, 0}

	if err := w.FitAll(); err != nil {
		t.Fatalf("FitAll: %v", err)
	}

	dir, _ := w.ViewDirection()
	if !almostEqualVec(dir.Normalize(), mgl64.Vec3{1, 0, 0}) {
		t.Errorf("fit-all changed the view direction: %v", dir)
	}

	wantDistance := 1000 / math.Tan(verticalFOV/2)
	gotDistance := w.sceneCenter.Sub(w.position).Len()
	if math.Abs(gotDistance-wantDistance) > 1e-6 {
		t.Errorf("camera distance = %v, want %v", gotDistance, wantDistance)
	}
}

func TestProjectionMatrixFollowsMode(t *testing.T) {
	w := newWindowState()
	out := make([]float32, 16)

	if err := w.SetProjectionMode(viewer.ProjectionPerspective); err != nil {
		t.Fatalf("SetProjectionMode: %v", err)
	}
	w.ProjectionMatrix(out)
	if out[11] != -1 {
		t.Errorf("perspective matrix [11] = %v, want -1", out[11])
	}

	if err := w.SetProjectionMode(viewer.ProjectionOrthographic); err != nil {
		t.Fatalf("SetProjectionMode: %v", err)
	}
	w.ProjectionMatrix(out)
	if out[11] != 0 || out[15] != 1 {
		t.Errorf("orthographic matrix [11]/[15] = %v/%v, want 0/1", out[11], out[15])
	}
}

func TestStatusMessageAppendsToTitle(t *testing.T) {
	w := newWindowState()
	w.title = "Viewer"

	w.ShowStatusMessage("Speed: 100")
	if got := w.titleLine(); got != "Viewer | Speed: 100" {
		t.Errorf("title = %q", got)
	}

	w.ClearStatusMessage()
	if got := w.titleLine(); got != "Viewer" {
		t.Errorf("title after clear = %q", got)
	}
}

func TestFrameMeter(t *testing.T) {
	m := newFrameMeter()
	if m.Tick() {
		t.Error("rate reported before the interval elapsed")
	}

	m.lastTime = time.Now().Add(-2 * time.Second)
	if !m.Tick() {
		t.Fatal("rate not reported after the interval elapsed")
	}
	if m.Rate() <= 0 {
		t.Errorf("rate = %v, want > 0", m.Rate())
	}
}
