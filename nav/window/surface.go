package window

import (
	"fmt"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
)

// clearSurface owns the WebGPU objects needed to present a cleared frame:
// instance, surface, adapter, device and queue. The walkthrough viewer has
// no scene geometry of its own, so each frame is a single clear pass.
type clearSurface struct {
	mu *sync.Mutex

	instance *wgpu.Instance
	surface  *wgpu.Surface
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	surfaceFormat  wgpu.TextureFormat
	passDescriptor *wgpu.RenderPassDescriptor
}

// newClearSurface creates the WebGPU presentation chain for the window and
// configures it for the current framebuffer size.
func newClearSurface(w *navWindow) error {
	desc := platformSurfaceDescriptor(w)
	if desc == nil {
		return fmt.Errorf("window surface descriptor is not available")
	}

	s := &clearSurface{
		mu:       &sync.Mutex{},
		instance: wgpu.CreateInstance(nil),
	}
	s.surface = s.instance.CreateSurface(desc)

	adapter, err := s.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: s.surface,
	})
	if err != nil {
		return fmt.Errorf("failed to request adapter: %v", err)
	}
	s.adapter = adapter

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Walkthrough Device",
	})
	if err != nil {
		return fmt.Errorf("failed to request device: %v", err)
	}
	s.device = device
	s.queue = device.GetQueue()

	s.configure(w.width, w.height, w.clearColor)
	w.surface = s
	return nil
}

// configure (re)configures the surface for the given pixel dimensions and
// rebuilds the cached clear pass descriptor. Called at creation and on every
// framebuffer resize.
func (s *clearSurface) configure(width, height int, clear wgpu.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()

	capabilities := s.surface.GetCapabilities(s.adapter)
	s.surfaceFormat = capabilities.Formats[0]

	s.surface.Configure(s.adapter, s.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      s.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   capabilities.AlphaModes[0],
	})

	s.passDescriptor = &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       nil, // set per-frame to the swapchain view
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: clear,
			},
		},
	}
}

// renderFrame acquires the next swapchain image, runs the clear pass, and
// presents it.
func (s *clearSurface) renderFrame() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	surfaceTexture, err := s.surface.GetCurrentTexture()
	if err != nil {
		return err
	}

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		surfaceTexture.Release()
		return err
	}

	encoder, err := s.device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		surfaceTexture.Release()
		return err
	}

	s.passDescriptor.ColorAttachments[0].View = view
	pass := encoder.BeginRenderPass(s.passDescriptor)
	pass.End()

	commandBuffer, err := encoder.Finish(nil)
	if err != nil {
		encoder.Release()
		view.Release()
		surfaceTexture.Release()
		return err
	}

	s.queue.Submit(commandBuffer)
	commandBuffer.Release()
	encoder.Release()

	s.surface.Present()
	view.Release()
	surfaceTexture.Release()
	return nil
}
