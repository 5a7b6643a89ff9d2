// Package sdlwin adapts an SDL2 window to the vkboot windowing
// interface. SDL and the window must be created and destroyed on the
// same OS thread; lock it with runtime.LockOSThread before New.
package sdlwin

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	vkng_sdl2 "github.com/vkngwrapper/integrations/sdl2/v3"
)

// Window is a Vulkan-capable SDL2 window.
type Window struct {
	win *sdl.Window
}

// New initializes SDL video and opens a Vulkan-capable window.
func New(title string, width, height int) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, errors.Wrap(err, "initialize sdl video")
	}

	win, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height),
		sdl.WINDOW_SHOWN|sdl.WINDOW_VULKAN)
	if err != nil {
		sdl.Quit()
		return nil, errors.Wrap(err, "create sdl window")
	}

	return &Window{win: win}, nil
}

// ProcAddr returns SDL's vkGetInstanceProcAddr entry point.
func (w *Window) ProcAddr() unsafe.Pointer {
	return sdl.VulkanGetVkGetInstanceProcAddr()
}

// InstanceExtensions lists the instance extensions SDL needs to create
// surfaces for this window.
func (w *Window) InstanceExtensions() []string {
	return w.win.VulkanGetInstanceExtensions()
}

// DrawableSize reports the window's framebuffer size in pixels.
func (w *Window) DrawableSize() (width, height int) {
	dw, dh := w.win.VulkanGetDrawableSize()
	return int(dw), int(dh)
}

// CreateSurface creates a presentation surface for this window.
func (w *Window) CreateSurface(instance core1_0.Instance, driver khr_surface.ExtensionDriver) (khr_surface.Surface, error) {
	return vkng_sdl2.CreateSurface(instance, driver, w.win)
}

// Destroy closes the window and shuts SDL down.
func (w *Window) Destroy() {
	if w.win != nil {
		_ = w.win.Destroy()
		w.win = nil
	}
	sdl.Quit()
}
