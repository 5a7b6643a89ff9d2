package vkboot

import (
	"unsafe"

	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
)

// Window is the windowing collaborator. The bootstrap treats it as an
// opaque source of a loader entry point, required instance extensions, a
// drawable surface and the surface's current pixel size; it never drives
// the event loop. sdlwin.Window is the SDL2 implementation.
type Window interface {
	// ProcAddr returns the vkGetInstanceProcAddr entry point supplied by
	// the windowing layer's Vulkan loader.
	ProcAddr() unsafe.Pointer

	// InstanceExtensions lists the instance extensions the windowing
	// layer needs to create surfaces.
	InstanceExtensions() []string

	// DrawableSize reports the current framebuffer size in pixels, which
	// can differ from the window size on high-DPI displays.
	DrawableSize() (width, height int)

	// CreateSurface creates a presentation surface for this window on
	// the given instance.
	CreateSurface(instance core1_0.Instance, driver khr_surface.ExtensionDriver) (khr_surface.Surface, error)
}
