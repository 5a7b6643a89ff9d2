package vkboot

import (
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
)

// matchWindowExtent is how the v3 binding renders the Vulkan "match the
// window" sentinel (0xFFFFFFFF) in the surface's current extent. Any other
// width means the surface dictates the size verbatim.
const matchWindowExtent = -1

// SurfaceConfig is the negotiated presentation configuration. It is fixed
// once chosen; a window resize invalidates it and everything built on top
// of it, there is no live mutation.
type SurfaceConfig struct {
	Format      khr_surface.SurfaceFormat
	PresentMode khr_surface.PresentMode
	Extent      core1_0.Extent2D
	ImageCount  int
}

// negotiateSurfaceConfig turns a device's raw capability set into a
// concrete configuration using fixed preference policies. It is total and
// deterministic over its inputs.
func negotiateSurfaceConfig(caps DeviceCapabilities, drawableWidth, drawableHeight int) SurfaceConfig {
	return SurfaceConfig{
		Format:      chooseSurfaceFormat(caps.Formats),
		PresentMode: choosePresentMode(caps.PresentModes),
		Extent:      chooseExtent(caps.Capabilities, drawableWidth, drawableHeight),
		ImageCount:  chooseImageCount(caps.Capabilities),
	}
}

// chooseSurfaceFormat prefers 8-bit BGRA with the sRGB nonlinear color
// space wherever it appears in the candidate list, and otherwise settles
// for the first candidate.
func chooseSurfaceFormat(available []khr_surface.SurfaceFormat) khr_surface.SurfaceFormat {
	for _, format := range available {
		if format.Format == core1_0.FormatB8G8R8A8SRGB && format.ColorSpace == khr_surface.ColorSpaceSRGBNonlinear {
			return format
		}
	}

	return available[0]
}

// choosePresentMode prefers mailbox (triple buffering, low latency without
// tearing) and falls back to FIFO, the only mode the API guarantees.
func choosePresentMode(available []khr_surface.PresentMode) khr_surface.PresentMode {
	for _, mode := range available {
		if mode == khr_surface.PresentModeMailbox {
			return mode
		}
	}

	return khr_surface.PresentModeFIFO
}

// chooseExtent uses the surface's current extent verbatim unless it
// carries the match-window marker, in which case the drawable size is
// clamped componentwise into the supported range.
func chooseExtent(caps khr_surface.SurfaceCapabilities, drawableWidth, drawableHeight int) core1_0.Extent2D {
	if caps.CurrentExtent.Width != matchWindowExtent {
		return caps.CurrentExtent
	}

	return core1_0.Extent2D{
		Width:  clamp(drawableWidth, caps.MinImageExtent.Width, caps.MaxImageExtent.Width),
		Height: clamp(drawableHeight, caps.MinImageExtent.Height, caps.MaxImageExtent.Height),
	}
}

// chooseImageCount asks for one image beyond the supported minimum so the
// CPU is less likely to stall waiting on the presentation engine, clamped
// to the maximum when the maximum is bounded (zero means unbounded).
func chooseImageCount(caps khr_surface.SurfaceCapabilities) int {
	count := caps.MinImageCount + 1
	if caps.MaxImageCount > 0 && count > caps.MaxImageCount {
		count = caps.MaxImageCount
	}
	return count
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
