package vkboot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
)

func TestChooseSurfaceFormatPrefersBGRA8SRGB(t *testing.T) {
	preferred := khr_surface.SurfaceFormat{
		Format:     core1_0.FormatB8G8R8A8SRGB,
		ColorSpace: khr_surface.ColorSpaceSRGBNonlinear,
	}
	other := khr_surface.SurfaceFormat{
		Format:     core1_0.FormatR8G8B8A8UnsignedNormalized,
		ColorSpace: khr_surface.ColorSpaceSRGBNonlinear,
	}

	// Position in the candidate list must not matter.
	assert.Equal(t, preferred, chooseSurfaceFormat([]khr_surface.SurfaceFormat{preferred, other}))
	assert.Equal(t, preferred, chooseSurfaceFormat([]khr_surface.SurfaceFormat{other, preferred}))
}

func TestChooseSurfaceFormatFallsBackToFirst(t *testing.T) {
	first := khr_surface.SurfaceFormat{
		Format:     core1_0.FormatR8G8B8A8UnsignedNormalized,
		ColorSpace: khr_surface.ColorSpaceSRGBNonlinear,
	}
	second := khr_surface.SurfaceFormat{
		Format:     core1_0.FormatB8G8R8A8UnsignedNormalized,
		ColorSpace: khr_surface.ColorSpaceSRGBNonlinear,
	}

	assert.Equal(t, first, chooseSurfaceFormat([]khr_surface.SurfaceFormat{first, second}))
}

func TestChoosePresentModePrefersMailbox(t *testing.T) {
	available := []khr_surface.PresentMode{
		khr_surface.PresentModeFIFO,
		khr_surface.PresentModeImmediate,
		khr_surface.PresentModeMailbox,
	}

	assert.Equal(t, khr_surface.PresentModeMailbox, choosePresentMode(available))
}

func TestChoosePresentModeFallsBackToFIFO(t *testing.T) {
	available := []khr_surface.PresentMode{
		khr_surface.PresentModeImmediate,
		khr_surface.PresentModeFIFORelaxed,
	}

	assert.Equal(t, khr_surface.PresentModeFIFO, choosePresentMode(available))
}

func TestChooseExtentUsesCurrentExtentVerbatim(t *testing.T) {
	caps := khr_surface.SurfaceCapabilities{
		CurrentExtent:  core1_0.Extent2D{Width: 640, Height: 480},
		MinImageExtent: core1_0.Extent2D{Width: 1, Height: 1},
		MaxImageExtent: core1_0.Extent2D{Width: 4096, Height: 4096},
	}

	// The drawable size must be ignored when the surface dictates the
	// extent.
	extent := chooseExtent(caps, 1920, 1080)
	assert.Equal(t, core1_0.Extent2D{Width: 640, Height: 480}, extent)
}

func TestChooseExtentClampsDrawableSize(t *testing.T) {
	caps := khr_surface.SurfaceCapabilities{
		CurrentExtent:  core1_0.Extent2D{Width: matchWindowExtent, Height: matchWindowExtent},
		MinImageExtent: core1_0.Extent2D{Width: 1, Height: 1},
		MaxImageExtent: core1_0.Extent2D{Width: 1024, Height: 1024},
	}

	extent := chooseExtent(caps, 1920, 1080)
	assert.Equal(t, core1_0.Extent2D{Width: 1024, Height: 1024}, extent)

	extent = chooseExtent(caps, 0, 0)
	assert.Equal(t, core1_0.Extent2D{Width: 1, Height: 1}, extent)

	extent = chooseExtent(caps, 800, 600)
	assert.Equal(t, core1_0.Extent2D{Width: 800, Height: 600}, extent)
}

func TestChooseImageCount(t *testing.T) {
	// One above the minimum when the maximum is unbounded.
	assert.Equal(t, 3, chooseImageCount(khr_surface.SurfaceCapabilities{
		MinImageCount: 2,
		MaxImageCount: 0,
	}))

	// Clamped when min+1 exceeds a bounded maximum.
	assert.Equal(t, 3, chooseImageCount(khr_surface.SurfaceCapabilities{
		MinImageCount: 3,
		MaxImageCount: 3,
	}))

	assert.Equal(t, 4, chooseImageCount(khr_surface.SurfaceCapabilities{
		MinImageCount: 3,
		MaxImageCount: 8,
	}))
}

func TestNegotiateSurfaceConfigIsDeterministic(t *testing.T) {
	caps := DeviceCapabilities{
		Formats: []khr_surface.SurfaceFormat{
			{Format: core1_0.FormatR8G8B8A8UnsignedNormalized, ColorSpace: khr_surface.ColorSpaceSRGBNonlinear},
			{Format: core1_0.FormatB8G8R8A8SRGB, ColorSpace: khr_surface.ColorSpaceSRGBNonlinear},
		},
		PresentModes: []khr_surface.PresentMode{
			khr_surface.PresentModeFIFO,
			khr_surface.PresentModeMailbox,
		},
		Capabilities: khr_surface.SurfaceCapabilities{
			MinImageCount:  2,
			MaxImageCount:  0,
			CurrentExtent:  core1_0.Extent2D{Width: matchWindowExtent, Height: matchWindowExtent},
			MinImageExtent: core1_0.Extent2D{Width: 1, Height: 1},
			MaxImageExtent: core1_0.Extent2D{Width: 4096, Height: 4096},
		},
	}

	first := negotiateSurfaceConfig(caps, 800, 600)
	second := negotiateSurfaceConfig(caps, 800, 600)
	assert.Equal(t, first, second)

	assert.Equal(t, core1_0.FormatB8G8R8A8SRGB, first.Format.Format)
	assert.Equal(t, khr_surface.PresentModeMailbox, first.PresentMode)
	assert.Equal(t, core1_0.Extent2D{Width: 800, Height: 600}, first.Extent)
	assert.Equal(t, 3, first.ImageCount)
}
