package vkboot

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
)

// sharingPolicy decides how swapchain images are shared between the
// graphics and presentation queues. Distinct families require concurrent
// sharing across exactly those two families; exclusive mode across
// differing families is undefined behavior on the underlying API, so this
// is correctness, not tuning. A single family gets exclusive mode and its
// better performance ceiling.
func sharingPolicy(indices QueueFamilyIndices) (core1_0.SharingMode, []int) {
	if indices.Aliased() {
		return core1_0.SharingModeExclusive, nil
	}
	return core1_0.SharingModeConcurrent, []int{*indices.Graphics, *indices.Present}
}

func (b *Bootstrap) createPresentationChain() error {
	// Re-probe rather than reuse the selection-time snapshot: the surface
	// may have changed size between selection and chain creation.
	caps, err := b.prober.Probe(b.physicalDevice)
	if err != nil {
		return errors.Wrap(err, "re-query surface capabilities")
	}

	width, height := b.window.DrawableSize()
	b.surfaceConfig = negotiateSurfaceConfig(caps, width, height)

	sharingMode, familyIndices := sharingPolicy(b.queueIndices)

	swapchain, _, err := b.swapchainDriver.CreateSwapchain(nil, khr_swapchain.SwapchainCreateInfo{
		Surface: b.surface,

		MinImageCount:    b.surfaceConfig.ImageCount,
		ImageFormat:      b.surfaceConfig.Format.Format,
		ImageColorSpace:  b.surfaceConfig.Format.ColorSpace,
		ImageExtent:      b.surfaceConfig.Extent,
		ImageArrayLayers: 1,
		ImageUsage:       core1_0.ImageUsageColorAttachment,

		ImageSharingMode:   sharingMode,
		QueueFamilyIndices: familyIndices,

		PreTransform:   caps.Capabilities.CurrentTransform,
		CompositeAlpha: khr_surface.CompositeAlphaOpaque,
		PresentMode:    b.surfaceConfig.PresentMode,
		Clipped:        true,
	})
	if err != nil {
		return errors.Wrapf(ErrConfigurationRejected, "create swapchain: %v", err)
	}
	b.swapchain = swapchain
	b.releases.push("swapchain", func() {
		b.swapchainDriver.DestroySwapchain(b.swapchain, nil)
	})

	// The driver may allocate more images than requested; the re-queried
	// count is authoritative from here on.
	b.chainImages, _, err = b.swapchainDriver.GetSwapchainImages(b.swapchain)
	if err != nil {
		return errors.Wrapf(ErrResourceCreationFailed, "retrieve swapchain images: %v", err)
	}

	return nil
}

// createChainImageViews builds one application-owned 2D color view per
// chain image. The images themselves belong to the swapchain and are
// destroyed with it.
func (b *Bootstrap) createChainImageViews() error {
	// Registered up front so a failure partway through still releases the
	// views that did come up.
	b.releases.push("image views", func() {
		for _, view := range b.chainViews {
			b.deviceDriver.DestroyImageView(view, nil)
		}
		b.chainViews = nil
	})

	for _, image := range b.chainImages {
		// Zero component mapping is the identity swizzle.
		view, _, err := b.deviceDriver.CreateImageView(nil, core1_0.ImageViewCreateInfo{
			Image:    image,
			ViewType: core1_0.ImageViewType2D,
			Format:   b.surfaceConfig.Format.Format,
			SubresourceRange: core1_0.ImageSubresourceRange{
				AspectMask:     core1_0.ImageAspectColor,
				BaseMipLevel:   0,
				LevelCount:     1,
				BaseArrayLayer: 0,
				LayerCount:     1,
			},
		})
		if err != nil {
			return errors.Wrapf(ErrResourceCreationFailed, "create image view %d: %v", len(b.chainViews), err)
		}
		b.chainViews = append(b.chainViews, view)
	}

	return nil
}
