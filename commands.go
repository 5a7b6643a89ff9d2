package vkboot

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
)

// createFramebuffers binds each presentation image view to the render
// pass as its single color attachment. The release entry is registered
// before the loop so that a mid-loop failure still frees the
// framebuffers created up to that point.
func (b *Bootstrap) createFramebuffers() error {
	b.releases.push("framebuffers", func() {
		for _, framebuffer := range b.framebuffers {
			b.deviceDriver.DestroyFramebuffer(framebuffer, nil)
		}
		b.framebuffers = nil
	})

	for viewIndex, view := range b.chainViews {
		framebuffer, _, err := b.deviceDriver.CreateFramebuffer(nil, core1_0.FramebufferCreateInfo{
			RenderPass: b.renderPass,

			Attachments: []core1_0.ImageView{view},

			Width:  b.surfaceConfig.Extent.Width,
			Height: b.surfaceConfig.Extent.Height,
			Layers: 1,
		})
		if err != nil {
			return errors.Wrapf(ErrResourceCreationFailed, "create framebuffer %d: %v", viewIndex, err)
		}
		b.framebuffers = append(b.framebuffers, framebuffer)
	}

	return nil
}

func (b *Bootstrap) createExecutionResources() error {
	commandPool, _, err := b.deviceDriver.CreateCommandPool(nil, core1_0.CommandPoolCreateInfo{
		QueueFamilyIndex: *b.queueIndices.Graphics,
		Flags:            core1_0.CommandPoolCreateResetBuffer,
	})
	if err != nil {
		return errors.Wrapf(ErrResourceCreationFailed, "create command pool: %v", err)
	}
	b.commandPool = commandPool
	b.releases.push("command pool", func() {
		b.deviceDriver.DestroyCommandPool(b.commandPool, nil)
	})

	commandBuffers, _, err := b.deviceDriver.AllocateCommandBuffers(core1_0.CommandBufferAllocateInfo{
		CommandPool:        b.commandPool,
		Level:              core1_0.CommandBufferLevelPrimary,
		CommandBufferCount: 1,
	})
	if err != nil {
		return errors.Wrapf(ErrResourceCreationFailed, "allocate command buffer: %v", err)
	}
	b.commandBuffer = commandBuffers[0]
	b.releases.push("command buffer", func() {
		b.deviceDriver.FreeCommandBuffers(b.commandBuffer)
	})

	return nil
}
