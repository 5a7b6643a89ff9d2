package vkboot

import (
	"testing"

	"github.com/gobuffalo/envy"
	"github.com/stretchr/testify/assert"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
)

func TestVersionPacking(t *testing.T) {
	assert.Equal(t, common.CreateVersion(1, 0, 0), Version{1, 0, 0}.vulkan())
	assert.Equal(t, common.CreateVersion(2, 5, 17), Version{Major: 2, Minor: 5, Patch: 17}.vulkan())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "vkboot", cfg.AppName)
	assert.True(t, cfg.EnableValidation)
	assert.Equal(t, []string{"VK_LAYER_KHRONOS_validation"}, cfg.ValidationLayers)
	assert.Equal(t, []string{khr_swapchain.ExtensionName}, cfg.DeviceExtensions)
}

func TestConfigFromEnv(t *testing.T) {
	envy.Temp(func() {
		envy.Set("VKBOOT_APP_NAME", "demo")
		envy.Set("VKBOOT_VALIDATION", "false")
		envy.Set("VKBOOT_VALIDATION_LAYERS", "VK_LAYER_A,VK_LAYER_B")

		cfg := ConfigFromEnv()

		assert.Equal(t, "demo", cfg.AppName)
		assert.False(t, cfg.EnableValidation)
		assert.Equal(t, []string{"VK_LAYER_A", "VK_LAYER_B"}, cfg.ValidationLayers)
	})
}

func TestConfigFromEnvDefaults(t *testing.T) {
	envy.Temp(func() {
		cfg := ConfigFromEnv()

		defaults := DefaultConfig()
		assert.Equal(t, defaults.EnableValidation, cfg.EnableValidation)
		assert.Equal(t, defaults.ValidationLayers, cfg.ValidationLayers)
		assert.Equal(t, defaults.DeviceExtensions, cfg.DeviceExtensions)
	})
}
