package vkboot

import (
	"strconv"
	"strings"

	"github.com/gobuffalo/envy"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
)

// Version is an application version reported to the driver.
type Version struct {
	Major int
	Minor int
	Patch int
}

// vulkan packs the version into the driver's bit-field encoding.
func (v Version) vulkan() common.Version {
	return common.CreateVersion(uint32(v.Major), uint32(v.Minor), uint32(v.Patch))
}

// Config carries the immutable startup settings for one bootstrap run.
// Construct it once, before New, and do not modify it afterwards; the
// bootstrap keeps its own copy.
type Config struct {
	AppName    string
	AppVersion Version
	EngineName string

	// EnableValidation turns the validation layers and the debug
	// messenger on. Startup fails if validation is requested but the
	// layers are not installed.
	EnableValidation bool
	ValidationLayers []string

	// DeviceExtensions is the set of extensions a physical device must
	// offer to be selected. Swapchain support is required for
	// presentation and belongs in this list.
	DeviceExtensions []string
}

// DefaultConfig returns the settings the demo binary runs with:
// validation on via the Khronos layer, swapchain as the only required
// device extension.
func DefaultConfig() Config {
	return Config{
		AppName:          "vkboot",
		AppVersion:       Version{1, 0, 0},
		EngineName:       "No Engine",
		EnableValidation: true,
		ValidationLayers: []string{"VK_LAYER_KHRONOS_validation"},
		DeviceExtensions: []string{khr_swapchain.ExtensionName},
	}
}

// ConfigFromEnv builds a Config from VKBOOT_* environment variables,
// falling back to DefaultConfig for anything unset.
//
//	VKBOOT_APP_NAME           application name
//	VKBOOT_VALIDATION         bool, validation layers + debug messenger
//	VKBOOT_VALIDATION_LAYERS  comma-separated layer names
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	cfg.AppName = envy.Get("VKBOOT_APP_NAME", cfg.AppName)

	if v, err := strconv.ParseBool(envy.Get("VKBOOT_VALIDATION", "true")); err == nil {
		cfg.EnableValidation = v
	}

	if layers := envy.Get("VKBOOT_VALIDATION_LAYERS", ""); layers != "" {
		cfg.ValidationLayers = strings.Split(layers, ",")
	}

	return cfg
}
