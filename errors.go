package vkboot

import "github.com/cockroachdb/errors"

// Bootstrap failures fall into one of these categories. All of them are
// terminal: the bootstrap never retries and never degrades, it unwinds
// whatever was already constructed and reports the failure to the caller.
// Test with errors.Is.
var (
	// ErrNoCompatibleHardware means physical-device enumeration returned
	// nothing at all.
	ErrNoCompatibleHardware = errors.New("no compatible hardware")

	// ErrDeviceUnsuitable means devices were enumerated but none of them
	// offered complete queue coverage, the required extensions, and a
	// non-empty surface format/present mode set.
	ErrDeviceUnsuitable = errors.New("no suitable device")

	// ErrConfigurationRejected means the driver refused an instance,
	// device, swapchain or pipeline creation call.
	ErrConfigurationRejected = errors.New("configuration rejected by driver")

	// ErrResourceCreationFailed means an image view, framebuffer, command
	// pool or command buffer allocation was refused.
	ErrResourceCreationFailed = errors.New("resource creation failed")

	// ErrShaderModuleInvalid means shader bytecode was rejected before or
	// during module creation.
	ErrShaderModuleInvalid = errors.New("shader module invalid")
)
