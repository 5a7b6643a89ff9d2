package vkboot

import (
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
)

// DeviceCapabilities is one read-only snapshot of what a physical device
// offers against a particular surface. Probing has no side effects on the
// device, so two probes with no intervening state change yield identical
// snapshots. The zero value is thoroughly unsuitable.
type DeviceCapabilities struct {
	QueueIndices QueueFamilyIndices

	// MissingExtensions is the set difference required-minus-available.
	// Empty means the extension requirement is satisfied.
	MissingExtensions []string

	Capabilities khr_surface.SurfaceCapabilities
	Formats      []khr_surface.SurfaceFormat
	PresentModes []khr_surface.PresentMode
}

// Suitable reports whether a device with these capabilities can drive the
// full presentation pipeline: both queue roles resolved, every required
// extension present, and at least one surface format and present mode.
func (c DeviceCapabilities) Suitable() bool {
	return c.QueueIndices.Complete() &&
		len(c.MissingExtensions) == 0 &&
		len(c.Formats) > 0 &&
		len(c.PresentModes) > 0
}

// capabilitySource probes one device/surface pair. Split out from the live
// driver so selection and negotiation policy can be exercised without a
// GPU.
type capabilitySource interface {
	Probe(device core1_0.PhysicalDevice) (DeviceCapabilities, error)
}

// surfaceProber is the capabilitySource backed by the live instance. All
// extension entry points it needs were resolved once at instance creation.
type surfaceProber struct {
	instance      core1_0.CoreInstanceDriver
	surfaceDriver khr_surface.ExtensionDriver
	surface       khr_surface.Surface
	required      []string
}

func (p *surfaceProber) Probe(device core1_0.PhysicalDevice) (DeviceCapabilities, error) {
	var caps DeviceCapabilities

	families := p.instance.GetPhysicalDeviceQueueFamilyProperties(device)
	indices, err := resolveQueueFamilies(families, func(family int) (bool, error) {
		supported, _, err := p.surfaceDriver.GetPhysicalDeviceSurfaceSupport(p.surface, device, family)
		return supported, err
	})
	if err != nil {
		return DeviceCapabilities{}, err
	}
	caps.QueueIndices = indices

	available, _, err := p.instance.EnumerateDeviceExtensionProperties(device)
	if err != nil {
		return DeviceCapabilities{}, err
	}
	for _, ext := range p.required {
		if _, ok := available[ext]; !ok {
			caps.MissingExtensions = append(caps.MissingExtensions, ext)
		}
	}

	// The surface queries only matter on devices that can reach the
	// swapchain path at all.
	if len(caps.MissingExtensions) > 0 {
		return caps, nil
	}

	surfaceCaps, _, err := p.surfaceDriver.GetPhysicalDeviceSurfaceCapabilities(p.surface, device)
	if err != nil {
		return DeviceCapabilities{}, err
	}
	caps.Capabilities = *surfaceCaps

	caps.Formats, _, err = p.surfaceDriver.GetPhysicalDeviceSurfaceFormats(p.surface, device)
	if err != nil {
		return DeviceCapabilities{}, err
	}

	caps.PresentModes, _, err = p.surfaceDriver.GetPhysicalDeviceSurfacePresentModes(p.surface, device)
	if err != nil {
		return DeviceCapabilities{}, err
	}

	return caps, nil
}
