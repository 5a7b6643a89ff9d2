package vkboot

import (
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_portability_subset"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
)

// selectDevice picks the first enumerated device whose probe comes back
// suitable. There is no scoring among multiple suitable devices; the
// policy is first-match in enumeration order, deliberately simple and
// order-dependent. A device whose probe errors is skipped, not fatal.
func selectDevice(source capabilitySource, devices []core1_0.PhysicalDevice, log *logrus.Entry) (core1_0.PhysicalDevice, DeviceCapabilities, error) {
	if len(devices) == 0 {
		return core1_0.PhysicalDevice{}, DeviceCapabilities{}, errors.Wrap(ErrNoCompatibleHardware, "physical device enumeration came back empty")
	}

	for idx, device := range devices {
		caps, err := source.Probe(device)
		if err != nil {
			log.WithError(err).WithField("device", idx).Debug("device probe failed, skipping")
			continue
		}

		if caps.Suitable() {
			log.WithField("device", idx).Debug("selected physical device")
			return device, caps, nil
		}
	}

	return core1_0.PhysicalDevice{}, DeviceCapabilities{}, errors.Wrapf(ErrDeviceUnsuitable, "scanned %d device(s)", len(devices))
}

func (b *Bootstrap) pickPhysicalDevice() error {
	devices, _, err := b.instanceDriver.EnumeratePhysicalDevices()
	if err != nil {
		return errors.Wrap(err, "enumerate physical devices")
	}

	b.physicalDevice, b.deviceCaps, err = selectDevice(b.prober, devices, b.log)
	if err != nil {
		return err
	}

	b.queueIndices = b.deviceCaps.QueueIndices
	return nil
}

func (b *Bootstrap) createLogicalDevice() error {
	uniqueFamilies := []int{*b.queueIndices.Graphics}
	if !b.queueIndices.Aliased() {
		uniqueFamilies = append(uniqueFamilies, *b.queueIndices.Present)
	}

	var queueInfos []core1_0.DeviceQueueCreateInfo
	for _, family := range uniqueFamilies {
		queueInfos = append(queueInfos, core1_0.DeviceQueueCreateInfo{
			QueueFamilyIndex: family,
			QueuePriorities:  []float32{1.0},
		})
	}

	extensionNames := append([]string{}, b.cfg.DeviceExtensions...)

	// Portability devices (MoltenVK and friends) must have the subset
	// extension enabled whenever it is offered.
	available, _, err := b.instanceDriver.EnumerateDeviceExtensionProperties(b.physicalDevice)
	if err != nil {
		return errors.Wrap(err, "enumerate device extensions")
	}
	if _, ok := available[khr_portability_subset.ExtensionName]; ok {
		extensionNames = append(extensionNames, khr_portability_subset.ExtensionName)
	}

	b.deviceDriver, _, err = b.instanceDriver.CreateDevice(b.physicalDevice, nil, core1_0.DeviceCreateInfo{
		QueueCreateInfos:      queueInfos,
		EnabledFeatures:       &core1_0.PhysicalDeviceFeatures{},
		EnabledExtensionNames: extensionNames,
	})
	if err != nil {
		return errors.Wrapf(ErrConfigurationRejected, "create logical device: %v", err)
	}
	b.releases.push("logical device", func() {
		b.deviceDriver.DestroyDevice(nil)
	})

	b.swapchainDriver = khr_swapchain.CreateExtensionDriverFromCoreDriver(b.deviceDriver)

	b.graphicsQueue = b.deviceDriver.GetQueue(*b.queueIndices.Graphics, 0)
	b.presentQueue = b.deviceDriver.GetQueue(*b.queueIndices.Present, 0)
	return nil
}
