// Package vkboot brings a Vulkan presentation stack from nothing to
// ready-to-record in one linear sequence: instance, surface, device,
// swapchain, render pass, graphics pipeline, framebuffers and command
// resources, with teardown in exact reverse order of construction.
//
// The sequence is all-or-nothing. Any failure unwinds the resources
// already constructed and leaves the Bootstrap terminated; there is no
// retry and no partial operation.
package vkboot

import (
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vkngwrapper/core/v3"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v3/khr_portability_enumeration"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
)

// Bootstrap owns every Vulkan object it creates, in creation order, and
// releases them in reverse order through Close. It is not safe for
// concurrent use; drive it from the thread that owns the window.
type Bootstrap struct {
	cfg     Config
	window  Window
	shaders ShaderSource
	log     *logrus.Entry

	state    State
	releases teardownStack

	globalDriver   core1_0.GlobalDriver
	instanceDriver core1_0.CoreInstanceDriver
	deviceDriver   core1_0.CoreDeviceDriver

	debugDriver    ext_debug_utils.ExtensionDriver
	debugMessenger ext_debug_utils.DebugUtilsMessenger

	surfaceDriver khr_surface.ExtensionDriver
	surface       khr_surface.Surface
	prober        *surfaceProber

	physicalDevice core1_0.PhysicalDevice
	deviceCaps     DeviceCapabilities
	queueIndices   QueueFamilyIndices
	graphicsQueue  core1_0.Queue
	presentQueue   core1_0.Queue

	swapchainDriver khr_swapchain.ExtensionDriver
	surfaceConfig   SurfaceConfig
	swapchain       khr_swapchain.Swapchain
	chainImages     []core1_0.Image
	chainViews      []core1_0.ImageView

	renderPass     core1_0.RenderPass
	pipelineLayout core1_0.PipelineLayout
	pipeline       core1_0.Pipeline
	framebuffers   []core1_0.Framebuffer

	commandPool   core1_0.CommandPool
	commandBuffer core1_0.CommandBuffer
}

// Option adjusts a Bootstrap before Up runs.
type Option func(*Bootstrap)

// WithLogger replaces the default logrus logger.
func WithLogger(log *logrus.Logger) Option {
	return func(b *Bootstrap) {
		b.log = log.WithField("run", b.log.Data["run"])
	}
}

// New prepares a Bootstrap in the uninitialized state. Nothing touches
// the Vulkan loader until Up.
func New(cfg Config, window Window, shaders ShaderSource, opts ...Option) *Bootstrap {
	b := &Bootstrap{
		cfg:     cfg,
		window:  window,
		shaders: shaders,
		log:     logrus.StandardLogger().WithField("run", uuid.NewString()),
		state:   StateUninitialized,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// State reports the current lifecycle state.
func (b *Bootstrap) State() State {
	return b.state
}

// SurfaceConfig returns the negotiated surface configuration. Valid once
// the presentation chain is up.
func (b *Bootstrap) SurfaceConfig() SurfaceConfig {
	return b.surfaceConfig
}

// QueueIndices returns the resolved queue family assignment. Valid once
// a device has been selected.
func (b *Bootstrap) QueueIndices() QueueFamilyIndices {
	return b.queueIndices
}

// GraphicsQueue returns the graphics-capable queue. Valid once the
// logical device is up.
func (b *Bootstrap) GraphicsQueue() core1_0.Queue {
	return b.graphicsQueue
}

// PresentQueue returns the presentation-capable queue, which may be the
// same queue as GraphicsQueue.
func (b *Bootstrap) PresentQueue() core1_0.Queue {
	return b.presentQueue
}

// CommandBuffer returns the primary command buffer allocated for
// recording. Valid once Up has returned successfully.
func (b *Bootstrap) CommandBuffer() core1_0.CommandBuffer {
	return b.commandBuffer
}

// RenderPass returns the presentation render pass.
func (b *Bootstrap) RenderPass() core1_0.RenderPass {
	return b.renderPass
}

// Framebuffers returns one framebuffer per presentation image, in chain
// order.
func (b *Bootstrap) Framebuffers() []core1_0.Framebuffer {
	return b.framebuffers
}

type bootStage struct {
	next State
	run  func() error
}

// stages is the construction sequence in order, each step tagged with
// the state it advances to.
func (b *Bootstrap) stages() []bootStage {
	return []bootStage{
		{StateInstanceReady, b.createInstance},
		{StateInstanceReady, b.setupDebugMessenger},
		{StateSurfaceReady, b.createSurface},
		{StateDeviceReady, b.pickPhysicalDevice},
		{StateDeviceReady, b.createLogicalDevice},
		{StateChainReady, b.createPresentationChain},
		{StateViewsReady, b.createChainImageViews},
		{StateRenderTargetReady, b.createRenderTarget},
		{StatePipelineReady, b.createPipeline},
		{StateFramebuffersReady, b.createFramebuffers},
		{StateExecutionReady, b.createExecutionResources},
	}
}

// Up runs the full construction sequence. On success the Bootstrap is
// Running and ready for command recording. On failure everything already
// constructed is released, the Bootstrap lands in Terminated, and the
// error names the stage that refused.
func (b *Bootstrap) Up() error {
	if b.state != StateUninitialized {
		return errors.Newf("bootstrap already started, state %s", b.state)
	}
	return b.runStages(b.stages())
}

func (b *Bootstrap) runStages(stages []bootStage) error {
	for _, stage := range stages {
		if err := stage.run(); err != nil {
			return b.fail(err)
		}
		if b.state != stage.next {
			b.log.WithField("state", stage.next).Debug("bootstrap state advanced")
			b.state = stage.next
		}
	}

	b.state = StateRunning
	b.log.WithField("resources", b.releases.depth()).Info("bootstrap running")
	return nil
}

// fail unwinds whatever was built and terminates the lifecycle, then
// hands the stage error back unchanged.
func (b *Bootstrap) fail(err error) error {
	released := b.releases.unwind()
	b.state = StateTerminated
	b.log.WithError(err).WithField("released", released).Error("bootstrap failed")
	return err
}

// Close releases every constructed resource in reverse creation order
// and moves the lifecycle to Terminated. Closing an already terminated
// bootstrap is a no-op.
func (b *Bootstrap) Close() {
	if b.state == StateTerminated {
		return
	}
	released := b.releases.unwind()
	b.state = StateTerminated
	b.log.WithField("released", released).Info("bootstrap closed")
}

func (b *Bootstrap) createInstance() error {
	var err error
	b.globalDriver, err = core.CreateDriverFromProcAddr(b.window.ProcAddr())
	if err != nil {
		return errors.Wrap(err, "load vulkan driver")
	}

	instanceOptions := core1_0.InstanceCreateInfo{
		ApplicationName:    b.cfg.AppName,
		ApplicationVersion: b.cfg.AppVersion.vulkan(),
		EngineName:         b.cfg.EngineName,
		EngineVersion:      common.CreateVersion(1, 0, 0),
		APIVersion:         common.Vulkan1_2,
	}

	available, _, err := b.globalDriver.AvailableExtensions()
	if err != nil {
		return errors.Wrap(err, "enumerate instance extensions")
	}

	for _, ext := range b.window.InstanceExtensions() {
		if _, ok := available[ext]; !ok {
			return errors.Wrapf(ErrConfigurationRejected, "window system requires missing instance extension %s", ext)
		}
		instanceOptions.EnabledExtensionNames = append(instanceOptions.EnabledExtensionNames, ext)
	}

	if b.cfg.EnableValidation {
		instanceOptions.EnabledExtensionNames = append(instanceOptions.EnabledExtensionNames, ext_debug_utils.ExtensionName)
	}

	// Portability enumeration makes MoltenVK devices visible on mac and
	// mobile loaders.
	if _, ok := available[khr_portability_enumeration.ExtensionName]; ok {
		instanceOptions.EnabledExtensionNames = append(instanceOptions.EnabledExtensionNames, khr_portability_enumeration.ExtensionName)
		instanceOptions.Flags |= khr_portability_enumeration.InstanceCreateEnumeratePortability
	}

	if b.cfg.EnableValidation {
		layers, _, err := b.globalDriver.AvailableLayers()
		if err != nil {
			return errors.Wrap(err, "enumerate instance layers")
		}
		for _, layer := range b.cfg.ValidationLayers {
			if _, ok := layers[layer]; !ok {
				return errors.Wrapf(ErrConfigurationRejected, "validation layer %s not installed", layer)
			}
			instanceOptions.EnabledLayerNames = append(instanceOptions.EnabledLayerNames, layer)
		}

		// Chaining the messenger options here covers instance creation
		// and destruction, which the standalone messenger cannot see.
		instanceOptions.Next = b.debugMessengerOptions()
	}

	b.instanceDriver, _, err = b.globalDriver.CreateInstance(nil, instanceOptions)
	if err != nil {
		return errors.Wrapf(ErrConfigurationRejected, "create instance: %v", err)
	}
	b.releases.push("instance", func() {
		b.instanceDriver.DestroyInstance(nil)
	})

	b.surfaceDriver = khr_surface.CreateExtensionDriverFromCoreDriver(b.instanceDriver)
	return nil
}

func (b *Bootstrap) debugMessengerOptions() ext_debug_utils.DebugUtilsMessengerCreateInfo {
	return ext_debug_utils.DebugUtilsMessengerCreateInfo{
		MessageSeverity: ext_debug_utils.SeverityError | ext_debug_utils.SeverityWarning,
		MessageType:     ext_debug_utils.TypeGeneral | ext_debug_utils.TypeValidation | ext_debug_utils.TypePerformance,
		UserCallback:    b.forwardDebugMessage,
	}
}

func (b *Bootstrap) setupDebugMessenger() error {
	if !b.cfg.EnableValidation {
		return nil
	}

	var err error
	b.debugDriver = ext_debug_utils.CreateExtensionDriverFromCoreDriver(b.instanceDriver)
	b.debugMessenger, _, err = b.debugDriver.CreateDebugUtilsMessenger(nil, b.debugMessengerOptions())
	if err != nil {
		return errors.Wrapf(ErrConfigurationRejected, "create debug messenger: %v", err)
	}
	b.releases.push("debug messenger", func() {
		b.debugDriver.DestroyDebugUtilsMessenger(b.debugMessenger, nil)
	})
	return nil
}

// forwardDebugMessage routes validation output into the structured log.
// It always reports "do not abort"; validation findings are diagnostics,
// not control flow.
func (b *Bootstrap) forwardDebugMessage(msgType ext_debug_utils.DebugUtilsMessageTypeFlags, severity ext_debug_utils.DebugUtilsMessageSeverityFlags, data *ext_debug_utils.DebugUtilsMessengerCallbackData) bool {
	entry := b.log.WithField("type", msgType.String())
	switch {
	case severity&ext_debug_utils.SeverityError != 0:
		entry.Error(data.Message)
	case severity&ext_debug_utils.SeverityWarning != 0:
		entry.Warn(data.Message)
	default:
		entry.Debug(data.Message)
	}
	return false
}

func (b *Bootstrap) createSurface() error {
	surface, err := b.window.CreateSurface(b.instanceDriver.Instance(), b.surfaceDriver)
	if err != nil {
		return errors.Wrapf(ErrConfigurationRejected, "create window surface: %v", err)
	}
	b.surface = surface
	b.releases.push("surface", func() {
		b.surfaceDriver.DestroySurface(b.surface, nil)
	})

	b.prober = &surfaceProber{
		instance:      b.instanceDriver,
		surfaceDriver: b.surfaceDriver,
		surface:       b.surface,
		required:      b.cfg.DeviceExtensions,
	}
	return nil
}
