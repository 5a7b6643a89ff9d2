package vkboot

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
)

func (b *Bootstrap) createShaderModule(name string) (core1_0.ShaderModule, error) {
	code, err := b.shaders.Load(name)
	if err != nil {
		return core1_0.ShaderModule{}, errors.Wrapf(ErrShaderModuleInvalid, "load %s: %v", name, err)
	}

	words, err := shaderWords(code)
	if err != nil {
		return core1_0.ShaderModule{}, err
	}

	module, _, err := b.deviceDriver.CreateShaderModule(nil, core1_0.ShaderModuleCreateInfo{
		Code: words,
	})
	if err != nil {
		return core1_0.ShaderModule{}, errors.Wrapf(ErrShaderModuleInvalid, "create module %s: %v", name, err)
	}
	return module, nil
}

// createPipeline assembles the fixed-function state blocks and the two
// shader stages into the one immutable pipeline object. The shader
// modules are transient: they exist only to feed pipeline creation and
// are destroyed before this function returns, success or not.
func (b *Bootstrap) createPipeline() error {
	vertShader, err := b.createShaderModule(VertexShaderName)
	if err != nil {
		return err
	}
	defer b.deviceDriver.DestroyShaderModule(vertShader, nil)

	fragShader, err := b.createShaderModule(FragmentShaderName)
	if err != nil {
		return err
	}
	defer b.deviceDriver.DestroyShaderModule(fragShader, nil)

	vertStage := core1_0.PipelineShaderStageCreateInfo{
		Stage:  core1_0.StageVertex,
		Module: vertShader,
		Name:   "main",
	}

	fragStage := core1_0.PipelineShaderStageCreateInfo{
		Stage:  core1_0.StageFragment,
		Module: fragShader,
		Name:   "main",
	}

	// No vertex buffers anywhere in this pipeline: positions come out of
	// the vertex shader itself.
	vertexInput := &core1_0.PipelineVertexInputStateCreateInfo{}

	inputAssembly := &core1_0.PipelineInputAssemblyStateCreateInfo{
		Topology:               core1_0.PrimitiveTopologyTriangleList,
		PrimitiveRestartEnable: false,
	}

	// One viewport, one scissor, both supplied at draw time through the
	// dynamic state list rather than baked into the pipeline.
	viewport := &core1_0.PipelineViewportStateCreateInfo{
		Viewports: []core1_0.Viewport{{}},
		Scissors:  []core1_0.Rect2D{{}},
	}

	dynamicState := &core1_0.PipelineDynamicStateCreateInfo{
		DynamicStates: []core1_0.DynamicState{
			core1_0.DynamicStateViewport,
			core1_0.DynamicStateScissor,
		},
	}

	rasterization := &core1_0.PipelineRasterizationStateCreateInfo{
		DepthClampEnable:        false,
		RasterizerDiscardEnable: false,

		PolygonMode: core1_0.PolygonModeFill,
		CullMode:    core1_0.CullModeBack,
		FrontFace:   core1_0.FrontFaceClockwise,

		DepthBiasEnable: false,

		LineWidth: 1.0,
	}

	multisample := &core1_0.PipelineMultisampleStateCreateInfo{
		SampleShadingEnable:  false,
		RasterizationSamples: core1_0.Samples1,
		MinSampleShading:     1.0,
	}

	colorBlend := &core1_0.PipelineColorBlendStateCreateInfo{
		LogicOpEnabled: false,
		LogicOp:        core1_0.LogicOpCopy,

		BlendConstants: [4]float32{0, 0, 0, 0},
		Attachments: []core1_0.PipelineColorBlendAttachmentState{
			{
				BlendEnabled:   false,
				ColorWriteMask: core1_0.ColorComponentRed | core1_0.ColorComponentGreen | core1_0.ColorComponentBlue | core1_0.ColorComponentAlpha,
			},
		},
	}

	// No descriptor sets and no push constants in this system.
	pipelineLayout, _, err := b.deviceDriver.CreatePipelineLayout(nil, core1_0.PipelineLayoutCreateInfo{})
	if err != nil {
		return errors.Wrapf(ErrConfigurationRejected, "create pipeline layout: %v", err)
	}
	b.pipelineLayout = pipelineLayout
	b.releases.push("pipeline layout", func() {
		b.deviceDriver.DestroyPipelineLayout(b.pipelineLayout, nil)
	})

	pipelines, _, err := b.deviceDriver.CreateGraphicsPipelines(nil, nil,
		core1_0.GraphicsPipelineCreateInfo{
			Stages: []core1_0.PipelineShaderStageCreateInfo{
				vertStage,
				fragStage,
			},
			VertexInputState:   vertexInput,
			InputAssemblyState: inputAssembly,
			ViewportState:      viewport,
			DynamicState:       dynamicState,
			RasterizationState: rasterization,
			MultisampleState:   multisample,
			ColorBlendState:    colorBlend,
			Layout:             b.pipelineLayout,
			RenderPass:         b.renderPass,
			Subpass:            0,
			BasePipelineIndex:  -1,
		},
	)
	if err != nil {
		return errors.Wrapf(ErrConfigurationRejected, "create graphics pipeline: %v", err)
	}
	b.pipeline = pipelines[0]
	b.releases.push("graphics pipeline", func() {
		b.deviceDriver.DestroyPipeline(b.pipeline, nil)
	})

	return nil
}
