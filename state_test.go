package vkboot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateString(t *testing.T) {
	assert.Equal(t, "Uninitialized", StateUninitialized.String())
	assert.Equal(t, "Running", StateRunning.String())
	assert.Equal(t, "Terminated", StateTerminated.String())
	assert.Equal(t, "Unknown", State(-1).String())
	assert.Equal(t, "Unknown", State(100).String())
}

func TestStateOrdering(t *testing.T) {
	// The construction sequence is strictly increasing, ending in
	// Running with Terminated beyond it.
	sequence := []State{
		StateUninitialized,
		StateInstanceReady,
		StateSurfaceReady,
		StateDeviceReady,
		StateChainReady,
		StateViewsReady,
		StateRenderTargetReady,
		StatePipelineReady,
		StateFramebuffersReady,
		StateExecutionReady,
		StateRunning,
		StateTerminated,
	}

	for i := 1; i < len(sequence); i++ {
		assert.Less(t, sequence[i-1], sequence[i], "%s should precede %s", sequence[i-1], sequence[i])
	}
}
