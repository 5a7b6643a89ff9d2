package vkboot

// State tracks how far the bootstrap sequence has progressed. Transitions
// are strictly linear and forward-only during startup; teardown jumps
// straight to StateTerminated after unwinding. There is no edge out of
// StateRunning back to an earlier state: a surface change means a full
// teardown and a fresh bootstrap.
type State int

const (
	StateUninitialized State = iota
	StateInstanceReady
	StateSurfaceReady
	StateDeviceReady
	StateChainReady
	StateViewsReady
	StateRenderTargetReady
	StatePipelineReady
	StateFramebuffersReady
	StateExecutionReady
	StateRunning
	StateTerminated
)

var stateNames = [...]string{
	StateUninitialized:     "Uninitialized",
	StateInstanceReady:     "InstanceReady",
	StateSurfaceReady:      "SurfaceReady",
	StateDeviceReady:       "DeviceReady",
	StateChainReady:        "ChainReady",
	StateViewsReady:        "ViewsReady",
	StateRenderTargetReady: "RenderTargetReady",
	StatePipelineReady:     "PipelineReady",
	StateFramebuffersReady: "FramebuffersReady",
	StateExecutionReady:    "ExecutionReady",
	StateRunning:           "Running",
	StateTerminated:        "Terminated",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}
