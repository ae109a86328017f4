package lcd

// State is the bring-up stage of a controller.
type State uint8

const (
	Uninitialized State = iota
	ResetPending
	ResetDone
	Initializing
	Initialized
	FillingBuffer
	BufferConfigured
	Starting
	Running
)

var stateNames = [...]string{
	Uninitialized:    "uninitialized",
	ResetPending:     "reset-pending",
	ResetDone:        "reset-done",
	Initializing:     "initializing",
	Initialized:      "initialized",
	FillingBuffer:    "filling-buffer",
	BufferConfigured: "buffer-configured",
	Starting:         "starting",
	Running:          "running",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}
