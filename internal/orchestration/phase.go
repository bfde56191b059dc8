package orchestration

// Phase is the lifecycle state of a Controller.
type Phase int32

const (
	// PhaseIdle is the state before Run.
	PhaseIdle Phase = iota
	// PhaseRunning means workers are looping and the table is sampled per tick.
	PhaseRunning
	// PhaseStopping means the stop signal is raised and workers are being joined.
	PhaseStopping
	// PhaseDone means every worker has exited.
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseStopping:
		return "stopping"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}
