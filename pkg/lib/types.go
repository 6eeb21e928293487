package lib

// Health is the combined session verdict over channels and process.
// It's intentionally minimal; more states can be added later.
type Health int

const (
	HealthUnknown Health = iota
	Healthy
	Unhealthy
)

func (h Health) String() string {
	switch h {
	case Healthy:
		return "healthy"
	case Unhealthy:
		return "unhealthy"
	default:
		return "unknown"
	}
}

// StatusReport captures a point-in-time view of one session: whether each
// channel is present on the filesystem, whether the managed process is
// alive, and the combined verdict. Process liveness is a snapshot, not a
// guarantee; the child may exit the instant after the check.
type StatusReport struct {
	InputChannel  bool
	OutputChannel bool
	Process       bool
	// PID is the process that was checked, 0 when no process was known.
	PID int
	// Command is the recorded launch command, empty when the PID was
	// supplied explicitly or no record exists.
	Command string
	Overall Health
}
