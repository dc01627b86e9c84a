package provision

// State is the lifecycle position of an environment handle.
type State int

const (
	// Provisioned means assets exist but no node processes run yet.
	Provisioned State = iota
	// Running means the network's nodes have been launched.
	Running
	// TornDown means all environment resources have been released.
	TornDown
)

func (s State) String() string {
	switch s {
	case Provisioned:
		return "provisioned"
	case Running:
		return "running"
	case TornDown:
		return "torn-down"
	default:
		return "unknown"
	}
}

// Handle is an opaque token for one provisioned, possibly running network
// instance. Handles are created by Provision, moved to Running by Start and
// invalidated by Teardown; they are never reused.
type Handle struct {
	state State
}

// State returns the handle's current lifecycle position.
func (h *Handle) State() State {
	return h.state
}
