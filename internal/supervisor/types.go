package supervisor

import (
	"os/exec"
	"time"
)

// State represents the lifecycle state of the managed process slot.
type State string

const (
	StateIdle     State = "idle"
	StateStarting State = "starting"
	StateRunning  State = "running"
	StateStopping State = "stopping"
)

// String returns the string representation of the state.
func (s State) String() string { return string(s) }

// managedProcess is the single live child instance. The slot holding it and
// the supervisor state are always updated together under the supervisor
// mutex. done is closed by the capture goroutine once the child has been
// reaped; exitCode is written before done closes and may only be read after.
type managedProcess struct {
	cmd       *exec.Cmd
	modelID   string
	name      string
	startedAt time.Time
	done      chan struct{}
	exitCode  int
}
