package supervisor

import (
	"errors"
	"fmt"
	"os"
	"syscall"
	"time"

	"llamactld/pkg/types"
)

// Stop terminates the managed process. Idempotent: with nothing managed it
// reports a successful no-op and appends no log line.
func (s *Supervisor) Stop() types.StopResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopLocked()
}

// stopLocked runs the two-stage termination protocol: SIGTERM, a bounded
// wait for exit, then SIGKILL with an unbounded wait (the kernel must honor
// the kill eventually). Callers hold s.mu. Slot cleanup is deferred so it
// runs unconditionally; whatever the termination path did, the supervisor
// never keeps a reference to a stopped process.
func (s *Supervisor) stopLocked() types.StopResult {
	p := s.proc
	if p == nil {
		return types.StopResult{Success: true, Message: "No model running"}
	}

	s.state = StateStopping
	s.logs.Append(fmt.Sprintf("Stopping %s...", p.name))
	defer func() {
		s.proc = nil
		s.state = StateIdle
		childUp.Set(0)
	}()

	if err := p.cmd.Process.Signal(syscall.SIGTERM); err != nil && !errors.Is(err, os.ErrProcessDone) {
		s.log.Error().Err(err).Str("model", p.modelID).Msg("terminate signal failed")
		return types.StopResult{Success: false, Stopped: p.modelID, Name: p.name, Error: err.Error()}
	}

	select {
	case <-p.done:
	case <-time.After(gracefulStopTimeout):
		s.log.Warn().Str("model", p.modelID).Int("pid", p.cmd.Process.Pid).
			Msg("graceful stop timed out, escalating to kill")
		_ = p.cmd.Process.Kill()
		<-p.done
	}

	s.logs.Append(fmt.Sprintf("Stopped %s", p.name))
	childStopsTotal.Inc()
	s.log.Info().Str("model", p.modelID).Msg("model stopped")
	return types.StopResult{Success: true, Stopped: p.modelID, Name: p.name}
}
