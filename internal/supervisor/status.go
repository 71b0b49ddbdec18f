package supervisor

import (
	"fmt"
	"time"

	"llamactld/pkg/types"
)

// Status composes a snapshot of liveness, health, uptime, and counters.
// Every query increments the process-wide request counter. A child that
// exited on its own is detected here, lazily, and its slot cleared under
// the same mutex as start/stop so a concurrent stop cannot race the
// cleanup; no termination protocol runs for an already-dead process.
func (s *Supervisor) Status() types.StatusResponse {
	count := s.requests.Add(1)

	s.mu.Lock()
	p := s.proc
	if p == nil {
		s.mu.Unlock()
		return types.StatusResponse{Running: false, RequestCount: count}
	}

	select {
	case <-p.done:
		code := p.exitCode
		s.proc = nil
		s.state = StateIdle
		s.mu.Unlock()
		childUp.Set(0)
		childUnexpectedExits.Inc()
		s.log.Warn().Str("model", p.modelID).Int("exit_code", code).Msg("managed process exited on its own")
		return types.StatusResponse{
			Running:      false,
			Message:      fmt.Sprintf("Process exited with code %d", code),
			RequestCount: count,
		}
	default:
	}

	modelID, name, pid := p.modelID, p.name, p.cmd.Process.Pid
	uptime := int64(time.Since(p.startedAt).Seconds())
	s.mu.Unlock()

	// The probe blocks up to its own bound; run it outside the mutex so a
	// slow endpoint cannot stall concurrent start/stop calls.
	health := s.probe.Check(true)
	return types.StatusResponse{
		Running:       true,
		Model:         modelID,
		Name:          name,
		PID:           pid,
		UptimeSeconds: &uptime,
		Health:        &health,
		RequestCount:  count,
	}
}
