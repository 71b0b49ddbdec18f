package supervisor

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"llamactld/internal/config"
	"llamactld/pkg/types"
)

const (
	logCapacity         = 200
	gracefulStopTimeout = 10 * time.Second
	healthDialTimeout   = 2 * time.Second
)

// Supervisor owns the single managed-process slot. At most one child exists
// at any instant; mu serializes every mutation of state, slot, and start
// time across Start, Stop, and the exit detection in Status.
type Supervisor struct {
	mu  sync.Mutex
	cfg config.Config
	log zerolog.Logger

	state State
	proc  *managedProcess

	logs     *LogBuffer
	probe    HealthProbe
	requests atomic.Uint64
}

// New constructs a Supervisor over a validated, immutable configuration.
func New(cfg config.Config, log zerolog.Logger) *Supervisor {
	return &Supervisor{
		cfg:   cfg,
		log:   log,
		state: StateIdle,
		logs:  NewLogBuffer(logCapacity),
		probe: HealthProbe{
			Host:    cfg.Server.LlamaHost,
			Port:    cfg.Server.LlamaPort,
			Timeout: healthDialTimeout,
		},
	}
}

// State returns the current lifecycle state.
func (s *Supervisor) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Models lists the configured launch descriptors. The descriptor set is
// immutable after boot, so no locking is needed.
func (s *Supervisor) Models() map[string]types.ModelSummary {
	out := make(map[string]types.ModelSummary, len(s.cfg.Models))
	for id, m := range s.cfg.Models {
		out[id] = types.ModelSummary{Name: m.Name, Context: m.ContextSize()}
	}
	return out
}

// Logs returns up to n most recent captured output lines in original order.
func (s *Supervisor) Logs(n int) []string {
	return s.logs.Last(n)
}
