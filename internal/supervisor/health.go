package supervisor

import (
	"errors"
	"net"
	"strconv"
	"syscall"
	"time"

	"llamactld/pkg/types"
)

// Health probe reasons reported to clients.
const (
	ReasonNotRunning        = "not_running"
	ReasonPortNotResponding = "port_not_responding"
)

// HealthProbe answers whether the managed process's service endpoint accepts
// TCP connections. This is distinct from OS-level liveness: a live process
// still loading its model will report unhealthy. The probe never mutates
// supervisor state.
type HealthProbe struct {
	Host    string
	Port    int
	Timeout time.Duration
}

// Check dials the endpoint once, bounded by the probe timeout. When managed
// is false no connection is attempted and "not_running" is returned.
func (h HealthProbe) Check(managed bool) types.HealthStatus {
	if !managed {
		return types.HealthStatus{Healthy: false, Reason: ReasonNotRunning}
	}
	addr := net.JoinHostPort(h.Host, strconv.Itoa(h.Port))
	conn, err := net.DialTimeout("tcp", addr, h.Timeout)
	if err == nil {
		_ = conn.Close()
		return types.HealthStatus{Healthy: true}
	}
	var nerr net.Error
	if errors.Is(err, syscall.ECONNREFUSED) || (errors.As(err, &nerr) && nerr.Timeout()) {
		return types.HealthStatus{Healthy: false, Reason: ReasonPortNotResponding}
	}
	return types.HealthStatus{Healthy: false, Reason: err.Error()}
}
