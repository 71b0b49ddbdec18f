// Package supervisor owns the lifecycle of the single managed llama-server
// process. It is structured into small files by concern:
//
//   - supervisor.go: core Supervisor type, constructor, simple getters.
//   - types.go: lifecycle states and the managed process slot.
//   - start.go: launch protocol, command construction, output capture.
//   - stop.go: two-stage termination (SIGTERM, bounded wait, SIGKILL).
//   - status.go: status snapshots and lazy exited-process detection.
//   - logbuffer.go: bounded FIFO of timestamped child output lines.
//   - health.go: TCP reachability probe of the child's service endpoint.
//   - errors.go: error types and helpers (IsUnknownModel, IsLaunchFailure).
//   - metrics.go: Prometheus instrumentation of child lifecycle events.
//
// All mutations of the process slot go through a single mutex shared by
// Start, Stop, and the exit detection inside Status, so concurrent control
// requests can never spawn two children or double-clean a slot. Operations
// report expected failures in-band through result structs; they do not
// return errors to the HTTP boundary.
package supervisor
