package types

// HealthStatus reports whether the managed llama-server answers on its port.
type HealthStatus struct {
	// True when the llama-server port accepted a TCP connection.
	// example: true
	Healthy bool `json:"healthy"`
	// Short machine-usable reason when unhealthy: "not_running",
	// "port_not_responding", or a transport error string.
	// example: port_not_responding
	Reason string `json:"reason,omitempty"`
}

// StatusResponse is returned by GET /api/status.
type StatusResponse struct {
	// True while a managed process is alive.
	// example: true
	Running bool `json:"running"`
	// Human-readable note when not running (e.g. unexpected exit).
	// example: Process exited with code 1
	Message string `json:"message,omitempty"`
	// Identifier of the running model.
	// example: qwen-7b
	Model string `json:"model,omitempty"`
	// Display name of the running model.
	// example: Qwen 2.5 7B
	Name string `json:"name,omitempty"`
	// OS process id of the managed llama-server.
	// example: 12345
	PID int `json:"pid,omitempty"`
	// Whole seconds since the managed process was launched.
	// example: 3600
	UptimeSeconds *int64 `json:"uptime_seconds,omitempty"`
	// Endpoint reachability of the managed process.
	Health *HealthStatus `json:"health,omitempty"`
	// Process-wide count of status queries served.
	// example: 42
	RequestCount uint64 `json:"request_count"`
}

// StartResult is returned by POST /api/start/{modelID}.
type StartResult struct {
	// example: true
	Success bool `json:"success"`
	// Identifier of the launched model.
	// example: qwen-7b
	Model string `json:"model,omitempty"`
	// Display name of the launched model.
	// example: Qwen 2.5 7B
	Name string `json:"name,omitempty"`
	// OS process id assigned by the spawn.
	// example: 12345
	PID int `json:"pid,omitempty"`
	// Failure detail when Success is false.
	// example: Unknown model: bogus
	Error string `json:"error,omitempty"`
}

// StopResult is returned by POST /api/stop.
type StopResult struct {
	// example: true
	Success bool `json:"success"`
	// Identifier of the model that was stopped.
	// example: qwen-7b
	Stopped string `json:"stopped,omitempty"`
	// Display name of the model that was stopped.
	// example: Qwen 2.5 7B
	Name string `json:"name,omitempty"`
	// Set on the no-op path when nothing was running.
	// example: No model running
	Message string `json:"message,omitempty"`
	// Failure detail when Success is false.
	Error string `json:"error,omitempty"`
}

// ModelSummary is one entry of the GET /api/models map.
type ModelSummary struct {
	// Display name of the model.
	// example: Qwen 2.5 7B
	Name string `json:"name"`
	// Context window size the model is launched with.
	// example: 8192
	Context int `json:"context"`
}

// GPUStats is a best-effort nvidia-smi snapshot; null when unavailable.
type GPUStats struct {
	// example: NVIDIA GeForce RTX 4090
	Name string `json:"name"`
	// example: 8192
	VRAMUsedMB int `json:"vram_used_mb"`
	// example: 24564
	VRAMTotalMB int `json:"vram_total_mb"`
	// GPU utilization percentage.
	// example: 87
	Utilization int `json:"utilization"`
	// example: 62
	TempC int `json:"temp_c"`
}

// MemoryStats is a best-effort system memory snapshot; null when unavailable.
type MemoryStats struct {
	// example: 21.3
	UsedGB float64 `json:"used_gb"`
	// example: 64.0
	TotalGB float64 `json:"total_gb"`
}

// StatsResponse is returned by GET /api/stats. Both fields may be null.
type StatsResponse struct {
	GPU    *GPUStats    `json:"gpu"`
	Memory *MemoryStats `json:"memory"`
}

// NetworkInfo is returned by GET /api/network.
type NetworkInfo struct {
	// Machine hostname.
	// example: gpubox
	Hostname string `json:"hostname"`
	// LAN address discovered via outbound routing, if any.
	// example: 192.168.1.20
	Local string `json:"local,omitempty"`
	// example: 100.101.102.103
	TailscaleIP string `json:"tailscale_ip,omitempty"`
	// example: gpubox.tailnet.ts.net
	TailscaleDNS string `json:"tailscale_dns,omitempty"`
}

// VersionResponse is returned by GET /api/version.
type VersionResponse struct {
	// example: 2.1.0
	Version string `json:"version"`
	// example: llamactld
	Name string `json:"name"`
}

// ErrorResponse is the JSON error payload for 401/404 responses.
type ErrorResponse struct {
	// example: Unauthorized
	Error string `json:"error"`
}
