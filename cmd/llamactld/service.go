package main

import (
	"context"

	"llamactld/internal/supervisor"
	"llamactld/internal/sysinfo"
	"llamactld/pkg/types"
)

// controlService adapts the supervisor plus the system probes to the HTTP
// layer's Service interface.
type controlService struct {
	*supervisor.Supervisor
}

func (controlService) Stats(ctx context.Context) types.StatsResponse {
	return sysinfo.Collect(ctx)
}

func (controlService) Network() types.NetworkInfo {
	return sysinfo.Info()
}
