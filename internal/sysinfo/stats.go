// Package sysinfo collects best-effort system statistics and network
// addressing for the control API. Every probe is independently bounded or
// non-blocking; failures degrade to null/empty fields, never errors.
package sysinfo

import (
	"context"
	"math"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"llamactld/pkg/types"
)

const statsTimeout = 5 * time.Second

const meminfoPath = "/proc/meminfo"

// Collect gathers GPU and system memory statistics. Fields for unavailable
// sources (no nvidia-smi, non-Linux /proc) come back null.
func Collect(ctx context.Context) types.StatsResponse {
	return types.StatsResponse{
		GPU:    queryGPU(ctx),
		Memory: queryMemory(),
	}
}

func queryGPU(ctx context.Context) *types.GPUStats {
	ctx, cancel := context.WithTimeout(ctx, statsTimeout)
	defer cancel()
	cmd := exec.CommandContext(ctx, "nvidia-smi",
		"--query-gpu=name,memory.used,memory.total,utilization.gpu,temperature.gpu",
		"--format=csv,noheader,nounits")
	out, err := cmd.Output()
	if err != nil {
		return nil
	}
	return parseNvidiaSMI(string(out))
}

// parseNvidiaSMI parses the first CSV line of an nvidia-smi query. Returns
// nil when the line does not carry the five expected fields.
func parseNvidiaSMI(s string) *types.GPUStats {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	parts := strings.Split(line, ", ")
	if len(parts) < 5 {
		return nil
	}
	used, err1 := strconv.Atoi(strings.TrimSpace(parts[1]))
	total, err2 := strconv.Atoi(strings.TrimSpace(parts[2]))
	util, err3 := strconv.Atoi(strings.TrimSpace(parts[3]))
	temp, err4 := strconv.Atoi(strings.TrimSpace(parts[4]))
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return nil
	}
	return &types.GPUStats{
		Name:        strings.TrimSpace(parts[0]),
		VRAMUsedMB:  used,
		VRAMTotalMB: total,
		Utilization: util,
		TempC:       temp,
	}
}

func queryMemory() *types.MemoryStats {
	b, err := os.ReadFile(meminfoPath)
	if err != nil {
		return nil
	}
	return parseMeminfo(string(b))
}

// parseMeminfo computes used/total GB from the MemTotal and MemAvailable
// rows, rounded to one decimal.
func parseMeminfo(s string) *types.MemoryStats {
	var totalKB, availKB int64
	for _, line := range strings.Split(s, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		switch fields[0] {
		case "MemTotal:":
			totalKB, _ = strconv.ParseInt(fields[1], 10, 64)
		case "MemAvailable:":
			availKB, _ = strconv.ParseInt(fields[1], 10, 64)
		}
	}
	if totalKB == 0 {
		return nil
	}
	return &types.MemoryStats{
		UsedGB:  round1(float64(totalKB-availKB) / 1024 / 1024),
		TotalGB: round1(float64(totalKB) / 1024 / 1024),
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
