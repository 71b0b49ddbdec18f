package sysinfo

import "testing"

func TestParseNvidiaSMI(t *testing.T) {
	got := parseNvidiaSMI("NVIDIA GeForce RTX 4090, 11216, 24564, 37, 52\n")
	if got == nil {
		t.Fatal("parse returned nil")
	}
	if got.Name != "NVIDIA GeForce RTX 4090" {
		t.Fatalf("name=%q", got.Name)
	}
	if got.VRAMUsedMB != 11216 || got.VRAMTotalMB != 24564 {
		t.Fatalf("vram=%d/%d", got.VRAMUsedMB, got.VRAMTotalMB)
	}
	if got.Utilization != 37 || got.TempC != 52 {
		t.Fatalf("util=%d temp=%d", got.Utilization, got.TempC)
	}
}

func TestParseNvidiaSMIMultiGPUUsesFirst(t *testing.T) {
	out := "GPU0, 100, 200, 1, 40\nGPU1, 300, 400, 2, 50\n"
	got := parseNvidiaSMI(out)
	if got == nil || got.Name != "GPU0" || got.VRAMUsedMB != 100 {
		t.Fatalf("got=%+v", got)
	}
}

func TestParseNvidiaSMIGarbage(t *testing.T) {
	for _, s := range []string{"", "no csv here", "a, b, c", "name, x, y, z, w"} {
		if got := parseNvidiaSMI(s); got != nil {
			t.Fatalf("parse(%q)=%+v, want nil", s, got)
		}
	}
}

func TestParseMeminfo(t *testing.T) {
	got := parseMeminfo("MemTotal:       32614056 kB\nMemFree:         1000000 kB\nMemAvailable:   16307028 kB\n")
	if got == nil {
		t.Fatal("parse returned nil")
	}
	// 32614056 kB is 31.1 GB, half available leaves 15.6 GB used
	if got.TotalGB != 31.1 {
		t.Fatalf("total=%v", got.TotalGB)
	}
	if got.UsedGB != 15.6 {
		t.Fatalf("used=%v", got.UsedGB)
	}
}

func TestParseMeminfoMissingTotal(t *testing.T) {
	if got := parseMeminfo("MemAvailable: 123 kB\n"); got != nil {
		t.Fatalf("got=%+v, want nil", got)
	}
}
