package supervisor

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"llamactld/internal/config"
)

// writeScript creates an executable shell script standing in for the
// llama-server binary. Fake servers ignore their argv.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "fake-llama-server")
	if err := os.WriteFile(p, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return p
}

func testConfig(t *testing.T, bin string) config.Config {
	t.Helper()
	return config.Config{
		Server: config.ServerConfig{
			Host: "127.0.0.1", Port: 8081,
			LlamaHost: "127.0.0.1", LlamaPort: 39997,
		},
		Security: config.SecurityConfig{APIKey: "test-key"},
		Paths:    config.PathsConfig{LlamaServer: bin, ModelsBase: t.TempDir()},
		Models: map[string]config.ModelConfig{
			"modelA": {Name: "Model A", File: "a.gguf"},
			"modelB": {Name: "Model B", File: "b.gguf", Context: 4096},
		},
	}
}

func testLogger() zerolog.Logger { return zerolog.Nop() }

func newTestSupervisor(t *testing.T, bin string) *Supervisor {
	t.Helper()
	s := New(testConfig(t, bin), zerolog.Nop())
	t.Cleanup(func() { s.Stop() })
	return s
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, d time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("condition not met within %s", d)
}
