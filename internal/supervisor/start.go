package supervisor

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"llamactld/internal/config"
	"llamactld/pkg/types"
)

// Start launches the named model, stopping any currently managed process
// first. Start is never additive: exactly one child exists at a time. An
// unknown id leaves supervisor state untouched; a failed spawn returns the
// slot to idle. Expected failures are reported in-band, never panicked.
func (s *Supervisor) Start(modelID string) types.StartResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	model, ok := s.cfg.Models[modelID]
	if !ok {
		return types.StartResult{Success: false, Error: errUnknownModel(modelID).Error()}
	}

	// Clear before the implicit stop so the "Stopping <old>" line survives
	// into the new launch's buffer, ahead of the "Starting <new>" line.
	s.logs.Clear()
	if s.proc != nil {
		s.stopLocked()
	}

	s.state = StateStarting
	args := s.buildArgs(model)
	s.logs.Append(fmt.Sprintf("Starting %s...", model.Name))
	s.logs.Append("Command: " + s.cfg.Paths.LlamaServer + " " + strings.Join(args, " "))

	cmd := exec.Command(s.cfg.Paths.LlamaServer, args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		s.state = StateIdle
		return types.StartResult{Success: false, Error: errLaunchFailure(err.Error()).Error()}
	}
	// Combined stream: exec reuses the stdout descriptor for stderr.
	cmd.Stderr = cmd.Stdout

	if err := cmd.Start(); err != nil {
		s.state = StateIdle
		lf := errLaunchFailure(fmt.Sprintf("llama-server not found at %s", s.cfg.Paths.LlamaServer))
		if !isNotFound(err) {
			lf = errLaunchFailure(err.Error())
		}
		s.log.Error().Err(err).Str("model", modelID).Msg("spawn failed")
		return types.StartResult{Success: false, Error: lf.Error()}
	}

	p := &managedProcess{
		cmd:       cmd,
		modelID:   modelID,
		name:      model.Name,
		startedAt: time.Now(),
		done:      make(chan struct{}),
	}
	s.proc = p
	s.state = StateRunning
	go s.capture(p, stdout)

	childStartsTotal.Inc()
	childUp.Set(1)
	s.log.Info().Str("model", modelID).Int("pid", cmd.Process.Pid).Msg("model started")
	return types.StartResult{Success: true, Model: modelID, Name: model.Name, PID: cmd.Process.Pid}
}

// buildArgs assembles the llama-server argv from the launch descriptor.
// Optional sampling knobs contribute flags only when configured.
func (s *Supervisor) buildArgs(m config.ModelConfig) []string {
	args := []string{
		"-m", s.cfg.ModelPath(m),
		"--host", s.cfg.Server.LlamaHost,
		"--port", strconv.Itoa(s.cfg.Server.LlamaPort),
		"-c", strconv.Itoa(m.ContextSize()),
		"-ngl", strconv.Itoa(m.GPULayerCount()),
	}
	if m.CPUMoE != nil {
		args = append(args, "--n-cpu-moe", strconv.Itoa(*m.CPUMoE))
	}
	if m.Temp != nil {
		args = append(args, "--temp", formatFloat(*m.Temp))
	}
	if m.TopK != nil {
		args = append(args, "--top-k", strconv.Itoa(*m.TopK))
	}
	if m.TopP != nil {
		args = append(args, "--top-p", formatFloat(*m.TopP))
	}
	if m.MinP != nil {
		args = append(args, "--min-p", formatFloat(*m.MinP))
	}
	return append(args, m.ExtraArgs...)
}

// capture drains the child's combined output into the log buffer line by
// line, then reaps the process. It is the only writer of p.exitCode and the
// only closer of p.done, so the channel close publishes the exit code.
// Normal termination (EOF) surfaces no error.
func (s *Supervisor) capture(p *managedProcess, r io.Reader) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(strings.ToValidUTF8(sc.Text(), "�"))
		if line != "" {
			s.logs.Append(line)
		}
	}
	_ = p.cmd.Wait()
	if ps := p.cmd.ProcessState; ps != nil {
		p.exitCode = ps.ExitCode()
	} else {
		p.exitCode = -1
	}
	close(p.done)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func isNotFound(err error) bool {
	return err != nil && (strings.Contains(err.Error(), "no such file") ||
		strings.Contains(err.Error(), "executable file not found"))
}
