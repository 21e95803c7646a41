package watcher

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"

	"github.com/google/uuid"
)

// RunResult reports one triggered pipeline run. TimedOut distinguishes a
// run killed by the deadline from an ordinary non-zero exit.
type RunResult struct {
	ID       uuid.UUID
	Start    time.Time
	Duration time.Duration
	Output   string
	Err      error
	TimedOut bool
}

// Runner executes the pipeline binary as a one-shot subprocess with a hard
// upper bound on run time.
type Runner struct {
	Command string
	Args    []string
	Dir     string
	Timeout time.Duration
}

// Run executes the command once, capturing combined stdout and stderr.
// It never returns an error itself; failures are part of the result so the
// caller can log them and keep watching.
func (r *Runner) Run(ctx context.Context) RunResult {
	result := RunResult{ID: uuid.New(), Start: time.Now()}

	runCtx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, r.Command, r.Args...)
	cmd.Dir = r.Dir
	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	result.Err = cmd.Run()
	result.Duration = time.Since(result.Start)
	result.Output = output.String()
	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		result.TimedOut = true
	}
	return result
}
