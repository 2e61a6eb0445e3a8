package gitcmd

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// Result carries the outcome of one external git invocation. A nonzero exit
// or a missing binary is data, not an error: Succeeded is false and Stderr
// holds whatever diagnostics the process produced.
type Result struct {
	Stdout    string
	Stderr    string
	Succeeded bool
}

// Runner executes one external git command per call, synchronously.
type Runner interface {
	Run(ctx context.Context, dir string, env map[string]string, args ...string) Result
}

// ExecRunner shells out to the configured git binary.
type ExecRunner struct {
	config Config

	logger *zap.Logger
}

func NewExecRunner(config Config, logger *zap.Logger) *ExecRunner {
	if strings.TrimSpace(config.Binary) == "" {
		config.Binary = "git"
	}

	return &ExecRunner{
		config: config,
		logger: logger,
	}
}

// Run implements Runner. It spawns exactly one process and blocks until it
// exits or the configured timeout expires; expiry surfaces as Succeeded=false
// like any other failure.
func (r *ExecRunner) Run(ctx context.Context, dir string, env map[string]string, args ...string) Result {
	if r.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.config.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.config.Binary, args...)
	if dir != "" {
		cmd.Dir = dir
	}

	if len(env) > 0 {
		cmd.Env = os.Environ()
		for key, value := range env {
			cmd.Env = append(cmd.Env, key+"="+value)
		}
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		r.logger.Debug("git command failed",
			zap.Strings("args", args),
			zap.String("dir", dir),
			zap.String("stderr", strings.TrimSpace(stderr.String())),
			zap.Error(err))
	}

	return Result{
		Stdout:    stdout.String(),
		Stderr:    stderr.String(),
		Succeeded: err == nil,
	}
}
