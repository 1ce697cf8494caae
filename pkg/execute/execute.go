// Package execute runs external commands for the operations that shell
// out (rsync, ssh, apt, brew, ...). It implements types.CommandRunner;
// tests swap in a recorder instead.
package execute

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/outfit/pkg/logging"
)

// Runner executes commands with the process stdio attached, so the user
// sees rsync progress, apt prompts, and ssh passphrase requests directly.
type Runner struct {
	logger zerolog.Logger
}

// NewRunner creates a Runner.
func NewRunner() *Runner {
	return &Runner{logger: logging.GetLogger("execute")}
}

// Run executes the named command and waits for it to finish.
func (r *Runner) Run(ctx context.Context, name string, args ...string) error {
	r.logger.Info().
		Str("command", name).
		Strs("args", args).
		Msg("Executing command")

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		r.logger.Error().
			Err(err).
			Str("command", name).
			Strs("args", args).
			Msg("Command execution failed")
		return fmt.Errorf("command %s failed: %w", name, err)
	}
	return nil
}

// LookPath reports the full path of the named binary.
func (r *Runner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
