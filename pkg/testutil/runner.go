package testutil

import (
	"context"
	"os/exec"
	"strings"

	"github.com/arthur-debert/outfit/pkg/types"
)

// RecordedCall is one invocation captured by a RecorderRunner.
type RecordedCall struct {
	Name string
	Args []string
}

// String renders the call the way it would appear on a shell command line.
func (c RecordedCall) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// RecorderRunner is a types.CommandRunner that records every call instead
// of executing it. Failures are injected per command line via FailOn, and
// LookPath misses via MissingBinaries.
type RecorderRunner struct {
	Calls []RecordedCall

	// FailOn maps a full command line, as rendered by RecordedCall.String,
	// to the error Run should return for it.
	FailOn map[string]error

	// MissingBinaries marks names LookPath should report as not installed.
	MissingBinaries map[string]bool
}

var _ types.CommandRunner = (*RecorderRunner)(nil)

// NewRecorderRunner returns an empty recorder that succeeds on every call.
func NewRecorderRunner() *RecorderRunner {
	return &RecorderRunner{
		FailOn:          make(map[string]error),
		MissingBinaries: make(map[string]bool),
	}
}

// Run records the call and returns the injected error, if any.
func (r *RecorderRunner) Run(_ context.Context, name string, args ...string) error {
	call := RecordedCall{Name: name, Args: args}
	r.Calls = append(r.Calls, call)
	if err, ok := r.FailOn[call.String()]; ok {
		return err
	}
	return nil
}

// LookPath resolves every name to a fake path unless it is marked missing.
func (r *RecorderRunner) LookPath(name string) (string, error) {
	if r.MissingBinaries[name] {
		return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
	}
	return "/usr/bin/" + name, nil
}

// CommandLines returns every recorded call rendered as a command line, in
// the order the calls happened.
func (r *RecorderRunner) CommandLines() []string {
	lines := make([]string, len(r.Calls))
	for i, call := range r.Calls {
		lines[i] = call.String()
	}
	return lines
}
