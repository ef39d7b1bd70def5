package kubectl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/marcio-pessoa/kubectl-cp/console"
)

// DefaultBinary is the kubectl executable resolved from PATH.
const DefaultBinary = "kubectl"

// Runner executes commands inside a remote target's container through
// "kubectl exec". Every operation is exactly one process invocation whose
// lifetime is scoped to that operation: started, streamed, awaited, reaped.
type Runner struct {
	// Binary is the kubectl executable to invoke. Tests substitute a shim.
	Binary    string
	extraArgs []string
	con       *console.Console
}

// NewRunner builds a Runner. extraArgs is the opaque argument string
// forwarded verbatim to every kubectl invocation (e.g. "-n production"),
// shell-tokenized before being spliced into the argument vector.
func NewRunner(extraArgs string, con *console.Console) (*Runner, error) {
	tokens, err := shellquote.Split(extraArgs)
	if err != nil {
		return nil, fmt.Errorf("couldn't tokenize kubectl arguments %q: %w", extraArgs, err)
	}
	return &Runner{
		Binary:    DefaultBinary,
		extraArgs: tokens,
		con:       con,
	}, nil
}

// execArgs builds the kubectl argument vector for one remote command.
// stdinAttached adds -i so that kubectl forwards our stdin to the remote
// process.
func (r *Runner) execArgs(target string, stdinAttached bool, remoteCmd ...string) []string {
	args := make([]string, 0, len(r.extraArgs)+len(remoteCmd)+4)
	args = append(args, "exec")
	args = append(args, r.extraArgs...)
	if stdinAttached {
		args = append(args, "-i")
	}
	args = append(args, target, "--")
	args = append(args, remoteCmd...)
	return args
}

func (r *Runner) command(ctx context.Context, target string, stdinAttached bool,
	remoteCmd ...string) *exec.Cmd {
	args := r.execArgs(target, stdinAttached, remoteCmd...)
	r.con.Debugf("%s %s\n", r.Binary, strings.Join(args, " "))
	return exec.CommandContext(ctx, r.Binary, args...)
}

// Output runs a remote command and captures its stdout.
func (r *Runner) Output(ctx context.Context, target string, remoteCmd ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := r.command(ctx, target, false, remoteCmd...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err != nil {
		return nil, classifyRunError(err, stderr.String())
	}
	return stdout.Bytes(), nil
}

// StreamTo runs a remote command and streams its stdout into w.
func (r *Runner) StreamTo(ctx context.Context, target string, w io.Writer, remoteCmd ...string) error {
	var stderr bytes.Buffer
	cmd := r.command(ctx, target, false, remoteCmd...)
	cmd.Stdout = w
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return classifyRunError(err, stderr.String())
	}
	return nil
}

// RunWithInput runs a remote command with input attached as its standard
// input. The remote command's own stdout is discarded.
func (r *Runner) RunWithInput(ctx context.Context, target string, input io.Reader, remoteCmd ...string) error {
	var stderr bytes.Buffer
	cmd := r.command(ctx, target, true, remoteCmd...)
	cmd.Stdin = input
	cmd.Stdout = io.Discard
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return classifyRunError(err, stderr.String())
	}
	return nil
}

// Run runs a remote command, discarding its output.
func (r *Runner) Run(ctx context.Context, target string, remoteCmd ...string) error {
	return r.StreamTo(ctx, target, io.Discard, remoteCmd...)
}

// ExitError reports that the remote command ran and exited with a non-zero
// status. The remote shell's stderr is carried for diagnostics.
type ExitError struct {
	Status int
	Stderr string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("remote command exited with status %d", e.Status)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

// TransportError reports that the kubectl process itself could not run or
// was torn down before the remote command completed. It is never downgraded
// to a content-classification result.
type TransportError struct {
	Err    error
	Stderr string
}

func (e *TransportError) Error() string {
	msg := fmt.Sprintf("kubectl invocation failed: %v", e.Err)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// classifyRunError splits a process failure into the two failure modes the
// probe cares about: the remote command exiting non-zero versus the channel
// itself breaking (binary missing, process killed, context cancelled).
func classifyRunError(err error, stderr string) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		return &ExitError{Status: exitErr.ExitCode(), Stderr: stderr}
	}
	return &TransportError{Err: err, Stderr: stderr}
}
