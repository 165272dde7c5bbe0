// Package hg provides a client library for Mercurial repositories. It
// shells out to the hg binary and parses its output into typed records.
package hg

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"hglib.dev/hglib/hgerrors"
)

// DefaultCommandTimeout is the default timeout for hg commands
const DefaultCommandTimeout = 5 * time.Minute

// hgBinary is the executable invoked for every operation
const hgBinary = "hg"

// CommandRunner handles execution of hg commands for one working directory.
// Every invocation pins LANG=en_US so that dates and messages are rendered
// identically on every machine; parsers depend on that.
type CommandRunner struct {
	workingDir string
	extraEnv   []string
}

// NewCommandRunner creates a new CommandRunner
func NewCommandRunner(workingDir string) *CommandRunner {
	return &CommandRunner{workingDir: workingDir}
}

// SetEnv adds an environment override applied to every subsequent
// invocation made through this runner.
func (r *CommandRunner) SetEnv(key, value string) {
	r.extraEnv = append(r.extraEnv, key+"="+value)
}

// WorkingDir returns the directory the runner is bound to.
func (r *CommandRunner) WorkingDir() string {
	return r.workingDir
}

// Run executes an hg command and returns the trimmed output
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	return r.runInternal(ctx, true, args...)
}

// RunRaw executes an hg command and returns the raw output (no trimming).
// Parsers that split on line boundaries need the trailing newline intact.
func (r *CommandRunner) RunRaw(ctx context.Context, args ...string) (string, error) {
	return r.runInternal(ctx, false, args...)
}

// runInternal is the internal implementation shared by Run and RunRaw
func (r *CommandRunner) runInternal(ctx context.Context, trim bool, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	argv := make([]string, 0, len(args)+4)
	if r.workingDir != "" {
		argv = append(argv, "--cwd", r.workingDir)
	}
	argv = append(argv, "--encoding", "UTF-8")
	argv = append(argv, args...)

	cmd := exec.CommandContext(ctx, hgBinary, argv...)
	cmd.Env = append(os.Environ(), "LANG=en_US")
	cmd.Env = append(cmd.Env, r.extraEnv...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logDebug("running hg command", "args", strings.Join(argv, " "))

	err := cmd.Run()
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		if ctx.Err() == context.DeadlineExceeded {
			err = ctx.Err()
		}
		logDebug("hg command failed", "args", strings.Join(argv, " "), "exit", exitCode)
		return "", hgerrors.NewCommandError(hgBinary, argv, stdout.String(), stderr.String(), exitCode, err)
	}
	if trim {
		return strings.TrimSpace(stdout.String()), nil
	}
	return stdout.String(), nil
}

// defaultRunner is used by the package-level functions that are not bound
// to a repository (clone, version, root).
var defaultRunner = &CommandRunner{}

// versionPattern isolates the version number in the first line of
// "hg version" output.
var versionPattern = regexp.MustCompile(`\(version ([^)]+)\)`)

// Version returns the version number of the installed Mercurial binary.
func Version(ctx context.Context) (string, error) {
	out, err := defaultRunner.Run(ctx, "version")
	if err != nil {
		return "", err
	}
	firstLine, _, _ := strings.Cut(out, "\n")
	match := versionPattern.FindStringSubmatch(firstLine)
	if match == nil {
		return "", errors.New("unrecognized hg version output")
	}
	return match[1], nil
}

// Clone clones the repository at url into path and returns a Repo bound
// to the new working copy.
func Clone(ctx context.Context, url, path string, args ...string) (*Repo, error) {
	cloneArgs := append([]string{"clone", url, path}, args...)
	if _, err := defaultRunner.Run(ctx, cloneArgs...); err != nil {
		return nil, err
	}
	return NewRepo(path), nil
}

// Root returns the root of the repository containing path.
func Root(ctx context.Context, path string) (string, error) {
	runner := NewCommandRunner(path)
	out, err := runner.Run(ctx, "root")
	if err != nil {
		return "", err
	}
	return out, nil
}
