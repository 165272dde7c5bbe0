// Package hgerrors provides sentinel errors and custom error types for the
// hglib client library. Use errors.Is() and errors.As() to check for
// specific error types.
package hgerrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrCommandFailed indicates that an hg invocation exited non-zero
	ErrCommandFailed = errors.New("hg command failed")

	// ErrRemoteNotFound indicates that a named remote is not configured
	ErrRemoteNotFound = errors.New("remote not found")
)

// CommandError represents a failed hg command execution. It carries the
// full command line, both captured output streams and the exit status.
type CommandError struct {
	Command  string
	Args     []string
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("error running %s %s", e.Command, strings.Join(e.Args, " "))
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	msg += fmt.Sprintf("\nexit: %d", e.ExitCode)
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrCommandFailed
func (e *CommandError) Is(target error) bool {
	return target == ErrCommandFailed
}

// NewCommandError creates a new CommandError
func NewCommandError(command string, args []string, stdout, stderr string, exitCode int, err error) *CommandError {
	return &CommandError{
		Command:  command,
		Args:     args,
		Stdout:   stdout,
		Stderr:   stderr,
		ExitCode: exitCode,
		Err:      err,
	}
}

// RemoteNotFoundError represents an error when a named remote is absent
// from the repository's configured paths.
type RemoteNotFoundError struct {
	Remote string
}

func (e *RemoteNotFoundError) Error() string {
	return fmt.Sprintf("no such remote repository %s", e.Remote)
}

// Is returns true if the target error is ErrRemoteNotFound
func (e *RemoteNotFoundError) Is(target error) bool {
	return target == ErrRemoteNotFound
}

// NewRemoteNotFoundError creates a new RemoteNotFoundError
func NewRemoteNotFoundError(remote string) *RemoteNotFoundError {
	return &RemoteNotFoundError{Remote: remote}
}
