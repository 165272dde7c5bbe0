package hg

import (
	"context"
	"strconv"
	"strings"
)

// Repo is a Mercurial repository bound to one working directory. All
// operations shell out to hg and block until the command exits.
//
// The only mutable state is the lazily-populated config cache; a Repo
// is otherwise stateless. Repos are not safe for concurrent use; use
// one Repo per goroutine or synchronize externally.
type Repo struct {
	path   string
	user   string
	runner *CommandRunner
	cfg    map[string]map[string]string
}

// NewRepo creates a Repo bound to the working directory at path. The
// directory does not need to contain a repository yet; call Init to
// create one.
func NewRepo(path string) *Repo {
	return &Repo{
		path:   path,
		runner: NewCommandRunner(path),
	}
}

// NewRepoWithUser creates a Repo with a default committer identity used
// when Commit is called without an explicit user.
func NewRepoWithUser(path, user string) *Repo {
	repo := NewRepo(path)
	repo.user = user
	return repo
}

// Path returns the working directory the Repo is bound to.
func (r *Repo) Path() string {
	return r.path
}

// SetEnv adds an environment override applied to every hg invocation
// made through this Repo.
func (r *Repo) SetEnv(key, value string) {
	r.runner.SetEnv(key, value)
}

// run executes an hg command in the repository and trims the output.
func (r *Repo) run(args ...string) (string, error) {
	return r.runner.Run(context.Background(), args...)
}

// runRaw executes an hg command and keeps the output verbatim.
func (r *Repo) runRaw(args ...string) (string, error) {
	return r.runner.RunRaw(context.Background(), args...)
}

// RunHgCommand executes an arbitrary hg command in the repository and
// returns its raw output. Escape hatch for commands without a typed
// wrapper.
func (r *Repo) RunHgCommand(args ...string) (string, error) {
	return r.runRaw(args...)
}

// Init initializes a new repository in the working directory.
func (r *Repo) Init() error {
	_, err := r.run("init")
	return err
}

// Add adds files to the repository. With no arguments all untracked
// files are added.
func (r *Repo) Add(filepaths ...string) error {
	_, err := r.run(append([]string{"add"}, filepaths...)...)
	return err
}

// AddRemove adds all new files and removes all missing files from the
// repository. With arguments, only the named files are considered.
func (r *Repo) AddRemove(filepaths ...string) error {
	_, err := r.run(append([]string{"addremove"}, filepaths...)...)
	return err
}

// Remove removes a file from the repository.
func (r *Repo) Remove(filepath string) error {
	_, err := r.run("remove", filepath)
	return err
}

// Move moves a file in the repository.
func (r *Repo) Move(source, destination string) error {
	_, err := r.run("move", source, destination)
	return err
}

// Update updates the working copy to the revision identified by
// reference, discarding uncommitted changes when clean is set.
func (r *Repo) Update(reference string, clean bool) error {
	args := []string{"update", reference}
	if clean {
		args = append(args, "--clean")
	}
	_, err := r.run(args...)
	return err
}

// Revert reverts the named files to their last committed state, or the
// whole working copy when all is set.
func (r *Repo) Revert(all bool, files ...string) error {
	args := []string{"revert"}
	if all {
		args = append(args, "--all")
	} else {
		args = append(args, files...)
	}
	_, err := r.run(args...)
	return err
}

// Identify returns the short node hash of the working copy parent.
func (r *Repo) Identify() (string, error) {
	out, err := r.run("id", "-i")
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n +"), nil
}

// RevNumber returns the local revision number of the working copy
// parent.
func (r *Repo) RevNumber() (int, error) {
	out, err := r.run("id", "-n")
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.Trim(out, "\n +"))
}

// Node returns the full node hash of the working copy parent.
func (r *Repo) Node() (string, error) {
	id, err := r.Identify()
	if err != nil {
		return "", err
	}
	return r.run("log", "-r", id, "--template", "{node}")
}
