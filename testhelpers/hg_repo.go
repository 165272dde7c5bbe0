// Package testhelpers provides a scene harness for integration tests
// that need real Mercurial repositories.
package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// HgRepo represents a Mercurial repository for testing purposes.
type HgRepo struct {
	Dir string
}

// NewHgRepo initializes a new Mercurial repository in the specified
// directory using 'hg init'.
func NewHgRepo(dir string) (*HgRepo, error) {
	repo := &HgRepo{Dir: dir}
	if err := repo.RunHgCommand("init"); err != nil {
		return nil, fmt.Errorf("failed to init repo: %w", err)
	}

	// Commands that commit implicitly (tag, for one) need a username;
	// the repo-local hgrc survives the emptied HGRCPATH.
	hgrc := "[ui]\nusername = scene <scene@example.com>\n"
	if err := os.WriteFile(filepath.Join(dir, ".hg", "hgrc"), []byte(hgrc), 0644); err != nil {
		return nil, fmt.Errorf("failed to write hgrc: %w", err)
	}
	return repo, nil
}

// NewHgRepoFromClone clones a repository from a local source path.
func NewHgRepoFromClone(dir string, sourcePath string) (*HgRepo, error) {
	cmd := exec.Command("hg", "clone", sourcePath, dir)
	cmd.Env = testEnv()
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("failed to clone repo: %w\n%s", err, out)
	}
	return &HgRepo{Dir: dir}, nil
}

// RunHgCommand executes an hg command in the repository directory.
// HGRCPATH is emptied so user and system hgrc files cannot leak into
// test behavior.
func (r *HgRepo) RunHgCommand(args ...string) error {
	cmd := exec.Command("hg", args...)
	cmd.Dir = r.Dir
	cmd.Env = testEnv()
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("hg %v failed: %w\n%s", args, err, out)
	}
	return nil
}

// WriteFile writes content to a file relative to the repository root.
func (r *HgRepo) WriteFile(name, content string) error {
	return os.WriteFile(filepath.Join(r.Dir, name), []byte(content), 0644)
}

// CreateChangeAndCommit writes a file, adds it and commits it with the
// given message, attributed to the scene's test user.
func (r *HgRepo) CreateChangeAndCommit(message, name, content string) error {
	if err := r.WriteFile(name, content); err != nil {
		return err
	}
	if err := r.RunHgCommand("add", name); err != nil {
		return err
	}
	return r.RunHgCommand("commit", "-m", message, "-u", "test")
}

func testEnv() []string {
	return append(os.Environ(), "HGRCPATH=", "LANG=en_US")
}
