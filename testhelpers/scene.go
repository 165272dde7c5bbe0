package testhelpers

import (
	"os"
	"os/exec"
	"testing"
)

// Scene represents a test scene with a temporary directory and
// Mercurial repository. Scenes skip the test when no hg binary is
// installed, so parser-level tests stay runnable everywhere.
type Scene struct {
	Dir  string
	Repo *HgRepo
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a new test scene with a temporary directory and
// Mercurial repository. Cleanup is registered with t.Cleanup().
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()
	RequireHg(t)

	tmpDir, err := os.MkdirTemp("", "hglib-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	repo, err := NewHgRepo(tmpDir)
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to create hg repo: %v", err)
	}

	scene := &Scene{
		Dir:  tmpDir,
		Repo: repo,
	}

	// Keep user/system hgrc out of library invocations too.
	t.Setenv("HGRCPATH", "")

	if setup != nil {
		if err := setup(scene); err != nil {
			os.RemoveAll(tmpDir)
			t.Fatalf("Setup failed: %v", err)
		}
	}

	t.Cleanup(func() {
		if os.Getenv("DEBUG") == "" {
			os.RemoveAll(tmpDir)
		}
	})

	return scene
}

// RequireHg skips the test when the hg binary is not installed.
func RequireHg(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("hg"); err != nil {
		t.Skip("hg not installed")
	}
}
