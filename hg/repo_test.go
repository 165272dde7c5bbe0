package hg_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"hglib.dev/hglib/hg"
	"hglib.dev/hglib/hgerrors"
	"hglib.dev/hglib/testhelpers"
)

func TestCommitScenario(t *testing.T) {
	t.Run("first commit yields a default-branch root revision", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		repo := hg.NewRepo(scene.Dir)

		require.NoError(t, scene.Repo.WriteFile("file.txt", "stuff"))
		require.NoError(t, repo.Add("file.txt"))
		require.NoError(t, repo.Commit("adding", hg.CommitOptions{User: "test"}))

		rev, err := repo.RevisionAt(0)
		require.NoError(t, err)
		require.Equal(t, "adding", rev.Desc)
		require.Equal(t, "test", rev.Author)
		require.Equal(t, "default", rev.Branch)
		require.Equal(t, []int{-1}, rev.Parents)
	})

	t.Run("falls back to the repo default user", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		repo := hg.NewRepoWithUser(scene.Dir, "fallback")

		require.NoError(t, scene.Repo.WriteFile("file.txt", "stuff"))
		require.NoError(t, repo.Add("file.txt"))
		require.NoError(t, repo.Commit("adding", hg.CommitOptions{}))

		rev, err := repo.RevisionAt(0)
		require.NoError(t, err)
		require.Equal(t, "fallback", rev.Author)
	})

	t.Run("round-trips an adversarial commit message", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		repo := hg.NewRepo(scene.Dir)

		require.NoError(t, scene.Repo.WriteFile("file.txt", "stuff"))
		require.NoError(t, repo.Add("file.txt"))
		require.NoError(t, repo.Commit("}", hg.CommitOptions{User: `evil"desc=x`}))

		rev, err := repo.RevisionAt(0)
		require.NoError(t, err)
		require.Equal(t, "}", rev.Desc)
		require.Equal(t, `evil"desc=x`, rev.Author)
	})
}

func TestRevisionsSlice(t *testing.T) {
	t.Run("full-history slice returns every revision in order", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			for i := 0; i < 3; i++ {
				name := fmt.Sprintf("file%d.txt", i)
				if err := s.Repo.CreateChangeAndCommit(fmt.Sprintf("commit %d", i), name, "content"); err != nil {
					return err
				}
			}
			return nil
		})
		repo := hg.NewRepo(scene.Dir)

		revs, err := repo.Revisions("", "")
		require.NoError(t, err)
		require.Len(t, revs, 3)
		for i, rev := range revs {
			require.Equal(t, i, rev.Rev)
		}
	})
}

func TestStatusScenario(t *testing.T) {
	t.Run("clean working copy maps every fixed code to an empty list", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("init", "file.txt", "content")
		})
		repo := hg.NewRepo(scene.Dir)

		changes, err := repo.Status(hg.StatusOptions{})
		require.NoError(t, err)
		require.Len(t, changes, 5)
		for code, files := range changes {
			require.Emptyf(t, files, "expected no files under %q", code)
		}
	})

	t.Run("reports untracked and modified files", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("init", "tracked.txt", "content")
		})
		repo := hg.NewRepo(scene.Dir)

		require.NoError(t, scene.Repo.WriteFile("tracked.txt", "changed"))
		require.NoError(t, scene.Repo.WriteFile("new.txt", "fresh"))

		changes, err := repo.Status(hg.StatusOptions{})
		require.NoError(t, err)
		require.Equal(t, []string{"tracked.txt"}, changes["M"])
		require.Equal(t, []string{"new.txt"}, changes["?"])
	})
}

func TestDiffScenario(t *testing.T) {
	t.Run("returns one entry per touched file", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("init", "file.txt", "old\n")
		})
		repo := hg.NewRepo(scene.Dir)

		require.NoError(t, scene.Repo.WriteFile("file.txt", "new\n"))

		diffs, err := repo.Diff("", "")
		require.NoError(t, err)
		require.Len(t, diffs, 1)
		require.Equal(t, "file.txt", diffs[0].Filename)
		require.Contains(t, diffs[0].Diff, "-old")
		require.Contains(t, diffs[0].Diff, "+new")
	})
}

func TestRemoteChanges(t *testing.T) {
	t.Run("outgoing with nothing to push returns an empty result", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("init", "file.txt", "content")
		})

		cloneDir := filepath.Join(t.TempDir(), "clone")
		cloned, err := testhelpers.NewHgRepoFromClone(cloneDir, scene.Dir)
		require.NoError(t, err)

		repo := hg.NewRepo(cloned.Dir)
		revs, err := repo.Outgoing(context.Background(), "default")
		require.NoError(t, err)
		require.Empty(t, revs)
	})

	t.Run("outgoing lists unpushed changesets", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("init", "file.txt", "content")
		})

		cloneDir := filepath.Join(t.TempDir(), "clone")
		cloned, err := testhelpers.NewHgRepoFromClone(cloneDir, scene.Dir)
		require.NoError(t, err)
		require.NoError(t, cloned.CreateChangeAndCommit("local only", "extra.txt", "content"))

		repo := hg.NewRepo(cloned.Dir)
		revs, err := repo.Outgoing(context.Background(), "default")
		require.NoError(t, err)
		require.Len(t, revs, 1)
		require.Equal(t, "local only", revs[0].Desc)
	})

	t.Run("unknown remote fails fast", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("init", "file.txt", "content")
		})
		repo := hg.NewRepo(scene.Dir)

		_, err := repo.Outgoing(context.Background(), "upstream")
		require.Error(t, err)
		require.ErrorIs(t, err, hgerrors.ErrRemoteNotFound)
	})
}

func TestCommandErrors(t *testing.T) {
	t.Run("non-zero exit surfaces command line and streams", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		repo := hg.NewRepo(scene.Dir)

		err := repo.Update("no-such-revision", false)
		require.Error(t, err)

		var cmdErr *hgerrors.CommandError
		require.True(t, errors.As(err, &cmdErr))
		require.NotZero(t, cmdErr.ExitCode)
		require.NotEmpty(t, cmdErr.Args)
		require.ErrorIs(t, err, hgerrors.ErrCommandFailed)
	})
}

func TestBranchesAndTags(t *testing.T) {
	t.Run("lists branches with versions", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("init", "file.txt", "content")
		})
		repo := hg.NewRepo(scene.Dir)

		branches, err := repo.Branches()
		require.NoError(t, err)
		require.Len(t, branches, 1)
		require.Equal(t, "default", branches[0].Name)
		require.Regexp(t, `^\d+:[0-9a-f]+$`, branches[0].Version)
	})

	t.Run("tagging the current revision shows up in Tags", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("init", "file.txt", "content")
		})
		repo := hg.NewRepoWithUser(scene.Dir, "test")

		require.NoError(t, repo.Tag("", "v1.0"))

		tags, err := repo.Tags()
		require.NoError(t, err)
		require.Contains(t, tags, "v1.0")
		require.Contains(t, tags, "tip")
	})
}

func TestConfigScenario(t *testing.T) {
	t.Run("reads lazily and refreshes only on demand", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		repo := hg.NewRepo(scene.Dir)

		username, err := repo.Config("ui", "username")
		require.NoError(t, err)
		require.Equal(t, "scene <scene@example.com>", username)

		// A change on disk is invisible until an explicit refresh.
		hgrc := "[ui]\nusername = changed <changed@example.com>\n"
		require.NoError(t, scene.Repo.WriteFile(filepath.Join(".hg", "hgrc"), hgrc))

		username, err = repo.Config("ui", "username")
		require.NoError(t, err)
		require.Equal(t, "scene <scene@example.com>", username)

		_, err = repo.ReadConfig()
		require.NoError(t, err)

		username, err = repo.Config("ui", "username")
		require.NoError(t, err)
		require.Equal(t, "changed <changed@example.com>", username)
	})
}

func TestBookmarksScenario(t *testing.T) {
	t.Run("created bookmarks appear in the listing", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("init", "file.txt", "content")
		})
		repo := hg.NewRepo(scene.Dir)

		_, err := repo.CreateBookmark("feature", hg.BookmarkOptions{})
		require.NoError(t, err)

		bookmarks, err := repo.Bookmarks()
		require.NoError(t, err)
		require.Len(t, bookmarks, 1)
		require.Equal(t, "feature", bookmarks[0].Name)
		require.True(t, bookmarks[0].Active)
	})
}

func TestPackageLevelCommands(t *testing.T) {
	t.Run("version reports the installed hg version", func(t *testing.T) {
		testhelpers.RequireHg(t)
		version, err := hg.Version(context.Background())
		require.NoError(t, err)
		require.NotEmpty(t, version)
	})

	t.Run("root resolves the repository root from a subdirectory", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("init", "file.txt", "content")
		})

		root, err := hg.Root(context.Background(), scene.Dir)
		require.NoError(t, err)

		wantDir, err := filepath.EvalSymlinks(scene.Dir)
		require.NoError(t, err)
		gotDir, err := filepath.EvalSymlinks(root)
		require.NoError(t, err)
		require.Equal(t, wantDir, gotDir)
	})

	t.Run("clone returns a repo bound to the new working copy", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("init", "file.txt", "content")
		})

		cloneDir := filepath.Join(t.TempDir(), "clone")
		repo, err := hg.Clone(context.Background(), scene.Dir, cloneDir)
		require.NoError(t, err)
		require.Equal(t, cloneDir, repo.Path())

		rev, err := repo.RevisionAt(0)
		require.NoError(t, err)
		require.Equal(t, "init", rev.Desc)
	})
}

func TestIdentify(t *testing.T) {
	t.Run("reports revision number and node of the working parent", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("init", "file.txt", "content")
		})
		repo := hg.NewRepo(scene.Dir)

		num, err := repo.RevNumber()
		require.NoError(t, err)
		require.Equal(t, 0, num)

		short, err := repo.Identify()
		require.NoError(t, err)
		node, err := repo.Node()
		require.NoError(t, err)
		require.Len(t, node, 40)
		require.Equal(t, node[:12], short)
	})
}
