package hg

import (
	"regexp"
	"strings"
)

// Branch is one named branch with its "rev:hash" version token.
type Branch struct {
	Name    string
	Version string
}

// branchVersion isolates the trailing "rev:hash" token of a branch
// listing line. Branch names may contain internal whitespace, so the
// name is everything before the token, trimmed. Lines may carry a
// trailing marker such as "(inactive)" after the token.
var branchVersion = regexp.MustCompile(`\d+:[A-Za-z0-9]+`)

// Branch returns the name of the current branch.
func (r *Repo) Branch() (string, error) {
	return r.run("branch")
}

// CreateBranch marks the working copy as belonging to a new branch named
// name; the branch is recorded by the next commit.
func (r *Repo) CreateBranch(name string) (string, error) {
	return r.run("branch", name)
}

// Branches returns the branches of the repository, including versions.
func (r *Repo) Branches() ([]Branch, error) {
	out, err := r.run("branches")
	if err != nil {
		return nil, err
	}
	return parseBranches(out), nil
}

// BranchNames returns the branch names of the repository.
func (r *Repo) BranchNames() ([]string, error) {
	branches, err := r.Branches()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(branches))
	for _, branch := range branches {
		names = append(names, branch.Name)
	}
	return names, nil
}

// parseBranches decodes "hg branches" output, one branch per line.
func parseBranches(out string) []Branch {
	var branches []Branch
	if out == "" {
		return branches
	}
	for _, line := range strings.Split(out, "\n") {
		loc := branchVersion.FindStringIndex(line)
		if loc == nil {
			continue
		}
		branches = append(branches, Branch{
			Name:    strings.TrimSpace(line[:loc[0]]),
			Version: line[loc[0]:loc[1]],
		})
	}
	return branches
}
