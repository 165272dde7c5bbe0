package hg

// CommitOptions contains options for creating a commit.
type CommitOptions struct {
	// User overrides the committer identity. When empty, the Repo's
	// default user is used; when that is empty too, no -u flag is
	// passed and hg falls back to its own configuration.
	User string
	// Date sets the commit date.
	Date string
	// CloseBranch marks the branch as closed.
	CloseBranch bool
	// Files restricts the commit to the named files. Empty commits
	// everything.
	Files []string
}

// Commit commits changes to the repository.
func (r *Repo) Commit(message string, opts CommitOptions) error {
	user := opts.User
	if user == "" {
		user = r.user
	}
	_, err := r.run(buildCommitArgs(message, user, opts)...)
	return err
}

// buildCommitArgs assembles the commit argument list. The user, date
// and close-branch flags are only appended when they carry a value: an
// empty flag value would be read by hg as the first positional filename
// argument and silently change which files get committed.
func buildCommitArgs(message, user string, opts CommitOptions) []string {
	args := []string{"commit", "-m", message}
	if opts.CloseBranch {
		args = append(args, "--close-branch")
	}
	if user != "" {
		args = append(args, "-u", user)
	}
	if opts.Date != "" {
		args = append(args, "-d", opts.Date)
	}
	return append(args, opts.Files...)
}
