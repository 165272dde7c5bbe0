package hg

import (
	"strings"
)

// Bookmark is a movable named pointer to a revision. Location has the
// shape "rev:hash". At most one bookmark is active in a working copy.
type Bookmark struct {
	Active   bool
	Name     string
	Location string
}

// BookmarkOptions carries the optional flags shared by the bookmark
// mutation commands.
type BookmarkOptions struct {
	Revision string
	Force    bool
}

// Bookmarks returns all bookmarks of the repository.
func (r *Repo) Bookmarks() ([]Bookmark, error) {
	out, err := r.runRaw("bookmarks")
	if err != nil {
		return nil, err
	}
	return parseBookmarks(out), nil
}

// parseBookmarks decodes "hg bookmarks" output. Listing lines are
// indented; the active bookmark carries a "*" marker before its name.
// A repository without bookmarks prints "no bookmarks set", which is
// not indented and yields an empty list.
func parseBookmarks(out string) []Bookmark {
	var bookmarks []Bookmark
	if !strings.HasPrefix(out, " ") {
		return bookmarks
	}

	for _, line := range strings.Split(out, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		active := false
		if strings.HasPrefix(trimmed, "*") {
			active = true
			trimmed = strings.TrimSpace(trimmed[1:])
		}

		fields := strings.Fields(trimmed)
		if len(fields) < 2 {
			continue
		}
		bookmarks = append(bookmarks, Bookmark{
			Active:   active,
			Name:     fields[0],
			Location: fields[1],
		})
	}
	return bookmarks
}

// CreateBookmark creates a bookmark and returns the raw hg output.
func (r *Repo) CreateBookmark(name string, opts BookmarkOptions) (string, error) {
	return r.run(append(bookmarkArgs(opts), name)...)
}

// DeleteBookmark deletes a bookmark and returns the raw hg output.
func (r *Repo) DeleteBookmark(name string, opts BookmarkOptions) (string, error) {
	return r.run(append(bookmarkArgs(opts), "--delete", name)...)
}

// RenameBookmark renames a bookmark and returns the raw hg output.
func (r *Repo) RenameBookmark(name, newName string, opts BookmarkOptions) (string, error) {
	return r.run(append(bookmarkArgs(opts), "--rename", name, newName)...)
}

// DeactivateBookmark makes a bookmark inactive and returns the raw hg
// output. With an empty name the currently active bookmark is
// deactivated.
func (r *Repo) DeactivateBookmark(name string, opts BookmarkOptions) (string, error) {
	args := append(bookmarkArgs(opts), "--inactive")
	if name != "" {
		args = append(args, name)
	}
	return r.run(args...)
}

// bookmarkArgs builds the shared leading arguments for bookmark
// commands. Flag values are only appended when set.
func bookmarkArgs(opts BookmarkOptions) []string {
	args := []string{"bookmarks"}
	if opts.Force {
		args = append(args, "--force")
	}
	if opts.Revision != "" {
		args = append(args, "--rev", opts.Revision)
	}
	return args
}
