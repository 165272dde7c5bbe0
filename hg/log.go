package hg

import (
	"fmt"
	"strconv"
	"strings"
)

// LogOptions carries the optional arguments of the log command. Zero
// values are omitted from the invocation.
type LogOptions struct {
	Revision string
	Branch   string
	Limit    int
	Template string
}

// Log returns raw "hg log" output. Callers that want typed records
// should use Revision or Revisions instead.
func (r *Repo) Log(opts LogOptions) (string, error) {
	args := []string{"log"}
	if opts.Revision != "" {
		args = append(args, "-r", opts.Revision)
	}
	if opts.Branch != "" {
		args = append(args, "-b", opts.Branch)
	}
	if opts.Limit > 0 {
		args = append(args, "-l", strconv.Itoa(opts.Limit))
	}
	if opts.Template != "" {
		args = append(args, "--template", opts.Template)
	}
	return r.runRaw(args...)
}

// Revision returns the revision identified by ref as a typed record.
// ref may be a revision number, a node hash or a symbolic reference
// such as "tip".
func (r *Repo) Revision(ref string) (Revision, error) {
	out, err := r.Log(LogOptions{Revision: ref, Template: revLogTemplate})
	if err != nil {
		return Revision{}, err
	}
	revs, err := parseRevisions(out)
	if err != nil {
		return Revision{}, err
	}
	if len(revs) == 0 {
		return Revision{}, fmt.Errorf("no revision found for %q", ref)
	}
	return revs[0], nil
}

// RevisionAt returns the revision with the given local revision number.
func (r *Repo) RevisionAt(rev int) (Revision, error) {
	return r.Revision(strconv.Itoa(rev))
}

// Revisions returns the revisions in the inclusive range start:stop in
// ascending revision-number order. Empty endpoints default to the full
// history bounds ("0" and "tip").
func (r *Repo) Revisions(start, stop string) ([]Revision, error) {
	if start == "" {
		start = "0"
	}
	if stop == "" {
		stop = "tip"
	}
	out, err := r.Log(LogOptions{Revision: start + ":" + stop, Template: revLogTemplate})
	if err != nil {
		return nil, err
	}
	return parseRevisions(out)
}

// Heads returns the node identifiers of all open heads. With short set,
// the short form of the node hash is returned.
func (r *Repo) Heads(short bool) ([]string, error) {
	template := "{node}\n"
	if short {
		template = "{node|short}\n"
	}
	out, err := r.runRaw("heads", "--template", template)
	if err != nil {
		return nil, err
	}

	var heads []string
	for _, head := range strings.Split(out, "\n") {
		if head != "" {
			heads = append(heads, head)
		}
	}
	return heads, nil
}
