package hg

import (
	"regexp"
	"strings"
)

// FileDiff is the unified diff for a single file, header line included.
type FileDiff struct {
	Filename string
	Diff     string
}

// diffHeader matches the "diff -r xxx -r yyy path" line that starts the
// diff block for one file. The final token is the filename.
var diffHeader = regexp.MustCompile(`^diff .* (\S+)$`)

// Diff returns the per-file diffs between two revisions as reported by
// "hg diff". Either revision may be empty to diff against the working
// copy; filenames restricts the diff to the named files.
func (r *Repo) Diff(revA, revB string, filenames ...string) ([]FileDiff, error) {
	args := []string{"diff"}
	for _, rev := range []string{revA, revB} {
		if rev != "" {
			args = append(args, "-r", rev)
		}
	}
	args = append(args, filenames...)

	out, err := r.runRaw(args...)
	if err != nil {
		return nil, err
	}
	return parseDiff(out), nil
}

// parseDiff splits raw diff output into per-file entries. A header line
// opens a new entry; every line up to the next header belongs to the
// current one. Entries keep the order the headers appear in.
func parseDiff(out string) []FileDiff {
	var diffs []FileDiff
	if out == "" {
		return diffs
	}

	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		if match := diffHeader.FindStringSubmatch(line); match != nil {
			diffs = append(diffs, FileDiff{Filename: match[1]})
		}
		if len(diffs) == 0 {
			continue
		}
		diffs[len(diffs)-1].Diff += line + "\n"
	}
	return diffs
}
