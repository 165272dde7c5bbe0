package hg

import (
	"context"
	"regexp"
	"strconv"
	"strings"
)

// changesetHeader matches the header lines of default-template log
// output, as printed by "hg merge -P".
var changesetHeader = regexp.MustCompile(`^changeset:\s+(\d+):\w+`)

// Merge merges the revision identified by reference into the working
// copy and returns the raw hg output.
func (r *Repo) Merge(ctx context.Context, reference string) (string, error) {
	return r.runner.Run(ctx, "merge", reference)
}

// MergePreview returns the revision numbers of all changesets that
// would be merged by Merge, without touching the working copy.
func (r *Repo) MergePreview(ctx context.Context, reference string) ([]int, error) {
	out, err := r.runner.RunRaw(ctx, "merge", "-P", reference)
	if err != nil {
		return nil, err
	}

	var revs []int
	for _, line := range strings.Split(out, "\n") {
		match := changesetHeader.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		rev, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		revs = append(revs, rev)
	}
	return revs, nil
}
