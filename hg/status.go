package hg

import (
	"fmt"
	"regexp"
	"strings"
)

// statusCodes are the change codes hg emits for tracked state. C only
// appears when clean files are requested with --all.
var statusCodes = []string{"A", "M", "!", "?", "R"}

// statusLine matches "<code><space><path>"; the path may itself contain
// spaces, so only the first space splits.
var statusLine = regexp.MustCompile(`^(.) (.*)$`)

// StatusOptions controls the shape of a Status result.
type StatusOptions struct {
	// Sparse omits codes with no files instead of mapping them to
	// empty lists.
	Sparse bool
	// All also lists clean files (hg status --all), adding the C code.
	All bool
}

// Status returns the working copy status as a change-code → file-list
// mapping. Unless opts.Sparse is set, every fixed code is present even
// when no file carries it. Codes outside the fixed set are accepted and
// inserted as encountered.
func (r *Repo) Status(opts StatusOptions) (map[string][]string, error) {
	args := []string{"status"}
	if opts.All {
		args = append(args, "-A")
	}
	out, err := r.run(args...)
	if err != nil {
		return nil, err
	}
	return parseStatus(out, opts)
}

// parseStatus groups status lines by change code.
func parseStatus(out string, opts StatusOptions) (map[string][]string, error) {
	changes := map[string][]string{}
	if !opts.Sparse {
		for _, code := range statusCodes {
			changes[code] = []string{}
		}
		if opts.All {
			changes["C"] = []string{}
		}
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return changes, nil
	}

	for _, line := range strings.Split(out, "\n") {
		match := statusLine.FindStringSubmatch(line)
		if match == nil {
			return nil, fmt.Errorf("unrecognized status line %q", line)
		}
		code, path := match[1], match[2]
		changes[code] = append(changes[code], path)
	}
	return changes, nil
}
