package hg

import (
	"fmt"
	"regexp"
	"strings"
)

// tagLine matches "<tag name>   <rev>:<hash>"; the non-greedy name group
// ends at the last non-space before the version token, so tag names may
// contain spaces.
var tagLine = regexp.MustCompile(`^(.+\S)\s+(\d+):(\w+)$`)

// Tag adds one or more tags to the current revision, or to the revision
// named by rev when non-empty.
func (r *Repo) Tag(rev string, names ...string) error {
	args := append([]string{"tag"}, names...)
	if rev != "" {
		args = append(args, "-r", rev)
	}
	_, err := r.run(args...)
	return err
}

// Tags returns all tags of the repository as a tag → short-hash mapping.
func (r *Repo) Tags() (map[string]string, error) {
	out, err := r.run("tags")
	if err != nil {
		return nil, err
	}
	return parseTags(out)
}

// parseTags decodes "hg tags" output, one tag per line.
func parseTags(out string) (map[string]string, error) {
	tags := map[string]string{}
	if out == "" {
		return tags, nil
	}
	for _, line := range strings.Split(out, "\n") {
		match := tagLine.FindStringSubmatch(line)
		if match == nil {
			return nil, fmt.Errorf("unrecognized tag line %q", line)
		}
		tags[match[1]] = match[3]
	}
	return tags, nil
}
