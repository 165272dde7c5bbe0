package hg

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// revLogTemplate renders one revision per line as a JSON object. Author
// and description are free text and may contain quotes, braces or
// newlines, so both are percent-escaped by hg and decoded after the
// structural parse. This exact string is the wire contract with hg;
// changing a field name or escape filter breaks parseRevision.
const revLogTemplate = "\\{\"node\":\"{node|short}\",\"rev\":\"{rev}\"," +
	"\"author\":\"{author|urlescape}\",\"branch\":\"{branches}\"," +
	"\"parents\":\"{parents}\",\"date\":\"{date|isodate}\"," +
	"\"tags\":\"{tags}\",\"desc\":\"{desc|urlescape}\"}\n"

// Revision is one immutable point in repository history. Two Revisions
// refer to the same changeset iff their Node values are equal; all other
// fields are display data.
type Revision struct {
	Rev     int
	Node    string
	Author  string
	Branch  string
	Parents []int
	Date    string
	Tags    string
	Desc    string
}

// Equal reports whether r and other identify the same changeset.
func (r Revision) Equal(other Revision) bool {
	return r.Node == other.Node
}

// revisionRecord mirrors one line of revLogTemplate output. Every field
// arrives as a string; typed values are derived in parseRevision.
type revisionRecord struct {
	Node    string `json:"node"`
	Rev     string `json:"rev"`
	Author  string `json:"author"`
	Branch  string `json:"branch"`
	Parents string `json:"parents"`
	Date    string `json:"date"`
	Tags    string `json:"tags"`
	Desc    string `json:"desc"`
}

// parseRevision decodes a single revLogTemplate line into a Revision.
func parseRevision(line string) (Revision, error) {
	var rec revisionRecord
	if err := json.Unmarshal([]byte(line), &rec); err != nil {
		return Revision{}, fmt.Errorf("failed to parse revision record %q: %w", line, err)
	}

	author, err := url.PathUnescape(rec.Author)
	if err != nil {
		return Revision{}, fmt.Errorf("failed to decode author %q: %w", rec.Author, err)
	}
	desc, err := url.PathUnescape(rec.Desc)
	if err != nil {
		return Revision{}, fmt.Errorf("failed to decode description %q: %w", rec.Desc, err)
	}

	rev, err := strconv.Atoi(rec.Rev)
	if err != nil {
		return Revision{}, fmt.Errorf("invalid revision number %q: %w", rec.Rev, err)
	}

	branch := rec.Branch
	if branch == "" {
		branch = "default"
	}

	parents, err := parseParents(rec.Parents, rev)
	if err != nil {
		return Revision{}, err
	}

	return Revision{
		Rev:     rev,
		Node:    rec.Node,
		Author:  author,
		Branch:  branch,
		Parents: parents,
		Date:    rec.Date,
		Tags:    rec.Tags,
		Desc:    desc,
	}, nil
}

// parseParents turns the space-separated "rev:hash" tokens hg prints for
// non-trivial parents into revision numbers. hg leaves the field empty
// when the only parent is the previous revision, so an empty field means
// [rev - 1].
func parseParents(field string, rev int) ([]int, error) {
	if field == "" {
		return []int{rev - 1}, nil
	}
	tokens := strings.Fields(field)
	parents := make([]int, 0, len(tokens))
	for _, token := range tokens {
		numPart, _, _ := strings.Cut(token, ":")
		parent, err := strconv.Atoi(numPart)
		if err != nil {
			return nil, fmt.Errorf("invalid parent token %q: %w", token, err)
		}
		parents = append(parents, parent)
	}
	return parents, nil
}

// parseRevisions decodes multi-line revLogTemplate output, one Revision
// per line, dropping the trailing empty segment after the final newline.
func parseRevisions(out string) ([]Revision, error) {
	lines := strings.Split(out, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	revs := make([]Revision, 0, len(lines))
	for _, line := range lines {
		rev, err := parseRevision(line)
		if err != nil {
			return nil, err
		}
		revs = append(revs, rev)
	}
	return revs, nil
}
