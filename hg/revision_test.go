package hg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRevision(t *testing.T) {
	t.Run("decodes a full record", func(t *testing.T) {
		line := `{"node":"1f2a3b4c5d6e","rev":"7","author":"test","branch":"feature","parents":"5:aaa111 6:bbb222","date":"2026-08-29 10:00 +0000","tags":"tip","desc":"fix the parser"}`

		rev, err := parseRevision(line)
		require.NoError(t, err)
		require.Equal(t, 7, rev.Rev)
		require.Equal(t, "1f2a3b4c5d6e", rev.Node)
		require.Equal(t, "test", rev.Author)
		require.Equal(t, "feature", rev.Branch)
		require.Equal(t, []int{5, 6}, rev.Parents)
		require.Equal(t, "2026-08-29 10:00 +0000", rev.Date)
		require.Equal(t, "tip", rev.Tags)
		require.Equal(t, "fix the parser", rev.Desc)
	})

	t.Run("defaults an empty branch to default", func(t *testing.T) {
		line := `{"node":"abc123","rev":"0","author":"test","branch":"","parents":"","date":"2026-08-29 10:00 +0000","tags":"tip","desc":"init"}`

		rev, err := parseRevision(line)
		require.NoError(t, err)
		require.Equal(t, "default", rev.Branch)
	})

	t.Run("defaults missing parents to the previous revision", func(t *testing.T) {
		line := `{"node":"abc123","rev":"4","author":"test","branch":"","parents":"","date":"2026-08-29 10:00 +0000","tags":"","desc":"change"}`

		rev, err := parseRevision(line)
		require.NoError(t, err)
		require.Equal(t, []int{3}, rev.Parents)
	})

	t.Run("keeps only the integer prefix of parent tokens", func(t *testing.T) {
		line := `{"node":"abc123","rev":"9","author":"test","branch":"","parents":"3:deadbeef 7:cafebabe","date":"","tags":"","desc":"merge"}`

		rev, err := parseRevision(line)
		require.NoError(t, err)
		require.Equal(t, []int{3, 7}, rev.Parents)
	})

	t.Run("round-trips adversarial percent-escaped text", func(t *testing.T) {
		// A description of a single closing brace and an author
		// containing a quote and a "desc=" substring must survive
		// the structural parse thanks to percent-encoding.
		line := `{"node":"abc123","rev":"1","author":"evil%22desc%3Dx","branch":"","parents":"","date":"","tags":"","desc":"%7D"}`

		rev, err := parseRevision(line)
		require.NoError(t, err)
		require.Equal(t, `evil"desc=x`, rev.Author)
		require.Equal(t, "}", rev.Desc)
	})

	t.Run("rejects a malformed record", func(t *testing.T) {
		_, err := parseRevision(`not json`)
		require.Error(t, err)
	})

	t.Run("rejects a non-numeric revision number", func(t *testing.T) {
		line := `{"node":"abc123","rev":"tip","author":"","branch":"","parents":"","date":"","tags":"","desc":""}`

		_, err := parseRevision(line)
		require.Error(t, err)
	})
}

func TestParseRevisions(t *testing.T) {
	t.Run("parses one record per line and drops the trailing segment", func(t *testing.T) {
		out := `{"node":"aaa","rev":"0","author":"test","branch":"","parents":"","date":"","tags":"","desc":"first"}` + "\n" +
			`{"node":"bbb","rev":"1","author":"test","branch":"","parents":"","date":"","tags":"tip","desc":"second"}` + "\n"

		revs, err := parseRevisions(out)
		require.NoError(t, err)
		require.Len(t, revs, 2)
		require.Equal(t, "first", revs[0].Desc)
		require.Equal(t, "second", revs[1].Desc)
		require.Equal(t, []int{-1}, revs[0].Parents)
	})

	t.Run("returns an empty slice for empty output", func(t *testing.T) {
		revs, err := parseRevisions("")
		require.NoError(t, err)
		require.Empty(t, revs)
	})
}

func TestRevisionEqual(t *testing.T) {
	t.Run("compares node only", func(t *testing.T) {
		a := Revision{Rev: 1, Node: "abc", Desc: "one"}
		b := Revision{Rev: 2, Node: "abc", Desc: "two"}
		c := Revision{Rev: 1, Node: "def", Desc: "one"}

		require.True(t, a.Equal(b))
		require.False(t, a.Equal(c))
	})
}
