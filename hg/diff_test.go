package hg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDiff(t *testing.T) {
	t.Run("splits output into one entry per file header", func(t *testing.T) {
		out := "diff -r aaa111 -r bbb222 one.txt\n" +
			"--- a/one.txt\n" +
			"+++ b/one.txt\n" +
			"@@ -1,1 +1,1 @@\n" +
			"-old\n" +
			"+new\n" +
			"diff -r aaa111 -r bbb222 two.txt\n" +
			"--- a/two.txt\n" +
			"+++ b/two.txt\n" +
			"@@ -0,0 +1,1 @@\n" +
			"+added\n"

		diffs := parseDiff(out)
		require.Len(t, diffs, 2)
		require.Equal(t, "one.txt", diffs[0].Filename)
		require.Equal(t, "two.txt", diffs[1].Filename)

		// Every line after a header, the header included, belongs to
		// that entry.
		require.True(t, len(diffs[0].Diff) > 0)
		require.Contains(t, diffs[0].Diff, "diff -r aaa111 -r bbb222 one.txt\n")
		require.Contains(t, diffs[0].Diff, "+new\n")
		require.NotContains(t, diffs[0].Diff, "two.txt")
		require.Contains(t, diffs[1].Diff, "+added\n")
	})

	t.Run("returns no entries for empty output", func(t *testing.T) {
		require.Empty(t, parseDiff(""))
	})
}
