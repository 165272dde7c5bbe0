package hg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionPattern(t *testing.T) {
	match := versionPattern.FindStringSubmatch("Mercurial Distributed SCM (version 6.8.1)")
	require.NotNil(t, match)
	require.Equal(t, "6.8.1", match[1])
}
