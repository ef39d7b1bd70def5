package transfer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeDirectoryStructure(t *testing.T) {
	dirs := SummarizeDirectoryStructure([]string{
		"/data/root",
		"/data/root/a.txt",
		"/data/root/sub/b.txt",
		"/data/root/sub/c.txt",
	})
	assert.ElementsMatch(t, []string{"/data", "/data/root", "/data/root/sub"}, dirs.ToSlice())
}

func TestSpliceDestinationPath(t *testing.T) {
	got, err := SpliceDestinationPath("root", "/data/root/a.txt", "out")
	require.NoError(t, err)
	assert.Equal(t, "out/root/a.txt", got)

	got, err = SpliceDestinationPath("root", "/data/root/sub/b.txt", "out")
	require.NoError(t, err)
	assert.Equal(t, "out/root/sub/b.txt", got)
}

func TestSpliceDestinationPath_RootNameMissing(t *testing.T) {
	_, err := SpliceDestinationPath("root", "/elsewhere/a.txt", "out")
	assert.Error(t, err)
}

func TestBuildDirectoryPlan(t *testing.T) {
	entries := []string{
		"/data/root",
		"/data/root/a.txt",
		"/data/root/sub/b.txt",
	}
	plan, err := buildDirectoryPlan(entries, "/data/root", "out")
	require.NoError(t, err)
	assert.Equal(t, entries, plan.Entries)
	assert.ElementsMatch(t, []string{"out", "out/root", "out/root/sub"},
		plan.DirectoriesToCreate.ToSlice())
	assert.Equal(t, []string{"out", "out/root", "out/root/sub"}, plan.SortedDirectories())
}

func TestBuildDirectoryPlan_EmptyDirectory(t *testing.T) {
	// The root-as-first-entry rule: even with no files, the root itself
	// must materialize at the destination.
	plan, err := buildDirectoryPlan([]string{"/data/empty"}, "/data/empty", "out")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"out", "out/empty"}, plan.DirectoriesToCreate.ToSlice())
}

func TestRelativeToParent(t *testing.T) {
	rel, err := relativeToParent("/data", "/data/root/sub")
	require.NoError(t, err)
	assert.Equal(t, "root/sub", rel)

	rel, err = relativeToParent("/data", "/data")
	require.NoError(t, err)
	assert.Equal(t, ".", rel)

	rel, err = relativeToParent(".", "out/sub")
	require.NoError(t, err)
	assert.Equal(t, "out/sub", rel)

	_, err = relativeToParent("/data", "/elsewhere/root")
	assert.Error(t, err)
}
