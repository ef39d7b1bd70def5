package entity

import (
	"sort"

	set "github.com/deckarep/golang-set/v2"
)

// DirectoryPlan is the ephemeral result of planning one directory transfer:
// the ordered entries found on the source side and the set of destination
// directories that must exist before any file is written.
type DirectoryPlan struct {
	// Entries holds absolute source paths; the transfer root is always the
	// first entry so that an empty directory is still represented.
	Entries []string
	// DirectoriesToCreate holds destination directory paths, deduplicated.
	DirectoriesToCreate set.Set[string]
}

// SortedDirectories returns the destination directories in lexicographic
// order, which guarantees parents sort before their children.
func (p DirectoryPlan) SortedDirectories() []string {
	dirs := p.DirectoriesToCreate.ToSlice()
	sort.Strings(dirs)
	return dirs
}
