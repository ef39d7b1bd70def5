package transfer

import (
	"fmt"
	"path"
	"strings"

	set "github.com/deckarep/golang-set/v2"
	"github.com/marcio-pessoa/kubectl-cp/entity"
)

// SummarizeDirectoryStructure computes the set of distinct parent
// directories of every entry in a flat listing. Paths are POSIX-style.
func SummarizeDirectoryStructure(entries []string) set.Set[string] {
	dirs := set.NewSet[string]()
	for _, entry := range entries {
		dirs.Add(path.Dir(entry))
	}
	return dirs
}

// SpliceDestinationPath maps one source entry to its destination path by
// locating the source root's base name within the entry's own path and
// joining the suffix starting there under the destination root. This
// preserves the tree's internal structure without a per-entry
// prefix-stripping pass.
//
// The substring search misbehaves if the root's base name recurs earlier
// in the entry path; enumeration always produces entry paths under the
// root, so the name is guaranteed present, but its first occurrence may
// not be the root's. A root of "." is the worst case: its base name is
// "." and matches the first dot of any filename ("a.txt" maps to
// "<dest>/.txt"), so callers should resolve "." to a real name first.
func SpliceDestinationPath(rootBase, entryPath, destRoot string) (string, error) {
	idx := strings.Index(entryPath, rootBase)
	if idx < 0 {
		return "", fmt.Errorf("entry %q does not contain transfer root name %q", entryPath, rootBase)
	}
	return path.Join(destRoot, entryPath[idx:]), nil
}

// buildDirectoryPlan translates the source-side entry listing into the
// destination directories that must exist before any file is written: each
// distinct parent directory of an entry, taken relative to the parent of
// the source root and joined under the destination root.
func buildDirectoryPlan(entries []string, sourceRoot, destRoot string) (entity.DirectoryPlan, error) {
	sourceRootParent := path.Dir(path.Clean(sourceRoot))
	sourceDirs := SummarizeDirectoryStructure(entries)
	// The root is itself a directory to recreate, so an empty source
	// directory still materializes on the destination side.
	sourceDirs.Add(path.Clean(sourceRoot))
	destDirs := set.NewSet[string]()
	var err error
	sourceDirs.Each(func(dir string) bool {
		relative, relErr := relativeToParent(sourceRootParent, dir)
		if relErr != nil {
			err = relErr
			return true
		}
		destDirs.Add(path.Join(destRoot, relative))
		return false
	})
	if err != nil {
		return entity.DirectoryPlan{}, err
	}
	return entity.DirectoryPlan{
		Entries:             entries,
		DirectoriesToCreate: destDirs,
	}, nil
}

// relativeToParent strips the source root's parent from dir. Directories
// outside that parent would silently truncate the mapping, so they fail
// loudly instead.
func relativeToParent(parent, dir string) (string, error) {
	if dir == parent {
		return ".", nil
	}
	if parent == "." {
		// Relative source roots have no parent prefix to strip.
		return dir, nil
	}
	prefix := parent
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	if !strings.HasPrefix(dir, prefix) {
		return "", fmt.Errorf("directory %q is outside transfer root parent %q", dir, parent)
	}
	return strings.TrimPrefix(dir, prefix), nil
}
