package transfer

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/marcio-pessoa/kubectl-cp/kubectl"
)

// LocalEntry is one regular file discovered during a local tree walk. The
// relative path computes destination placement; the absolute path reads the
// source bytes.
type LocalEntry struct {
	RelativePath string
	AbsolutePath string
}

// EnumerateRemote lists every regular file under root inside the target's
// container with a single find invocation, tolerating arbitrary depth. The
// root itself is prepended as the first entry so that an empty directory is
// still represented.
func EnumerateRemote(ctx context.Context, runner *kubectl.Runner, target, root string) ([]string, error) {
	out, err := runner.Output(ctx, target, "find", root, "-type", "f")
	if err != nil {
		return nil, fmt.Errorf("couldn't list remote directory %s: %w", root, err)
	}
	entries := []string{path.Clean(root)}
	for _, line := range strings.Split(string(out), "\n") {
		if line == "" {
			continue
		}
		entries = append(entries, line)
	}
	return entries, nil
}

// EnumerateLocal walks the local directory tree exhaustively and returns
// every regular file. Symbolic links and other non-regular entries are
// skipped.
func EnumerateLocal(root string) ([]LocalEntry, error) {
	entries := make([]LocalEntry, 0, 64)
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		relativePath, relErr := filepath.Rel(root, p)
		if relErr != nil {
			return fmt.Errorf("couldn't comprehend path %q: %w", p, relErr)
		}
		entries = append(entries, LocalEntry{
			RelativePath: filepath.ToSlash(relativePath),
			AbsolutePath: p,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("couldn't scan directory %s: %w", root, err)
	}
	return entries, nil
}
