package transfer

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/marcio-pessoa/kubectl-cp/entity"
	"github.com/marcio-pessoa/kubectl-cp/lib"
)

// Directory transfers run through a fixed sequence: enumerate the source
// tree, plan the destination directories, create every one of them, then
// transfer each leaf file. Directories must exist before the files inside
// them are streamed, so the create phase always completes before the first
// file moves. Any failure aborts the remaining work; there is no partial
// resume.

// DownloadDirectory recreates a remote directory tree on the local side.
func (c *Copier) DownloadDirectory(ctx context.Context, req entity.TransferRequest) error {
	remoteRoot := path.Clean(req.RemotePath)
	exists, err := c.runner.Exists(ctx, req.Target, remoteRoot)
	if err != nil {
		return fmt.Errorf("couldn't probe %s on %s: %w", remoteRoot, req.Target, err)
	}
	if !exists {
		return &NotFoundError{Path: remoteRoot, Remote: true}
	}

	entries, err := EnumerateRemote(ctx, c.runner, req.Target, remoteRoot)
	if err != nil {
		return err
	}
	plan, err := buildDirectoryPlan(entries, remoteRoot, req.LocalPath)
	if err != nil {
		return err
	}
	c.con.Debugf("downloading %d entries into %d directories\n",
		len(plan.Entries)-1, plan.DirectoriesToCreate.Cardinality())

	for _, dir := range plan.SortedDirectories() {
		if mkdirErr := os.MkdirAll(filepath.FromSlash(dir), 0755); mkdirErr != nil {
			return fmt.Errorf("couldn't create local directory %q: %w", dir, mkdirErr)
		}
	}

	rootBase := path.Base(remoteRoot)
	for _, entry := range plan.Entries[1:] {
		localPath, spliceErr := SpliceDestinationPath(rootBase, entry, req.LocalPath)
		if spliceErr != nil {
			return spliceErr
		}
		if fileErr := c.DownloadFile(ctx, req.Leaf(entry, localPath)); fileErr != nil {
			return fileErr
		}
	}
	return nil
}

// UploadDirectory recreates a local directory tree inside the target's
// container. Destination directories are created remotely with one
// idempotent "mkdir -p" per distinct directory.
func (c *Copier) UploadDirectory(ctx context.Context, req entity.TransferRequest) error {
	localRoot := filepath.Clean(req.LocalPath)
	if !lib.IsReadableDirectory(localRoot) {
		return &NotFoundError{Path: localRoot}
	}

	files, err := EnumerateLocal(localRoot)
	if err != nil {
		return err
	}
	slashRoot := filepath.ToSlash(localRoot)
	entries := make([]string, 0, len(files)+1)
	entries = append(entries, slashRoot)
	for _, file := range files {
		entries = append(entries, path.Join(slashRoot, file.RelativePath))
	}
	plan, err := buildDirectoryPlan(entries, slashRoot, req.RemotePath)
	if err != nil {
		return err
	}
	c.con.Debugf("uploading %d files into %d directories\n",
		len(files), plan.DirectoriesToCreate.Cardinality())

	for _, dir := range plan.SortedDirectories() {
		if mkdirErr := c.runner.Run(ctx, req.Target, "mkdir", "-p", dir); mkdirErr != nil {
			return fmt.Errorf("couldn't create remote directory %q on %s: %w", dir, req.Target, mkdirErr)
		}
	}

	rootBase := path.Base(slashRoot)
	for _, file := range files {
		remotePath, spliceErr := SpliceDestinationPath(rootBase,
			path.Join(slashRoot, file.RelativePath), req.RemotePath)
		if spliceErr != nil {
			return spliceErr
		}
		if fileErr := c.UploadFile(ctx, req.Leaf(remotePath, file.AbsolutePath)); fileErr != nil {
			return fileErr
		}
	}
	return nil
}
