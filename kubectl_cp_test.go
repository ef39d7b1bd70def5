package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/marcio-pessoa/kubectl-cp/console"
	"github.com/marcio-pessoa/kubectl-cp/kubectl"
	"github.com/marcio-pessoa/kubectl-cp/pathspec"
	"github.com/marcio-pessoa/kubectl-cp/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// End-to-end runs against a fake kubectl that strips the kubectl-level
// arguments and executes the container command locally, so the full
// parse/resolve/probe/transfer pipeline exercises the real remote command
// surface with a temp directory standing in for the container.
const fakeKubectl = `#!/bin/sh
while [ $# -gt 0 ] && [ "$1" != "--" ]; do shift; done
shift
exec "$@"
`

func newEndToEnd(t *testing.T) (*kubectl.Runner, *console.Console) {
	t.Helper()
	con := console.New(console.LevelError, io.Discard, io.Discard)
	runner, err := kubectl.NewRunner("", con)
	require.NoError(t, err)
	shimPath := filepath.Join(t.TempDir(), "kubectl")
	require.NoError(t, os.WriteFile(shimPath, []byte(fakeKubectl), 0755))
	runner.Binary = shimPath
	return runner, con
}

func writeFile(t *testing.T, p, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
}

func TestRunCopy_DownloadFile(t *testing.T) {
	runner, con := newEndToEnd(t)
	remotePath := filepath.Join(t.TempDir(), "app.log")
	writeFile(t, remotePath, "log line\n")
	localPath := filepath.Join(t.TempDir(), "app.log")

	err := runCopy(context.Background(), runner, con,
		"my-pod:"+remotePath, localPath, "", false)
	require.NoError(t, err)
	content, err := os.ReadFile(localPath)
	require.NoError(t, err)
	assert.Equal(t, "log line\n", string(content))
}

func TestRunCopy_UploadFile(t *testing.T) {
	runner, con := newEndToEnd(t)
	localPath := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, localPath, "key: value\n")
	remotePath := filepath.Join(t.TempDir(), "config.yaml")

	err := runCopy(context.Background(), runner, con,
		localPath, "my-pod:"+remotePath, "", false)
	require.NoError(t, err)
	content, err := os.ReadFile(remotePath)
	require.NoError(t, err)
	assert.Equal(t, "key: value\n", string(content))
}

func TestRunCopy_DownloadDirectory(t *testing.T) {
	runner, con := newEndToEnd(t)
	remoteBase := t.TempDir()
	writeFile(t, filepath.Join(remoteBase, "payload", "a.txt"), "alpha")
	writeFile(t, filepath.Join(remoteBase, "payload", "sub", "b.txt"), "beta")
	localBase := filepath.Join(t.TempDir(), "out")

	err := runCopy(context.Background(), runner, con,
		"my-pod:"+filepath.Join(remoteBase, "payload"), localBase, "", true)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(localBase, "payload", "a.txt"))
	assert.FileExists(t, filepath.Join(localBase, "payload", "sub", "b.txt"))
}

func TestRunCopy_DownloadDirectoryWithoutRecursive(t *testing.T) {
	runner, con := newEndToEnd(t)
	remoteBase := t.TempDir()
	writeFile(t, filepath.Join(remoteBase, "payload", "a.txt"), "alpha")

	err := runCopy(context.Background(), runner, con,
		"my-pod:"+filepath.Join(remoteBase, "payload"), filepath.Join(t.TempDir(), "out"),
		"", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-r")
}

func TestRunCopy_UploadDirectory(t *testing.T) {
	runner, con := newEndToEnd(t)
	localBase := t.TempDir()
	writeFile(t, filepath.Join(localBase, "payload", "a.txt"), "alpha")
	remoteBase := filepath.Join(t.TempDir(), "dest")

	err := runCopy(context.Background(), runner, con,
		filepath.Join(localBase, "payload"), "my-pod:"+remoteBase, "", true)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(remoteBase, "payload", "a.txt"))
}

func TestRunCopy_UploadDirectoryWithoutRecursive(t *testing.T) {
	runner, con := newEndToEnd(t)
	localBase := t.TempDir()
	writeFile(t, filepath.Join(localBase, "payload", "a.txt"), "alpha")

	err := runCopy(context.Background(), runner, con,
		filepath.Join(localBase, "payload"), "my-pod:/tmp/dest", "", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-r")
}

func TestRunCopy_MissingRemoteSource(t *testing.T) {
	runner, con := newEndToEnd(t)
	err := runCopy(context.Background(), runner, con,
		"my-pod:/nonexistent/file.txt", filepath.Join(t.TempDir(), "out.txt"), "", false)
	var notFound *transfer.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.True(t, notFound.Remote)
}

func TestRunCopy_MissingLocalSource(t *testing.T) {
	runner, con := newEndToEnd(t)
	err := runCopy(context.Background(), runner, con,
		"/nonexistent/file.txt", "my-pod:/tmp/out.txt", "", false)
	var notFound *transfer.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.False(t, notFound.Remote)
}

func TestRunCopy_BothSidesQualified(t *testing.T) {
	runner, con := newEndToEnd(t)
	err := runCopy(context.Background(), runner, con,
		"pod-a:/tmp/a.txt", "pod-b:/tmp/b.txt", "", false)
	assert.ErrorIs(t, err, pathspec.ErrInvalidDirection)
}

func TestRunCopy_NeitherSideQualified(t *testing.T) {
	runner, con := newEndToEnd(t)
	err := runCopy(context.Background(), runner, con,
		"/tmp/a.txt", "/tmp/b.txt", "", false)
	assert.ErrorIs(t, err, pathspec.ErrInvalidDirection)
}

func TestRunCopy_TransportFailure(t *testing.T) {
	runner, con := newEndToEnd(t)
	runner.Binary = "/nonexistent/kubectl"
	err := runCopy(context.Background(), runner, con,
		"my-pod:/tmp/a.txt", filepath.Join(t.TempDir(), "a.txt"), "", false)
	var transportErr *kubectl.TransportError
	assert.ErrorAs(t, err, &transportErr)
}
