package transfer

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"

	"github.com/marcio-pessoa/kubectl-cp/bytesutil"
	"github.com/marcio-pessoa/kubectl-cp/console"
	"github.com/marcio-pessoa/kubectl-cp/entity"
	"github.com/marcio-pessoa/kubectl-cp/kubectl"
	"github.com/marcio-pessoa/kubectl-cp/lib"
)

// Copier moves file bytes between the local filesystem and a remote
// target's container over the kubectl exec channel. A Copier holds no
// mutable transfer state; every call builds its own.
type Copier struct {
	runner *kubectl.Runner
	con    *console.Console
}

// NewCopier builds a Copier around an execution channel and a diagnostics
// handle.
func NewCopier(runner *kubectl.Runner, con *console.Console) *Copier {
	return &Copier{runner: runner, con: con}
}

// DownloadFile copies exactly one remote file to the local side. The local
// destination "." is shorthand for the remote file's base name in the
// current directory. The destination is created fresh (truncated), and the
// transfer itself is a single remote cat invocation.
func (c *Copier) DownloadFile(ctx context.Context, req entity.TransferRequest) error {
	exists, err := c.runner.Exists(ctx, req.Target, req.RemotePath)
	if err != nil {
		return fmt.Errorf("couldn't probe %s on %s: %w", req.RemotePath, req.Target, err)
	}
	if !exists {
		return &NotFoundError{Path: req.RemotePath, Remote: true}
	}
	localPath := req.LocalPath
	if localPath == "" || localPath == "." || localPath == "./" {
		localPath = path.Base(req.RemotePath)
	}
	localFile, err := os.Create(localPath)
	if err != nil {
		return fmt.Errorf("couldn't create local file %q: %w", localPath, err)
	}
	streamErr := c.runner.StreamTo(ctx, req.Target, localFile, "cat", req.RemotePath)
	closeErr := localFile.Close()
	if streamErr != nil {
		return fmt.Errorf("couldn't download %s from %s: %w", req.RemotePath, req.Target, streamErr)
	}
	if closeErr != nil {
		return fmt.Errorf("couldn't finish writing %q: %w", localPath, closeErr)
	}
	if info, statErr := os.Stat(localPath); statErr == nil {
		c.con.Infof("downloaded %s:%s to %s (%s)\n",
			req.Target, req.RemotePath, localPath, bytesutil.BinaryFormat(info.Size()))
	}
	return nil
}

// UploadFile copies exactly one local file into the target's container. The
// file is read fully into memory and streamed as the standard input of a
// single remote tee invocation, whose own stdout is discarded. A missing
// local file fails before any remote command is issued.
func (c *Copier) UploadFile(ctx context.Context, req entity.TransferRequest) error {
	if !lib.IsReadableFile(req.LocalPath) {
		return &NotFoundError{Path: req.LocalPath}
	}
	data, err := os.ReadFile(req.LocalPath)
	if err != nil {
		return fmt.Errorf("couldn't read local file %q: %w", req.LocalPath, err)
	}
	err = c.runner.RunWithInput(ctx, req.Target, bytes.NewReader(data), "tee", req.RemotePath)
	if err != nil {
		return fmt.Errorf("couldn't upload %q to %s:%s: %w", req.LocalPath, req.Target, req.RemotePath, err)
	}
	c.con.Infof("uploaded %s to %s:%s (%s)\n",
		req.LocalPath, req.Target, req.RemotePath, bytesutil.BinaryFormat(int64(len(data))))
	return nil
}
