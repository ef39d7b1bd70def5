package main

import (
	"context"
	"fmt"

	"github.com/marcio-pessoa/kubectl-cp/console"
	"github.com/marcio-pessoa/kubectl-cp/entity"
	"github.com/marcio-pessoa/kubectl-cp/kubectl"
	"github.com/marcio-pessoa/kubectl-cp/lib"
	"github.com/marcio-pessoa/kubectl-cp/pathspec"
	"github.com/marcio-pessoa/kubectl-cp/transfer"
)

const (
	programName    = "kubectl-cp"
	programVersion = "0.3.0"
	programDate    = "2026-06-02"
)

// runCopy is the whole copy pipeline for one invocation: parse both path
// arguments, resolve the transfer direction, then dispatch to the file or
// directory flow for that direction.
func runCopy(ctx context.Context, runner *kubectl.Runner, con *console.Console,
	srcRaw, dstRaw, kubectlArgs string, recursive bool) error {
	direction, resolved, err := pathspec.Resolve(pathspec.Parse(srcRaw), pathspec.Parse(dstRaw))
	if err != nil {
		return err
	}
	req := entity.TransferRequest{
		Target:         resolved.Target,
		RemotePath:     resolved.RemotePath,
		LocalPath:      resolved.LocalPath,
		RemoteExecArgs: kubectlArgs,
		Recursive:      recursive,
	}
	con.Debugf("resolved %s of %s\n", direction, req)
	copier := transfer.NewCopier(runner, con)
	if direction == pathspec.Download {
		return runDownload(ctx, runner, copier, req)
	}
	return runUpload(ctx, copier, req)
}

// runDownload probes the remote path first: a missing path fails before any
// bytes move, a plain file goes through the single-file flow, and a
// directory requires the recursive flag.
func runDownload(ctx context.Context, runner *kubectl.Runner, copier *transfer.Copier,
	req entity.TransferRequest) error {
	exists, err := runner.Exists(ctx, req.Target, req.RemotePath)
	if err != nil {
		return fmt.Errorf("couldn't probe %s on %s: %w", req.RemotePath, req.Target, err)
	}
	if !exists {
		return &transfer.NotFoundError{Path: req.RemotePath, Remote: true}
	}
	kind, err := runner.Classify(ctx, req.Target, req.RemotePath)
	if err != nil {
		return fmt.Errorf("couldn't classify %s on %s: %w", req.RemotePath, req.Target, err)
	}
	if kind == entity.KindDirectory {
		if !req.Recursive {
			return fmt.Errorf("%s:%s is a directory (pass -r to copy directories)",
				req.Target, req.RemotePath)
		}
		return copier.DownloadDirectory(ctx, req)
	}
	return copier.DownloadFile(ctx, req)
}

// runUpload inspects the local source: directories require the recursive
// flag, and a missing source fails without issuing any remote command.
func runUpload(ctx context.Context, copier *transfer.Copier, req entity.TransferRequest) error {
	switch {
	case lib.IsReadableDirectory(req.LocalPath):
		if !req.Recursive {
			return fmt.Errorf("%s is a directory (pass -r to copy directories)", req.LocalPath)
		}
		return copier.UploadDirectory(ctx, req)
	case lib.IsReadableFile(req.LocalPath):
		return copier.UploadFile(ctx, req)
	default:
		return &transfer.NotFoundError{Path: req.LocalPath}
	}
}
