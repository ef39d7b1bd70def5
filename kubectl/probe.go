package kubectl

import (
	"context"
	"errors"
	"io"

	"github.com/marcio-pessoa/kubectl-cp/entity"
)

// The probe infers existence and kind of a remote path purely from the side
// effects of shell commands, because no agent runs inside the container.
// The only remote-side requirements are a POSIX shell, cat, tee, find and
// mkdir.

// Exists reports whether path names a plain file or a directory inside the
// target's container. A transport failure propagates as an error.
func (r *Runner) Exists(ctx context.Context, target, path string) (bool, error) {
	err := r.Run(ctx, target, "sh", "-c", `[ -f "$1" ] || [ -d "$1" ]`, "sh", path)
	if err == nil {
		return true, nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return false, nil
	}
	return false, err
}

// Classify infers the kind of an existing remote path by attempting to read
// it as a byte stream: a successful cat means a plain file, a remote-side
// read failure means directory handling is required. Transport failures are
// kept distinct and never reclassified.
//
// The inference is indirect, ambiguity included: a file that exists
// but cannot be read (e.g. permission denied) classifies as a directory,
// because the strategy never verifies directoriness directly.
//
// Classifying a plain file streams its entire content across the channel
// just to discard it, so a download reads the file twice. TODO: hand the
// classify stream to the download path so single files cross only once.
func (r *Runner) Classify(ctx context.Context, target, path string) (entity.EntryKind, error) {
	err := r.StreamTo(ctx, target, io.Discard, "cat", path)
	if err == nil {
		return entity.KindFile, nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return entity.KindDirectory, nil
	}
	return entity.KindUnknown, err
}
