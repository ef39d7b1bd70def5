package pathspec

import (
	"errors"
	"strings"
)

// PathSpec is the parsed form of a user-supplied path argument, split into
// an optional remote-target qualifier and a filesystem path. A PathSpec is
// never mutated after construction.
type PathSpec struct {
	// Target is the remote execution target (e.g. a pod name), or empty
	// when the argument named a plain local path.
	Target string
	Path   string
}

// Qualified reports whether the spec carries a remote-target qualifier.
func (s PathSpec) Qualified() bool {
	return s.Target != ""
}

// Parse splits a raw argument on the first ":" only. Everything after the
// first colon, including further colons, belongs to the path. Parse never
// validates that the path exists.
func Parse(raw string) PathSpec {
	colonIdx := strings.Index(raw, ":")
	if colonIdx < 0 {
		return PathSpec{Path: raw}
	}
	return PathSpec{
		Target: raw[:colonIdx],
		Path:   raw[colonIdx+1:],
	}
}

// Direction says whether a run copies out of the remote target (download),
// into it (upload), or is an invalid combination. It is always recomputed
// from the source/destination pair, never stored.
type Direction int

const (
	Invalid Direction = iota
	Download
	Upload
)

func (d Direction) String() string {
	switch d {
	case Download:
		return "download"
	case Upload:
		return "upload"
	default:
		return "invalid"
	}
}

// ErrInvalidDirection is returned when neither or both arguments carry a
// target qualifier. When both are qualified there is no way to tell which
// side is meant to be remote, so the ambiguity is an explicit error rather
// than a silent preference.
var ErrInvalidDirection = errors.New(
	"exactly one of source and destination must be a remote target:path")

// Resolved is the effective (target, remote path, local path) triple for
// one run.
type Resolved struct {
	Target     string
	RemotePath string
	LocalPath  string
}

// Resolve decides the transfer direction for a source/destination pair and
// derives the effective triple. Download iff exactly the source is
// qualified, Upload iff exactly the destination is qualified; any other
// combination is invalid.
func Resolve(src, dst PathSpec) (Direction, Resolved, error) {
	switch {
	case src.Qualified() && !dst.Qualified():
		return Download, Resolved{
			Target:     src.Target,
			RemotePath: src.Path,
			LocalPath:  dst.Path,
		}, nil
	case dst.Qualified() && !src.Qualified():
		return Upload, Resolved{
			Target:     dst.Target,
			RemotePath: dst.Path,
			LocalPath:  src.Path,
		}, nil
	default:
		return Invalid, Resolved{}, ErrInvalidDirection
	}
}
