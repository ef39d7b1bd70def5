package entity

import "fmt"

// TransferRequest is the fully resolved description of one copy: which
// remote execution target is involved, the path on each side, the opaque
// arguments forwarded to kubectl and whether directory handling was asked
// for. The target/remotePath/localPath triple is fixed for the lifetime of
// an invocation; recursive sub-copies derive fresh requests per leaf entry
// instead of mutating the parent's fields.
type TransferRequest struct {
	Target         string
	RemotePath     string
	LocalPath      string
	RemoteExecArgs string
	Recursive      bool
}

// Leaf derives the request for a single leaf entry of a directory transfer.
func (r TransferRequest) Leaf(remotePath, localPath string) TransferRequest {
	return TransferRequest{
		Target:         r.Target,
		RemotePath:     remotePath,
		LocalPath:      localPath,
		RemoteExecArgs: r.RemoteExecArgs,
	}
}

func (r TransferRequest) String() string {
	return fmt.Sprintf("{target: %s, remote: %s, local: %s}", r.Target, r.RemotePath, r.LocalPath)
}
