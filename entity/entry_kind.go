package entity

// EntryKind is the classification of a remote path as inferred by the
// remote probe. It is only used to branch between single-file and directory
// handling and is never persisted.
type EntryKind int

const (
	KindUnknown EntryKind = iota
	KindFile
	KindDirectory
)

func (k EntryKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	default:
		return "unknown"
	}
}
