package transfer

import "fmt"

// NotFoundError reports that the source of a transfer does not exist on its
// side of the boundary.
type NotFoundError struct {
	Path   string
	Remote bool
}

func (e *NotFoundError) Error() string {
	side := "local"
	if e.Remote {
		side = "remote"
	}
	return fmt.Sprintf("%s path %q not found", side, e.Path)
}
