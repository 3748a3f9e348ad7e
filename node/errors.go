package node

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNoNode is returned when the addressed node does not exist, e.g. it was
	// removed concurrently between a listing and a follow-up call.
	ErrNoNode = errors.New("node does not exist")
	// ErrNodeExists is returned when creating a node that already exists.
	ErrNodeExists = errors.New("node already exists")
	// ErrNotEmpty is returned when deleting a node that still has children.
	ErrNotEmpty = errors.New("node has children")

	ErrModeConflict    = errors.New("persistent and ephemeral modes are mutually exclusive")
	ErrInvalidModeFlag = errors.New("invalid creation mode")
)

// PathError records a failed remote operation and the path it was issued on.
type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s `%s`: %v", e.Op, e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

func newPathError(op, path string, err error) error {
	if err == nil {
		return nil
	}

	return &PathError{Op: op, Path: path, Err: err}
}

// IsNoNode reports whether err, or any error it wraps, is ErrNoNode.
func IsNoNode(err error) bool {
	return errors.Is(err, ErrNoNode)
}
