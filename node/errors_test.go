package node_test

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"

	"github.com/0glabs/zk-cli/node"
	"gotest.tools/assert"
)

func extractPathError(err error) *node.PathError {
	var pathError *node.PathError
	if errors.As(err, &pathError) {
		return pathError
	}
	return nil
}

func TestErrorAs(t *testing.T) {
	err := fmt.Errorf("123")
	assert.Equal(t, extractPathError(err) == nil, true)
	err = &node.PathError{
		Op:   "delete",
		Path: "/a/b",
		Err:  node.ErrNotEmpty,
	}
	// compared by identity, the wrapped sentinel is not comparable field by field
	assert.Equal(t, extractPathError(errors.WithMessage(err, "failed to delete")) == err, true)
	assert.Equal(t, extractPathError(errors.WithMessage(errors.WithMessage(err, "failed to delete child"), "Failed to delete tree")) == err, true)
	assert.Equal(t, extractPathError(err).Path, "/a/b")
	assert.Assert(t, errors.Is(extractPathError(err), node.ErrNotEmpty))
}

func TestIsNoNode(t *testing.T) {
	err := &node.PathError{Op: "stat", Path: "/x", Err: node.ErrNoNode}
	assert.Equal(t, node.IsNoNode(err), true)
	assert.Equal(t, node.IsNoNode(errors.WithMessage(err, "failed to stat")), true)
	assert.Equal(t, node.IsNoNode(&node.PathError{Op: "stat", Path: "/x", Err: node.ErrNotEmpty}), false)
	assert.Equal(t, node.IsNoNode(nil), false)
	assert.ErrorContains(t, err, "/x")
}
