package namespace

import (
	"github.com/0glabs/zk-cli/common"
	"github.com/0glabs/zk-cli/node"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Writer creates nodes and replaces their payload. Nodes are always created
// with node.OpenACL.
type Writer struct {
	client node.Client
	logger *logrus.Logger
}

// NewWriter creates a writer acting through client.
func NewWriter(client node.Client, opts ...common.LogOption) *Writer {
	return &Writer{
		client: client,
		logger: common.NewLogger(opts...),
	}
}

// Write replaces the payload of path. When the node does not exist it is
// created as persistent if force is set, otherwise an error wrapping
// node.ErrNoNode is returned.
func (w *Writer) Write(path string, content []byte, force bool) error {
	err := w.client.Set(path, content)
	if err == nil {
		return nil
	}

	if !node.IsNoNode(err) || !force {
		return errors.WithMessagef(err, "failed to write %v", path)
	}

	w.logger.WithField("path", path).Info("Node does not exist, creating it")

	if _, err = w.client.Create(path, content, node.OpenACL, node.ModePersistent); err != nil {
		return errors.WithMessagef(err, "failed to create %v", path)
	}

	return nil
}

// Create resolves flags to a creation mode and creates path with content.
// It returns the path assigned by the store, which carries a suffix in
// sequential modes. Conflicting flags fail before any remote call.
func (w *Writer) Create(path string, content []byte, flags []node.ModeFlag) (string, error) {
	mode, err := node.ResolveCreateMode(flags)
	if err != nil {
		return "", err
	}

	created, err := w.client.Create(path, content, node.OpenACL, mode)
	if err != nil {
		return "", errors.WithMessagef(err, "failed to create %v as %v", path, mode)
	}

	w.logger.WithFields(logrus.Fields{
		"path": created,
		"mode": mode,
	}).Info("Node created")

	return created, nil
}
