package namespace

import (
	"sort"
	"strings"
	"time"

	"github.com/0glabs/zk-cli/common"
	"github.com/0glabs/zk-cli/common/util"
	"github.com/0glabs/zk-cli/node"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const defaultProgressInterval = 5 * time.Second

// DeleterOption tunes how deletion reacts to a namespace changing under it.
type DeleterOption struct {
	// Strict fails when a descendant is already gone instead of treating it
	// as deleted. The target itself must always exist.
	Strict bool
}

// Deleter removes nodes and subtrees. Deletion of a subtree is best effort:
// nodes removed before a failure stay removed.
type Deleter struct {
	client node.Client
	option DeleterOption
	logger *logrus.Logger
}

// NewDeleter creates a deleter acting through client.
func NewDeleter(client node.Client, option DeleterOption, opts ...common.LogOption) *Deleter {
	return &Deleter{
		client: client,
		option: option,
		logger: common.NewLogger(opts...),
	}
}

// Delete removes a single node, which must not have children.
func (d *Deleter) Delete(path string) error {
	if err := d.client.Delete(path); err != nil {
		return errors.WithMessagef(err, "failed to delete %v", path)
	}

	return nil
}

// DeleteTree removes path and all of its descendants, children before their
// parent.
func (d *Deleter) DeleteTree(path string) error {
	type frame struct {
		path     string
		expanded bool
	}

	reminder := util.NewReminder(d.logger, defaultProgressInterval)
	stack := []*frame{{path: path}}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		isTarget := len(stack) == 1

		if !current.expanded {
			current.expanded = true

			stat, err := d.client.Stat(current.path)
			if err != nil {
				if d.vanished(err, isTarget) {
					stack = stack[:len(stack)-1]
					continue
				}
				return errors.WithMessagef(err, "failed to stat %v", current.path)
			}

			if !stat.HasChildren() {
				continue
			}

			names, err := d.client.Children(current.path)
			if err != nil {
				if d.vanished(err, isTarget) {
					stack = stack[:len(stack)-1]
					continue
				}
				return errors.WithMessagef(err, "failed to list children of %v", current.path)
			}

			// pushed in reverse so that children are removed in name order
			sort.Sort(sort.Reverse(sort.StringSlice(names)))
			for _, name := range names {
				stack = append(stack, &frame{path: node.JoinPath(current.path, name)})
			}
			continue
		}

		stack = stack[:len(stack)-1]

		if err := d.client.Delete(current.path); err != nil {
			if d.vanished(err, isTarget) {
				continue
			}
			return errors.WithMessagef(err, "failed to delete %v", current.path)
		}

		reminder.TickWith("Node deleted", "path", current.path)
	}

	return nil
}

// vanished reports whether err means a descendant was removed by someone else
// and may be considered deleted.
func (d *Deleter) vanished(err error, isTarget bool) bool {
	if isTarget || d.option.Strict || !node.IsNoNode(err) {
		return false
	}

	d.logger.WithError(err).Debug("Node already deleted")

	return true
}

// DeleteMany deletes every path in turn. Failures are logged with their path
// and do not stop the remaining deletions. A path that is gone because an
// earlier path of the same call covered it counts as deleted. It returns the
// number of paths that could not be deleted.
func (d *Deleter) DeleteMany(paths []string, recursive bool) int {
	var (
		failed  int
		deleted []string
	)

	for _, path := range paths {
		var err error
		if recursive {
			err = d.DeleteTree(path)
		} else {
			err = d.Delete(path)
		}

		if err != nil && node.IsNoNode(err) && coveredBy(path, deleted) {
			d.logger.WithField("path", path).Debug("Node already deleted by a previous path")
			continue
		}

		if err != nil {
			failed++
			d.logger.WithError(err).WithField("path", path).Error("Failed to delete node")
			continue
		}

		deleted = append(deleted, path)
		d.logger.WithField("path", path).Info("Deleted")
	}

	return failed
}

// coveredBy reports whether path equals or lies under one of roots.
func coveredBy(path string, roots []string) bool {
	for _, root := range roots {
		if path == root || root == node.RootPath || strings.HasPrefix(path, root+node.PathSeparator) {
			return true
		}
	}

	return false
}
