package namespace

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/0glabs/zk-cli/common"
	"github.com/0glabs/zk-cli/node"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Indent is printed once per depth level in front of tree entries.
const Indent = "  "

// Entry is a child name along with the stat taken while listing it.
type Entry struct {
	Name string
	Stat *node.Stat
}

// WalkFunc is called for every node visited by Walker.Walk, the root first
// at depth 0. The stat is the snapshot taken just before the call.
type WalkFunc func(path string, depth int, stat *node.Stat) error

// Walker enumerates the namespace in a deterministic order. Children that
// disappear between being listed and being visited are skipped.
type Walker struct {
	client    node.Client
	formatter Formatter
	logger    *logrus.Logger
}

// NewWalker creates a walker reading through client.
func NewWalker(client node.Client, formatter Formatter, opts ...common.LogOption) *Walker {
	return &Walker{
		client:    client,
		formatter: formatter,
		logger:    common.NewLogger(opts...),
	}
}

// sortedChildren lists the children of path in byte-wise order.
func (w *Walker) sortedChildren(path string) ([]string, error) {
	names, err := w.client.Children(path)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to list children of %v", path)
	}

	sort.Strings(names)

	return names, nil
}

// statChild fetches the stat of a listed child. It returns a nil stat and no
// error when the child has been removed in the meantime.
func (w *Walker) statChild(path string) (*node.Stat, error) {
	stat, err := w.client.Stat(path)
	if err == nil {
		return stat, nil
	}

	if node.IsNoNode(err) {
		w.logger.WithField("path", path).Warn("Node vanished after listing, skipped")
		return nil, nil
	}

	return nil, errors.WithMessagef(err, "failed to stat %v", path)
}

// List returns the direct children of path sorted by name.
func (w *Walker) List(path string) ([]Entry, error) {
	names, err := w.sortedChildren(path)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		stat, err := w.statChild(node.JoinPath(path, name))
		if err != nil {
			return nil, err
		}
		if stat == nil {
			continue
		}
		entries = append(entries, Entry{Name: name, Stat: stat})
	}

	return entries, nil
}

// Walk visits root and its descendants depth first in pre-order, siblings in
// name order. A node is descended into only if its stat reports children.
func (w *Walker) Walk(root string, fn WalkFunc) error {
	stat, err := w.client.Stat(root)
	if err != nil {
		return errors.WithMessagef(err, "failed to stat %v", root)
	}

	if err = fn(root, 0, stat); err != nil {
		return err
	}

	if !stat.HasChildren() {
		return nil
	}

	names, err := w.sortedChildren(root)
	if err != nil {
		return err
	}

	type frame struct {
		path  string
		depth int
	}

	// pushed in reverse so that the smallest name is popped first
	var stack []frame
	push := func(parent string, names []string, depth int) {
		for i := len(names) - 1; i >= 0; i-- {
			stack = append(stack, frame{node.JoinPath(parent, names[i]), depth})
		}
	}
	push(root, names, 1)

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		stat, err := w.statChild(current.path)
		if err != nil {
			return err
		}
		if stat == nil {
			continue
		}

		if err = fn(current.path, current.depth, stat); err != nil {
			return err
		}

		if !stat.HasChildren() {
			continue
		}

		names, err := w.sortedChildren(current.path)
		if node.IsNoNode(err) {
			w.logger.WithField("path", current.path).Warn("Node vanished before listing its children, skipped")
			continue
		}
		if err != nil {
			return err
		}

		push(current.path, names, current.depth+1)
	}

	return nil
}

// PrintTree writes root and its descendants to out, one node per line,
// indented by depth.
func (w *Walker) PrintTree(out io.Writer, root string) error {
	return w.Walk(root, func(path string, depth int, stat *node.Stat) error {
		name := path
		if depth > 0 {
			name = node.BaseName(path)
		}

		_, err := fmt.Fprintf(out, "%s%s\n", strings.Repeat(Indent, depth), w.formatter.Render(name, stat))
		return err
	})
}

// PrintList writes the rendered children of path to out on a single line.
func (w *Walker) PrintList(out io.Writer, path string) error {
	entries, err := w.List(path)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if _, err = fmt.Fprintf(out, "%s ", w.formatter.Render(entry.Name, entry.Stat)); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintln(out)
	return err
}
