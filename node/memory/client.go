// Package memory provides an in-memory namespace that implements node.Client.
// It enforces the same ordering rules as the remote store: parents must exist
// before children are created and a node with children cannot be deleted.
// A call hook lets tests play the part of a concurrent actor.
package memory

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/0glabs/zk-cli/node"
)

// Op names an operation passed to the call hook.
type Op string

const (
	OpChildren Op = "children"
	OpStat     Op = "stat"
	OpGet      Op = "get"
	OpSet      Op = "set"
	OpCreate   Op = "create"
	OpDelete   Op = "delete"
)

type entry struct {
	data      []byte
	ephemeral bool
	children  map[string]struct{}
	sequence  int
}

// Client is a single session on an in-memory namespace.
type Client struct {
	mu    sync.Mutex
	nodes map[string]*entry
	hook  func(op Op, path string) error
}

var _ node.Client = (*Client)(nil)

// NewClient returns a namespace that only contains the root.
func NewClient() *Client {
	return &Client{
		nodes: map[string]*entry{
			node.RootPath: {children: map[string]struct{}{}},
		},
	}
}

// OnCall installs a hook that runs before every operation, outside of the
// client lock so it may mutate the namespace. A non nil error is returned
// to the caller in place of the operation result.
func (c *Client) OnCall(hook func(op Op, path string) error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hook = hook
}

func (c *Client) before(op Op, path string) error {
	c.mu.Lock()
	hook := c.hook
	c.mu.Unlock()

	if hook == nil {
		return nil
	}
	if err := hook(op, path); err != nil {
		return &node.PathError{Op: string(op), Path: path, Err: err}
	}
	return nil
}

// MustCreate creates path and all missing ancestors as persistent nodes. It
// is meant for test fixtures.
func (c *Client) MustCreate(path string, data string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current := ""
	for _, name := range strings.Split(strings.Trim(path, node.PathSeparator), node.PathSeparator) {
		if name == "" {
			continue
		}
		parent := current
		if parent == "" {
			parent = node.RootPath
		}
		current = node.JoinPath(parent, name)
		if _, ok := c.nodes[current]; !ok {
			c.insert(parent, name, current, nil, false)
		}
	}

	if e, ok := c.nodes[current]; ok {
		e.data = []byte(data)
	}
}

// Exists reports whether path is present.
func (c *Client) Exists(path string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.nodes[path]
	return ok
}

// Paths returns every node path in lexicographic order.
func (c *Client) Paths() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	paths := make([]string, 0, len(c.nodes))
	for path := range c.nodes {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Remove deletes path and its whole subtree without going through the
// ordering rules, as another actor on the namespace would.
func (c *Client) Remove(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeTree(path)
}

func (c *Client) removeTree(path string) {
	e, ok := c.nodes[path]
	if !ok {
		return
	}
	for name := range e.children {
		c.removeTree(node.JoinPath(path, name))
	}
	c.unlink(path)
}

func (c *Client) unlink(path string) {
	delete(c.nodes, path)
	if path == node.RootPath {
		return
	}
	if parent, ok := c.nodes[parentOf(path)]; ok {
		delete(parent.children, node.BaseName(path))
	}
}

func (c *Client) insert(parentPath, name, path string, data []byte, ephemeral bool) {
	c.nodes[path] = &entry{
		data:      data,
		ephemeral: ephemeral,
		children:  map[string]struct{}{},
	}
	c.nodes[parentPath].children[name] = struct{}{}
}

func parentOf(path string) string {
	i := strings.LastIndex(path, node.PathSeparator)
	if i <= 0 {
		return node.RootPath
	}
	return path[:i]
}

func (c *Client) lookup(op Op, path string) (*entry, error) {
	e, ok := c.nodes[path]
	if !ok {
		return nil, &node.PathError{Op: string(op), Path: path, Err: node.ErrNoNode}
	}
	return e, nil
}

// Children returns child names in map order, which deliberately differs from
// one call to the next.
func (c *Client) Children(path string) ([]string, error) {
	if err := c.before(OpChildren, path); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e, err := c.lookup(OpChildren, path)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(e.children))
	for name := range e.children {
		names = append(names, name)
	}
	return names, nil
}

func (c *Client) Stat(path string) (*node.Stat, error) {
	if err := c.before(OpStat, path); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e, err := c.lookup(OpStat, path)
	if err != nil {
		return nil, err
	}

	return &node.Stat{
		NumChildren: int32(len(e.children)),
		DataLength:  int32(len(e.data)),
		Ephemeral:   e.ephemeral,
	}, nil
}

func (c *Client) Get(path string) ([]byte, error) {
	if err := c.before(OpGet, path); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e, err := c.lookup(OpGet, path)
	if err != nil {
		return nil, err
	}

	return append([]byte(nil), e.data...), nil
}

func (c *Client) Set(path string, data []byte) error {
	if err := c.before(OpSet, path); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e, err := c.lookup(OpSet, path)
	if err != nil {
		return err
	}

	e.data = append([]byte(nil), data...)
	return nil
}

// Create follows the store rules: the parent must exist and must not be
// ephemeral, sequential names get a ten digit counter kept by the parent.
func (c *Client) Create(path string, data []byte, acl []node.ACL, mode node.CreateMode) (string, error) {
	if err := c.before(OpCreate, path); err != nil {
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if path == node.RootPath {
		return "", &node.PathError{Op: string(OpCreate), Path: path, Err: node.ErrNodeExists}
	}

	parentPath := parentOf(path)
	parent, ok := c.nodes[parentPath]
	if !ok {
		return "", &node.PathError{Op: string(OpCreate), Path: path, Err: node.ErrNoNode}
	}
	if parent.ephemeral {
		return "", &node.PathError{Op: string(OpCreate), Path: path, Err: fmt.Errorf("ephemeral parent %v cannot have children", parentPath)}
	}

	name := node.BaseName(path)
	if mode.IsSequential() {
		name = fmt.Sprintf("%s%010d", name, parent.sequence)
		parent.sequence++
	}
	created := node.JoinPath(parentPath, name)

	if _, ok := c.nodes[created]; ok {
		return "", &node.PathError{Op: string(OpCreate), Path: created, Err: node.ErrNodeExists}
	}

	c.insert(parentPath, name, created, append([]byte(nil), data...), mode.IsEphemeral())
	return created, nil
}

func (c *Client) Delete(path string) error {
	if err := c.before(OpDelete, path); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e, err := c.lookup(OpDelete, path)
	if err != nil {
		return err
	}
	if path == node.RootPath {
		return &node.PathError{Op: string(OpDelete), Path: path, Err: fmt.Errorf("root cannot be deleted")}
	}
	if len(e.children) > 0 {
		return &node.PathError{Op: string(OpDelete), Path: path, Err: node.ErrNotEmpty}
	}

	c.unlink(path)
	return nil
}

// Close ends the session, removing every ephemeral node. The client stays
// usable and the next calls behave as a new session.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for path, e := range c.nodes {
		if e.ephemeral {
			c.unlink(path)
		}
	}
}
