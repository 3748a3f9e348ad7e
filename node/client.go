package node

// Client is the set of operations the namespace tools need from a connected
// coordination service session. Calls are synchronous. A missing node is
// reported as an error wrapping ErrNoNode.
type Client interface {
	// Children returns the names of the direct children of path, in no
	// particular order.
	Children(path string) ([]string, error)
	// Stat returns a fresh metadata snapshot of path.
	Stat(path string) (*Stat, error)
	// Get returns the payload of path.
	Get(path string) ([]byte, error)
	// Set replaces the payload of an existing node.
	Set(path string, data []byte) error
	// Create creates path and returns the path actually assigned by the
	// store, which differs from path for sequential modes.
	Create(path string, data []byte, acl []ACL, mode CreateMode) (string, error)
	// Delete removes a node that has no children.
	Delete(path string) error
	// Close terminates the session.
	Close()
}
