package node

// Stat is a metadata snapshot of a node, valid only at the instant it was taken.
type Stat struct {
	NumChildren int32 `json:"numChildren"` // number of direct children
	DataLength  int32 `json:"dataLength"`  // payload length in bytes
	Ephemeral   bool  `json:"ephemeral"`   // lifetime bound to the owning session
}

// HasChildren reports whether the node had at least one child when stat was taken.
func (s *Stat) HasChildren() bool {
	return s.NumChildren > 0
}

// HasData reports whether the node had a non empty payload when stat was taken.
func (s *Stat) HasData() bool {
	return s.DataLength > 0
}

const (
	PermRead int32 = 1 << iota
	PermWrite
	PermCreate
	PermDelete
	PermAdmin
	PermAll = 0x1f
)

// ACL is a single access control entry.
type ACL struct {
	Scheme string
	ID     string
	Perms  int32
}

// OpenACL grants every permission to anyone.
var OpenACL = []ACL{{Scheme: "world", ID: "anyone", Perms: PermAll}}
