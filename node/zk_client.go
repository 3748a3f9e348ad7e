package node

import (
	"strings"
	"time"

	"github.com/go-zookeeper/zk"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ZkClientOption configures how a ZooKeeper session is established.
type ZkClientOption struct {
	SessionTimeout time.Duration
	ConnectTimeout time.Duration
	Logger         *logrus.Logger
}

// ZkClient implements Client on top of a ZooKeeper session. Paths are
// relative to the chroot given in the connection address.
type ZkClient struct {
	chroot string
	conn   *zk.Conn
}

var _ Client = (*ZkClient)(nil)

// ParseAddr splits an address of the form host:port[,host:port...][/chroot]
// into server addresses and chroot. A chroot of `/` means none.
func ParseAddr(addr string) (servers []string, chroot string, err error) {
	hosts := addr
	if i := strings.Index(addr, PathSeparator); i >= 0 {
		hosts, chroot = addr[:i], addr[i:]
	}

	for _, host := range strings.Split(hosts, ",") {
		if host = strings.TrimSpace(host); host != "" {
			servers = append(servers, host)
		}
	}
	if len(servers) == 0 {
		return nil, "", errors.Errorf("no server in address %q", addr)
	}

	chroot = strings.TrimRight(chroot, PathSeparator)

	return servers, chroot, nil
}

// NewZkClient connects to addr and waits until a session is established.
func NewZkClient(addr string, option ...ZkClientOption) (*ZkClient, error) {
	opt := ZkClientOption{
		SessionTimeout: time.Second,
		ConnectTimeout: 5 * time.Second,
	}
	if len(option) > 0 {
		opt = option[0]
	}

	servers, chroot, err := ParseAddr(addr)
	if err != nil {
		return nil, err
	}

	logger := opt.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	logger.WithField("addr", addr).Info("Connecting to zookeeper")

	conn, events, err := zk.Connect(servers, opt.SessionTimeout, zk.WithLogger(zkLogger{logger}))
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to dial %v", servers)
	}

	if err = waitSession(events, opt.ConnectTimeout); err != nil {
		conn.Close()
		return nil, errors.WithMessagef(err, "failed to establish session with %v", addr)
	}

	logger.WithField("sessionId", conn.SessionID()).Info("Connected")

	return &ZkClient{
		chroot: chroot,
		conn:   conn,
	}, nil
}

func waitSession(events <-chan zk.Event, timeout time.Duration) error {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return errors.New("connection closed")
			}
			switch ev.State {
			case zk.StateHasSession:
				return nil
			case zk.StateAuthFailed, zk.StateExpired:
				return errors.Errorf("session state %v", ev.State)
			}
		case <-timer.C:
			return errors.Errorf("timed out after %v", timeout)
		}
	}
}

// zkLogger forwards the library's own logging to logrus at debug level.
type zkLogger struct {
	logger *logrus.Logger
}

func (l zkLogger) Printf(format string, args ...interface{}) {
	l.logger.Debugf(format, args...)
}

func (c *ZkClient) fullPath(path string) string {
	if c.chroot == "" {
		return path
	}
	if path == RootPath {
		return c.chroot
	}
	return c.chroot + path
}

func (c *ZkClient) relativePath(path string) string {
	if c.chroot == "" {
		return path
	}
	if path = strings.TrimPrefix(path, c.chroot); path == "" {
		return RootPath
	}
	return path
}

func (c *ZkClient) Children(path string) ([]string, error) {
	children, _, err := c.conn.Children(c.fullPath(path))
	if err != nil {
		return nil, newPathError("list", path, convertError(err))
	}

	return children, nil
}

func (c *ZkClient) Stat(path string) (*Stat, error) {
	exists, stat, err := c.conn.Exists(c.fullPath(path))
	if err != nil {
		return nil, newPathError("stat", path, convertError(err))
	}
	if !exists {
		return nil, newPathError("stat", path, ErrNoNode)
	}

	return convertStat(stat), nil
}

func (c *ZkClient) Get(path string) ([]byte, error) {
	data, _, err := c.conn.Get(c.fullPath(path))
	if err != nil {
		return nil, newPathError("get", path, convertError(err))
	}

	return data, nil
}

func (c *ZkClient) Set(path string, data []byte) error {
	_, err := c.conn.Set(c.fullPath(path), data, -1)
	return newPathError("set", path, convertError(err))
}

func (c *ZkClient) Create(path string, data []byte, acl []ACL, mode CreateMode) (string, error) {
	created, err := c.conn.Create(c.fullPath(path), data, convertMode(mode), convertACL(acl))
	if err != nil {
		return "", newPathError("create", path, convertError(err))
	}

	return c.relativePath(created), nil
}

func (c *ZkClient) Delete(path string) error {
	return newPathError("delete", path, convertError(c.conn.Delete(c.fullPath(path), -1)))
}

func (c *ZkClient) Close() {
	c.conn.Close()
}

func convertStat(stat *zk.Stat) *Stat {
	return &Stat{
		NumChildren: stat.NumChildren,
		DataLength:  stat.DataLength,
		Ephemeral:   stat.EphemeralOwner != 0,
	}
}

func convertMode(mode CreateMode) int32 {
	var flags int32
	if mode.IsEphemeral() {
		flags |= zk.FlagEphemeral
	}
	if mode.IsSequential() {
		flags |= zk.FlagSequence
	}
	return flags
}

func convertACL(acl []ACL) []zk.ACL {
	result := make([]zk.ACL, 0, len(acl))
	for _, entry := range acl {
		result = append(result, zk.ACL{Perms: entry.Perms, Scheme: entry.Scheme, ID: entry.ID})
	}
	return result
}

// convertError maps library errors onto the package sentinels so callers can
// match them with errors.Is.
func convertError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, zk.ErrNoNode):
		return ErrNoNode
	case errors.Is(err, zk.ErrNodeExists):
		return ErrNodeExists
	case errors.Is(err, zk.ErrNotEmpty):
		return ErrNotEmpty
	default:
		return err
	}
}
