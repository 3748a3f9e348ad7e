package node_test

import (
	"io"
	"testing"

	"github.com/0glabs/zk-cli/node"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
		warnings int
	}{
		{"", "/", 1},
		{"/", "/", 0},
		{"a", "/a", 1},
		{"/a/b", "/a/b", 0},
		{"a/b/", "/a/b", 2},
		{"/a/b///", "/a/b", 1},
		{"///", "/", 1},
		{"zookeeper/quota", "/zookeeper/quota", 1},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			logger, hook := test.NewNullLogger()
			assert.Equal(t, tt.expected, node.NormalizePath(tt.raw, logger))
			assert.Len(t, hook.AllEntries(), tt.warnings)
			for _, entry := range hook.AllEntries() {
				assert.Equal(t, logrus.WarnLevel, entry.Level)
			}
		})
	}
}

func TestNormalizePathIdempotent(t *testing.T) {
	logger := logrus.New()
	logger.Out = io.Discard

	for _, raw := range []string{"", "/", "a", "a/", "/a//", "a/b/c", "//x//", "/x y/z"} {
		once := node.NormalizePath(raw, logger)
		assert.Equal(t, once, node.NormalizePath(once, logger), raw)

		logger2, hook := test.NewNullLogger()
		node.NormalizePath(once, logger2)
		assert.Empty(t, hook.AllEntries(), "normalized path %q should not warn", once)
	}
}

func TestJoinPath(t *testing.T) {
	assert.Equal(t, "/a", node.JoinPath("/", "a"))
	assert.Equal(t, "/a/b", node.JoinPath("/a", "b"))
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "/", node.BaseName("/"))
	assert.Equal(t, "a", node.BaseName("/a"))
	assert.Equal(t, "c", node.BaseName("/a/b/c"))
}
