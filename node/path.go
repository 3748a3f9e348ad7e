package node

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// PathSeparator separates the segments of a node path.
const PathSeparator = "/"

// RootPath is the path of the namespace root.
const RootPath = PathSeparator

// NormalizePath turns a user supplied path into an absolute node path without
// trailing separator. Every rewrite is reported as a warning on logger, which
// may be nil.
func NormalizePath(raw string, logger logrus.FieldLogger) string {
	path := raw

	if !strings.HasPrefix(path, PathSeparator) {
		path = PathSeparator + path
		warnRewrite(logger, "Invalid path, adding a leading `/`", raw, path)
	}

	if path != RootPath && strings.HasSuffix(path, PathSeparator) {
		before := path
		path = strings.TrimRight(path, PathSeparator)
		if path == "" {
			path = RootPath
		}
		warnRewrite(logger, "Invalid path, removing the trailing `/`", before, path)
	}

	return path
}

func warnRewrite(logger logrus.FieldLogger, msg, from, to string) {
	if logger == nil {
		return
	}

	logger.WithFields(logrus.Fields{
		"from": from,
		"to":   to,
	}).Warn(msg)
}

// JoinPath returns the path of the child called name under parent. The root
// parent maps to an empty prefix so that no double separator is produced.
func JoinPath(parent, name string) string {
	if parent == RootPath {
		parent = ""
	}

	return parent + PathSeparator + name
}

// BaseName returns the last segment of path, or the root path itself.
func BaseName(path string) string {
	if path == RootPath {
		return RootPath
	}

	return path[strings.LastIndex(path, PathSeparator)+1:]
}
