package node

import (
	"strings"

	"github.com/pkg/errors"
)

// CreateMode is the persistence and uniqueness mode a node is created with.
type CreateMode int

const (
	ModePersistent CreateMode = iota
	ModeEphemeral
	ModePersistentSequential
	ModeEphemeralSequential
)

func (m CreateMode) String() string {
	switch m {
	case ModePersistent:
		return "persistent"
	case ModeEphemeral:
		return "ephemeral"
	case ModePersistentSequential:
		return "persistent-sequential"
	case ModeEphemeralSequential:
		return "ephemeral-sequential"
	default:
		return "unknown"
	}
}

// IsEphemeral reports whether nodes created with m are bound to the session.
func (m CreateMode) IsEphemeral() bool {
	return m == ModeEphemeral || m == ModeEphemeralSequential
}

// IsSequential reports whether the store appends a counter to the node name.
func (m CreateMode) IsSequential() bool {
	return m == ModePersistentSequential || m == ModeEphemeralSequential
}

// ModeFlag is a creation qualifier requested by the user.
type ModeFlag string

const (
	FlagPersistent ModeFlag = "persistent"
	FlagEphemeral  ModeFlag = "ephemeral"
	FlagSequential ModeFlag = "sequential"
)

// ParseModeFlag parses a creation qualifier, ignoring case.
func ParseModeFlag(s string) (ModeFlag, error) {
	switch flag := ModeFlag(strings.ToLower(strings.TrimSpace(s))); flag {
	case FlagPersistent, FlagEphemeral, FlagSequential:
		return flag, nil
	default:
		return "", errors.WithMessagef(ErrInvalidModeFlag, "%q, expected one of persistent, ephemeral, sequential", s)
	}
}

// ParseModeFlags parses every qualifier in values.
func ParseModeFlags(values []string) ([]ModeFlag, error) {
	flags := make([]ModeFlag, 0, len(values))
	for _, v := range values {
		flag, err := ParseModeFlag(v)
		if err != nil {
			return nil, err
		}
		flags = append(flags, flag)
	}

	return flags, nil
}

// ResolveCreateMode maps a set of qualifiers to exactly one creation mode.
// Persistent is implied unless ephemeral is requested.
func ResolveCreateMode(flags []ModeFlag) (CreateMode, error) {
	var persistent, ephemeral, sequential bool
	for _, flag := range flags {
		switch flag {
		case FlagPersistent:
			persistent = true
		case FlagEphemeral:
			ephemeral = true
		case FlagSequential:
			sequential = true
		default:
			return 0, errors.WithMessagef(ErrInvalidModeFlag, "%q", flag)
		}
	}

	switch {
	case persistent && ephemeral:
		return 0, ErrModeConflict
	case ephemeral && sequential:
		return ModeEphemeralSequential, nil
	case ephemeral:
		return ModeEphemeral, nil
	case sequential:
		return ModePersistentSequential, nil
	default:
		return ModePersistent, nil
	}
}
