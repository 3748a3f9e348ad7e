package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Default configuration constants. See [Config] for field descriptions.
const (
	DefaultAddr           = "localhost:2181/"
	DefaultSessionTimeout = time.Second
	DefaultConnectTimeout = 5 * time.Second
)

// Config contains the connection settings of a cli invocation.
type Config struct {
	Addr           string        `validate:"required"` // host:port[,host:port...][/chroot]
	SessionTimeout time.Duration `validate:"gt=0"`     // ZooKeeper session timeout
	ConnectTimeout time.Duration `validate:"gt=0"`     // Time to wait for a session before giving up
}

// ConfigOverride uses pointer fields to distinguish between unset and zero
// values when loading partial configuration.
type ConfigOverride struct {
	Addr           *string        `yaml:"addr,omitempty" json:"addr,omitempty"`
	SessionTimeout *time.Duration `yaml:"session_timeout,omitempty" json:"-"`
	ConnectTimeout *time.Duration `yaml:"connect_timeout,omitempty" json:"-"`
}

// jsonOverride mirrors ConfigOverride with durations spelled as strings,
// e.g. "1s", since encoding/json only understands nanoseconds.
type jsonOverride struct {
	Addr           *string `json:"addr,omitempty"`
	SessionTimeout *string `json:"session_timeout,omitempty"`
	ConnectTimeout *string `json:"connect_timeout,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		Addr:           DefaultAddr,
		SessionTimeout: DefaultSessionTimeout,
		ConnectTimeout: DefaultConnectTimeout,
	}
}

// Merge applies non-nil values from override onto this Config.
func (c *Config) Merge(override *ConfigOverride) {
	if override == nil {
		return
	}
	if override.Addr != nil {
		c.Addr = *override.Addr
	}
	if override.SessionTimeout != nil {
		c.SessionTimeout = *override.SessionTimeout
	}
	if override.ConnectTimeout != nil {
		c.ConnectTimeout = *override.ConnectTimeout
	}
}

var validate = validator.New()

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.WithMessage(err, "invalid configuration")
	}
	return nil
}

// LoadConfigOverrideFile loads configuration overrides from a file without
// merging. Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to read config file %v", path)
	}

	var override ConfigOverride

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, errors.WithMessagef(err, "failed to unmarshal config file %v", path)
		}
	case ".json":
		if err := unmarshalJSON(data, &override); err != nil {
			return nil, errors.WithMessagef(err, "failed to unmarshal config file %v", path)
		}
	default:
		return nil, errors.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

func unmarshalJSON(data []byte, override *ConfigOverride) error {
	var raw jsonOverride
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	override.Addr = raw.Addr

	var err error
	if override.SessionTimeout, err = parseDuration(raw.SessionTimeout); err != nil {
		return errors.WithMessage(err, "session_timeout")
	}
	if override.ConnectTimeout, err = parseDuration(raw.ConnectTimeout); err != nil {
		return errors.WithMessage(err, "connect_timeout")
	}

	return nil
}

func parseDuration(s *string) (*time.Duration, error) {
	if s == nil {
		return nil, nil
	}

	d, err := time.ParseDuration(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// NewConfigFromFile creates a new Config by merging file overrides with defaults.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	cfg.Merge(override)
	return cfg, nil
}
