package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/0glabs/zk-cli/common/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewDefaultConfig(t *testing.T) {
	cfg := config.NewDefaultConfig()

	assert.Equal(t, "localhost:2181/", cfg.Addr)
	assert.Equal(t, time.Second, cfg.SessionTimeout)
	assert.Equal(t, 5*time.Second, cfg.ConnectTimeout)
	assert.NoError(t, cfg.Validate())
}

func TestNewConfigFromYAML(t *testing.T) {
	path := writeFile(t, "zk.yaml", "addr: zk1:2181,zk2:2181/kafka\nsession_timeout: 3s\n")

	cfg, err := config.NewConfigFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "zk1:2181,zk2:2181/kafka", cfg.Addr)
	assert.Equal(t, 3*time.Second, cfg.SessionTimeout)
	assert.Equal(t, config.DefaultConnectTimeout, cfg.ConnectTimeout)
}

func TestNewConfigFromJSON(t *testing.T) {
	path := writeFile(t, "zk.json", `{"addr": "zk:2181", "connect_timeout": "250ms"}`)

	cfg, err := config.NewConfigFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "zk:2181", cfg.Addr)
	assert.Equal(t, config.DefaultSessionTimeout, cfg.SessionTimeout)
	assert.Equal(t, 250*time.Millisecond, cfg.ConnectTimeout)
}

func TestLoadConfigOverrideFileErrors(t *testing.T) {
	_, err := config.LoadConfigOverrideFile(writeFile(t, "zk.toml", "addr = 'x'"))
	assert.ErrorContains(t, err, "unknown config file extension")

	_, err = config.LoadConfigOverrideFile(writeFile(t, "zk.json", `{"session_timeout": "soon"}`))
	assert.ErrorContains(t, err, "session_timeout")

	_, err = config.LoadConfigOverrideFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestMergeKeepsUnsetFields(t *testing.T) {
	cfg := config.NewDefaultConfig()
	addr := "other:2181"
	cfg.Merge(&config.ConfigOverride{Addr: &addr})
	cfg.Merge(nil)

	assert.Equal(t, "other:2181", cfg.Addr)
	assert.Equal(t, config.DefaultSessionTimeout, cfg.SessionTimeout)
}

func TestValidate(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Addr = ""
	assert.ErrorContains(t, cfg.Validate(), "Addr")

	cfg = config.NewDefaultConfig()
	cfg.SessionTimeout = 0
	assert.ErrorContains(t, cfg.Validate(), "SessionTimeout")
}
