package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "hledger_path: /opt/hledger/bin/hledger\ntimeout_seconds: 60\njournal: /home/user/main.journal\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/opt/hledger/bin/hledger", cfg.HLedgerPath)
	assert.Equal(t, 60, cfg.TimeoutSeconds)
	assert.Equal(t, "/home/user/main.journal", cfg.Journal)
}

func TestLoad_PartialFileGetsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("journal: x.journal\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "hledger", cfg.HLedgerPath)
	assert.Equal(t, 30, cfg.TimeoutSeconds)
	assert.Equal(t, "x.journal", cfg.Journal)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hledger_path: [unclosed"), 0o644))

	cfg, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_NegativeTimeoutNormalized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timeout_seconds: -5\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.TimeoutSeconds)
}

func TestConfig_Timeout(t *testing.T) {
	cfg := Config{TimeoutSeconds: 45}
	assert.Equal(t, 45*time.Second, cfg.Timeout())
}

func TestConfig_JournalFile(t *testing.T) {
	t.Setenv("LEDGER_FILE", "/env/ledger.journal")

	cfg := Config{Journal: "/explicit.journal"}
	assert.Equal(t, "/explicit.journal", cfg.JournalFile())

	cfg.Journal = ""
	assert.Equal(t, "/env/ledger.journal", cfg.JournalFile())

	t.Setenv("LEDGER_FILE", "")
	assert.Equal(t, "", cfg.JournalFile())
}
