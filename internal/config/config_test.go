package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCatalog(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.txt")
	require.NoError(t, os.WriteFile(path, []byte("E\n5\n"), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeTempCatalog(t)
	cfg, err := Load([]string{"-f", path})
	require.NoError(t, err)
	assert.Equal(t, uint16(DefaultPort), cfg.Port)
	assert.Equal(t, uint32(DefaultTimeout), cfg.Timeout)
}

func TestLoadFlagsOverrideDefaults(t *testing.T) {
	path := writeTempCatalog(t)
	cfg, err := Load([]string{"-f", path, "-p", "3000", "-t", "30"})
	require.NoError(t, err)
	assert.Equal(t, uint16(3000), cfg.Port)
	assert.Equal(t, uint32(30), cfg.Timeout)
}

func TestLoadEnvFallback(t *testing.T) {
	path := writeTempCatalog(t)
	t.Setenv("TICKET_SERVER_PORT", "4000")
	t.Setenv("TICKET_SERVER_TIMEOUT", "60")

	cfg, err := Load([]string{"-f", path})
	require.NoError(t, err)
	assert.Equal(t, uint16(4000), cfg.Port)
	assert.Equal(t, uint32(60), cfg.Timeout)
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	path := writeTempCatalog(t)
	t.Setenv("TICKET_SERVER_PORT", "4000")

	cfg, err := Load([]string{"-f", path, "-p", "9000"})
	require.NoError(t, err)
	assert.Equal(t, uint16(9000), cfg.Port)
}

func TestLoadMissingFileIsError(t *testing.T) {
	_, err := Load([]string{})
	assert.Error(t, err)
}

func TestLoadNonexistentFileIsError(t *testing.T) {
	_, err := Load([]string{"-f", "/nonexistent/catalog.txt"})
	assert.Error(t, err)
}

func TestLoadTimeoutOutOfRangeIsError(t *testing.T) {
	path := writeTempCatalog(t)
	_, err := Load([]string{"-f", path, "-t", "0"})
	assert.Error(t, err)

	_, err = Load([]string{"-f", path, "-t", "86401"})
	assert.Error(t, err)
}

func TestLoadPortOutOfRangeIsError(t *testing.T) {
	path := writeTempCatalog(t)
	_, err := Load([]string{"-f", path, "-p", "65536"})
	assert.Error(t, err)
}
