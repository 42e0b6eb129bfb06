package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ":8085", cfg.Server.Addr)
	assert.Equal(t, "data", cfg.Storage.DataDir)
	assert.Equal(t, "admin", cfg.Auth.AdminUsername)
	assert.Equal(t, "admin123", cfg.Auth.AdminPassword)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hris_config.yml")
	body := `
server:
  addr: ":9090"
storage:
  data_dir: /var/lib/hris
directory:
  employees:
    - id: EMP-010
      name: Dina Cruz
      email: dina@example.com
      department: Finance
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "/var/lib/hris", cfg.Storage.DataDir)
	// unset fields still pick up defaults
	assert.Equal(t, "admin", cfg.Auth.AdminUsername)
	require.Len(t, cfg.Directory.Employees, 1)
	assert.Equal(t, "EMP-010", cfg.Directory.Employees[0].ID)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("HRIS_ADDR", ":7070")
	t.Setenv("HRIS_ADMIN_USERNAME", "hradmin")

	cfg := FromEnv(Default())
	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, "hradmin", cfg.Auth.AdminUsername)
	assert.Equal(t, "data", cfg.Storage.DataDir)
}
