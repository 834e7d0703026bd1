package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidFormat(t *testing.T) {
	assert.True(t, isValidFormat("text"))
	assert.True(t, isValidFormat("json"))
	assert.False(t, isValidFormat("yaml"))
	assert.False(t, isValidFormat(""))
}

func TestRootRejectsInvalidFormat(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"list", "--format", "xml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestResolveDatabaseFlagWins(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("database: /from/config.db\n"), 0o644))

	opts := &RootOptions{Database: "/from/flag.db", Config: cfgPath}
	require.NoError(t, opts.resolveDatabase())
	assert.Equal(t, "/from/flag.db", opts.Database)
}

func TestResolveDatabaseFromConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("database: /from/config.db\n"), 0o644))

	opts := &RootOptions{Config: cfgPath}
	require.NoError(t, opts.resolveDatabase())
	assert.Equal(t, "/from/config.db", opts.Database)
}

func TestResolveDatabaseDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	opts := &RootOptions{}
	require.NoError(t, opts.resolveDatabase())
	assert.Equal(t, filepath.Join(home, ".patreg", "patreg.db"), opts.Database)
	assert.DirExists(t, filepath.Join(home, ".patreg"))
}
