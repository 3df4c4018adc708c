package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.Equal(t, "z3", c.Solver.Binary)
	require.Equal(t, 2*time.Second, c.Solver.Timeout)
	require.Equal(t, "text", c.Output.Format)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seereach.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`solver:
  binary: cvc5
  timeout: 5s
output:
  format: json
`), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "cvc5", c.Solver.Binary)
	require.Equal(t, 5*time.Second, c.Solver.Timeout)
	require.Equal(t, "json", c.Output.Format)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seereach.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`solver:
  binary: cvc5
`), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "cvc5", c.Solver.Binary)
	require.Equal(t, 2*time.Second, c.Solver.Timeout, "missing fields fall back to defaults")
	require.Equal(t, "text", c.Output.Format)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadOrDefault(t *testing.T) {
	c := LoadOrDefault(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Equal(t, "z3", c.Solver.Binary)
}
