package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/calculator"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "calculator.yaml")
	require.NoError(t, os.WriteFile(name, []byte(text), 0o644))
	return name
}

func TestLoadConfig(t *testing.T) {
	name := writeConfig(t, "prompt: \"> \"\nformat: \"%.2f\"\nmaxlen: 16\necho: true\n")
	cfg := defaults()
	require.NoError(t, loadConfig(name, &cfg))
	assert.Equal(t, "> ", cfg.Prompt)
	assert.Equal(t, "%.2f", cfg.Format)
	assert.Equal(t, 16, cfg.MaxLen)
	assert.True(t, cfg.Echo)
	assert.False(t, cfg.Quiet)
	// Unset fields keep their defaults.
	assert.Equal(t, defaults().Banner, cfg.Banner)
}

func TestLoadConfigErrors(t *testing.T) {
	cfg := defaults()
	err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"), &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
	assert.True(t, os.IsNotExist(errors.Cause(err)))

	name := writeConfig(t, "promtp: oops\n")
	err = loadConfig(name, &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")

	name = writeConfig(t, "maxlen: many\n")
	assert.Error(t, loadConfig(name, &cfg))
}

func TestConfigSessionOptions(t *testing.T) {
	cfg := defaults()
	cfg.Format = "%.1f"
	cfg.MaxLen = 3
	sess := calculator.NewSession(cfg.sessionOptions()...)
	out, ok := sess.Process("1/3")
	assert.True(t, ok)
	assert.Equal(t, "0.3", out)
	_, ok = sess.Process("1+2+3")
	assert.False(t, ok)
}
