//go:build !tinygo

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gpio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: GPIO5\nclk: GPIO11\nOE: GPIO4\n"), 0644))

	lines, err := loadLines(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"A": "GPIO5", "CLK": "GPIO11", "OE": "GPIO4"}, lines)
}

func TestLoadLinesMissing(t *testing.T) {
	_, err := loadLines(filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
}
