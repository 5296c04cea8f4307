package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/matrix64x32/hub75"
	"github.com/ardnew/matrix64x32/target"
)

func TestEncodeMetroM0(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, encode(&buf, target.MetroM0()))

	out := buf.String()
	assert.Contains(t, out, "name: metro_m0")
	assert.Contains(t, out, "width: 64")
	assert.Contains(t, out, "clk: 50")
	assert.Contains(t, out, "a: 62")
	assert.Contains(t, out, "oe: 34")
}

func TestLoadPinFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pins.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: bench
pins:
  a: 62
  b: 63
  c: 64
  d: 65
  clk: 8
  lat: 35
  oe: 35
`), 0644))

	p, err := load(path)
	require.NoError(t, err)
	assert.Equal(t, "bench", p.Name)
	assert.Equal(t, hub75.Pin(8), p.Pins.CLK)
	assert.ErrorIs(t, p.Pins.Validate(), hub75.ErrDuplicatePin)
}

func TestLoadRoundTripsEncode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mega.yaml")
	var buf bytes.Buffer
	require.NoError(t, encode(&buf, target.Mega()))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	p, err := load(path)
	require.NoError(t, err)
	assert.Equal(t, target.Mega(), p)
}
