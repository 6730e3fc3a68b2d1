package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menta2k/density-expander/pkg/processing"
)

func TestRunExitCodes(t *testing.T) {
	work := t.TempDir()
	input := filepath.Join(work, "logo.png")
	require.NoError(t, processing.NewProcessor().SaveImage(solid(32, 32), input, processing.FormatPNG))
	out := filepath.Join(work, "res")

	assert.Equal(t, 0, run([]string{"-h"}))
	assert.Equal(t, 2, run(nil))
	assert.Equal(t, 2, run([]string{"-o", out}))
	assert.Equal(t, 2, run([]string{"-i", input, "-z", "1"}))
	assert.Equal(t, 1, run([]string{"-i", filepath.Join(work, "missing.png"), "-o", out}))
	assert.NoDirExists(t, out)
	assert.Equal(t, 1, run([]string{"-i", input, "-o", out, "-d", "ldpi"}))

	assert.Equal(t, 0, run([]string{"-i", input, "-o", out, "-a", "mipmap", "-d", "xxhdpi"}))
	assert.FileExists(t, filepath.Join(out, "mipmap-mdpi", "logo.png"))
	assert.FileExists(t, filepath.Join(out, "mipmap-xxxhdpi", "logo.png"))
}
