package config

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "", cfg.OutputDir)
	assert.Equal(t, "drawable", cfg.AndroidDir)
	assert.Equal(t, "xxxhdpi", cfg.Density)
	assert.Equal(t, 95, cfg.Quality)
	assert.True(t, cfg.WebPLossless)
}

func TestParseArgs(t *testing.T) {
	cfg, err := ParseArgs([]string{"-i", "logo.png", "-o", "res", "-a", "mipmap", "-d", "xhdpi"})
	require.NoError(t, err)
	assert.Equal(t, "logo.png", cfg.Input)
	assert.Equal(t, "res", cfg.OutputDir)
	assert.Equal(t, "mipmap", cfg.AndroidDir)
	assert.Equal(t, "xhdpi", cfg.Density)
	require.NoError(t, cfg.Validate())

	opts := cfg.ExpanderOptions()
	assert.Equal(t, "logo.png", opts.ImagePath)
	assert.Equal(t, "res", opts.OutputRoot)
	assert.Equal(t, "mipmap", opts.AndroidDir)
	assert.Equal(t, "xhdpi", opts.Density)
}

func TestParseArgsDefaults(t *testing.T) {
	cfg, err := ParseArgs([]string{"-i", "logo.png"})
	require.NoError(t, err)
	assert.Equal(t, "", cfg.OutputDir)
	assert.Equal(t, "drawable", cfg.AndroidDir)
	assert.Equal(t, "xxxhdpi", cfg.Density)
}

func TestParseArgsDensityNotValidatedHere(t *testing.T) {
	cfg, err := ParseArgs([]string{"-i", "logo.png", "-d", "ldpi"})
	require.NoError(t, err)
	assert.Equal(t, "ldpi", cfg.Density)
}

func TestParseArgsHelp(t *testing.T) {
	cfg, err := ParseArgs([]string{"-h"})
	assert.ErrorIs(t, err, ErrHelp)
	assert.Nil(t, cfg)
}

func TestParseArgsValueLooksLikeFlag(t *testing.T) {
	cfg, err := ParseArgs([]string{"-i", "-h"})
	require.NoError(t, err)
	assert.Equal(t, "-h", cfg.Input)
}

func TestParseArgsUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", nil},
		{"missing input", []string{"-o", "res"}},
		{"unknown flag", []string{"-i", "logo.png", "-x", "1"}},
		{"missing value", []string{"-i"}},
		{"dangling argument", []string{"-i", "logo.png", "extra"}},
		{"help with other flags", []string{"-h", "-i", "logo.png"}},
		{"help with argument", []string{"-h", "now"}},
		{"help assigned false", []string{"-h=false", "-i", "logo.png"}},
		{"help after input", []string{"-i", "logo.png", "-h"}},
		{"help between pairs", []string{"-i", "logo.png", "-h", "-d", "mdpi"}},
		{"double dash flag", []string{"--i", "logo.png"}},
		{"assigned value", []string{"-i=logo.png"}},
		{"assigned value with pair", []string{"-i=logo.png", "-d", "mdpi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseArgs(tt.args)
			assert.ErrorIs(t, err, ErrUsage)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.ErrorIs(t, cfg.Validate(), ErrUsage)

	cfg.Input = "logo.png"
	assert.NoError(t, cfg.Validate())

	cfg.Quality = 0
	assert.Error(t, cfg.Validate())

	cfg.Quality = 80
	cfg.AndroidDir = ""
	assert.Error(t, cfg.Validate())
}

func TestPrintUsage(t *testing.T) {
	var buf bytes.Buffer
	PrintUsage(&buf, "density-expander")

	out := buf.String()
	assert.Contains(t, out, "density-expander -i <path_to_image>")
	assert.Contains(t, out, "mdpi, hdpi, xhdpi, xxhdpi, xxxhdpi")
	assert.Contains(t, out, `"drawable-mdpi"`)
	for _, f := range []string{"-i", "-o", "-a", "-d", "-h"} {
		assert.Contains(t, out, "  "+f+"  ")
	}
}
