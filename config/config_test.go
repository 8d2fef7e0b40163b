package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrisuehlinger/vibetext/text"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	f, err := cfg.Font()
	require.NoError(t, err)
	assert.Equal(t, text.DefaultFont, f)
	assert.Equal(t, []string{"code", "heading", "highlight"}, cfg.PresetNames())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vibetext.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
default_font: Georgia 14
script:
  timeout: 250ms
presets:
  warning: [color=red, underline=on]
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Georgia 14", cfg.DefaultFont)
	assert.Equal(t, 250*time.Millisecond, cfg.Script.Timeout)
	assert.Equal(t, 64, cfg.Script.CacheSize)
	assert.Contains(t, cfg.PresetNames(), "warning")
	assert.Contains(t, cfg.PresetNames(), "heading")

	a, err := cfg.Preset("warning")
	require.NoError(t, err)
	s := text.NewStyledSpan("x")
	a.Apply(s)
	assert.True(t, s.Underline())
	_, ok := s.Foreground()
	assert.True(t, ok)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("presets:\n  bad: [sparkle]\n"))
	assert.ErrorContains(t, err, `preset "bad"`)

	_, err = Parse([]byte("default_font: Arial 0\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("script: [\n"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Default().Preset("nope")
	assert.Error(t, err)
}
