// Package config loads the editor configuration file.
package config

import (
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/chrisuehlinger/vibetext/richtext"
	"github.com/chrisuehlinger/vibetext/script"
	"github.com/chrisuehlinger/vibetext/text"
)

// Config is the editor configuration.
//
//	default_font: Arial PLAIN 12
//	script:
//	  timeout: 1s
//	  cache_size: 64
//	presets:
//	  heading: [bold=on, size=18, color=navy]
//	  warning: [color=red, underline=on]
type Config struct {
	DefaultFont string              `yaml:"default_font"`
	Script      ScriptConfig        `yaml:"script"`
	Presets     map[string][]string `yaml:"presets"`
}

// ScriptConfig configures the script engine.
type ScriptConfig struct {
	Timeout   time.Duration `yaml:"timeout"`
	CacheSize int           `yaml:"cache_size"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DefaultFont: text.DefaultFont.String(),
		Script: ScriptConfig{
			Timeout:   script.DefaultTimeout,
			CacheSize: script.DefaultCacheSize,
		},
		Presets: map[string][]string{
			"heading":   {"bold=on", "size=18"},
			"highlight": {"background=yellow"},
			"code":      {"family=Courier New"},
		},
	}
}

// Load reads a YAML configuration file. Fields missing from the file keep
// their default values; presets in the file are added to the built-in ones.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration data.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if file.DefaultFont != "" {
		cfg.DefaultFont = file.DefaultFont
	}
	if file.Script.Timeout > 0 {
		cfg.Script.Timeout = file.Script.Timeout
	}
	if file.Script.CacheSize > 0 {
		cfg.Script.CacheSize = file.Script.CacheSize
	}
	for name, muts := range file.Presets {
		cfg.Presets[name] = muts
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the default font and every preset.
func (c *Config) Validate() error {
	if _, err := text.ParseFont(c.DefaultFont); err != nil {
		return fmt.Errorf("default_font: %w", err)
	}
	for name := range c.Presets {
		if _, err := c.Preset(name); err != nil {
			return err
		}
	}
	return nil
}

// Font returns the parsed default font.
func (c *Config) Font() (text.Font, error) {
	return text.ParseFont(c.DefaultFont)
}

// Preset returns the named preset as a single applicator.
func (c *Config) Preset(name string) (richtext.StyleApplicator, error) {
	muts, ok := c.Presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q", name)
	}
	a, err := richtext.ParseMutations(muts)
	if err != nil {
		return nil, fmt.Errorf("preset %q: %w", name, err)
	}
	return a, nil
}

// PresetNames returns the preset names in sorted order.
func (c *Config) PresetNames() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ScriptOptions returns engine options for the script settings.
func (c *Config) ScriptOptions() []script.Option {
	return []script.Option{
		script.WithTimeout(c.Script.Timeout),
		script.WithCacheSize(c.Script.CacheSize),
	}
}
