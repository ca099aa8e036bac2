// Package config loads paneline settings from file, environment and
// defaults.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/paneline/paneline/internal/models"
	"github.com/paneline/paneline/internal/segment"
)

// Config is the full paneline configuration.
type Config struct {
	Render  RenderConfig  `mapstructure:"render"`
	Theme   ThemeConfig   `mapstructure:"theme"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// RenderConfig controls fragment emission.
type RenderConfig struct {
	IncludeStatusGlyph bool   `mapstructure:"include_status_glyph"`
	CombineFileCounts  bool   `mapstructure:"combine_file_counts"`
	Separator          string `mapstructure:"separator"`
}

// ThemeConfig overrides glyphs and the style-tag colour mapping.
type ThemeConfig struct {
	Glyphs GlyphConfig       `mapstructure:"glyphs"`
	Colors map[string]string `mapstructure:"colors"`
}

// GlyphConfig mirrors segment.Glyphs field by field.
type GlyphConfig struct {
	Clean     string `mapstructure:"clean"`
	Dirty     string `mapstructure:"dirty"`
	Broken    string `mapstructure:"broken"`
	Unknown   string `mapstructure:"unknown"`
	Stash     string `mapstructure:"stash"`
	Staged    string `mapstructure:"staged"`
	Unstaged  string `mapstructure:"unstaged"`
	Untracked string `mapstructure:"untracked"`
	CountJoin string `mapstructure:"count_join"`
}

// LoggingConfig controls the optional debug log file.
type LoggingConfig struct {
	FileEnabled bool   `mapstructure:"file_enabled"`
	Dir         string `mapstructure:"dir"`
	MaxSizeMB   int    `mapstructure:"max_size_mb"`
	MaxAgeDays  int    `mapstructure:"max_age_days"`
	MaxBackups  int    `mapstructure:"max_backups"`
}

// Load reads the configuration from ~/.config/paneline/config.yaml (or
// $PANELINE_CONFIG_DIR) plus PANELINE_* environment variables. A missing
// config file yields the defaults; a malformed one is an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir())
	v.SetEnvPrefix("paneline")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Defaults returns the built-in configuration without consulting any file
// or environment.
func Defaults() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// The defaults are static and always unmarshal.
		panic(err)
	}
	return &cfg
}

func configDir() string {
	if dir := os.Getenv("PANELINE_CONFIG_DIR"); dir != "" {
		return dir
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(base, "paneline")
}

func setDefaults(v *viper.Viper) {
	g := segment.DefaultGlyphs()

	v.SetDefault("render.include_status_glyph", true)
	v.SetDefault("render.combine_file_counts", true)
	v.SetDefault("render.separator", " ")

	v.SetDefault("theme.glyphs.clean", g.Clean)
	v.SetDefault("theme.glyphs.dirty", g.Dirty)
	v.SetDefault("theme.glyphs.broken", g.Broken)
	v.SetDefault("theme.glyphs.unknown", g.Unknown)
	v.SetDefault("theme.glyphs.stash", g.Stash)
	v.SetDefault("theme.glyphs.staged", g.Staged)
	v.SetDefault("theme.glyphs.unstaged", g.Unstaged)
	v.SetDefault("theme.glyphs.untracked", g.Untracked)
	v.SetDefault("theme.glyphs.count_join", g.CountJoin)

	for tag, colour := range segment.DefaultPalette() {
		v.SetDefault("theme.colors."+string(tag), colour)
	}

	v.SetDefault("logging.file_enabled", false)
	v.SetDefault("logging.dir", defaultLogDir())
	v.SetDefault("logging.max_size_mb", 10)
	v.SetDefault("logging.max_age_days", 7)
	v.SetDefault("logging.max_backups", 2)
}

func defaultLogDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return "."
	}
	return filepath.Join(base, "paneline")
}

// RenderOptions converts the configuration into renderer options.
func (c *Config) RenderOptions() segment.Options {
	return segment.Options{
		IncludeStatusGlyph: c.Render.IncludeStatusGlyph,
		CombineFileCounts:  c.Render.CombineFileCounts,
		Glyphs: segment.Glyphs{
			Clean:     c.Theme.Glyphs.Clean,
			Dirty:     c.Theme.Glyphs.Dirty,
			Broken:    c.Theme.Glyphs.Broken,
			Unknown:   c.Theme.Glyphs.Unknown,
			Stash:     c.Theme.Glyphs.Stash,
			Staged:    c.Theme.Glyphs.Staged,
			Unstaged:  c.Theme.Glyphs.Unstaged,
			Untracked: c.Theme.Glyphs.Untracked,
			CountJoin: c.Theme.Glyphs.CountJoin,
		},
	}
}

// Palette converts the configured colour mapping into a renderer palette.
func (c *Config) Palette() segment.Palette {
	palette := segment.DefaultPalette()
	for tag, colour := range c.Theme.Colors {
		palette[models.StyleTag(tag)] = colour
	}
	return palette
}
