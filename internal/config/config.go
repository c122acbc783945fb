package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
	"pkt.systems/pslog"

	"github.com/pluqqy/schemadeck/pkg/models"
)

// EnvPrefix prefixes every environment override, e.g. SCHEMADECK_PRO=true
const EnvPrefix = "SCHEMADECK"

// Config holds project configuration
type Config struct {
	Pro    bool         `mapstructure:"pro" yaml:"pro"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	Editor EditorConfig `mapstructure:"editor" yaml:"editor"`
	UI     UIConfig     `mapstructure:"ui" yaml:"ui"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// EditorConfig holds editor panel settings
type EditorConfig struct {
	DefaultTab string `mapstructure:"default_tab" yaml:"default_tab"`
}

// UIConfig holds presentation settings
type UIConfig struct {
	ShowIcons bool `mapstructure:"show_icons" yaml:"show_icons"`
}

// Default returns the configuration used when no file or env override exists
func Default() Config {
	return Config{
		Pro:    false,
		Log:    LogConfig{Level: "info"},
		Editor: EditorConfig{DefaultTab: string(models.TabDefault)},
		UI:     UIConfig{ShowIcons: true},
	}
}

// Path returns the config file inside a project directory
func Path(projectDir string) string {
	return filepath.Join(projectDir, "config.yaml")
}

// Load reads <projectDir>/config.yaml when present and applies SCHEMADECK_*
// env overrides on top of the defaults
func Load(projectDir string) (Config, error) {
	def := Default()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("pro", def.Pro)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("editor.default_tab", def.Editor.DefaultTab)
	v.SetDefault("ui.show_icons", def.UI.ShowIcons)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if projectDir != "" {
		path := Path(projectDir)
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("stat config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks enumerated values
func (c Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "trace", "debug", "info", "error":
	default:
		return fmt.Errorf("invalid log.level %q (trace, debug, info or error)", c.Log.Level)
	}
	if _, err := models.ParseEditorTab(c.Editor.DefaultTab); err != nil {
		return fmt.Errorf("invalid editor.default_tab: %w", err)
	}
	return nil
}

// DefaultTab returns the tab the editor opens on
func (c Config) DefaultTab() models.EditorTab {
	tab, err := models.ParseEditorTab(c.Editor.DefaultTab)
	if err != nil {
		return models.TabDefault
	}
	return tab
}

// LogOptions returns console logger options at the configured level
func (c Config) LogOptions() pslog.Options {
	opts := pslog.Options{Mode: pslog.ModeConsole, MinLevel: pslog.InfoLevel}
	switch strings.ToLower(c.Log.Level) {
	case "trace":
		opts.MinLevel = pslog.TraceLevel
	case "debug":
		opts.MinLevel = pslog.DebugLevel
	case "error":
		opts.MinLevel = pslog.ErrorLevel
	}
	return opts
}

// Save writes cfg to <projectDir>/config.yaml, creating the directory if needed
func Save(projectDir string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(projectDir, 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	content, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(Path(projectDir), content, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
