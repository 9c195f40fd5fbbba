// Package config loads todox settings from defaults, an optional TOML file,
// TODOX_* environment variables and command-line flags, in increasing order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"todox/internal/tasks"
)

// Tab bar styles, matching the two looks the app ships with.
const (
	StylePlain      = "plain"
	StyleFuturistic = "futuristic"
)

// Config holds application configuration.
type Config struct {
	UI       UIConfig
	Tasks    TasksConfig
	DebugLog string `mapstructure:"debug_log"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Style   string
	Title   string
	ExitTab bool `mapstructure:"exit_tab"`
	Mouse   bool
}

// TasksConfig holds the initial task list.
type TasksConfig struct {
	Seed []string
}

// Flags returns the flag set understood by Load.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("todox", pflag.ContinueOnError)
	fs.String("config", "", "path to a TOML config file")
	fs.String("style", StylePlain, "tab bar style: plain or futuristic")
	fs.Bool("exit-tab", false, "show an Exit tab that closes the app")
	fs.Bool("mouse", true, "enable mouse taps on the tab bar")
	fs.String("debug-log", "", "write debug logs to this file")
	return fs
}

// Load reads configuration. fs may be nil; when given it must come from Flags
// and already be parsed. Env var overrides use prefix TODOX_.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault("ui.style", StylePlain)
	v.SetDefault("ui.title", "Mini To-Do")
	v.SetDefault("ui.exit_tab", false)
	v.SetDefault("ui.mouse", true)
	v.SetDefault("tasks.seed", tasks.DefaultSeed)
	v.SetDefault("debug_log", "")

	if fs != nil {
		binds := map[string]string{
			"ui.style":    "style",
			"ui.exit_tab": "exit-tab",
			"ui.mouse":    "mouse",
			"debug_log":   "debug-log",
		}
		for key, name := range binds {
			if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	v.SetConfigType("toml")
	cfgPath := os.Getenv("TODOX_CONFIG")
	if fs != nil {
		if p, _ := fs.GetString("config"); p != "" {
			cfgPath = p
		}
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "todox"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TODOX")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicit path that cannot be read is an error; a missing default file is not.
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
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

// Validate normalizes and checks the loaded values.
func (c *Config) Validate() error {
	c.UI.Style = strings.ToLower(strings.TrimSpace(c.UI.Style))
	switch c.UI.Style {
	case "":
		c.UI.Style = StylePlain
	case StylePlain, StyleFuturistic:
	default:
		return fmt.Errorf("invalid ui.style %q (want %s or %s)", c.UI.Style, StylePlain, StyleFuturistic)
	}
	if strings.TrimSpace(c.UI.Title) == "" {
		c.UI.Title = "Mini To-Do"
	}
	return nil
}
