package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvConfig points at an explicit config file.
const EnvConfig = "QUICKTODO_CONFIG"

// Config holds application configuration. It never carries task data.
type Config struct {
	UI  UIConfig
	Log LogConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme        string
	Language     string
	AltScreen    bool `mapstructure:"alt_screen"`
	ShowProgress bool `mapstructure:"show_progress"`
	CharLimit    int  `mapstructure:"char_limit"`
}

// LogConfig holds debug log settings.
type LogConfig struct {
	File  string
	Debug bool
}

var (
	themes    = []string{"classic", "neon", "mono"}
	languages = []string{"en", "es"}
)

// Load reads configuration from file and env. Env var overrides use prefix QUICKTODO_.
// An explicit path (or QUICKTODO_CONFIG) must exist; the default location is optional.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.theme", "classic")
	v.SetDefault("ui.language", "en")
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("ui.show_progress", true)
	v.SetDefault("ui.char_limit", 200)
	v.SetDefault("log.file", "quicktodo.log")
	v.SetDefault("log.debug", false)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "quicktodo"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("QUICKTODO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.UI.Theme = strings.ToLower(strings.TrimSpace(c.UI.Theme))
	c.UI.Language = strings.ToLower(strings.TrimSpace(c.UI.Language))
	return c, nil
}

// Validate reports the first setting the UI cannot honour.
func (c Config) Validate() error {
	if !contains(themes, c.UI.Theme) {
		return fmt.Errorf("ui.theme: unknown theme %q (want one of %s)", c.UI.Theme, strings.Join(themes, ", "))
	}
	if !contains(languages, c.UI.Language) {
		return fmt.Errorf("ui.language: unknown language %q (want one of %s)", c.UI.Language, strings.Join(languages, ", "))
	}
	if c.UI.CharLimit < 0 {
		return fmt.Errorf("ui.char_limit: must be >= 0, got %d", c.UI.CharLimit)
	}
	return nil
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
