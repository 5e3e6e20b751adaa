package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Loader handles Viper-based configuration loading.
//
// Use [NewLoader] to create one, then [Loader.Load] for the standard search
// order or [Loader.LoadFromFile] for an explicit path.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new [Loader] with defaults and environment binding
// prepared.
func NewLoader() *Loader {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetEnvPrefix("SPECWIZ")
	v.AutomaticEnv()

	// Shorthand environment variables for the common overrides.
	_ = v.BindEnv("api.base_url", "SPECWIZ_API_URL")
	_ = v.BindEnv("api.api_key", "SPECWIZ_API_KEY")
	_ = v.BindEnv("templates.dir", "SPECWIZ_TEMPLATES_DIR")
	_ = v.BindEnv("author.name", "SPECWIZ_AUTHOR_NAME")
	_ = v.BindEnv("author.email", "SPECWIZ_AUTHOR_EMAIL")

	setDefaults(v)

	return &Loader{v: v}
}

// setDefaults registers [DefaultConfig] values so partial config files and
// environment variables layer on top of them.
func setDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("api.base_url", def.API.BaseURL)
	v.SetDefault("api.timeout_seconds", def.API.TimeoutSeconds)
	v.SetDefault("templates.dir", def.Templates.Dir)
	v.SetDefault("wizard.exit_path", def.Wizard.ExitPath)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.json", def.Log.JSON)
}

// Load reads configuration using the standard search order described in the
// package documentation. A missing config file is not an error; defaults and
// environment variables still apply.
func (l *Loader) Load() (*Config, error) {
	if path := os.Getenv("SPECWIZ_CONFIG_PATH"); path != "" {
		return l.LoadFromFile(path)
	}

	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err == nil {
			return l.LoadFromFile(path)
		}
	}

	return l.unmarshal()
}

// LoadFromFile reads configuration from an explicit file path. The file must
// exist and parse; environment variables still take priority over its values.
func (l *Loader) LoadFromFile(path string) (*Config, error) {
	l.v.SetConfigFile(path)
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return l.unmarshal()
}

func (l *Loader) unmarshal() (*Config, error) {
	cfg := DefaultConfig()
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// searchPaths lists the config file locations tried in order by [Loader.Load].
func searchPaths() []string {
	var paths []string
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "specwiz", "config.yaml"))
	}
	paths = append(paths, "specwiz.yaml")
	return paths
}
