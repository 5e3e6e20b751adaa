// Package config provides configuration loading and management for specwiz.
//
// Configuration is loaded using Viper, supporting YAML config files and
// environment variable overrides. The defaults work out of the box: the file
// template store looks in conventional locations and the API client stays
// disabled until a base URL is configured.
//
// Key types:
//   - [Config] is the root configuration container with all settings
//   - [Loader] handles Viper-based configuration loading
//
// Configuration priority (highest to lowest):
//  1. Environment variables (SPECWIZ_ prefix)
//  2. Config file specified by SPECWIZ_CONFIG_PATH
//  3. User config directory (platform-standard):
//     - Linux: ~/.config/specwiz/config.yaml
//     - macOS: ~/Library/Application Support/specwiz/config.yaml
//     - Windows: %APPDATA%\specwiz\config.yaml
//  4. ./specwiz.yaml
//  5. [DefaultConfig] defaults
package config

// Config represents the root configuration structure.
//
// This is the main configuration container loaded by [Loader] and used
// throughout the application. Use [DefaultConfig] to get sensible defaults.
type Config struct {
	// API configures the HTTP template store and project creation client.
	API APIConfig `mapstructure:"api"`

	// Templates configures the file-backed template store.
	Templates TemplatesConfig `mapstructure:"templates"`

	// Author is stamped into payload metadata on submission.
	Author AuthorConfig `mapstructure:"author"`

	// Wizard contains wizard session settings.
	Wizard WizardConfig `mapstructure:"wizard"`

	// Log contains logging settings.
	Log LogConfig `mapstructure:"log"`
}

// APIConfig contains HTTP client settings for the backend services.
//
// When BaseURL is empty the tool runs against the file-backed template store
// only, and project creation is unavailable until a base URL is configured.
type APIConfig struct {
	// BaseURL is the backend root, e.g. "https://api.example.com".
	BaseURL string `mapstructure:"base_url"`

	// APIKey authenticates requests as a bearer token.
	// Can be overridden with the SPECWIZ_API_KEY environment variable.
	APIKey string `mapstructure:"api_key"`

	// TimeoutSeconds bounds each request. Default: 15.
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// TemplatesConfig contains file-backed template store settings.
type TemplatesConfig struct {
	// Dir is the directory holding template YAML files and catalog.yaml.
	// Empty means auto-discovery; see the templates package.
	Dir string `mapstructure:"dir"`
}

// AuthorConfig identifies the project author for payload metadata.
type AuthorConfig struct {
	// Name is the author display name.
	// Can be overridden with the SPECWIZ_AUTHOR_NAME environment variable.
	Name string `mapstructure:"name"`

	// Email is the author contact address.
	// Can be overridden with the SPECWIZ_AUTHOR_EMAIL environment variable.
	Email string `mapstructure:"email"`
}

// WizardConfig contains wizard session settings.
type WizardConfig struct {
	// ExitPath is where backing out of the first step navigates to.
	// Default: "/projects".
	ExitPath string `mapstructure:"exit_path"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error. Default: "info".
	Level string `mapstructure:"level"`

	// JSON switches log output to JSON format.
	JSON bool `mapstructure:"json"`
}

// DefaultConfig returns a new [Config] with sensible defaults.
//
// The defaults require no configuration file: templates come from the
// conventional directories, the API client is disabled, and logging is
// human-readable at info level.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			TimeoutSeconds: 15,
		},
		Wizard: WizardConfig{
			ExitPath: "/projects",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
