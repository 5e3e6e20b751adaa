// Package identity resolves the author metadata stamped into project
// creation payloads.
//
// Key types:
//   - [Provider]: source of author name and email
//   - [ConfigProvider]: reads the configured author, erroring when unset
//   - [Static]: fixed author for tests and scripted runs
package identity

import (
	"errors"
	"strings"

	"specwiz/internal/config"
	"specwiz/internal/project"
)

// ErrNoAuthor indicates no author identity is configured. Callers should
// prompt the user to set author.name and author.email in the config file
// or the SPECWIZ_AUTHOR_NAME / SPECWIZ_AUTHOR_EMAIL environment variables.
var ErrNoAuthor = errors.New("no author configured")

// Provider supplies the author recorded on created projects.
type Provider interface {
	Author() (project.Author, error)
}

// ConfigProvider resolves the author from loaded configuration.
type ConfigProvider struct {
	cfg *config.Config
}

func NewConfigProvider(cfg *config.Config) *ConfigProvider {
	return &ConfigProvider{cfg: cfg}
}

func (p *ConfigProvider) Author() (project.Author, error) {
	if p.cfg == nil {
		return project.Author{}, ErrNoAuthor
	}
	name := strings.TrimSpace(p.cfg.Author.Name)
	email := strings.TrimSpace(p.cfg.Author.Email)
	if name == "" {
		return project.Author{}, ErrNoAuthor
	}
	return project.Author{Name: name, Email: email}, nil
}

// Static returns the same author on every call.
type Static struct {
	Value project.Author
}

func (s Static) Author() (project.Author, error) {
	return s.Value, nil
}
