package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"specwiz/internal/config"
	"specwiz/internal/templates"
)

func TestExitError(t *testing.T) {
	err := NewExitError(3)
	assert.Equal(t, "exit status 3", err.Error())

	code, ok := IsExitError(err)
	assert.True(t, ok)
	assert.Equal(t, 3, code)

	code, ok = IsExitError(errors.New("plain"))
	assert.False(t, ok)
	assert.Equal(t, 0, code)

	_, ok = IsExitError(nil)
	assert.False(t, ok)
}

func TestRunWithConfig_UnknownCommand(t *testing.T) {
	app, _ := newTestApp(nil, nil)

	result := RunWithConfig(app, []string{"bogus"})

	assert.Equal(t, 1, result.ExitCode)
	assert.Error(t, result.Err)
}

func TestTemplatesCommand_ListsEntries(t *testing.T) {
	app, out := newTestApp(nil, nil)
	app.Catalog = &MockCatalog{Entries: []templates.CatalogEntry{
		{ID: "saas", Name: "SaaS Starter", Version: "2.0", Description: "Multi-tenant starter"},
		{ID: "blog", Name: "Blog", Version: "1.1"},
	}}

	result := RunWithConfig(app, []string{"templates"})

	require.Equal(t, 0, result.ExitCode)
	assert.Contains(t, out.String(), "saas")
	assert.Contains(t, out.String(), "SaaS Starter")
	assert.Contains(t, out.String(), "blog")
}

func TestTemplatesCommand_Empty(t *testing.T) {
	app, out := newTestApp(nil, nil)

	result := RunWithConfig(app, []string{"templates"})

	require.Equal(t, 0, result.ExitCode)
	assert.Contains(t, out.String(), "No templates available")
}

func TestTemplatesCommand_Error(t *testing.T) {
	app, out := newTestApp(nil, nil)
	app.Catalog = &MockCatalog{Err: errors.New("listing unavailable")}

	result := RunWithConfig(app, []string{"templates"})

	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, out.String(), "listing unavailable")
}

func TestNewCommand_NoCreator(t *testing.T) {
	app, out := newTestApp(nil, nil)
	app.Creator = nil

	result := RunWithConfig(app, []string{"new"})

	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, out.String(), "base URL")
}

func TestNewApp_FileStoreWithoutAPI(t *testing.T) {
	cfg := config.DefaultConfig()

	app, err := NewApp(cfg)

	require.NoError(t, err)
	assert.Nil(t, app.Creator)
	_, isFileStore := app.Store.(*templates.FileStore)
	assert.True(t, isFileStore)
}

func TestNewApp_APIConfigured(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.API.BaseURL = "https://api.example.com"

	app, err := NewApp(cfg)

	require.NoError(t, err)
	assert.NotNil(t, app.Creator)
	_, isFileStore := app.Store.(*templates.FileStore)
	assert.False(t, isFileStore)
}

func TestNewApp_InvalidBaseURL(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.API.BaseURL = "not-a-url"

	_, err := NewApp(cfg)

	assert.Error(t, err)
}
