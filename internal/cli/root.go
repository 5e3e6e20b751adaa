// Package cli defines the specwiz command tree.
//
// Commands are built around an [App] holding the wired collaborators, so
// tests can inject mocks and assert on [ExecuteResult] without process exits.
//
// Key types:
//   - [App] - the dependency container commands run against
//   - [ExecuteResult] - exit code plus error, returned by [RunWithConfig]
//   - [ExitError] - RunE error carrying a specific exit code
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"specwiz/internal/api"
	"specwiz/internal/config"
	"specwiz/internal/identity"
	"specwiz/internal/logger"
	"specwiz/internal/templates"
	"specwiz/internal/wizard"
)

// CatalogLister lists the browsable templates. The file store implements it
// directly; the HTTP client is adapted through [apiCatalog].
type CatalogLister interface {
	Catalog() (*templates.Catalog, error)
}

// App holds the wired collaborators the commands run against.
//
// NewApp builds the production wiring from configuration; tests construct an
// App literal with mocks instead.
type App struct {
	Config   *config.Config
	Store    wizard.TemplateStore
	Creator  wizard.ProjectCreator
	Identity identity.Provider
	Catalog  CatalogLister

	// Out receives command output. Defaults to stdout in Execute.
	Out io.Writer
}

// NewApp wires the collaborators from configuration. With an API base URL
// configured, templates and project creation go over HTTP; otherwise
// templates come from the local file store and creation is unavailable until
// a base URL is set.
func NewApp(cfg *config.Config) (*App, error) {
	app := &App{
		Config:   cfg,
		Identity: identity.NewConfigProvider(cfg),
		Out:      os.Stdout,
	}

	fileStore := templates.NewFileStoreWithDir("", cfg.Templates.Dir)
	app.Store = fileStore
	app.Catalog = fileStore

	if cfg.API.BaseURL != "" {
		client, err := api.New(cfg)
		if err != nil {
			return nil, err
		}
		app.Store = client
		app.Creator = client
		app.Catalog = &apiCatalog{client: client}
	}

	return app, nil
}

// ExecuteResult carries the outcome of a command run for the caller to act
// on. Only Execute turns it into an os.Exit.
type ExecuteResult struct {
	ExitCode int
	Err      error
}

// RunWithConfig executes the command tree against the given app with the
// given arguments. It never exits the process.
func RunWithConfig(app *App, args []string) ExecuteResult {
	cmd := newRootCommand(app)
	cmd.SetArgs(args)
	if app.Out != nil {
		cmd.SetOut(app.Out)
		cmd.SetErr(app.Out)
	}

	if err := cmd.Execute(); err != nil {
		if code, ok := IsExitError(err); ok {
			return ExecuteResult{ExitCode: code, Err: err}
		}
		return ExecuteResult{ExitCode: 1, Err: err}
	}
	return ExecuteResult{ExitCode: 0}
}

// Execute is the process entry point: load config, set up logging, wire the
// app, run, exit.
func Execute() {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Setup(cfg.Log.Level, cfg.Log.JSON)

	app, err := NewApp(cfg)
	if err != nil {
		charmlog.Error("failed to initialize", "error", err)
		os.Exit(1)
	}

	result := RunWithConfig(app, os.Args[1:])
	if result.Err != nil {
		if _, ok := IsExitError(result.Err); !ok {
			charmlog.Error("command failed", "error", result.Err)
		}
	}
	os.Exit(result.ExitCode)
}

func newRootCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "specwiz",
		Short: "Project configuration wizard",
		Long: `specwiz walks you through defining a new project: pick a template or start
blank, fill in the basics, tech stack, requirements, features, pages, and API
endpoints, then review and create the project.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newNewCommand(app))
	cmd.AddCommand(newTemplatesCommand(app))
	return cmd
}

// apiCatalog adapts the HTTP client's template listing to [CatalogLister].
type apiCatalog struct {
	client *api.Client
}

func (a *apiCatalog) Catalog() (*templates.Catalog, error) {
	list, err := a.client.ListTemplates(context.Background())
	if err != nil {
		return nil, err
	}
	catalog := &templates.Catalog{Entries: make([]templates.CatalogEntry, 0, len(list))}
	for _, tmpl := range list {
		catalog.Entries = append(catalog.Entries, templates.CatalogEntry{
			ID:          tmpl.ID,
			Name:        tmpl.Name,
			Version:     tmpl.Version,
			Description: tmpl.Description,
		})
	}
	return catalog, nil
}
