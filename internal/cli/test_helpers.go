package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"specwiz/internal/config"
	"specwiz/internal/identity"
	"specwiz/internal/project"
	"specwiz/internal/templates"
	"specwiz/internal/wizard"
)

// MockCatalog is a mock for testing.
type MockCatalog struct {
	// Entries are returned on every call.
	Entries []templates.CatalogEntry
	// Err, when set, makes every call fail.
	Err error
}

func (m *MockCatalog) Catalog() (*templates.Catalog, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return &templates.Catalog{Entries: m.Entries}, nil
}

// newTestApp builds an App with mocks and a buffer capturing output.
func newTestApp(store *wizard.MockTemplateStore, creator *wizard.MockCreator) (*App, *bytes.Buffer) {
	if store == nil {
		store = &wizard.MockTemplateStore{}
	}
	if creator == nil {
		creator = &wizard.MockCreator{Created: project.Project{ID: "p-1", Name: "Demo"}}
	}

	out := &bytes.Buffer{}
	app := &App{
		Config:   config.DefaultConfig(),
		Store:    store,
		Creator:  creator,
		Identity: identity.Static{Value: project.Author{Name: "Sam Rivera", Email: "sam@example.com"}},
		Catalog:  &MockCatalog{},
		Out:      out,
	}
	return app, out
}

// writeAnswersFile writes an answers YAML document to a temporary directory
// and returns its path.
func writeAnswersFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "answers.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write answers file: %v", err)
	}
	return path
}
