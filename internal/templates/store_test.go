package templates

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"specwiz/internal/project"
)

func writeTemplateFile(t *testing.T, dir, name, content string) {
	t.Helper()

	err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
	if err != nil {
		t.Fatalf("failed to write template file: %v", err)
	}
}

const saasTemplate = `
id: saas
name: SaaS Starter
version: "2.1"
description: Multi-tenant SaaS starter
defaults:
  name: SaaS App
  business_goals: scale, reliability
  target_users:
    - admins
    - operators
tech_stack:
  frontend: react
  database: postgresql
template_data:
  features:
    core_modules:
      - name: auth
        enabled: true
        providers: [oauth, saml]
  pages:
    public:
      - name: Landing
        route: /
        enabled: true
    authenticated: []
    admin: []
  api:
    endpoints:
      - name: ListUsers
        methods: [GET]
        auth_required: true
        roles: [admin]
`

func TestFileStore_FetchTemplate(t *testing.T) {
	dir := t.TempDir()
	writeTemplateFile(t, dir, "saas.yaml", saasTemplate)

	store := NewFileStoreWithDir("", dir)
	tmpl, err := store.FetchTemplate(context.Background(), "saas")

	require.NoError(t, err)
	assert.Equal(t, "saas", tmpl.ID)
	assert.Equal(t, "SaaS Starter", tmpl.Name)

	// Comma-string and sequence list shapes both normalize.
	assert.Equal(t, []string{"scale", "reliability"}, tmpl.Defaults.BusinessGoals.Strings())
	assert.Equal(t, []string{"admins", "operators"}, tmpl.Defaults.TargetUsers.Strings())

	assert.Equal(t, "react", tmpl.TechStack["frontend"])
	require.Len(t, tmpl.Data.Features.CoreModules, 1)
	assert.Equal(t, []string{"oauth", "saml"}, tmpl.Data.Features.CoreModules[0].Providers)
	require.Len(t, tmpl.Data.API.Endpoints, 1)
	assert.True(t, tmpl.Data.API.Endpoints[0].AuthRequired)
}

func TestFileStore_FetchTemplate_DefaultsIDFromFileName(t *testing.T) {
	dir := t.TempDir()
	writeTemplateFile(t, dir, "minimal.yaml", "name: Minimal\n")

	store := NewFileStoreWithDir("", dir)
	tmpl, err := store.FetchTemplate(context.Background(), "minimal")

	require.NoError(t, err)
	assert.Equal(t, "minimal", tmpl.ID)
}

func TestFileStore_FetchTemplate_NotFound(t *testing.T) {
	store := NewFileStoreWithDir("", t.TempDir())

	_, err := store.FetchTemplate(context.Background(), "missing")

	assert.ErrorIs(t, err, project.ErrTemplateNotFound)
}

func TestFileStore_FetchTemplate_InvalidID(t *testing.T) {
	store := NewFileStoreWithDir("", t.TempDir())

	for _, id := range []string{"", "..", "a/b", `a\b`} {
		_, err := store.FetchTemplate(context.Background(), id)
		assert.ErrorIs(t, err, project.ErrTemplateNotFound, "id %q", id)
	}
}

func TestFileStore_FetchTemplate_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeTemplateFile(t, dir, "broken.yaml", "{{not yaml")

	store := NewFileStoreWithDir("", dir)
	_, err := store.FetchTemplate(context.Background(), "broken")

	require.Error(t, err)
	assert.NotErrorIs(t, err, project.ErrTemplateNotFound)
}

func TestResolveDir(t *testing.T) {
	t.Run("env variable wins", func(t *testing.T) {
		t.Setenv("SPECWIZ_TEMPLATES_DIR", "/env/templates")
		assert.Equal(t, "/env/templates", ResolveDir("/base", "/explicit"))
	})

	t.Run("explicit dir over discovery", func(t *testing.T) {
		assert.Equal(t, "/explicit", ResolveDir("/base", "/explicit"))
	})

	t.Run("discovers conventional directory", func(t *testing.T) {
		base := t.TempDir()
		dir := filepath.Join(base, "templates")
		require.NoError(t, os.MkdirAll(dir, 0755))

		assert.Equal(t, dir, ResolveDir(base, ""))
	})

	t.Run("falls back to first conventional path", func(t *testing.T) {
		base := t.TempDir()
		assert.Equal(t, filepath.Join(base, "templates"), ResolveDir(base, ""))
	})
}

func TestFileStore_Catalog_FromFile(t *testing.T) {
	dir := t.TempDir()
	writeTemplateFile(t, dir, CatalogFile, `
templates:
  - id: saas
    name: SaaS Starter
    version: "2.1"
    description: Multi-tenant SaaS starter
  - id: blog
    name: Blog
`)

	store := NewFileStoreWithDir("", dir)
	catalog, err := store.Catalog()

	require.NoError(t, err)
	require.Len(t, catalog.Entries, 2)
	assert.Equal(t, "saas", catalog.Entries[0].ID)
	assert.Equal(t, "2.1", catalog.Entries[0].Version)
	assert.Equal(t, "Blog", catalog.Entries[1].Name)
}

func TestFileStore_Catalog_ScanFallback(t *testing.T) {
	dir := t.TempDir()
	writeTemplateFile(t, dir, "saas.yaml", saasTemplate)
	writeTemplateFile(t, dir, "blog.yaml", "name: Blog\nversion: \"1.0\"\n")
	writeTemplateFile(t, dir, "notes.txt", "not a template")

	store := NewFileStoreWithDir("", dir)
	catalog, err := store.Catalog()

	require.NoError(t, err)
	require.Len(t, catalog.Entries, 2)
	// Sorted by id.
	assert.Equal(t, "blog", catalog.Entries[0].ID)
	assert.Equal(t, "saas", catalog.Entries[1].ID)
	assert.Equal(t, "SaaS Starter", catalog.Entries[1].Name)
}

func TestFileStore_Catalog_MissingDirIsEmpty(t *testing.T) {
	store := NewFileStoreWithDir("", filepath.Join(t.TempDir(), "nope"))

	catalog, err := store.Catalog()

	require.NoError(t, err)
	assert.Empty(t, catalog.Entries)
}
