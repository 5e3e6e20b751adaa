// Package templates provides the file-backed template store.
//
// Templates are YAML documents, one file per template named <id>.yaml, stored
// in a templates directory. A catalog.yaml alongside them lists the available
// templates for browsing; when it is absent the store builds the catalog by
// scanning the template files themselves.
//
// Key types:
//   - [FileStore] - wizard.TemplateStore implementation over a directory
//   - [Catalog] - browsable template listing
//
// Directory resolution order mirrors the config package: environment variable,
// explicit config value, then conventional locations under the working
// directory.
package templates

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"specwiz/internal/project"
)

// DirPaths lists the directories searched (in priority order) when
// auto-discovering the templates directory.
var DirPaths = []string{
	"templates",
	filepath.Join(".specwiz", "templates"),
}

// ResolveDir discovers the templates directory location.
//
// Resolution order:
//  1. SPECWIZ_TEMPLATES_DIR environment variable (used as-is if set)
//  2. Explicit dir parameter (if non-empty, e.g. from config)
//  3. Auto-discovery: tries each [DirPaths] entry under basePath
//  4. Falls back to the first conventional path (will error on read if the
//     directory does not exist)
//
// The basePath is the working directory root. Pass empty string for cwd.
func ResolveDir(basePath, dir string) string {
	if envDir := os.Getenv("SPECWIZ_TEMPLATES_DIR"); envDir != "" {
		return envDir
	}

	if dir != "" {
		return dir
	}

	for _, p := range DirPaths {
		fullPath := filepath.Join(basePath, p)
		if info, err := os.Stat(fullPath); err == nil && info.IsDir() {
			return fullPath
		}
	}

	return filepath.Join(basePath, DirPaths[0])
}

// FileStore reads templates from YAML files in a directory. It implements the
// wizard's TemplateStore interface, so the wizard cannot tell it apart from
// the HTTP-backed store.
//
// Use [NewFileStore] for auto-discovery or [NewFileStoreWithDir] for an
// explicit directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a [FileStore] that auto-discovers the templates
// directory under basePath. Pass an empty string to use the current working
// directory. The SPECWIZ_TEMPLATES_DIR environment variable overrides all
// discovery.
func NewFileStore(basePath string) *FileStore {
	return &FileStore{dir: ResolveDir(basePath, "")}
}

// NewFileStoreWithDir creates a [FileStore] that uses the specified templates
// directory. The SPECWIZ_TEMPLATES_DIR environment variable still takes
// priority if set.
func NewFileStoreWithDir(basePath, dir string) *FileStore {
	return &FileStore{dir: ResolveDir(basePath, dir)}
}

// Dir returns the resolved templates directory.
func (s *FileStore) Dir() string {
	return s.dir
}

// FetchTemplate reads and parses the template file for the given id.
//
// Returns [project.ErrTemplateNotFound] when no file exists under the id, and
// a parse error when the file is not valid YAML. The template's ID field
// defaults to the file name when the document omits it.
func (s *FileStore) FetchTemplate(ctx context.Context, id string) (project.Template, error) {
	if err := ctx.Err(); err != nil {
		return project.Template{}, err
	}

	if !validTemplateID(id) {
		return project.Template{}, fmt.Errorf("%w: %s", project.ErrTemplateNotFound, id)
	}

	data, err := os.ReadFile(filepath.Join(s.dir, id+".yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return project.Template{}, fmt.Errorf("%w: %s", project.ErrTemplateNotFound, id)
		}
		return project.Template{}, fmt.Errorf("failed to read template %s: %w", id, err)
	}

	var tmpl project.Template
	if err := yaml.Unmarshal(data, &tmpl); err != nil {
		return project.Template{}, fmt.Errorf("failed to parse template %s: %w", id, err)
	}

	if tmpl.ID == "" {
		tmpl.ID = id
	}
	return tmpl, nil
}

// validTemplateID rejects ids that would escape the templates directory.
func validTemplateID(id string) bool {
	if id == "" {
		return false
	}
	return !strings.ContainsAny(id, `/\`) && id != "." && id != ".."
}
