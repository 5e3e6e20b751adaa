package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"specwiz/internal/project"
)

// CatalogFile is the listing file name inside a templates directory.
const CatalogFile = "catalog.yaml"

// CatalogEntry describes one browsable template.
type CatalogEntry struct {
	// ID is the template identifier, matching the <id>.yaml file name.
	ID string `yaml:"id"`

	// Name is the display name.
	Name string `yaml:"name"`

	// Version is the template version string.
	Version string `yaml:"version,omitempty"`

	// Description is a short summary shown in listings.
	Description string `yaml:"description,omitempty"`
}

// Catalog holds the browsable template entries of a store.
type Catalog struct {
	// Entries are the templates in listing order.
	Entries []CatalogEntry `yaml:"templates"`
}

// Catalog returns the store's template listing.
//
// When catalog.yaml exists it is authoritative. Otherwise the store scans the
// directory's template files and builds entries from their headers, sorted by
// id. A missing or empty directory yields an empty catalog, not an error.
func (s *FileStore) Catalog() (*Catalog, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, CatalogFile))
	if err == nil {
		var catalog Catalog
		if err := yaml.Unmarshal(data, &catalog); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", CatalogFile, err)
		}
		return &catalog, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", CatalogFile, err)
	}

	return s.scanCatalog()
}

// scanCatalog builds a catalog by reading every template file in the
// directory.
func (s *FileStore) scanCatalog() (*Catalog, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return &Catalog{Entries: []CatalogEntry{}}, nil
		}
		return nil, fmt.Errorf("failed to scan templates directory: %w", err)
	}

	catalog := &Catalog{Entries: []CatalogEntry{}}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".yaml") || name == CatalogFile {
			continue
		}

		id := strings.TrimSuffix(name, ".yaml")
		data, err := os.ReadFile(filepath.Join(s.dir, name))
		if err != nil {
			continue
		}

		var tmpl project.Template
		if err := yaml.Unmarshal(data, &tmpl); err != nil {
			// Unparseable files are skipped, not fatal to the listing.
			continue
		}

		if tmpl.ID == "" {
			tmpl.ID = id
		}
		catalog.Entries = append(catalog.Entries, CatalogEntry{
			ID:          tmpl.ID,
			Name:        tmpl.Name,
			Version:     tmpl.Version,
			Description: tmpl.Description,
		})
	}

	sort.Slice(catalog.Entries, func(i, j int) bool {
		return catalog.Entries[i].ID < catalog.Entries[j].ID
	})

	return catalog, nil
}
