// Package project defines the project specification data model shared by the
// wizard, the template stores, and the creation API client.
//
// The model has two halves: [Template], the immutable defaults a wizard session
// starts from, and [CreatePayload], the finished specification handed to the
// project creation service. Both are serializable to YAML (file-backed template
// store) and JSON (HTTP API).
//
// Key types:
//   - [Template] - immutable template with defaults and nested structure data
//   - [TemplateData] - features, pages, and API surface of a template
//   - [CreatePayload] - the final project creation request
//   - [FlexibleStrings] - list that accepts an array or a comma-delimited scalar
package project

// Template is an immutable project template, either fetched from a store or
// synthesized locally for a blank project via [NewBlankTemplate].
type Template struct {
	// ID identifies the template. The blank template uses [BlankTemplateID].
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Version     string `json:"version" yaml:"version"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Defaults seed the wizard accumulator's basics when the template is selected.
	Defaults Defaults `json:"defaults" yaml:"defaults"`

	// TechStack holds flat key/value technology selections
	// (e.g. "frontend" -> "react", "database" -> "postgresql").
	TechStack map[string]string `json:"tech_stack,omitempty" yaml:"tech_stack,omitempty"`

	// Data carries the template's feature, page, and API structures.
	Data TemplateData `json:"template_data" yaml:"template_data"`
}

// Defaults are the basics a template pre-fills: project identity plus goal and
// user lists. Goal and user lists accept either an array or a comma-delimited
// string in serialized form.
type Defaults struct {
	Name          string          `json:"name,omitempty" yaml:"name,omitempty"`
	Description   string          `json:"description,omitempty" yaml:"description,omitempty"`
	BusinessGoals FlexibleStrings `json:"business_goals,omitempty" yaml:"business_goals,omitempty"`
	TargetUsers   FlexibleStrings `json:"target_users,omitempty" yaml:"target_users,omitempty"`
}

// TemplateData groups the nested structures a template contributes: named
// feature modules, audience-tiered pages, and the API surface.
type TemplateData struct {
	Features Features   `json:"features" yaml:"features"`
	Pages    PageGroups `json:"pages" yaml:"pages"`
	API      APISurface `json:"api" yaml:"api"`
}

// Features holds the named feature modules of a template or project.
type Features struct {
	CoreModules []FeatureModule `json:"core_modules" yaml:"core_modules"`
}

// FeatureModule is a named module with enablement flags and provider choices.
type FeatureModule struct {
	Name      string   `json:"name" yaml:"name"`
	Enabled   bool     `json:"enabled" yaml:"enabled"`
	Optional  bool     `json:"optional,omitempty" yaml:"optional,omitempty"`
	Providers []string `json:"providers,omitempty" yaml:"providers,omitempty"`
}

// PageGroups tiers pages by audience. All three groups are replaced as a unit
// when the pages step submits.
type PageGroups struct {
	Public        []Page `json:"public" yaml:"public"`
	Authenticated []Page `json:"authenticated" yaml:"authenticated"`
	Admin         []Page `json:"admin" yaml:"admin"`
}

// Page is a named route with its component list and enablement flag.
type Page struct {
	Name       string   `json:"name" yaml:"name"`
	Route      string   `json:"route,omitempty" yaml:"route,omitempty"`
	Components []string `json:"components,omitempty" yaml:"components,omitempty"`
	Enabled    bool     `json:"enabled" yaml:"enabled"`
}

// APISurface holds the named endpoints of a template or project.
type APISurface struct {
	Endpoints []Endpoint `json:"endpoints" yaml:"endpoints"`
}

// Endpoint is a named API endpoint with its HTTP methods, auth requirement,
// and allowed roles.
type Endpoint struct {
	Name         string   `json:"name" yaml:"name"`
	Methods      []string `json:"methods,omitempty" yaml:"methods,omitempty"`
	AuthRequired bool     `json:"auth_required" yaml:"auth_required"`
	Roles        []string `json:"roles,omitempty" yaml:"roles,omitempty"`
}

// Requirement is an opaque requirement record. The wizard stores requirements
// verbatim; their semantics belong to the consuming service.
type Requirement struct {
	ID          string `json:"id,omitempty" yaml:"id,omitempty"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Priority    string `json:"priority,omitempty" yaml:"priority,omitempty"`
}

// Author identifies who is creating the project, stamped into payload metadata.
type Author struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// Metadata carries payload schema version, author identity, and the source
// template's name and version when a template was used.
type Metadata struct {
	Version         string `json:"version" yaml:"version"`
	Author          Author `json:"author" yaml:"author"`
	TemplateName    string `json:"template_name,omitempty" yaml:"template_name,omitempty"`
	TemplateVersion string `json:"template_version,omitempty" yaml:"template_version,omitempty"`
}

// PayloadVersion is the schema version stamped into [Metadata.Version].
const PayloadVersion = "1.0"

// CreatePayload is the complete project creation request assembled on the
// review step.
//
// Name and Description are the only fields required for submission; everything
// else is optional or defaulted. Timeline and Budget are passed through
// verbatim, the wizard does not know their internal shape.
type CreatePayload struct {
	Name        string `json:"name" yaml:"name" validate:"required"`
	Description string `json:"description" yaml:"description" validate:"required"`

	// TemplateType records the template family the project was built from,
	// [BlankTemplateID] for blank projects.
	TemplateType string `json:"template_type" yaml:"template_type"`

	BusinessGoals []string `json:"business_goals" yaml:"business_goals"`
	TargetUsers   []string `json:"target_users" yaml:"target_users"`

	Domain       string `json:"domain,omitempty" yaml:"domain,omitempty"`
	Organization string `json:"organization,omitempty" yaml:"organization,omitempty"`
	ProjectLead  string `json:"project_lead,omitempty" yaml:"project_lead,omitempty"`

	TechStack map[string]string `json:"tech_stack,omitempty" yaml:"tech_stack,omitempty"`

	FunctionalRequirements    []Requirement `json:"functional_requirements" yaml:"functional_requirements"`
	NonFunctionalRequirements []Requirement `json:"non_functional_requirements" yaml:"non_functional_requirements"`

	// TemplateID is set only when a named template was selected.
	TemplateID string `json:"template_id,omitempty" yaml:"template_id,omitempty"`

	// TemplateData is the full feature/page/API structure as refined by the
	// wizard. Nil when none of the structural steps executed.
	TemplateData *TemplateData `json:"template_data,omitempty" yaml:"template_data,omitempty"`

	Metadata Metadata `json:"metadata" yaml:"metadata"`

	Timeline map[string]any `json:"timeline,omitempty" yaml:"timeline,omitempty"`
	Budget   map[string]any `json:"budget,omitempty" yaml:"budget,omitempty"`
}

// Project is a created project as returned by the creation service. Only the
// identifier matters to this tool; it is handed to navigation after creation.
type Project struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}
