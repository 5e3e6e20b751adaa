package wizard

import "specwiz/internal/project"

// Accumulator is the in-progress project specification built across wizard
// steps. It is a plain value: the step mergers in this package take an
// Accumulator and return a new one, never mutating shared state in place.
//
// Array-typed fields hold trimmed, non-empty strings once the step owning them
// has executed; the mergers enforce that at the boundary. TemplateData is nil
// until a template is seeded or one of the structural steps (features, pages,
// api) runs.
type Accumulator struct {
	Name         string
	Description  string
	Domain       string
	Organization string
	ProjectLead  string

	BusinessGoals []string
	TargetUsers   []string

	// TechStack holds flat key/value technology selections, stored verbatim.
	TechStack map[string]string

	FunctionalRequirements    []project.Requirement
	NonFunctionalRequirements []project.Requirement

	// TemplateData mirrors the template shape (features/pages/api).
	TemplateData *project.TemplateData

	// Timeline and Budget are opaque pass-through blocks; the wizard copies
	// them into the payload without inspecting their shape.
	Timeline map[string]any
	Budget   map[string]any
}

// SeedFromTemplate derives the template-owned fields of the accumulator from a
// template's defaults: name, description, business goals, target users, tech
// stack, and the full template data block.
//
// Seeding is a full replacement of those fields, not a merge. Resolving
// template A and then template B leaves nothing of A behind, and re-selecting
// a template discards any downstream feature/page/api customizations. Fields
// the template does not own (domain, organization, lead, requirements,
// timeline, budget) are carried through untouched.
func SeedFromTemplate(acc Accumulator, tmpl project.Template) Accumulator {
	acc.Name = tmpl.Defaults.Name
	acc.Description = tmpl.Defaults.Description
	acc.BusinessGoals = tmpl.Defaults.BusinessGoals.Strings()
	acc.TargetUsers = tmpl.Defaults.TargetUsers.Strings()
	acc.TechStack = copyStringMap(tmpl.TechStack)

	data := cloneTemplateData(tmpl.Data)
	acc.TemplateData = &data
	return acc
}

// Clone returns a deep copy of the accumulator. Controller accessors hand out
// clones so callers cannot alias the controller's internal state.
func (a Accumulator) Clone() Accumulator {
	out := a
	out.BusinessGoals = copyStrings(a.BusinessGoals)
	out.TargetUsers = copyStrings(a.TargetUsers)
	out.TechStack = copyStringMap(a.TechStack)
	out.FunctionalRequirements = copyRequirements(a.FunctionalRequirements)
	out.NonFunctionalRequirements = copyRequirements(a.NonFunctionalRequirements)
	if a.TemplateData != nil {
		data := cloneTemplateData(*a.TemplateData)
		out.TemplateData = &data
	}
	out.Timeline = copyAnyMap(a.Timeline)
	out.Budget = copyAnyMap(a.Budget)
	return out
}

// templateData returns the accumulator's template data, creating an empty
// block when none exists yet. The returned copy is safe to modify.
func (a Accumulator) templateData() project.TemplateData {
	if a.TemplateData == nil {
		return project.NewBlankTemplate().Data
	}
	return cloneTemplateData(*a.TemplateData)
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func copyStringMap(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func copyAnyMap(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func copyRequirements(in []project.Requirement) []project.Requirement {
	if in == nil {
		return nil
	}
	out := make([]project.Requirement, len(in))
	copy(out, in)
	return out
}

func copyModules(in []project.FeatureModule) []project.FeatureModule {
	out := make([]project.FeatureModule, len(in))
	for i, m := range in {
		m.Providers = copyStrings(m.Providers)
		out[i] = m
	}
	return out
}

func copyPages(in []project.Page) []project.Page {
	out := make([]project.Page, len(in))
	for i, p := range in {
		p.Components = copyStrings(p.Components)
		out[i] = p
	}
	return out
}

func copyEndpoints(in []project.Endpoint) []project.Endpoint {
	out := make([]project.Endpoint, len(in))
	for i, e := range in {
		e.Methods = copyStrings(e.Methods)
		e.Roles = copyStrings(e.Roles)
		out[i] = e
	}
	return out
}

func cloneTemplateData(in project.TemplateData) project.TemplateData {
	return project.TemplateData{
		Features: project.Features{CoreModules: copyModules(in.Features.CoreModules)},
		Pages: project.PageGroups{
			Public:        copyPages(in.Pages.Public),
			Authenticated: copyPages(in.Pages.Authenticated),
			Admin:         copyPages(in.Pages.Admin),
		},
		API: project.APISurface{Endpoints: copyEndpoints(in.API.Endpoints)},
	}
}
