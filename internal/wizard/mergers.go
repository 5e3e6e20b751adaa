package wizard

import "specwiz/internal/project"

// Step mergers: one pure transformation per wizard step, each paired with a
// values extractor that pre-populates the step's form from the accumulator so
// back-navigation never loses data.
//
// Mergers never fail on missing optional fields. Absent inputs become empty
// strings or empty arrays; nothing undefined ever lands in the accumulator.
// The structural steps (features, pages, api) replace their collections
// wholesale: the UI edits those collections as a unit, and a field-by-field
// merge would silently resurrect entries the user deleted.

// BasicsInput is the basics step form: project identity plus goal and user
// lists. The lists accept either an array or a single comma-delimited string.
type BasicsInput struct {
	Name          string                  `yaml:"name" json:"name"`
	Description   string                  `yaml:"description" json:"description"`
	Domain        string                  `yaml:"domain,omitempty" json:"domain,omitempty"`
	Organization  string                  `yaml:"organization,omitempty" json:"organization,omitempty"`
	ProjectLead   string                  `yaml:"project_lead,omitempty" json:"project_lead,omitempty"`
	BusinessGoals project.FlexibleStrings `yaml:"business_goals,omitempty" json:"business_goals,omitempty"`
	TargetUsers   project.FlexibleStrings `yaml:"target_users,omitempty" json:"target_users,omitempty"`
}

// ApplyBasics merges the basics form into the accumulator. Goal and user lists
// are stored as trimmed, non-empty arrays regardless of input shape.
func ApplyBasics(acc Accumulator, in BasicsInput) Accumulator {
	acc.Name = in.Name
	acc.Description = in.Description
	acc.Domain = in.Domain
	acc.Organization = in.Organization
	acc.ProjectLead = in.ProjectLead
	acc.BusinessGoals = in.BusinessGoals.Strings()
	acc.TargetUsers = in.TargetUsers.Strings()
	return acc
}

// BasicsValues extracts the current basics form values from the accumulator.
func BasicsValues(acc Accumulator) BasicsInput {
	return BasicsInput{
		Name:          acc.Name,
		Description:   acc.Description,
		Domain:        acc.Domain,
		Organization:  acc.Organization,
		ProjectLead:   acc.ProjectLead,
		BusinessGoals: project.FlexibleStrings(copyStrings(acc.BusinessGoals)),
		TargetUsers:   project.FlexibleStrings(copyStrings(acc.TargetUsers)),
	}
}

// TechStackInput is the tech-stack step form: flat key/value selections such
// as frontend framework, backend type, database, and provider choices.
type TechStackInput struct {
	Selections map[string]string `yaml:"selections" json:"selections"`
}

// ApplyTechStack stores the selections verbatim under the accumulator's
// tech-stack sub-object. No cross-field validation happens here; technology
// compatibility is the external compatibility service's concern.
func ApplyTechStack(acc Accumulator, in TechStackInput) Accumulator {
	if in.Selections == nil {
		acc.TechStack = map[string]string{}
		return acc
	}
	acc.TechStack = copyStringMap(in.Selections)
	return acc
}

// TechStackValues extracts the current tech-stack selections.
func TechStackValues(acc Accumulator) TechStackInput {
	sel := copyStringMap(acc.TechStack)
	if sel == nil {
		sel = map[string]string{}
	}
	return TechStackInput{Selections: sel}
}

// RequirementsInput is the requirements step form: two arrays of opaque
// requirement records owned by the consuming service's schema.
type RequirementsInput struct {
	Functional    []project.Requirement `yaml:"functional" json:"functional"`
	NonFunctional []project.Requirement `yaml:"non_functional" json:"non_functional"`
}

// ApplyRequirements stores both requirement arrays verbatim. Absent arrays
// become empty, never nil propagation into the accumulator.
func ApplyRequirements(acc Accumulator, in RequirementsInput) Accumulator {
	acc.FunctionalRequirements = orEmptyRequirements(in.Functional)
	acc.NonFunctionalRequirements = orEmptyRequirements(in.NonFunctional)
	return acc
}

// RequirementsValues extracts the current requirement arrays.
func RequirementsValues(acc Accumulator) RequirementsInput {
	return RequirementsInput{
		Functional:    orEmptyRequirements(copyRequirements(acc.FunctionalRequirements)),
		NonFunctional: orEmptyRequirements(copyRequirements(acc.NonFunctionalRequirements)),
	}
}

// FeaturesInput is the features step form: the complete core module list.
type FeaturesInput struct {
	CoreModules []project.FeatureModule `yaml:"core_modules" json:"core_modules"`
}

// ApplyFeatures replaces the accumulator's core module list wholesale. A
// shorter (or empty) list fully supersedes the prior one.
func ApplyFeatures(acc Accumulator, in FeaturesInput) Accumulator {
	data := acc.templateData()
	data.Features.CoreModules = copyModules(in.CoreModules)
	acc.TemplateData = &data
	return acc
}

// FeaturesValues extracts the current core module list.
func FeaturesValues(acc Accumulator) FeaturesInput {
	if acc.TemplateData == nil {
		return FeaturesInput{CoreModules: []project.FeatureModule{}}
	}
	return FeaturesInput{CoreModules: copyModules(acc.TemplateData.Features.CoreModules)}
}

// PagesInput is the pages step form: all three audience-tier page arrays.
type PagesInput struct {
	Public        []project.Page `yaml:"public" json:"public"`
	Authenticated []project.Page `yaml:"authenticated" json:"authenticated"`
	Admin         []project.Page `yaml:"admin" json:"admin"`
}

// ApplyPages replaces all three audience-tier arrays wholesale.
func ApplyPages(acc Accumulator, in PagesInput) Accumulator {
	data := acc.templateData()
	data.Pages = project.PageGroups{
		Public:        copyPages(in.Public),
		Authenticated: copyPages(in.Authenticated),
		Admin:         copyPages(in.Admin),
	}
	acc.TemplateData = &data
	return acc
}

// PagesValues extracts the current page groups.
func PagesValues(acc Accumulator) PagesInput {
	if acc.TemplateData == nil {
		return PagesInput{
			Public:        []project.Page{},
			Authenticated: []project.Page{},
			Admin:         []project.Page{},
		}
	}
	return PagesInput{
		Public:        copyPages(acc.TemplateData.Pages.Public),
		Authenticated: copyPages(acc.TemplateData.Pages.Authenticated),
		Admin:         copyPages(acc.TemplateData.Pages.Admin),
	}
}

// EndpointsInput is the api step form: the complete endpoint list.
type EndpointsInput struct {
	Endpoints []project.Endpoint `yaml:"endpoints" json:"endpoints"`
}

// ApplyEndpoints replaces the accumulator's endpoint list wholesale.
func ApplyEndpoints(acc Accumulator, in EndpointsInput) Accumulator {
	data := acc.templateData()
	data.API.Endpoints = copyEndpoints(in.Endpoints)
	acc.TemplateData = &data
	return acc
}

// EndpointsValues extracts the current endpoint list.
func EndpointsValues(acc Accumulator) EndpointsInput {
	if acc.TemplateData == nil {
		return EndpointsInput{Endpoints: []project.Endpoint{}}
	}
	return EndpointsInput{Endpoints: copyEndpoints(acc.TemplateData.API.Endpoints)}
}

func orEmptyRequirements(in []project.Requirement) []project.Requirement {
	if in == nil {
		return []project.Requirement{}
	}
	return in
}
