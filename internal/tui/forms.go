package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"specwiz/internal/project"
	"specwiz/internal/steps"
	"specwiz/internal/templates"
	"specwiz/internal/wizard"
)

// blankOptionID marks the "start from scratch" choice in the template select.
// It never collides with a real template id because the file store and the
// API both reject ids this shape would need.
const blankOptionID = "__blank__"

// formData holds the bindings for the current step's form. It is rebuilt on
// every step change from the controller's accumulator, so back-navigation
// re-opens a form pre-filled with what the user already entered.
type formData struct {
	templateID string

	basics wizard.BasicsInput
	goals  string
	users  string

	stackYAML        string
	requirementsYAML string
	featuresYAML     string
	pagesYAML        string
	endpointsYAML    string

	confirm bool
}

func newFormData(ctrl *wizard.Controller) *formData {
	acc := ctrl.Accumulator()

	d := &formData{
		templateID: blankOptionID,
		basics:     wizard.BasicsValues(acc),
	}
	if sel := ctrl.Selection(); sel != nil && sel.TemplateID() != project.BlankTemplateID {
		d.templateID = sel.TemplateID()
	}
	d.goals = strings.Join(d.basics.BusinessGoals.Strings(), ", ")
	d.users = strings.Join(d.basics.TargetUsers.Strings(), ", ")

	d.stackYAML = marshalYAML(wizard.TechStackValues(acc).Selections)
	d.requirementsYAML = marshalYAML(wizard.RequirementsValues(acc))
	d.featuresYAML = marshalYAML(wizard.FeaturesValues(acc).CoreModules)
	d.pagesYAML = marshalYAML(wizard.PagesValues(acc))
	d.endpointsYAML = marshalYAML(wizard.EndpointsValues(acc).Endpoints)
	return d
}

// submit parses the step's bindings and applies the matching merger. Only the
// YAML editor steps can fail; plain input steps always succeed.
func (d *formData) submit(ctrl *wizard.Controller) error {
	switch ctrl.CurrentStep() {
	case steps.StepBasics:
		in := d.basics
		in.BusinessGoals = project.FlexibleStrings(project.SplitList(d.goals))
		in.TargetUsers = project.FlexibleStrings(project.SplitList(d.users))
		ctrl.SubmitBasics(in)
		return nil

	case steps.StepTechStack:
		var selections map[string]string
		if err := yaml.Unmarshal([]byte(d.stackYAML), &selections); err != nil {
			return fmt.Errorf("tech stack is not valid YAML: %w", err)
		}
		ctrl.SubmitTechStack(wizard.TechStackInput{Selections: selections})
		return nil

	case steps.StepRequirements:
		var in wizard.RequirementsInput
		if err := yaml.Unmarshal([]byte(d.requirementsYAML), &in); err != nil {
			return fmt.Errorf("requirements are not valid YAML: %w", err)
		}
		ctrl.SubmitRequirements(in)
		return nil

	case steps.StepFeatures:
		var modules []project.FeatureModule
		if err := yaml.Unmarshal([]byte(d.featuresYAML), &modules); err != nil {
			return fmt.Errorf("features are not valid YAML: %w", err)
		}
		ctrl.SubmitFeatures(wizard.FeaturesInput{CoreModules: modules})
		return nil

	case steps.StepPages:
		var in wizard.PagesInput
		if err := yaml.Unmarshal([]byte(d.pagesYAML), &in); err != nil {
			return fmt.Errorf("pages are not valid YAML: %w", err)
		}
		ctrl.SubmitPages(in)
		return nil

	case steps.StepAPI:
		var endpoints []project.Endpoint
		if err := yaml.Unmarshal([]byte(d.endpointsYAML), &endpoints); err != nil {
			return fmt.Errorf("endpoints are not valid YAML: %w", err)
		}
		ctrl.SubmitEndpoints(wizard.EndpointsInput{Endpoints: endpoints})
		return nil
	}
	return fmt.Errorf("no form for step %q", ctrl.CurrentStep())
}

func buildForm(step steps.Step, d *formData, catalog []templates.CatalogEntry) *huh.Form {
	switch step {
	case steps.StepTemplate:
		return templateForm(d, catalog)
	case steps.StepBasics:
		return basicsForm(d)
	case steps.StepTechStack:
		return yamlForm("Tech Stack", "Key/value technology selections.", &d.stackYAML, validateYAMLMap)
	case steps.StepRequirements:
		return yamlForm("Requirements", "Functional and non-functional requirement lists.", &d.requirementsYAML, validateYAML[wizard.RequirementsInput])
	case steps.StepFeatures:
		return yamlForm("Features", "Core module list. The list replaces what the template provided.", &d.featuresYAML, validateYAML[[]project.FeatureModule])
	case steps.StepPages:
		return yamlForm("Pages", "Public, authenticated, and admin page groups.", &d.pagesYAML, validateYAML[wizard.PagesInput])
	case steps.StepAPI:
		return yamlForm("API Endpoints", "Endpoint list. The list replaces what the template provided.", &d.endpointsYAML, validateYAML[[]project.Endpoint])
	case steps.StepReview:
		return reviewForm(d)
	}
	return reviewForm(d)
}

// templateForm builds the template select from the catalog entries plus the
// blank choice.
func templateForm(d *formData, entries []templates.CatalogEntry) *huh.Form {
	options := []huh.Option[string]{
		huh.NewOption("Blank project (start from scratch)", blankOptionID),
	}
	for _, e := range entries {
		label := e.Name
		if label == "" {
			label = e.ID
		}
		if e.Description != "" {
			label = fmt.Sprintf("%s - %s", label, e.Description)
		}
		options = append(options, huh.NewOption(label, e.ID))
	}

	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Template").
			Description("Seed the project from a template, or start blank.").
			Options(options...).
			Value(&d.templateID),
	))
}

func basicsForm(d *formData) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Project Name").
			Value(&d.basics.Name),
		huh.NewInput().
			Title("Description").
			Value(&d.basics.Description),
		huh.NewInput().
			Title("Domain").
			Description("Business domain, e.g. healthcare, fintech.").
			Value(&d.basics.Domain),
		huh.NewInput().
			Title("Organization").
			Value(&d.basics.Organization),
		huh.NewInput().
			Title("Project Lead").
			Value(&d.basics.ProjectLead),
		huh.NewInput().
			Title("Business Goals").
			Description("Comma-separated list.").
			Value(&d.goals),
		huh.NewInput().
			Title("Target Users").
			Description("Comma-separated list.").
			Value(&d.users),
	))
}

func yamlForm(title, desc string, value *string, validate func(string) error) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewText().
			Title(title).
			Description(desc + " Edit as YAML.").
			Value(value).
			Validate(validate),
	))
}

func reviewForm(d *formData) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Create project?").
			Affirmative("Create").
			Negative("Go back").
			Value(&d.confirm),
	))
}

func validateYAMLMap(s string) error {
	var m map[string]string
	if err := yaml.Unmarshal([]byte(s), &m); err != nil {
		return fmt.Errorf("not valid YAML: %v", err)
	}
	return nil
}

func validateYAML[T any](s string) error {
	var v T
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return fmt.Errorf("not valid YAML: %v", err)
	}
	return nil
}

func marshalYAML(v any) string {
	out, err := yaml.Marshal(v)
	if err != nil {
		return ""
	}
	return string(out)
}
