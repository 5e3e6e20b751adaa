package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"specwiz/internal/project"
	"specwiz/internal/wizard"
)

func TestRunAnswers_BlankProject(t *testing.T) {
	creator := &wizard.MockCreator{Created: project.Project{ID: "p-9", Name: "Billing Portal"}}
	app, out := newTestApp(nil, creator)

	path := writeAnswersFile(t, `
basics:
  name: Billing Portal
  description: Customer billing self-service
  business_goals: "reduce churn, cut support load"
tech_stack:
  frontend: react
  database: postgresql
`)

	result := RunWithConfig(app, []string{"new", "--answers", path})

	require.Equal(t, 0, result.ExitCode, "output: %s", out.String())
	require.Len(t, creator.Payloads, 1)

	payload := creator.Payloads[0]
	assert.Equal(t, "Billing Portal", payload.Name)
	assert.Equal(t, project.BlankTemplateID, payload.TemplateType)
	assert.Empty(t, payload.TemplateID)
	assert.Equal(t, []string{"reduce churn", "cut support load"}, payload.BusinessGoals)
	assert.Equal(t, "react", payload.TechStack["frontend"])
	assert.Equal(t, "Sam Rivera", payload.Metadata.Author.Name)

	assert.Contains(t, out.String(), "/projects/p-9")
	assert.Contains(t, out.String(), "Created project")
}

func TestRunAnswers_WithTemplate(t *testing.T) {
	store := &wizard.MockTemplateStore{Templates: map[string]project.Template{
		"saas": {
			ID:      "saas",
			Name:    "SaaS Starter",
			Version: "2.0",
			Defaults: project.Defaults{
				Description: "A SaaS product",
				TargetUsers: project.FlexibleStrings{"admins"},
			},
			TechStack: map[string]string{"frontend": "vue", "auth": "oauth"},
			Data: project.TemplateData{
				Features: project.Features{CoreModules: []project.FeatureModule{
					{Name: "auth", Enabled: true},
				}},
			},
		},
	}}
	creator := &wizard.MockCreator{Created: project.Project{ID: "p-2", Name: "Acme"}}
	app, out := newTestApp(store, creator)

	path := writeAnswersFile(t, `
template: saas
basics:
  name: Acme
tech_stack:
  frontend: react
`)

	result := RunWithConfig(app, []string{"new", "--answers", path})

	require.Equal(t, 0, result.ExitCode, "output: %s", out.String())
	require.Len(t, creator.Payloads, 1)

	payload := creator.Payloads[0]
	assert.Equal(t, "Acme", payload.Name)
	// Template defaults survive where the file is silent.
	assert.Equal(t, "A SaaS product", payload.Description)
	assert.Equal(t, []string{"admins"}, payload.TargetUsers)
	assert.Equal(t, "saas", payload.TemplateID)
	assert.Equal(t, "saas", payload.TemplateType)
	assert.Equal(t, "SaaS Starter", payload.Metadata.TemplateName)
	assert.Equal(t, "2.0", payload.Metadata.TemplateVersion)
	// The file overrides one selection and keeps the rest.
	assert.Equal(t, "react", payload.TechStack["frontend"])
	assert.Equal(t, "oauth", payload.TechStack["auth"])
	// Seeded structure carries through untouched.
	require.NotNil(t, payload.TemplateData)
	require.Len(t, payload.TemplateData.Features.CoreModules, 1)
	assert.Equal(t, "auth", payload.TemplateData.Features.CoreModules[0].Name)
}

func TestRunAnswers_StructuralReplacement(t *testing.T) {
	store := &wizard.MockTemplateStore{Templates: map[string]project.Template{
		"saas": {
			ID: "saas",
			Defaults: project.Defaults{
				Name:        "Seeded",
				Description: "Seeded description",
			},
			Data: project.TemplateData{
				Features: project.Features{CoreModules: []project.FeatureModule{
					{Name: "auth", Enabled: true},
					{Name: "billing", Enabled: true},
				}},
			},
		},
	}}
	creator := &wizard.MockCreator{}
	app, _ := newTestApp(store, creator)

	path := writeAnswersFile(t, `
template: saas
features:
  core_modules:
    - name: auth
      enabled: true
`)

	result := RunWithConfig(app, []string{"new", "--answers", path})

	require.Equal(t, 0, result.ExitCode)
	require.Len(t, creator.Payloads, 1)
	// The provided list replaces the seeded one wholesale.
	require.NotNil(t, creator.Payloads[0].TemplateData)
	assert.Len(t, creator.Payloads[0].TemplateData.Features.CoreModules, 1)
}

func TestRunAnswers_TemplateNotFound(t *testing.T) {
	app, out := newTestApp(nil, nil)

	path := writeAnswersFile(t, `
template: missing
basics:
  name: Acme
  description: A project
`)

	result := RunWithConfig(app, []string{"new", "--answers", path})

	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, out.String(), "missing")
}

func TestRunAnswers_MissingName(t *testing.T) {
	creator := &wizard.MockCreator{}
	app, out := newTestApp(nil, creator)

	path := writeAnswersFile(t, `
basics:
  description: No name given
`)

	result := RunWithConfig(app, []string{"new", "--answers", path})

	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, out.String(), "name")
	assert.Empty(t, creator.Payloads)
}

func TestRunAnswers_CreateFailure(t *testing.T) {
	creator := &wizard.MockCreator{Err: assert.AnError}
	app, out := newTestApp(nil, creator)

	path := writeAnswersFile(t, `
basics:
  name: Acme
  description: A project
`)

	result := RunWithConfig(app, []string{"new", "--answers", path})

	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, out.String(), "Error")
}

func TestRunAnswers_TemplateFlagOverridesFile(t *testing.T) {
	store := &wizard.MockTemplateStore{Templates: map[string]project.Template{
		"blog": {ID: "blog", Name: "Blog"},
	}}
	creator := &wizard.MockCreator{}
	app, _ := newTestApp(store, creator)

	path := writeAnswersFile(t, `
template: saas
basics:
  name: Acme
  description: A project
`)

	result := RunWithConfig(app, []string{"new", "--answers", path, "--template", "blog"})

	require.Equal(t, 0, result.ExitCode)
	assert.Equal(t, []string{"blog"}, store.Requested)
}

func TestLoadAnswers_InvalidYAML(t *testing.T) {
	path := writeAnswersFile(t, "basics: [broken")

	_, err := LoadAnswers(path)

	assert.Error(t, err)
}

func TestLoadAnswers_MissingFile(t *testing.T) {
	_, err := LoadAnswers("/nonexistent/answers.yaml")

	assert.Error(t, err)
}
