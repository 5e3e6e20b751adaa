package wizard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"specwiz/internal/project"
	"specwiz/internal/steps"
)

// Full session: no template id, explicit blank project, comma-string goals,
// empty structural steps, assembled payload without a template reference.
func TestWizard_EndToEnd_BlankProject(t *testing.T) {
	nav := &MockNavigator{}
	c := NewController(nav, "/projects")

	c.SelectBlank()
	require.True(t, c.CanContinueFromTemplate())
	c.Next()

	c.SubmitBasics(BasicsInput{
		Name:          "Demo",
		Description:   "Demo project",
		BusinessGoals: project.FlexibleStrings(project.SplitList("scale, reliability")),
	})
	assert.Equal(t, []string{"scale", "reliability"}, c.Accumulator().BusinessGoals)

	c.SubmitTechStack(TechStackInput{})
	c.SubmitRequirements(RequirementsInput{})
	c.SubmitFeatures(FeaturesInput{})
	c.SubmitPages(PagesInput{})
	c.SubmitEndpoints(EndpointsInput{})
	require.Equal(t, steps.StepReview, c.CurrentStep())

	creator := &MockCreator{Created: project.Project{ID: "p-1"}}
	a := NewAssembler(creator, nav)

	payload, err := a.Assemble(c.Accumulator(), c.Selection(), testAuthor)
	require.NoError(t, err)

	assert.Empty(t, payload.TemplateID)
	require.NotNil(t, payload.TemplateData)
	assert.Empty(t, payload.TemplateData.Features.CoreModules)
	assert.Empty(t, payload.TemplateData.Pages.Public)
	assert.Empty(t, payload.TemplateData.API.Endpoints)

	_, err = a.Create(context.Background(), payload)
	require.NoError(t, err)
	assert.Contains(t, nav.Paths, "/projects/p-1")
}

// Template id resolves before any step submits; the accumulator's target
// users reflect the template defaults immediately.
func TestWizard_EndToEnd_TemplateSeeding(t *testing.T) {
	store := &MockTemplateStore{
		Templates: map[string]project.Template{
			"t1": {
				ID:      "t1",
				Name:    "SaaS Starter",
				Version: "2.1",
				Defaults: project.Defaults{
					Name:        "SaaS App",
					Description: "Multi-tenant starter",
					TargetUsers: project.FlexibleStrings{"admins"},
				},
				TechStack: map[string]string{"frontend": "react"},
				Data: project.TemplateData{
					Features: project.Features{CoreModules: []project.FeatureModule{
						{Name: "auth", Enabled: true, Providers: []string{"oauth"}},
					}},
				},
			},
		},
	}
	c := NewController(&MockNavigator{}, "/projects")

	err := NewResolver(store).ResolveInto(context.Background(), c, "t1")
	require.NoError(t, err)

	acc := c.Accumulator()
	assert.Equal(t, []string{"admins"}, acc.TargetUsers)
	assert.Equal(t, "SaaS App", acc.Name)
	assert.Equal(t, "react", acc.TechStack["frontend"])
	require.NotNil(t, acc.TemplateData)
	require.Len(t, acc.TemplateData.Features.CoreModules, 1)

	// Walk to review keeping the seeded structures untouched, then check the
	// payload carries the template reference.
	c.Next()
	c.SubmitBasics(BasicsValues(acc))
	c.SubmitTechStack(TechStackValues(acc))
	c.SubmitRequirements(RequirementsValues(acc))
	c.SubmitFeatures(FeaturesValues(acc))
	c.SubmitPages(PagesValues(acc))
	c.SubmitEndpoints(EndpointsValues(acc))
	require.Equal(t, steps.StepReview, c.CurrentStep())

	a := NewAssembler(&MockCreator{}, &MockNavigator{})
	payload, err := a.Assemble(c.Accumulator(), c.Selection(), testAuthor)
	require.NoError(t, err)

	assert.Equal(t, "t1", payload.TemplateID)
	assert.Equal(t, "SaaS Starter", payload.Metadata.TemplateName)
	require.NotNil(t, payload.TemplateData)
	require.Len(t, payload.TemplateData.Features.CoreModules, 1)
	assert.Equal(t, "auth", payload.TemplateData.Features.CoreModules[0].Name)
}

// Back-navigation re-populates forms from the accumulator without data loss.
func TestWizard_BackNavigationKeepsValues(t *testing.T) {
	c := NewController(&MockNavigator{}, "/projects")
	c.SelectBlank()
	c.Next()
	c.SubmitBasics(BasicsInput{
		Name:          "Demo",
		BusinessGoals: project.FlexibleStrings{"scale"},
	})
	c.SubmitTechStack(TechStackInput{Selections: map[string]string{"database": "postgresql"}})

	c.HandleStepClick(steps.StepBasics)
	require.Equal(t, steps.StepBasics, c.CurrentStep())

	values := BasicsValues(c.Accumulator())
	assert.Equal(t, "Demo", values.Name)
	assert.Equal(t, project.FlexibleStrings{"scale"}, values.BusinessGoals)

	stack := TechStackValues(c.Accumulator())
	assert.Equal(t, "postgresql", stack.Selections["database"])
}
