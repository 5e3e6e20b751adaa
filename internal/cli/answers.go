package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"specwiz/internal/wizard"
)

// AnswersFile is the YAML document driving a non-interactive wizard run. Each
// section maps to one wizard step; omitted sections submit empty input, which
// keeps whatever the template seeded.
type AnswersFile struct {
	// Template selects the template to seed from. Empty or "blank" starts a
	// blank project. The --template flag overrides this field.
	Template string `yaml:"template,omitempty"`

	Basics       wizard.BasicsInput       `yaml:"basics"`
	TechStack    map[string]string        `yaml:"tech_stack,omitempty"`
	Requirements *wizard.RequirementsInput `yaml:"requirements,omitempty"`
	Features     *wizard.FeaturesInput    `yaml:"features,omitempty"`
	Pages        *wizard.PagesInput       `yaml:"pages,omitempty"`
	API          *wizard.EndpointsInput   `yaml:"api,omitempty"`
}

// LoadAnswers reads and parses an answers file.
func LoadAnswers(path string) (*AnswersFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read answers file: %w", err)
	}

	var answers AnswersFile
	if err := yaml.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("failed to parse answers file %s: %w", path, err)
	}
	return &answers, nil
}

// printerNav reports navigation targets as plain output lines. In a
// non-interactive run "navigating" to the created project means printing its
// path.
type printerNav struct {
	out io.Writer
}

func (p *printerNav) GoTo(path string) {
	fmt.Fprintln(p.out, path)
}

// runAnswers drives a full wizard session from an answers file: resolve the
// selection, submit every step in order, assemble, create.
func runAnswers(ctx context.Context, app *App, path, templateOverride string, out io.Writer) error {
	answers, err := LoadAnswers(path)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return NewExitError(1)
	}

	templateID := answers.Template
	if templateOverride != "" {
		templateID = templateOverride
	}

	nav := &printerNav{out: out}
	ctrl := wizard.NewController(nav, app.Config.Wizard.ExitPath)

	if templateID == "" || templateID == "blank" {
		ctrl.SelectBlank()
	} else {
		resolver := wizard.NewResolver(app.Store)
		if err := resolver.ResolveInto(ctx, ctrl, templateID); err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return NewExitError(1)
		}
	}
	ctrl.Next()

	ctrl.SubmitBasics(mergedBasics(ctrl, answers.Basics))
	ctrl.SubmitTechStack(wizard.TechStackInput{Selections: mergedStack(ctrl, answers.TechStack)})
	// Sections that replace collections wholesale are applied only when the
	// file provides them; omission keeps the seeded values.
	requirements := wizard.RequirementsValues(ctrl.Accumulator())
	if answers.Requirements != nil {
		requirements = *answers.Requirements
	}
	ctrl.SubmitRequirements(requirements)

	features := wizard.FeaturesValues(ctrl.Accumulator())
	if answers.Features != nil {
		features = *answers.Features
	}
	ctrl.SubmitFeatures(features)

	pages := wizard.PagesValues(ctrl.Accumulator())
	if answers.Pages != nil {
		pages = *answers.Pages
	}
	ctrl.SubmitPages(pages)

	endpoints := wizard.EndpointsValues(ctrl.Accumulator())
	if answers.API != nil {
		endpoints = *answers.API
	}
	ctrl.SubmitEndpoints(endpoints)

	author, err := app.Identity.Author()
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return NewExitError(1)
	}

	assembler := wizard.NewAssembler(app.Creator, nav)
	payload, err := assembler.Assemble(ctrl.Accumulator(), ctrl.Selection(), author)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return NewExitError(1)
	}

	created, err := assembler.Create(ctx, payload)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return NewExitError(1)
	}

	fmt.Fprintf(out, "Created project %q (%s)\n", created.Name, created.ID)
	return nil
}

// mergedBasics overlays the answers file's basics on what the template
// seeded, so a file can set just the name and description.
func mergedBasics(ctrl *wizard.Controller, in wizard.BasicsInput) wizard.BasicsInput {
	current := wizard.BasicsValues(ctrl.Accumulator())
	if in.Name != "" {
		current.Name = in.Name
	}
	if in.Description != "" {
		current.Description = in.Description
	}
	if in.Domain != "" {
		current.Domain = in.Domain
	}
	if in.Organization != "" {
		current.Organization = in.Organization
	}
	if in.ProjectLead != "" {
		current.ProjectLead = in.ProjectLead
	}
	if len(in.BusinessGoals) > 0 {
		current.BusinessGoals = in.BusinessGoals
	}
	if len(in.TargetUsers) > 0 {
		current.TargetUsers = in.TargetUsers
	}
	return current
}

// mergedStack overlays file-provided selections on the seeded tech stack.
func mergedStack(ctrl *wizard.Controller, in map[string]string) map[string]string {
	current := wizard.TechStackValues(ctrl.Accumulator()).Selections
	for k, v := range in {
		current[k] = v
	}
	return current
}
