package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"specwiz/internal/project"
)

// ProjectCreator submits a finished payload to the project creation service.
//
// CreateProject returns the created project or an error; the assembler treats
// any error as recoverable and does not retry automatically.
type ProjectCreator interface {
	CreateProject(ctx context.Context, payload project.CreatePayload) (project.Project, error)
}

// Assembler builds the final creation payload from the accumulator and the
// selection, validates it, and drives the external create operation.
type Assembler struct {
	creator  ProjectCreator
	nav      Navigator
	validate *validator.Validate
}

// projectPathPrefix is where navigation lands after successful creation.
const projectPathPrefix = "/projects/"

// NewAssembler creates an [Assembler]. The navigator receives the created
// project's path after a successful submission.
func NewAssembler(creator ProjectCreator, nav Navigator) *Assembler {
	return &Assembler{
		creator:  creator,
		nav:      nav,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Assemble combines the final accumulator, the selection state, and the
// author identity into a creation payload.
//
// It fails with [ErrNoSelection] when no selection exists and with
// [ErrPayloadInvalid] when name or description is empty. For a named template
// the payload carries the template id plus template name/version metadata; a
// blank project carries only author metadata. Timeline and budget blocks are
// copied through verbatim.
func (a *Assembler) Assemble(acc Accumulator, sel Selection, author project.Author) (project.CreatePayload, error) {
	if sel == nil {
		return project.CreatePayload{}, ErrNoSelection
	}

	payload := project.CreatePayload{
		Name:                      strings.TrimSpace(acc.Name),
		Description:               strings.TrimSpace(acc.Description),
		TemplateType:              sel.TemplateID(),
		BusinessGoals:             project.NormalizeList(acc.BusinessGoals),
		TargetUsers:               project.NormalizeList(acc.TargetUsers),
		Domain:                    acc.Domain,
		Organization:              acc.Organization,
		ProjectLead:               acc.ProjectLead,
		TechStack:                 copyStringMap(acc.TechStack),
		FunctionalRequirements:    orEmptyRequirements(copyRequirements(acc.FunctionalRequirements)),
		NonFunctionalRequirements: orEmptyRequirements(copyRequirements(acc.NonFunctionalRequirements)),
		Metadata: project.Metadata{
			Version: project.PayloadVersion,
			Author:  author,
		},
		Timeline: copyAnyMap(acc.Timeline),
		Budget:   copyAnyMap(acc.Budget),
	}

	if acc.TemplateData != nil {
		data := cloneTemplateData(*acc.TemplateData)
		payload.TemplateData = &data
	}

	if tmpl, ok := sel.(TemplateSelected); ok {
		payload.TemplateID = tmpl.Template.ID
		payload.Metadata.TemplateName = tmpl.Template.Name
		payload.Metadata.TemplateVersion = tmpl.Template.Version
	}

	if err := a.validate.Struct(payload); err != nil {
		return project.CreatePayload{}, invalidPayloadError(err)
	}

	return payload, nil
}

// Create submits the payload to the creation service. On success it hands the
// created project's path to the navigator and returns the project. On failure
// it returns a generic [ErrCreateFailed]; the caller keeps the wizard state so
// the user can resubmit without re-entering data.
func (a *Assembler) Create(ctx context.Context, payload project.CreatePayload) (project.Project, error) {
	created, err := a.creator.CreateProject(ctx, payload)
	if err != nil {
		return project.Project{}, fmt.Errorf("%w: %v", ErrCreateFailed, err)
	}

	if a.nav != nil {
		a.nav.GoTo(projectPathPrefix + created.ID)
	}
	return created, nil
}

// invalidPayloadError turns validator output into a user-facing message
// wrapped around [ErrPayloadInvalid].
func invalidPayloadError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Field() {
		case "Name":
			return fmt.Errorf("%w: project name is required", ErrPayloadInvalid)
		case "Description":
			return fmt.Errorf("%w: project description is required", ErrPayloadInvalid)
		}
		return fmt.Errorf("%w: %s is required", ErrPayloadInvalid, verrs[0].Field())
	}
	return fmt.Errorf("%w: %v", ErrPayloadInvalid, err)
}
