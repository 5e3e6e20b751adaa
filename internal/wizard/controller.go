// Package wizard implements the project-configuration wizard core: the step
// mergers, the session controller, template resolution, and final payload
// assembly.
//
// The core is UI-free. A hosting shell (the TUI, or the scripted answers
// runner) drives a [Controller] through the step sequence defined in the steps
// package; each step submission applies a pure merger to the [Accumulator] and
// advances the cursor by exactly one. On the review step an [Assembler] turns
// the accumulator into a [project.CreatePayload] and hands it to the creation
// service.
//
// Key types:
//   - [Controller] - the only mutable holder: cursor, accumulator, selection
//   - [Accumulator] - the in-progress specification, built step by step
//   - [Selection] - tagged template-or-blank choice
//   - [Resolver] - fetches templates and seeds the controller
//   - [Assembler] - validates and submits the final payload
//
// The controller is not safe for concurrent use. It is designed for a single
// event loop: asynchronous template fetches report back through
// [Controller.ApplyTemplateResult], which discards stale and post-teardown
// responses via a request-generation counter and a liveness flag.
package wizard

import (
	"context"
	"fmt"

	"specwiz/internal/project"
	"specwiz/internal/steps"
)

// TemplateStore fetches templates by identifier.
//
// FetchTemplate returns [project.ErrTemplateNotFound] when no template exists
// under the given id. Both the HTTP client and the file-backed store implement
// this interface.
type TemplateStore interface {
	FetchTemplate(ctx context.Context, id string) (project.Template, error)
}

// Navigator moves the user outside the wizard: backing out of the first step
// and landing on the created project after submission.
type Navigator interface {
	GoTo(path string)
}

// Controller holds the mutable state of one wizard session: the step cursor,
// the accumulator, and the template selection. All mutation goes through its
// methods; everything else in this package is pure.
type Controller struct {
	nav      Navigator
	exitPath string

	cursor    steps.Step
	acc       Accumulator
	selection Selection

	// generation counts template load requests. Only the response matching
	// the latest issued generation may mutate the session; anything older is
	// a stale response from a superseded request and is discarded.
	generation uint64
	pendingID  string

	closed bool
}

// NewController creates a wizard session positioned at the first step with an
// empty accumulator and no selection.
//
// The navigator receives the exitPath when the user backs out of the first
// step, and the created project's path after successful submission.
func NewController(nav Navigator, exitPath string) *Controller {
	return &Controller{
		nav:      nav,
		exitPath: exitPath,
		cursor:   steps.First(),
	}
}

// CurrentStep returns the cursor position.
func (c *Controller) CurrentStep() steps.Step {
	return c.cursor
}

// Accumulator returns a deep copy of the session's accumulator.
func (c *Controller) Accumulator() Accumulator {
	return c.acc.Clone()
}

// Selection returns the live selection, or nil when nothing has been chosen.
func (c *Controller) Selection() Selection {
	return c.selection
}

// Closed reports whether the session has been torn down.
func (c *Controller) Closed() bool {
	return c.closed
}

// Close tears the session down. Every subsequent mutation, including late
// template fetch responses, is refused.
func (c *Controller) Close() {
	c.closed = true
}

// CanContinueFromTemplate reports whether forward navigation off the template
// step is allowed: either a template has resolved or blank project was chosen.
func (c *Controller) CanContinueFromTemplate() bool {
	return c.selection != nil
}

// Next advances the cursor by one step. It is a no-op at the terminal step and
// on the template step while no selection exists.
func (c *Controller) Next() {
	if c.closed {
		return
	}
	if c.cursor == steps.StepTemplate && !c.CanContinueFromTemplate() {
		return
	}
	c.cursor = steps.Next(c.cursor)
}

// Prev retreats the cursor by one step. At the first step it exits the wizard
// entirely by navigating to the configured exit path.
func (c *Controller) Prev() {
	if c.closed {
		return
	}
	prev, ok := steps.Prev(c.cursor)
	if !ok {
		if c.nav != nil {
			c.nav.GoTo(c.exitPath)
		}
		return
	}
	c.cursor = prev
}

// HandleStepClick moves the cursor to target if the jump is legal: at or
// before the cursor, or exactly one step ahead. Illegal jumps are silently
// ignored; they are a UI affordance constraint, not an error. The forward
// gate off the template step applies here too.
func (c *Controller) HandleStepClick(target steps.Step) {
	if c.closed {
		return
	}
	if !steps.CanJump(c.cursor, target) {
		return
	}
	if c.cursor == steps.StepTemplate && target != steps.StepTemplate && !c.CanContinueFromTemplate() {
		return
	}
	c.cursor = target
}

// BeginTemplateLoad registers a new template load request and returns its
// generation token. Issuing a new request supersedes any in-flight one: the
// older response will no longer match the latest generation and is discarded
// by [Controller.ApplyTemplateResult].
func (c *Controller) BeginTemplateLoad(id string) uint64 {
	c.generation++
	c.pendingID = id
	return c.generation
}

// ApplyTemplateResult applies the outcome of a template load request.
//
// The first return reports whether the response was current: stale responses
// (superseded by a newer request, an explicit blank selection, or session
// teardown) are discarded without touching any state and return (false, nil).
//
// For a current response, a fetch error is wrapped into a user-facing error
// and returned; the selection stays empty and the accumulator untouched so the
// user can retry or choose blank project. On success the selection becomes
// [TemplateSelected] and the accumulator's template-derived fields are fully
// re-seeded from the new template.
func (c *Controller) ApplyTemplateResult(generation uint64, tmpl project.Template, fetchErr error) (bool, error) {
	if c.closed || generation != c.generation {
		return false, nil
	}
	if fetchErr != nil {
		return true, fmt.Errorf("could not load template %q: %w", c.pendingID, fetchErr)
	}

	c.selection = TemplateSelected{Template: tmpl}
	c.acc = SeedFromTemplate(c.acc, tmpl)
	return true, nil
}

// SelectBlank chooses the blank project explicitly. It seeds the accumulator
// from the canonical blank template exactly as a fetched template would, so
// downstream handling is uniform, and it supersedes any in-flight template
// fetch.
func (c *Controller) SelectBlank() {
	if c.closed {
		return
	}
	// Invalidate any outstanding fetch so a late response cannot override
	// the explicit blank choice.
	c.generation++
	c.pendingID = ""

	c.selection = BlankProject{}
	c.acc = SeedFromTemplate(c.acc, project.NewBlankTemplate())
}

// SubmitBasics applies the basics merger and advances one step.
func (c *Controller) SubmitBasics(in BasicsInput) {
	c.submit(func(acc Accumulator) Accumulator { return ApplyBasics(acc, in) })
}

// SubmitTechStack applies the tech-stack merger and advances one step.
func (c *Controller) SubmitTechStack(in TechStackInput) {
	c.submit(func(acc Accumulator) Accumulator { return ApplyTechStack(acc, in) })
}

// SubmitRequirements applies the requirements merger and advances one step.
func (c *Controller) SubmitRequirements(in RequirementsInput) {
	c.submit(func(acc Accumulator) Accumulator { return ApplyRequirements(acc, in) })
}

// SubmitFeatures applies the features merger and advances one step.
func (c *Controller) SubmitFeatures(in FeaturesInput) {
	c.submit(func(acc Accumulator) Accumulator { return ApplyFeatures(acc, in) })
}

// SubmitPages applies the pages merger and advances one step.
func (c *Controller) SubmitPages(in PagesInput) {
	c.submit(func(acc Accumulator) Accumulator { return ApplyPages(acc, in) })
}

// SubmitEndpoints applies the api merger and advances one step.
func (c *Controller) SubmitEndpoints(in EndpointsInput) {
	c.submit(func(acc Accumulator) Accumulator { return ApplyEndpoints(acc, in) })
}

// submit runs a merger and advances exactly one step. Submission never
// validates the resulting accumulator; full validation is deferred to the
// assembler at the review step.
func (c *Controller) submit(merge func(Accumulator) Accumulator) {
	if c.closed {
		return
	}
	c.acc = merge(c.acc)
	c.cursor = steps.Next(c.cursor)
}
