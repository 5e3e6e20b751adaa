package wizard

import (
	"context"

	"specwiz/internal/project"
)

// Resolver fetches templates from a [TemplateStore] and seeds a wizard
// session with the result.
//
// Asynchronous hosts (the TUI) split the two halves themselves: call
// [Controller.BeginTemplateLoad], run [Resolver.Resolve] off the event loop,
// and deliver the outcome to [Controller.ApplyTemplateResult]. Synchronous
// hosts (the scripted answers runner) use [Resolver.ResolveInto], which does
// the full round trip in one call.
type Resolver struct {
	store TemplateStore
}

// NewResolver creates a [Resolver] backed by the given store.
func NewResolver(store TemplateStore) *Resolver {
	return &Resolver{store: store}
}

// Resolve fetches a template by id. It performs no session mutation; pair it
// with [Controller.BeginTemplateLoad] and [Controller.ApplyTemplateResult].
func (r *Resolver) Resolve(ctx context.Context, id string) (project.Template, error) {
	return r.store.FetchTemplate(ctx, id)
}

// ResolveInto fetches a template and applies it to the controller in one
// call, respecting the same stale-response discipline as the split path.
//
// The returned error is the user-facing resolution failure, nil on success or
// when the response turned out to be stale.
func (r *Resolver) ResolveInto(ctx context.Context, c *Controller, id string) error {
	generation := c.BeginTemplateLoad(id)
	tmpl, err := r.store.FetchTemplate(ctx, id)
	applied, applyErr := c.ApplyTemplateResult(generation, tmpl, err)
	if !applied {
		return nil
	}
	return applyErr
}
