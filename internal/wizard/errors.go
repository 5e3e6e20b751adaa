package wizard

import "errors"

// Sentinel errors for wizard orchestration.
var (
	// ErrNoSelection indicates the review step was reached without a template
	// or blank-project selection. The forward gate on the template step should
	// make this unreachable in normal flows; callers hitting it should send the
	// user back to the template step.
	ErrNoSelection = errors.New("no template or blank project selected")

	// ErrPayloadInvalid indicates the assembled payload failed validation
	// (missing name or description). Callers should surface the message inline
	// and keep the wizard state so the user can fix and resubmit.
	ErrPayloadInvalid = errors.New("project payload is invalid")

	// ErrCreateFailed indicates the project creation service rejected the
	// payload or was unreachable. The accumulator is preserved; the user may
	// resubmit without re-entering data.
	ErrCreateFailed = errors.New("project creation failed")

	// ErrWizardClosed indicates an operation was attempted after the wizard
	// session was torn down. Callers should drop the operation silently.
	ErrWizardClosed = errors.New("wizard session is closed")
)
