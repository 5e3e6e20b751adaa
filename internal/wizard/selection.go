package wizard

import "specwiz/internal/project"

// Selection is the tagged template-or-blank choice governing a wizard session.
//
// Exactly one variant is live at a time: [TemplateSelected] when a named
// template was resolved, [BlankProject] when the user chose to start from
// scratch. A nil Selection means nothing has been chosen yet, which blocks
// forward navigation off the template step.
//
// The type is a sealed sum: only the two variants in this package implement it,
// so the invalid "both set" and "neither set" states cannot be represented.
type Selection interface {
	// TemplateID returns the identifier of the template backing this
	// selection ([project.BlankTemplateID] for blank projects).
	TemplateID() string

	selection()
}

// TemplateSelected is the Selection variant for a resolved named template.
type TemplateSelected struct {
	Template project.Template
}

// BlankProject is the Selection variant for an explicit from-scratch choice.
type BlankProject struct{}

// TemplateID returns the backing template's identifier.
func (s TemplateSelected) TemplateID() string { return s.Template.ID }

// TemplateID returns [project.BlankTemplateID].
func (BlankProject) TemplateID() string { return project.BlankTemplateID }

func (TemplateSelected) selection() {}
func (BlankProject) selection()     {}
