// Package steps defines the ordered wizard step sequence and its transition
// rules.
//
// The sequence is plain data ([Sequence]) consulted by all guard logic, so the
// legal transitions can be tested without any UI. Steps advance one at a time;
// jumping backward to any completed step is allowed, jumping more than one step
// ahead is not.
//
// Key types:
//   - [Step] - a step identifier drawn from [Sequence]
//
// [CanJump] implements the step-click guard used by the wizard controller.
package steps

// Step identifies a single wizard step.
type Step string

// The wizard steps in execution order.
const (
	StepTemplate     Step = "template"
	StepBasics       Step = "basics"
	StepTechStack    Step = "tech-stack"
	StepRequirements Step = "requirements"
	StepFeatures     Step = "features"
	StepPages        Step = "pages"
	StepAPI          Step = "api"
	StepReview       Step = "review"
)

// Sequence is the ordered list of wizard steps. All transition logic derives
// from this slice; nothing else encodes step order.
var Sequence = []Step{
	StepTemplate,
	StepBasics,
	StepTechStack,
	StepRequirements,
	StepFeatures,
	StepPages,
	StepAPI,
	StepReview,
}

// Index returns the position of s in [Sequence], or -1 if s is not a known step.
func Index(s Step) int {
	for i, step := range Sequence {
		if step == s {
			return i
		}
	}
	return -1
}

// First returns the initial wizard step.
func First() Step {
	return Sequence[0]
}

// Terminal returns the final wizard step, from which there is no forward
// transition.
func Terminal() Step {
	return Sequence[len(Sequence)-1]
}

// IsTerminal reports whether s is the final step.
func IsTerminal(s Step) bool {
	return s == Terminal()
}

// Next returns the step one position after s. At the terminal step (or for an
// unknown step) it returns s unchanged.
func Next(s Step) Step {
	i := Index(s)
	if i < 0 || i >= len(Sequence)-1 {
		return s
	}
	return Sequence[i+1]
}

// Prev returns the step one position before s. The second return is false at
// the first step (the caller exits the wizard instead) and for unknown steps.
func Prev(s Step) (Step, bool) {
	i := Index(s)
	if i <= 0 {
		return s, false
	}
	return Sequence[i-1], true
}

// CanJump reports whether a direct click from current to target is legal:
// target must be at or before current, or exactly one step ahead. This allows
// free review of completed steps while preventing skipping unfilled ones.
// Unknown steps are never legal targets.
func CanJump(current, target Step) bool {
	ci := Index(current)
	ti := Index(target)
	if ci < 0 || ti < 0 {
		return false
	}
	return ti <= ci || ti == ci+1
}
