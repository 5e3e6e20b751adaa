package project

import "errors"

// ErrTemplateNotFound is a sentinel error returned by template stores when no
// template exists under the requested identifier. Callers should surface it as
// a recoverable message and leave the wizard's selection empty; the user may
// retry or choose a blank project.
var ErrTemplateNotFound = errors.New("template not found")
