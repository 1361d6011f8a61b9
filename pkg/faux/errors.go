package faux

import "errors"

// All errors in this package are construction-time errors: a generator that
// constructs successfully can never fail during Sample. Errors returned by
// constructors wrap one of these sentinels, so callers can classify them
// with errors.Is.
var (
	// ErrNoEntries is returned when an enumeration or corpus would be empty.
	ErrNoEntries = errors.New("generator has no entries")
	// ErrUnreadable is returned when a corpus resource cannot be read or is
	// not valid UTF-8.
	ErrUnreadable = errors.New("corpus resource is unreadable")
	// ErrNoTemplates is returned when a template set would be empty.
	ErrNoTemplates = errors.New("template set has no templates")
	// ErrSlotMismatch is returned when a pattern's slot count does not match
	// the number of bound generators.
	ErrSlotMismatch = errors.New("slot count does not match bound generators")
	// ErrBadWeight is returned when a weighted template set is given a
	// non-positive weight.
	ErrBadWeight = errors.New("template weight must be positive")
	// ErrDuplicate is returned when a registry name is defined twice.
	ErrDuplicate = errors.New("generator name already defined")
	// ErrNotDefined is returned when a definition references a generator
	// name that has not been defined yet.
	ErrNotDefined = errors.New("generator name not defined")
)
