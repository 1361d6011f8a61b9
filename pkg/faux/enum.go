package faux

import "fmt"

// Enum samples uniformly from a fixed, ordered list of literal strings. The
// list is copied at construction and never mutated afterwards, so an Enum
// may be shared freely across goroutines.
type Enum struct {
	entries []string
}

// NewEnum constructs an Enum over the given literals. It returns an error
// wrapping ErrNoEntries if no literals are supplied.
func NewEnum(entries ...string) (*Enum, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("enum: %w", ErrNoEntries)
	}
	copied := make([]string, len(entries))
	copy(copied, entries)
	return &Enum{entries: copied}, nil
}

// MustEnum is like NewEnum but panics on error. It is intended for
// package-level generator definitions over static data, where a failure is
// a programming error that should surface at startup.
func MustEnum(entries ...string) *Enum {
	e, err := NewEnum(entries...)
	if err != nil {
		panic(err)
	}
	return e
}

// Sample draws one index uniformly and returns the literal at that index.
// It consumes exactly one IntN draw from the source.
func (e *Enum) Sample(r Source) string {
	return e.entries[r.IntN(len(e.entries))]
}

// Len returns the number of literals in the enumeration.
func (e *Enum) Len() int { return len(e.entries) }

// Built-in single-character enumerations, matching the ASCII decimal digits
// and lowercase letters. They are common building blocks for identifier and
// number templates.
var (
	AsciiDigit = MustEnum(
		"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	)
	AsciiLowercase = MustEnum(
		"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
		"n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z",
	)
)
