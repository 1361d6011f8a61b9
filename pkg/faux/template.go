package faux

import (
	"fmt"
	"strings"
)

// slotMarker is the substitution marker recognized in template patterns.
const slotMarker = "{}"

// Template is a literal pattern string with an ordered sequence of
// substitution slots, each bound to exactly one nested generator. The
// pattern is split once at construction; slot count and binding count must
// match exactly. A Template is not itself a Generator: it is always sampled
// through the TemplateSet that owns it, so that template selection consumes
// its own entropy draw.
type Template struct {
	pattern string
	spans   []string // len(slots)+1 literal spans around the markers
	slots   []Generator
}

// NewTemplate parses pattern, binding each "{}" slot to the corresponding
// generator in parts, left to right. It returns an error wrapping
// ErrSlotMismatch if the counts differ, or if any bound generator is nil.
func NewTemplate(pattern string, parts ...Generator) (*Template, error) {
	spans := strings.Split(pattern, slotMarker)
	if len(spans)-1 != len(parts) {
		return nil, fmt.Errorf("template %q has %d slots but %d bound generators: %w",
			pattern, len(spans)-1, len(parts), ErrSlotMismatch)
	}
	for i, p := range parts {
		if p == nil {
			return nil, fmt.Errorf("template %q: slot %d has a nil generator: %w",
				pattern, i, ErrSlotMismatch)
		}
	}
	return &Template{pattern: pattern, spans: spans, slots: parts}, nil
}

// MustTemplate is like NewTemplate but panics on error.
func MustTemplate(pattern string, parts ...Generator) *Template {
	t, err := NewTemplate(pattern, parts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Pattern returns the original pattern text.
func (t *Template) Pattern() string { return t.pattern }

// expand fills the template's slots in left-to-right pattern order. The
// order is a hard contract: slot generators consume variable amounts of
// entropy, so reproducibility with a deterministic source depends on it.
func (t *Template) expand(r Source) string {
	if len(t.slots) == 0 {
		return t.pattern
	}
	var b strings.Builder
	for i, slot := range t.slots {
		b.WriteString(t.spans[i])
		b.WriteString(slot.Sample(r))
	}
	b.WriteString(t.spans[len(t.spans)-1])
	return b.String()
}

// TemplateSet is an ordered, non-empty collection of Templates. Sampling
// first selects one template (uniformly by default), then expands it. The
// set is fixed after construction: no templates can be added, removed, or
// rebound at runtime, which is also what keeps nested composition acyclic.
type TemplateSet struct {
	templates []*Template
	weights   []int // nil means uniform selection
	total     int
}

// NewTemplateSet constructs a uniformly selected TemplateSet. It returns an
// error wrapping ErrNoTemplates if no templates are supplied or any is nil.
func NewTemplateSet(templates ...*Template) (*TemplateSet, error) {
	if len(templates) == 0 {
		return nil, fmt.Errorf("template set: %w", ErrNoTemplates)
	}
	copied := make([]*Template, len(templates))
	for i, t := range templates {
		if t == nil {
			return nil, fmt.Errorf("template set: template %d is nil: %w", i, ErrNoTemplates)
		}
		copied[i] = t
	}
	return &TemplateSet{templates: copied}, nil
}

// MustTemplateSet is like NewTemplateSet but panics on error. It is intended
// for package-level generator definitions.
func MustTemplateSet(templates ...*Template) *TemplateSet {
	s, err := NewTemplateSet(templates...)
	if err != nil {
		panic(err)
	}
	return s
}

// NewWeightedTemplateSet constructs a TemplateSet whose templates are
// selected with probability proportional to the given positive weights.
// Uniform selection is the contract default; weighting is an explicit
// opt-in for callers that want skewed pattern frequencies.
func NewWeightedTemplateSet(weights []int, templates ...*Template) (*TemplateSet, error) {
	s, err := NewTemplateSet(templates...)
	if err != nil {
		return nil, err
	}
	if len(weights) != len(templates) {
		return nil, fmt.Errorf("template set: %d weights for %d templates: %w",
			len(weights), len(templates), ErrBadWeight)
	}
	total := 0
	for i, w := range weights {
		if w <= 0 {
			return nil, fmt.Errorf("template set: weight %d is %d: %w", i, w, ErrBadWeight)
		}
		total += w
	}
	s.weights = make([]int, len(weights))
	copy(s.weights, weights)
	s.total = total
	return s, nil
}

// Sample selects one template with a single IntN draw, then expands its
// slots in pattern order. A zero-slot template returns its literal text
// unchanged; the selection draw is still consumed.
func (s *TemplateSet) Sample(r Source) string {
	return s.choose(r).expand(r)
}

// Len returns the number of templates in the set.
func (s *TemplateSet) Len() int { return len(s.templates) }

func (s *TemplateSet) choose(r Source) *Template {
	if s.weights == nil {
		return s.templates[r.IntN(len(s.templates))]
	}
	// Weighted selection by cumulative frequency walk.
	pick := r.IntN(s.total)
	for i, w := range s.weights {
		pick -= w
		if pick < 0 {
			return s.templates[i]
		}
	}
	return s.templates[len(s.templates)-1]
}
