package faux

// Source is the caller-supplied randomness capability used by every
// generator. It must produce uniformly distributed values: IntN returns an
// integer in [0, n) for any n > 0, and Float64 returns a float in [0, 1).
//
// *math/rand/v2.Rand satisfies this interface, so a seeded stdlib source can
// be passed directly. A Source is borrowed for the duration of one Sample
// call and is never stored by a generator. For reproducible output the
// caller must ensure that draws from two different generation requests do
// not interleave on the same Source instance.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// Generator is the single contract shared by all generator kinds: produce
// one string given a random source. Sample is total over a validly
// constructed generator; all failure modes are surfaced at construction
// time instead.
type Generator interface {
	Sample(r Source) string
}

// Literal is a generator that always returns its own value and consumes no
// entropy. It is useful for fixed template slots and as a deterministic
// stub in tests.
type Literal string

// Sample implements Generator.
func (l Literal) Sample(Source) string { return string(l) }
