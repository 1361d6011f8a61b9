package faux

import (
	"math/rand/v2"
	"testing"
)

// scriptSource is a deterministic Source that replays a fixed list of draws.
// Each IntN call consumes the next value; values must already be within
// [0, n) for the call they are meant to answer, so expected outputs can be
// computed by hand. It fails the test if the script runs out.
type scriptSource struct {
	t     *testing.T
	draws []int
	i     int
}

func newScriptSource(t *testing.T, draws ...int) *scriptSource {
	return &scriptSource{t: t, draws: draws}
}

func (s *scriptSource) IntN(n int) int {
	if s.i >= len(s.draws) {
		s.t.Fatalf("script source exhausted after %d draws (IntN(%d) requested)", s.i, n)
	}
	v := s.draws[s.i]
	s.i++
	if v < 0 || v >= n {
		s.t.Fatalf("scripted draw %d (value %d) out of range for IntN(%d)", s.i-1, v, n)
	}
	return v
}

func (s *scriptSource) Float64() float64 { return 0 }

// drawCounter wraps a Source and counts IntN draws, for asserting entropy
// consumption contracts.
type drawCounter struct {
	inner Source
	n     int
}

func (d *drawCounter) IntN(n int) int {
	d.n++
	return d.inner.IntN(n)
}

func (d *drawCounter) Float64() float64 { return d.inner.Float64() }

// seededSource returns a reproducible stdlib source. Two sources from the
// same seed produce identical draw sequences.
func seededSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}
