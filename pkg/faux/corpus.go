package faux

import (
	"fmt"
	"io"
	"io/fs"
	"strings"
	"unicode/utf8"
)

// Corpus samples uniformly from a larger line-delimited text resource. The
// resource is parsed exactly once at construction time and the entries are
// kept resident, immutable, for the lifetime of the generator; Sample never
// re-reads the resource.
type Corpus struct {
	entries []string
}

// NewCorpus constructs a Corpus over already-parsed entries, copying the
// slice. It returns an error wrapping ErrNoEntries if the slice is empty.
func NewCorpus(entries []string) (*Corpus, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("corpus: %w", ErrNoEntries)
	}
	copied := make([]string, len(entries))
	copy(copied, entries)
	return &Corpus{entries: copied}, nil
}

// NewCorpusString parses a resource held in memory, one entry per line.
// Trailing line breaks are trimmed and blank lines are skipped. It returns
// an error wrapping ErrUnreadable if the data is not valid UTF-8, or
// ErrNoEntries if no entries remain after parsing.
func NewCorpusString(data string) (*Corpus, error) {
	if !utf8.ValidString(data) {
		return nil, fmt.Errorf("corpus: data is not valid UTF-8: %w", ErrUnreadable)
	}
	var entries []string
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		entries = append(entries, line)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("corpus: %w", ErrNoEntries)
	}
	return &Corpus{entries: entries}, nil
}

// NewCorpusReader reads the whole resource from r and parses it like
// NewCorpusString. Read failures are reported wrapping ErrUnreadable.
func NewCorpusReader(r io.Reader) (*Corpus, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("corpus: read failed: %v: %w", err, ErrUnreadable)
	}
	return NewCorpusString(string(data))
}

// NewCorpusFS opens path inside fsys and parses it like NewCorpusString.
// This is the constructor to use with go:embed filesystems.
func NewCorpusFS(fsys fs.FS, path string) (*Corpus, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("corpus: open %s: %v: %w", path, err, ErrUnreadable)
	}
	return NewCorpusString(string(data))
}

// MustCorpus is like NewCorpusString but panics on error. It is intended for
// package-level generator definitions over embedded data.
func MustCorpus(data string) *Corpus {
	c, err := NewCorpusString(data)
	if err != nil {
		panic(err)
	}
	return c
}

// Sample draws one index uniformly and returns the entry at that index. It
// consumes exactly one IntN draw from the source.
func (c *Corpus) Sample(r Source) string {
	return c.entries[r.IntN(len(c.entries))]
}

// Len returns the number of entries in the corpus.
func (c *Corpus) Len() int { return len(c.entries) }

// Entries returns a copy of the parsed entries, in resource order.
func (c *Corpus) Entries() []string {
	copied := make([]string, len(c.entries))
	copy(copied, c.entries)
	return copied
}
