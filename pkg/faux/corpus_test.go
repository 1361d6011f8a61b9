package faux

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"
)

func TestNewCorpusString(t *testing.T) {
	testCases := []struct {
		name    string
		data    string
		want    []string
		wantErr error
	}{
		{
			name: "simple lines",
			data: "alpha\nbeta\ngamma",
			want: []string{"alpha", "beta", "gamma"},
		},
		{
			name: "trailing newline trimmed",
			data: "alpha\nbeta\n",
			want: []string{"alpha", "beta"},
		},
		{
			name: "crlf line endings",
			data: "alpha\r\nbeta\r\n",
			want: []string{"alpha", "beta"},
		},
		{
			name: "blank lines skipped",
			data: "alpha\n\n\nbeta\n",
			want: []string{"alpha", "beta"},
		},
		{
			name:    "empty resource",
			data:    "",
			wantErr: ErrNoEntries,
		},
		{
			name:    "only newlines",
			data:    "\n\n\n",
			wantErr: ErrNoEntries,
		},
		{
			name:    "invalid utf8",
			data:    "alpha\n\xff\xfe\n",
			wantErr: ErrUnreadable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := NewCorpusString(tc.data)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("NewCorpusString() error = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewCorpusString() failed: %v", err)
			}
			got := c.Entries()
			if len(got) != len(tc.want) {
				t.Fatalf("Entries() = %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("entry %d = %q, want %q", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestNewCorpusReaderFailure(t *testing.T) {
	r := iotest.ErrReader(errors.New("disk gone"))
	if _, err := NewCorpusReader(r); !errors.Is(err, ErrUnreadable) {
		t.Errorf("NewCorpusReader() error = %v, want ErrUnreadable", err)
	}
}

func TestNewCorpusEmptySlice(t *testing.T) {
	if _, err := NewCorpus(nil); !errors.Is(err, ErrNoEntries) {
		t.Errorf("NewCorpus(nil) error = %v, want ErrNoEntries", err)
	}
}

// Every possible output of a loaded corpus is one of its source lines, and
// every source line is reachable.
func TestCorpusSampleCoversAllEntries(t *testing.T) {
	lines := []string{"qui", "debitis", "aliquid", "doloribus", "impedit"}
	c, err := NewCorpusReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
	if err != nil {
		t.Fatalf("NewCorpusReader() failed: %v", err)
	}
	if c.Len() != len(lines) {
		t.Fatalf("Len() = %d, want %d", c.Len(), len(lines))
	}

	seen := make(map[string]bool)
	r := seededSource(7)
	for i := 0; i < 500; i++ {
		v := c.Sample(r)
		found := false
		for _, line := range lines {
			if v == line {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("Sample() = %q, not present in the source resource", v)
		}
		seen[v] = true
	}
	if len(seen) != len(lines) {
		t.Errorf("observed %d distinct outputs over 500 samples, want %d", len(seen), len(lines))
	}
}

func TestCorpusSampleConsumesOneDraw(t *testing.T) {
	c := MustCorpus("solo")
	counter := &drawCounter{inner: seededSource(0)}
	if got := c.Sample(counter); got != "solo" {
		t.Errorf("Sample() = %q, want %q", got, "solo")
	}
	if counter.n != 1 {
		t.Errorf("Sample() consumed %d draws, want 1", counter.n)
	}
}

func TestCorpusEntriesReturnsCopy(t *testing.T) {
	c := MustCorpus("a\nb\n")
	entries := c.Entries()
	entries[0] = "mutated"
	if got := c.Sample(newScriptSource(t, 0)); got != "a" {
		t.Errorf("Sample() = %q after Entries() mutation, want %q", got, "a")
	}
}
