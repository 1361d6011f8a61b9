package faux

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestRegistryDefineCorpus(t *testing.T) {
	reg := NewRegistry()
	if err := reg.DefineCorpus("codename", []string{"osprey", "lark"}); err != nil {
		t.Fatalf("DefineCorpus() failed: %v", err)
	}

	g, ok := reg.Lookup("codename")
	if !ok {
		t.Fatal("Lookup() did not find codename")
	}
	if got := g.Sample(newScriptSource(t, 1)); got != "lark" {
		t.Errorf("Sample() = %q, want %q", got, "lark")
	}
}

func TestRegistryDefineCorpusEmpty(t *testing.T) {
	reg := NewRegistry()
	if err := reg.DefineCorpus("empty", nil); !errors.Is(err, ErrNoEntries) {
		t.Errorf("DefineCorpus() error = %v, want ErrNoEntries", err)
	}
}

func TestRegistryDefineCorpusFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("osprey\nlark\nheron\n"), 0o644); err != nil {
		t.Fatalf("failed to write corpus file: %v", err)
	}

	reg := NewRegistry()
	if err := reg.DefineCorpusFile("birds", path); err != nil {
		t.Fatalf("DefineCorpusFile() failed: %v", err)
	}
	g, _ := reg.Lookup("birds")
	if got := g.Sample(newScriptSource(t, 2)); got != "heron" {
		t.Errorf("Sample() = %q, want %q", got, "heron")
	}
}

func TestRegistryDefineCorpusFileMissing(t *testing.T) {
	reg := NewRegistry()
	err := reg.DefineCorpusFile("ghost", filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, ErrUnreadable) {
		t.Errorf("DefineCorpusFile() error = %v, want ErrUnreadable", err)
	}
}

func TestRegistryDuplicateName(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register("name", Literal("x")); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	if err := reg.Register("name", Literal("y")); !errors.Is(err, ErrDuplicate) {
		t.Errorf("Register() error = %v, want ErrDuplicate", err)
	}
}

func TestRegistryDefineTemplates(t *testing.T) {
	reg := NewRegistry()
	if err := reg.DefineCorpus("first", []string{"Cleta"}); err != nil {
		t.Fatalf("DefineCorpus() failed: %v", err)
	}
	if err := reg.DefineCorpus("last", []string{"McClure"}); err != nil {
		t.Fatalf("DefineCorpus() failed: %v", err)
	}
	err := reg.DefineTemplates("full", []TemplateDef{
		{Pattern: "{} {}", Parts: []string{"first", "last"}},
	})
	if err != nil {
		t.Fatalf("DefineTemplates() failed: %v", err)
	}

	g, _ := reg.Lookup("full")
	// Draws: template selection, then one per corpus slot.
	if got := g.Sample(newScriptSource(t, 0, 0, 0)); got != "Cleta McClure" {
		t.Errorf("Sample() = %q, want %q", got, "Cleta McClure")
	}
}

func TestRegistryDefineTemplatesValidation(t *testing.T) {
	testCases := []struct {
		name    string
		defs    []TemplateDef
		wantErr error
	}{
		{
			name:    "unknown part",
			defs:    []TemplateDef{{Pattern: "{}", Parts: []string{"nope"}}},
			wantErr: ErrNotDefined,
		},
		{
			name:    "slot count mismatch",
			defs:    []TemplateDef{{Pattern: "{}.{}", Parts: []string{"word"}}},
			wantErr: ErrSlotMismatch,
		},
		{
			name:    "no templates",
			defs:    nil,
			wantErr: ErrNoTemplates,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reg := NewRegistry()
			if err := reg.DefineCorpus("word", []string{"w"}); err != nil {
				t.Fatalf("DefineCorpus() failed: %v", err)
			}
			if err := reg.DefineTemplates("bad", tc.defs); !errors.Is(err, tc.wantErr) {
				t.Errorf("DefineTemplates() error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestRegistryApply(t *testing.T) {
	cfg := &RegistryConfig{
		Definitions: []Definition{
			{Name: "digit", Corpus: &CorpusDef{Entries: []string{"0", "1", "2"}}},
			{Name: "word", Corpus: &CorpusDef{Entries: []string{"qui", "quo"}}},
			{Name: "pair", Templates: []TemplateDef{
				{Pattern: "{}-{}", Parts: []string{"word", "digit"}},
			}},
		},
	}

	reg := NewRegistry()
	if err := reg.Apply(cfg); err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}

	names := reg.Names()
	want := []string{"digit", "word", "pair"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	g, _ := reg.Lookup("pair")
	if got := g.Sample(newScriptSource(t, 0, 1, 2)); got != "quo-2" {
		t.Errorf("Sample() = %q, want %q", got, "quo-2")
	}
}

func TestRegistryApplyForwardReference(t *testing.T) {
	// Definitions may only reference names defined earlier; a forward
	// reference is a construction error, which keeps the binding graph
	// acyclic by construction.
	cfg := &RegistryConfig{
		Definitions: []Definition{
			{Name: "pair", Templates: []TemplateDef{
				{Pattern: "{}", Parts: []string{"word"}},
			}},
			{Name: "word", Corpus: &CorpusDef{Entries: []string{"qui"}}},
		},
	}
	if err := NewRegistry().Apply(cfg); !errors.Is(err, ErrNotDefined) {
		t.Errorf("Apply() error = %v, want ErrNotDefined", err)
	}
}

func TestRegistryApplyRejectsAmbiguousDefinition(t *testing.T) {
	cfg := &RegistryConfig{
		Definitions: []Definition{
			{
				Name:      "both",
				Corpus:    &CorpusDef{Entries: []string{"x"}},
				Templates: []TemplateDef{{Pattern: "y"}},
			},
		},
	}
	if err := NewRegistry().Apply(cfg); err == nil {
		t.Error("Apply() accepted a definition with both corpus and templates")
	}
}
