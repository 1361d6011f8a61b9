package faux

import "testing"

func TestLowercase(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{"already lowercase", "melvin", "melvin"},
		{"uppercase folded", "McClure", "mcclure"},
		{"diacritics folded", "Gisèle", "gisele"},
		{"punctuation stripped", "O'Brien-Smith", "obriensmith"},
		{"digits stripped", "agent47", "agent"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := Lowercase(Literal(tc.in))
			if got := g.Sample(newScriptSource(t)); got != tc.want {
				t.Errorf("Lowercase(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestCapitalize(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{"ascii word", "totam", "Totam"},
		{"already capitalized", "Totam", "Totam"},
		{"single rune", "a", "A"},
		{"empty output", "", ""},
		{"accented first rune", "école", "École"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := Capitalize(Literal(tc.in))
			if got := g.Sample(newScriptSource(t)); got != tc.want {
				t.Errorf("Capitalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestTransformsCompose(t *testing.T) {
	// Capitalize over a corpus-backed word, the way sentence templates
	// capitalize their first word.
	words := MustCorpus("impedit\ntotam\n")
	g := Capitalize(words)
	if got := g.Sample(newScriptSource(t, 1)); got != "Totam" {
		t.Errorf("Sample() = %q, want %q", got, "Totam")
	}
}
