package wordstore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
)

// ExportedCorpus is the serializable representation of a stored corpus,
// used for JSON-based import and export.
type ExportedCorpus struct {
	Name    string   `json:"name"`
	Entries []string `json:"entries"`
}

// ExportCorpus serializes the named corpus into JSON and writes it to the
// provided io.Writer. This is useful for backups or for transferring
// corpora between databases.
func (s *Store) ExportCorpus(ctx context.Context, name string, w io.Writer) error {
	entries, err := s.LoadCorpus(ctx, name)
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "Corpus exported",
		slog.String("corpus_name", name),
		slog.Int("entries_exported", len(entries)),
	)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ExportedCorpus{Name: name, Entries: entries})
}

// ImportCorpus reads a JSON representation of a corpus from an io.Reader
// and stores it, replacing any existing corpus with the same name.
func (s *Store) ImportCorpus(ctx context.Context, r io.Reader) error {
	var imported ExportedCorpus
	if err := json.NewDecoder(r).Decode(&imported); err != nil {
		return fmt.Errorf("failed to decode json corpus: %w", err)
	}
	if imported.Name == "" {
		return fmt.Errorf("imported corpus has no name")
	}

	if err := s.SaveCorpus(ctx, imported.Name, imported.Entries); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "Corpus imported",
		slog.String("corpus_name", imported.Name),
		slog.Int("entries_imported", len(imported.Entries)),
	)
	return nil
}
