package wordstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/solitonlab/faux/pkg/faux"
)

// ErrNotFound is returned when a named corpus does not exist in the store.
var ErrNotFound = errors.New("corpus not found")

// CorpusInfo holds the metadata for one stored corpus.
type CorpusInfo struct {
	Id      int
	Name    string
	Entries int
}

// SetupSchema initializes the necessary tables in the provided database.
// This function should be called once on a new database before any other
// operations are performed. It is idempotent and safe to call on an
// already-initialized database.
func SetupSchema(db *sql.DB) error {
	const (
		schemaCorpora = `
CREATE TABLE IF NOT EXISTS faux_corpora (
    corpus_id INTEGER PRIMARY KEY,
    corpus_name TEXT NOT NULL UNIQUE
);
`
		schemaEntries = `
CREATE TABLE IF NOT EXISTS faux_entries (
    corpus_id INTEGER NOT NULL,
    position INTEGER NOT NULL,
    entry_text TEXT NOT NULL,
    PRIMARY KEY (corpus_id, position)
);
`
	)

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	if _, err = tx.Exec(schemaCorpora); err != nil {
		return fmt.Errorf("could not create corpora schema: %w", err)
	}
	if _, err = tx.Exec(schemaEntries); err != nil {
		return fmt.Errorf("could not create entries schema: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}
	return nil
}

// Store is the entry point for corpus persistence. It holds the database
// connection and prepared SQL statements for efficient access.
type Store struct {
	db                    *sql.DB
	stmtGetCorpus         *sql.Stmt
	stmtListCorpora       *sql.Stmt
	stmtGetOrInsertCorpus *sql.Stmt
	stmtDeleteCorpus      *sql.Stmt
	stmtDeleteEntries     *sql.Stmt
	stmtInsertEntry       *sql.Stmt
	stmtGetEntries        *sql.Stmt
	stmtCountEntries      *sql.Stmt
	logger                *slog.Logger
}

// NewStore creates and returns a new Store over an initialized database.
// It pre-compiles all necessary SQL statements, returning an error if any
// preparation fails.
func NewStore(db *sql.DB) (*Store, error) {
	stmtGetCorpus, err := db.Prepare(`SELECT corpus_id FROM faux_corpora WHERE corpus_name = ?;`)
	if err != nil {
		return nil, err
	}

	stmtListCorpora, err := db.Prepare(`SELECT corpus_id, corpus_name FROM faux_corpora ORDER BY corpus_name;`)
	if err != nil {
		return nil, err
	}

	stmtGetOrInsertCorpus, err := db.Prepare(`INSERT INTO faux_corpora (corpus_name) VALUES (?) ON CONFLICT(corpus_name) DO UPDATE SET corpus_name=excluded.corpus_name RETURNING corpus_id;`)
	if err != nil {
		return nil, err
	}

	stmtDeleteCorpus, err := db.Prepare(`DELETE FROM faux_corpora WHERE corpus_id = ?;`)
	if err != nil {
		return nil, err
	}

	stmtDeleteEntries, err := db.Prepare(`DELETE FROM faux_entries WHERE corpus_id = ?;`)
	if err != nil {
		return nil, err
	}

	stmtInsertEntry, err := db.Prepare(`INSERT INTO faux_entries (corpus_id, position, entry_text) VALUES (?, ?, ?);`)
	if err != nil {
		return nil, err
	}

	stmtGetEntries, err := db.Prepare(`SELECT entry_text FROM faux_entries WHERE corpus_id = ? ORDER BY position;`)
	if err != nil {
		return nil, err
	}

	stmtCountEntries, err := db.Prepare(`SELECT COUNT(*) FROM faux_entries WHERE corpus_id = ?;`)
	if err != nil {
		return nil, err
	}

	return &Store{
		db:                    db,
		stmtGetCorpus:         stmtGetCorpus,
		stmtListCorpora:       stmtListCorpora,
		stmtGetOrInsertCorpus: stmtGetOrInsertCorpus,
		stmtDeleteCorpus:      stmtDeleteCorpus,
		stmtDeleteEntries:     stmtDeleteEntries,
		stmtInsertEntry:       stmtInsertEntry,
		stmtGetEntries:        stmtGetEntries,
		stmtCountEntries:      stmtCountEntries,
		logger:                slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, nil
}

// Close releases all prepared SQL statements held by the Store. It should be
// called when the Store is no longer needed to free up database resources.
func (s *Store) Close() {
	_ = s.stmtGetCorpus.Close()
	_ = s.stmtListCorpora.Close()
	_ = s.stmtGetOrInsertCorpus.Close()
	_ = s.stmtDeleteCorpus.Close()
	_ = s.stmtDeleteEntries.Close()
	_ = s.stmtInsertEntry.Close()
	_ = s.stmtGetEntries.Close()
	_ = s.stmtCountEntries.Close()
}

// SetLogger sets the logger for the Store. By default, all logs are
// discarded.
func (s *Store) SetLogger(logger *slog.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// SaveCorpus persists the entries under the given name, replacing any
// previous contents. Entry order is preserved. The whole operation is
// performed within a single transaction. An empty entry list is rejected,
// since it could never load back into a valid generator.
func (s *Store) SaveCorpus(ctx context.Context, name string, entries []string) error {
	if len(entries) == 0 {
		return fmt.Errorf("save corpus %q: %w", name, faux.ErrNoEntries)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	var corpusID int
	if err = tx.StmtContext(ctx, s.stmtGetOrInsertCorpus).QueryRowContext(ctx, name).Scan(&corpusID); err != nil {
		return fmt.Errorf("failed to get or insert corpus %q: %w", name, err)
	}

	if _, err = tx.StmtContext(ctx, s.stmtDeleteEntries).ExecContext(ctx, corpusID); err != nil {
		return fmt.Errorf("failed to clear old entries for corpus %q: %w", name, err)
	}

	insert := tx.StmtContext(ctx, s.stmtInsertEntry)
	for i, entry := range entries {
		if _, err = insert.ExecContext(ctx, corpusID, i, entry); err != nil {
			return fmt.Errorf("failed to insert entry %d of corpus %q: %w", i, name, err)
		}
	}

	s.logger.InfoContext(ctx, "Corpus saved",
		slog.String("corpus_name", name),
		slog.Int("corpus_id", corpusID),
		slog.Int("entries", len(entries)),
	)

	return tx.Commit()
}

// LoadCorpus retrieves the entries stored under the given name, in their
// saved order. It returns ErrNotFound if no corpus with that name exists.
func (s *Store) LoadCorpus(ctx context.Context, name string) ([]string, error) {
	var corpusID int
	err := s.stmtGetCorpus.QueryRowContext(ctx, name).Scan(&corpusID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("corpus %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up corpus %q: %w", name, err)
	}

	rows, err := s.stmtGetEntries.QueryContext(ctx, corpusID)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	var entries []string
	for rows.Next() {
		var entry string
		if err = rows.Scan(&entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Corpus loads the named corpus and constructs a ready-to-use generator
// over it. The construction-time validation of faux.NewCorpus applies.
func (s *Store) Corpus(ctx context.Context, name string) (*faux.Corpus, error) {
	entries, err := s.LoadCorpus(ctx, name)
	if err != nil {
		return nil, err
	}
	return faux.NewCorpus(entries)
}

// ListCorpora retrieves metadata for all corpora currently in the database,
// ordered by name.
func (s *Store) ListCorpora(ctx context.Context) ([]CorpusInfo, error) {
	rows, err := s.stmtListCorpora.QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	var infos []CorpusInfo
	for rows.Next() {
		var info CorpusInfo
		if err = rows.Scan(&info.Id, &info.Name); err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range infos {
		if err = s.stmtCountEntries.QueryRowContext(ctx, infos[i].Id).Scan(&infos[i].Entries); err != nil {
			return nil, err
		}
	}
	return infos, nil
}

// DeleteCorpus removes a corpus and all of its entries from the database.
// The operation is performed within a transaction. Deleting a corpus that
// does not exist is not an error.
func (s *Store) DeleteCorpus(ctx context.Context, name string) error {
	var corpusID int
	err := s.stmtGetCorpus.QueryRowContext(ctx, name).Scan(&corpusID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up corpus %q: %w", name, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	if _, err = tx.StmtContext(ctx, s.stmtDeleteEntries).ExecContext(ctx, corpusID); err != nil {
		return fmt.Errorf("failed to remove entries for corpus %d: %w", corpusID, err)
	}
	if _, err = tx.StmtContext(ctx, s.stmtDeleteCorpus).ExecContext(ctx, corpusID); err != nil {
		return fmt.Errorf("failed to remove corpus %d: %w", corpusID, err)
	}

	s.logger.InfoContext(ctx, "Corpus removed",
		slog.String("corpus_name", name),
		slog.Int("corpus_id", corpusID),
	)

	return tx.Commit()
}
