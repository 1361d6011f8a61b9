/*
Package wordstore provides a SQLite-backed store for named corpora, letting
applications manage the word lists behind faux generators in a database
instead of flat files.

It supports multiple corpora within a single database, preserves entry order,
and offers JSON-based export and import for backups and transfer between
databases. Loading a corpus returns a ready-to-use *faux.Corpus; all the
usual construction-time validation (non-emptiness in particular) applies.
*/
package wordstore
