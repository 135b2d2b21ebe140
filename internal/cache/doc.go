// Package cache persists transcription and translation results in SQLite.
//
// The store holds two related tables: file_cache maps a content hash to the
// token sequence transcribed from those bytes, and translation_cache maps a
// content+settings hash to the completed sentence sequence, referencing its
// file_cache row. Deleting a file_cache row cascades to its translations.
//
// Inserts are append-only: PutTokens refuses to overwrite an existing entry
// and PutSentences requires the referenced token entry to exist. Callers
// check before computing; a duplicate-key failure after a lost race means
// another run already stored the same work, and the caller re-reads it.
// Writers serialize across processes through the store's flock-based Lock.
//
// Schema changes bump schemaVersion in schema.go; the store refuses to open
// a database with a different version and names the remedy in the error.
package cache
