package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"lingopipe/internal/config"
	"lingopipe/internal/lexicon"
)

// Store manages cache persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open initializes or connects to the cache database and verifies the schema.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}
	return OpenPath(filepath.Join(cfg.Paths.CacheDir, "cache.db"))
}

// OpenPath opens the cache database at an explicit location.
func OpenPath(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath, lock: flock.New(dbPath + ".lock")}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Lock acquires the cross-process write lock guarding check-then-insert
// sequences and returns a release function. Two runs over the same content
// must not race each other's inserts; everything else in the store is a
// single-statement transaction and needs no extra protection.
func (s *Store) Lock(ctx context.Context) (func(), error) {
	ok, err := s.lock.TryLockContext(ctx, 100*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("acquire cache lock: %w", err)
	}
	if !ok {
		return nil, errors.New("acquire cache lock: not acquired")
	}
	return func() { _ = s.lock.Unlock() }, nil
}

// GetTokens returns the token sequence cached for a content hash, reporting
// whether an entry exists. A miss is not an error.
func (s *Store) GetTokens(ctx context.Context, dataHash string) ([]lexicon.Token, bool, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		"SELECT semantic_units FROM file_cache WHERE data_hash = ?", dataHash,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select tokens: %w", err)
	}

	var units []lexicon.Token
	if err := json.Unmarshal([]byte(payload), &units); err != nil {
		return nil, false, fmt.Errorf("decode cached tokens: %w", err)
	}
	return units, true, nil
}

// PutTokens stores the token sequence for a content hash. It fails with
// ErrDuplicateKey when the hash is already present.
func (s *Store) PutTokens(ctx context.Context, dataHash string, units []lexicon.Token) error {
	payload, err := json.Marshal(units)
	if err != nil {
		return fmt.Errorf("encode tokens: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO file_cache (data_hash, semantic_units) VALUES (?, ?)",
		dataHash, string(payload),
	)
	if err != nil {
		return fmt.Errorf("insert tokens: %w", classifyConstraintErr(err))
	}
	return nil
}

// GetSentences returns the sentence sequence cached for a content+settings
// hash, reporting whether an entry exists.
func (s *Store) GetSentences(ctx context.Context, fullHash string) ([]lexicon.Sentence, bool, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		"SELECT bilingual_objects FROM translation_cache WHERE full_hash = ?", fullHash,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select sentences: %w", err)
	}

	var sentences []lexicon.Sentence
	if err := json.Unmarshal([]byte(payload), &sentences); err != nil {
		return nil, false, fmt.Errorf("decode cached sentences: %w", err)
	}
	return sentences, true, nil
}

// PutSentences stores the completed sentence sequence under a
// content+settings hash, referencing its token entry. It fails with
// ErrMissingContent when no token entry exists for dataHash and with
// ErrDuplicateKey when the full hash is already present.
func (s *Store) PutSentences(ctx context.Context, fullHash, dataHash string, sentences []lexicon.Sentence) error {
	payload, err := json.Marshal(sentences)
	if err != nil {
		return fmt.Errorf("encode sentences: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO translation_cache (full_hash, data_hash, bilingual_objects) VALUES (?, ?, ?)",
		fullHash, dataHash, string(payload),
	)
	if err != nil {
		return fmt.Errorf("insert sentences: %w", classifyConstraintErr(err))
	}
	return nil
}

// DeleteTokens removes a token entry; translations referencing it are
// cascade-deleted by the schema.
func (s *Store) DeleteTokens(ctx context.Context, dataHash string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM file_cache WHERE data_hash = ?", dataHash); err != nil {
		return fmt.Errorf("delete tokens: %w", err)
	}
	return nil
}

// Stats summarizes the cache contents for diagnostics.
type Stats struct {
	Path         string
	SizeBytes    int64
	Files        int
	Translations int
}

// Stats reports entry counts and the database size.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	stats := Stats{Path: s.path}
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM file_cache").Scan(&stats.Files); err != nil {
		return Stats{}, fmt.Errorf("count file cache: %w", err)
	}
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM translation_cache").Scan(&stats.Translations); err != nil {
		return Stats{}, fmt.Errorf("count translation cache: %w", err)
	}
	if info, err := os.Stat(s.path); err == nil {
		stats.SizeBytes = info.Size()
	}
	return stats, nil
}

// Clear removes every cache entry. Translations go with their file entries
// via the cascade.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM file_cache"); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	return nil
}
