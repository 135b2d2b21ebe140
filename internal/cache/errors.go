package cache

import (
	"errors"
	"strings"
)

// ErrDuplicateKey is returned when an insert targets a hash that is already
// present. The store never overwrites: the entry another run computed for the
// same key is by construction identical, so callers treat this as "someone
// else already did the work" and re-read.
var ErrDuplicateKey = errors.New("cache entry already present")

// ErrMissingContent is returned when a sentence insert references a data hash
// with no file_cache row. Sentences are derived from tokens; storing them
// without their source entry would break the cascade relationship.
var ErrMissingContent = errors.New("no token entry for referenced data hash")

// classifyConstraintErr maps SQLite constraint failures onto the store's
// sentinel errors. The driver surfaces constraint violations as plain error
// strings, so matching on the constraint text is the available seam.
func classifyConstraintErr(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return ErrDuplicateKey
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return ErrMissingContent
	default:
		return err
	}
}
