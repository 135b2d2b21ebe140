// Package fingerprint computes the cache identity keys for source material.
//
// Two keys exist: the data hash identifies raw file content alone, and the
// full hash identifies content combined with the settings that shape the
// translated output (translator, subtitle mode, voice). Identical inputs
// always produce identical keys, so cached work can be reused across runs.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
)

// DataHash returns the hex SHA-256 digest of the raw content bytes.
func DataHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// FullHash returns the hex SHA-256 digest of the content bytes followed by
// the translator, subtitle mode, and voice identifiers in that order. The
// identifiers are appended as raw bytes with no separator. A missing voice
// selection is treated as the empty string so it hashes the same way every
// run.
func FullHash(data []byte, translator, mode, voice string) string {
	hasher := sha256.New()
	hasher.Write(data)
	hasher.Write([]byte(translator))
	hasher.Write([]byte(mode))
	hasher.Write([]byte(voice))
	return hex.EncodeToString(hasher.Sum(nil))
}

// HashFile reads path and returns both keys for it.
func HashFile(path, translator, mode, voice string) (dataHash, fullHash string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("read source file: %w", err)
	}
	return DataHash(data), FullHash(data, translator, mode, voice), nil
}
