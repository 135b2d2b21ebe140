package testsupport

import (
	"testing"

	"lingopipe/internal/cache"
	"lingopipe/internal/config"
)

// MustOpenStore opens a cache store for the test config and closes it with
// the test.
func MustOpenStore(t testing.TB, cfg *config.Config) *cache.Store {
	t.Helper()

	store, err := cache.Open(cfg)
	if err != nil {
		t.Fatalf("open cache store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close cache store: %v", err)
		}
	})
	return store
}
