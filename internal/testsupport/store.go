package testsupport

import (
	"testing"

	"lyricsync/internal/cache"
	"lyricsync/internal/config"
)

// MustOpenCache opens the cache database configured on cfg and registers cleanup.
func MustOpenCache(t testing.TB, cfg *config.Config) *cache.Store {
	t.Helper()

	store, err := cache.Open(cfg.CacheDBPath())
	if err != nil {
		t.Fatalf("cache.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}
