package settings

import (
	"context"
	"path/filepath"
	"testing"
)

func TestSqliteStoreRoundtrip(t *testing.T) {
	store, err := NewSqliteStore(filepath.Join(t.TempDir(), "settings.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	if _, ok, err := store.Get(ctx, "accessToken"); err != nil || ok {
		t.Fatalf("expected absent key, got ok=%v err=%v", ok, err)
	}

	if err := store.Set(ctx, "accessToken", "tok1"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := store.Set(ctx, "accessToken", "tok2"); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}

	value, ok, err := store.Get(ctx, "accessToken")
	if err != nil || !ok {
		t.Fatalf("get failed: ok=%v err=%v", ok, err)
	}
	if value != "tok2" {
		t.Errorf("expected latest value, got %q", value)
	}

	if err := store.Delete(ctx, "accessToken"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "accessToken"); ok {
		t.Error("key must be gone after delete")
	}

	// Deleting an absent key is a no-op.
	if err := store.Delete(ctx, "accessToken"); err != nil {
		t.Errorf("deleting an absent key must not fail: %v", err)
	}
}
