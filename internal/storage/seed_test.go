package storage

import (
	"path/filepath"
	"testing"
)

func TestWriteSeedCatalog_ProducesLoadableCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agents.json")
	if err := WriteSeedCatalog(path); err != nil {
		t.Fatalf("WriteSeedCatalog failed: %v", err)
	}

	store := NewCatalogStoreManager(path)
	if err := store.Load(); err != nil {
		t.Fatalf("seed catalog does not load: %v", err)
	}
	if len(store.Agents()) == 0 {
		t.Fatal("seed catalog is empty")
	}
	if err := ValidateAgents(store.Agents()); err != nil {
		t.Errorf("seed catalog fails validation: %v", err)
	}
}

func TestWriteSeedCatalog_RefusesToOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agents.json")
	if err := WriteSeedCatalog(path); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	if err := WriteSeedCatalog(path); err == nil {
		t.Error("expected error when the file already exists")
	}
}
