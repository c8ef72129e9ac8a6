package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLocalStorageList(t *testing.T) {
	base := t.TempDir()
	store, err := NewLocalStorage(base)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	if err := os.MkdirAll(filepath.Join(base, "docs", "nested"), 0755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"b.json", "a.md", "c.md"} {
		if err := os.WriteFile(filepath.Join(base, "docs", name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	names, err := store.List(ctx, "docs")
	if err != nil {
		t.Fatal(err)
	}
	// Sorted, and the nested directory is excluded.
	want := []string{"a.md", "b.json", "c.md"}
	if len(names) != len(want) {
		t.Fatalf("List = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("List = %v, want %v", names, want)
		}
	}
}

func TestLocalStorageListMissingDir(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	names, err := store.List(context.Background(), "no_such_dir")
	if err != nil {
		t.Fatalf("missing directory should not error: %v", err)
	}
	if names != nil {
		t.Errorf("List = %v, want nil", names)
	}
}

func TestLocalStorageReadWrite(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	// Write creates intermediate directories.
	if err := store.Write(ctx, "uploads/batch-1.json", bytes.NewReader([]byte(`{"ok":true}`))); err != nil {
		t.Fatal(err)
	}

	data, err := store.Read(ctx, "uploads/batch-1.json")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"ok":true}` {
		t.Errorf("Read = %q", data)
	}

	if _, err := store.Read(ctx, "uploads/missing.json"); err == nil {
		t.Error("reading a missing file should error")
	}
}
