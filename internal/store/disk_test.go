package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDiskUsageBytes(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.db"), make([]byte, 100), 0644); err != nil {
		t.Fatal(err)
	}
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "b.db"), make([]byte, 50), 0644); err != nil {
		t.Fatal(err)
	}

	n, err := DiskUsageBytes(dir)
	if err != nil {
		t.Fatal(err)
	}
	if n != 150 {
		t.Errorf("DiskUsageBytes = %d, want 150", n)
	}

	// Missing paths and empty strings contribute nothing.
	n, err = DiskUsageBytes(filepath.Join(dir, "a.db"), filepath.Join(dir, "gone.db"), "")
	if err != nil {
		t.Fatal(err)
	}
	if n != 100 {
		t.Errorf("DiskUsageBytes = %d, want 100", n)
	}
}

func TestDatabaseSizeBytes(t *testing.T) {
	n, err := DatabaseSizeBytes("")
	if err != nil || n != 0 {
		t.Errorf("empty path: got %d, %v", n, err)
	}

	dir := t.TempDir()
	db := filepath.Join(dir, "duala.db")
	if err := os.WriteFile(db, make([]byte, 200), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(db+"-wal", make([]byte, 30), 0644); err != nil {
		t.Fatal(err)
	}

	n, err = DatabaseSizeBytes(db)
	if err != nil {
		t.Fatal(err)
	}
	if n != 230 {
		t.Errorf("DatabaseSizeBytes = %d, want 230", n)
	}
}
