package lexicon

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.yaml")
	if err := os.WriteFile(path, []byte("locations:\n  marshall: [marshall city]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	lex, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	provider := NewProvider(lex)
	w := NewWatcher(path, provider, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if _, ok := provider.Current().CanonicalLocation("unification town"); ok {
		t.Fatal("variant present before reload")
	}
	updated := "locations:\n  marshall: [marshall city, unification town]\n"
	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(3 * time.Second)
	for {
		if got, ok := provider.Current().CanonicalLocation("unification town"); ok && got == "marshall" {
			return
		}
		select {
		case <-deadline:
			t.Fatal("reload did not pick up new variant")
		case <-time.After(50 * time.Millisecond):
		}
	}
}

func TestWatcherKeepsSnapshotOnBadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.yaml")
	if err := os.WriteFile(path, []byte("locations:\n  marshall: [marshall city]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	lex, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	provider := NewProvider(lex)
	w := NewWatcher(path, provider, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte("locations: [broken"), 0644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(800 * time.Millisecond)
	if _, ok := provider.Current().CanonicalLocation("marshall city"); !ok {
		t.Error("previous snapshot lost after failed reload")
	}
}

// Stop while writes are still landing. The run loop must exit without
// touching the nilled watcher field.
func TestWatcherStopDuringEvents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.yaml")
	content := []byte("locations:\n  marshall: [marshall city]\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	provider := NewProvider(nil)
	w := NewWatcher(path, provider, nil)
	if err := w.Start(context.Background()); err != nil {
		t.Fatal(err)
	}

	writes := make(chan struct{})
	go func() {
		defer close(writes)
		for i := 0; i < 20; i++ {
			if err := os.WriteFile(path, content, 0644); err != nil {
				return
			}
		}
	}()

	w.Stop()
	<-writes
	// A second Stop is a no-op.
	w.Stop()
}
