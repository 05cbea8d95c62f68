package store

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryStore_CRUD(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	l := testListing("Duala Rooms")
	if err := s.Create(ctx, l); err != nil {
		t.Fatal(err)
	}
	if l.ID != 1 {
		t.Errorf("first id = %d, want 1", l.ID)
	}

	got, err := s.Get(ctx, l.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Duala Rooms" {
		t.Errorf("got %+v", got)
	}

	l.Name = "Duala Suites"
	if err := s.Update(ctx, l); err != nil {
		t.Fatal(err)
	}
	got, _ = s.Get(ctx, l.ID)
	if got.Name != "Duala Suites" {
		t.Errorf("update not applied: %+v", got)
	}

	if err := s.Delete(ctx, l.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get(ctx, l.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	l := testListing("Original")
	if err := s.Create(ctx, l); err != nil {
		t.Fatal(err)
	}

	got, _ := s.Get(ctx, l.ID)
	got.Name = "Mutated"

	again, _ := s.Get(ctx, l.ID)
	if again.Name != "Original" {
		t.Errorf("stored listing mutated through returned copy: %q", again.Name)
	}

	all, _ := s.All(ctx)
	all[0].Name = "Mutated again"
	again, _ = s.Get(ctx, l.ID)
	if again.Name != "Original" {
		t.Errorf("stored listing mutated through All: %q", again.Name)
	}
}

func TestMemoryStore_UpdatePreservesCreatedAtAndViews(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	l := testListing("Tracked")
	if err := s.Create(ctx, l); err != nil {
		t.Fatal(err)
	}
	created := l.CreatedAt
	for i := 0; i < 5; i++ {
		if err := s.RecordView(ctx, l.ID); err != nil {
			t.Fatal(err)
		}
	}

	l.Name = "Tracked Again"
	l.ViewCount = 0
	if err := s.Update(ctx, l); err != nil {
		t.Fatal(err)
	}

	got, _ := s.Get(ctx, l.ID)
	if got.ViewCount != 5 {
		t.Errorf("ViewCount = %d, want 5 preserved across update", got.ViewCount)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt changed on update: %v != %v", got.CreatedAt, created)
	}
}

func TestMemoryStore_Counts(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	open := testListing("Open")
	closed := testListing("Closed")
	closed.Available = false
	_ = s.Create(ctx, open)
	_ = s.Create(ctx, closed)

	if n, _ := s.Count(ctx); n != 2 {
		t.Errorf("Count = %d, want 2", n)
	}
	if n, _ := s.CountAvailable(ctx); n != 1 {
		t.Errorf("CountAvailable = %d, want 1", n)
	}

	avail, _ := s.AllAvailable(ctx)
	if len(avail) != 1 || avail[0].Name != "Open" {
		t.Errorf("AllAvailable = %+v", avail)
	}
}
