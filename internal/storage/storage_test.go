package storage

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestDiskvStoreRoundTrip(t *testing.T) {
	s, err := NewDiskvStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewDiskvStore: %v", err)
	}
	defer s.Close()

	if _, err := s.Load(); !errors.Is(err, ErrSlotEmpty) {
		t.Fatalf("expected ErrSlotEmpty on fresh store, got %v", err)
	}

	want := []byte(`[{"id":"a"}]`)
	if err := s.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != string(want) {
		t.Fatalf("Load = %q, want %q", got, want)
	}

	// saves overwrite, not append
	want = []byte(`[]`)
	if err := s.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err = s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != string(want) {
		t.Fatalf("Load after overwrite = %q, want %q", got, want)
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replykit.db")
	s, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	defer s.Close()

	if _, err := s.Load(); !errors.Is(err, ErrSlotEmpty) {
		t.Fatalf("expected ErrSlotEmpty on fresh store, got %v", err)
	}

	want := []byte(`[{"id":"a"}]`)
	if err := s.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save(want); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != string(want) {
		t.Fatalf("Load = %q, want %q", got, want)
	}
}
