package session

import (
	"path/filepath"
	"testing"
)

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")

	err := Save(path, Session{TwinID: "twin-1", AuthToken: "tok"})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if s.TwinID != "twin-1" {
		t.Errorf("Expected twin id 'twin-1', got '%s'", s.TwinID)
	}
	if s.AuthToken != "tok" {
		t.Errorf("Expected token 'tok', got '%s'", s.AuthToken)
	}
	if s.SavedAt.IsZero() {
		t.Error("Expected SavedAt to be set")
	}
}

func TestLoadMissingFileIsNoSession(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != ErrNoSession {
		t.Errorf("Expected ErrNoSession, got %v", err)
	}
}

func TestSaveRequiresTwinID(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "session.json"), Session{})
	if err == nil {
		t.Error("Expected error saving session without twin id, got nil")
	}
}

func TestClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	err := Save(path, Session{TwinID: "twin-1"})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	err = Clear(path)
	if err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	_, err = Load(path)
	if err != ErrNoSession {
		t.Errorf("Expected ErrNoSession after clear, got %v", err)
	}

	// Clearing again is a no-op.
	err = Clear(path)
	if err != nil {
		t.Errorf("Expected clearing a missing session to succeed, got %v", err)
	}
}
