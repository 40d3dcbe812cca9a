// ABOUTME: Tests for the badger-backed local KV store.
// ABOUTME: Verifies get/set/delete semantics and not-found behavior.
package localdata

import (
	"errors"
	"testing"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSetGetDelete(t *testing.T) {
	s := setupStore(t)

	if err := s.Set(KeyToken, []byte("tok-123")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := s.Get(KeyToken)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "tok-123" {
		t.Errorf("Get = %q, want tok-123", got)
	}

	if err := s.Delete(KeyToken); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := s.Get(KeyToken); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after Delete = %v, want ErrNotFound", err)
	}
}

func TestGetMissingKey(t *testing.T) {
	s := setupStore(t)
	if _, err := s.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get missing = %v, want ErrNotFound", err)
	}
}

func TestDeleteMissingKeyIsNoError(t *testing.T) {
	s := setupStore(t)
	if err := s.Delete("nope"); err != nil {
		t.Errorf("Delete missing = %v, want nil", err)
	}
}

func TestOverwrite(t *testing.T) {
	s := setupStore(t)
	if err := s.Set(KeyUser, []byte(`{"id":"a"}`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Set(KeyUser, []byte(`{"id":"b"}`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err := s.Get(KeyUser)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != `{"id":"b"}` {
		t.Errorf("Get = %q, want latest value", got)
	}
}
