package session

import (
	"sync"
	"testing"
	"time"

	"github.com/gofiber/storage"
)

// testStorage is a minimal in-memory implementation of storage.Storage for tests.
type testStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ storage.Storage = (*testStorage)(nil)

func (s *testStorage) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v := s.data[key]
	out := make([]byte, len(v))
	copy(out, v)

	return out, nil
}

func (s *testStorage) Set(key string, val []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := make([]byte, len(val))
	copy(buf, val)
	s.data[key] = buf

	return nil
}

func (s *testStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)

	return nil
}

func (s *testStorage) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = make(map[string][]byte)

	return nil
}

func (s *testStorage) Close() error { return nil }

func initTestStore() {
	Init(&testStorage{data: make(map[string][]byte)})
}

func TestWriteReadRoundtrip(t *testing.T) {
	initTestStore()

	id := NewID()

	in := &Data{Admin: true}
	if err := in.Write(id, time.Minute); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var out Data
	if err := out.Read(id); err != nil {
		t.Fatalf("read failed: %v", err)
	}

	if !out.Admin {
		t.Fatal("expected admin flag to survive the roundtrip")
	}

	if !out.Valid() {
		t.Fatalf("expected valid session, got %+v", out)
	}
}

func TestExpiredSessionIsInvalid(t *testing.T) {
	initTestStore()

	id := NewID()

	in := &Data{Admin: true}
	if err := in.Write(id, -time.Second); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var out Data
	if err := out.Read(id); err != nil {
		t.Fatalf("read failed: %v", err)
	}

	if out.Valid() {
		t.Fatal("expected expired session to be invalid")
	}
}

func TestNonAdminSessionIsInvalid(t *testing.T) {
	d := Data{Admin: false, ExpiresAt: time.Now().Add(time.Hour)}
	if d.Valid() {
		t.Fatal("expected non-admin session to be invalid")
	}
}

func TestDeleteRemovesSession(t *testing.T) {
	initTestStore()

	id := NewID()

	in := &Data{Admin: true}
	if err := in.Write(id, time.Minute); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if err := Delete(id); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	var out Data
	if err := out.Read(id); err == nil {
		t.Fatal("expected read of deleted session to fail")
	}
}

func TestNewIDLengthAndUniqueness(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		id := NewID()
		if len(id) != idLength {
			t.Fatalf("expected ID length %d, got %d", idLength, len(id))
		}

		if seen[id] {
			t.Fatalf("duplicate session ID generated: %s", id)
		}

		seen[id] = true
	}
}

func TestInitNilStoragePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil storage")
		}
	}()

	Init(nil)
}
