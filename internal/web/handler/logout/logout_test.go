package logout

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/storage"

	"github.com/GoFolio-Admin/GoFolio-Admin/internal/config"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/handler"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/web/session"
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

func TestLogoutDeletesSessionAndRedirects(t *testing.T) {
	session.Init(&testStorage{data: make(map[string][]byte)})

	app := fiber.New()

	var s Service
	if err := s.Init(app, &config.Config{}, nil); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	sessionID := session.NewID()
	data := &session.Data{Admin: true}

	if err := data.Write(sessionID, time.Minute); err != nil {
		t.Fatalf("failed to write session: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, Path, nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sessionID})

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected 302 Found, got %d", resp.StatusCode)
	}

	if loc := resp.Header.Get("Location"); loc != handler.RootPath {
		t.Fatalf("expected redirect to %s, got %s", handler.RootPath, loc)
	}

	// the stored session is gone
	var out session.Data
	if err := out.Read(sessionID); err == nil {
		t.Fatal("expected stored session to be deleted")
	}

	// the cookie is cleared
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName && c.MaxAge >= 0 {
			t.Fatalf("expected clearing session cookie, got %+v", c)
		}
	}
}

func TestLogoutWithoutSessionStillRedirects(t *testing.T) {
	session.Init(&testStorage{data: make(map[string][]byte)})

	app := fiber.New()

	var s Service
	if err := s.Init(app, &config.Config{}, nil); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, Path, nil), -1)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected 302 Found, got %d", resp.StatusCode)
	}
}
