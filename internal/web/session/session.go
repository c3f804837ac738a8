// Package session stores the admin login flag in a server-side session
// keyed by a random ID carried in a cookie.
package session

import (
	"encoding/json"
	"time"

	"github.com/gofiber/storage"

	"github.com/GoFolio-Admin/GoFolio-Admin/internal/uniuri"
)

// CookieName is the name of the session cookie.
const CookieName = "session"

// idLength gives ~380 bits of entropy over the standard character set.
const idLength = 64

// store is the session storage backend.
var store storage.Storage

// Data represents the session data structure.
// ExpiresAt is stored explicitly so validity never depends on implicit
// framework state; the window slides on every authenticated request.
type Data struct {
	Admin     bool
	ExpiresAt time.Time
}

// Valid reports whether the session marks a logged-in admin and has not
// expired.
func (s *Data) Valid() bool {
	return s.Admin && time.Now().Before(s.ExpiresAt)
}

// Write writes the session data for the given session ID with an
// expiration duration, resetting the expiry window.
func (s *Data) Write(sessionID string, exp time.Duration) error {
	s.ExpiresAt = time.Now().Add(exp)

	out, err := json.Marshal(s)
	if err != nil {
		return err
	}

	return store.Set(sessionID, out, exp)
}

// Read reads the session data for the given session ID.
func (s *Data) Read(sessionID string) error {
	byteData, err := store.Get(sessionID)
	if err != nil {
		return err
	}

	return json.Unmarshal(byteData, s)
}

// Delete removes the session for the given session ID.
func Delete(sessionID string) error {
	return store.Delete(sessionID)
}

// Init initializes the session store with the provided storage backend.
func Init(storageBackend storage.Storage) {
	if storageBackend == nil {
		panic("storage is nil")
	}

	store = storageBackend
}

// NewID generates a new secure random session ID.
func NewID() string {
	return uniuri.NewLen(idLength)
}
