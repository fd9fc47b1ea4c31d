package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"libraryapi/internal/platform/crypto"
)

// RecordedEntry is one activity entry captured by RecorderSpy.
type RecordedEntry struct {
	Actor      string
	Action     string
	EntityType string
	EntityID   string
	Details    string
}

// RecorderSpy implements activity.Recorder and captures entries so tests
// can assert on what was logged.
type RecorderSpy struct {
	mu      sync.Mutex
	Entries []RecordedEntry
}

func (s *RecorderSpy) Record(_ context.Context, actor, action, entityType, entityID, details string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Entries = append(s.Entries, RecordedEntry{
		Actor:      actor,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
	})
}

// GenerateExpiredToken generates an expired JWT token for testing.
func GenerateExpiredToken(secret, userID, role string) string {
	c := crypto.Claims{
		Sub:  userID,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	token, _ := t.SignedString([]byte(secret))
	return token
}

// NewRequest creates a new HTTP request for testing.
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

