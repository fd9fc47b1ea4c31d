package httpx

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"libraryapi/internal/platform/crypto"
	"libraryapi/internal/testutil"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORSMiddleware_AllowedOrigin(t *testing.T) {
	middleware := CORSMiddleware([]string{"http://localhost:3000", "http://localhost:5173"})
	handler := middleware(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:3000" {
		t.Errorf("Expected CORS header for allowed origin, got %s", w.Header().Get("Access-Control-Allow-Origin"))
	}
	if w.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Errorf("Expected credentials header, got %s", w.Header().Get("Access-Control-Allow-Credentials"))
	}
}

func TestCORSMiddleware_DisallowedOrigin(t *testing.T) {
	middleware := CORSMiddleware([]string{"http://localhost:3000"})
	handler := middleware(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Origin", "http://evil.com")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Errorf("Expected no CORS header for disallowed origin, got %s", w.Header().Get("Access-Control-Allow-Origin"))
	}
}

func TestCORSMiddleware_OPTIONSRequest(t *testing.T) {
	middleware := CORSMiddleware([]string{"http://localhost:3000"})
	handler := middleware(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/test", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected 204 for OPTIONS request, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Error("Expected CORS methods header for OPTIONS request")
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	handler := SecurityHeadersMiddleware(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Errorf("Expected nosniff header, got %s", w.Header().Get("X-Content-Type-Options"))
	}
	if w.Header().Get("X-Frame-Options") != "DENY" {
		t.Errorf("Expected DENY frame options, got %s", w.Header().Get("X-Frame-Options"))
	}
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	middleware := RequestSizeLimitMiddleware(1024)
	handler := middleware(okHandler())

	t.Run("under limit", func(t *testing.T) {
		body := bytes.NewBuffer(make([]byte, 512))
		req := httptest.NewRequest(http.MethodPost, "/test", body)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200 for request under limit, got %d", w.Code)
		}
	})

	t.Run("over limit", func(t *testing.T) {
		body := bytes.NewBuffer(make([]byte, 2048))
		req := httptest.NewRequest(http.MethodPost, "/test", body)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if w.Code != http.StatusRequestEntityTooLarge {
			t.Errorf("Expected 413 for request over limit, got %d", w.Code)
		}
	})
}

func TestActorMiddleware(t *testing.T) {
	const secret = "test-secret"
	middleware := ActorMiddleware(secret)

	var actor string
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor = ActorFrom(r)
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("no token falls back to demo actor", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200 without token, got %d", w.Code)
		}
		if actor != DemoActor {
			t.Errorf("Expected demo actor, got %s", actor)
		}
	})

	t.Run("invalid token falls back to demo actor", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200 with invalid token, got %d", w.Code)
		}
		if actor != DemoActor {
			t.Errorf("Expected demo actor, got %s", actor)
		}
	})

	t.Run("expired token falls back to demo actor", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "Bearer "+testutil.GenerateExpiredToken(secret, "u-1", "librarian"))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200 with expired token, got %d", w.Code)
		}
		if actor != DemoActor {
			t.Errorf("Expected demo actor, got %s", actor)
		}
	})

	t.Run("valid token resolves the actor", func(t *testing.T) {
		token, _, err := crypto.GenerateToken(secret, "u-1", "librarian", time.Hour)
		if err != nil {
			t.Fatalf("GenerateToken: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if actor != "u-1" {
			t.Errorf("Expected actor u-1, got %s", actor)
		}
	})
}

// The access log sits inside the actor middleware in the server chain,
// so the logged actor= field reflects the authenticated user rather
// than the demo fallback.
func TestAccessLogMiddleware_LogsAuthenticatedActor(t *testing.T) {
	const secret = "test-secret"

	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	handler := ActorMiddleware(secret)(AccessLogMiddleware(okHandler()))

	token, _, err := crypto.GenerateToken(secret, "u-1", "librarian", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if !strings.Contains(buf.String(), "actor=u-1") {
		t.Errorf("Expected access log to name the authenticated actor, got %q", buf.String())
	}
}

func TestRequireAuthMiddleware(t *testing.T) {
	const secret = "test-secret"
	middleware := RequireAuthMiddleware(secret)
	handler := middleware(okHandler())

	t.Run("missing token rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("Expected 401 without token, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "UNAUTHORIZED") {
			t.Errorf("Expected UNAUTHORIZED code in body, got %s", w.Body.String())
		}
	})

	t.Run("expired token rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "Bearer "+testutil.GenerateExpiredToken(secret, "u-1", "admin"))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("Expected 401 with expired token, got %d", w.Code)
		}
	})

	t.Run("valid token passes", func(t *testing.T) {
		token, _, err := crypto.GenerateToken(secret, "u-1", "admin", time.Hour)
		if err != nil {
			t.Fatalf("GenerateToken: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200 with valid token, got %d", w.Code)
		}
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	rl := NewRateLimitMiddleware(1, 2)
	handler := rl.Middleware(okHandler())

	var last int
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		last = w.Code
	}

	if last != http.StatusTooManyRequests {
		t.Errorf("Expected 429 after burst exhausted, got %d", last)
	}

	// A different client has its own bucket.
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 for fresh client, got %d", w.Code)
	}
}
