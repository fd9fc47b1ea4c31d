package crypto

import (
	"testing"
	"time"
)

func TestGenerateToken_RoundTrip(t *testing.T) {
	secret := "test-secret"
	userID := "u-42"
	role := "librarian"

	token, jti, err := GenerateToken(secret, userID, role, time.Hour)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if token == "" {
		t.Error("Expected token to be generated")
	}

	if jti == "" {
		t.Error("Expected JTI to be generated")
	}

	claims, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("Expected no error parsing token, got %v", err)
	}

	if claims.ID != jti {
		t.Errorf("Expected JTI %s, got %s", jti, claims.ID)
	}

	if claims.Sub != userID {
		t.Errorf("Expected user ID %s, got %s", userID, claims.Sub)
	}

	if claims.Role != role {
		t.Errorf("Expected role %s, got %s", role, claims.Role)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, _, err := GenerateToken("real-secret", "u-42", "admin", time.Hour)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := ParseToken("other-secret", token); err == nil {
		t.Error("Expected error for token signed with a different secret")
	}
}

func TestParseToken_Expired(t *testing.T) {
	token, _, err := GenerateToken("test-secret", "u-42", "admin", -time.Minute)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := ParseToken("test-secret", token); err == nil {
		t.Error("Expected error for expired token")
	}
}

func TestParseToken_Malformed(t *testing.T) {
	if _, err := ParseToken("test-secret", "invalid.token.here"); err == nil {
		t.Error("Expected error for malformed token")
	}
}

func TestGenerateToken_UniqueJTIs(t *testing.T) {
	secret := "test-secret"

	token1, jti1, err1 := GenerateToken(secret, "u-42", "admin", time.Hour)
	token2, jti2, err2 := GenerateToken(secret, "u-42", "admin", time.Hour)

	if err1 != nil || err2 != nil {
		t.Fatalf("Expected no errors, got %v, %v", err1, err2)
	}

	if jti1 == jti2 {
		t.Error("Expected unique JTIs for different tokens")
	}

	if token1 == token2 {
		t.Error("Expected different tokens")
	}
}
