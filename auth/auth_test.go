package auth

import (
	"testing"
	"time"
)

func TestCheckPassword(t *testing.T) {
	if err := CheckPassword("admin123", "admin123"); err != nil {
		t.Errorf("Expected matching passwords to pass: %v", err)
	}
	if err := CheckPassword("wrong", "admin123"); err != ErrBadCredential {
		t.Errorf("Expected ErrBadCredential, got %v", err)
	}
	if err := CheckPassword("", "admin123"); err != ErrBadCredential {
		t.Errorf("Expected ErrBadCredential for empty supplied password, got %v", err)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	now := time.Now()

	token, err := IssueToken("secret", now, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("Expected non-empty token")
	}

	if err := VerifyToken("secret", token); err != nil {
		t.Errorf("Expected valid token to verify: %v", err)
	}
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	token, err := IssueToken("secret", time.Now(), time.Hour)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	if err := VerifyToken("other-secret", token); err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerifyTokenExpired(t *testing.T) {
	issued := time.Now().Add(-2 * time.Hour)

	token, err := IssueToken("secret", issued, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	if err := VerifyToken("secret", token); err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerifyTokenGarbage(t *testing.T) {
	for _, garbage := range []string{"", "not-a-token", "a.b.c"} {
		if err := VerifyToken("secret", garbage); err != ErrInvalidToken {
			t.Errorf("VerifyToken(%q): expected ErrInvalidToken, got %v", garbage, err)
		}
	}
}
