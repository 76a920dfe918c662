package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/michaeltheo/placements-backend/config"
)

func testManager(sessionTTL, capabilityTTL time.Duration) *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:          "test-secret-at-least-16-chars",
		SessionTokenTTL:    sessionTTL,
		CapabilityTokenTTL: capabilityTTL,
	})
}

func TestSessionTokenRoundTrip(t *testing.T) {
	m := testManager(time.Hour, time.Hour)

	token, err := m.GenerateSessionToken(42, "student")
	if err != nil {
		t.Fatalf("GenerateSessionToken() error = %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Role != "student" {
		t.Errorf("Role = %q, want student", claims.Role)
	}
	if claims.TokenType != TypeSession {
		t.Errorf("TokenType = %q, want %q", claims.TokenType, TypeSession)
	}
}

func TestCapabilityTokenCarriesNoRole(t *testing.T) {
	m := testManager(time.Hour, time.Hour)

	token, err := m.GenerateCapabilityToken(7)
	if err != nil {
		t.Fatalf("GenerateCapabilityToken() error = %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if claims.TokenType != TypeCapability {
		t.Errorf("TokenType = %q, want %q", claims.TokenType, TypeCapability)
	}
	if claims.Role != "" {
		t.Errorf("Role = %q, want empty", claims.Role)
	}
}

func TestParseExpiredToken(t *testing.T) {
	m := testManager(-time.Minute, time.Hour)

	token, err := m.GenerateSessionToken(1, "student")
	if err != nil {
		t.Fatalf("GenerateSessionToken() error = %v", err)
	}

	if _, err := m.ParseToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("ParseToken() error = %v, want ErrTokenExpired", err)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	m := testManager(time.Hour, time.Hour)
	other := NewManager(&config.AuthConfig{
		JWTSecret:          "a-different-secret-entirely",
		SessionTokenTTL:    time.Hour,
		CapabilityTokenTTL: time.Hour,
	})

	token, err := m.GenerateSessionToken(1, "student")
	if err != nil {
		t.Fatalf("GenerateSessionToken() error = %v", err)
	}

	if _, err := other.ParseToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("ParseToken() error = %v, want ErrTokenInvalid", err)
	}
}

func TestParseGarbage(t *testing.T) {
	m := testManager(time.Hour, time.Hour)

	if _, err := m.ParseToken("not.a.token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("ParseToken() error = %v, want ErrTokenInvalid", err)
	}
}
